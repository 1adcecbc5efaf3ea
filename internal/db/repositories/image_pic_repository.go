package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"

	gormModels "apexive/pilotlog/internal/models/gorm"
)

// ImagePicRepository handles image record operations for both the importer
// and the REST surface.
type ImagePicRepository struct {
	db *gormlib.DB
}

// NewImagePicRepository creates a new image repository
func NewImagePicRepository(db *gormlib.DB) *ImagePicRepository {
	return &ImagePicRepository{db: db}
}

// Upsert creates the image or fully replaces the mapped fields of the row
// sharing its (guid, img_code) pair.
func (r *ImagePicRepository) Upsert(ctx context.Context, rec *gormModels.ImagePic) (bool, error) {
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		var existing gormModels.ImagePic
		err := tx.Where("guid = ? AND img_code = ?", rec.GUID, rec.ImgCode).First(&existing).Error
		if err == gormlib.ErrRecordNotFound {
			created = true
			return tx.Create(rec).Error
		}
		if err != nil {
			return err
		}

		rec.ID = existing.ID
		return tx.Model(&gormModels.ImagePic{}).
			Where("id = ?", existing.ID).
			Select("*").Omit("id").
			Updates(rec).Error
	})

	if err != nil {
		return false, fmt.Errorf("failed to upsert image %s/%s: %w", rec.GUID, rec.ImgCode, err)
	}
	return created, nil
}

// FindByID returns one image record, or nil when absent.
func (r *ImagePicRepository) FindByID(ctx context.Context, id uint) (*gormModels.ImagePic, error) {
	var img gormModels.ImagePic

	err := r.db.WithContext(ctx).First(&img, id).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &img, nil
}

// ListAll returns every image record.
func (r *ImagePicRepository) ListAll(ctx context.Context) ([]gormModels.ImagePic, error) {
	var images []gormModels.ImagePic

	if err := r.db.WithContext(ctx).Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	return images, nil
}

// FindUploadedAndDownloaded returns images with both transfer flags set.
func (r *ImagePicRepository) FindUploadedAndDownloaded(ctx context.Context) ([]gormModels.ImagePic, error) {
	var images []gormModels.ImagePic

	err := r.db.WithContext(ctx).
		Where("img_upload = ? AND img_download = ?", true, true).
		Find(&images).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list uploaded and downloaded images: %w", err)
	}

	return images, nil
}

// FindRecentlyModified returns images whose record_modified stamp falls
// within the last N days.
func (r *ImagePicRepository) FindRecentlyModified(ctx context.Context, days int) ([]gormModels.ImagePic, error) {
	var images []gormModels.ImagePic

	cutoff := time.Now().AddDate(0, 0, -days).Unix()
	err := r.db.WithContext(ctx).
		Where("record_modified >= ?", cutoff).
		Find(&images).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list recently modified images: %w", err)
	}

	return images, nil
}

// Create inserts a new image record (REST create).
func (r *ImagePicRepository) Create(ctx context.Context, rec *gormModels.ImagePic) error {
	if rec.GUID == uuid.Nil {
		rec.GUID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	return nil
}

// Update saves changes to an existing image record (REST update).
func (r *ImagePicRepository) Update(ctx context.Context, rec *gormModels.ImagePic) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.ImagePic{}).
		Where("id = ?", rec.ID).
		Select("*").Omit("id").
		Updates(rec).Error

	if err != nil {
		return fmt.Errorf("failed to update image %d: %w", rec.ID, err)
	}
	return nil
}
