package repositories

import (
	"context"
	"fmt"

	gormlib "gorm.io/gorm"

	gormModels "apexive/pilotlog/internal/models/gorm"
)

// QualificationRepository handles qualification table operations
type QualificationRepository struct {
	db *gormlib.DB
}

// NewQualificationRepository creates a new qualification repository
func NewQualificationRepository(db *gormlib.DB) *QualificationRepository {
	return &QualificationRepository{db: db}
}

// Upsert creates the qualification or fully replaces the row sharing its GUID.
func (r *QualificationRepository) Upsert(ctx context.Context, rec *gormModels.Qualification) (bool, error) {
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		var existing gormModels.Qualification
		err := tx.Where("guid = ?", rec.GUID).First(&existing).Error
		if err == gormlib.ErrRecordNotFound {
			created = true
			return tx.Create(rec).Error
		}
		if err != nil {
			return err
		}

		rec.ID = existing.ID
		return tx.Model(&gormModels.Qualification{}).
			Where("id = ?", existing.ID).
			Select("*").Omit("id").
			Updates(rec).Error
	})

	if err != nil {
		return false, fmt.Errorf("failed to upsert qualification %s: %w", rec.GUID, err)
	}
	return created, nil
}
