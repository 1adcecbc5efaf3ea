package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"

	gormModels "apexive/pilotlog/internal/models/gorm"
)

// AirfieldRepository handles airfield table operations
type AirfieldRepository struct {
	db *gormlib.DB
}

// NewAirfieldRepository creates a new airfield repository
func NewAirfieldRepository(db *gormlib.DB) *AirfieldRepository {
	return &AirfieldRepository{db: db}
}

// Upsert creates the airfield or fully replaces the row sharing its GUID.
func (r *AirfieldRepository) Upsert(ctx context.Context, rec *gormModels.Airfield) (bool, error) {
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		var existing gormModels.Airfield
		err := tx.Where("guid = ?", rec.GUID).First(&existing).Error
		if err == gormlib.ErrRecordNotFound {
			created = true
			return tx.Create(rec).Error
		}
		if err != nil {
			return err
		}

		rec.ID = existing.ID
		return tx.Model(&gormModels.Airfield{}).
			Where("id = ?", existing.ID).
			Select("*").Omit("id").
			Updates(rec).Error
	})

	if err != nil {
		return false, fmt.Errorf("failed to upsert airfield %s: %w", rec.GUID, err)
	}
	return created, nil
}

// FindByGUID returns the airfield with the given GUID, or nil when absent.
func (r *AirfieldRepository) FindByGUID(ctx context.Context, guid uuid.UUID) (*gormModels.Airfield, error) {
	var airfield gormModels.Airfield

	err := r.db.WithContext(ctx).Where("guid = ?", guid).First(&airfield).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &airfield, nil
}
