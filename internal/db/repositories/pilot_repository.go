package repositories

import (
	"context"
	"fmt"

	gormlib "gorm.io/gorm"

	gormModels "apexive/pilotlog/internal/models/gorm"
)

// PilotRepository handles pilot table operations
type PilotRepository struct {
	db *gormlib.DB
}

// NewPilotRepository creates a new pilot repository
func NewPilotRepository(db *gormlib.DB) *PilotRepository {
	return &PilotRepository{db: db}
}

// Upsert creates the pilot or fully replaces the row sharing its GUID.
func (r *PilotRepository) Upsert(ctx context.Context, rec *gormModels.Pilot) (bool, error) {
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		var existing gormModels.Pilot
		err := tx.Where("guid = ?", rec.GUID).First(&existing).Error
		if err == gormlib.ErrRecordNotFound {
			created = true
			return tx.Create(rec).Error
		}
		if err != nil {
			return err
		}

		rec.ID = existing.ID
		return tx.Model(&gormModels.Pilot{}).
			Where("id = ?", existing.ID).
			Select("*").Omit("id").
			Updates(rec).Error
	})

	if err != nil {
		return false, fmt.Errorf("failed to upsert pilot %s: %w", rec.GUID, err)
	}
	return created, nil
}

// ListAll returns every pilot.
func (r *PilotRepository) ListAll(ctx context.Context) ([]gormModels.Pilot, error) {
	var pilots []gormModels.Pilot

	if err := r.db.WithContext(ctx).Find(&pilots).Error; err != nil {
		return nil, fmt.Errorf("failed to list pilots: %w", err)
	}

	return pilots, nil
}
