package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"

	gormModels "apexive/pilotlog/internal/models/gorm"
)

// AircraftRepository handles aircraft table operations
type AircraftRepository struct {
	db *gormlib.DB
}

// NewAircraftRepository creates a new aircraft repository
func NewAircraftRepository(db *gormlib.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

// Upsert creates the aircraft or fully replaces the mapped fields of the row
// sharing its GUID. The transaction keeps update-or-create atomic per key.
// Returns true when a new row was created.
func (r *AircraftRepository) Upsert(ctx context.Context, rec *gormModels.Aircraft) (bool, error) {
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		var existing gormModels.Aircraft
		err := tx.Where("guid = ?", rec.GUID).First(&existing).Error
		if err == gormlib.ErrRecordNotFound {
			created = true
			return tx.Create(rec).Error
		}
		if err != nil {
			return err
		}

		rec.ID = existing.ID
		return tx.Model(&gormModels.Aircraft{}).
			Where("id = ?", existing.ID).
			Select("*").Omit("id").
			Updates(rec).Error
	})

	if err != nil {
		return false, fmt.Errorf("failed to upsert aircraft %s: %w", rec.GUID, err)
	}
	return created, nil
}

// FindByGUID returns the aircraft with the given GUID, or nil when absent.
func (r *AircraftRepository) FindByGUID(ctx context.Context, guid uuid.UUID) (*gormModels.Aircraft, error) {
	var aircraft gormModels.Aircraft

	err := r.db.WithContext(ctx).Where("guid = ?", guid).First(&aircraft).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &aircraft, nil
}

// ListAll returns every aircraft in store iteration order.
func (r *AircraftRepository) ListAll(ctx context.Context) ([]gormModels.Aircraft, error) {
	var aircraft []gormModels.Aircraft

	if err := r.db.WithContext(ctx).Find(&aircraft).Error; err != nil {
		return nil, fmt.Errorf("failed to list aircraft: %w", err)
	}

	return aircraft, nil
}
