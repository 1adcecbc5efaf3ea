package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"

	gormModels "apexive/pilotlog/internal/models/gorm"
)

// FlightRepository handles flight table operations
type FlightRepository struct {
	db *gormlib.DB
}

// NewFlightRepository creates a new flight repository
func NewFlightRepository(db *gormlib.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// Upsert creates the flight or fully replaces the mapped fields of the row
// sharing its GUID. An existing aircraft link survives the replace: the
// backup format never carries the link itself, only the aircraft import
// re-resolves it.
func (r *FlightRepository) Upsert(ctx context.Context, rec *gormModels.Flight) (bool, error) {
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		var existing gormModels.Flight
		err := tx.Where("guid = ?", rec.GUID).First(&existing).Error
		if err == gormlib.ErrRecordNotFound {
			created = true
			return tx.Create(rec).Error
		}
		if err != nil {
			return err
		}

		rec.ID = existing.ID
		rec.AircraftID = existing.AircraftID
		return tx.Model(&gormModels.Flight{}).
			Where("id = ?", existing.ID).
			Select("*").Omit("id").
			Updates(rec).Error
	})

	if err != nil {
		return false, fmt.Errorf("failed to upsert flight %s: %w", rec.GUID, err)
	}
	return created, nil
}

// FindByGUID returns the flight with the given GUID, or nil when absent.
func (r *FlightRepository) FindByGUID(ctx context.Context, guid uuid.UUID) (*gormModels.Flight, error) {
	var flight gormModels.Flight

	err := r.db.WithContext(ctx).Where("guid = ?", guid).First(&flight).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &flight, nil
}

// AssignAircraft rebinds the flight's aircraft reference.
func (r *FlightRepository) AssignAircraft(ctx context.Context, flightID, aircraftID uint) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.Flight{}).
		Where("id = ?", flightID).
		Update("aircraft_id", aircraftID).Error

	if err != nil {
		return fmt.Errorf("failed to assign aircraft %d to flight %d: %w", aircraftID, flightID, err)
	}
	return nil
}

// ListAllWithAircraft returns every flight with its linked aircraft eagerly
// resolved, in store iteration order.
func (r *FlightRepository) ListAllWithAircraft(ctx context.Context) ([]gormModels.Flight, error) {
	var flights []gormModels.Flight

	if err := r.db.WithContext(ctx).Preload("Aircraft").Find(&flights).Error; err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}

	return flights, nil
}
