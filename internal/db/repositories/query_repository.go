package repositories

import (
	"context"
	"fmt"

	gormlib "gorm.io/gorm"

	gormModels "apexive/pilotlog/internal/models/gorm"
)

// QueryRepository handles saved query operations
type QueryRepository struct {
	db *gormlib.DB
}

// NewQueryRepository creates a new query repository
func NewQueryRepository(db *gormlib.DB) *QueryRepository {
	return &QueryRepository{db: db}
}

// Upsert creates the query or fully replaces the row sharing its GUID.
func (r *QueryRepository) Upsert(ctx context.Context, rec *gormModels.Query) (bool, error) {
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		var existing gormModels.Query
		err := tx.Where("guid = ?", rec.GUID).First(&existing).Error
		if err == gormlib.ErrRecordNotFound {
			created = true
			return tx.Create(rec).Error
		}
		if err != nil {
			return err
		}

		rec.ID = existing.ID
		return tx.Model(&gormModels.Query{}).
			Where("id = ?", existing.ID).
			Select("*").Omit("id").
			Updates(rec).Error
	})

	if err != nil {
		return false, fmt.Errorf("failed to upsert query %s: %w", rec.GUID, err)
	}
	return created, nil
}

// QueryBuildRepository handles saved query build step operations
type QueryBuildRepository struct {
	db *gormlib.DB
}

// NewQueryBuildRepository creates a new query build repository
func NewQueryBuildRepository(db *gormlib.DB) *QueryBuildRepository {
	return &QueryBuildRepository{db: db}
}

// Upsert creates the build step or fully replaces the row sharing its GUID.
func (r *QueryBuildRepository) Upsert(ctx context.Context, rec *gormModels.QueryBuild) (bool, error) {
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		var existing gormModels.QueryBuild
		err := tx.Where("guid = ?", rec.GUID).First(&existing).Error
		if err == gormlib.ErrRecordNotFound {
			created = true
			return tx.Create(rec).Error
		}
		if err != nil {
			return err
		}

		rec.ID = existing.ID
		return tx.Model(&gormModels.QueryBuild{}).
			Where("id = ?", existing.ID).
			Select("*").Omit("id").
			Updates(rec).Error
	})

	if err != nil {
		return false, fmt.Errorf("failed to upsert query build %s: %w", rec.GUID, err)
	}
	return created, nil
}
