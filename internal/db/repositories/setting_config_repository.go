package repositories

import (
	"context"
	"fmt"

	gormlib "gorm.io/gorm"

	gormModels "apexive/pilotlog/internal/models/gorm"
)

// SettingConfigRepository handles setting config operations
type SettingConfigRepository struct {
	db *gormlib.DB
}

// NewSettingConfigRepository creates a new setting config repository
func NewSettingConfigRepository(db *gormlib.DB) *SettingConfigRepository {
	return &SettingConfigRepository{db: db}
}

// Upsert creates the config entry or fully replaces the row sharing its
// (guid, config_code) pair.
func (r *SettingConfigRepository) Upsert(ctx context.Context, rec *gormModels.SettingConfig) (bool, error) {
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		var existing gormModels.SettingConfig
		err := tx.Where("guid = ? AND config_code = ?", rec.GUID, rec.ConfigCode).First(&existing).Error
		if err == gormlib.ErrRecordNotFound {
			created = true
			return tx.Create(rec).Error
		}
		if err != nil {
			return err
		}

		rec.ID = existing.ID
		return tx.Model(&gormModels.SettingConfig{}).
			Where("id = ?", existing.ID).
			Select("*").Omit("id").
			Updates(rec).Error
	})

	if err != nil {
		return false, fmt.Errorf("failed to upsert setting config %s: %w", rec.GUID, err)
	}
	return created, nil
}

// ListAll returns every config entry.
func (r *SettingConfigRepository) ListAll(ctx context.Context) ([]gormModels.SettingConfig, error) {
	var configs []gormModels.SettingConfig

	if err := r.db.WithContext(ctx).Find(&configs).Error; err != nil {
		return nil, fmt.Errorf("failed to list setting configs: %w", err)
	}

	return configs, nil
}
