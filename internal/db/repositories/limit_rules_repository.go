package repositories

import (
	"context"
	"fmt"

	gormlib "gorm.io/gorm"

	gormModels "apexive/pilotlog/internal/models/gorm"
)

// LimitRulesRepository handles limit rule operations
type LimitRulesRepository struct {
	db *gormlib.DB
}

// NewLimitRulesRepository creates a new limit rules repository
func NewLimitRulesRepository(db *gormlib.DB) *LimitRulesRepository {
	return &LimitRulesRepository{db: db}
}

// Upsert creates the rule or fully replaces the mapped fields of the row
// sharing its (user_id, limit_code, platform) triple.
func (r *LimitRulesRepository) Upsert(ctx context.Context, rec *gormModels.LimitRules) (bool, error) {
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		var existing gormModels.LimitRules
		err := tx.Where("user_id = ? AND limit_code = ? AND platform = ?",
			rec.UserID, rec.LimitCode, rec.Platform).First(&existing).Error
		if err == gormlib.ErrRecordNotFound {
			created = true
			return tx.Create(rec).Error
		}
		if err != nil {
			return err
		}

		rec.ID = existing.ID
		return tx.Model(&gormModels.LimitRules{}).
			Where("id = ?", existing.ID).
			Select("*").Omit("id").
			Updates(rec).Error
	})

	if err != nil {
		return false, fmt.Errorf("failed to upsert limit rule %s: %w", rec.LimitCode, err)
	}
	return created, nil
}

// Count returns the number of stored limit rules.
func (r *LimitRulesRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.LimitRules{}).Count(&count).Error
	return count, err
}
