package importer

import (
	"context"
	"fmt"

	"apexive/pilotlog/internal/common"
	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/logging"
	gormModels "apexive/pilotlog/internal/models/gorm"
)

type settingConfigMeta struct {
	ConfigCode     common.LooseInt `json:"ConfigCode"`
	Name           string          `json:"Name"`
	Group          string          `json:"Group"`
	Data           string          `json:"Data"`
	RecordModified common.LooseInt `json:"Record_Modified"`
}

type settingConfigImporter struct {
	configs *repositories.SettingConfigRepository
}

func (i *settingConfigImporter) Import(ctx context.Context, rec *RawRecord) (Outcome, error) {
	guid, ok := ParseGUID(rec.GUID)
	if !ok {
		// One upstream producer emits plain numeric identifiers for setting
		// configs. Derive a canonical GUID from the number instead of
		// rejecting the record; the derivation is stable across imports.
		derived, numeric := DeriveNumericGUID(rec.GUID)
		if !numeric {
			logging.Warn("Invalid or missing GUID", "table", "settingconfig", "guid", rec.GUID)
			return OutcomeSkipped, nil
		}
		logging.Info("Derived GUID for numeric setting config identifier",
			"source", rec.GUID,
			"guid", derived,
		)
		guid = derived
	}

	var meta settingConfigMeta
	if err := rec.DecodeMeta(&meta); err != nil {
		return OutcomeSkipped, fmt.Errorf("malformed settingconfig meta: %w", err)
	}

	config := &gormModels.SettingConfig{
		GUID:           guid,
		ConfigCode:     int(meta.ConfigCode),
		UserID:         rec.UserID,
		Platform:       rec.Platform,
		Modified:       rec.Modified,
		Name:           meta.Name,
		Group:          meta.Group,
		Data:           meta.Data,
		RecordModified: int64(meta.RecordModified),
	}

	created, err := i.configs.Upsert(ctx, config)
	if err != nil {
		return OutcomeSkipped, err
	}

	if created {
		logging.Info("Created new SettingConfig", "guid", guid)
		return OutcomeCreated, nil
	}
	logging.Info("Updated SettingConfig", "guid", guid)
	return OutcomeUpdated, nil
}
