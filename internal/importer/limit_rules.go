package importer

import (
	"context"
	"fmt"

	"apexive/pilotlog/internal/common"
	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/logging"
	gormModels "apexive/pilotlog/internal/models/gorm"
)

type limitRulesMeta struct {
	LimitCode      string             `json:"LimitCode"`
	LFrom          common.LooseString `json:"LFrom"`
	LTo            common.LooseString `json:"LTo"`
	LType          common.LooseInt    `json:"LType"`
	LZone          common.LooseInt    `json:"LZone"`
	LMinutes       common.LooseInt    `json:"LMinutes"`
	LPeriodCode    common.LooseInt    `json:"LPeriodCode"`
	RecordModified common.LooseInt    `json:"Record_Modified"`
}

type limitRulesImporter struct {
	rules *repositories.LimitRulesRepository
}

func (i *limitRulesImporter) Import(ctx context.Context, rec *RawRecord) (Outcome, error) {
	guid, ok := ParseGUID(rec.GUID)
	if !ok {
		logging.Warn("Invalid or missing GUID", "table", "limitrules", "guid", rec.GUID)
		return OutcomeSkipped, nil
	}

	var meta limitRulesMeta
	if err := rec.DecodeMeta(&meta); err != nil {
		return OutcomeSkipped, fmt.Errorf("malformed limitrules meta: %w", err)
	}

	// LimitCode is part of the merge key and must itself be a valid GUID.
	limitCode, ok := ParseGUID(meta.LimitCode)
	if !ok {
		logging.Warn("Invalid LimitCode on limit rule", "guid", guid, "limit_code", meta.LimitCode)
		return OutcomeSkipped, nil
	}

	rule := &gormModels.LimitRules{
		GUID:           guid,
		UserID:         rec.UserID,
		LimitCode:      limitCode,
		Platform:       rec.Platform,
		Modified:       rec.Modified,
		LFrom:          ValidDate(meta.LFrom.String()),
		LTo:            ValidDate(meta.LTo.String()),
		LType:          int(meta.LType),
		LZone:          int(meta.LZone),
		LMinutes:       int(meta.LMinutes),
		LPeriodCode:    int(meta.LPeriodCode),
		RecordModified: int64(meta.RecordModified),
	}

	created, err := i.rules.Upsert(ctx, rule)
	if err != nil {
		return OutcomeSkipped, err
	}

	if created {
		logging.Info("Created new LimitRules", "limit_code", limitCode)
		return OutcomeCreated, nil
	}
	logging.Info("Updated LimitRules", "limit_code", limitCode)
	return OutcomeUpdated, nil
}
