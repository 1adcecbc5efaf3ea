package importer

import (
	"context"
	"fmt"

	"apexive/pilotlog/internal/common"
	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/logging"
	gormModels "apexive/pilotlog/internal/models/gorm"
)

type queryMeta struct {
	Name           string           `json:"Name"`
	MQCode         string           `json:"mQCode"`
	QuickView      common.LooseBool `json:"QuickView"`
	ShortName      string           `json:"ShortName"`
	RecordModified common.LooseInt  `json:"Record_Modified"`
}

type queryImporter struct {
	queries *repositories.QueryRepository
}

func (i *queryImporter) Import(ctx context.Context, rec *RawRecord) (Outcome, error) {
	guid, ok := ParseGUID(rec.GUID)
	if !ok {
		logging.Warn("Invalid or missing GUID", "table", "myquery", "guid", rec.GUID)
		return OutcomeSkipped, nil
	}

	var meta queryMeta
	if err := rec.DecodeMeta(&meta); err != nil {
		return OutcomeSkipped, fmt.Errorf("malformed myquery meta: %w", err)
	}

	query := &gormModels.Query{
		GUID:           guid,
		UserID:         rec.UserID,
		Platform:       rec.Platform,
		Modified:       rec.Modified,
		Name:           meta.Name,
		MQCode:         meta.MQCode,
		QuickView:      bool(meta.QuickView),
		ShortName:      meta.ShortName,
		RecordModified: int64(meta.RecordModified),
	}

	created, err := i.queries.Upsert(ctx, query)
	if err != nil {
		return OutcomeSkipped, err
	}

	if created {
		logging.Info("Created new Query", "name", query.Name)
		return OutcomeCreated, nil
	}
	logging.Info("Updated Query", "name", query.Name)
	return OutcomeUpdated, nil
}

type queryBuildMeta struct {
	Build1         string          `json:"Build1"`
	Build2         common.LooseInt `json:"Build2"`
	Build3         common.LooseInt `json:"Build3"`
	Build4         string          `json:"Build4"`
	MQCode         string          `json:"mQCode"`
	MQBCode        string          `json:"mQBCode"`
	RecordModified common.LooseInt `json:"Record_Modified"`
}

type queryBuildImporter struct {
	builds *repositories.QueryBuildRepository
}

func (i *queryBuildImporter) Import(ctx context.Context, rec *RawRecord) (Outcome, error) {
	guid, ok := ParseGUID(rec.GUID)
	if !ok {
		logging.Warn("Invalid or missing GUID", "table", "myquerybuild", "guid", rec.GUID)
		return OutcomeSkipped, nil
	}

	var meta queryBuildMeta
	if err := rec.DecodeMeta(&meta); err != nil {
		return OutcomeSkipped, fmt.Errorf("malformed myquerybuild meta: %w", err)
	}

	build := &gormModels.QueryBuild{
		GUID:           guid,
		UserID:         rec.UserID,
		Platform:       rec.Platform,
		Modified:       rec.Modified,
		Build1:         meta.Build1,
		Build2:         int(meta.Build2),
		Build3:         int(meta.Build3),
		Build4:         meta.Build4,
		MQCode:         meta.MQCode,
		MQBCode:        meta.MQBCode,
		RecordModified: int64(meta.RecordModified),
	}

	created, err := i.builds.Upsert(ctx, build)
	if err != nil {
		return OutcomeSkipped, err
	}

	if created {
		logging.Info("Created new QueryBuild", "guid", guid)
		return OutcomeCreated, nil
	}
	logging.Info("Updated QueryBuild", "guid", guid)
	return OutcomeUpdated, nil
}
