package importer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"apexive/pilotlog/internal/common"
	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/logging"
	gormModels "apexive/pilotlog/internal/models/gorm"
)

type qualificationMeta struct {
	QCode          string             `json:"QCode"`
	RefExtra       common.LooseInt    `json:"RefExtra"`
	RefModel       string             `json:"RefModel"`
	Validity       common.LooseInt    `json:"Validity"`
	DateValid      common.LooseString `json:"DateValid"`
	QTypeCode      common.LooseInt    `json:"QTypeCode"`
	DateIssued     common.LooseString `json:"DateIssued"`
	MinimumQty     common.LooseInt    `json:"MinimumQty"`
	NotifyDays     common.LooseInt    `json:"NotifyDays"`
	RefAirfield    string             `json:"RefAirfield"`
	MinimumPeriod  common.LooseInt    `json:"MinimumPeriod"`
	NotifyComment  string             `json:"NotifyComment"`
	RecordModified common.LooseInt    `json:"Record_Modified"`
}

type qualificationImporter struct {
	qualifications *repositories.QualificationRepository
}

func (i *qualificationImporter) Import(ctx context.Context, rec *RawRecord) (Outcome, error) {
	guid, ok := ParseGUID(rec.GUID)
	if !ok {
		logging.Warn("Invalid or missing GUID", "table", "qualification", "guid", rec.GUID)
		return OutcomeSkipped, nil
	}

	var meta qualificationMeta
	if err := rec.DecodeMeta(&meta); err != nil {
		return OutcomeSkipped, fmt.Errorf("malformed qualification meta: %w", err)
	}

	qCode, ok := ParseGUID(meta.QCode)
	if !ok {
		logging.Warn("Invalid QCode on qualification", "guid", guid, "q_code", meta.QCode)
		return OutcomeSkipped, nil
	}

	// The source frequently omits RefAirfield; a fresh identifier keeps the
	// column non-null without colliding with real airfields.
	refAirfield, ok := ParseGUID(meta.RefAirfield)
	if !ok {
		refAirfield = uuid.New()
	}

	qualification := &gormModels.Qualification{
		GUID:           guid,
		UserID:         rec.UserID,
		Platform:       rec.Platform,
		Modified:       rec.Modified,
		QCode:          qCode,
		RefExtra:       int(meta.RefExtra),
		RefModel:       meta.RefModel,
		Validity:       int(meta.Validity),
		DateValid:      ValidDate(meta.DateValid.String()),
		QTypeCode:      int(meta.QTypeCode),
		DateIssued:     ValidDate(meta.DateIssued.String()),
		MinimumQty:     int(meta.MinimumQty),
		NotifyDays:     int(meta.NotifyDays),
		RefAirfield:    refAirfield,
		MinimumPeriod:  int(meta.MinimumPeriod),
		NotifyComment:  meta.NotifyComment,
		RecordModified: int64(meta.RecordModified),
	}

	created, err := i.qualifications.Upsert(ctx, qualification)
	if err != nil {
		return OutcomeSkipped, err
	}

	if created {
		logging.Info("Created new Qualification", "guid", guid)
		return OutcomeCreated, nil
	}
	logging.Info("Updated Qualification", "guid", guid)
	return OutcomeUpdated, nil
}
