package importer

import (
	"context"
	"fmt"

	"apexive/pilotlog/internal/common"
	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/logging"
	gormModels "apexive/pilotlog/internal/models/gorm"
)

type pilotMeta struct {
	Notes          string           `json:"Notes"`
	Active         common.LooseBool `json:"Active"`
	Company        string           `json:"Company"`
	FavList        common.LooseBool `json:"FavList"`
	UserAPI        string           `json:"UserAPI"`
	Facebook       string           `json:"Facebook"`
	LinkedIn       string           `json:"LinkedIn"`
	PilotRef       string           `json:"PilotRef"`
	PilotCode      string           `json:"PilotCode"`
	PilotName      string           `json:"PilotName"`
	PilotEmail     string           `json:"PilotEMail"`
	PilotPhone     string           `json:"PilotPhone"`
	Certificate    string           `json:"Certificate"`
	PhoneSearch    string           `json:"PhoneSearch"`
	PilotSearch    string           `json:"PilotSearch"`
	RosterAlias    string           `json:"RosterAlias"`
	RecordModified common.LooseInt  `json:"Record_Modified"`
}

type pilotImporter struct {
	pilots *repositories.PilotRepository
}

func (i *pilotImporter) Import(ctx context.Context, rec *RawRecord) (Outcome, error) {
	guid, ok := ParseGUID(rec.GUID)
	if !ok {
		logging.Warn("Invalid or missing GUID", "table", "pilot", "guid", rec.GUID)
		return OutcomeSkipped, nil
	}

	var meta pilotMeta
	if err := rec.DecodeMeta(&meta); err != nil {
		return OutcomeSkipped, fmt.Errorf("malformed pilot meta: %w", err)
	}

	pilot := &gormModels.Pilot{
		GUID:           guid,
		UserID:         rec.UserID,
		Platform:       rec.Platform,
		Modified:       rec.Modified,
		Notes:          meta.Notes,
		Active:         bool(meta.Active),
		Company:        meta.Company,
		FavList:        bool(meta.FavList),
		UserAPI:        meta.UserAPI,
		Facebook:       meta.Facebook,
		LinkedIn:       meta.LinkedIn,
		PilotRef:       meta.PilotRef,
		PilotCode:      meta.PilotCode,
		PilotName:      meta.PilotName,
		PilotEmail:     meta.PilotEmail,
		PilotPhone:     meta.PilotPhone,
		Certificate:    meta.Certificate,
		PhoneSearch:    meta.PhoneSearch,
		PilotSearch:    meta.PilotSearch,
		RosterAlias:    meta.RosterAlias,
		RecordModified: int64(meta.RecordModified),
	}

	created, err := i.pilots.Upsert(ctx, pilot)
	if err != nil {
		return OutcomeSkipped, err
	}

	if created {
		logging.Info("Created new Pilot", "pilot_name", pilot.PilotName)
		return OutcomeCreated, nil
	}
	logging.Info("Updated Pilot", "pilot_name", pilot.PilotName)
	return OutcomeUpdated, nil
}
