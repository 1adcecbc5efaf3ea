package importer

import (
	"context"
	"fmt"
	"strconv"

	"apexive/pilotlog/internal/common"
	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/logging"
	gormModels "apexive/pilotlog/internal/models/gorm"
)

type airfieldMeta struct {
	AFCode         string             `json:"AFCode"`
	AFIATA         string             `json:"AFIATA"`
	AFICAO         string             `json:"AFICAO"`
	AFName         string             `json:"AFName"`
	City           string             `json:"City"`
	AFCat          common.LooseInt    `json:"AFCat"`
	TZCode         common.LooseInt    `json:"TZCode"`
	Latitude       common.LooseString `json:"Latitude"`
	Longitude      common.LooseString `json:"Longitude"`
	ShowList       common.LooseBool   `json:"ShowList"`
	UserEdit       common.LooseBool   `json:"UserEdit"`
	AFCountry      common.LooseInt    `json:"AFCountry"`
	Notes          string             `json:"Notes"`
	NotesUser      string             `json:"NotesUser"`
	RegionUser     common.LooseInt    `json:"RegionUser"`
	ElevationFT    common.LooseInt    `json:"ElevationFT"`
	RecordModified common.LooseInt    `json:"Record_Modified"`
}

type airfieldImporter struct {
	airfields *repositories.AirfieldRepository
}

func (i *airfieldImporter) Import(ctx context.Context, rec *RawRecord) (Outcome, error) {
	guid, ok := ParseGUID(rec.GUID)
	if !ok {
		logging.Warn("Invalid or missing GUID", "table", "airfield", "guid", rec.GUID)
		return OutcomeSkipped, nil
	}

	var meta airfieldMeta
	if err := rec.DecodeMeta(&meta); err != nil {
		return OutcomeSkipped, fmt.Errorf("malformed airfield meta: %w", err)
	}

	airfield := &gormModels.Airfield{
		GUID:           guid,
		UserID:         rec.UserID,
		Platform:       rec.Platform,
		Modified:       rec.Modified,
		AFCode:         meta.AFCode,
		AFIATA:         meta.AFIATA,
		AFICAO:         meta.AFICAO,
		AFName:         meta.AFName,
		City:           meta.City,
		AFCat:          int(meta.AFCat),
		TZCode:         int(meta.TZCode),
		Latitude:       looseFloat(meta.Latitude),
		Longitude:      looseFloat(meta.Longitude),
		ShowList:       bool(meta.ShowList),
		UserEdit:       bool(meta.UserEdit),
		AFCountry:      int(meta.AFCountry),
		Notes:          meta.Notes,
		NotesUser:      meta.NotesUser,
		RegionUser:     int(meta.RegionUser),
		ElevationFT:    int(meta.ElevationFT),
		RecordModified: int64(meta.RecordModified),
	}

	created, err := i.airfields.Upsert(ctx, airfield)
	if err != nil {
		return OutcomeSkipped, err
	}

	if created {
		logging.Info("Created new Airfield", "guid", guid, "af_name", airfield.AFName)
		return OutcomeCreated, nil
	}
	logging.Info("Updated Airfield", "guid", guid, "af_name", airfield.AFName)
	return OutcomeUpdated, nil
}

// looseFloat parses a coordinate that may arrive as a number or string.
func looseFloat(value common.LooseString) float64 {
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value.String(), 64)
	if err != nil {
		logging.Warn("Invalid coordinate value, using 0", "value", value.String())
		return 0
	}
	return f
}
