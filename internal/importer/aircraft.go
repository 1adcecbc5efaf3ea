package importer

import (
	"context"
	"fmt"

	"apexive/pilotlog/internal/common"
	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/logging"
	gormModels "apexive/pilotlog/internal/models/gorm"
)

type aircraftMeta struct {
	Make           string            `json:"Make"`
	Model          string            `json:"Model"`
	Category       common.LooseInt   `json:"Category"`
	Class          common.LooseInt   `json:"Class"`
	Power          common.LooseInt   `json:"Power"`
	Seats          common.LooseInt   `json:"Seats"`
	Active         common.LooseBool  `json:"Active"`
	Reference      string            `json:"Reference"`
	Tailwheel      common.LooseBool  `json:"Tailwheel"`
	Complex        common.LooseBool  `json:"Complex"`
	HighPerf       common.LooseBool  `json:"HighPerf"`
	Aerobatic      common.LooseBool  `json:"Aerobatic"`
	FNPT           common.LooseInt   `json:"FNPT"`
	Kg5700         common.LooseBool  `json:"Kg5700"`
	Rating         common.LooseString `json:"Rating"`
	Company        string            `json:"Company"`
	CondLog        common.LooseInt   `json:"CondLog"`
	FavList        common.LooseBool  `json:"FavList"`
	SubModel       common.LooseString `json:"SubModel"`
	EngType        common.LooseInt   `json:"EngType"`
	RecordModified common.LooseInt   `json:"Record_Modified"`
}

type aircraftImporter struct {
	aircraft *repositories.AircraftRepository
	flights  *repositories.FlightRepository
}

func (i *aircraftImporter) Import(ctx context.Context, rec *RawRecord) (Outcome, error) {
	guid, ok := ParseGUID(rec.GUID)
	if !ok {
		logging.Warn("Invalid or missing GUID", "table", "aircraft", "guid", rec.GUID)
		return OutcomeSkipped, nil
	}

	var meta aircraftMeta
	if err := rec.DecodeMeta(&meta); err != nil {
		return OutcomeSkipped, fmt.Errorf("malformed aircraft meta: %w", err)
	}

	aircraft := &gormModels.Aircraft{
		GUID:           guid,
		UserID:         rec.UserID,
		Platform:       rec.Platform,
		Modified:       rec.Modified,
		Make:           meta.Make,
		Model:          meta.Model,
		Category:       int(meta.Category),
		AircraftClass:  int(meta.Class),
		Power:          int(meta.Power),
		Seats:          int(meta.Seats),
		Active:         bool(meta.Active),
		Reference:      meta.Reference,
		Tailwheel:      bool(meta.Tailwheel),
		Complex:        bool(meta.Complex),
		HighPerf:       bool(meta.HighPerf),
		Aerobatic:      bool(meta.Aerobatic),
		FNPT:           int(meta.FNPT),
		Kg5700:         bool(meta.Kg5700),
		Rating:         meta.Rating.String(),
		Company:        meta.Company,
		CondLog:        int(meta.CondLog),
		FavList:        bool(meta.FavList),
		SubModel:       meta.SubModel.String(),
		EngineType:     int(meta.EngType),
		RecordModified: int64(meta.RecordModified),
	}

	created, err := i.aircraft.Upsert(ctx, aircraft)
	if err != nil {
		return OutcomeSkipped, err
	}

	if created {
		logging.Info("Created new Aircraft", "guid", guid, "reference", aircraft.Reference)
	} else {
		logging.Info("Updated Aircraft", "guid", guid, "reference", aircraft.Reference)
	}

	// The producing app reuses one identifier across table kinds for related
	// rows: a flight keyed by this aircraft's GUID belongs to it. Re-resolve
	// the link now that the aircraft row exists.
	flight, err := i.flights.FindByGUID(ctx, guid)
	if err != nil {
		logging.Warn("Flight lookup failed after aircraft import", "guid", guid, "error", err.Error())
		if created {
			return OutcomeCreated, nil
		}
		return OutcomeUpdated, nil
	}

	if flight == nil {
		logging.Debug("No flight found sharing aircraft GUID", "guid", guid)
	} else if err := i.flights.AssignAircraft(ctx, flight.ID, aircraft.ID); err != nil {
		logging.Warn("Failed to assign aircraft to flight", "guid", guid, "error", err.Error())
	} else {
		logging.Info("Assigned Aircraft to Flight", "flight_guid", flight.GUID)
	}

	if created {
		return OutcomeCreated, nil
	}
	return OutcomeUpdated, nil
}
