package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"apexive/pilotlog/internal/common"
	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/logging"
	gormModels "apexive/pilotlog/internal/models/gorm"
)

// flightMeta mirrors the backup's flight payload. Several source fields feed
// target attributes with different names; those assignments are the
// compatibility contract with the producing app's export format and must not
// be "fixed" to match the labels.
type flightMeta struct {
	ArrCode      string             `json:"ArrCode"`
	DepCode      string             `json:"DepCode"`
	Route        string             `json:"Route"`
	DateUTC      common.LooseString `json:"DateUTC"`
	ArrTimeUTC   common.LooseString `json:"ArrTimeUTC"`
	DepTimeUTC   common.LooseString `json:"DepTimeUTC"`
	LdgTimeUTC   common.LooseString `json:"LdgTimeUTC"`
	ArrOffset    common.LooseString `json:"ArrOffset"`
	DepOffset    common.LooseString `json:"DepOffset"`
	MinTotal     common.LooseString `json:"minTOTAL"`
	MinPIC       common.LooseString `json:"minPIC"`
	MinCOP       common.LooseString `json:"minCOP"`
	MinNight     common.LooseString `json:"minNIGHT"`
	MinSFR       common.LooseString `json:"minSFR"`
	MinXC        common.LooseString `json:"minXC"`
	MinAir       common.LooseString `json:"minAIR"`
	FuelUsed     common.LooseString `json:"FuelUsed"`
	ToDay        common.LooseString `json:"ToDay"`
	LdgDay       common.LooseString `json:"LdgDay"`
	ToNight      common.LooseString `json:"ToNight"`
	LdgNight     common.LooseString `json:"LdgNight"`
	Holding      common.LooseString `json:"Holding"`
	MinInstr     common.LooseString `json:"minINSTR"`
	MinIFR       common.LooseString `json:"minIFR"`
	HobbsIn      common.LooseString `json:"HobbsIn"`
	HobbsOut     common.LooseString `json:"HobbsOut"`
	ArrTimeSched common.LooseString `json:"ArrTimeSCHED"`
	DepTimeSched common.LooseString `json:"DepTimeSCHED"`
	TagApproach  string             `json:"TagApproach"`
	MinDual      common.LooseString `json:"minDUAL"`
	MinExam      common.LooseString `json:"minEXAM"`
	Training     common.LooseString `json:"Training"`
	Remarks      string             `json:"Remarks"`
	ToEdit       common.LooseBool   `json:"ToEdit"`
	NextPage     common.LooseBool   `json:"NextPage"`
	UserBool     common.LooseBool   `json:"UserBool"`
	PF           common.LooseBool   `json:"PF"`
}

type flightImporter struct {
	flights *repositories.FlightRepository
}

func (i *flightImporter) Import(ctx context.Context, rec *RawRecord) (Outcome, error) {
	guid, ok := ParseGUID(rec.GUID)
	if !ok {
		logging.Warn("Invalid or missing GUID", "table", "flight", "guid", rec.GUID)
		return OutcomeSkipped, nil
	}

	var meta flightMeta
	if err := rec.DecodeMeta(&meta); err != nil {
		return OutcomeSkipped, fmt.Errorf("malformed flight meta: %w", err)
	}

	flight := &gormModels.Flight{
		GUID:     guid,
		UserID:   rec.UserID,
		Platform: rec.Platform,
		Modified: rec.Modified,

		// ArrCode/DepCode feed from/to; the backup carries no dedicated
		// origin/destination fields.
		FromAirport: meta.ArrCode,
		ToAirport:   meta.DepCode,
		Route:       meta.Route,
		Date:        ValidDate(meta.DateUTC.String()),

		TimeOut: ValidTime(meta.ArrTimeUTC.String()),
		TimeOff: ValidTime(meta.DepTimeUTC.String()),
		TimeOn:  ValidTime(meta.LdgTimeUTC.String()),
		// ArrTimeUTC doubles as time_in; no better source exists.
		TimeIn:  ValidTime(meta.ArrTimeUTC.String()),
		OnDuty:  ValidTime(meta.ArrOffset.String()),
		OffDuty: ValidTime(meta.DepOffset.String()),

		TotalTime:    ValidDecimal(meta.MinTotal.String(), decimal.Zero),
		PIC:          ValidDecimal(meta.MinPIC.String(), decimal.Zero),
		SIC:          ValidDecimal(meta.MinCOP.String(), decimal.Zero),
		Night:        ValidDecimal(meta.MinNight.String(), decimal.Zero),
		Solo:         ValidDecimal(meta.MinSFR.String(), decimal.Zero),
		CrossCountry: ValidDecimal(meta.MinXC.String(), decimal.Zero),
		// minNIGHT also feeds NVG; the backup tracks no NVG time of its own.
		NVG:    ValidDecimal(meta.MinNight.String(), decimal.Zero),
		NVGOps: ValidDecimal(meta.MinAir.String(), decimal.Zero),
		// FuelUsed stands in for distance.
		Distance: ValidDecimal(meta.FuelUsed.String(), decimal.Zero),

		DayTakeoffs:           ValidInteger(meta.ToDay.String()),
		DayLandingsFullStop:   ValidInteger(meta.LdgDay.String()),
		NightTakeoffs:         ValidInteger(meta.ToNight.String()),
		NightLandingsFullStop: ValidInteger(meta.LdgNight.String()),
		// Holding feeds both all_landings and holds.
		AllLandings: ValidInteger(meta.Holding.String()),
		Holds:       ValidInteger(meta.Holding.String()),

		ActualInstrument:    ValidDecimal(meta.MinInstr.String(), decimal.Zero),
		SimulatedInstrument: ValidDecimal(meta.MinIFR.String(), decimal.Zero),
		HobbsStart:          ValidDecimal(meta.HobbsIn.String(), decimal.Zero),
		HobbsEnd:            ValidDecimal(meta.HobbsOut.String(), decimal.Zero),
		// The scheduled arrival/departure times stand in for tach readings.
		TachStart: ValidDecimal(meta.ArrTimeSched.String(), decimal.Zero),
		TachEnd:   ValidDecimal(meta.DepTimeSched.String(), decimal.Zero),

		DualGiven:       ValidDecimal(meta.MinDual.String(), decimal.Zero),
		SimulatedFlight: ValidDecimal(meta.MinExam.String(), decimal.Zero),
		GroundTraining:  ValidDecimal(meta.Training.String(), decimal.Zero),

		// Remarks feeds both comment fields.
		InstructorComments: meta.Remarks,
		PilotComments:      meta.Remarks,

		FlightReview:   bool(meta.ToEdit),
		Checkride:      bool(meta.NextPage),
		IPC:            bool(meta.UserBool),
		NVGProficiency: bool(meta.PF),
	}

	assignApproaches(flight, meta.TagApproach)

	created, err := i.flights.Upsert(ctx, flight)
	if err != nil {
		return OutcomeSkipped, err
	}

	if created {
		logging.Info("Created new Flight", "guid", guid)
		return OutcomeCreated, nil
	}
	logging.Info("Updated Flight", "guid", guid)
	return OutcomeUpdated, nil
}

// assignApproaches distributes the semicolon-separated approach tag across
// the six approach slots; extras beyond six are dropped.
func assignApproaches(flight *gormModels.Flight, tag string) {
	slots := []*string{
		&flight.Approach1, &flight.Approach2, &flight.Approach3,
		&flight.Approach4, &flight.Approach5, &flight.Approach6,
	}

	i := 0
	for _, part := range strings.Split(tag, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i >= len(slots) {
			break
		}
		*slots[i] = part
		i++
	}
}
