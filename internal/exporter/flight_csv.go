package exporter

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	gormModels "apexive/pilotlog/internal/models/gorm"
)

// flightHeaders is the fixed column contract of the flight export. Only a
// subset of the columns has live data sources; the rest (Person1..6,
// FAA6158, the bracket-tagged custom field slots) are structural
// placeholders the consuming ecosystem expects to find.
var flightHeaders = []string{
	"Date", "AircraftID", "From", "To", "Route", "TimeOut", "TimeOff",
	"TimeOn", "TimeIn", "OnDuty", "OffDuty", "TotalTime", "PIC", "SIC",
	"Night", "Solo", "CrossCountry", "NVG", "NVGOps", "Distance",
	"DayTakeoffs", "DayLandingsFullStop", "NightTakeoffs",
	"NightLandingsFullStop", "AllLandings", "ActualInstrument",
	"SimulatedInstrument", "HobbsStart", "HobbsEnd", "TachStart", "TachEnd",
	"Holds", "Approach1", "Approach2", "Approach3", "Approach4", "Approach5",
	"Approach6", "DualGiven", "DualReceived", "SimulatedFlight",
	"GroundTraining", "InstructorName", "InstructorComments",
	"Person1", "Person2", "Person3", "Person4", "Person5", "Person6",
	"FlightReview", "Checkride", "IPC", "NVGProficiency", "FAA6158",
	"[Text]CustomFieldName", "[Numeric]CustomFieldName",
	"[Hours]CustomFieldName", "[Counter]CustomFieldName",
	"[Date]CustomFieldName", "[DateTime]CustomFieldName",
	"[Toggle]CustomFieldName", "PilotComments",
}

// WriteFlightCSV emits one fixed-schema row per flight in store iteration
// order. Linked aircraft must be eagerly resolved by the caller.
func WriteFlightCSV(w io.Writer, flights []gormModels.Flight) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(flightHeaders); err != nil {
		return fmt.Errorf("failed to write flight CSV header: %w", err)
	}

	for _, f := range flights {
		row := []string{
			nullDate(f.Date),
			aircraftRef(&f),
			f.FromAirport,
			f.ToAirport,
			f.Route,
			nullInt(f.TimeOut),
			nullInt(f.TimeOff),
			nullInt(f.TimeOn),
			nullInt(f.TimeIn),
			nullInt(f.OnDuty),
			nullInt(f.OffDuty),
			f.TotalTime.String(),
			f.PIC.String(),
			f.SIC.String(),
			f.Night.String(),
			f.Solo.String(),
			f.CrossCountry.String(),
			f.NVG.String(),
			f.NVGOps.String(),
			f.Distance.String(),
			nullInt(f.DayTakeoffs),
			nullInt(f.DayLandingsFullStop),
			nullInt(f.NightTakeoffs),
			nullInt(f.NightLandingsFullStop),
			nullInt(f.AllLandings),
			f.ActualInstrument.String(),
			f.SimulatedInstrument.String(),
			f.HobbsStart.String(),
			f.HobbsEnd.String(),
			f.TachStart.String(),
			f.TachEnd.String(),
			nullInt(f.Holds),
			f.Approach1,
			f.Approach2,
			f.Approach3,
			f.Approach4,
			f.Approach5,
			f.Approach6,
			f.DualGiven.String(),
			f.DualReceived.String(),
			f.SimulatedFlight.String(),
			f.GroundTraining.String(),
			f.InstructorName,
			f.InstructorComments,
			"", "", "", "", "", "", // Person1..Person6
			strconv.FormatBool(f.FlightReview),
			strconv.FormatBool(f.Checkride),
			strconv.FormatBool(f.IPC),
			strconv.FormatBool(f.NVGProficiency),
			"",                         // FAA6158
			"", "", "", "", "", "", "", // custom field placeholders
			f.PilotComments,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write flight row %s: %w", f.GUID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func aircraftRef(f *gormModels.Flight) string {
	if f.AircraftID == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*f.AircraftID), 10)
}

func nullInt(v sql.NullInt64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatInt(v.Int64, 10)
}

func nullDate(v sql.NullTime) string {
	if !v.Valid {
		return ""
	}
	return v.Time.Format("2006-01-02")
}
