package exporter

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	gormModels "apexive/pilotlog/internal/models/gorm"
)

func parseCSV(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	rows, err := csv.NewReader(buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	return rows
}

func columnIndex(t *testing.T, header []string, name string) int {
	t.Helper()
	for i, h := range header {
		if h == name {
			return i
		}
	}
	t.Fatalf("column %s not found in header", name)
	return -1
}

func TestWriteAircraftCSV(t *testing.T) {
	guid := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	aircraft := []gormModels.Aircraft{
		{
			GUID:           guid,
			Make:           "Cessna",
			Model:          "172",
			Category:       1,
			AircraftClass:  2,
			Complex:        true,
			HighPerf:       false,
			Aerobatic:      true,
			RecordModified: 1700000000,
		},
	}

	var buf bytes.Buffer
	if err := WriteAircraftCSV(&buf, aircraft); err != nil {
		t.Fatalf("WriteAircraftCSV failed: %v", err)
	}

	rows := parseCSV(t, &buf)
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}

	header := rows[0]
	if len(header) != 14 {
		t.Fatalf("expected 14 columns, got %d", len(header))
	}
	if header[0] != "AircraftID" || header[13] != "TAA" {
		t.Errorf("header order wrong: %v", header)
	}

	row := rows[1]
	if row[columnIndex(t, header, "AircraftID")] != guid.String() {
		t.Errorf("AircraftID = %s", row[0])
	}
	if row[columnIndex(t, header, "Make")] != "Cessna" {
		t.Errorf("Make wrong: %v", row)
	}
	if row[columnIndex(t, header, "Complex")] != "Yes" {
		t.Errorf("Complex should render Yes: %v", row)
	}
	if row[columnIndex(t, header, "HighPerformance")] != "No" {
		t.Errorf("HighPerformance should render No: %v", row)
	}
	if row[columnIndex(t, header, "TAA")] != "Yes" {
		t.Errorf("TAA should render Yes: %v", row)
	}

	// Structural placeholders stay blank.
	for _, col := range []string{"EquipmentType", "TypeCode", "GearType", "EngineType", "Pressurized"} {
		if v := row[columnIndex(t, header, col)]; v != "" {
			t.Errorf("placeholder column %s carries data: %q", col, v)
		}
	}
}

func TestWriteFlightCSV(t *testing.T) {
	aircraftID := uint(7)
	flights := []gormModels.Flight{
		{
			GUID:        uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			AircraftID:  &aircraftID,
			Date:        sql.NullTime{Time: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Valid: true},
			FromAirport: "KSFO",
			ToAirport:   "KLAX",
			Route:       "KSFO DCT KLAX",
			TimeOut:     sql.NullInt64{Int64: 1130, Valid: true},
			TotalTime:   decimal.RequireFromString("2.5"),
			PIC:         decimal.RequireFromString("2.5"),
			Approach1:   "ILS28R",
			Approach2:   "RNAV25L",
			DayTakeoffs: sql.NullInt64{Int64: 1, Valid: true},
			Checkride:   true,
		},
		{
			GUID: uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		},
	}

	var buf bytes.Buffer
	if err := WriteFlightCSV(&buf, flights); err != nil {
		t.Fatalf("WriteFlightCSV failed: %v", err)
	}

	rows := parseCSV(t, &buf)
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d rows", len(rows))
	}

	header := rows[0]
	if len(header) != len(flightHeaders) {
		t.Fatalf("header width %d, want %d", len(header), len(flightHeaders))
	}

	row := rows[1]
	if got := row[columnIndex(t, header, "Date")]; got != "2024-03-15" {
		t.Errorf("Date = %q", got)
	}
	if got := row[columnIndex(t, header, "AircraftID")]; got != "7" {
		t.Errorf("AircraftID = %q", got)
	}
	if got := row[columnIndex(t, header, "From")]; got != "KSFO" {
		t.Errorf("From = %q", got)
	}
	if got := row[columnIndex(t, header, "TimeOut")]; got != "1130" {
		t.Errorf("TimeOut = %q", got)
	}
	if got := row[columnIndex(t, header, "TotalTime")]; got != "2.5" {
		t.Errorf("TotalTime = %q", got)
	}
	if got := row[columnIndex(t, header, "Approach2")]; got != "RNAV25L" {
		t.Errorf("Approach2 = %q", got)
	}
	if got := row[columnIndex(t, header, "Checkride")]; got != "true" {
		t.Errorf("Checkride = %q", got)
	}
	if got := row[columnIndex(t, header, "FlightReview")]; got != "false" {
		t.Errorf("FlightReview = %q", got)
	}

	// Placeholder columns never carry data.
	for _, col := range []string{"Person1", "Person6", "FAA6158", "[Text]CustomFieldName", "[Toggle]CustomFieldName"} {
		if v := row[columnIndex(t, header, col)]; v != "" {
			t.Errorf("placeholder column %s carries data: %q", col, v)
		}
	}

	// An unlinked flight leaves AircraftID and nullable counters blank.
	bare := rows[2]
	if got := bare[columnIndex(t, header, "AircraftID")]; got != "" {
		t.Errorf("unlinked AircraftID = %q, want blank", got)
	}
	if got := bare[columnIndex(t, header, "Date")]; got != "" {
		t.Errorf("null date = %q, want blank", got)
	}
	if got := bare[columnIndex(t, header, "DayTakeoffs")]; got != "" {
		t.Errorf("null counter = %q, want blank", got)
	}
}
