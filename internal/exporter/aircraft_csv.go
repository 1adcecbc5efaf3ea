package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	gormModels "apexive/pilotlog/internal/models/gorm"
)

// aircraftHeaders is the fixed column contract of the aircraft export.
// EquipmentType, TypeCode, GearType, EngineType and Pressurized have no
// source mapping and stay blank; the consuming ecosystem matches columns by
// identity, so the placeholders must be emitted anyway.
var aircraftHeaders = []string{
	"AircraftID", "EquipmentType", "TypeCode", "Year", "Make", "Model",
	"Category", "Class", "GearType", "EngineType", "Complex",
	"HighPerformance", "Pressurized", "TAA",
}

// WriteAircraftCSV emits one fixed-schema row per aircraft in store
// iteration order.
func WriteAircraftCSV(w io.Writer, aircraft []gormModels.Aircraft) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(aircraftHeaders); err != nil {
		return fmt.Errorf("failed to write aircraft CSV header: %w", err)
	}

	for _, a := range aircraft {
		row := []string{
			a.GUID.String(),
			"", // EquipmentType
			"", // TypeCode
			strconv.FormatInt(a.RecordModified, 10), // record_modified stands in for Year
			a.Make,
			a.Model,
			strconv.Itoa(a.Category),
			strconv.Itoa(a.AircraftClass),
			"", // GearType
			"", // EngineType
			yesNo(a.Complex),
			yesNo(a.HighPerf),
			"", // Pressurized
			yesNo(a.Aerobatic), // aerobatic stands in for TAA
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write aircraft row %s: %w", a.GUID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
