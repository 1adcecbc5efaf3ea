package importer

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"apexive/pilotlog/internal/logging"
)

const dateLayout = "2006-01-02"

// ValidDate parses the backup's YYYY-MM-DD date form. Empty input yields "no
// date" silently; anything unparseable logs a diagnostic and yields the same.
func ValidDate(value string) sql.NullTime {
	if value == "" {
		return sql.NullTime{}
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		logging.Warn("Invalid date format, skipping value", "value", value)
		return sql.NullTime{}
	}

	return sql.NullTime{Time: t, Valid: true}
}

// ValidDecimal parses a decimal quantity, falling back to the caller's
// default. Absence is silent; a parse failure logs a diagnostic.
func ValidDecimal(value string, def decimal.Decimal) decimal.Decimal {
	if value == "" {
		return def
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		logging.Warn("Invalid decimal value, using default", "value", value, "default", def.String())
		return def
	}

	return d
}

// ValidInteger parses an integer counter. The result is absent (null) when
// the input is empty or unparseable; parse failures log a diagnostic.
func ValidInteger(value string) sql.NullInt64 {
	if value == "" {
		return sql.NullInt64{}
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logging.Warn("Invalid integer value, skipping", "value", value)
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: n, Valid: true}
}

// ValidTime parses a time-of-day carried as an integer string. Same contract
// as ValidInteger; the field is only semantically a time.
func ValidTime(value string) sql.NullInt64 {
	if value == "" {
		return sql.NullInt64{}
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logging.Warn("Invalid time format, skipping value", "value", value)
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: n, Valid: true}
}
