package importer

import (
	"encoding/binary"
	"strconv"

	"github.com/google/uuid"
)

// canonicalGUIDLength is the hyphenated 36-character identifier form.
const canonicalGUIDLength = 36

// ParseGUID validates that value has the canonical 36-character identifier
// form and parses it. Records failing this check must not reach the store.
func ParseGUID(value string) (uuid.UUID, bool) {
	if len(value) != canonicalGUIDLength {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// DeriveNumericGUID maps a purely numeric identifier onto the canonical
// space by offsetting the zero GUID by the numeric value. Some setting
// config producers emit plain integers instead of GUIDs; the derivation is
// deterministic so re-imports still merge onto the same row.
func DeriveNumericGUID(value string) (uuid.UUID, bool) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return uuid.Nil, false
	}

	var id uuid.UUID
	binary.BigEndian.PutUint64(id[8:], n)
	return id, true
}
