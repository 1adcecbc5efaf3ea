package common

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The logbook backup format is loosely typed: counters arrive as numbers or
// numeric strings, flags as booleans or 0/1, and text occasionally as raw
// numbers. These scalar types absorb that at decode time so every meta field
// lands on its documented default instead of failing the record.

// LooseInt decodes a JSON number, numeric string, boolean or null into an int.
type LooseInt int

func (li *LooseInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	switch s {
	case "", "null", "false":
		*li = 0
		return nil
	case "true":
		*li = 1
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*li = LooseInt(int(f))
		return nil
	}
	*li = 0
	return nil
}

// LooseBool decodes a JSON boolean, 0/1 number or string form into a bool.
type LooseBool bool

func (lb *LooseBool) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	switch strings.ToLower(s) {
	case "true", "1":
		*lb = true
	default:
		*lb = false
	}
	return nil
}

// LooseString decodes any JSON scalar into its string form. Numbers keep
// their literal text, which matters for fields the importer coerces later.
type LooseString string

func (ls *LooseString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*ls = LooseString(s)
		return nil
	}
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*ls = ""
		return nil
	}
	*ls = LooseString(raw)
	return nil
}

func (ls LooseString) String() string {
	return string(ls)
}
