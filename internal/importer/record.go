package importer

import "encoding/json"

// RawRecord is one element of the logbook backup document: the shared
// envelope plus the table-specific meta payload, kept raw until the matching
// importer decodes it into its typed form.
type RawRecord struct {
	Table    string          `json:"table"`
	GUID     string          `json:"guid"`
	UserID   int             `json:"user_id"`
	Platform int             `json:"platform"`
	Modified int64           `json:"_modified"`
	Meta     json.RawMessage `json:"meta"`
}

// DecodeMeta unmarshals the meta payload into the importer's typed struct.
// A missing meta object leaves every field at its documented default.
func (r *RawRecord) DecodeMeta(v any) error {
	if len(r.Meta) == 0 {
		return nil
	}
	return json.Unmarshal(r.Meta, v)
}
