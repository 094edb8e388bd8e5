package search

import (
	"encoding/json"
	"strings"
)

// Record is the canonical committed value pushed to the host. Type and URL
// are empty when the selection came from free text under a multi-type
// configuration and the kind could not be resolved.
type Record struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// MarshalJSON always emits all three keys, with explicit nulls for an
// unresolved type and url, so a structured consumer sees a stable shape.
func (r Record) MarshalJSON() ([]byte, error) {
	aux := struct {
		ID   string  `json:"id"`
		Type *string `json:"type"`
		URL  *string `json:"url"`
	}{ID: r.ID}
	if r.Type != "" {
		aux.Type = &r.Type
	}
	if r.URL != "" {
		aux.URL = &r.URL
	}
	return json.Marshal(aux)
}

// ResolveEntry builds the selection record for a concrete dropdown entry.
func ResolveEntry(e Entry, baseURL string) Record {
	return Record{
		ID:   e.ID,
		Type: e.Type,
		URL:  URLFor(baseURL, e.Type, e.ID),
	}
}

// ResolveText builds the selection record for free-typed text. The type is
// inferred only when exactly one type is configured; otherwise the record
// carries the bare id. No fuzzy inference is attempted.
func ResolveText(text string, configured []string, baseURL string) Record {
	rec := Record{ID: text}
	if len(configured) == 1 {
		rec.Type = configured[0]
		rec.URL = URLFor(baseURL, rec.Type, text)
	}
	return rec
}

// Encode serializes the record for the host. The zero record encodes to
// the empty string (the clear value).
func (r Record) Encode() string {
	if r.ID == "" {
		return ""
	}
	data, err := json.Marshal(r)
	if err != nil {
		return r.ID
	}
	return string(data)
}

// ParseHostValue extracts the display identifier from a raw host-pushed
// value. The value may be a serialized record or a bare string; malformed
// JSON falls back to the raw text. Literal "null"/"undefined" and empty
// strings mean no value.
func ParseHostValue(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" || raw == "undefined" {
		return ""
	}
	if strings.HasPrefix(raw, "{") {
		var rec Record
		if err := json.Unmarshal([]byte(raw), &rec); err == nil {
			return rec.ID
		}
	}
	return raw
}
