package model

import (
	"encoding/json"
	"fmt"
)

// IntentResult is the outcome of translating a natural language query
type IntentResult struct {
	Query   string      `json:"query"`
	Patch   FilterPatch `json:"patch"`
	Dropped []string    `json:"dropped,omitempty"` // oracle values rejected by validation
	Source  string      `json:"source"`            // "ai", "empty" or "fallback"
}

// Intent sources
const (
	IntentSourceAI       = "ai"
	IntentSourceEmpty    = "empty"
	IntentSourceFallback = "fallback"
)

// AIFilterResponse is the raw, untrusted oracle output.
// Rating stays raw so that a non-numeric value can be dropped without
// failing the whole response. Fields of the wrong JSON type are skipped
// while decoding and reported in Invalid.
type AIFilterResponse struct {
	PriceMin  *float64        `json:"price_min,omitempty"`
	PriceMax  *float64        `json:"price_max,omitempty"`
	Types     []string        `json:"types,omitempty"`
	Amenities []string        `json:"amenities,omitempty"`
	Rating    json.RawMessage `json:"rating,omitempty"`

	Invalid []string `json:"-"`
}

// UnmarshalJSON decodes each field on its own so that one malformed field
// does not discard the others
func (r *AIFilterResponse) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return fmt.Errorf("oracle response is not an object")
	}

	*r = AIFilterResponse{}
	r.PriceMin = r.decodeNumber("price_min", fields["price_min"])
	r.PriceMax = r.decodeNumber("price_max", fields["price_max"])
	r.Types = r.decodeStrings("types", fields["types"])
	r.Amenities = r.decodeStrings("amenities", fields["amenities"])
	if raw := fields["rating"]; !isNull(raw) {
		r.Rating = append(json.RawMessage(nil), raw...)
	}
	return nil
}

func (r *AIFilterResponse) decodeNumber(name string, raw json.RawMessage) *float64 {
	if isNull(raw) {
		return nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		r.Invalid = append(r.Invalid, name+":"+string(raw))
		return nil
	}
	return &v
}

// decodeStrings keeps the string elements of an array; a non-array value
// drops the whole field
func (r *AIFilterResponse) decodeStrings(name string, raw json.RawMessage) []string {
	if isNull(raw) {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		r.Invalid = append(r.Invalid, name+":"+string(raw))
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			r.Invalid = append(r.Invalid, name+":"+string(item))
			continue
		}
		out = append(out, s)
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
