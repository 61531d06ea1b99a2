package utils

import (
	"testing"
)

type oracleReply struct {
	PriceMax  *float64 `json:"price_max"`
	Types     []string `json:"types"`
	Amenities []string `json:"amenities"`
}

func TestParseAIJSON(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantErr       bool
		wantTypes     int
		wantAmenities int
	}{
		{
			name:      "Pure JSON",
			input:     `{"price_max": 20000, "types": ["PG"]}`,
			wantTypes: 1,
		},
		{
			name:          "JSON in markdown code block",
			input:         "```json\n{\"types\": [\"Room\"], \"amenities\": [\"AC\", \"WiFi\"]}\n```",
			wantTypes:     1,
			wantAmenities: 2,
		},
		{
			name:      "JSON in untagged code block",
			input:     "```\n{\"types\": [\"Apartment\", \"Room\"]}\n```",
			wantTypes: 2,
		},
		{
			name:          "JSON with surrounding text",
			input:         `Sure! Here are the filters: {"amenities": ["Parking"]} Hope that helps.`,
			wantAmenities: 1,
		},
		{
			name:      "Trailing comma",
			input:     `{"types": ["PG",],}`,
			wantTypes: 1,
		},
		{
			name:      "Single quotes and bare keys",
			input:     `{types: ['PG', 'Room']}`,
			wantTypes: 2,
		},
		{
			name:    "Empty string",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "Invalid JSON",
			input:   "not json at all",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got oracleReply
			err := ParseAIJSON(tt.input, &got)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAIJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got.Types) != tt.wantTypes {
				t.Errorf("types = %v, want %d entries", got.Types, tt.wantTypes)
			}
			if len(got.Amenities) != tt.wantAmenities {
				t.Errorf("amenities = %v, want %d entries", got.Amenities, tt.wantAmenities)
			}
		})
	}
}

func TestParseAIJSON_PriceValue(t *testing.T) {
	var got oracleReply
	if err := ParseAIJSON("```json\n{\"price_max\": 15000}\n```", &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PriceMax == nil || *got.PriceMax != 15000 {
		t.Errorf("price_max = %v, want 15000", got.PriceMax)
	}
}

func TestExtractFromMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "JSON code block with json tag",
			input: "```json\n{\"test\": true}\n```",
			want:  `{"test": true}`,
		},
		{
			name:  "JSON code block without tag",
			input: "```\n{\"test\": true}\n```",
			want:  `{"test": true}`,
		},
		{
			name:  "Code block that is not JSON",
			input: "```\nhello\n```",
			want:  "",
		},
		{
			name:  "No code block",
			input: `{"test": true}`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractFromMarkdown(tt.input)
			if got != tt.want {
				t.Errorf("extractFromMarkdown() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractBalancedBraces(t *testing.T) {
	tests := []struct {
		name  string
		input string
		open  rune
		close rune
		want  string
	}{
		{
			name:  "Simple object",
			input: `{"a": 1}`,
			open:  '{',
			close: '}',
			want:  `{"a": 1}`,
		},
		{
			name:  "Nested objects with trailing text",
			input: `{"a": {"b": 2}} and more`,
			open:  '{',
			close: '}',
			want:  `{"a": {"b": 2}}`,
		},
		{
			name:  "Object with string containing braces",
			input: `{"text": "Hello {world}"}`,
			open:  '{',
			close: '}',
			want:  `{"text": "Hello {world}"}`,
		},
		{
			name:  "Unbalanced",
			input: `{"a": 1`,
			open:  '{',
			close: '}',
			want:  "",
		},
		{
			name:  "Array",
			input: `[1, 2, 3]`,
			open:  '[',
			close: ']',
			want:  `[1, 2, 3]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractBalancedBraces(tt.input, tt.open, tt.close)
			if got != tt.want {
				t.Errorf("extractBalancedBraces() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFixSingleQuotes(t *testing.T) {
	got := fixSingleQuotes(`{'name': 'Gents PG', "note": "it's fine"}`)
	want := `{"name": "Gents PG", "note": "it's fine"}`
	if got != want {
		t.Errorf("fixSingleQuotes() = %s, want %s", got, want)
	}
}
