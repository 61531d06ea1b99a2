package service

import (
	"encoding/json"
	"testing"

	"propertyfinder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	f := DefaultFilterRules.Default()
	assert.Equal(t, "", f.SearchQuery)
	assert.Equal(t, model.PriceRange{Min: 0, Max: 50000}, f.Price)
	assert.NotNil(t, f.Types)
	assert.Empty(t, f.Types)
	assert.NotNil(t, f.Amenities)
	assert.Zero(t, f.Rating)
	assert.False(t, f.ShowFavoritesOnly)
}

func TestApplyPatch_PreservesAbsentFields(t *testing.T) {
	rules := DefaultFilterRules
	current := rules.Default()
	current.Types = []string{"PG"}
	current.Rating = 4
	current.SearchQuery = "indiranagar"

	next := rules.ApplyPatch(current, model.FilterPatch{Amenities: []string{"Food", "Food", "WiFi"}})

	assert.Equal(t, []string{"PG"}, next.Types)
	assert.Equal(t, 4.0, next.Rating)
	assert.Equal(t, "indiranagar", next.SearchQuery)
	assert.Equal(t, []string{"Food", "WiFi"}, next.Amenities)
}

func TestApplyPatch_EmptySliceClears(t *testing.T) {
	rules := DefaultFilterRules
	current := rules.Default()
	current.Types = []string{"PG", "Room"}

	next := rules.ApplyPatch(current, model.FilterPatch{Types: []string{}})
	assert.Empty(t, next.Types)
	assert.Equal(t, []string{"PG", "Room"}, current.Types, "input must not be modified")
}

func TestApplyPatch_Scalars(t *testing.T) {
	rules := DefaultFilterRules
	next := rules.ApplyPatch(rules.Default(), model.FilterPatch{
		SearchQuery:       strPtr("hsr"),
		Rating:            float64Ptr(-3),
		ShowFavoritesOnly: boolPtr(true),
	})
	assert.Equal(t, "hsr", next.SearchQuery)
	assert.Zero(t, next.Rating)
	assert.True(t, next.ShowFavoritesOnly)
}

func TestApplyPatch_PriceNormalization(t *testing.T) {
	rules := DefaultFilterRules

	tests := []struct {
		name    string
		current model.PriceRange
		patch   model.PriceRange
		want    model.PriceRange
	}{
		{"within domain", model.PriceRange{Min: 0, Max: 50000}, model.PriceRange{Min: 5000, Max: 20000}, model.PriceRange{Min: 5000, Max: 20000}},
		{"clamped to domain", model.PriceRange{Min: 0, Max: 50000}, model.PriceRange{Min: -100, Max: 90000}, model.PriceRange{Min: 0, Max: 50000}},
		{"max dragged below min", model.PriceRange{Min: 20000, Max: 40000}, model.PriceRange{Min: 20000, Max: 10000}, model.PriceRange{Min: 20000, Max: 21000}},
		{"min dragged above max", model.PriceRange{Min: 10000, Max: 20000}, model.PriceRange{Min: 30000, Max: 20000}, model.PriceRange{Min: 19000, Max: 20000}},
		{"max pinned at domain top", model.PriceRange{Min: 50000, Max: 50000}, model.PriceRange{Min: 50000, Max: 50000}, model.PriceRange{Min: 49000, Max: 50000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := rules.Default()
			current.Price = tt.current
			next := rules.ApplyPatch(current, model.FilterPatch{Price: &tt.patch})
			assert.Equal(t, tt.want, next.Price)
			assert.GreaterOrEqual(t, next.Price.Max-next.Price.Min, rules.MinPriceGap)
		})
	}
}

func TestApplyNaturalLanguageResult_ResetsPriorFilters(t *testing.T) {
	rules := DefaultFilterRules
	prev := rules.Default()
	prev.Types = []string{"Room"}
	prev.Amenities = []string{"TV"}
	prev.Rating = 3
	prev.ShowFavoritesOnly = true

	next := rules.ApplyNaturalLanguageResult(prev, "PG with food", model.FilterPatch{
		Types:     []string{"PG"},
		Amenities: []string{"Food"},
	})

	assert.Equal(t, "PG with food", next.SearchQuery)
	assert.Equal(t, []string{"PG"}, next.Types)
	assert.Equal(t, []string{"Food"}, next.Amenities)
	assert.Zero(t, next.Rating)
	assert.True(t, next.ShowFavoritesOnly, "favorites toggle is sticky")
	assert.Equal(t, model.PriceRange{Min: 0, Max: 50000}, next.Price)
}

func TestApplyNaturalLanguageResult_UnknownTypeDropped(t *testing.T) {
	rules := DefaultFilterRules
	next := rules.ApplyNaturalLanguageResult(rules.Default(), "villa", model.FilterPatch{Types: []string{"Villa"}})
	assert.NotNil(t, next.Types)
	assert.Empty(t, next.Types)
}

func TestApplyNaturalLanguageResult_RatingClamped(t *testing.T) {
	rules := DefaultFilterRules
	for in, want := range map[float64]float64{0.5: 1, 3.9: 3, 4.8: 4, 9: 4, -2: 0} {
		next := rules.ApplyNaturalLanguageResult(rules.Default(), "q", model.FilterPatch{Rating: float64Ptr(in)})
		assert.Equal(t, want, next.Rating, "rating %v", in)
	}
}

func TestApplyNaturalLanguageResult_PriceKeepsOracleRange(t *testing.T) {
	rules := DefaultFilterRules

	tests := []struct {
		name string
		raw  model.AIFilterResponse
		want model.PriceRange
	}{
		{"narrow range", model.AIFilterResponse{PriceMin: float64Ptr(8200), PriceMax: float64Ptr(8800)}, model.PriceRange{Min: 8200, Max: 8800}},
		{"max below slider gap", model.AIFilterResponse{PriceMax: float64Ptr(500)}, model.PriceRange{Min: 0, Max: 500}},
		{"reversed bounds", model.AIFilterResponse{PriceMin: float64Ptr(15000), PriceMax: float64Ptr(9000)}, model.PriceRange{Min: 9000, Max: 15000}},
		{"beyond domain", model.AIFilterResponse{PriceMin: float64Ptr(20000), PriceMax: float64Ptr(90000)}, model.PriceRange{Min: 20000, Max: 50000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch, _ := rules.SanitizeOraclePatch(tt.raw)
			next := rules.ApplyNaturalLanguageResult(rules.Default(), "q", patch)
			assert.Equal(t, tt.want, next.Price)
		})
	}
}

func TestApplyNaturalLanguageResult_NarrowPriceExcludesNeighbours(t *testing.T) {
	rules := DefaultFilterRules
	patch, _ := rules.SanitizeOraclePatch(model.AIFilterResponse{PriceMin: float64Ptr(8200), PriceMax: float64Ptr(8800)})
	next := rules.ApplyNaturalLanguageResult(rules.Default(), "", patch)

	// nearest listings are 8000 and 9500
	assert.Empty(t, DeriveResultSet(sampleListings(), next))
}

func TestFallback(t *testing.T) {
	rules := DefaultFilterRules
	prev := rules.Default()
	prev.Types = []string{"PG"}
	prev.ShowFavoritesOnly = true

	next := rules.Fallback(prev, "koramangala")

	want := rules.Default()
	want.SearchQuery = "koramangala"
	want.ShowFavoritesOnly = true
	assert.Equal(t, want, next)
}

func TestSanitizeOraclePatch(t *testing.T) {
	rules := DefaultFilterRules

	t.Run("price defaults missing bound", func(t *testing.T) {
		patch, _ := rules.SanitizeOraclePatch(model.AIFilterResponse{PriceMin: float64Ptr(10000)})
		require.NotNil(t, patch.Price)
		assert.Equal(t, model.PriceRange{Min: 10000, Max: 50000}, *patch.Price)
	})

	t.Run("no price when neither bound", func(t *testing.T) {
		patch, _ := rules.SanitizeOraclePatch(model.AIFilterResponse{})
		assert.True(t, patch.IsEmpty())
	})

	t.Run("zero bounds mean no price", func(t *testing.T) {
		patch, _ := rules.SanitizeOraclePatch(model.AIFilterResponse{
			Types:    []string{"PG"},
			PriceMin: float64Ptr(0),
			PriceMax: float64Ptr(0),
		})
		assert.Nil(t, patch.Price)
		assert.Equal(t, []string{"PG"}, patch.Types)

		next := rules.ApplyNaturalLanguageResult(rules.Default(), "", patch)
		assert.Equal(t, model.PriceRange{Min: 0, Max: 50000}, next.Price)
		typesOnly := rules.Default()
		typesOnly.Types = []string{"PG"}
		assert.Len(t, DeriveResultSet(sampleListings(), next), len(DeriveResultSet(sampleListings(), typesOnly)))
		assert.NotEmpty(t, DeriveResultSet(sampleListings(), next))
	})

	t.Run("zero max keeps min", func(t *testing.T) {
		patch, _ := rules.SanitizeOraclePatch(model.AIFilterResponse{PriceMin: float64Ptr(10000), PriceMax: float64Ptr(0)})
		require.NotNil(t, patch.Price)
		assert.Equal(t, model.PriceRange{Min: 10000, Max: 50000}, *patch.Price)
	})

	t.Run("malformed fields reported", func(t *testing.T) {
		var raw model.AIFilterResponse
		require.NoError(t, json.Unmarshal([]byte(`{"types":"PG","amenities":["WiFi"]}`), &raw))
		patch, dropped := rules.SanitizeOraclePatch(raw)
		assert.Nil(t, patch.Types)
		assert.Equal(t, []string{"WiFi"}, patch.Amenities)
		assert.Equal(t, []string{`types:"PG"`}, dropped)
	})

	t.Run("non-numeric rating dropped", func(t *testing.T) {
		patch, dropped := rules.SanitizeOraclePatch(model.AIFilterResponse{Rating: json.RawMessage(`"four"`)})
		assert.Nil(t, patch.Rating)
		assert.Equal(t, []string{`rating:"four"`}, dropped)
	})

	t.Run("null rating ignored", func(t *testing.T) {
		patch, dropped := rules.SanitizeOraclePatch(model.AIFilterResponse{Rating: json.RawMessage(`null`)})
		assert.Nil(t, patch.Rating)
		assert.Empty(t, dropped)
	})

	t.Run("amenity aliases canonicalized", func(t *testing.T) {
		patch, dropped := rules.SanitizeOraclePatch(model.AIFilterResponse{
			Amenities: []string{"air conditioning", "Wi-Fi", "Pool"},
		})
		assert.Equal(t, []string{"AC", "WiFi"}, patch.Amenities)
		assert.Equal(t, []string{"amenity:Pool"}, dropped)
	})
}

func TestNaturalLanguageNeverLeavesVocabulary(t *testing.T) {
	rules := DefaultFilterRules
	raw := model.AIFilterResponse{
		Types:     []string{"PG", "Villa", "apartment", "Hostel"},
		Amenities: []string{"WiFi", "Gym", "food", "Pool"},
		Rating:    json.RawMessage(`7.5`),
	}
	patch, _ := rules.SanitizeOraclePatch(raw)
	next := rules.ApplyNaturalLanguageResult(rules.Default(), "anything", patch)

	for _, ty := range next.Types {
		assert.True(t, model.IsKnownType(ty), ty)
	}
	for _, a := range next.Amenities {
		assert.True(t, model.IsKnownAmenity(a), a)
	}
	assert.True(t, next.Rating == 0 || (next.Rating >= 1 && next.Rating <= 4))
	assert.Equal(t, []string{"PG", "Apartment"}, next.Types)
	assert.Equal(t, []string{"WiFi", "Food"}, next.Amenities)
}
