package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"propertyfinder/internal/model"
	"propertyfinder/internal/utils"
)

// Rating bounds accepted from the oracle
const (
	MinOracleRating = 1
	MaxOracleRating = 4
)

// FilterRules holds the price domain used to build and normalize filter sets
type FilterRules struct {
	PriceDomainMax float64
	MinPriceGap    float64
}

// DefaultFilterRules matches the catalog's rent domain (0..50000, slider step 1000)
var DefaultFilterRules = FilterRules{PriceDomainMax: 50000, MinPriceGap: 1000}

// NewFilterRules creates filter rules for the given price domain
func NewFilterRules(priceDomainMax, minPriceGap float64) FilterRules {
	return FilterRules{PriceDomainMax: priceDomainMax, MinPriceGap: minPriceGap}
}

// Default returns the all-neutral filter set
func (r FilterRules) Default() model.FilterSet {
	return model.FilterSet{
		SearchQuery: "",
		Price:       model.PriceRange{Min: 0, Max: r.PriceDomainMax},
		Types:       []string{},
		Amenities:   []string{},
		Rating:      0,
	}
}

// ApplyPatch shallow-merges patch into current. Absent fields are preserved.
// The merged price range is clamped to the domain and kept ordered.
func (r FilterRules) ApplyPatch(current model.FilterSet, patch model.FilterPatch) model.FilterSet {
	next := current.Clone()

	if patch.SearchQuery != nil {
		next.SearchQuery = *patch.SearchQuery
	}
	if patch.Price != nil {
		next.Price = r.normalizePrice(current.Price, *patch.Price)
	}
	if patch.Types != nil {
		next.Types = dedupe(patch.Types)
	}
	if patch.Amenities != nil {
		next.Amenities = dedupe(patch.Amenities)
	}
	if patch.Rating != nil {
		next.Rating = math.Max(0, *patch.Rating)
	}
	if patch.ShowFavoritesOnly != nil {
		next.ShowFavoritesOnly = *patch.ShowFavoritesOnly
	}

	return next
}

// ApplyNaturalLanguageResult builds the filter set for a submitted free-text query.
// Prior structured filters are discarded; only the favorites toggle survives.
// The AI patch is validated field by field before it is overlaid.
func (r FilterRules) ApplyNaturalLanguageResult(prev model.FilterSet, query string, aiPatch model.FilterPatch) model.FilterSet {
	next := r.Default()
	next.SearchQuery = query
	next.ShowFavoritesOnly = prev.ShowFavoritesOnly

	if aiPatch.Price != nil {
		next.Price = r.orderPrice(*aiPatch.Price)
	}
	if aiPatch.Types != nil {
		next.Types = knownTypes(aiPatch.Types)
	}
	if aiPatch.Amenities != nil {
		next.Amenities = knownAmenities(aiPatch.Amenities)
	}
	if aiPatch.Rating != nil {
		if rating, ok := clampOracleRating(*aiPatch.Rating); ok {
			next.Rating = rating
		}
	}

	return next
}

// Fallback is the plain substring search used when the oracle fails
func (r FilterRules) Fallback(prev model.FilterSet, query string) model.FilterSet {
	next := r.Default()
	next.SearchQuery = query
	next.ShowFavoritesOnly = prev.ShowFavoritesOnly
	return next
}

// SanitizeOraclePatch turns raw oracle output into a patch restricted to the
// closed vocabularies. It returns the rejected values for logging.
func (r FilterRules) SanitizeOraclePatch(raw model.AIFilterResponse) (model.FilterPatch, []string) {
	var patch model.FilterPatch
	var dropped []string

	// a bound of 0 means the query did not mention it
	minSet := raw.PriceMin != nil && *raw.PriceMin > 0
	maxSet := raw.PriceMax != nil && *raw.PriceMax > 0
	if minSet || maxSet {
		price := model.PriceRange{Min: 0, Max: r.PriceDomainMax}
		if minSet {
			price.Min = *raw.PriceMin
		}
		if maxSet {
			price.Max = *raw.PriceMax
		}
		patch.Price = &price
	}
	dropped = append(dropped, raw.Invalid...)

	if raw.Types != nil {
		patch.Types = []string{}
		for _, t := range raw.Types {
			if canonical, ok := canonicalType(t); ok {
				patch.Types = append(patch.Types, canonical)
				continue
			}
			dropped = append(dropped, "type:"+t)
		}
		patch.Types = dedupe(patch.Types)
	}

	if raw.Amenities != nil {
		patch.Amenities = []string{}
		for _, a := range raw.Amenities {
			if canonical, ok := utils.NormalizeAmenity(a); ok {
				patch.Amenities = append(patch.Amenities, canonical)
				continue
			}
			dropped = append(dropped, "amenity:"+a)
		}
		patch.Amenities = dedupe(patch.Amenities)
	}

	if len(raw.Rating) > 0 && string(raw.Rating) != "null" {
		var rating float64
		if err := json.Unmarshal(raw.Rating, &rating); err == nil {
			if clamped, ok := clampOracleRating(rating); ok {
				patch.Rating = &clamped
			} else {
				dropped = append(dropped, fmt.Sprintf("rating:%v", rating))
			}
		} else {
			dropped = append(dropped, "rating:"+string(raw.Rating))
		}
	}

	return patch, dropped
}

// normalizePrice clamps next into the domain and restores min < max,
// moving whichever bound the caller changed.
func (r FilterRules) normalizePrice(prev, next model.PriceRange) model.PriceRange {
	gap := r.MinPriceGap
	if gap <= 0 {
		gap = 1
	}

	next.Min = clampFloat(next.Min, 0, r.PriceDomainMax)
	next.Max = clampFloat(next.Max, 0, r.PriceDomainMax)
	if next.Max-next.Min >= gap {
		return next
	}

	if next.Min == prev.Min {
		// only the upper bound moved
		next.Max = math.Min(math.Max(next.Max, next.Min+gap), r.PriceDomainMax)
		if next.Max-next.Min < gap {
			next.Min = math.Max(next.Max-gap, 0)
		}
		return next
	}

	next.Min = math.Max(math.Min(next.Min, next.Max-gap), 0)
	if next.Max-next.Min < gap {
		next.Max = math.Min(next.Min+gap, r.PriceDomainMax)
	}
	return next
}

// orderPrice clamps an oracle price range into the domain and swaps
// reversed bounds. No slider gap is imposed.
func (r FilterRules) orderPrice(p model.PriceRange) model.PriceRange {
	p.Min = clampFloat(p.Min, 0, r.PriceDomainMax)
	p.Max = clampFloat(p.Max, 0, r.PriceDomainMax)
	if p.Min > p.Max {
		p.Min, p.Max = p.Max, p.Min
	}
	return p
}

// clampOracleRating floors the rating into [1,4]; non-positive values are
// treated as "no rating requested".
func clampOracleRating(v float64) (float64, bool) {
	if math.IsNaN(v) || v <= 0 {
		return 0, false
	}
	return clampFloat(math.Floor(v), MinOracleRating, MaxOracleRating), true
}

func canonicalType(t string) (string, bool) {
	t = strings.TrimSpace(t)
	for _, known := range model.PropertyTypes {
		if strings.EqualFold(known, t) {
			return known, true
		}
	}
	return "", false
}

func knownTypes(types []string) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		if model.IsKnownType(t) {
			out = append(out, t)
		}
	}
	return dedupe(out)
}

func knownAmenities(amenities []string) []string {
	out := make([]string, 0, len(amenities))
	for _, a := range amenities {
		if model.IsKnownAmenity(a) {
			out = append(out, a)
		}
	}
	return dedupe(out)
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
