package service

import (
	"strings"

	"propertyfinder/internal/model"
)

// Matches reports whether a listing satisfies every condition of the filter set
func Matches(l model.Listing, f model.FilterSet) bool {
	if f.SearchQuery != "" {
		q := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(l.Name), q) && !strings.Contains(strings.ToLower(l.Address), q) {
			return false
		}
	}

	if l.Price < f.Price.Min || l.Price > f.Price.Max {
		return false
	}

	if len(f.Types) > 0 && !containsString(f.Types, l.Type) {
		return false
	}

	// Amenities are conjunctive: every requested amenity must be offered
	for _, a := range f.Amenities {
		if !l.HasAmenity(a) {
			return false
		}
	}

	if f.Rating > 0 && l.Rating < f.Rating {
		return false
	}

	if f.ShowFavoritesOnly && !l.IsFavorite {
		return false
	}

	return true
}

// DeriveResultSet returns the listings matching f, in catalog order
func DeriveResultSet(listings []model.Listing, f model.FilterSet) []model.Listing {
	results := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if Matches(l, f) {
			results = append(results, l)
		}
	}
	return results
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
