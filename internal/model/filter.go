package model

// PriceRange is an inclusive monthly rent range
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterSet describes what should currently be visible.
// It is always fully populated: "no restriction" is an empty slice,
// a zero rating or an empty query, never a missing field.
type FilterSet struct {
	SearchQuery       string     `json:"search_query"`
	Price             PriceRange `json:"price"`
	Types             []string   `json:"types"`
	Amenities         []string   `json:"amenities"`
	Rating            float64    `json:"rating"`
	ShowFavoritesOnly bool       `json:"show_favorites_only"`
}

// Clone returns a copy that shares no slices with f
func (f FilterSet) Clone() FilterSet {
	out := f
	out.Types = append(make([]string, 0, len(f.Types)), f.Types...)
	out.Amenities = append(make([]string, 0, len(f.Amenities)), f.Amenities...)
	return out
}

// FilterPatch is a partial FilterSet. A nil field is absent and leaves the
// corresponding FilterSet field untouched; Types/Amenities are present when
// non-nil, so an empty non-nil slice clears the restriction.
type FilterPatch struct {
	SearchQuery       *string     `json:"search_query,omitempty"`
	Price             *PriceRange `json:"price,omitempty"`
	Types             []string    `json:"types,omitempty"`
	Amenities         []string    `json:"amenities,omitempty"`
	Rating            *float64    `json:"rating,omitempty"`
	ShowFavoritesOnly *bool       `json:"show_favorites_only,omitempty"`
}

// IsEmpty reports whether the patch carries no fields
func (p FilterPatch) IsEmpty() bool {
	return p.SearchQuery == nil && p.Price == nil && p.Types == nil &&
		p.Amenities == nil && p.Rating == nil && p.ShowFavoritesOnly == nil
}
