package model

// SearchRequest represents a natural language search request
type SearchRequest struct {
	Query string `json:"query"`
}

// Page is one contiguous window of the result set
type Page struct {
	Items      []Listing `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
	Total      int       `json:"total"`
	HasMore    bool      `json:"has_more"`
}

// SessionView is everything a client needs to render the current state
type SessionView struct {
	Filters        FilterSet `json:"filters"`
	Results        Page      `json:"results"`
	CompareIDs     []int     `json:"compare_ids"`
	SearchBusy     bool      `json:"search_busy"`
	Ready          bool      `json:"ready"`
	LoadError      string    `json:"load_error,omitempty"`
	Notice         string    `json:"notice,omitempty"`
	CatalogVersion uint64    `json:"catalog_version"`
}

// SearchResponse is returned after a natural language search completes
type SearchResponse struct {
	Intent  *IntentResult `json:"intent,omitempty"`
	Applied bool          `json:"applied"` // false when a newer search superseded this one
	View    SessionView   `json:"view"`
	Took    int64         `json:"took_ms"`
}

// FavoriteResponse is returned after a favorite toggle
type FavoriteResponse struct {
	Listing     Listing `json:"listing"`
	FavoriteIDs []int   `json:"favorite_ids"`
}

// CompareResponse describes the comparison set after a change
type CompareResponse struct {
	Outcome string            `json:"outcome,omitempty"`
	Notice  string            `json:"notice,omitempty"`
	Summary ComparisonSummary `json:"summary"`
}

// ComparisonSummary annotates the listings selected for comparison
type ComparisonSummary struct {
	Members       []ComparedListing `json:"members"`
	LowestPrice   *float64          `json:"lowest_price,omitempty"` // nil when there are no members
	HighestRating float64           `json:"highest_rating"`
	AmenityMatrix []AmenityRow      `json:"amenity_matrix"`
}

// ComparedListing is a comparison member with its highlight reasons
type ComparedListing struct {
	Listing
	Highlights []string `json:"highlights"`
}

// AmenityRow tells, per comparison member, whether it has the amenity
type AmenityRow struct {
	Amenity string `json:"amenity"`
	Present []bool `json:"present"`
}

// Vocabulary lists the closed category and amenity vocabularies
type Vocabulary struct {
	Types     []string `json:"types"`
	Amenities []string `json:"amenities"`
	PriceMax  float64  `json:"price_max"`
}

// SearchLogEntry is one row of the search log
type SearchLogEntry struct {
	Query          string    `json:"query"`
	Source         string    `json:"source"`
	AppliedFilters FilterSet `json:"applied_filters"`
	ResultCount    int       `json:"result_count"`
	ResponseTimeMs int64     `json:"response_time_ms"`
}
