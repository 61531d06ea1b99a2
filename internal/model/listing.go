package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Listing represents a rental property in the catalog
type Listing struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Type        string    `json:"type" db:"type"`
	Address     string    `json:"address" db:"address"`
	Price       float64   `json:"price" db:"price"`
	Rating      float64   `json:"rating" db:"rating"`
	Amenities   JSONArray `json:"amenities" db:"amenities"`
	ImageURLs   JSONArray `json:"image_urls" db:"image_urls"`
	Lat         float64   `json:"lat" db:"lat"`
	Lng         float64   `json:"lng" db:"lng"`
	Description string    `json:"description" db:"description"`
	IsFavorite  bool      `json:"is_favorite" db:"-"` // per-session, hydrated from the favorite store
}

// HasAmenity reports whether the listing offers the named amenity (exact label match)
func (l Listing) HasAmenity(name string) bool {
	for _, a := range l.Amenities {
		if a == name {
			return true
		}
	}
	return false
}

// Catalog is an immutable, versioned snapshot of all listings.
// Mutations produce a new Catalog with a higher Version.
type Catalog struct {
	Version  uint64    `json:"version"`
	Listings []Listing `json:"listings"`
}

// NewCatalog wraps listings as version 1, rejecting duplicate identities
func NewCatalog(listings []Listing) (Catalog, error) {
	seen := make(map[int]struct{}, len(listings))
	for _, l := range listings {
		if _, dup := seen[l.ID]; dup {
			return Catalog{}, fmt.Errorf("duplicate listing id %d in catalog", l.ID)
		}
		seen[l.ID] = struct{}{}
	}
	if listings == nil {
		listings = []Listing{}
	}
	return Catalog{Version: 1, Listings: listings}, nil
}

// Len returns the number of listings
func (c Catalog) Len() int {
	return len(c.Listings)
}

// Find returns the listing with the given id
func (c Catalog) Find(id int) (Listing, bool) {
	for _, l := range c.Listings {
		if l.ID == id {
			return l, true
		}
	}
	return Listing{}, false
}

// JSONArray represents a JSON array field
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = JSONArray{}
		return nil
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("cannot scan %T into JSONArray", value)
	}
}
