package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"propertyfinder/internal/model"
)

//go:embed data/catalog.json
var builtinCatalog []byte

type staticCatalogFile struct {
	About    string          `json:"about"`
	Listings []model.Listing `json:"listings"`
}

// StaticCatalog serves the built-in sample listings when no database is configured
type StaticCatalog struct {
	about    string
	listings []model.Listing
}

// NewStaticCatalog decodes the embedded catalog
func NewStaticCatalog() (*StaticCatalog, error) {
	return NewStaticCatalogFromJSON(builtinCatalog)
}

// NewStaticCatalogFromJSON decodes a catalog document of the form
// {"about": "...", "listings": [...]}
func NewStaticCatalogFromJSON(raw []byte) (*StaticCatalog, error) {
	var file staticCatalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return &StaticCatalog{about: file.About, listings: file.Listings}, nil
}

// FetchCatalog returns a deep copy of the listings
func (s *StaticCatalog) FetchCatalog(ctx context.Context) ([]model.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.Listing, len(s.listings))
	for i, l := range s.listings {
		l.Amenities = append(model.JSONArray{}, l.Amenities...)
		l.ImageURLs = append(model.JSONArray{}, l.ImageURLs...)
		l.IsFavorite = false
		out[i] = l
	}
	return out, nil
}

// FetchAboutText returns the platform description
func (s *StaticCatalog) FetchAboutText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.about == "" {
		return "", fmt.Errorf("about text not found")
	}
	return s.about, nil
}
