package repository

import (
	"context"
	"errors"

	"propertyfinder/internal/model"
)

// ErrFavoritesNotFound is returned when no favorite snapshot was ever saved
var ErrFavoritesNotFound = errors.New("favorite ids not found")

// CatalogSource returns the whole listing domain and the about text.
// Both are read once at startup.
type CatalogSource interface {
	FetchCatalog(ctx context.Context) ([]model.Listing, error)
	FetchAboutText(ctx context.Context) (string, error)
}

// FavoriteStore persists the complete set of favorited listing ids.
// Every save overwrites the previous snapshot.
type FavoriteStore interface {
	LoadFavoriteIDs(ctx context.Context) ([]int, error)
	SaveFavoriteIDs(ctx context.Context, ids []int) error
}

// SearchLogger records submitted natural language searches
type SearchLogger interface {
	LogSearch(ctx context.Context, entry model.SearchLogEntry) error
}
