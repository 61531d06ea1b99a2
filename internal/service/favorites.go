package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"propertyfinder/internal/model"
	"propertyfinder/internal/repository"
)

// ToggleFavorite returns a new catalog with the favorite flag of listing id
// flipped. An unknown id leaves the catalog unchanged.
func ToggleFavorite(catalog model.Catalog, id int) model.Catalog {
	idx := -1
	for i, l := range catalog.Listings {
		if l.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return catalog
	}

	listings := make([]model.Listing, len(catalog.Listings))
	copy(listings, catalog.Listings)
	listings[idx].IsFavorite = !listings[idx].IsFavorite

	return model.Catalog{Version: catalog.Version + 1, Listings: listings}
}

// FavoriteIDs returns the ids of all favorited listings in catalog order
func FavoriteIDs(catalog model.Catalog) []int {
	ids := []int{}
	for _, l := range catalog.Listings {
		if l.IsFavorite {
			ids = append(ids, l.ID)
		}
	}
	return ids
}

// HydrateFavorites builds the initial catalog, marking the saved favorites.
// Saved ids that no longer exist are ignored.
func HydrateFavorites(listings []model.Listing, ids []int) (model.Catalog, error) {
	saved := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		saved[id] = struct{}{}
	}

	hydrated := make([]model.Listing, len(listings))
	for i, l := range listings {
		_, l.IsFavorite = saved[l.ID]
		hydrated[i] = l
	}
	return model.NewCatalog(hydrated)
}

// FavoriteBridge pushes favorite snapshots to a FavoriteStore in the
// background. Writes never block the caller and never roll back in-memory
// state. Only the latest pending snapshot is written, and writes never
// overlap, so the stored value always ends at the last snapshot issued.
type FavoriteBridge struct {
	store   repository.FavoriteStore
	timeout time.Duration

	mu       sync.Mutex
	idle     *sync.Cond
	pending  []int
	dirty    bool
	draining bool
}

// NewFavoriteBridge creates a bridge. A nil store disables persistence.
func NewFavoriteBridge(store repository.FavoriteStore, timeout time.Duration) *FavoriteBridge {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	b := &FavoriteBridge{store: store, timeout: timeout}
	b.idle = sync.NewCond(&b.mu)
	return b
}

// Load reads the saved favorite ids. Any failure yields an empty set.
func (b *FavoriteBridge) Load(ctx context.Context) []int {
	if b.store == nil {
		return []int{}
	}
	ids, err := b.store.LoadFavoriteIDs(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrFavoritesNotFound) {
			log.Printf("⚠️  Could not load favorites, starting empty: %v", err)
		}
		return []int{}
	}
	return ids
}

// Persist schedules ids to be written
func (b *FavoriteBridge) Persist(ids []int) {
	if b.store == nil {
		return
	}

	snapshot := append(make([]int, 0, len(ids)), ids...)

	b.mu.Lock()
	b.pending = snapshot
	b.dirty = true
	if !b.draining {
		b.draining = true
		go b.drain()
	}
	b.mu.Unlock()
}

// Flush blocks until every scheduled snapshot has been written or has failed
func (b *FavoriteBridge) Flush() {
	b.mu.Lock()
	for b.draining {
		b.idle.Wait()
	}
	b.mu.Unlock()
}

func (b *FavoriteBridge) drain() {
	for {
		b.mu.Lock()
		if !b.dirty {
			b.draining = false
			b.idle.Broadcast()
			b.mu.Unlock()
			return
		}
		ids := b.pending
		b.dirty = false
		b.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
		if err := b.store.SaveFavoriteIDs(ctx, ids); err != nil {
			log.Printf("❌ Failed to persist favorites %v: %v", ids, err)
		}
		cancel()
	}
}
