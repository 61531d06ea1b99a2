package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// KVFavoriteStore keeps the favorite ids as one JSON array under a single key
type KVFavoriteStore struct {
	client KVClient
	key    string
}

// NewKVFavoriteStore creates a favorite store on top of a key-value client
func NewKVFavoriteStore(client KVClient, key string) *KVFavoriteStore {
	return &KVFavoriteStore{client: client, key: key}
}

// LoadFavoriteIDs reads the saved snapshot
func (s *KVFavoriteStore) LoadFavoriteIDs(ctx context.Context) ([]int, error) {
	blob, err := s.client.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, ErrFavoritesNotFound
		}
		return nil, fmt.Errorf("failed to read favorites key %s: %w", s.key, err)
	}

	var ids []int
	if err := json.Unmarshal([]byte(blob), &ids); err != nil {
		return nil, fmt.Errorf("corrupt favorites blob under %s: %w", s.key, err)
	}
	return ids, nil
}

// SaveFavoriteIDs overwrites the snapshot with ids
func (s *KVFavoriteStore) SaveFavoriteIDs(ctx context.Context, ids []int) error {
	if ids == nil {
		ids = []int{}
	}
	blob, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal favorite ids: %w", err)
	}
	if err := s.client.Set(ctx, s.key, string(blob)); err != nil {
		return fmt.Errorf("failed to write favorites key %s: %w", s.key, err)
	}
	return nil
}
