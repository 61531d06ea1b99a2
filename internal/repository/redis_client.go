package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/go-redis/redis/v8"
)

// ErrKeyNotFound is returned by KVClient.Get for a missing key
var ErrKeyNotFound = errors.New("key not found")

// KVClient is the subset of Redis the favorite store needs
type KVClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
}

// RedisKVClient adapts a go-redis client to KVClient
type RedisKVClient struct {
	client *redis.Client
}

// NewRedisKVClient connects to Redis and verifies the connection
func NewRedisKVClient(ctx context.Context, addr, password string, db int) (*RedisKVClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	kv := &RedisKVClient{client: client}
	if err := kv.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", addr, err)
	}
	log.Printf("✅ Connected to Redis at %s", addr)
	return kv, nil
}

// Get retrieves the value for a given key
func (r *RedisKVClient) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return value, err
}

// Set stores a key-value pair without expiry
func (r *RedisKVClient) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Ping checks the connection
func (r *RedisKVClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying client
func (r *RedisKVClient) Close() error {
	return r.client.Close()
}

// MemoryKVClient is an in-process KVClient used when Redis is not
// configured and in tests. Favorites then last for the process lifetime.
type MemoryKVClient struct {
	mu   sync.RWMutex
	data map[string]string

	// FailSet and FailGet force errors, for exercising store failures
	FailSet error
	FailGet error
}

// NewMemoryKVClient creates an empty in-memory store
func NewMemoryKVClient() *MemoryKVClient {
	return &MemoryKVClient{data: make(map[string]string)}
}

// Get retrieves a value for a given key
func (m *MemoryKVClient) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailGet != nil {
		return "", m.FailGet
	}
	value, ok := m.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set stores a key-value pair
func (m *MemoryKVClient) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet != nil {
		return m.FailSet
	}
	m.data[key] = value
	return nil
}

// Ping always succeeds
func (m *MemoryKVClient) Ping(context.Context) error {
	return nil
}
