package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	"github.com/avelineg/siren-search-widget-sub000/pkg/platform/sentinel"
)

const geocodeKeyPrefix = "siren:geocode:"

// RedisStore shares geocoded batches between instances. Entries expire
// after the configured TTL so abandoned sessions do not pile up.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store. A non-positive ttl keeps
// entries until they are overwritten.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]models.Establishment, error) {
	raw, err := s.client.Get(ctx, geocodeKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("get geocode batch: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	var items []models.Establishment
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode geocode batch: %w", err)
	}
	return items, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, items []models.Establishment) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode geocode batch: %w", err)
	}
	if err := s.client.Set(ctx, geocodeKeyPrefix+key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("put geocode batch: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return nil
}
