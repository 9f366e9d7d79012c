package geocoder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"golang.org/x/sync/singleflight"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	"github.com/avelineg/siren-search-widget-sub000/pkg/platform/sentinel"
)

// Store persists geocoded batches. Get returns sentinel.ErrCacheMiss when
// the key is unknown.
type Store interface {
	Get(ctx context.Context, key string) ([]models.Establishment, error)
	Put(ctx context.Context, key string, items []models.Establishment) error
}

// BatchGeocoder geocodes a list of establishments.
type BatchGeocoder interface {
	Geocode(ctx context.Context, items []models.Establishment) ([]models.Establishment, error)
}

// SessionCache memoizes batch results per session key. Concurrent calls
// for the same key share one resolution.
type SessionCache struct {
	store Store
	batch BatchGeocoder
	group singleflight.Group
	options
}

func NewSessionCache(store Store, batch BatchGeocoder, opts ...Option) *SessionCache {
	return &SessionCache{store: store, batch: batch, options: newOptions(opts)}
}

// CacheKey derives the store key from the session key and the input set,
// so a changed establishment list under the same session is a miss.
func CacheKey(sessionKey string, items []models.Establishment) string {
	h := sha256.New()
	for _, item := range items {
		h.Write([]byte(item.Siret))
		h.Write([]byte{0})
		h.Write([]byte(item.Address))
		h.Write([]byte{0x1e})
	}
	return sessionKey + ":" + hex.EncodeToString(h.Sum(nil)[:12])
}

// Geocode returns the cached batch for sessionKey, or resolves and stores
// it. An empty session key bypasses the cache. Incomplete batches (for
// example after cancellation) are returned but never stored.
func (c *SessionCache) Geocode(ctx context.Context, sessionKey string, items []models.Establishment) ([]models.Establishment, error) {
	if sessionKey == "" {
		return c.batch.Geocode(ctx, items)
	}
	key := CacheKey(sessionKey, items)

	if cached, ok := c.lookup(ctx, key); ok {
		c.metrics.IncrementCacheLookup(true)
		return models.CloneEstablishments(cached), nil
	}
	c.metrics.IncrementCacheLookup(false)

	// A shared call can fail only because the leader was cancelled; retry
	// once under our own context when that happens.
	for attempt := 0; ; attempt++ {
		v, err, shared := c.group.Do(key, func() (any, error) {
			if cached, ok := c.lookup(ctx, key); ok {
				return cached, nil
			}
			result, err := c.batch.Geocode(ctx, items)
			if err != nil {
				return result, err
			}
			if err := c.store.Put(ctx, key, result); err != nil {
				c.logger.WarnContext(ctx, "failed to store geocoded batch",
					"key", key,
					"error", err,
				)
			}
			return result, nil
		})
		result, _ := v.([]models.Establishment)
		if err != nil && shared && attempt == 0 && ctx.Err() == nil && isContextErr(err) {
			continue
		}
		return models.CloneEstablishments(result), err
	}
}

func (c *SessionCache) lookup(ctx context.Context, key string) ([]models.Establishment, bool) {
	cached, err := c.store.Get(ctx, key)
	if err == nil {
		return cached, true
	}
	if !errors.Is(err, sentinel.ErrCacheMiss) {
		c.logger.WarnContext(ctx, "geocode cache lookup failed",
			"key", key,
			"error", err,
		)
	}
	return nil, false
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
