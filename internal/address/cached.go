package address

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/pharmahub/backend/internal/cache"
	"github.com/pharmahub/backend/internal/domain"
	"github.com/pharmahub/backend/pkg/logger"
)

// Store is the slice of cache.Store the read-through cache needs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cached is a read-through cache in front of another gazetteer. Concurrent
// misses on the same key share one upstream load. Cache failures fall back
// to the upstream.
type Cached struct {
	next  Gazetteer
	store Store
	ttl   time.Duration
	group singleflight.Group
}

func NewCached(next Gazetteer, store Store, ttl time.Duration) *Cached {
	return &Cached{next: next, store: store, ttl: ttl}
}

func (c *Cached) Provinces(ctx context.Context) ([]domain.AddressOption, error) {
	return c.load(ctx, "provinces", func(ctx context.Context) ([]domain.AddressOption, error) {
		return c.next.Provinces(ctx)
	})
}

func (c *Cached) Districts(ctx context.Context, province string) ([]domain.AddressOption, error) {
	return c.load(ctx, "districts:"+province, func(ctx context.Context) ([]domain.AddressOption, error) {
		return c.next.Districts(ctx, province)
	})
}

func (c *Cached) Communes(ctx context.Context, province, district string) ([]domain.AddressOption, error) {
	return c.load(ctx, "communes:"+districtKey(province, district), func(ctx context.Context) ([]domain.AddressOption, error) {
		return c.next.Communes(ctx, province, district)
	})
}

func (c *Cached) Villages(ctx context.Context, province, district, commune string) ([]domain.AddressOption, error) {
	return c.load(ctx, "villages:"+communeKey(province, district, commune), func(ctx context.Context) ([]domain.AddressOption, error) {
		return c.next.Villages(ctx, province, district, commune)
	})
}

func (c *Cached) load(ctx context.Context, key string, fetch func(context.Context) ([]domain.AddressOption, error)) ([]domain.AddressOption, error) {
	raw, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var options []domain.AddressOption
		if err := json.Unmarshal(raw, &options); err == nil {
			return options, nil
		}
		logger.Warn("drop undecodable address cache entry", zap.String("key", key))
	case !errors.Is(err, cache.ErrMiss):
		logger.Warn("address cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		options, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if options == nil {
			options = []domain.AddressOption{}
		}
		if raw, err := json.Marshal(options); err == nil {
			if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
				logger.Warn("address cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return options, nil
	})
	if err != nil {
		return nil, err
	}
	return clone(v.([]domain.AddressOption)), nil
}
