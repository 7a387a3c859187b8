// Package cache provides a swappable store for complete provider
// responses. A hit returns the full prior result; anything else is a
// miss — entries have no partial-staleness semantics.
package cache

import (
	"context"
	"log"
	"time"

	"DaxBoard/internal/model"
	"DaxBoard/internal/provider"
)

// Key identifies one full price-series request.
type Key struct {
	Symbol   string
	Start    time.Time
	End      time.Time
	Interval model.Interval
}

// Cache stores complete price series keyed by request.
type Cache interface {
	Get(key Key) (*model.PriceSeries, bool)
	Put(key Key, series *model.PriceSeries) error
	Purge() error
	Close() error
}

// CachingFetcher decorates a Fetcher with a price-series cache.
// Ownership calls pass through: they are keyed by symbol alone and
// cheap enough to refetch per cycle.
type CachingFetcher struct {
	provider.Fetcher
	Cache Cache
}

// NewCachingFetcher wraps next with the given cache.
func NewCachingFetcher(next provider.Fetcher, c Cache) *CachingFetcher {
	return &CachingFetcher{Fetcher: next, Cache: c}
}

func (f *CachingFetcher) Name() string { return f.Fetcher.Name() + "+cache" }

// FetchPriceSeries serves a full prior result when present, otherwise
// delegates and stores the fresh series.
func (f *CachingFetcher) FetchPriceSeries(ctx context.Context, symbol string, start, end time.Time, interval model.Interval) (*model.PriceSeries, error) {
	key := Key{Symbol: symbol, Start: start, End: end, Interval: interval}
	if series, ok := f.Cache.Get(key); ok {
		return series, nil
	}
	series, err := f.Fetcher.FetchPriceSeries(ctx, symbol, start, end, interval)
	if err != nil {
		return nil, err
	}
	if err := f.Cache.Put(key, series); err != nil {
		log.Printf("[WARN] cache store %s: %v", symbol, err)
	}
	return series, nil
}
