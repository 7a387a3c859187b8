package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"DaxBoard/internal/model"
	"DaxBoard/internal/provider"
)

func testKey() Key {
	return Key{
		Symbol:   "SAP.DE",
		Start:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC),
		Interval: model.IntervalDaily,
	}
}

func testCacheSeries() *model.PriceSeries {
	base := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, 5)
	for i := range bars {
		c := 120 + float64(i)
		bars[i] = model.Bar{Time: base.AddDate(0, 0, i), Open: c, High: c + 1, Low: c - 1, Close: c, AdjClose: c, Volume: 500_000}
	}
	return &model.PriceSeries{Symbol: "SAP.DE", Bars: bars, FetchedAt: base}
}

func TestSQLiteCache_RoundTrip(t *testing.T) {
	c, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"), time.Hour)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer c.Close()

	key := testKey()
	if _, ok := c.Get(key); ok {
		t.Fatal("unexpected hit on empty cache")
	}
	if err := c.Put(key, testCacheSeries()); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok := c.Get(key)
	if !ok {
		t.Fatal("expected hit after put")
	}
	if len(got.Bars) != 5 || got.Bars[0].AdjClose != 120 {
		t.Errorf("unexpected cached series: %d bars", len(got.Bars))
	}

	// A different interval is a different key.
	weekly := key
	weekly.Interval = model.IntervalWeekly
	if _, ok := c.Get(weekly); ok {
		t.Error("interval must be part of the key")
	}
}

func TestSQLiteCache_Expiry(t *testing.T) {
	c, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"), -time.Second)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer c.Close()

	key := testKey()
	if err := c.Put(key, testCacheSeries()); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, ok := c.Get(key); ok {
		t.Error("expired entry must be a miss")
	}
	if err := c.Purge(); err != nil {
		t.Fatalf("purge: %v", err)
	}
}

// countingFetcher wraps the mock and counts series fetches.
type countingFetcher struct {
	provider.MockFetcher
	calls int
}

func (c *countingFetcher) FetchPriceSeries(ctx context.Context, symbol string, start, end time.Time, interval model.Interval) (*model.PriceSeries, error) {
	c.calls++
	return c.MockFetcher.FetchPriceSeries(ctx, symbol, start, end, interval)
}

func TestCachingFetcher_HitSkipsProvider(t *testing.T) {
	inner := &countingFetcher{MockFetcher: provider.MockFetcher{Series: testCacheSeries()}}
	c, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"), time.Hour)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer c.Close()
	f := NewCachingFetcher(inner, c)

	key := testKey()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := f.FetchPriceSeries(ctx, key.Symbol, key.Start, key.End, key.Interval); err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
	}
	if inner.calls != 1 {
		t.Errorf("provider called %d times, want 1", inner.calls)
	}
}
