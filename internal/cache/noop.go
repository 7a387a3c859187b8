package cache

import "DaxBoard/internal/model"

// NoopCache never hits and drops all stores. Used when no cache path
// is configured or the SQLite cache fails to open.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (*NoopCache) Get(Key) (*model.PriceSeries, bool) { return nil, false }
func (*NoopCache) Put(Key, *model.PriceSeries) error  { return nil }
func (*NoopCache) Purge() error                       { return nil }
func (*NoopCache) Close() error                       { return nil }
