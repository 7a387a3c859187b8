// Package provider isolates all market-data I/O behind the Fetcher
// interface. The rest of the pipeline treats a fetch as a synchronous
// call that returns a complete result or fails outright.
package provider

import (
	"context"
	"errors"
	"time"

	"DaxBoard/internal/model"
)

// ErrNoData indicates the provider returned no usable rows for the
// request (unknown symbol, empty range, delisted ticker).
var ErrNoData = errors.New("provider: no data")

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchPriceSeries(ctx context.Context, symbol string, start, end time.Time, interval model.Interval) (*model.PriceSeries, error)
	FetchOwnershipSnapshot(ctx context.Context, symbol string) (*model.OwnershipSnapshot, error)
	FetchInstitutionalHolders(ctx context.Context, symbol string) ([]model.InstitutionalHolder, error)
	Name() string
}
