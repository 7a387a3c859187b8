package provider

import (
	"context"
	"time"

	"DaxBoard/internal/model"
)

// MockFetcher returns controllable fixed data for development and
// testing.
type MockFetcher struct {
	BasePrice float64
	Series    *model.PriceSeries
	Snapshot  *model.OwnershipSnapshot
	Holders   []model.InstitutionalHolder
	Err       error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchPriceSeries(_ context.Context, symbol string, start, end time.Time, interval model.Interval) (*model.PriceSeries, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Series != nil {
		return m.Series, nil
	}
	days := int(end.Sub(start).Hours() / 24)
	if days < 2 {
		days = 2
	}
	return &model.PriceSeries{
		Symbol:    symbol,
		Bars:      generateMockBars(m.basePrice(), start, days),
		FetchedAt: time.Now(),
	}, nil
}

func (m *MockFetcher) FetchOwnershipSnapshot(_ context.Context, _ string) (*model.OwnershipSnapshot, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Snapshot != nil {
		return m.Snapshot, nil
	}
	return &model.OwnershipSnapshot{
		Insiders:           model.OwnershipFigure{Label: "1.20%", Percent: 1.2},
		InstitutionsShares: model.OwnershipFigure{Label: "63.40%", Percent: 63.4},
		InstitutionsFloat:  model.OwnershipFigure{Label: "64.15%", Percent: 64.15},
	}, nil
}

func (m *MockFetcher) FetchInstitutionalHolders(_ context.Context, _ string) ([]model.InstitutionalHolder, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Holders != nil {
		return m.Holders, nil
	}
	return []model.InstitutionalHolder{
		{Holder: "Example Asset Management", Shares: 12_345_678, DateReported: time.Now().AddDate(0, -3, 0), PctOut: 4.2},
		{Holder: "Sample Capital Partners", Shares: 9_876_543, DateReported: time.Now().AddDate(0, -3, 0), PctOut: 3.1},
	}, nil
}

func (m *MockFetcher) basePrice() float64 {
	if m.BasePrice > 0 {
		return m.BasePrice
	}
	return 100
}

func generateMockBars(basePrice float64, start time.Time, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:     start.AddDate(0, 0, i),
			Open:     p * 0.999,
			High:     p * 1.005,
			Low:      p * 0.995,
			Close:    p,
			AdjClose: p,
			Volume:   1_000_000,
		}
	}
	return bars
}
