package model

import "time"

// Bar represents a single candlestick bar.
type Bar struct {
	Time     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	AdjClose float64
	Volume   float64
}

// PriceSeries holds raw price data for one symbol. Bars are sorted
// ascending by time with no duplicate timestamps and are never mutated
// after fetch; later pipeline stages derive new series instead.
type PriceSeries struct {
	Symbol    string
	Bars      []Bar
	FetchedAt time.Time
}
