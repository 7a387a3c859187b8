package model

import "time"

// IndicatorPoint is one derived indicator value at a bar timestamp.
type IndicatorPoint struct {
	Time  time.Time
	Value float64
}

// IndicatorSeries is a derived series aligned with a subset of the
// source PriceSeries timestamps. Positions where the indicator's
// lookback window is unsatisfied are simply absent, so the series may
// be shorter than its source, or empty.
type IndicatorSeries struct {
	Label  string
	Points []IndicatorPoint
}
