package model

import "fmt"

// Interval is a bar aggregation period, stored as its provider wire code.
type Interval string

const (
	IntervalDaily   Interval = "1d"
	IntervalWeekly  Interval = "1wk"
	IntervalMonthly Interval = "1mo"
)

// ParseInterval accepts wire codes as well as the selector display
// labels ("1 day", "1 week", "1 month").
func ParseInterval(s string) (Interval, error) {
	switch s {
	case "1d", "1 day", "daily":
		return IntervalDaily, nil
	case "1wk", "1 week", "weekly":
		return IntervalWeekly, nil
	case "1mo", "1 month", "monthly":
		return IntervalMonthly, nil
	}
	return "", fmt.Errorf("unknown interval %q", s)
}

// Label returns the selector display label for the interval.
func (iv Interval) Label() string {
	switch iv {
	case IntervalDaily:
		return "1 day"
	case IntervalWeekly:
		return "1 week"
	case IntervalMonthly:
		return "1 month"
	}
	return string(iv)
}
