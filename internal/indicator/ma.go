package indicator

import (
	"fmt"

	"DaxBoard/internal/model"
)

// MovingAverage computes the trailing simple moving average of the
// adjusted close over the given window. The first emitted point sits
// at the window-1'th bar; positions with an unsatisfied lookback are
// absent from the result, and a series shorter than the window yields
// an empty result rather than an error. Window positivity is enforced
// by request validation upstream.
func MovingAverage(series *model.PriceSeries, window int) model.IndicatorSeries {
	out := model.IndicatorSeries{Label: fmt.Sprintf("SMA(%d)", window)}
	if window <= 0 || len(series.Bars) < window {
		return out
	}
	out.Points = make([]model.IndicatorPoint, 0, len(series.Bars)-window+1)
	sum := 0.0
	for i, b := range series.Bars {
		sum += b.AdjClose
		if i >= window {
			sum -= series.Bars[i-window].AdjClose
		}
		if i >= window-1 {
			out.Points = append(out.Points, model.IndicatorPoint{
				Time:  b.Time,
				Value: sum / float64(window),
			})
		}
	}
	return out
}
