package indicator

import (
	"fmt"

	"DaxBoard/internal/model"
)

// MomentumOscillator computes a bounded [0,100] relative-strength
// oscillator over the adjusted close. Period-over-period changes are
// split into gain and loss streams, each smoothed by an exponential
// moving average with decay 1/periods seeded from the first change,
// and combined as 100 - 100/(1+gain/loss).
//
// The first bar has no prior change and never appears in the output.
// A zero smoothed loss with positive smoothed gain saturates the value
// to 100; while both smoothed streams are zero (a flat tape) the value
// is undefined and those points are dropped.
func MomentumOscillator(series *model.PriceSeries, periods int) model.IndicatorSeries {
	out := model.IndicatorSeries{Label: fmt.Sprintf("RSI (%d)", periods)}
	bars := series.Bars
	if periods <= 0 || len(bars) < 2 {
		return out
	}

	alpha := 1.0 / float64(periods)
	var smGain, smLoss float64
	for i := 1; i < len(bars); i++ {
		change := bars[i].AdjClose - bars[i-1].AdjClose
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}

		if i == 1 {
			smGain, smLoss = gain, loss
		} else {
			smGain = alpha*gain + (1-alpha)*smGain
			smLoss = alpha*loss + (1-alpha)*smLoss
		}

		var value float64
		switch {
		case smGain == 0 && smLoss == 0:
			continue // no movement yet, undefined
		case smLoss == 0:
			value = 100
		default:
			rs := smGain / smLoss
			value = 100 - 100/(1+rs)
		}
		out.Points = append(out.Points, model.IndicatorPoint{Time: bars[i].Time, Value: value})
	}
	return out
}
