// Package chart turns price and indicator series into deterministic
// figure plans and renders them. All layout decisions (panel set, grid
// placement, lines, colors, labels) live in the plans; rendering is a
// thin projection.
package chart

import (
	"time"

	"DaxBoard/internal/model"
)

// PanelKind identifies one of the stacked figure panels.
type PanelKind string

const (
	PanelPrice      PanelKind = "price"
	PanelOscillator PanelKind = "oscillator"
	PanelVolume     PanelKind = "volume"
)

// figureGridRows is the fixed vertical grid of the composite figure.
const figureGridRows = 14

// Line and panel colors, matching the dashboard's dark theme.
const (
	priceColor        = "#d3d3d3"
	smaPrimaryColor   = "#ffd700"
	smaSecondaryColor = "#2069e0"
	refExtremeColor   = "#ff0000"
	refStrongColor    = "#ffaa00"
	refModerateColor  = "#00ff00"
	volumeBarColor    = "#ffffff"
)

// RowSpan is an inclusive 1-based row range on the figure grid.
type RowSpan struct {
	Start int
	End   int
}

// Line is one plotted series within a panel.
type Line struct {
	Label  string
	Color  string
	Points []model.IndicatorPoint
}

// RefLine is a fixed horizontal reference line.
type RefLine struct {
	Value float64
	Color string
}

// VolumeBar is one bar of the volume panel.
type VolumeBar struct {
	Time   time.Time
	Volume float64
}

// Panel is one rectangular region of the composite figure.
type Panel struct {
	Kind     PanelKind
	Title    string
	Rows     RowSpan
	Lines    []Line
	RefLines []RefLine
	YTicks   []float64
	Bars     []VolumeBar
}

// FigurePlan is the full layout decision for one render cycle. Equal
// inputs always produce an equal plan.
type FigurePlan struct {
	Symbol   string
	GridRows int
	Panels   []Panel
}

// Indicators carries the derived series for the enabled indicators.
// Nil entries are simply not drawn.
type Indicators struct {
	PrimaryMA   *model.IndicatorSeries
	SecondaryMA *model.IndicatorSeries
	Oscillator  *model.IndicatorSeries
}

// rowLayouts maps (oscillator present, volume present) to the lower
// panel spans. The price panel always occupies rows 1-7; the volume
// panel sits further down when the oscillator panel is in between.
// This offset is part of the layout contract, hence a table rather
// than arithmetic.
var rowLayouts = map[[2]bool]struct {
	oscillator RowSpan
	volume     RowSpan
}{
	{false, false}: {},
	{true, false}:  {oscillator: RowSpan{9, 10}},
	{false, true}:  {volume: RowSpan{9, 11}},
	{true, true}:   {oscillator: RowSpan{9, 10}, volume: RowSpan{12, 14}},
}

var priceRows = RowSpan{1, 7}

// Oscillator panel furniture: three threshold tiers (extreme, strong,
// moderate) and the fixed y ticks.
var oscillatorRefLines = []RefLine{
	{Value: 1, Color: refExtremeColor},
	{Value: 99, Color: refExtremeColor},
	{Value: 15, Color: refStrongColor},
	{Value: 85, Color: refStrongColor},
	{Value: 30, Color: refModerateColor},
	{Value: 70, Color: refModerateColor},
}

var oscillatorYTicks = []float64{0, 30, 70, 100}

// PlanFigure partitions the figure into stacked panels per the config
// flags and populates them from the series and indicators. All panels
// share the series' time domain, so a renderer can keep their x axes
// aligned.
func PlanFigure(series *model.PriceSeries, ind Indicators, cfg model.ChartConfig) FigurePlan {
	layout := rowLayouts[[2]bool{cfg.Oscillator, cfg.VolumePanel}]

	plan := FigurePlan{
		Symbol:   series.Symbol,
		GridRows: figureGridRows,
	}

	price := Panel{
		Kind:  PanelPrice,
		Title: "Price Chart",
		Rows:  priceRows,
		Lines: []Line{adjCloseLine(series)},
	}
	if cfg.PrimaryMA && ind.PrimaryMA != nil {
		price.Lines = append(price.Lines, Line{
			Label:  ind.PrimaryMA.Label,
			Color:  smaPrimaryColor,
			Points: ind.PrimaryMA.Points,
		})
	}
	if cfg.SecondaryMA && ind.SecondaryMA != nil {
		price.Lines = append(price.Lines, Line{
			Label:  ind.SecondaryMA.Label,
			Color:  smaSecondaryColor,
			Points: ind.SecondaryMA.Points,
		})
	}
	plan.Panels = append(plan.Panels, price)

	if cfg.Oscillator {
		osc := Panel{
			Kind:     PanelOscillator,
			Rows:     layout.oscillator,
			RefLines: oscillatorRefLines,
			YTicks:   oscillatorYTicks,
		}
		if ind.Oscillator != nil {
			osc.Title = ind.Oscillator.Label
			osc.Lines = []Line{{
				Label:  ind.Oscillator.Label,
				Color:  priceColor,
				Points: ind.Oscillator.Points,
			}}
		}
		plan.Panels = append(plan.Panels, osc)
	}

	if cfg.VolumePanel {
		bars := make([]VolumeBar, len(series.Bars))
		for i, b := range series.Bars {
			bars[i] = VolumeBar{Time: b.Time, Volume: b.Volume}
		}
		plan.Panels = append(plan.Panels, Panel{
			Kind:  PanelVolume,
			Title: "Volume",
			Rows:  layout.volume,
			Bars:  bars,
		})
	}

	return plan
}

func adjCloseLine(series *model.PriceSeries) Line {
	points := make([]model.IndicatorPoint, len(series.Bars))
	for i, b := range series.Bars {
		points[i] = model.IndicatorPoint{Time: b.Time, Value: b.AdjClose}
	}
	return Line{Label: "Adj. Close", Color: priceColor, Points: points}
}
