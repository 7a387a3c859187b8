package chart

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Rendered figure dimensions, 12x8 "inches" at ~100dpi.
const (
	figureWidth  = 1200
	figureHeight = 800

	ownershipWidth  = 1200
	ownershipHeight = 420

	marginLeft  = 70.0
	marginRight = 20.0
)

// Dark theme, shared by both figure kinds.
const (
	figureBackground = "#121212"
	panelBackground  = "#000000"
	gridColor        = "#555555"
	textColor        = "#ffffff"
)

// RenderFigure projects a figure plan onto a self-contained SVG. The
// plan owns every layout decision; this function only does geometry.
func RenderFigure(plan FigurePlan) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		figureWidth, figureHeight, figureWidth, figureHeight)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, figureWidth, figureHeight, figureBackground)

	tMin, tMax := timeDomain(plan)
	for _, p := range plan.Panels {
		renderPanel(&b, plan.GridRows, p, tMin, tMax)
	}

	b.WriteString(`</svg>`)
	return []byte(b.String())
}

// timeDomain scans every panel so that all x axes share one domain.
func timeDomain(plan FigurePlan) (time.Time, time.Time) {
	var tMin, tMax time.Time
	observe := func(t time.Time) {
		if tMin.IsZero() || t.Before(tMin) {
			tMin = t
		}
		if tMax.IsZero() || t.After(tMax) {
			tMax = t
		}
	}
	for _, p := range plan.Panels {
		for _, l := range p.Lines {
			for _, pt := range l.Points {
				observe(pt.Time)
			}
		}
		for _, bar := range p.Bars {
			observe(bar.Time)
		}
	}
	return tMin, tMax
}

func renderPanel(b *strings.Builder, gridRows int, p Panel, tMin, tMax time.Time) {
	rowH := float64(figureHeight) / float64(gridRows)
	top := float64(p.Rows.Start-1) * rowH
	bottom := float64(p.Rows.End) * rowH
	left := marginLeft
	right := float64(figureWidth) - marginRight

	fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>`,
		left, top, right-left, bottom-top, panelBackground, gridColor)
	if p.Title != "" {
		ty := top - 4
		if ty < 12 {
			ty = top + 16 // topmost panel: keep the title on canvas
		}
		fmt.Fprintf(b, `<text x="%.1f" y="%.1f" fill="%s" font-size="14" text-anchor="middle">%s</text>`,
			(left+right)/2, ty, textColor, escapeText(p.Title))
	}

	yMin, yMax := panelValueDomain(p)
	x := func(t time.Time) float64 {
		if !tMax.After(tMin) {
			return (left + right) / 2
		}
		return left + (right-left)*float64(t.Sub(tMin))/float64(tMax.Sub(tMin))
	}
	y := func(v float64) float64 {
		if yMax <= yMin {
			return (top + bottom) / 2
		}
		return bottom - (bottom-top)*(v-yMin)/(yMax-yMin)
	}

	for _, rl := range p.RefLines {
		fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-dasharray="6 4" opacity="0.5"/>`,
			left, y(rl.Value), right, y(rl.Value), rl.Color)
	}
	for _, tick := range p.YTicks {
		fmt.Fprintf(b, `<text x="%.1f" y="%.1f" fill="%s" font-size="11" text-anchor="end">%.0f</text>`,
			left-6, y(tick)+4, textColor, tick)
	}
	if len(p.YTicks) == 0 && yMax > yMin {
		// Default ticks at the value extremes.
		for _, v := range []float64{yMin, (yMin + yMax) / 2, yMax} {
			fmt.Fprintf(b, `<text x="%.1f" y="%.1f" fill="%s" font-size="11" text-anchor="end">%s</text>`,
				left-6, y(v)+4, textColor, formatTick(v))
		}
	}

	if len(p.Bars) > 0 {
		barW := (right - left) / float64(len(p.Bars)) * 0.8
		for _, bar := range p.Bars {
			by := y(bar.Volume)
			fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.2f" height="%.1f" fill="%s"/>`,
				x(bar.Time)-barW/2, by, barW, bottom-by, volumeBarColor)
		}
	}

	for _, l := range p.Lines {
		var pts strings.Builder
		for _, pt := range l.Points {
			if math.IsNaN(pt.Value) || math.IsInf(pt.Value, 0) {
				continue
			}
			fmt.Fprintf(&pts, "%.1f,%.1f ", x(pt.Time), y(pt.Value))
		}
		fmt.Fprintf(b, `<polyline points="%s" fill="none" stroke="%s" stroke-width="2" opacity="0.9"/>`,
			strings.TrimSpace(pts.String()), l.Color)
	}

	// Legend only where more than one line competes for the panel.
	if len(p.Lines) > 1 {
		for i, l := range p.Lines {
			ly := top + 18 + float64(i)*16
			fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="12" height="3" fill="%s"/>`, left+10, ly-4, l.Color)
			fmt.Fprintf(b, `<text x="%.1f" y="%.1f" fill="%s" font-size="12">%s</text>`,
				left+28, ly, textColor, escapeText(l.Label))
		}
	}

	// Bottom panel carries the date ticks for the shared axis.
	if p.Rows.End == gridRows || p.Kind == PanelPrice {
		if !tMin.IsZero() && tMax.After(tMin) {
			for _, frac := range []float64{0, 0.5, 1} {
				t := tMin.Add(time.Duration(frac * float64(tMax.Sub(tMin))))
				fmt.Fprintf(b, `<text x="%.1f" y="%.1f" fill="%s" font-size="11" text-anchor="middle">%s</text>`,
					left+(right-left)*frac, bottom+14, textColor, t.Format("2006-01-02"))
			}
		}
	}
}

func panelValueDomain(p Panel) (float64, float64) {
	if len(p.YTicks) > 0 {
		// Fixed-scale panel (the oscillator).
		return p.YTicks[0], p.YTicks[len(p.YTicks)-1]
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, l := range p.Lines {
		for _, pt := range l.Points {
			if math.IsNaN(pt.Value) || math.IsInf(pt.Value, 0) {
				continue
			}
			lo = math.Min(lo, pt.Value)
			hi = math.Max(hi, pt.Value)
		}
	}
	for _, bar := range p.Bars {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, bar.Volume)
	}
	if math.IsInf(lo, 1) || math.IsInf(hi, -1) {
		return 0, 0
	}
	pad := (hi - lo) * 0.02
	return lo - pad, hi + pad
}

// RenderOwnership projects an ownership plan onto a self-contained SVG.
func RenderOwnership(plan OwnershipPlan) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		ownershipWidth, ownershipHeight, ownershipWidth, ownershipHeight)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, ownershipWidth, ownershipHeight, figureBackground)

	colW := float64(ownershipWidth) / float64(plan.GridColumns)
	for _, pie := range plan.Pies {
		cx := colW*float64(pie.Column-1) + colW/2
		cy := float64(ownershipHeight)/2 + 10
		r := math.Min(colW, float64(ownershipHeight)) * 0.38
		renderPie(&b, pie, cx, cy, r)
	}

	b.WriteString(`</svg>`)
	return []byte(b.String())
}

func renderPie(b *strings.Builder, pie Pie, cx, cy, r float64) {
	fmt.Fprintf(b, `<text x="%.1f" y="%.1f" fill="%s" font-size="14" text-anchor="middle">%s</text>`,
		cx, cy-r-16, textColor, escapeText(pie.Title))

	total := 0.0
	for _, s := range pie.Slices {
		if s.Value > 0 {
			total += s.Value
		}
	}
	if total <= 0 {
		return
	}

	angle := float64(pie.StartAngle)
	for _, s := range pie.Slices {
		if s.Value <= 0 {
			continue
		}
		sweep := 360 * s.Value / total
		if sweep >= 360 {
			fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s"/>`,
				cx, cy, r, s.Color, panelBackground)
		} else {
			end := angle - sweep
			if !pie.Clockwise {
				end = angle + sweep
			}
			x0, y0 := arcPoint(cx, cy, r, angle)
			x1, y1 := arcPoint(cx, cy, r, end)
			large := 0
			if sweep > 180 {
				large = 1
			}
			sweepFlag := 1
			if !pie.Clockwise {
				sweepFlag = 0
			}
			fmt.Fprintf(b, `<path d="M%.1f,%.1f L%.1f,%.1f A%.1f,%.1f 0 %d %d %.1f,%.1f Z" fill="%s" stroke="%s"/>`,
				cx, cy, x0, y0, r, r, large, sweepFlag, x1, y1, s.Color, panelBackground)
		}
		if s.Label != "" {
			mid := angle - sweep/2
			if !pie.Clockwise {
				mid = angle + sweep/2
			}
			lx, ly := arcPoint(cx, cy, r+16, mid)
			fmt.Fprintf(b, `<text x="%.1f" y="%.1f" fill="%s" font-size="12" text-anchor="middle">%s</text>`,
				lx, ly, textColor, escapeText(s.Label))
		}
		if pie.Clockwise {
			angle -= sweep
		} else {
			angle += sweep
		}
	}
}

// arcPoint maps a matplotlib-convention angle (0 = east, positive
// counterclockwise) onto SVG coordinates (y grows downward).
func arcPoint(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Cos(rad), cy - r*math.Sin(rad)
}

func formatTick(v float64) string {
	if math.Abs(v) >= 1_000_000 {
		return fmt.Sprintf("%.1fM", v/1_000_000)
	}
	if math.Abs(v) >= 1000 {
		return fmt.Sprintf("%.1fk", v/1000)
	}
	return fmt.Sprintf("%.2f", v)
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
