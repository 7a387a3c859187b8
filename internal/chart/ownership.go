package chart

import "DaxBoard/internal/model"

// Two-slice palette: the share of interest against its remainder.
const (
	shareColor     = "#000000"
	remainderColor = "#ffffff"
)

// ownershipGridColumns is the horizontal grid of the ownership figure.
// Pies sit in columns 1, 3 and 5, leaving blank spacer columns.
const ownershipGridColumns = 5

// PieSlice is one wedge of a proportion chart. The remainder slice
// carries no label.
type PieSlice struct {
	Value float64
	Color string
	Label string
}

// Pie is a single two-slice proportion chart.
type Pie struct {
	Title      string
	Column     int // 1-based column on the ownership grid
	StartAngle int // degrees, matplotlib convention (90 = 12 o'clock)
	Clockwise  bool
	Slices     [2]PieSlice
}

// OwnershipPlan is the layout decision for the ownership comparison
// figure: three pies on a five-column grid.
type OwnershipPlan struct {
	GridColumns int
	Pies        [3]Pie
}

// PlanOwnership builds the three-pie ownership comparison from a
// snapshot. Each pie opposes the stated percentage to its complement.
func PlanOwnership(snap model.OwnershipSnapshot) OwnershipPlan {
	figures := [3]struct {
		fig    model.OwnershipFigure
		title  string
		column int
	}{
		{snap.Insiders, "% of Shares Held by Insiders", 1},
		{snap.InstitutionsShares, "% of Shares Held by Institutions", 3},
		{snap.InstitutionsFloat, "% of Float Held by Institutions", 5},
	}

	plan := OwnershipPlan{GridColumns: ownershipGridColumns}
	for i, f := range figures {
		plan.Pies[i] = Pie{
			Title:      f.title,
			Column:     f.column,
			StartAngle: 90,
			Clockwise:  true,
			Slices: [2]PieSlice{
				{Value: f.fig.Percent, Color: shareColor, Label: f.fig.Label},
				{Value: 100 - f.fig.Percent, Color: remainderColor},
			},
		}
	}
	return plan
}
