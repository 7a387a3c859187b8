package model

import "time"

// OwnershipFigure is one ownership percentage together with the
// provider's original display label for it.
type OwnershipFigure struct {
	Label   string
	Percent float64 // 0..100
}

// OwnershipSnapshot holds point-in-time holding concentration figures
// for one symbol.
type OwnershipSnapshot struct {
	Insiders           OwnershipFigure
	InstitutionsShares OwnershipFigure // % of shares outstanding
	InstitutionsFloat  OwnershipFigure // % of float
}

// InstitutionalHolder is one row of the institutional holders table.
type InstitutionalHolder struct {
	Holder       string
	Shares       int64
	DateReported time.Time
	PctOut       float64
}
