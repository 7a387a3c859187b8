// Package dashboard orchestrates one render cycle: validate the
// request, fetch from the provider, derive indicators, plan and render
// the figures, and build the table views. The controller owns no retry
// or caching logic; collaborator failures abort the cycle.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"DaxBoard/internal/chart"
	"DaxBoard/internal/indicator"
	"DaxBoard/internal/model"
	"DaxBoard/internal/provider"
	"DaxBoard/internal/symbols"
	"DaxBoard/internal/tableview"
)

// ConfigError reports an invalid render request, rejected before any
// fetch or computation runs.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Request describes one render cycle.
type Request struct {
	Symbol   string // display name or ticker code
	Start    time.Time
	End      time.Time
	Interval model.Interval
	Chart    model.ChartConfig
}

// Result carries all artifacts of one completed render cycle.
type Result struct {
	CycleID       string
	Company       string
	Ticker        string
	Title         string
	FigurePlan    chart.FigurePlan
	OwnershipPlan chart.OwnershipPlan
	FigureSVG     []byte
	OwnershipSVG  []byte
	SeriesTable   tableview.Table
	HoldersTable  tableview.Table
}

// Controller runs render cycles against its collaborators.
type Controller struct {
	Fetcher   provider.Fetcher
	Directory *symbols.Directory
}

// NewController creates a Controller.
func NewController(fetcher provider.Fetcher, dir *symbols.Directory) *Controller {
	return &Controller{Fetcher: fetcher, Directory: dir}
}

// Validate checks the request before any computation runs.
func (c *Controller) Validate(req Request) error {
	if req.Symbol == "" {
		return &ConfigError{Field: "symbol", Reason: "required"}
	}
	if _, _, ok := c.Directory.Resolve(req.Symbol); !ok {
		return &ConfigError{Field: "symbol", Reason: fmt.Sprintf("unknown symbol %q", req.Symbol)}
	}
	if req.Interval == "" {
		return &ConfigError{Field: "interval", Reason: "required"}
	}
	if req.End.Before(req.Start) {
		return &ConfigError{Field: "end", Reason: "end date before start date"}
	}
	cfg := req.Chart
	if cfg.PrimaryMAWindow < model.MinMAWindow || cfg.PrimaryMAWindow > model.MaxMAWindow {
		return &ConfigError{Field: "primary_ma_window", Reason: windowReason(model.MinMAWindow, model.MaxMAWindow)}
	}
	if cfg.SecondaryMAWindow < model.MinMAWindow || cfg.SecondaryMAWindow > model.MaxMAWindow {
		return &ConfigError{Field: "secondary_ma_window", Reason: windowReason(model.MinMAWindow, model.MaxMAWindow)}
	}
	if cfg.OscillatorWindow < model.MinOscillatorWindow || cfg.OscillatorWindow > model.MaxOscillatorWindow {
		return &ConfigError{Field: "oscillator_window", Reason: windowReason(model.MinOscillatorWindow, model.MaxOscillatorWindow)}
	}
	return nil
}

func windowReason(min, max int) string {
	return fmt.Sprintf("window must be in [%d,%d]", min, max)
}

// Run executes one full synchronous render cycle. A canceled context
// between stages discards the cycle; nothing partial is returned.
func (c *Controller) Run(ctx context.Context, req Request) (*Result, error) {
	if err := c.Validate(req); err != nil {
		return nil, err
	}
	ticker, company, _ := c.Directory.Resolve(req.Symbol)

	series, err := c.Fetcher.FetchPriceSeries(ctx, ticker, req.Start, req.End, req.Interval)
	if err != nil {
		return nil, fmt.Errorf("fetch price series %s: %w", ticker, err)
	}
	if len(series.Bars) == 0 {
		return nil, fmt.Errorf("price series %s: %w", ticker, provider.ErrNoData)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot, err := c.Fetcher.FetchOwnershipSnapshot(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("fetch ownership %s: %w", ticker, err)
	}
	holders, err := c.Fetcher.FetchInstitutionalHolders(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("fetch holders %s: %w", ticker, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var ind chart.Indicators
	if req.Chart.PrimaryMA {
		s := indicator.MovingAverage(series, req.Chart.PrimaryMAWindow)
		ind.PrimaryMA = &s
	}
	if req.Chart.SecondaryMA {
		s := indicator.MovingAverage(series, req.Chart.SecondaryMAWindow)
		ind.SecondaryMA = &s
	}
	if req.Chart.Oscillator {
		s := indicator.MomentumOscillator(series, req.Chart.OscillatorWindow)
		ind.Oscillator = &s
	}

	figurePlan := chart.PlanFigure(series, ind, req.Chart)
	ownershipPlan := chart.PlanOwnership(*snapshot)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Result{
		CycleID:       uuid.NewString(),
		Company:       company,
		Ticker:        ticker,
		Title:         fmt.Sprintf("%s (%s)", company, ticker),
		FigurePlan:    figurePlan,
		OwnershipPlan: ownershipPlan,
		FigureSVG:     chart.RenderFigure(figurePlan),
		OwnershipSVG:  chart.RenderOwnership(ownershipPlan),
		SeriesTable:   tableview.SeriesTable(series),
		HoldersTable:  tableview.HoldersTable(holders),
	}, nil
}
