package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"DaxBoard/internal/model"
	"DaxBoard/internal/provider"
	"DaxBoard/internal/symbols"
)

func testController(f provider.Fetcher) *Controller {
	return NewController(f, symbols.NewDirectory([]symbols.Entry{{Name: "SAP", Ticker: "SAP.DE"}}))
}

func validRequest() Request {
	return Request{
		Symbol:   "SAP",
		Start:    time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		Interval: model.IntervalDaily,
		Chart:    model.DefaultChartConfig(),
	}
}

func TestRun_HappyPath(t *testing.T) {
	c := testController(&provider.MockFetcher{BasePrice: 120})
	res, err := c.Run(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.CycleID == "" {
		t.Error("missing cycle ID")
	}
	if res.Title != "SAP (SAP.DE)" {
		t.Errorf("title %q", res.Title)
	}
	if len(res.FigurePlan.Panels) != 3 {
		t.Errorf("expected 3 panels, got %d", len(res.FigurePlan.Panels))
	}
	if !strings.HasPrefix(string(res.FigureSVG), "<svg") {
		t.Error("figure artifact is not SVG")
	}
	if !strings.HasPrefix(string(res.OwnershipSVG), "<svg") {
		t.Error("ownership artifact is not SVG")
	}
	if len(res.SeriesTable.Rows) == 0 || len(res.HoldersTable.Rows) == 0 {
		t.Error("missing table rows")
	}
}

func TestValidate_Rejections(t *testing.T) {
	c := testController(&provider.MockFetcher{})
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"unknown symbol", func(r *Request) { r.Symbol = "Nokia" }},
		{"empty symbol", func(r *Request) { r.Symbol = "" }},
		{"end before start", func(r *Request) { r.End = r.Start.AddDate(-1, 0, 0) }},
		{"missing interval", func(r *Request) { r.Interval = "" }},
		{"primary window low", func(r *Request) { r.Chart.PrimaryMAWindow = 4 }},
		{"primary window high", func(r *Request) { r.Chart.PrimaryMAWindow = 201 }},
		{"secondary window low", func(r *Request) { r.Chart.SecondaryMAWindow = 0 }},
		{"oscillator window high", func(r *Request) { r.Chart.OscillatorWindow = 51 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := c.Run(context.Background(), req)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
		})
	}
}

func TestRun_NoPartialChartOnProviderFailure(t *testing.T) {
	boom := errors.New("provider down")
	c := testController(&provider.MockFetcher{Err: boom})
	res, err := c.Run(context.Background(), validRequest())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
	if res != nil {
		t.Error("no partial result may be returned")
	}
}

func TestRun_NoData(t *testing.T) {
	empty := &model.PriceSeries{Symbol: "SAP.DE"}
	c := testController(&provider.MockFetcher{Series: empty})
	_, err := c.Run(context.Background(), validRequest())
	if !errors.Is(err, provider.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	c := testController(&provider.MockFetcher{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := c.Run(ctx, validRequest())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res != nil {
		t.Error("canceled cycle must discard its results")
	}
}

func TestRun_PanelSubsetConfig(t *testing.T) {
	c := testController(&provider.MockFetcher{})
	req := validRequest()
	req.Chart.Oscillator = false
	req.Chart.VolumePanel = false
	req.Chart.SecondaryMA = false

	res, err := c.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.FigurePlan.Panels) != 1 {
		t.Errorf("expected price panel only, got %d panels", len(res.FigurePlan.Panels))
	}
	if len(res.FigurePlan.Panels[0].Lines) != 2 {
		t.Errorf("expected close + primary overlay, got %d lines", len(res.FigurePlan.Panels[0].Lines))
	}
}
