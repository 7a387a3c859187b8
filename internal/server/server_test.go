package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"DaxBoard/internal/dashboard"
	"DaxBoard/internal/provider"
	"DaxBoard/internal/symbols"
)

func testServer(f provider.Fetcher) *Server {
	dir := symbols.NewDirectory([]symbols.Entry{
		{Name: "SAP", Ticker: "SAP.DE"},
		{Name: "BMW", Ticker: "BMW.DE"},
	})
	return New(":0", dashboard.NewController(f, dir), dir)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleSymbols(t *testing.T) {
	rec := get(t, testServer(&provider.MockFetcher{}), "/api/symbols")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var entries []symbolEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "SAP" {
		t.Errorf("entries %v", entries)
	}
}

func TestHandleDashboard(t *testing.T) {
	rec := get(t, testServer(&provider.MockFetcher{BasePrice: 150}),
		"/api/dashboard?symbol=SAP&start=2022-01-01&end=2023-01-01&interval=1d")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	var resp dashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Title != "SAP (SAP.DE)" {
		t.Errorf("title %q", resp.Title)
	}
	if !strings.HasPrefix(resp.FigureSVG, "<svg") {
		t.Error("figure artifact is not SVG")
	}
	if len(resp.SeriesTable.Rows) == 0 {
		t.Error("missing series rows")
	}
}

func TestHandleDashboard_ConfigRejected(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"unknown symbol", "/api/dashboard?symbol=Nokia"},
		{"bad window", "/api/dashboard?symbol=SAP&ma1_window=3"},
		{"end before start", "/api/dashboard?symbol=SAP&start=2023-01-01&end=2022-01-01"},
		{"bad interval", "/api/dashboard?symbol=SAP&interval=hourly"},
		{"bad date", "/api/dashboard?symbol=SAP&start=01.02.2023"},
	}
	s := testServer(&provider.MockFetcher{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.target)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("status %d, want 422", rec.Code)
			}
		})
	}
}

func TestHandleDashboard_ProviderDown(t *testing.T) {
	s := testServer(&provider.MockFetcher{Err: provider.ErrNoData})
	rec := get(t, s, "/api/dashboard?symbol=SAP")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", rec.Code)
	}
}

func TestHandleDashboard_PanelFlags(t *testing.T) {
	s := testServer(&provider.MockFetcher{})
	rec := get(t, s, "/api/dashboard?symbol=SAP&rsi=false&volume=false&ma2=false")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp dashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(resp.FigureSVG, "Volume") {
		t.Error("volume panel should be absent")
	}
}

func TestHandleIndex(t *testing.T) {
	rec := get(t, testServer(&provider.MockFetcher{}), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "DAX Stock Visualizer") {
		t.Error("missing page title")
	}
	if !strings.Contains(body, "<svg") {
		t.Error("missing embedded figure")
	}
	if !strings.Contains(body, "SAP (SAP.DE)") {
		t.Error("first constituent should render by default")
	}
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, testServer(&provider.MockFetcher{}), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}
