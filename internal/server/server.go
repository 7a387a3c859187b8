// Package server exposes the dashboard over HTTP. Every request runs
// one full render cycle; the request context cancels an in-flight
// cycle when the client goes away.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"DaxBoard/internal/dashboard"
	"DaxBoard/internal/model"
	"DaxBoard/internal/symbols"
	"DaxBoard/internal/tableview"
)

// Server wires the dashboard controller to HTTP routes.
type Server struct {
	controller *dashboard.Controller
	directory  *symbols.Directory
	httpServer *http.Server
}

// New creates a Server listening on addr.
func New(addr string, ctrl *dashboard.Controller, dir *symbols.Directory) *Server {
	s := &Server{controller: ctrl, directory: dir}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/api/symbols", s.handleSymbols)
	r.Get("/api/dashboard", s.handleDashboard)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routed handler, for tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// ListenAndServe blocks serving requests until Shutdown.
func (s *Server) ListenAndServe() error {
	log.Printf("[INFO] http server listening on %s", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

type symbolEntry struct {
	Name   string `json:"name"`
	Ticker string `json:"ticker"`
}

func (s *Server) handleSymbols(w http.ResponseWriter, r *http.Request) {
	entries := s.directory.List()
	out := make([]symbolEntry, len(entries))
	for i, e := range entries {
		out[i] = symbolEntry{Name: e.Name, Ticker: e.Ticker}
	}
	render.JSON(w, r, out)
}

type dashboardResponse struct {
	CycleID      string          `json:"cycle_id"`
	Title        string          `json:"title"`
	Company      string          `json:"company"`
	Ticker       string          `json:"ticker"`
	FigureSVG    string          `json:"figure_svg"`
	OwnershipSVG string          `json:"ownership_svg"`
	SeriesTable  tableview.Table `json:"series_table"`
	HoldersTable tableview.Table `json:"holders_table"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	res, err := s.controller.Run(r.Context(), req)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dashboardResponse{
		CycleID:      res.CycleID,
		Title:        res.Title,
		Company:      res.Company,
		Ticker:       res.Ticker,
		FigureSVG:    string(res.FigureSVG),
		OwnershipSVG: string(res.OwnershipSVG),
		SeriesTable:  res.SeriesTable,
		HoldersTable: res.HoldersTable,
	})
}

const dateLayout = "2006-01-02"

// parseRequest builds one immutable render request from query
// parameters, falling back to the dashboard's initial control values.
func parseRequest(r *http.Request) (dashboard.Request, error) {
	q := r.URL.Query()
	req := dashboard.Request{
		Symbol: q.Get("symbol"),
		Chart:  model.DefaultChartConfig(),
	}
	if q.Get("submitted") != "" {
		// Explicit form submission: absent checkboxes mean off.
		req.Chart.PrimaryMA = false
		req.Chart.SecondaryMA = false
		req.Chart.Oscillator = false
		req.Chart.VolumePanel = false
	}

	req.Start = time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	req.End = time.Now().UTC().Truncate(24 * time.Hour)
	if v := q.Get("start"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return req, &dashboard.ConfigError{Field: "start", Reason: "expected YYYY-MM-DD"}
		}
		req.Start = t
	}
	if v := q.Get("end"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return req, &dashboard.ConfigError{Field: "end", Reason: "expected YYYY-MM-DD"}
		}
		req.End = t
	}

	req.Interval = model.IntervalDaily
	if v := q.Get("interval"); v != "" {
		iv, err := model.ParseInterval(v)
		if err != nil {
			return req, &dashboard.ConfigError{Field: "interval", Reason: err.Error()}
		}
		req.Interval = iv
	}

	var err error
	if req.Chart.PrimaryMA, err = boolParam(q.Get("ma1"), req.Chart.PrimaryMA); err != nil {
		return req, &dashboard.ConfigError{Field: "ma1", Reason: err.Error()}
	}
	if req.Chart.SecondaryMA, err = boolParam(q.Get("ma2"), req.Chart.SecondaryMA); err != nil {
		return req, &dashboard.ConfigError{Field: "ma2", Reason: err.Error()}
	}
	if req.Chart.Oscillator, err = boolParam(q.Get("rsi"), req.Chart.Oscillator); err != nil {
		return req, &dashboard.ConfigError{Field: "rsi", Reason: err.Error()}
	}
	if req.Chart.VolumePanel, err = boolParam(q.Get("volume"), req.Chart.VolumePanel); err != nil {
		return req, &dashboard.ConfigError{Field: "volume", Reason: err.Error()}
	}
	if req.Chart.PrimaryMAWindow, err = intParam(q.Get("ma1_window"), req.Chart.PrimaryMAWindow); err != nil {
		return req, &dashboard.ConfigError{Field: "ma1_window", Reason: err.Error()}
	}
	if req.Chart.SecondaryMAWindow, err = intParam(q.Get("ma2_window"), req.Chart.SecondaryMAWindow); err != nil {
		return req, &dashboard.ConfigError{Field: "ma2_window", Reason: err.Error()}
	}
	if req.Chart.OscillatorWindow, err = intParam(q.Get("rsi_window"), req.Chart.OscillatorWindow); err != nil {
		return req, &dashboard.ConfigError{Field: "rsi_window", Reason: err.Error()}
	}

	return req, nil
}

func boolParam(v string, def bool) (bool, error) {
	if v == "" {
		return def, nil
	}
	return strconv.ParseBool(v)
}

func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
