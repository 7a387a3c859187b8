package server

import (
	"html/template"
	"net/http"

	"DaxBoard/internal/dashboard"
	"DaxBoard/internal/model"
	"DaxBoard/internal/symbols"
	"DaxBoard/internal/tableview"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<title>DAX Stock Visualizer</title>
<style>
body { background: #121212; color: #eee; font-family: sans-serif; margin: 0; }
.sidebar { float: left; width: 240px; padding: 16px; }
.main { margin-left: 280px; padding: 16px; }
label { display: block; margin-top: 10px; font-size: 13px; }
input, select { width: 100%; margin-top: 2px; }
table { border-collapse: collapse; font-size: 13px; margin-bottom: 24px; }
td, th { border: 1px solid #555; padding: 3px 8px; }
h1, h2 { font-weight: normal; }
.error { color: #ff6666; }
</style>
</head>
<body>
<div class="sidebar">
<h2>DAX Stock Visualizer</h2>
<form method="get" action="/">
<input type="hidden" name="submitted" value="1">
<label>Select stock:
<select name="symbol">
{{range .Symbols}}<option value="{{.Name}}" {{if eq .Name $.Selected}}selected{{end}}>{{.Name}}</option>
{{end}}</select></label>
<label>Start date: <input type="date" name="start" value="{{.Start}}"></label>
<label>End date: <input type="date" name="end" value="{{.End}}"></label>
<label>Interval:
<select name="interval">
{{range .Intervals}}<option value="{{.Code}}" {{if eq .Code $.Interval}}selected{{end}}>{{.Label}}</option>
{{end}}</select></label>
<label><input type="checkbox" name="ma1" value="true" {{if .Cfg.PrimaryMA}}checked{{end}}> Simple Moving Average (SMA)</label>
<label>Periods: <input type="number" name="ma1_window" min="5" max="200" value="{{.Cfg.PrimaryMAWindow}}"></label>
<label><input type="checkbox" name="ma2" value="true" {{if .Cfg.SecondaryMA}}checked{{end}}> Simple Moving Average (SMA)</label>
<label>Periods: <input type="number" name="ma2_window" min="5" max="200" value="{{.Cfg.SecondaryMAWindow}}"></label>
<label><input type="checkbox" name="rsi" value="true" {{if .Cfg.Oscillator}}checked{{end}}> Relative Strength Index (RSI)</label>
<label>Periods: <input type="number" name="rsi_window" min="5" max="50" value="{{.Cfg.OscillatorWindow}}"></label>
<label><input type="checkbox" name="volume" value="true" {{if .Cfg.VolumePanel}}checked{{end}}> Volume</label>
<button type="submit" style="margin-top:12px">Render</button>
</form>
</div>
<div class="main">
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Result}}
<h1>{{.Result.Title}}</h1>
<h2>Price Chart</h2>
{{.FigureSVG}}
<h2>Major Holders</h2>
{{.OwnershipSVG}}
{{template "table" .Result.HoldersTable}}
<h2>Price Data</h2>
{{template "table" .Result.SeriesTable}}
{{end}}
</div>
</body>
</html>
{{define "table"}}
<h3>{{.Title}}</h3>
<table>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
{{end}}`))

type intervalOption struct {
	Code  string
	Label string
}

type indexData struct {
	Symbols      []symbols.Entry
	Selected     string
	Start        string
	End          string
	Interval     string
	Intervals    []intervalOption
	Cfg          model.ChartConfig
	Result       *indexResult
	FigureSVG    template.HTML
	OwnershipSVG template.HTML
	Error        string
}

type indexResult struct {
	Title        string
	SeriesTable  tableview.Table
	HoldersTable tableview.Table
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	data := indexData{
		Symbols:  s.directory.List(),
		Selected: req.Symbol,
		Start:    req.Start.Format(dateLayout),
		End:      req.End.Format(dateLayout),
		Interval: string(req.Interval),
		Intervals: []intervalOption{
			{string(model.IntervalDaily), model.IntervalDaily.Label()},
			{string(model.IntervalWeekly), model.IntervalWeekly.Label()},
			{string(model.IntervalMonthly), model.IntervalMonthly.Label()},
		},
		Cfg: req.Chart,
	}
	if req.Symbol == "" && len(data.Symbols) > 0 {
		// First visit: render the first constituent.
		req.Symbol = data.Symbols[0].Name
		data.Selected = req.Symbol
	}

	if err == nil {
		var res *dashboard.Result
		res, err = s.controller.Run(r.Context(), req)
		if err == nil {
			data.Result = &indexResult{
				Title:        res.Title,
				SeriesTable:  res.SeriesTable,
				HoldersTable: res.HoldersTable,
			}
			data.FigureSVG = template.HTML(res.FigureSVG)
			data.OwnershipSVG = template.HTML(res.OwnershipSVG)
		}
	}
	if err != nil {
		data.Error = err.Error()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
