// Package tableview flattens series and holder data into plain
// column/row tables for display.
package tableview

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"DaxBoard/internal/model"
)

// Table is a display-ready column/row view.
type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

const dateLayout = "2006-01-02"

// SeriesTable renders the raw price series, newest row last.
func SeriesTable(series *model.PriceSeries) Table {
	t := Table{
		Title:   fmt.Sprintf("%s Price Data", series.Symbol),
		Columns: []string{"Date", "Open", "High", "Low", "Close", "Adj Close", "Volume"},
		Rows:    make([][]string, 0, len(series.Bars)),
	}
	for _, b := range series.Bars {
		t.Rows = append(t.Rows, []string{
			b.Time.Format(dateLayout),
			fmt.Sprintf("%.2f", b.Open),
			fmt.Sprintf("%.2f", b.High),
			fmt.Sprintf("%.2f", b.Low),
			fmt.Sprintf("%.2f", b.Close),
			fmt.Sprintf("%.2f", b.AdjClose),
			humanize.Comma(int64(b.Volume)),
		})
	}
	return t
}

// HoldersTable renders the institutional holders list.
func HoldersTable(holders []model.InstitutionalHolder) Table {
	t := Table{
		Title:   "Institutional Holders",
		Columns: []string{"Holder", "Shares", "Date Reported", "% Out"},
		Rows:    make([][]string, 0, len(holders)),
	}
	for _, h := range holders {
		t.Rows = append(t.Rows, []string{
			h.Holder,
			humanize.Comma(h.Shares),
			h.DateReported.Format(dateLayout),
			fmt.Sprintf("%.2f%%", h.PctOut),
		})
	}
	return t
}
