package tableview

import (
	"testing"
	"time"

	"DaxBoard/internal/model"
)

func TestSeriesTable(t *testing.T) {
	series := &model.PriceSeries{
		Symbol: "BMW.DE",
		Bars: []model.Bar{{
			Time:     time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			Open:     95.5, High: 97.25, Low: 95.1, Close: 96.8, AdjClose: 94.2,
			Volume: 1_234_567,
		}},
	}
	tab := SeriesTable(series)

	if tab.Title != "BMW.DE Price Data" {
		t.Errorf("title %q", tab.Title)
	}
	if len(tab.Columns) != 7 || len(tab.Rows) != 1 {
		t.Fatalf("shape %dx%d", len(tab.Columns), len(tab.Rows))
	}
	row := tab.Rows[0]
	if row[0] != "2023-03-01" {
		t.Errorf("date %q", row[0])
	}
	if row[5] != "94.20" {
		t.Errorf("adj close %q", row[5])
	}
	if row[6] != "1,234,567" {
		t.Errorf("volume %q", row[6])
	}
}

func TestHoldersTable(t *testing.T) {
	tab := HoldersTable([]model.InstitutionalHolder{{
		Holder:       "Alpha Asset Management",
		Shares:       12_345_678,
		DateReported: time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC),
		PctOut:       4.21,
	}})

	if len(tab.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(tab.Rows))
	}
	row := tab.Rows[0]
	if row[1] != "12,345,678" {
		t.Errorf("shares %q", row[1])
	}
	if row[3] != "4.21%" {
		t.Errorf("pct out %q", row[3])
	}
}

func TestHoldersTable_Empty(t *testing.T) {
	tab := HoldersTable(nil)
	if len(tab.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(tab.Rows))
	}
}
