// Package symbols maps company display names to ticker codes for the
// symbol selector. The ordering of entries is part of the contract.
package symbols

import "strings"

// Entry pairs a display name with its ticker code.
type Entry struct {
	Name   string
	Ticker string
}

// Directory is an ordered display-name to ticker mapping.
type Directory struct {
	entries []Entry
	byName  map[string]string
}

// NewDirectory builds a directory preserving entry order. Entries with
// an empty name or ticker, and duplicate names, are skipped.
func NewDirectory(entries []Entry) *Directory {
	d := &Directory{byName: make(map[string]string, len(entries))}
	for _, e := range entries {
		if e.Name == "" || e.Ticker == "" {
			continue
		}
		if _, dup := d.byName[e.Name]; dup {
			continue
		}
		d.entries = append(d.entries, e)
		d.byName[e.Name] = e.Ticker
	}
	return d
}

// List returns all entries in directory order.
func (d *Directory) List() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Resolve maps a display name (or a ticker given directly) to its
// ticker code.
func (d *Directory) Resolve(symbol string) (ticker, name string, ok bool) {
	if t, found := d.byName[symbol]; found {
		return t, symbol, true
	}
	for _, e := range d.entries {
		if strings.EqualFold(e.Ticker, symbol) {
			return e.Ticker, e.Name, true
		}
	}
	return "", "", false
}

// DefaultDAX returns the built-in DAX constituent directory with
// XETRA ticker codes.
func DefaultDAX() *Directory {
	return NewDirectory([]Entry{
		{"Adidas", "ADS.DE"},
		{"Airbus", "AIR.DE"},
		{"Allianz", "ALV.DE"},
		{"BASF", "BAS.DE"},
		{"Bayer", "BAYN.DE"},
		{"Beiersdorf", "BEI.DE"},
		{"BMW", "BMW.DE"},
		{"Brenntag", "BNR.DE"},
		{"Commerzbank", "CBK.DE"},
		{"Continental", "CON.DE"},
		{"Daimler Truck", "DTG.DE"},
		{"Deutsche Bank", "DBK.DE"},
		{"Deutsche Boerse", "DB1.DE"},
		{"Deutsche Post", "DHL.DE"},
		{"Deutsche Telekom", "DTE.DE"},
		{"E.ON", "EOAN.DE"},
		{"Fresenius", "FRE.DE"},
		{"Hannover Rueck", "HNR1.DE"},
		{"Heidelberg Materials", "HEI.DE"},
		{"Henkel", "HEN3.DE"},
		{"Infineon", "IFX.DE"},
		{"Mercedes-Benz", "MBG.DE"},
		{"Merck", "MRK.DE"},
		{"MTU Aero Engines", "MTX.DE"},
		{"Muenchener Rueck", "MUV2.DE"},
		{"Porsche", "P911.DE"},
		{"Qiagen", "QIA.DE"},
		{"Rheinmetall", "RHM.DE"},
		{"RWE", "RWE.DE"},
		{"SAP", "SAP.DE"},
		{"Sartorius", "SRT3.DE"},
		{"Siemens", "SIE.DE"},
		{"Siemens Energy", "ENR.DE"},
		{"Siemens Healthineers", "SHL.DE"},
		{"Symrise", "SY1.DE"},
		{"Volkswagen", "VOW3.DE"},
		{"Vonovia", "VNA.DE"},
		{"Zalando", "ZAL.DE"},
	})
}
