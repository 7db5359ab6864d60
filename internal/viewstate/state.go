// Package viewstate owns the country browser's view state and the pure
// transition function that drives it.
//
// Visible is derived: after every transition other than SetVisible it equals
// Visible(All, SearchTerm, SelectedRegion). The search and region criteria are
// independent and combine with logical AND, so applying one never discards
// the other.
package viewstate

import "github.com/alexisbeaulieu97/atlas/internal/country"

// State is the complete view state of the browser.
type State struct {
	All            []country.Record
	Visible        []country.Record
	Loading        bool
	DarkTheme      bool
	SelectedRegion string
	SearchTerm     string
}

// Initial returns the state before the dataset is loaded.
func Initial(dark bool) State {
	return State{
		All:       []country.Record{},
		Visible:   []country.Record{},
		Loading:   true,
		DarkTheme: dark,
	}
}

// FiltersActive reports whether either criterion narrows the list.
func (s State) FiltersActive() bool {
	return s.SearchTerm != "" || s.SelectedRegion != ""
}

// recompute rederives Visible from the canonical fields.
func (s State) recompute() State {
	s.Visible = Visible(s.All, s.SearchTerm, s.SelectedRegion)
	return s
}
