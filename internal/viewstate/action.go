package viewstate

import "github.com/alexisbeaulieu97/atlas/internal/country"

// Action is a discrete event applied by Reduce. The set is closed: only the
// types in this file implement it.
type Action interface {
	isAction()
}

// LoadCountries installs the dataset and clears the loading flag.
type LoadCountries struct {
	Countries []country.Record
}

// ToggleTheme flips between the light and dark theme.
type ToggleTheme struct{}

// SetVisible assigns the visible list directly without touching All.
type SetVisible struct {
	Countries []country.Record
}

// FilterByRegion selects a region; the empty string selects every region.
type FilterByRegion struct {
	Region string
}

// SetSearchTerm replaces the free-text name filter.
type SetSearchTerm struct {
	Term string
}

func (LoadCountries) isAction()  {}
func (ToggleTheme) isAction()    {}
func (SetVisible) isAction()     {}
func (FilterByRegion) isAction() {}
func (SetSearchTerm) isAction()  {}
