package viewstate

import "github.com/alexisbeaulieu97/atlas/internal/country"

// Controller owns a State and applies actions to it. It is not safe for
// concurrent use; the Bubble Tea update loop is its only caller.
type Controller struct {
	state State
}

// NewController returns a controller in the loading state.
func NewController(dark bool) *Controller {
	return &Controller{state: Initial(dark)}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Dispatch applies action and returns the resulting state.
func (c *Controller) Dispatch(action Action) State {
	c.state = Reduce(c.state, action)
	return c.state
}

// Load installs the dataset.
func (c *Controller) Load(records []country.Record) State {
	return c.Dispatch(LoadCountries{Countries: records})
}

// Search replaces the search term.
func (c *Controller) Search(term string) State {
	if term == c.state.SearchTerm {
		return c.state
	}
	return c.Dispatch(SetSearchTerm{Term: term})
}

// FilterByRegion selects region ("" for all regions).
func (c *Controller) FilterByRegion(region string) State {
	return c.Dispatch(FilterByRegion{Region: region})
}

// ToggleTheme flips the theme.
func (c *Controller) ToggleTheme() State {
	return c.Dispatch(ToggleTheme{})
}

// Regions returns the distinct regions of the loaded dataset.
func (c *Controller) Regions() []string {
	return DistinctRegions(c.state.All)
}

// RegionOptions returns the selector entries: the all-regions sentinel
// followed by every distinct region.
func (c *Controller) RegionOptions() []string {
	return append([]string{""}, c.Regions()...)
}

// CycleRegion moves the region selector by step positions, wrapping through
// the all-regions sentinel.
func (c *Controller) CycleRegion(step int) State {
	options := c.RegionOptions()
	current := 0
	for i, opt := range options {
		if opt == c.state.SelectedRegion {
			current = i
			break
		}
	}

	n := len(options)
	next := ((current+step)%n + n) % n
	return c.FilterByRegion(options[next])
}

// Counts returns per-region record counts over the full dataset.
func (c *Controller) Counts() map[string]int {
	return RegionCounts(c.state.All)
}
