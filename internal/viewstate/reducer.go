package viewstate

import (
	"slices"

	"github.com/alexisbeaulieu97/atlas/internal/country"
)

// Reduce applies action to s and returns the next state. It has no side
// effects; unknown or nil actions return s unchanged.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case LoadCountries:
		s.All = slices.Clone(a.Countries)
		if s.All == nil {
			s.All = []country.Record{}
		}
		s.Loading = false
		return s.recompute()

	case ToggleTheme:
		s.DarkTheme = !s.DarkTheme
		return s

	case SetVisible:
		s.Visible = slices.Clone(a.Countries)
		if s.Visible == nil {
			s.Visible = []country.Record{}
		}
		return s

	case FilterByRegion:
		s.SelectedRegion = a.Region
		return s.recompute()

	case SetSearchTerm:
		s.SearchTerm = a.Term
		return s.recompute()

	default:
		return s
	}
}
