package browser

import "github.com/alexisbeaulieu97/atlas/internal/country"

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewHelp
)

// countriesLoadedMsg carries the decoded dataset.
type countriesLoadedMsg struct {
	source  string
	records []country.Record
}

// loadErrorMsg reports a dataset that could not be read or validated.
type loadErrorMsg struct {
	source string
	err    error
}

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	text string
	err  error
}
