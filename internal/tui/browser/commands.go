package browser

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/atlas/internal/country"
)

// loadCountriesCmd reads the dataset off the update loop.
func loadCountriesCmd(source country.Source) tea.Cmd {
	return func() tea.Msg {
		records, err := source.Load()
		if err != nil {
			return loadErrorMsg{source: source.Name(), err: err}
		}
		return countriesLoadedMsg{source: source.Name(), records: records}
	}
}

// copyCmd writes text to the system clipboard.
func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{text: text, err: write(text)}
	}
}
