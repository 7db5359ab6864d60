package browser

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/atlas/internal/country"
)

type fakeSource struct {
	records []country.Record
	err     error
}

func (fakeSource) Name() string { return "fake" }

func (s fakeSource) Load() ([]country.Record, error) {
	return s.records, s.err
}

func sampleRecords() []country.Record {
	return []country.Record{
		{Name: "Afghanistan", Alpha3Code: "AFG", Capital: "Kabul", Region: "Asia", Population: 40218234},
		{Name: "France", Alpha3Code: "FRA", Capital: "Paris", Region: "Europe", Subregion: "Western Europe", Population: 67391582},
		{Name: "French Guiana", Alpha3Code: "GUF", Capital: "Cayenne", Region: "Americas", Population: 254541},
		{Name: "Germany", Alpha3Code: "DEU", Capital: "Berlin", Region: "Europe", Population: 83240525},
		{Name: "Japan", Alpha3Code: "JPN", Capital: "Tokyo", Region: "Asia", Population: 125836021},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Source == nil {
		opts.Source = fakeSource{records: sampleRecords()}
	}
	m := New(opts)
	msg := loadCountriesCmd(m.source)()
	m, _ = update(t, m, msg)
	return m
}

func TestNewModelStartsLoading(t *testing.T) {
	m := New(Options{Source: fakeSource{}})

	state := m.State()
	assert.True(t, state.Loading)
	assert.False(t, state.DarkTheme)
	assert.Empty(t, state.All)
	assert.Equal(t, ViewList, m.Mode())
	assert.NotNil(t, m.Init())
}

func TestNewModelDarkOption(t *testing.T) {
	m := New(Options{Source: fakeSource{}, Dark: true})
	assert.True(t, m.State().DarkTheme)
}

func TestLoadCountriesCmd(t *testing.T) {
	msg := loadCountriesCmd(fakeSource{records: sampleRecords()})()
	loaded, ok := msg.(countriesLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, "fake", loaded.source)
	assert.Len(t, loaded.records, 5)

	boom := errors.New("boom")
	msg = loadCountriesCmd(fakeSource{err: boom})()
	failed, ok := msg.(loadErrorMsg)
	require.True(t, ok)
	assert.ErrorIs(t, failed.err, boom)
}

func TestCountriesLoadedShowsEverything(t *testing.T) {
	m := loadedModel(t, Options{})

	state := m.State()
	assert.False(t, state.Loading)
	assert.Equal(t, sampleRecords(), state.All)
	assert.Equal(t, state.All, state.Visible)

	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "Afghanistan", selected.Name)
}

func TestSelectedOnEmptyList(t *testing.T) {
	m := loadedModel(t, Options{Source: fakeSource{records: []country.Record{}}})
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Equal(t, 0, m.Cursor())
}
