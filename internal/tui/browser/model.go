// Package browser implements the interactive country browser.
package browser

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/atlas/internal/country"
	"github.com/alexisbeaulieu97/atlas/internal/logger"
	"github.com/alexisbeaulieu97/atlas/internal/theme"
	"github.com/alexisbeaulieu97/atlas/internal/viewstate"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// Rows taken by the header, search box, footer and scroll markers.
	chromeHeight = 12
)

// Options configures a browser model.
type Options struct {
	Source country.Source
	Dark   bool
	ASCII  bool
	Logger *logger.Logger
	// Clipboard replaces the system clipboard writer.
	Clipboard func(string) error
}

// Model is the Bubble Tea model of the browser. All filtering goes through
// the controller; the model only tracks presentation state.
type Model struct {
	controller *viewstate.Controller
	source     country.Source
	log        *logger.Logger
	copyText   func(string) error

	// UI state
	viewMode     ViewMode
	previousMode ViewMode
	cursor       int
	scrollOffset int
	notice       string
	noticeFailed bool
	loadErr      error

	// Components
	search  textinput.Model
	spinner spinner.Model

	lightStyles theme.Styles
	darkStyles  theme.Styles
	ascii       bool

	// Dimensions
	width  int
	height int
}

// New creates a browser in the loading state.
func New(opts Options) Model {
	source := opts.Source
	if source == nil {
		source = country.EmbeddedSource{}
	}
	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	if opts.ASCII {
		s.Spinner = spinner.Line
	}

	ti := textinput.New()
	ti.Placeholder = "Search for a country..."
	ti.Prompt = "Search: "
	ti.CharLimit = 64
	ti.Width = defaultWidth - 14

	m := Model{
		controller:  viewstate.NewController(opts.Dark),
		source:      source,
		log:         log.With("component", "browser"),
		copyText:    copyText,
		viewMode:    ViewList,
		search:      ti,
		spinner:     s,
		lightStyles: theme.For(false).Styles(),
		darkStyles:  theme.For(true).Styles(),
		ascii:       opts.ASCII,
		width:       defaultWidth,
		height:      defaultHeight,
	}
	m.applyTheme()

	return m
}

// Init starts the spinner and the dataset load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCountriesCmd(m.source))
}

// State returns the current view state.
func (m Model) State() viewstate.State {
	return m.controller.State()
}

// Mode returns the screen being rendered.
func (m Model) Mode() ViewMode {
	return m.viewMode
}

// Cursor returns the index of the highlighted record in the visible list.
func (m Model) Cursor() int {
	return m.cursor
}

// Err returns the dataset load error, if any.
func (m Model) Err() error {
	return m.loadErr
}

// Selected returns the highlighted record.
func (m Model) Selected() (country.Record, bool) {
	visible := m.controller.State().Visible
	if m.cursor < 0 || m.cursor >= len(visible) {
		return country.Record{}, false
	}
	return visible[m.cursor], true
}

func (m Model) styles() theme.Styles {
	if m.controller.State().DarkTheme {
		return m.darkStyles
	}
	return m.lightStyles
}

func (m *Model) applyTheme() {
	st := m.styles()
	m.spinner.Style = st.Spinner
	m.search.PromptStyle = st.Accent
	m.search.PlaceholderStyle = st.Muted
}

func (m Model) listHeight() int {
	return max(1, m.height-chromeHeight)
}

// clampCursor keeps the cursor inside the visible list and in view.
func (m *Model) clampCursor() {
	n := len(m.controller.State().Visible)
	if n == 0 {
		m.cursor = 0
		m.scrollOffset = 0
		return
	}

	m.cursor = min(max(m.cursor, 0), n-1)

	h := m.listHeight()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+h {
		m.scrollOffset = m.cursor - h + 1
	}
	m.scrollOffset = min(max(m.scrollOffset, 0), max(0, n-h))
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}
