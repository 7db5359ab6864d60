package browser

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(10, m.width-14)
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.controller.State().Loading || m.loadErr != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case countriesLoadedMsg:
		state := m.controller.Load(msg.records)
		m.cursor = 0
		m.scrollOffset = 0
		m.clampCursor()
		m.log.WithFields(map[string]any{
			"source":  msg.source,
			"count":   len(state.All),
			"regions": len(m.controller.Regions()),
		}).Info("countries loaded")
		return m, nil

	case loadErrorMsg:
		m.loadErr = msg.err
		m.log.With("source", msg.source).Error(msg.err, "loading countries failed")
		return m, nil

	case copiedMsg:
		m.noticeFailed = msg.err != nil
		if msg.err != nil {
			m.notice = fmt.Sprintf("Copy failed: %v", msg.err)
			m.log.Warn(fmt.Sprintf("clipboard write failed: %v", msg.err))
			return m, nil
		}
		m.notice = fmt.Sprintf("Copied %q", msg.text)
		return m, nil
	}

	// Cursor blink and other component messages.
	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress routes keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.notice = ""
	m.noticeFailed = false

	if m.loadErr != nil {
		switch msg.String() {
		case "q", "esc", "enter":
			return m, tea.Quit
		}
		return m, nil
	}

	if m.search.Focused() {
		return m.handleSearchKeys(msg)
	}

	switch m.viewMode {
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleListKeys(msg)
	}
}

// handleSearchKeys handles keys while the search box has focus
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.search.Blur()
		return m, nil
	case "ctrl+u":
		m.search.Reset()
		m.applySearch()
		return m, nil
	case "up":
		m.moveCursor(-1)
		return m, nil
	case "down":
		m.moveCursor(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applySearch()
	return m, cmd
}

// handleListKeys handles keys in list view
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Filters
	case "/":
		cmd := m.search.Focus()
		return m, cmd
	case "ctrl+u":
		m.search.Reset()
		m.applySearch()
	case "tab":
		m.cycleRegion(1)
	case "shift+tab":
		m.cycleRegion(-1)
	case "0":
		m.controller.FilterByRegion("")
		m.clampCursor()

	case "t":
		m.toggleTheme()

	// Navigation
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "pgup":
		m.moveCursor(-m.listHeight())
	case "pgdown":
		m.moveCursor(m.listHeight())
	case "home", "g":
		m.cursor = 0
		m.clampCursor()
	case "end", "G":
		m.cursor = len(m.controller.State().Visible) - 1
		m.clampCursor()

	case "enter":
		if _, ok := m.Selected(); ok {
			m.viewMode = ViewDetail
		}
	case "y":
		return m, m.copySelected()
	case "?":
		m.previousMode = ViewList
		m.viewMode = ViewHelp
	}

	return m, nil
}

// handleDetailKeys handles keys in detail view
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace", "enter":
		m.viewMode = ViewList
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "t":
		m.toggleTheme()
	case "y":
		return m, m.copySelected()
	case "?":
		m.previousMode = ViewDetail
		m.viewMode = ViewHelp
	}
	return m, nil
}

// handleHelpKeys handles keys in help view
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		m.viewMode = m.previousMode
	case "t":
		m.toggleTheme()
	}
	return m, nil
}

func (m *Model) applySearch() {
	before := m.controller.State().SearchTerm
	state := m.controller.Search(m.search.Value())
	if state.SearchTerm != before {
		m.log.WithFields(map[string]any{
			"term":    state.SearchTerm,
			"visible": len(state.Visible),
		}).Debug("search updated")
	}
	m.clampCursor()
}

func (m *Model) cycleRegion(step int) {
	state := m.controller.CycleRegion(step)
	m.clampCursor()
	m.log.WithFields(map[string]any{
		"region":  regionLabel(state.SelectedRegion),
		"visible": len(state.Visible),
	}).Debug("region selected")
}

func (m *Model) toggleTheme() {
	state := m.controller.ToggleTheme()
	m.applyTheme()
	m.log.With("dark", state.DarkTheme).Debug("theme toggled")
}

func (m Model) copySelected() tea.Cmd {
	selected, ok := m.Selected()
	if !ok {
		return nil
	}
	return copyCmd(m.copyText, selected.Name)
}
