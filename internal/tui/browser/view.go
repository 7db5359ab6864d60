package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/atlas/internal/country"
	"github.com/alexisbeaulieu97/atlas/internal/theme"
)

const (
	appTitle       = "Where in the world?"
	allRegionsName = "All Regions"
)

// View renders the current model state
func (m Model) View() string {
	st := m.styles()

	var body string
	switch {
	case m.loadErr != nil:
		body = m.renderLoadError(st)
	case m.controller.State().Loading:
		body = m.renderLoading(st)
	case m.viewMode == ViewHelp:
		body = m.renderHelpView(st)
	case m.viewMode == ViewDetail:
		body = m.renderDetailView(st)
	default:
		body = m.renderListView(st)
	}

	return st.App.Width(m.width).Height(m.height).Render(body)
}

// renderListView renders the header, search box, country list and footer
func (m Model) renderListView(st theme.Styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(st),
		m.renderSearch(st),
		m.renderCountryList(st),
		m.renderFooter(st, listHints),
	)
}

// renderHeader renders the title, counts and region selector
func (m Model) renderHeader(st theme.Styles) string {
	state := m.controller.State()

	mode := "☀ Light"
	if state.DarkTheme {
		mode = "☾ Dark"
	}
	if m.ascii {
		mode = "[" + theme.NameFor(state.DarkTheme) + "]"
	}

	title := lipgloss.JoinHorizontal(lipgloss.Top, st.Title.Render(appTitle), " ", st.Muted.Render(mode))
	counts := st.Muted.Render(fmt.Sprintf("Showing %d of %d countries", len(state.Visible), len(state.All)))

	return st.Header.Width(m.width).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		counts,
		m.renderRegionSelector(st),
	))
}

// renderRegionSelector renders every region option with the active one highlighted
func (m Model) renderRegionSelector(st theme.Styles) string {
	selected := m.controller.State().SelectedRegion

	options := m.controller.RegionOptions()
	parts := make([]string, 0, len(options))
	for _, region := range options {
		label := regionLabel(region)
		if region == selected {
			parts = append(parts, st.ActiveRegion.Render(label))
			continue
		}
		parts = append(parts, st.Region.Render(label))
	}

	sep := " · "
	if m.ascii {
		sep = " | "
	}

	return st.Muted.Render("Region: ") + strings.Join(parts, st.Muted.Render(sep))
}

func (m Model) renderSearch(st theme.Styles) string {
	box := st.SearchBox
	if m.search.Focused() {
		box = st.SearchFocus
	}
	if m.ascii {
		box = box.BorderStyle(lipgloss.NormalBorder())
	}
	return box.Width(max(10, m.width-4)).Render(m.search.View())
}

// renderCountryList renders the scrolled window of visible countries
func (m Model) renderCountryList(st theme.Styles) string {
	visible := m.controller.State().Visible
	if len(visible) == 0 {
		return st.Empty.Render(m.emptyMessage())
	}

	start := m.scrollOffset
	end := min(start+m.listHeight(), len(visible))

	items := make([]string, 0, end-start+2)
	if start > 0 {
		items = append(items, st.Muted.Render(m.glyph("▲ More above", "^ more above")))
	}
	for i := start; i < end; i++ {
		items = append(items, m.renderCountryItem(st, visible[i], i == m.cursor))
	}
	if end < len(visible) {
		items = append(items, st.Muted.Render(m.glyph("▼ More below", "v more below")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (m Model) renderCountryItem(st theme.Styles, r country.Record, selected bool) string {
	capital := r.CapitalOrPlaceholder()
	if m.ascii && r.Capital == "" {
		capital = "-"
	}
	meta := fmt.Sprintf("%s · %s · %s", capital, r.Region, country.FormatPopulation(r.Population))
	if m.ascii {
		meta = fmt.Sprintf("%s | %s | %s", capital, r.Region, country.FormatPopulation(r.Population))
	}

	if selected {
		return st.SelectedItem.MaxWidth(m.width).Render(r.Name + "  " + meta)
	}
	return st.Item.MaxWidth(m.width).Render(r.Name + "  " + st.Muted.Render(meta))
}

func (m Model) emptyMessage() string {
	state := m.controller.State()
	if len(state.All) == 0 || !state.FiltersActive() {
		return "The dataset contains no countries."
	}

	var criteria []string
	if state.SearchTerm != "" {
		criteria = append(criteria, fmt.Sprintf("matching %q", state.SearchTerm))
	}
	if state.SelectedRegion != "" {
		criteria = append(criteria, "in "+state.SelectedRegion)
	}
	return fmt.Sprintf("No countries %s.", strings.Join(criteria, " "))
}

// renderDetailView renders every field of the highlighted country
func (m Model) renderDetailView(st theme.Styles) string {
	selected, ok := m.Selected()
	if !ok {
		return m.renderListView(st)
	}

	row := func(label, value string) string {
		if value == "" {
			value = m.glyph("—", "-")
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, st.Label.Render(label), value)
	}

	card := st.Detail.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		st.Title.Render(selected.Label()),
		"",
		row("Native name", selected.NativeName),
		row("Code", selected.Alpha3Code),
		row("Capital", selected.Capital),
		row("Region", selected.Region),
		row("Subregion", selected.Subregion),
		row("Population", country.FormatPopulation(selected.Population)),
	))

	position := st.Muted.Render(fmt.Sprintf("%d of %d", m.cursor+1, len(m.controller.State().Visible)))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(st),
		card,
		position,
		m.renderFooter(st, detailHints),
	)
}

// renderHelpView renders the key reference
func (m Model) renderHelpView(st theme.Styles) string {
	lines := make([]string, 0, len(keyHelp)+2)
	for _, section := range keyHelp {
		lines = append(lines, st.Accent.Render(section.title))
		for _, binding := range section.bindings {
			lines = append(lines, "  "+st.Label.Width(16).Render(binding[0])+binding[1])
		}
		lines = append(lines, "")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		st.Title.Render(appTitle+" Help"),
		lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n")),
		st.Footer.Width(m.width).Render("Press ? or Esc to close"),
	)
}

func (m Model) renderLoading(st theme.Styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		st.Title.Render(appTitle),
		"",
		m.spinner.View()+" Loading countries from "+m.source.Name()+"...",
	)
}

func (m Model) renderLoadError(st theme.Styles) string {
	message := fmt.Sprintf("Could not load countries from %s\n\n%v", m.source.Name(), m.loadErr)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		st.Title.Render(appTitle),
		"",
		st.ErrorBanner.MaxWidth(m.width).Render(message),
		"",
		st.Muted.Render("Press q to quit"),
	)
}

// renderFooter renders the key hints, or the last notice when there is one
func (m Model) renderFooter(st theme.Styles, hints []string) string {
	text := strings.Join(hints, "  •  ")
	if m.ascii {
		text = strings.Join(hints, "  |  ")
	}
	if m.search.Focused() {
		text = "esc/enter: done  •  ctrl+u: clear  •  ↑/↓: move"
	}
	if m.notice != "" {
		notice := st.Success
		if m.noticeFailed {
			notice = st.Warning
		}
		text = notice.Render(m.notice)
	}
	return st.Footer.Width(m.width).Render(text)
}

func (m Model) glyph(unicode, ascii string) string {
	if m.ascii {
		return ascii
	}
	return unicode
}

func regionLabel(region string) string {
	if region == "" {
		return allRegionsName
	}
	return region
}
