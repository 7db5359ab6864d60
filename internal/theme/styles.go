package theme

import "github.com/charmbracelet/lipgloss"

// Styles is the style set the browser renders with.
type Styles struct {
	App          lipgloss.Style
	Title        lipgloss.Style
	Header       lipgloss.Style
	Muted        lipgloss.Style
	Accent       lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	Region       lipgloss.Style
	ActiveRegion lipgloss.Style
	SearchBox    lipgloss.Style
	SearchFocus  lipgloss.Style
	Footer       lipgloss.Style
	ErrorBanner  lipgloss.Style
	Empty        lipgloss.Style
	Detail       lipgloss.Style
	Label        lipgloss.Style
	Spinner      lipgloss.Style
	Success      lipgloss.Style
	Warning      lipgloss.Style
}

// Styles builds the style set for t.
func (t Theme) Styles() Styles {
	fg := Color(t.Foreground)
	muted := Color(t.Muted)
	border := Color(t.Border)
	primary := Color(t.Primary)
	accent := Color(t.Accent)

	base := lipgloss.NewStyle().Foreground(fg)

	return Styles{
		App: base.
			Background(Color(t.Background)),

		Title: base.
			Bold(true).
			Foreground(primary).
			PaddingLeft(1).
			PaddingRight(1),

		Header: base.
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(border).
			PaddingBottom(0),

		Muted: lipgloss.NewStyle().Foreground(muted),

		Accent: lipgloss.NewStyle().Foreground(accent).Bold(true),

		Item: base.
			PaddingLeft(2).
			PaddingRight(2),

		SelectedItem: base.
			PaddingLeft(1).
			PaddingRight(2).
			Foreground(Color(t.SelectionFg)).
			Background(Color(t.Selection)).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(primary),

		Region: lipgloss.NewStyle().Foreground(muted),

		ActiveRegion: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Underline(true),

		SearchBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		SearchFocus: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(border),

		ErrorBanner: lipgloss.NewStyle().
			Foreground(Color(t.Danger)).
			Background(Color(t.DangerBg)).
			Bold(true).
			Padding(0, 2).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(Color(t.Danger)),

		Empty: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true).
			PaddingTop(1).
			PaddingLeft(2),

		Detail: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),

		Label: lipgloss.NewStyle().
			Foreground(muted).
			Bold(true).
			Width(12),

		Spinner: lipgloss.NewStyle().Foreground(primary),

		Success: lipgloss.NewStyle().Foreground(Color(t.Success)).Bold(true),

		Warning: lipgloss.NewStyle().Foreground(Color(t.Warning)).Bold(true),
	}
}
