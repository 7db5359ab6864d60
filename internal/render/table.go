package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexisbeaulieu97/atlas/internal/country"
	"github.com/alexisbeaulieu97/atlas/internal/theme"
)

// EmptyMessage is written instead of a table when no record matches.
const EmptyMessage = "No countries match the current filters."

var tableHeaders = []string{"NAME", "CAPITAL", "REGION", "SUBREGION", "POPULATION"}

// Options controls table output.
type Options struct {
	// ASCII draws borders with plain ASCII characters.
	ASCII bool
	// Dark selects the dark palette for header and border colours.
	Dark bool
	// Width caps the table width. Zero leaves it unconstrained.
	Width int
}

// Table writes records as a bordered table.
func Table(w io.Writer, records []country.Record, opts Options) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}

	palette := theme.For(opts.Dark)
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Color(palette.Primary)).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	numberStyle := cellStyle.Align(lipgloss.Right)

	border := lipgloss.RoundedBorder()
	if opts.ASCII {
		border = lipgloss.ASCIIBorder()
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Name,
			placeholder(r.Capital, opts.ASCII),
			r.Region,
			placeholder(r.Subregion, opts.ASCII),
			country.FormatPopulation(r.Population),
		})
	}

	t := table.New().
		Headers(tableHeaders...).
		Border(border).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Color(palette.Border))).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == len(tableHeaders)-1:
				return numberStyle
			default:
				return cellStyle
			}
		})
	if opts.Width > 0 {
		t = t.Width(opts.Width)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func placeholder(value string, ascii bool) string {
	if value != "" {
		return value
	}
	if ascii {
		return "-"
	}
	return "—"
}
