// Package theme provides the light and dark palettes of the country browser.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

const (
	NameLight = "light"
	NameDark  = "dark"
)

// Theme holds the colours of one palette.
type Theme struct {
	Name        string `toml:"name"`
	Dark        bool   `toml:"dark"`
	Background  string `toml:"background"`
	Foreground  string `toml:"foreground"`
	Muted       string `toml:"muted"`
	Border      string `toml:"border"`
	Primary     string `toml:"primary"`
	Accent      string `toml:"accent"`
	Selection   string `toml:"selection"`
	SelectionFg string `toml:"selection_fg"`
	Success     string `toml:"success"`
	Warning     string `toml:"warning"`
	Danger      string `toml:"danger"`
	DangerBg    string `toml:"danger_bg"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Available returns the embedded palette names.
func Available() []string {
	return []string{NameLight, NameDark}
}

// IsAvailable reports whether name is an embedded palette.
func IsAvailable(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range Available() {
		if n == name {
			return true
		}
	}
	return false
}

// Load decodes an embedded palette by name. The empty name loads the light palette.
func Load(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = NameLight
	}
	if !IsAvailable(name) {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(Available(), ", "))
	}

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return Theme{}, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return t, nil
}

// For returns the dark palette when dark is set and the light one otherwise.
// The embedded palettes are compiled in, so a decode failure is a build defect.
func For(dark bool) Theme {
	name := NameLight
	if dark {
		name = NameDark
	}
	t, err := Load(name)
	if err != nil {
		panic(err)
	}
	return t
}

// NameFor returns the palette name matching the dark flag.
func NameFor(dark bool) string {
	if dark {
		return NameDark
	}
	return NameLight
}

func (t *Theme) applyDefaults() {
	if t.DangerBg == "" {
		t.DangerBg = coalesce(t.Selection, t.Background)
	}
	if t.SelectionFg == "" {
		t.SelectionFg = t.Primary
	}
	if t.Border == "" {
		t.Border = t.Muted
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
