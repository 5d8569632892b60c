// Package theme maps theme identifiers to class names and lipgloss styles
// for the floating menu.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme identifies a visual theme. The zero value follows the terminal.
type Theme int

const (
	Default Theme = iota
	Light
	Dark
)

func (t Theme) String() string {
	switch t {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "default"
	}
}

// Parse maps a config or flag value to a Theme.
func Parse(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default", "system":
		return Default, nil
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Default, fmt.Errorf("unknown theme %q", s)
}

// ClassName returns the presentation class for t. Default has none.
func ClassName(t Theme) string {
	switch t {
	case Light:
		return "light-theme"
	case Dark:
		return "dark-theme"
	default:
		return ""
	}
}

// palette holds the colors a style set is derived from.
type palette struct {
	primary   lipgloss.TerminalColor
	text      lipgloss.TerminalColor
	textHi    lipgloss.TerminalColor
	muted     lipgloss.TerminalColor
	border    lipgloss.TerminalColor
	panelBg   lipgloss.TerminalColor
	focusBg   lipgloss.TerminalColor
	triggerBg lipgloss.TerminalColor
}

// Default colors, tuned for dark terminals.
var defaultPalette = palette{
	primary:   lipgloss.Color("212"),
	text:      lipgloss.Color("252"),
	textHi:    lipgloss.Color("255"),
	muted:     lipgloss.Color("241"),
	border:    lipgloss.Color("240"),
	panelBg:   lipgloss.NoColor{},
	focusBg:   lipgloss.Color("237"),
	triggerBg: lipgloss.Color("238"),
}

var darkPalette = palette{
	primary:   lipgloss.Color("212"),
	text:      lipgloss.Color("252"),
	textHi:    lipgloss.Color("255"),
	muted:     lipgloss.Color("244"),
	border:    lipgloss.Color("240"),
	panelBg:   lipgloss.Color("235"),
	focusBg:   lipgloss.Color("238"),
	triggerBg: lipgloss.Color("237"),
}

var lightPalette = palette{
	primary:   lipgloss.Color("162"),
	text:      lipgloss.Color("235"),
	textHi:    lipgloss.Color("232"),
	muted:     lipgloss.Color("245"),
	border:    lipgloss.Color("250"),
	panelBg:   lipgloss.Color("255"),
	focusBg:   lipgloss.Color("253"),
	triggerBg: lipgloss.Color("254"),
}

// Styles is the style set used to render a trigger and its panel.
type Styles struct {
	Trigger        lipgloss.Style
	TriggerOpen    lipgloss.Style
	TriggerFocused lipgloss.Style

	Panel       lipgloss.Style
	Title       lipgloss.Style
	Item        lipgloss.Style
	ItemFocused lipgloss.Style
	ItemCurrent lipgloss.Style
	Description lipgloss.Style
	Icon        lipgloss.Style
	Check       lipgloss.Style
	Divider     lipgloss.Style
	Hint        lipgloss.Style
}

// StylesFor builds the style set for t.
func StylesFor(t Theme) Styles {
	p := defaultPalette
	switch t {
	case Light:
		p = lightPalette
	case Dark:
		p = darkPalette
	}

	return Styles{
		Trigger: lipgloss.NewStyle().
			Foreground(p.text).
			Background(p.triggerBg).
			Padding(0, 1),
		TriggerOpen: lipgloss.NewStyle().
			Foreground(p.textHi).
			Background(p.primary).
			Bold(true).
			Padding(0, 1),
		TriggerFocused: lipgloss.NewStyle().
			Foreground(p.textHi).
			Background(p.focusBg).
			Underline(true).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Background(p.panelBg).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),
		Item: lipgloss.NewStyle().
			Foreground(p.text),
		ItemFocused: lipgloss.NewStyle().
			Foreground(p.textHi).
			Background(p.focusBg).
			Bold(true),
		ItemCurrent: lipgloss.NewStyle().
			Foreground(p.primary),
		Description: lipgloss.NewStyle().
			Foreground(p.muted),
		Icon: lipgloss.NewStyle().
			Foreground(p.muted),
		Check: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),
		Divider: lipgloss.NewStyle().
			Foreground(p.border),
		Hint: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),
	}
}
