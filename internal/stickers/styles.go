package stickers

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/floatmenu/pkg/floatmenu/theme"
)

// styles holds the list's own look. Menu styles come from the theme package.
type styles struct {
	title     lipgloss.Style
	row       lipgloss.Style
	rowCursor lipgloss.Style
	author    lipgloss.Style
	count     lipgloss.Style
	installed lipgloss.Style
	blessed   lipgloss.Style
	empty     lipgloss.Style
	status    lipgloss.Style
	errStatus lipgloss.Style
	details   lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	primary := lipgloss.Color("212")
	text := lipgloss.Color("252")
	muted := lipgloss.Color("241")
	cursorBg := lipgloss.Color("237")
	if t == theme.Light {
		primary = lipgloss.Color("162")
		text = lipgloss.Color("235")
		muted = lipgloss.Color("245")
		cursorBg = lipgloss.Color("253")
	}

	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(primary),
		row:       lipgloss.NewStyle().Foreground(text),
		rowCursor: lipgloss.NewStyle().Foreground(text).Background(cursorBg).Bold(true),
		author:    lipgloss.NewStyle().Foreground(muted),
		count:     lipgloss.NewStyle().Foreground(muted),
		installed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		blessed:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		empty:     lipgloss.NewStyle().Foreground(muted).Italic(true),
		status:    lipgloss.NewStyle().Foreground(muted),
		errStatus: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		details: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
	}
}
