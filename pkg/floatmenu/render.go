package floatmenu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/floatmenu/pkg/floatmenu/mouse"
	"github.com/marcus/floatmenu/pkg/floatmenu/position"
	"github.com/marcus/floatmenu/pkg/floatmenu/theme"
)

const (
	defaultGlyph = "⋯"
	checkMark    = "✓ "
	noMark       = "  "
	dividerRune  = "─"
)

// View renders the trigger.
func (m *Menu[T]) View() string {
	ctx := TriggerContext{
		Open:         m.isOpen,
		Focused:      m.triggerFocused,
		FocusedIndex: m.focused,
		Label:        m.cfg.Localize(KeyTriggerLabel, nil),
		ClassName:    theme.ClassName(m.cfg.Theme),
	}

	switch t := m.cfg.Trigger.(type) {
	case CustomTrigger:
		if t.Render != nil {
			return t.Render(ctx)
		}
	case DefaultTrigger:
		return m.renderDefaultTrigger(t, ctx)
	}
	return m.renderDefaultTrigger(DefaultTrigger{}, ctx)
}

func (m *Menu[T]) renderDefaultTrigger(t DefaultTrigger, ctx TriggerContext) string {
	glyph := t.Glyph
	if glyph == "" {
		glyph = defaultGlyph
	}
	if t.ShowLabel {
		glyph += " " + ctx.Label
	}

	style := m.styles.Trigger
	switch {
	case ctx.Open:
		style = m.styles.TriggerOpen
	case ctx.Focused:
		style = m.styles.TriggerFocused
	}
	return style.Render(glyph)
}

// panelContent is the rendered panel body before the frame is applied.
type panelContent struct {
	body     string
	width    int   // inner width of every row
	rowLines []int // rendered body line of each option
}

// isCurrent reports whether opt is the current value.
func (m *Menu[T]) isCurrent(opt Option[T]) bool {
	return m.cfg.CurrentValue != nil && opt.Value == *m.cfg.CurrentValue
}

func (m *Menu[T]) optionText(opt Option[T]) (main, desc string) {
	mark := noMark
	if m.isCurrent(opt) {
		mark = checkMark
	}
	main = mark
	if opt.Icon != "" {
		main += opt.Icon + " "
	}
	main += opt.Label
	if opt.Description != "" {
		desc = "  " + opt.Description
	}
	// Rows are one line tall; hit regions assume it.
	return flatten(main), flatten(desc)
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func flatten(s string) string {
	return lineBreaks.Replace(s)
}

func (m *Menu[T]) renderContent() panelContent {
	opts := m.cfg.Options

	hints := ""
	if m.cfg.ShowHints && len(opts) > 0 {
		hints = m.cfg.Localize(KeyHints, nil)
	}

	// Measure first so dividers and row highlights span the panel.
	width := lipgloss.Width(m.cfg.Title)
	width = max(width, lipgloss.Width(hints))
	for _, opt := range opts {
		main, desc := m.optionText(opt)
		width = max(width, ansi.StringWidth(main+desc))
	}

	// height counts rendered lines; a title may span several.
	var lines []string
	height := 0
	add := func(block string) {
		lines = append(lines, block)
		height += lipgloss.Height(block)
	}

	if m.cfg.Title != "" {
		add(m.styles.Title.Render(m.cfg.Title))
	}

	rowLines := make([]int, len(opts))
	for i, opt := range opts {
		if i > 0 && needsDivider(opts[i-1], opt) {
			add(m.styles.Divider.Render(strings.Repeat(dividerRune, width)))
		}
		rowLines[i] = height
		add(m.renderRow(i, opt, width))
	}

	if hints != "" {
		lines = append(lines, m.styles.Hint.Render(hints))
	}

	return panelContent{
		body:     strings.Join(lines, "\n"),
		width:    width,
		rowLines: rowLines,
	}
}

func (m *Menu[T]) renderRow(i int, opt Option[T], width int) string {
	main, desc := m.optionText(opt)
	pad := ""
	if w := ansi.StringWidth(main + desc); w < width {
		pad = strings.Repeat(" ", width-w)
	}

	if i == m.focused {
		return m.styles.ItemFocused.Render(main + desc + pad)
	}

	style := m.styles.Item
	if m.isCurrent(opt) {
		style = m.styles.ItemCurrent
	}
	out := style.Render(main)
	if desc != "" {
		out += m.styles.Description.Render(desc)
	}
	return out + pad
}

// Overlay renders the open panel onto base and returns the composited
// frame. viewport bounds flipping and shifting. base is the frame the
// panel's styles refer to: the whole screen for the fixed strategy, the
// offset parent at Config.Origin for absolute. A closed menu, or one with
// nothing to show, returns base unchanged.
func (m *Menu[T]) Overlay(base string, viewport mouse.Rect) string {
	m.hits.Clear()
	if !m.isOpen {
		return base
	}

	content := m.renderContent()
	if content.body == "" {
		m.panel = mouse.Rect{}
		return base
	}

	panel := m.styles.Panel.Render(content.body)
	size := position.Size{W: lipgloss.Width(panel), H: lipgloss.Height(panel)}

	m.result = position.Compute(position.PointAnchor(m.anchor), size, position.Options{
		Placement: m.cfg.Placement,
		Strategy:  m.cfg.Strategy,
		Viewport:  viewport,
		Origin:    m.cfg.Origin,
	})
	m.panel = m.result.Bounds(size)

	// Register option rows after measuring the frame.
	left := m.panel.X + m.styles.Panel.GetBorderLeftSize() + m.styles.Panel.GetPaddingLeft()
	top := m.panel.Y + m.styles.Panel.GetBorderTopSize() + m.styles.Panel.GetPaddingTop()
	for i, line := range content.rowLines {
		m.hits.HitMap.AddRect(fmt.Sprintf("option-%d", i), left, top+line, content.width, 1, i)
	}

	return position.Overlay(base, panel,
		m.result.Styles.Left, m.result.Styles.Top,
		lipgloss.Width(base), lipgloss.Height(base))
}
