package stickers

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	"github.com/marcus/floatmenu/internal/i18n"
	"github.com/marcus/floatmenu/pkg/floatmenu"
	"github.com/marcus/floatmenu/pkg/floatmenu/mouse"
	"github.com/marcus/floatmenu/pkg/floatmenu/position"
	"github.com/marcus/floatmenu/pkg/floatmenu/theme"
)

// Message keys used by the list.
const (
	keyTitle          = "icu:stickers--StickerManager--Title"
	keyInstall        = "icu:stickers--StickerManager--Install"
	keyUninstall      = "icu:stickers--StickerManager--Uninstall"
	keyCopyLink       = "icu:stickers--StickerManager--CopyLink"
	keyForward        = "icu:stickers--StickerManager--Forward"
	keyDetails        = "icu:stickers--StickerManager--Details"
	keyInstalled      = "icu:stickers--StickerManager--Installed"
	keyBlessed        = "icu:stickers--StickerManager--Blessed"
	keyCount          = "icu:stickers--StickerManager--Count"
	keyFilter         = "icu:stickers--StickerManager--Filter"
	keyEmpty          = "icu:stickers--StickerManager--Empty"
	keyToastInstalled = "icu:stickers--StickerManager--Toast--Installed"
	keyToastRemoved   = "icu:stickers--StickerManager--Toast--Uninstalled"
	keyToastCopied    = "icu:stickers--StickerManager--Toast--Copied"
	keyToastForwarded = "icu:stickers--StickerManager--Toast--Forwarded"
)

// headerLines is the number of lines above the first row.
const headerLines = 2

const defaultWidth = 80

// Options configures the sticker list.
type Options struct {
	Packs     []Pack
	Theme     theme.Theme
	Locale    string
	Placement position.Placement
	Strategy  position.Strategy
	ShowHints bool
	// Clipboard receives copied links. Defaults to the system clipboard.
	Clipboard func(string) error
	Logger    *slog.Logger
}

// copiedMsg reports the result of a clipboard copy.
type copiedMsg struct {
	title string
	err   error
}

// Model is the sticker manager list. Every row owns a floating menu; all of
// them share one coordinator and one outside registry.
type Model struct {
	opts    Options
	catalog *i18n.Catalog
	styles  styles
	keys    keyMap
	logger  *slog.Logger

	packs   []Pack
	menus   []*floatmenu.Menu[Action]
	visible []int // indices into packs
	cursor  int   // index into visible
	openRow int   // pack index of the open menu, -1 when none

	coord   *floatmenu.Coordinator
	outside *mouse.OutsideRegistry

	filter    textinput.Model
	filtering bool
	help      help.Model

	renderer    *glamour.TermRenderer
	details     string
	showDetails bool

	status    string
	statusErr bool
	pending   tea.Cmd

	width  int
	height int
}

// New builds the list and one menu per pack.
func New(opts Options) (*Model, error) {
	if opts.Packs == nil {
		opts.Packs = SamplePacks()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = copyToClipboard
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	catalog, err := i18n.Load(opts.Locale)
	if err != nil {
		return nil, err
	}

	m := &Model{
		opts:    opts,
		catalog: catalog,
		styles:  newStyles(opts.Theme),
		keys:    defaultKeyMap(),
		logger:  opts.Logger,
		packs:   append([]Pack(nil), opts.Packs...),
		openRow: -1,
		coord:   floatmenu.NewCoordinator(),
		outside: mouse.NewOutsideRegistry(opts.Logger),
		help:    help.New(),
	}

	m.filter = textinput.New()
	m.filter.Prompt = "/ "
	m.filter.Placeholder = m.t(keyFilter, nil)
	m.filter.CharLimit = 64

	m.renderer = newRenderer(opts.Theme)

	m.menus = make([]*floatmenu.Menu[Action], len(m.packs))
	for i := range m.packs {
		m.menus[i] = m.newMenu(i)
	}
	m.refilter()
	return m, nil
}

func newRenderer(t theme.Theme) *glamour.TermRenderer {
	style := glamour.WithAutoStyle()
	switch t {
	case theme.Dark:
		style = glamour.WithStylePath("dark")
	case theme.Light:
		style = glamour.WithStylePath("light")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(60))
	if err != nil {
		return nil
	}
	return r
}

func (m *Model) t(key string, subs map[string]string) string {
	return m.catalog.T(key, subs)
}

func (m *Model) newMenu(idx int) *floatmenu.Menu[Action] {
	p := m.packs[idx]
	return floatmenu.New(floatmenu.Config[Action]{
		Options:   m.optionsFor(idx),
		Placement: m.opts.Placement,
		Strategy:  m.opts.Strategy,
		Theme:     m.opts.Theme,
		Title:     p.Title,
		ShowHints: m.opts.ShowHints,
		Trigger:   floatmenu.DefaultTrigger{},
		OnMenuShowingChanged: func(showing bool) {
			if showing {
				m.openRow = idx
			} else if m.openRow == idx {
				m.openRow = -1
			}
		},
		Coordinator: m.coord,
		Outside:     m.outside,
		Localize:    m.t,
		Name:        "pack-" + shortID(p.ID),
		Logger:      m.logger,
	})
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (m *Model) optionsFor(idx int) []floatmenu.Option[Action] {
	apply := func(a Action) { m.apply(idx, a) }

	state := floatmenu.Option[Action]{
		Label: m.t(keyInstall, nil), Icon: "+", Group: "state",
		Value: ActionInstall, OnClick: apply,
	}
	if m.packs[idx].Status == StatusInstalled {
		state = floatmenu.Option[Action]{
			Label: m.t(keyUninstall, nil), Icon: "-", Group: "state",
			Value: ActionUninstall, OnClick: apply,
		}
	}

	return []floatmenu.Option[Action]{
		state,
		{Label: m.t(keyCopyLink, nil), Icon: "⧉", Group: "share", Value: ActionCopyLink, OnClick: apply},
		{Label: m.t(keyForward, nil), Icon: "→", Group: "share", Value: ActionForward, OnClick: apply},
		{Label: m.t(keyDetails, nil), Icon: "i", Value: ActionDetails, OnClick: apply},
	}
}

// apply runs a menu action against pack idx.
func (m *Model) apply(idx int, a Action) {
	p := &m.packs[idx]
	subs := map[string]string{"title": p.Title}
	m.logger.Debug("stickers: action", "pack", p.ID, "action", string(a))

	switch a {
	case ActionInstall:
		p.Status = StatusInstalled
		m.menus[idx].SetOptions(m.optionsFor(idx))
		m.setStatus(m.t(keyToastInstalled, subs), false)
	case ActionUninstall:
		p.Status = StatusAvailable
		m.menus[idx].SetOptions(m.optionsFor(idx))
		m.setStatus(m.t(keyToastRemoved, subs), false)
	case ActionCopyLink:
		m.pending = copyCmd(m.opts.Clipboard, *p)
	case ActionForward:
		m.setStatus(m.t(keyToastForwarded, subs), false)
	case ActionDetails:
		m.details = m.renderDetails(*p)
		m.showDetails = true
	}
}

func copyCmd(clip func(string) error, p Pack) tea.Cmd {
	link := packLink(p)
	title := p.Title
	return func() tea.Msg {
		return copiedMsg{title: title, err: clip(link)}
	}
}

func (m *Model) renderDetails(p Pack) string {
	md := formatPackAsMarkdown(p)
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		m.logger.Warn("stickers: render details", "err", err)
		return md
	}
	return strings.TrimRight(out, "\n")
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *Model) takePending() tea.Cmd {
	cmd := m.pending
	m.pending = nil
	return cmd
}

// refilter recomputes the visible rows from the filter query.
func (m *Model) refilter() {
	query := strings.TrimSpace(m.filter.Value())
	m.visible = m.visible[:0]
	if query == "" {
		for i := range m.packs {
			m.visible = append(m.visible, i)
		}
	} else {
		titles := make([]string, len(m.packs))
		for i, p := range m.packs {
			titles[i] = p.Title
		}
		for _, match := range fuzzy.Find(query, titles) {
			m.visible = append(m.visible, match.Index)
		}
	}

	if m.openRow >= 0 && !m.isVisible(m.openRow) {
		m.coord.CloseActive()
	}
	for _, menu := range m.menus {
		menu.SetTriggerFocused(false)
	}
	m.cursor = 0
	if len(m.visible) > 0 {
		m.menus[m.visible[0]].SetTriggerFocused(true)
	}
}

func (m *Model) isVisible(idx int) bool {
	for _, v := range m.visible {
		if v == idx {
			return true
		}
	}
	return false
}

// setCursor moves row focus to visible row i. Focus leaving an open menu's
// trigger counts as an outside interaction.
func (m *Model) setCursor(i int) {
	if i < 0 || i >= len(m.visible) {
		return
	}
	if m.cursor < len(m.visible) {
		m.menus[m.visible[m.cursor]].SetTriggerFocused(false)
	}
	m.cursor = i
	menu := m.menus[m.visible[i]]
	menu.SetTriggerFocused(true)
	m.outside.HandleFocus(menu.TriggerBounds())
}

// Cursor returns the focused visible row.
func (m *Model) Cursor() int { return m.cursor }

// Visible returns the packs currently shown, in display order.
func (m *Model) Visible() []Pack {
	out := make([]Pack, len(m.visible))
	for i, idx := range m.visible {
		out[i] = m.packs[idx]
	}
	return out
}

// Menu returns the menu of visible row i.
func (m *Model) Menu(i int) *floatmenu.Menu[Action] {
	if i < 0 || i >= len(m.visible) {
		return nil
	}
	return m.menus[m.visible[i]]
}

// OpenMenu returns the open menu, if any.
func (m *Model) OpenMenu() *floatmenu.Menu[Action] {
	if m.openRow < 0 {
		return nil
	}
	return m.menus[m.openRow]
}

// Status returns the last status line.
func (m *Model) Status() string { return m.status }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
		} else {
			m.setStatus(m.t(keyToastCopied, map[string]string{"title": msg.title}), false)
		}
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.filtering {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	m.outside.HandleMouse(msg)

	if open := m.OpenMenu(); open != nil && open.Update(msg) {
		return m.takePending()
	}

	for i, idx := range m.visible {
		if m.menus[idx].Update(msg) {
			m.setCursor(i)
			return m.takePending()
		}
	}

	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.setCursor(m.cursor - 1)
	case tea.MouseButtonWheelDown:
		m.setCursor(m.cursor + 1)
	case tea.MouseButtonLeft:
		if row := msg.Y - headerLines; row >= 0 && row < len(m.visible) {
			m.setCursor(row)
		}
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.refilter()
			return m, nil
		case "enter":
			m.filtering = false
			m.filter.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.refilter()
		return m, cmd
	}

	if open := m.OpenMenu(); open != nil && open.Update(msg) {
		return m, m.takePending()
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		if m.showDetails {
			m.showDetails = false
			m.details = ""
		}
		return m, nil
	case key.Matches(msg, m.keys.Filter):
		m.coord.CloseActive()
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.Down):
		m.setCursor(m.cursor + 1)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.setCursor(m.cursor - 1)
		return m, nil
	}

	if menu := m.Menu(m.cursor); menu != nil && menu.Update(msg) {
		return m, m.takePending()
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	lines := []string{m.styles.title.Render(m.t(keyTitle, nil)), ""}

	if len(m.visible) == 0 {
		query := strings.TrimSpace(m.filter.Value())
		lines = append(lines, m.styles.empty.Render(m.t(keyEmpty, map[string]string{"query": query})))
	}
	titleWidth := m.titleWidth()
	for i, idx := range m.visible {
		lines = append(lines, m.renderRow(i, idx, headerLines+i, width, titleWidth))
	}

	lines = append(lines, "")
	if m.showDetails && m.details != "" {
		lines = append(lines, strings.Split(m.styles.details.Render(m.details), "\n")...)
	}
	if m.filtering || m.filter.Value() != "" {
		lines = append(lines, m.filter.View())
	}
	if m.status != "" {
		style := m.styles.status
		if m.statusErr {
			style = m.styles.errStatus
		}
		lines = append(lines, style.Render(m.status))
	}
	lines = append(lines, m.help.View(m.keys))

	for m.height > 0 && len(lines) < m.height {
		lines = append(lines, "")
	}
	frame := strings.Join(lines, "\n")

	open := m.OpenMenu()
	if open == nil {
		return frame
	}
	height := m.height
	if height <= 0 {
		height = len(lines)
	}
	return open.Overlay(frame, mouse.Rect{W: width, H: height})
}

func (m *Model) titleWidth() int {
	w := 0
	for _, p := range m.packs {
		w = max(w, lipgloss.Width(p.Title))
	}
	return w
}

// renderRow draws one pack row with its menu trigger right-aligned, and
// records the trigger's bounds on the menu.
func (m *Model) renderRow(i, idx, y, width, titleWidth int) string {
	p := m.packs[idx]
	menu := m.menus[idx]

	marker := "  "
	if i == m.cursor {
		marker = "> "
	}

	var sb strings.Builder
	sb.WriteString(marker)
	sb.WriteString(p.Title)
	sb.WriteString(strings.Repeat(" ", titleWidth-lipgloss.Width(p.Title)+2))
	sb.WriteString(m.styles.author.Render(p.Author))
	sb.WriteString("  ")
	sb.WriteString(m.styles.count.Render(m.t(keyCount, map[string]string{"count": strconv.Itoa(p.Count)})))
	if p.Status == StatusInstalled {
		sb.WriteString("  ")
		sb.WriteString(m.styles.installed.Render(m.t(keyInstalled, nil)))
	}
	if p.Blessed {
		sb.WriteString("  ")
		sb.WriteString(m.styles.blessed.Render(m.t(keyBlessed, nil)))
	}

	trigger := menu.View()
	tw := lipgloss.Width(trigger)
	avail := max(width-tw, 0)

	left := ansi.Truncate(sb.String(), max(avail-1, 0), "…")
	if pad := avail - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	style := m.styles.row
	if i == m.cursor {
		style = m.styles.rowCursor
	}

	menu.SetTriggerBounds(mouse.Rect{X: avail, Y: y, W: tw, H: 1})
	return style.Render(left) + trigger
}
