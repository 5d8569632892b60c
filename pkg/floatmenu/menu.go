package floatmenu

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/marcus/floatmenu/pkg/floatmenu/mouse"
	"github.com/marcus/floatmenu/pkg/floatmenu/position"
	"github.com/marcus/floatmenu/pkg/floatmenu/theme"
)

// Localizer returns the user-visible string for key. subs fills named
// placeholders and may be nil.
type Localizer func(key string, subs map[string]string) string

// Message keys the menu looks up through its Localizer.
const (
	KeyTriggerLabel = "icu:ContextMenu--button"
	KeyHints        = "icu:ContextMenu--hints"
)

var fallbackMessages = map[string]string{
	KeyTriggerLabel: "Context menu",
	KeyHints:        "↑/↓ move · enter select · esc close",
}

func fallbackLocalize(key string, _ map[string]string) string {
	if s, ok := fallbackMessages[key]; ok {
		return s
	}
	return key
}

// Config configures a Menu. Only Options is required.
type Config[T comparable] struct {
	Options []Option[T]
	// CurrentValue marks the option whose Value equals it.
	CurrentValue *T

	// Trigger defaults to DefaultTrigger{}.
	Trigger Trigger
	// OnClick replaces open-on-click for pointer presses on the trigger.
	// The caller decides whether to call ActivateViaPointer.
	OnClick func(p mouse.Point)

	Placement position.Placement
	Strategy  position.Strategy
	// Origin is the offset parent for the absolute strategy.
	Origin mouse.Point

	Theme     theme.Theme
	Title     string
	ShowHints bool

	// OnMenuShowingChanged is called whenever the menu opens or closes.
	OnMenuShowingChanged func(showing bool)

	// Coordinator enforces one open menu. A nil coordinator gives the menu
	// a private one.
	Coordinator *Coordinator
	// Outside delivers outside interactions. Nil disables outside dismissal.
	Outside *mouse.OutsideRegistry

	Localize Localizer
	KeyMap   KeyMap
	// Name labels the outside registration and log lines.
	Name   string
	Logger *slog.Logger
}

// State is a snapshot of a menu's interaction state.
type State struct {
	IsOpen       bool
	FocusedIndex int // valid only when Focused
	Focused      bool
	AnchorPoint  mouse.Point
}

// Menu is a floating menu over values of type T.
type Menu[T comparable] struct {
	cfg    Config[T]
	styles theme.Styles
	logger *slog.Logger
	handle *Handle

	isOpen  bool
	focused int // -1 when unset
	anchor  mouse.Point

	trigger        mouse.Rect
	triggerFocused bool

	panel  mouse.Rect
	result position.Result
	hits   *mouse.Handler

	unregister func()
}

// New builds a closed menu.
func New[T comparable](cfg Config[T]) *Menu[T] {
	if cfg.Trigger == nil {
		cfg.Trigger = DefaultTrigger{}
	}
	if cfg.Placement == "" {
		cfg.Placement = position.DefaultPlacement
	}
	if cfg.Strategy == "" {
		cfg.Strategy = position.DefaultStrategy
	}
	if cfg.Coordinator == nil {
		cfg.Coordinator = NewCoordinator()
	}
	if cfg.Localize == nil {
		cfg.Localize = fallbackLocalize
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Name == "" {
		cfg.Name = "floatmenu-" + uuid.NewString()[:8]
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	return &Menu[T]{
		cfg:     cfg,
		styles:  theme.StylesFor(cfg.Theme),
		logger:  cfg.Logger.With("menu", cfg.Name),
		handle:  NewHandle(cfg.Name),
		focused: -1,
		hits:    mouse.NewHandler(),
	}
}

// Name returns the menu's name.
func (m *Menu[T]) Name() string { return m.cfg.Name }

// IsOpen reports whether the panel is showing.
func (m *Menu[T]) IsOpen() bool { return m.isOpen }

// FocusedIndex returns the keyboard-focused option, if any.
func (m *Menu[T]) FocusedIndex() (int, bool) {
	return m.focused, m.focused >= 0
}

// Anchor returns the point the panel was last anchored to.
func (m *Menu[T]) Anchor() mouse.Point { return m.anchor }

// State returns a snapshot of the interaction state.
func (m *Menu[T]) State() State {
	return State{
		IsOpen:       m.isOpen,
		FocusedIndex: m.focused,
		Focused:      m.focused >= 0,
		AnchorPoint:  m.anchor,
	}
}

// Options returns the current options.
func (m *Menu[T]) Options() []Option[T] { return m.cfg.Options }

// SetOptions replaces the options. A focus index that no longer fits is
// cleared.
func (m *Menu[T]) SetOptions(opts []Option[T]) {
	m.cfg.Options = opts
	if m.focused >= len(opts) {
		m.focused = -1
	}
}

// SetCurrentValue changes which option is marked as current. Nil clears it.
func (m *Menu[T]) SetCurrentValue(v *T) { m.cfg.CurrentValue = v }

// Handle identifies the menu in its Coordinator.
func (m *Menu[T]) Handle() *Handle { return m.handle }

// SetTitle changes the text shown above the options.
func (m *Menu[T]) SetTitle(title string) { m.cfg.Title = title }

// SetTriggerBounds records where the host drew the trigger.
func (m *Menu[T]) SetTriggerBounds(r mouse.Rect) { m.trigger = r }

// TriggerBounds returns the last recorded trigger bounds.
func (m *Menu[T]) TriggerBounds() mouse.Rect { return m.trigger }

// SetTriggerFocused moves keyboard focus onto or off the trigger.
func (m *Menu[T]) SetTriggerFocused(focused bool) { m.triggerFocused = focused }

// TriggerFocused reports whether the trigger has keyboard focus.
func (m *Menu[T]) TriggerFocused() bool { return m.triggerFocused }

// PanelBounds returns the panel's bounds from the last Overlay call. It is
// empty while the menu is closed.
func (m *Menu[T]) PanelBounds() mouse.Rect { return m.panel }

// Placement returns the placement used for the last render, after flipping.
func (m *Menu[T]) Placement() position.Placement {
	if m.result.Placement == "" {
		return m.cfg.Placement
	}
	return m.result.Placement
}

// Attributes returns the data attributes of the last positioned panel.
func (m *Menu[T]) Attributes() map[string]string {
	out := make(map[string]string, len(m.result.Attributes)+1)
	for k, v := range m.result.Attributes {
		out[k] = v
	}
	if cls := theme.ClassName(m.cfg.Theme); cls != "" {
		out["class"] = cls
	}
	return out
}

// ActivateViaPointer opens the menu anchored at p. Options start unfocused.
func (m *Menu[T]) ActivateViaPointer(p mouse.Point) {
	m.open(p, "pointer")
}

// ActivateViaKeyboard opens the menu anchored at the top-left corner of
// anchor and focuses the first option.
func (m *Menu[T]) ActivateViaKeyboard(anchor mouse.Rect) {
	m.open(anchor.Origin(), "keyboard")
	if len(m.cfg.Options) > 0 {
		m.focused = 0
	}
}

func (m *Menu[T]) open(anchor mouse.Point, via string) {
	m.cfg.Coordinator.Claim(m.handle, m.Close)
	m.anchor = anchor
	m.focused = -1

	if m.isOpen {
		m.logger.Debug("floatmenu: re-anchor", "via", via, "x", anchor.X, "y", anchor.Y)
		return
	}

	m.isOpen = true
	if m.cfg.Outside != nil && m.unregister == nil {
		m.unregister = m.cfg.Outside.Register(m.handleOutside, mouse.OutsideOptions{
			Containers: []mouse.Container{
				mouse.ContainerFunc(m.TriggerBounds),
				mouse.ContainerFunc(m.PanelBounds),
			},
			Name: m.cfg.Name,
		})
	}
	m.logger.Debug("floatmenu: open", "via", via, "x", anchor.X, "y", anchor.Y)
	m.notify(true)
}

// Close hides the panel. It is a no-op on a closed menu.
func (m *Menu[T]) Close() {
	if !m.isOpen {
		return
	}
	m.isOpen = false
	m.focused = -1
	m.panel = mouse.Rect{}
	m.hits.Clear()

	m.cfg.Coordinator.Release(m.handle)
	if m.unregister != nil {
		m.unregister()
		m.unregister = nil
	}
	m.logger.Debug("floatmenu: close")
	m.notify(false)
}

// handleOutside closes the menu and lets the interaction continue to the
// rest of the UI.
func (m *Menu[T]) handleOutside() bool {
	m.Close()
	return false
}

func (m *Menu[T]) notify(showing bool) {
	if m.cfg.OnMenuShowingChanged != nil {
		m.cfg.OnMenuShowingChanged(showing)
	}
}

// Select runs option i's OnClick with its value and closes the menu. The
// close is deferred so it also happens when the handler panics. Select
// reports false and does nothing when the menu is closed or i is out of
// range.
func (m *Menu[T]) Select(i int) bool {
	if !m.isOpen || i < 0 || i >= len(m.cfg.Options) {
		return false
	}
	opt := m.cfg.Options[i]
	m.logger.Debug("floatmenu: select", "index", i, "label", opt.Label)

	defer m.Close()
	if opt.OnClick != nil {
		opt.OnClick(opt.Value)
	}
	return true
}

func (m *Menu[T]) moveFocus(delta int) {
	n := len(m.cfg.Options)
	if n == 0 {
		return
	}
	if m.focused < 0 {
		if delta > 0 {
			m.focused = 0
		} else {
			m.focused = n - 1
		}
		return
	}
	m.focused = ((m.focused+delta)%n + n) % n
}

// Update routes key and mouse messages and reports whether the menu
// consumed msg. Hosts should stop processing a consumed message.
func (m *Menu[T]) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.HandleKey(msg)
	case tea.MouseMsg:
		return m.HandleMouse(msg)
	}
	return false
}

// HandleKey handles a key press and reports whether it was consumed.
func (m *Menu[T]) HandleKey(msg tea.KeyMsg) bool {
	keys := m.cfg.KeyMap

	if !m.isOpen {
		if m.triggerFocused && key.Matches(msg, keys.Activate) {
			m.ActivateViaKeyboard(m.trigger)
			return true
		}
		return false
	}

	switch {
	case key.Matches(msg, keys.Dismiss):
		m.Close()
	case key.Matches(msg, keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, keys.Prev):
		m.moveFocus(-1)
	case key.Matches(msg, keys.Select):
		if m.focused >= 0 {
			m.Select(m.focused)
		}
	default:
		return false
	}
	return true
}

// HandleMouse handles presses and motion over the trigger and the open
// panel and reports whether msg was consumed. Presses elsewhere are left to
// the outside registry.
func (m *Menu[T]) HandleMouse(msg tea.MouseMsg) bool {
	p := mouse.Point{X: msg.X, Y: msg.Y}

	if m.isOpen && m.panel.ContainsPoint(p) {
		action := m.hits.HandleMouse(msg)
		if action.Region == nil {
			return true
		}
		idx, _ := action.Region.Data.(int)
		switch action.Type {
		case mouse.ActionClick:
			m.Select(idx)
		case mouse.ActionHover:
			if idx < len(m.cfg.Options) {
				m.focused = idx
			}
		}
		return true
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.trigger.ContainsPoint(p) {
		if m.cfg.OnClick != nil {
			m.cfg.OnClick(p)
		} else {
			m.ActivateViaPointer(p)
		}
		return true
	}
	return false
}
