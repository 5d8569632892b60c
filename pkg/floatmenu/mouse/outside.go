package mouse

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Container is anything with on-screen bounds. Bounds are read at dispatch
// time, so a container may move or resize between renders.
type Container interface {
	Bounds() Rect
}

// ContainerFunc adapts a function to Container.
type ContainerFunc func() Rect

// Bounds implements Container.
func (f ContainerFunc) Bounds() Rect { return f() }

// OutsideOptions describes one outside-interaction registration.
type OutsideOptions struct {
	Containers []Container
	Name       string
}

type outsideEntry struct {
	id        uint64
	onOutside func() bool
	opts      OutsideOptions
}

// OutsideRegistry notifies registered handlers about pointer presses and
// focus moves that land outside all of their containers. It must be driven
// from the bubbletea update loop.
type OutsideRegistry struct {
	entries []*outsideEntry
	nextID  uint64
	logger  *slog.Logger
}

// NewOutsideRegistry returns an empty registry. A nil logger discards.
func NewOutsideRegistry(logger *slog.Logger) *OutsideRegistry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &OutsideRegistry{logger: logger}
}

// Register adds a handler and returns its unregister function, which is
// safe to call more than once. onOutside returns true when it consumed the
// interaction; older registrations are then not consulted.
func (r *OutsideRegistry) Register(onOutside func() bool, opts OutsideOptions) func() {
	r.nextID++
	e := &outsideEntry{id: r.nextID, onOutside: onOutside, opts: opts}
	r.entries = append(r.entries, e)
	r.logger.Debug("outside: register", "name", opts.Name, "containers", len(opts.Containers))

	return func() {
		for i, cur := range r.entries {
			if cur.id == e.id {
				r.entries = append(r.entries[:i], r.entries[i+1:]...)
				r.logger.Debug("outside: unregister", "name", opts.Name)
				return
			}
		}
	}
}

// Len returns the number of live registrations.
func (r *OutsideRegistry) Len() int {
	return len(r.entries)
}

// HandleMouse dispatches left presses. Other mouse messages are ignored.
func (r *OutsideRegistry) HandleMouse(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	return r.Dispatch(Point{X: msg.X, Y: msg.Y})
}

// HandleFocus dispatches a focus move to the element drawn at target. The
// move stays inside a registration only when target is one of its
// containers. Elements drawn underneath a floating container are still
// outside it.
func (r *OutsideRegistry) HandleFocus(target Rect) bool {
	return r.dispatch(target.Origin(), func(c Rect) bool { return c == target })
}

// Dispatch calls onOutside, newest registration first, for every entry whose
// containers all exclude p. It stops at the first handler returning true.
func (r *OutsideRegistry) Dispatch(p Point) bool {
	return r.dispatch(p, func(c Rect) bool { return c.ContainsPoint(p) })
}

func (r *OutsideRegistry) dispatch(p Point, hit func(Rect) bool) bool {
	// Handlers usually unregister themselves; walk a snapshot.
	snapshot := make([]*outsideEntry, len(r.entries))
	copy(snapshot, r.entries)

	for i := len(snapshot) - 1; i >= 0; i-- {
		e := snapshot[i]
		if inside(e.opts.Containers, hit) {
			continue
		}
		r.logger.Debug("outside: interaction", "name", e.opts.Name, "x", p.X, "y", p.Y)
		if e.onOutside() {
			return true
		}
	}
	return false
}

func inside(containers []Container, hit func(Rect) bool) bool {
	for _, c := range containers {
		if c == nil {
			continue
		}
		if hit(c.Bounds()) {
			return true
		}
	}
	return false
}
