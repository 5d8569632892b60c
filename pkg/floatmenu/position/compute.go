package position

import "github.com/marcus/floatmenu/pkg/floatmenu/mouse"

// VirtualElement is an anchor that only has a bounding box.
type VirtualElement interface {
	BoundingClientRect() mouse.Rect
}

// RectAnchor is a VirtualElement with fixed bounds.
type RectAnchor mouse.Rect

// BoundingClientRect implements VirtualElement.
func (r RectAnchor) BoundingClientRect() mouse.Rect { return mouse.Rect(r) }

// PointAnchor returns a zero-size anchor at p.
func PointAnchor(p mouse.Point) VirtualElement {
	return RectAnchor{X: p.X, Y: p.Y}
}

// Size is a rendered panel's size in cells.
type Size struct {
	W, H int
}

// Options configures Compute.
type Options struct {
	Placement Placement
	Strategy  Strategy
	// Viewport bounds flipping and shifting. An empty viewport disables both.
	Viewport mouse.Rect
	// Origin is the offset parent for the Absolute strategy.
	Origin mouse.Point
}

// Styles are the values to apply to the panel, in Strategy coordinates.
type Styles struct {
	Position Strategy
	Left     int
	Top      int
}

// Result is the output of Compute.
type Result struct {
	Styles     Styles
	Attributes map[string]string
	// Placement is the placement after flipping.
	Placement Placement
	// X and Y are the panel's top-left corner in viewport coordinates.
	X, Y int
}

// Bounds returns the panel rectangle in viewport coordinates.
func (r Result) Bounds(panel Size) mouse.Rect {
	return mouse.Rect{X: r.X, Y: r.Y, W: panel.W, H: panel.H}
}

// Compute positions a panel of the given size against anchor.
func Compute(anchor VirtualElement, panel Size, opts Options) Result {
	placement := opts.Placement
	if placement == "" {
		placement = DefaultPlacement
	}
	strategy := opts.Strategy
	if strategy == "" {
		strategy = DefaultStrategy
	}

	ref := anchor.BoundingClientRect()
	x, y := coords(ref, panel, placement)

	if !opts.Viewport.Empty() {
		placement, x, y = flip(ref, panel, placement, x, y, opts.Viewport)
		x, y = shift(panel, x, y, opts.Viewport)
	}

	styles := Styles{Position: strategy, Left: x, Top: y}
	if strategy == Absolute {
		styles.Left -= opts.Origin.X
		styles.Top -= opts.Origin.Y
	}

	return Result{
		Styles: styles,
		Attributes: map[string]string{
			"data-placement": string(placement),
			"data-strategy":  string(strategy),
		},
		Placement: placement,
		X:         x,
		Y:         y,
	}
}

func coords(ref mouse.Rect, panel Size, p Placement) (x, y int) {
	side := p.Side()
	vertical := side == SideTop || side == SideBottom

	switch side {
	case SideTop:
		y = ref.Y - panel.H
	case SideBottom:
		y = ref.Y + ref.H
	case SideLeft:
		x = ref.X - panel.W
	case SideRight:
		x = ref.X + ref.W
	}

	switch p.Alignment() {
	case AlignStart:
		if vertical {
			x = ref.X
		} else {
			y = ref.Y
		}
	case AlignEnd:
		if vertical {
			x = ref.X + ref.W - panel.W
		} else {
			y = ref.Y + ref.H - panel.H
		}
	default:
		if vertical {
			x = ref.X + ref.W/2 - panel.W/2
		} else {
			y = ref.Y + ref.H/2 - panel.H/2
		}
	}
	return x, y
}

// overflow returns how many cells the panel sticks out past the viewport
// edge on its placement side.
func overflow(panel Size, side Side, x, y int, vp mouse.Rect) int {
	switch side {
	case SideTop:
		return vp.Y - y
	case SideBottom:
		return y + panel.H - (vp.Y + vp.H)
	case SideLeft:
		return vp.X - x
	case SideRight:
		return x + panel.W - (vp.X + vp.W)
	}
	return 0
}

func flip(ref mouse.Rect, panel Size, p Placement, x, y int, vp mouse.Rect) (Placement, int, int) {
	over := overflow(panel, p.Side(), x, y, vp)
	if over <= 0 {
		return p, x, y
	}

	alt := p.Opposite()
	ax, ay := coords(ref, panel, alt)
	altOver := overflow(panel, alt.Side(), ax, ay, vp)
	if altOver < over {
		return alt, ax, ay
	}
	return p, x, y
}

// shift clamps the panel into the viewport on both axes. Panels larger
// than the viewport are pinned to its top-left corner.
func shift(panel Size, x, y int, vp mouse.Rect) (int, int) {
	return clamp(x, vp.X, vp.X+vp.W-panel.W), clamp(y, vp.Y, vp.Y+vp.H-panel.H)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
