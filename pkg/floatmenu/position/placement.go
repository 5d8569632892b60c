// Package position places a floating panel next to a virtual anchor inside
// a terminal viewport and composites the rendered panel onto a frame.
package position

import (
	"fmt"
	"strings"
)

// Side is the side of the anchor the panel is placed on.
type Side string

const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
)

// Alignment aligns the panel along the anchor's cross axis. The zero value
// centers it.
type Alignment string

const (
	AlignCenter Alignment = ""
	AlignStart  Alignment = "start"
	AlignEnd    Alignment = "end"
)

// Placement is a side with an optional alignment, e.g. "top-start".
type Placement string

const (
	Top         Placement = "top"
	TopStart    Placement = "top-start"
	TopEnd      Placement = "top-end"
	Right       Placement = "right"
	RightStart  Placement = "right-start"
	RightEnd    Placement = "right-end"
	Bottom      Placement = "bottom"
	BottomStart Placement = "bottom-start"
	BottomEnd   Placement = "bottom-end"
	Left        Placement = "left"
	LeftStart   Placement = "left-start"
	LeftEnd     Placement = "left-end"
)

// DefaultPlacement is used when none is configured.
const DefaultPlacement = TopStart

var placements = []Placement{
	Top, TopStart, TopEnd,
	Right, RightStart, RightEnd,
	Bottom, BottomStart, BottomEnd,
	Left, LeftStart, LeftEnd,
}

// ParsePlacement validates s. An empty string yields DefaultPlacement.
func ParsePlacement(s string) (Placement, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultPlacement, nil
	}
	for _, p := range placements {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid placement %q", s)
}

// Side returns the placement's side.
func (p Placement) Side() Side {
	side, _, _ := strings.Cut(string(p), "-")
	return Side(side)
}

// Alignment returns the placement's alignment.
func (p Placement) Alignment() Alignment {
	_, align, _ := strings.Cut(string(p), "-")
	return Alignment(align)
}

// Opposite mirrors the side and keeps the alignment.
func (p Placement) Opposite() Placement {
	var side Side
	switch p.Side() {
	case SideTop:
		side = SideBottom
	case SideBottom:
		side = SideTop
	case SideLeft:
		side = SideRight
	case SideRight:
		side = SideLeft
	default:
		return p
	}
	return compose(side, p.Alignment())
}

func compose(side Side, align Alignment) Placement {
	if align == AlignCenter {
		return Placement(side)
	}
	return Placement(string(side) + "-" + string(align))
}

// Strategy selects the coordinate space of the computed position.
type Strategy string

const (
	// Fixed positions are relative to the viewport.
	Fixed Strategy = "fixed"
	// Absolute positions are relative to Options.Origin.
	Absolute Strategy = "absolute"
)

// DefaultStrategy is used when none is configured.
const DefaultStrategy = Fixed

// ParseStrategy validates s. An empty string yields DefaultStrategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultStrategy, nil
	case Fixed:
		return Fixed, nil
	case Absolute:
		return Absolute, nil
	}
	return "", fmt.Errorf("invalid strategy %q", s)
}
