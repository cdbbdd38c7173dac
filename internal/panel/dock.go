// Package panel computes the rectangles a docking panel, a wrapping panel
// and a grid panel are expected to produce. The formulas are independent of
// any layout engine; the harness compares an engine's output against them.
package panel

import (
	"fmt"
	"strings"

	"github.com/grindlemire/panelcheck/internal/layout"
)

// DockSide is the edge a dock child attaches to.
type DockSide uint8

const (
	Left DockSide = iota
	Top
	Right
	Bottom
)

var dockSideNames = [...]string{"left", "top", "right", "bottom"}

func (s DockSide) String() string {
	if int(s) < len(dockSideNames) {
		return dockSideNames[s]
	}
	return fmt.Sprintf("DockSide(%d)", s)
}

// Horizontal reports whether the side consumes width from the remaining space.
func (s DockSide) Horizontal() bool {
	return s == Left || s == Right
}

// ParseDockSide parses a side name case-insensitively.
func ParseDockSide(name string) (DockSide, error) {
	for i, n := range dockSideNames {
		if strings.EqualFold(name, n) {
			return DockSide(i), nil
		}
	}
	return 0, fmt.Errorf("unknown dock side %q", name)
}

// Size is a natural content size.
type Size struct {
	Width, Height int
}

// DockChild describes one child of a docking panel.
type DockChild struct {
	Side DockSide
	// Size is the explicit extent along the docking axis. 0 means the
	// child is sized to its content.
	Size    int
	Content Size
	// Margin is applied uniformly on all four sides.
	Margin int
}

// Extent returns the outer size the child asks for along its docking axis.
func (c DockChild) Extent() int {
	inner := c.Size
	if inner == 0 {
		inner = c.Content.Height
		if c.Side.Horizontal() {
			inner = c.Content.Width
		}
	}
	return inner + 2*c.Margin
}

// Dock returns the expected rectangle of every child. Children are docked
// in order, each taking its extent from the space the previous ones left,
// clamped to what remains. With lastChildFill the final child takes the
// whole remainder. Margins inset each slot.
func Dock(container layout.Rect, children []DockChild, lastChildFill bool) []layout.Rect {
	out := make([]layout.Rect, len(children))
	remaining := container

	for i, c := range children {
		margin := layout.EdgeAll(c.Margin)
		if lastChildFill && i == len(children)-1 {
			out[i] = remaining.Inset(margin)
			break
		}

		slot := remaining
		switch c.Side {
		case Left:
			slot.Width = min(c.Extent(), remaining.Width)
			remaining.X += slot.Width
			remaining.Width -= slot.Width
		case Right:
			slot.Width = min(c.Extent(), remaining.Width)
			slot.X = remaining.Right() - slot.Width
			remaining.Width -= slot.Width
		case Top:
			slot.Height = min(c.Extent(), remaining.Height)
			remaining.Y += slot.Height
			remaining.Height -= slot.Height
		case Bottom:
			slot.Height = min(c.Extent(), remaining.Height)
			slot.Y = remaining.Bottom() - slot.Height
			remaining.Height -= slot.Height
		}
		out[i] = slot.Inset(margin)
	}
	return out
}
