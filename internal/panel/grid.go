package panel

import (
	"fmt"

	"github.com/grindlemire/panelcheck/internal/layout"
)

// ColumnOffsets returns the left edge of every column given their widths.
func ColumnOffsets(widths []int) []int {
	out := make([]int, len(widths))
	x := 0
	for i, w := range widths {
		out[i] = x
		x += w
	}
	return out
}

// CompareRects lists every difference between the expected and actual
// rectangles. Positions and sizes are integers and compared exactly.
func CompareRects(want, got []layout.Rect) []string {
	if len(want) != len(got) {
		return []string{fmt.Sprintf("got %d rects, want %d", len(got), len(want))}
	}

	var diffs []string
	for i := range want {
		w, g := want[i], got[i]
		if w.X != g.X || w.Y != g.Y {
			diffs = append(diffs, fmt.Sprintf("child %d: position (%d,%d), want (%d,%d)", i, g.X, g.Y, w.X, w.Y))
		}
		if w.Width != g.Width || w.Height != g.Height {
			diffs = append(diffs, fmt.Sprintf("child %d: size %dx%d, want %dx%d", i, g.Width, g.Height, w.Width, w.Height))
		}
	}
	return diffs
}
