package harness

import (
	"sync/atomic"

	"github.com/grindlemire/panelcheck/internal/layout"
)

// Window owns a visual tree and the size it is laid out in. Pass
// layout.Unconstrained as a dimension to size the tree to its content.
type Window struct {
	root          *layout.Node
	width, height int
	dirty         atomic.Bool
	passes        int
}

// NewWindow creates an empty window of the given size.
func NewWindow(width, height int) *Window {
	return &Window{width: width, height: height}
}

// SetRoot replaces the visual tree.
func (w *Window) SetRoot(root *layout.Node) {
	w.root = root
	w.MarkDirty()
}

// Root returns the visual tree.
func (w *Window) Root() *layout.Node {
	return w.root
}

// Size returns the current window size.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// Resize changes the window size and schedules a layout pass.
func (w *Window) Resize(width, height int) {
	if width == w.width && height == w.height {
		return
	}
	w.width, w.height = width, height
	if w.root != nil {
		w.root.MarkDirty()
	}
	w.MarkDirty()
}

// MarkDirty schedules a layout pass. Safe to call from any goroutine.
func (w *Window) MarkDirty() {
	w.dirty.Store(true)
}

func (w *Window) checkAndClearDirty() bool {
	return w.dirty.Swap(false)
}

// RunLayoutPass lays out the tree immediately.
func (w *Window) RunLayoutPass() {
	w.dirty.Store(false)
	if w.root == nil {
		return
	}
	layout.Calculate(w.root, w.width, w.height)
	w.passes++
}

// Passes returns how many layout passes have run.
func (w *Window) Passes() int {
	return w.passes
}
