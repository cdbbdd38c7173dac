package harness

import (
	"context"

	"github.com/grindlemire/panelcheck/internal/layout"
	"github.com/grindlemire/panelcheck/internal/scenario"
	"github.com/grindlemire/panelcheck/internal/star"
)

// GridSetup is everything an engine needs to build a grid.
type GridSetup struct {
	// Columns already carry minimums imputed from spans.
	Columns []star.ColumnSpec
	// Content is the natural width of each column's child, 0 for none.
	Content []float64
	Height  int
}

// Arrangement is the column geometry an engine produced.
type Arrangement struct {
	// Width is the width the grid settled on, which differs from the
	// requested width when it was unconstrained.
	Width   int
	Widths  []int
	Offsets []int
}

// Engine is a layout engine under test.
type Engine interface {
	Name() string
	// Open builds a grid. It returns ErrUnsupported when the engine cannot
	// express the setup.
	Open(setup GridSetup) (Surface, error)
}

// Surface is a grid built by an engine.
type Surface interface {
	// Arrange lays the grid out at the given width, which may be
	// layout.Unconstrained.
	Arrange(ctx context.Context, width int) (Arrangement, error)
	// Close releases the surface. Arrange fails once it is closed.
	Close()
}

// PanelEngine is implemented by engines that can also host dock and wrap
// panels.
type PanelEngine interface {
	ArrangeDock(ctx context.Context, dock scenario.Dock) ([]layout.Rect, error)
	ArrangeWrap(ctx context.Context, wrap scenario.Wrap) ([]layout.Rect, error)
}
