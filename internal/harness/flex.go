package harness

import (
	"context"

	"go.uber.org/zap"

	"github.com/grindlemire/panelcheck/internal/layout"
	"github.com/grindlemire/panelcheck/internal/panel"
	"github.com/grindlemire/panelcheck/internal/scenario"
)

// FlexEngine runs panels on the flexbox engine in internal/layout.
type FlexEngine struct {
	log *zap.Logger
}

// NewFlexEngine creates the flexbox engine adapter.
func NewFlexEngine(logger *zap.Logger) *FlexEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FlexEngine{log: logger.Named("flex")}
}

func (e *FlexEngine) Name() string { return "flex" }

// Open implements Engine.
func (e *FlexEngine) Open(setup GridSetup) (Surface, error) {
	view := NewGridView(setup.Columns)
	for i, w := range setup.Content {
		if err := view.SetContent(i, w); err != nil {
			return nil, err
		}
	}

	height := orUnconstrained(setup.Height)
	win := NewWindow(0, height)
	win.SetRoot(view.Root())
	return &flexSurface{
		view:       view,
		window:     win,
		height:     height,
		dispatcher: NewDispatcher(win, DefaultQueueSize, e.log),
	}, nil
}

type flexSurface struct {
	view       *GridView
	window     *Window
	height     int
	dispatcher *Dispatcher
}

func (s *flexSurface) Arrange(ctx context.Context, width int) (Arrangement, error) {
	if err := s.dispatcher.Post(func() { s.window.Resize(width, s.height) }); err != nil {
		return Arrangement{}, err
	}
	if err := s.dispatcher.PumpUntilIdle(ctx); err != nil {
		return Arrangement{}, err
	}
	return s.view.Arrangement(), nil
}

func (s *flexSurface) Close() { s.dispatcher.Close() }

// ArrangeDock implements PanelEngine.
func (e *FlexEngine) ArrangeDock(ctx context.Context, dock scenario.Dock) ([]layout.Rect, error) {
	children, err := dock.DockChildren()
	if err != nil {
		return nil, err
	}
	root, leaves := buildDock(children, dock.LastChildFill)
	if err := e.pump(ctx, root, dock.Width, dock.Height); err != nil {
		return nil, err
	}
	return rects(leaves), nil
}

// ArrangeWrap implements PanelEngine.
func (e *FlexEngine) ArrangeWrap(ctx context.Context, wrap scenario.Wrap) ([]layout.Rect, error) {
	root, leaves := buildWrap(wrap)
	if err := e.pump(ctx, root, wrap.Width, orUnconstrained(wrap.Height)); err != nil {
		return nil, err
	}
	return rects(leaves), nil
}

func (e *FlexEngine) pump(ctx context.Context, root *layout.Node, width, height int) error {
	win := NewWindow(width, height)
	d := NewDispatcher(win, DefaultQueueSize, e.log)
	defer d.Close()
	if err := d.Post(func() { win.SetRoot(root) }); err != nil {
		return err
	}
	return d.PumpUntilIdle(ctx)
}

// buildDock nests one two-item flex container per docked child: the child
// and a growing remainder that hosts the next level. Right and bottom
// children come after their remainder. A filling last child is itself the
// innermost remainder.
func buildDock(children []panel.DockChild, lastChildFill bool) (*layout.Node, []*layout.Node) {
	leaves := make([]*layout.Node, len(children))
	root := layout.NewNode(layout.DefaultStyle())
	cur := root

	for i, c := range children {
		if lastChildFill && i == len(children)-1 {
			cur.Style.Direction = layout.Row
			leaves[i] = layout.NewLeaf(remainderStyle(layout.Row, c.Margin), c.Content.Width, c.Content.Height)
			cur.AddChild(leaves[i])
			break
		}

		dir := layout.Column
		if c.Side.Horizontal() {
			dir = layout.Row
		}
		cur.Style.Direction = dir

		style := layout.DefaultStyle()
		style.Margin = layout.EdgeAll(c.Margin)
		if c.Size > 0 {
			if dir == layout.Row {
				style.Width = layout.Fixed(c.Size)
			} else {
				style.Height = layout.Fixed(c.Size)
			}
		}
		leaves[i] = layout.NewLeaf(style, c.Content.Width, c.Content.Height)
		rest := layout.NewNode(remainderStyle(dir, 0))

		if c.Side == panel.Right || c.Side == panel.Bottom {
			cur.AddChild(rest, leaves[i])
		} else {
			cur.AddChild(leaves[i], rest)
		}
		cur = rest
	}
	return root, leaves
}

// remainderStyle grows from zero along the parent's main axis and
// stretches across it.
func remainderStyle(parent layout.Direction, margin int) layout.Style {
	s := layout.DefaultStyle()
	if parent == layout.Row {
		s.Width = layout.Fixed(0)
	} else {
		s.Height = layout.Fixed(0)
	}
	s.FlexGrow = 1
	s.FlexShrink = 0
	s.Margin = layout.EdgeAll(margin)
	return s
}

func buildWrap(w scenario.Wrap) (*layout.Node, []*layout.Node) {
	style := layout.DefaultStyle()
	style.Direction = layout.Row
	style.Wrap = true
	if !w.Stretch {
		style.AlignItems = layout.AlignStart
	}
	root := layout.NewNode(style)

	leaves := make([]*layout.Node, len(w.Items))
	for i, it := range w.Items {
		s := layout.DefaultStyle()
		if w.ItemWidth > 0 {
			s.Width = layout.Fixed(w.ItemWidth)
		}
		if w.ItemHeight > 0 {
			s.Height = layout.Fixed(w.ItemHeight)
		}
		leaves[i] = layout.NewLeaf(s, it.Width, it.Height)
	}
	root.AddChild(leaves...)
	return root, leaves
}

func rects(nodes []*layout.Node) []layout.Rect {
	out := make([]layout.Rect, len(nodes))
	for i, n := range nodes {
		out[i] = n.Layout.Rect
	}
	return out
}

func orUnconstrained(size int) int {
	if size <= 0 {
		return layout.Unconstrained
	}
	return size
}
