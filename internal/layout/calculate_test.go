package layout

import "testing"

func TestCalculate_SingleNode_FixedSize(t *testing.T) {
	type tc struct {
		style          Style
		availableW     int
		availableH     int
		expectedWidth  int
		expectedHeight int
	}

	tests := map[string]tc{
		"fixed width and height": {
			style: func() Style {
				s := DefaultStyle()
				s.Width = Fixed(50)
				s.Height = Fixed(30)
				return s
			}(),
			availableW:     100,
			availableH:     100,
			expectedWidth:  50,
			expectedHeight: 30,
		},
		"auto fills available space": {
			style:          DefaultStyle(),
			availableW:     100,
			availableH:     80,
			expectedWidth:  100,
			expectedHeight: 80,
		},
		"percent of available": {
			style: func() Style {
				s := DefaultStyle()
				s.Width = Percent(50)
				s.Height = Percent(25)
				return s
			}(),
			availableW:     200,
			availableH:     100,
			expectedWidth:  100,
			expectedHeight: 25,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			node := NewNode(tt.style)
			Calculate(node, tt.availableW, tt.availableH)

			if node.Layout.Rect.Width != tt.expectedWidth {
				t.Errorf("Layout.Rect.Width = %d, want %d", node.Layout.Rect.Width, tt.expectedWidth)
			}
			if node.Layout.Rect.Height != tt.expectedHeight {
				t.Errorf("Layout.Rect.Height = %d, want %d", node.Layout.Rect.Height, tt.expectedHeight)
			}
			if node.IsDirty() {
				t.Error("node should not be dirty after Calculate")
			}
		})
	}
}

func TestCalculate_SingleNode_WithPadding(t *testing.T) {
	style := DefaultStyle()
	style.Width = Fixed(100)
	style.Height = Fixed(80)
	style.Padding = EdgeAll(10)

	node := NewNode(style)
	Calculate(node, 200, 200)

	if node.Layout.ContentRect != NewRect(10, 10, 80, 60) {
		t.Errorf("ContentRect = %+v, want {10 10 80 60}", node.Layout.ContentRect)
	}
}

func TestCalculate_TwoChildren_Column(t *testing.T) {
	parent := NewNode(DefaultStyle())
	parent.Style.Width = Fixed(100)
	parent.Style.Height = Fixed(100)
	parent.Style.Direction = Column

	child1 := NewNode(DefaultStyle())
	child1.Style.Height = Fixed(30)
	child2 := NewNode(DefaultStyle())
	child2.Style.Height = Fixed(40)

	parent.AddChild(child1, child2)
	Calculate(parent, 200, 200)

	if child1.Layout.Rect != NewRect(0, 0, 100, 30) {
		t.Errorf("child1 = %+v, want {0 0 100 30}", child1.Layout.Rect)
	}
	if child2.Layout.Rect != NewRect(0, 30, 100, 40) {
		t.Errorf("child2 = %+v, want {0 30 100 40}", child2.Layout.Rect)
	}
}

func TestCalculate_NilNode(t *testing.T) {
	// Should not panic
	Calculate(nil, 100, 100)
}

func TestCalculate_DirtyTracking(t *testing.T) {
	child := fixedWidth(50)
	parent := row(100, 100, child)

	Calculate(parent, 200, 200)
	if parent.IsDirty() || child.IsDirty() {
		t.Fatal("nodes should not be dirty after Calculate")
	}

	child.SetStyle(child.Style)
	if !child.IsDirty() {
		t.Error("child should be dirty after SetStyle")
	}
	if !parent.IsDirty() {
		t.Error("parent should be dirty (propagated from child)")
	}
}

func TestCalculate_CleanSiblingMoves(t *testing.T) {
	a := fixedWidth(30)
	b := fixedWidth(40)
	parent := row(100, 10, a, b)
	Calculate(parent, 100, 10)

	if b.Layout.Rect.X != 30 {
		t.Fatalf("b.X = %d, want 30", b.Layout.Rect.X)
	}

	s := a.Style
	s.Width = Fixed(50)
	a.SetStyle(s)
	Calculate(parent, 100, 10)

	if b.IsDirty() {
		t.Error("b should be clean after Calculate")
	}
	if b.Layout.Rect.X != 50 {
		t.Errorf("b.X = %d, want 50 after sibling grew", b.Layout.Rect.X)
	}
}

func TestCalculate_Unconstrained(t *testing.T) {
	content := func(w int) *Node {
		col := star(1)
		col.Style.Direction = Column
		col.Style.ContentMin = true
		if w > 0 {
			col.AddChild(NewLeaf(DefaultStyle(), w, 10))
		}
		return col
	}

	a, empty, c := content(40), content(0), content(60)
	root := NewNode(DefaultStyle())
	root.Style.Height = Fixed(20)
	root.AddChild(a, empty, c)

	Calculate(root, Unconstrained, 20)

	if root.Layout.Rect.Width != 180 {
		t.Errorf("root width = %d, want 180", root.Layout.Rect.Width)
	}
	if got := widths(a, empty, c); !equalInts(got, []int{60, 60, 60}) {
		t.Errorf("widths = %v, want [60 60 60]", got)
	}
}

func TestNode_IntrinsicSize(t *testing.T) {
	type tc struct {
		direction Direction
		gap       int
		expectedW int
		expectedH int
	}

	tests := map[string]tc{
		"row sums widths":     {direction: Row, expectedW: 70, expectedH: 20},
		"row adds gaps":       {direction: Row, gap: 5, expectedW: 75, expectedH: 20},
		"column sums heights": {direction: Column, expectedW: 40, expectedH: 30},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := DefaultStyle()
			s.Direction = tt.direction
			s.Gap = tt.gap
			n := NewNode(s)
			n.AddChild(NewLeaf(DefaultStyle(), 30, 10), NewLeaf(DefaultStyle(), 40, 20))

			w, h := n.IntrinsicSize()
			if w != tt.expectedW || h != tt.expectedH {
				t.Errorf("IntrinsicSize() = (%d, %d), want (%d, %d)", w, h, tt.expectedW, tt.expectedH)
			}
		})
	}
}

func TestNode_RemoveChild(t *testing.T) {
	a, b, c := fixedWidth(10), fixedWidth(20), fixedWidth(30)
	parent := row(100, 10, a, b, c)
	Calculate(parent, 100, 10)

	if !parent.RemoveChild(b) {
		t.Fatal("RemoveChild returned false for an existing child")
	}
	if parent.RemoveChild(b) {
		t.Error("RemoveChild returned true for a removed child")
	}
	if !parent.IsDirty() {
		t.Error("parent should be dirty after RemoveChild")
	}

	Calculate(parent, 100, 10)
	if c.Layout.Rect.X != 10 {
		t.Errorf("c.X = %d, want 10 (order preserved)", c.Layout.Rect.X)
	}
}
