package layout

// Node is the concrete Layoutable used to build panel trees.
type Node struct {
	// Configuration (user-set)
	Style    Style
	Children []*Node

	// Computed (set by layout engine)
	Layout Layout

	// Natural content size of a leaf, border box excluding padding.
	contentWidth  int
	contentHeight int

	dirty  bool  // Needs recalculation
	parent *Node // Back-pointer for dirty propagation
}

// NewNode creates a new node with the given style.
func NewNode(style Style) *Node {
	return &Node{
		Style: style,
		dirty: true, // New nodes need layout
	}
}

// NewLeaf creates a childless node whose content has the given natural size.
func NewLeaf(style Style, width, height int) *Node {
	n := NewNode(style)
	n.contentWidth = width
	n.contentHeight = height
	return n
}

// AddChild appends children and marks this node dirty.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		child.parent = n
		n.Children = append(n.Children, child)
	}
	n.MarkDirty()
}

// RemoveChild removes a child by pointer and marks dirty.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.parent = nil
			n.MarkDirty()
			return true
		}
	}
	return false
}

// Parent returns the node this node was added to, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// SetStyle updates the style and marks the node dirty.
func (n *Node) SetStyle(style Style) {
	n.Style = style
	n.MarkDirty()
}

// SetContent updates the natural content size and marks the node dirty.
func (n *Node) SetContent(width, height int) {
	n.contentWidth = width
	n.contentHeight = height
	n.MarkDirty()
}

// MarkDirty marks this node and all ancestors as needing recalculation.
func (n *Node) MarkDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

// LayoutStyle implements Layoutable.
func (n *Node) LayoutStyle() Style { return n.Style }

// LayoutChildren implements Layoutable.
func (n *Node) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(n.Children))
	for i, child := range n.Children {
		result[i] = child
	}
	return result
}

// SetLayout implements Layoutable.
func (n *Node) SetLayout(l Layout) { n.Layout = l }

// GetLayout implements Layoutable.
func (n *Node) GetLayout() Layout { return n.Layout }

// IsDirty implements Layoutable.
func (n *Node) IsDirty() bool { return n.dirty }

// SetDirty implements Layoutable.
func (n *Node) SetDirty(dirty bool) {
	if dirty {
		n.MarkDirty()
		return
	}
	n.dirty = false
}

// IntrinsicSize implements Layoutable. Rows sum their children's outer
// widths and take the tallest child; columns do the opposite.
func (n *Node) IntrinsicSize() (int, int) {
	pad := n.Style.Padding
	if len(n.Children) == 0 {
		return n.contentWidth + pad.Horizontal(), n.contentHeight + pad.Vertical()
	}

	var main, cross int
	isRow := n.Style.Direction == Row
	for i, child := range n.Children {
		w, h := outerIntrinsic(child)
		cm, cc := w, h
		if !isRow {
			cm, cc = h, w
		}
		if n.Style.Wrap {
			// A wrapping container can always fall back to one item per line.
			main = max(main, cm)
			cross += cc
			continue
		}
		if i > 0 {
			main += n.Style.Gap
		}
		main += cm
		cross = max(cross, cc)
	}
	if !isRow {
		main, cross = cross, main
	}
	return main + pad.Horizontal(), cross + pad.Vertical()
}

// outerIntrinsic returns the child's preferred size plus margin. Fixed
// dimensions win over content.
func outerIntrinsic(child Layoutable) (int, int) {
	style := child.LayoutStyle()
	w, h := child.IntrinsicSize()
	if style.Width.Unit == UnitFixed {
		w = style.Width.Resolve(0, w)
	}
	if style.Height.Unit == UnitFixed {
		h = style.Height.Resolve(0, h)
	}
	return w + style.Margin.Horizontal(), h + style.Margin.Vertical()
}
