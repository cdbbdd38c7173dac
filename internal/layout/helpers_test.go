package layout

// row creates a fixed-size row container.
func row(width, height int, children ...*Node) *Node {
	s := DefaultStyle()
	s.Width = Fixed(width)
	s.Height = Fixed(height)
	s.Direction = Row
	n := NewNode(s)
	n.AddChild(children...)
	return n
}

// star creates a flexible item that starts from zero width.
func star(weight float64) *Node {
	s := DefaultStyle()
	s.Width = Fixed(0)
	s.FlexGrow = weight
	s.FlexShrink = 0
	return NewNode(s)
}

// fixedWidth creates a non-growing item of the given width.
func fixedWidth(width int) *Node {
	s := DefaultStyle()
	s.Width = Fixed(width)
	return NewNode(s)
}

func widths(nodes ...*Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.Layout.Rect.Width
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
