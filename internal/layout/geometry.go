package layout

// Rect is an integer rectangle. X and Y locate the top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right is the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom is the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Inset shrinks r by e on each side. Sizes are not clamped, so an inset
// wider than r yields a negative width.
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  r.Width - e.Horizontal(),
		Height: r.Height - e.Vertical(),
	}
}

// Edges holds one value per side, used for margins and padding.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll returns n on every side.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}
