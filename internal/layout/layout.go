package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Rect is the border box: the space allocated by the parent after
	// applying this node's margin.
	Rect Rect

	// ContentRect is Rect minus padding, the area where children are placed.
	ContentRect Rect
}
