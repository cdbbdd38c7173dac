package layout

// Layoutable is anything Calculate can arrange. Node is the implementation
// panels are built from.
type Layoutable interface {
	LayoutStyle() Style
	LayoutChildren() []Layoutable

	// SetLayout stores the computed geometry.
	SetLayout(Layout)
	GetLayout() Layout

	IsDirty() bool
	// SetDirty(true) must also dirty the ancestors.
	SetDirty(dirty bool)

	// IntrinsicSize is the natural border-box size: a leaf's content, or
	// what a container's children need.
	IntrinsicSize() (width, height int)
}
