package harness

import (
	"fmt"
	"math"

	"github.com/grindlemire/panelcheck/internal/layout"
	"github.com/grindlemire/panelcheck/internal/scenario"
	"github.com/grindlemire/panelcheck/internal/star"
)

// contentHeight is the natural height given to column content. Rows are not
// under test, so any positive value works.
const contentHeight = 10

// GridView is a grid panel expressed as engine nodes: one row whose items
// are the columns. Star columns grow by weight from zero, absolute columns
// are fixed, auto columns take their content width. Every column is floored
// at its content width.
type GridView struct {
	root    *layout.Node
	columns []*layout.Node
	specs   []star.ColumnSpec
}

// NewGridView builds a grid with the given columns.
func NewGridView(columns []star.ColumnSpec) *GridView {
	style := layout.DefaultStyle()
	style.Direction = layout.Row

	g := &GridView{root: layout.NewNode(style)}
	for _, spec := range columns {
		col := layout.NewNode(columnStyle(spec))
		g.columns = append(g.columns, col)
		g.specs = append(g.specs, spec)
		g.root.AddChild(col)
	}
	return g
}

func columnStyle(spec star.ColumnSpec) layout.Style {
	s := layout.DefaultStyle()
	s.Direction = layout.Column
	s.ContentMin = true
	s.FlexShrink = 0
	s.MinWidth = layout.Fixed(int(math.Ceil(spec.MinSize)))
	if !math.IsInf(spec.MaxSize, 1) {
		s.MaxWidth = layout.Fixed(int(math.Floor(spec.MaxSize)))
	}

	switch {
	case spec.IsStar:
		s.Width = layout.Fixed(0)
		s.FlexGrow = spec.Weight
	case spec.IsAbsolute:
		s.Width = layout.Fixed(int(math.Round(spec.Size)))
	default:
		s.Width = layout.Auto()
	}
	return s
}

// Root returns the grid node.
func (g *GridView) Root() *layout.Node {
	return g.root
}

// Columns returns the current column definitions.
func (g *GridView) Columns() []star.ColumnSpec {
	return append([]star.ColumnSpec(nil), g.specs...)
}

// SetColumn places child in column col, replacing any previous content.
func (g *GridView) SetColumn(child *layout.Node, col int) error {
	if child == nil {
		return ErrNilElement
	}
	if col < 0 || col >= len(g.columns) {
		return fmt.Errorf("column %d of %d: %w", col, len(g.columns), scenario.ErrOutOfRange)
	}
	column := g.columns[col]
	for _, c := range append([]*layout.Node(nil), column.Children...) {
		column.RemoveChild(c)
	}
	if p := child.Parent(); p != nil {
		p.RemoveChild(child)
	}
	column.AddChild(child)
	return nil
}

// SetContent places a leaf of the given natural width in column col.
// A width of 0 leaves the column empty.
func (g *GridView) SetContent(col int, width float64) error {
	if col < 0 || col >= len(g.columns) {
		return fmt.Errorf("column %d of %d: %w", col, len(g.columns), scenario.ErrOutOfRange)
	}
	if width <= 0 {
		column := g.columns[col]
		for _, c := range append([]*layout.Node(nil), column.Children...) {
			column.RemoveChild(c)
		}
		return nil
	}
	leaf := layout.NewLeaf(layout.DefaultStyle(), int(math.Ceil(width)), contentHeight)
	return g.SetColumn(leaf, col)
}

// SetWeight changes the weight of star column col.
func (g *GridView) SetWeight(col int, weight float64) error {
	if col < 0 || col >= len(g.columns) {
		return fmt.Errorf("column %d of %d: %w", col, len(g.columns), scenario.ErrOutOfRange)
	}
	if weight < 0 || math.IsNaN(weight) {
		return fmt.Errorf("weight %v: %w", weight, scenario.ErrOutOfRange)
	}
	if !g.specs[col].IsStar {
		return fmt.Errorf("column %d is not a star column: %w", col, ErrUnsupported)
	}
	g.specs[col].Weight = weight
	g.columns[col].SetStyle(columnStyle(g.specs[col]))
	return nil
}

// Arrangement reads the column geometry of the last layout pass.
func (g *GridView) Arrangement() Arrangement {
	a := Arrangement{
		Width:   g.root.Layout.Rect.Width,
		Widths:  make([]int, len(g.columns)),
		Offsets: make([]int, len(g.columns)),
	}
	origin := g.root.Layout.ContentRect.X
	for i, c := range g.columns {
		a.Widths[i] = c.Layout.Rect.Width
		a.Offsets[i] = c.Layout.Rect.X - origin
	}
	return a
}
