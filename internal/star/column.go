// Package star checks that sizes produced by a layout engine are consistent
// with proportional (star) space distribution.
//
// The verifier is pure: it reads declared column constraints and the widths
// an engine assigned, and reports every violated invariant. It never mutates
// its inputs and is safe for concurrent use.
package star

import "math"

// ColumnSpec is the declared sizing of one column (or row).
type ColumnSpec struct {
	// Weight is the star weight. 0 collapses the column, +Inf takes all
	// remaining space. Ignored unless IsStar.
	Weight float64
	// MinSize and MaxSize bound the column. Use math.Inf(1) for no maximum.
	MinSize float64
	MaxSize float64
	// IsAbsolute marks a fixed pixel column of width Size.
	IsAbsolute bool
	IsStar     bool
	Size       float64
}

// Star returns an unbounded star column with the given weight.
func Star(weight float64) ColumnSpec {
	return ColumnSpec{Weight: weight, MaxSize: math.Inf(1), IsStar: true}
}

// Absolute returns a fixed pixel column.
func Absolute(size float64) ColumnSpec {
	return ColumnSpec{Size: size, MaxSize: math.Inf(1), IsAbsolute: true}
}

// Auto returns a column sized to its content.
func Auto() ColumnSpec {
	return ColumnSpec{MaxSize: math.Inf(1)}
}

// WithMin returns a copy of c with the given minimum.
func (c ColumnSpec) WithMin(v float64) ColumnSpec {
	c.MinSize = v
	return c
}

// WithMax returns a copy of c with the given maximum.
func (c ColumnSpec) WithMax(v float64) ColumnSpec {
	c.MaxSize = v
	return c
}

// Bounds are the effective clamping bounds of a column.
type Bounds struct {
	Min, Max float64
}

// EffectiveBounds merges declared constraints with the content's natural
// width and, for absolute columns, the declared size. The maximum is never
// below the minimum.
func (c ColumnSpec) EffectiveBounds(contentWidth float64) Bounds {
	lo := math.Max(c.MinSize, contentWidth)
	if c.IsAbsolute {
		lo = math.Max(lo, c.Size)
	}
	return Bounds{Min: lo, Max: math.Max(lo, c.MaxSize)}
}
