// Package layout implements the integer flexbox engine that panel scenarios
// are arranged with.
//
// It supports row/column directions, line wrapping, stretch and start
// alignment, padding, margin, gap, min/max constraints, percentage and fixed
// dimensions, intrinsic content minimums and unconstrained (size-to-content)
// rows. Flexible lengths are resolved by freezing items that hit a min or max
// and redistributing the remaining space among the others.
//
// The main entry point is [Calculate], which takes a [Layoutable] tree and
// computes absolute [Rect] positions for each node.
package layout
