package star

import (
	"fmt"
	"math"
)

// Verifier checks column widths against star distribution invariants.
// The zero value uses DefaultSlack.
type Verifier struct {
	Slack float64
}

// Option configures a single verification.
type Option func(*options)

type options struct {
	content []float64
}

// WithContentWidths supplies the natural width of each column's content.
// A zero entry means the column is empty.
func WithContentWidths(widths []float64) Option {
	return func(o *options) {
		o.content = widths
	}
}

func (v Verifier) slack() float64 {
	if v.Slack > 0 {
		return v.Slack
	}
	return DefaultSlack
}

func (v Verifier) bounds(columns []ColumnSpec, opts []Option) []Bounds {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.content != nil && len(o.content) != len(columns) {
		panic(fmt.Sprintf("star: %d content widths for %d columns", len(o.content), len(columns)))
	}

	out := make([]Bounds, len(columns))
	for i, c := range columns {
		var content float64
		if o.content != nil {
			content = o.content[i]
		}
		out[i] = c.EffectiveBounds(content)
	}
	return out
}

// pinned reports whether a width sits on its minimum or maximum.
func (v Verifier) pinned(b Bounds, actual float64) bool {
	s := v.slack()
	return actual <= b.Min+s || actual >= b.Max-s
}

// VerifyColumnWidths checks the widths an engine assigned to columns laid out
// in a container of containerWidth. A containerWidth of 0 means the container
// was unconstrained, and the total-width check is skipped.
//
// It panics if columns and actual differ in length.
func (v Verifier) VerifyColumnWidths(columns []ColumnSpec, actual []float64, containerWidth float64, opts ...Option) Result {
	if len(columns) != len(actual) {
		panic(fmt.Sprintf("star: %d widths for %d columns", len(actual), len(columns)))
	}

	s := v.slack()
	bounds := v.bounds(columns, opts)
	res := Pass()

	var totalActual, totalMin, totalMax float64
	hasStar := false
	prev := -1

	for i, c := range columns {
		b := bounds[i]
		w := actual[i]

		totalActual += w
		totalMin += b.Min
		if c.IsStar {
			hasStar = true
		}
		if c.IsStar && c.Weight > 0 {
			totalMax += b.Max
		} else {
			// Only weighted star columns grow past their minimum.
			totalMax += b.Min
		}

		if w < b.Min-s {
			res.Failf("column %d: width %.2f below effective minimum %.2f", i, w, b.Min)
		}
		if w > b.Max+s {
			res.Failf("column %d: width %.2f above effective maximum %.2f", i, w, b.Max)
		}

		if !c.IsStar || v.pinned(b, w) {
			continue
		}
		if c.Weight == 0 {
			if !AreClose(w, 0, s) {
				res.Failf("column %d: zero-weight star column has width %.2f, want ~0", i, w)
			}
			continue
		}
		if prev >= 0 {
			pc := columns[prev]
			if !AreProportional(actual[prev], pc.Weight, w, c.Weight, s) {
				res.Failf("columns %d and %d: widths %.2f and %.2f not proportional to weights %g and %g",
					prev, i, actual[prev], w, pc.Weight, c.Weight)
			}
		}
		prev = i
	}
	v.checkPinnedShares(&res, columns, bounds, actual)

	if containerWidth == 0 {
		return res
	}
	feasible := totalMin <= containerWidth && containerWidth <= totalMax
	if hasStar && feasible && !AreClose(totalActual, containerWidth, s) {
		res.Failf("total width %.2f, want %.2f", totalActual, containerWidth)
	}
	return res
}

// checkPinnedShares fails star columns held at a bound that their
// proportional share does not reach. Shares are measured against the first
// unpinned column with a finite, positive weight; without one there is
// nothing to measure against.
func (v Verifier) checkPinnedShares(res *Result, columns []ColumnSpec, bounds []Bounds, actual []float64) {
	s := v.slack()
	ref := -1
	for i, c := range columns {
		if weighted(c) && !v.pinned(bounds[i], actual[i]) {
			ref = i
			break
		}
	}
	if ref < 0 {
		return
	}

	for i, c := range columns {
		if !weighted(c) {
			continue
		}
		b, w := bounds[i], actual[i]
		atMin, atMax := w <= b.Min+s, w >= b.Max-s
		if atMin == atMax {
			// Unpinned, or min and max leave no room to move.
			continue
		}
		ratio := weightRatio(c.Weight, columns[ref].Weight)
		switch {
		case atMin && (actual[ref]-s)*ratio > b.Min+s:
			res.Failf("column %d: held at minimum %.2f below its proportional share %.2f", i, b.Min, actual[ref]*ratio)
		case atMax && (actual[ref]+s)*ratio < b.Max-s:
			res.Failf("column %d: held at maximum %.2f above its proportional share %.2f", i, b.Max, actual[ref]*ratio)
		}
	}
}

func weighted(c ColumnSpec) bool {
	return c.IsStar && c.Weight > 0 && !math.IsInf(c.Weight, 1)
}

// weightRatio returns k/ref, dividing both by the larger first so weights
// near MaxFloat64 cannot overflow.
func weightRatio(k, ref float64) float64 {
	scale := math.Max(k, ref)
	return (k / scale) / (ref / scale)
}

// VerifyResize checks that resizing the container by delta moved every star
// column that was unpinned both before and after by no more than 1.5*|delta|.
func (v Verifier) VerifyResize(columns []ColumnSpec, before, after []float64, delta float64, opts ...Option) Result {
	if len(before) != len(columns) || len(after) != len(columns) {
		panic(fmt.Sprintf("star: resize widths %d/%d for %d columns", len(before), len(after), len(columns)))
	}

	s := v.slack()
	bounds := v.bounds(columns, opts)
	res := Pass()
	limit := 1.5*math.Abs(delta) + s

	for i, c := range columns {
		if !c.IsStar || v.pinned(bounds[i], before[i]) || v.pinned(bounds[i], after[i]) {
			continue
		}
		if change := math.Abs(after[i] - before[i]); change > limit {
			res.Failf("column %d: width jumped by %.2f for a resize of %.2f", i, change, delta)
		}
	}
	return res
}

// VerifySpan checks that the columns first..first+count-1 together are at
// least minWidth wide, the combined minimum imposed by content spanning them.
func (v Verifier) VerifySpan(actual []float64, first, count int, minWidth float64) Result {
	res := Pass()
	if first < 0 || count <= 0 || first+count > len(actual) {
		res.Failf("span %d+%d: outside %d columns", first, count, len(actual))
		return res
	}

	sum := 0.0
	for _, w := range actual[first : first+count] {
		sum += w
	}
	if sum < minWidth-v.slack() {
		res.Failf("span %d+%d: width %.2f below spanned minimum %.2f", first, count, sum, minWidth)
	}
	return res
}
