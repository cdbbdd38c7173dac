package harness

import (
	"math"

	"github.com/grindlemire/panelcheck/internal/scenario"
	"github.com/grindlemire/panelcheck/internal/star"
)

// ImputeSpans raises column minimums so that every span's columns can hold
// the span's combined minimum. The shortfall of a span goes to its star
// columns in weight proportion; a span without weighted star columns
// spreads it evenly over its auto columns, or over all of its columns.
//
// Minimums only grow, so a span satisfied early stays satisfied and one pass
// in order is enough.
func ImputeSpans(columns []star.ColumnSpec, content []float64, spans []scenario.Span) []star.ColumnSpec {
	out := append([]star.ColumnSpec(nil), columns...)
	floor := make([]float64, len(out))
	for i, c := range out {
		var cw float64
		if content != nil {
			cw = content[i]
		}
		floor[i] = c.EffectiveBounds(cw).Min
	}

	for _, sp := range spans {
		first, last := sp.First, sp.First+sp.Count
		have := 0.0
		for _, f := range floor[first:last] {
			have += f
		}
		need := sp.Min - have
		if need <= 0 {
			continue
		}

		shares := spanShares(out[first:last])
		for j, share := range shares {
			if share == 0 {
				continue
			}
			i := first + j
			floor[i] += need * share
			out[i].MinSize = floor[i]
		}
	}
	return out
}

// spanShares decides how a span's shortfall is split among its columns.
func spanShares(cols []star.ColumnSpec) []float64 {
	shares := make([]float64, len(cols))

	weights := make([]float64, len(cols))
	hasInf, largest := false, 0.0
	for i, c := range cols {
		if !c.IsStar || c.Weight <= 0 {
			continue
		}
		weights[i] = c.Weight
		if math.IsInf(c.Weight, 1) {
			hasInf = true
		} else {
			largest = math.Max(largest, c.Weight)
		}
	}

	sum := 0.0
	for i, w := range weights {
		switch {
		case w == 0:
		case hasInf && math.IsInf(w, 1):
			shares[i] = 1
		case !hasInf:
			shares[i] = w / largest
		}
		sum += shares[i]
	}
	if sum == 0 {
		// No weighted star column: prefer auto columns, then everyone.
		for i, c := range cols {
			if !c.IsStar && !c.IsAbsolute {
				shares[i] = 1
				sum++
			}
		}
	}
	if sum == 0 {
		for i := range shares {
			shares[i] = 1
		}
		sum = float64(len(shares))
	}
	for i := range shares {
		shares[i] /= sum
	}
	return shares
}
