package harness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grindlemire/panelcheck/internal/scenario"
	"github.com/grindlemire/panelcheck/internal/star"
)

func TestImputeSpans(t *testing.T) {
	type tc struct {
		columns  []star.ColumnSpec
		content  []float64
		spans    []scenario.Span
		expected []float64
	}

	tests := map[string]tc{
		"stars share by weight": {
			columns:  []star.ColumnSpec{star.Star(1), star.Star(3), star.Auto()},
			spans:    []scenario.Span{{First: 0, Count: 2, Min: 200}},
			expected: []float64{50, 150, 0},
		},
		"satisfied span changes nothing": {
			columns:  []star.ColumnSpec{star.Absolute(80), star.Star(1)},
			spans:    []scenario.Span{{First: 0, Count: 2, Min: 50}},
			expected: []float64{0, 0},
		},
		"existing floors count toward the span": {
			columns:  []star.ColumnSpec{star.Star(1).WithMin(30), star.Star(1)},
			content:  []float64{0, 50},
			spans:    []scenario.Span{{First: 0, Count: 2, Min: 100}},
			expected: []float64{40, 60},
		},
		"auto columns when no weighted star": {
			columns:  []star.ColumnSpec{star.Star(0), star.Auto(), star.Auto()},
			spans:    []scenario.Span{{First: 0, Count: 3, Min: 60}},
			expected: []float64{0, 30, 30},
		},
		"everyone when only absolute columns": {
			columns:  []star.ColumnSpec{star.Absolute(10), star.Absolute(10)},
			spans:    []scenario.Span{{First: 0, Count: 2, Min: 40}},
			expected: []float64{20, 20},
		},
		"infinite weights take the whole shortfall": {
			columns:  []star.ColumnSpec{star.Star(math.Inf(1)), star.Star(1)},
			spans:    []scenario.Span{{First: 0, Count: 2, Min: 90}},
			expected: []float64{90, 0},
		},
		"overlapping spans": {
			columns: []star.ColumnSpec{star.Star(1), star.Star(1), star.Star(1)},
			spans: []scenario.Span{
				{First: 0, Count: 2, Min: 100},
				{First: 1, Count: 2, Min: 150},
			},
			expected: []float64{50, 100, 50},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ImputeSpans(tt.columns, tt.content, tt.spans)
			mins := make([]float64, len(got))
			for i, c := range got {
				mins[i] = c.MinSize
			}
			assert.InDeltaSlice(t, tt.expected, mins, 1e-9)
			assert.Equal(t, len(tt.columns), len(got))
		})
	}
}

func TestImputeSpans_DoesNotMutate(t *testing.T) {
	columns := []star.ColumnSpec{star.Star(1), star.Star(1)}
	ImputeSpans(columns, nil, []scenario.Span{{First: 0, Count: 2, Min: 100}})
	assert.Equal(t, 0.0, columns[0].MinSize)
}
