package harness

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/panelcheck/internal/layout"
	"github.com/grindlemire/panelcheck/internal/star"
)

func TestGioEngine_Arrange(t *testing.T) {
	type tc struct {
		columns  []star.ColumnSpec
		content  []float64
		width    int
		expected []int
	}

	tests := map[string]tc{
		"equal stars": {
			columns:  []star.ColumnSpec{star.Star(1), star.Star(1), star.Star(1), star.Star(1)},
			width:    300,
			expected: []int{75, 75, 75, 75},
		},
		"rigid columns first": {
			columns:  []star.ColumnSpec{star.Absolute(100), star.Auto(), star.Star(1), star.Star(3)},
			content:  []float64{0, 50, 0, 0},
			width:    400,
			expected: []int{100, 50, 63, 187},
		},
		"weights beyond float32": {
			columns: []star.ColumnSpec{
				star.Star(math.MaxFloat64 * 0.2),
				star.Star(math.MaxFloat64 * 0.4),
				star.Star(math.MaxFloat64 * 0.6),
				star.Star(math.MaxFloat64 * 0.8),
			},
			width:    600,
			expected: []int{60, 120, 180, 240},
		},
		"zero weight": {
			columns:  []star.ColumnSpec{star.Star(0), star.Star(1)},
			width:    200,
			expected: []int{0, 200},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			surface, err := GioEngine{}.Open(GridSetup{Columns: tt.columns, Content: tt.content, Height: 20})
			require.NoError(t, err)

			arr, err := surface.Arrange(context.Background(), tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, arr.Widths)
			assert.Equal(t, tt.width, arr.Width)
		})
	}
}

func TestGioEngine_Unsupported(t *testing.T) {
	type tc struct {
		columns []star.ColumnSpec
		content []float64
	}

	tests := map[string]tc{
		"star minimum":      {columns: []star.ColumnSpec{star.Star(1).WithMin(10)}},
		"star maximum":      {columns: []star.ColumnSpec{star.Star(1).WithMax(10)}},
		"star content":      {columns: []star.ColumnSpec{star.Star(1)}, content: []float64{5}},
		"infinite weight":   {columns: []star.ColumnSpec{star.Star(math.Inf(1))}},
		"oversized content": {columns: []star.ColumnSpec{star.Absolute(10)}, content: []float64{20}},
		"auto minimum":      {columns: []star.ColumnSpec{star.Auto().WithMin(30)}, content: []float64{20}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := GioEngine{}.Open(GridSetup{Columns: tt.columns, Content: tt.content})
			assert.ErrorIs(t, err, ErrUnsupported)
		})
	}
}

func TestGioEngine_Unconstrained(t *testing.T) {
	surface, err := GioEngine{}.Open(GridSetup{Columns: []star.ColumnSpec{star.Star(1)}})
	require.NoError(t, err)

	_, err = surface.Arrange(context.Background(), layout.Unconstrained)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestFlexWeights(t *testing.T) {
	assert.Equal(t, []float32{0, 0}, flexWeights([]float64{0, 0}))
	assert.InDeltaSlice(t, []float32{0.25, 0.75}, flexWeights([]float64{1, 3}), 1e-6)
	assert.InDeltaSlice(t, []float32{0.5, 0.5}, flexWeights([]float64{math.MaxFloat64, math.MaxFloat64}), 1e-6)
}
