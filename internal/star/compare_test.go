package star

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAreProportional(t *testing.T) {
	type tc struct {
		w1, k1, w2, k2 float64
		expected       bool
	}

	inf := math.Inf(1)
	tests := map[string]tc{
		"equal weights equal sizes":       {w1: 50, k1: 1, w2: 50, k2: 1, expected: true},
		"ratio within slack":              {w1: 29, k1: 1, w2: 57, k2: 2, expected: true},
		"ratio outside slack":             {w1: 40, k1: 1, w2: 57, k2: 2, expected: false},
		"huge weights do not overflow":    {w1: 60, k1: math.MaxFloat64 * 0.2, w2: 240, k2: math.MaxFloat64 * 0.8, expected: true},
		"huge weights still disagree":     {w1: 60, k1: math.MaxFloat64 * 0.2, w2: 60, k2: math.MaxFloat64 * 0.8, expected: false},
		"two infinite weights are 1:1":    {w1: 100, k1: inf, w2: 100, k2: inf, expected: true},
		"two infinite weights unequal":    {w1: 150, k1: inf, w2: 50, k2: inf, expected: false},
		"infinite against collapsed":      {w1: 200, k1: inf, w2: 0, k2: 1, expected: true},
		"infinite against populated":      {w1: 150, k1: inf, w2: 50, k2: 1, expected: false},
		"finite against infinite":         {w1: 0.5, k1: 3, w2: 199, k2: inf, expected: true},
		"zero weight collapsed":           {w1: 0, k1: 0, w2: 120, k2: 1, expected: true},
		"zero weight populated":           {w1: 10, k1: 0, w2: 120, k2: 1, expected: false},
		"both zero weights collapsed":     {w1: 0, k1: 0, w2: 0.4, k2: 0, expected: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := AreProportional(tt.w1, tt.k1, tt.w2, tt.k2, DefaultSlack)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, AreProportional(tt.w2, tt.k2, tt.w1, tt.k1, DefaultSlack), "not symmetric")
		})
	}
}

func TestAreClose(t *testing.T) {
	assert.True(t, AreClose(10, 11, 1))
	assert.True(t, AreClose(11, 10, 1))
	assert.False(t, AreClose(10, 11.5, 1))
	assert.True(t, AreClose(3, 3, 0))
}

func TestEffectiveBounds(t *testing.T) {
	type tc struct {
		column   ColumnSpec
		content  float64
		expected Bounds
	}

	inf := math.Inf(1)
	tests := map[string]tc{
		"unbounded star":             {column: Star(1), expected: Bounds{Min: 0, Max: inf}},
		"content raises min":         {column: Star(1).WithMin(20), content: 45, expected: Bounds{Min: 45, Max: inf}},
		"declared min beats content": {column: Star(1).WithMin(60), content: 45, expected: Bounds{Min: 60, Max: inf}},
		"absolute size is a floor":   {column: Absolute(80).WithMin(10), expected: Bounds{Min: 80, Max: inf}},
		"max never below min":        {column: Star(1).WithMin(100).WithMax(40), expected: Bounds{Min: 100, Max: 100}},
		"max kept when above min":    {column: Auto().WithMax(90), content: 30, expected: Bounds{Min: 30, Max: 90}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.column.EffectiveBounds(tt.content))
		})
	}
}
