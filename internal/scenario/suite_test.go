package scenario

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/panelcheck/internal/panel"
	"github.com/grindlemire/panelcheck/internal/star"
)

func TestDefault(t *testing.T) {
	suite, err := Default()
	require.NoError(t, err)

	names := suite.Names()
	for _, want := range []string{
		"MinProportion", "Overflow", "UnconstrainedSize", "EqualStars", "ZeroWeight",
		"InfiniteWeight", "MixedTracks", "MaxClamp", "Resize", "SpanSweep",
		"ZeroWeightMaxClamp", "ContentAboveMax",
	} {
		assert.Contains(t, names[KindGrid], want)
	}
	assert.Contains(t, names[KindDock], "Dock/left/margin5/content")
	assert.Contains(t, names[KindWrap], "WrapNatural")
	// Four sides, two margins, two modes, plus the hand-written fixtures.
	assert.Len(t, names[KindDock], 16+3)

	g, err := suite.Grid("MinProportion")
	require.NoError(t, err)
	specs := g.ColumnSpecs()
	require.Len(t, specs, 4)
	assert.Equal(t, star.Star(3).WithMin(150), specs[2])

	o, err := suite.Grid("Overflow")
	require.NoError(t, err)
	assert.Equal(t, 0.8*math.MaxFloat64, o.ColumnSpecs()[3].Weight)

	kind, err := suite.KindOf("WrapStretch")
	require.NoError(t, err)
	assert.Equal(t, KindWrap, kind)
}

func TestSuite_UnknownScenario(t *testing.T) {
	suite, err := Default()
	require.NoError(t, err)

	_, err = suite.Grid("Nope")
	assert.ErrorIs(t, err, ErrUnknownScenario)
	_, err = suite.Dock("MinProportion")
	assert.ErrorIs(t, err, ErrUnknownScenario)
	_, err = suite.Wrap("")
	assert.ErrorIs(t, err, ErrUnknownScenario)
	_, err = suite.KindOf("Nope")
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestLoad_Errors(t *testing.T) {
	type tc struct {
		input string
		err   error
	}

	tests := map[string]tc{
		"min above max": {
			input: `
grids:
  - name: Bad
    width: 100
    columns:
      - length: "*"
        min: 80
        max: 20
`,
			err: ErrContradictory,
		},
		"span out of range": {
			input: `
grids:
  - name: Bad
    width: 100
    columns:
      - length: "*"
    spans:
      - {first: 0, count: 2, min: 10}
`,
			err: ErrOutOfRange,
		},
		"bad length": {
			input: `
grids:
  - name: Bad
    width: 100
    columns:
      - length: three*
`,
			err: ErrInvalidLength,
		},
		"bad scale": {
			input: `
grids:
  - name: Bad
    width: 100
    scale: huge
    columns:
      - length: "*"
`,
			err: ErrInvalidScale,
		},
		"bad side": {
			input: `
docks:
  - name: Bad
    width: 100
    height: 100
    children:
      - side: middle
`,
			err: ErrInvalidSide,
		},
		"margin larger than container": {
			input: `
docks:
  - name: Bad
    width: 10
    height: 100
    children:
      - side: top
        margin: 6
`,
			err: ErrOutOfRange,
		},
		"duplicate name": {
			input: `
grids:
  - name: Same
    width: 100
    columns: [{length: "*"}]
wraps:
  - name: Same
    width: 100
    items: []
`,
			err: ErrContradictory,
		},
		"resize of unconstrained grid": {
			input: `
grids:
  - name: Bad
    width: 0
    delta: 40
    columns: [{length: "*"}]
`,
			err: ErrOutOfRange,
		},
		"empty sweep": {
			input: `
grids:
  - name: Bad
    width: 100
    columns: [{length: "*"}]
    sweep: {from: 10, to: 0, step: 5}
`,
			err: ErrOutOfRange,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("grids:\n  - name: X\n    colums: []\n"))
	assert.Error(t, err)
}

func TestLoad_Empty(t *testing.T) {
	suite, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, suite.Grids)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
grids:
  - name: EqualStars
    width: 120
    columns: [{length: "*"}, {length: "*"}]
  - name: Extra
    width: 90
    columns: [{length: auto, content: 30}, {length: 2*}]
`), 0o644))

	extra, err := LoadFile(path)
	require.NoError(t, err)

	suite, err := Default()
	require.NoError(t, err)
	before := len(suite.Grids)
	suite.Merge(extra)

	assert.Len(t, suite.Grids, before+1)
	g, err := suite.Grid("EqualStars")
	require.NoError(t, err)
	assert.Equal(t, 120, g.Width)
	assert.Len(t, g.Columns, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGridScaled(t *testing.T) {
	limit := 40.0
	g := Grid{
		Name:  "S",
		Width: 320,
		Delta: 8,
		Scale: 1.25,
		Columns: []Track{
			{Length: Length{Kind: LengthPixel, Value: 80}},
			{Length: Length{Kind: LengthStar, Value: 2}, Min: 10, Max: &limit, Content: 12},
		},
		Spans: []Span{{First: 0, Count: 2, Min: 100}},
		Sweep: &Sweep{From: 0, To: 100, Step: 10},
	}

	s := g.Scaled()
	assert.Equal(t, 400, s.Width)
	assert.Equal(t, 10, s.Delta)
	assert.Equal(t, 1.0, s.Scale.Factor())
	assert.Equal(t, 100.0, s.Columns[0].Length.Value)
	assert.Equal(t, 2.0, s.Columns[1].Length.Value)
	assert.Equal(t, 13.0, s.Columns[1].Min)
	assert.Equal(t, 50.0, *s.Columns[1].Max)
	assert.Equal(t, 15.0, s.Columns[1].Content)
	assert.Equal(t, 125.0, s.Spans[0].Min)
	assert.Equal(t, Sweep{From: 0, To: 125, Step: 13}, *s.Sweep)

	assert.Equal(t, 40.0, limit, "original max was modified")
	assert.Equal(t, 80.0, g.Columns[0].Length.Value, "original columns were modified")
}

func TestSweepWidths(t *testing.T) {
	assert.Equal(t, []int{0, 25, 50}, Sweep{From: 0, To: 50, Step: 25}.Widths())
	assert.Equal(t, []int{10}, Sweep{From: 10, To: 20, Step: 25}.Widths())
	assert.Nil(t, Sweep{From: 0, To: 50}.Widths())
}

func TestDockMatrix(t *testing.T) {
	docks := DockMatrix(200, 100, []int{0, 3})
	require.Len(t, docks, 16)

	for _, d := range docks {
		require.NoError(t, d.Validate(), d.Name)
		children, err := d.DockChildren()
		require.NoError(t, err)
		require.Len(t, children, 2)
		assert.True(t, d.LastChildFill)
	}

	children, err := docks[0].DockChildren()
	require.NoError(t, err)
	assert.Equal(t, "Dock/left/margin0/explicit", docks[0].Name)
	assert.Equal(t, panel.DockChild{Side: panel.Left, Size: 40, Content: panel.Size{Width: 50, Height: 25}}, children[0])
}

func TestSuite_ApplyScale(t *testing.T) {
	suite, err := Default()
	require.NoError(t, err)
	suite.ApplyScale(2)

	g, err := suite.Grid("EqualStars")
	require.NoError(t, err)
	assert.Equal(t, 2.0, g.Scale.Factor())

	// A grid's own scale wins.
	g, err = suite.Grid("ScaledTracks")
	require.NoError(t, err)
	assert.Equal(t, 1.25, g.Scale.Factor())
}
