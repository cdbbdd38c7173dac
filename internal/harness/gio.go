package harness

import (
	"context"
	"fmt"
	"image"
	"math"

	gl "gioui.org/layout"
	"gioui.org/op"

	"github.com/grindlemire/panelcheck/internal/layout"
	"github.com/grindlemire/panelcheck/internal/panel"
)

// GioEngine runs grids on gioui.org/layout.Flex: absolute and auto columns
// are rigid children, star columns are flexed children. Flex knows nothing
// of minimums, maximums or content floors on flexed children, so setups
// using them are unsupported.
type GioEngine struct{}

func (GioEngine) Name() string { return "gio" }

// Open implements Engine.
func (GioEngine) Open(setup GridSetup) (Surface, error) {
	content := func(i int) float64 {
		if setup.Content == nil {
			return 0
		}
		return setup.Content[i]
	}

	raw := make([]float64, len(setup.Columns))
	for i, c := range setup.Columns {
		switch {
		case c.IsStar:
			if c.MinSize > 0 || !math.IsInf(c.MaxSize, 1) || content(i) > 0 {
				return nil, fmt.Errorf("column %d: bounded star column: %w", i, ErrUnsupported)
			}
			if math.IsInf(c.Weight, 1) {
				return nil, fmt.Errorf("column %d: infinite weight: %w", i, ErrUnsupported)
			}
			raw[i] = c.Weight
		case c.IsAbsolute:
			if c.MinSize > c.Size || content(i) > c.Size {
				return nil, fmt.Errorf("column %d: absolute column below its minimum: %w", i, ErrUnsupported)
			}
		default:
			if c.MinSize > content(i) {
				return nil, fmt.Errorf("column %d: auto column below its minimum: %w", i, ErrUnsupported)
			}
		}
	}
	return &gioSurface{setup: setup, content: content, weights: flexWeights(raw)}, nil
}

// flexWeights scales weights to fractions of one in float64 so that weights
// beyond float32 range survive the conversion.
func flexWeights(raw []float64) []float32 {
	largest := 0.0
	for _, w := range raw {
		largest = math.Max(largest, w)
	}
	out := make([]float32, len(raw))
	if largest == 0 {
		return out
	}

	sum := 0.0
	scaled := make([]float64, len(raw))
	for i, w := range raw {
		scaled[i] = w / largest
		sum += scaled[i]
	}
	for i := range scaled {
		out[i] = float32(scaled[i] / sum)
	}
	return out
}

type gioSurface struct {
	setup   GridSetup
	content func(int) float64
	weights []float32
	closed  bool
}

func (s *gioSurface) Close() { s.closed = true }

func (s *gioSurface) Arrange(ctx context.Context, width int) (Arrangement, error) {
	if s.closed {
		return Arrangement{}, ErrClosed
	}
	if width == layout.Unconstrained {
		return Arrangement{}, fmt.Errorf("unconstrained width: %w", ErrUnsupported)
	}
	if err := ctx.Err(); err != nil {
		return Arrangement{}, err
	}

	height := max(s.setup.Height, 0)
	gtx := gl.Context{
		Ops:         new(op.Ops),
		Constraints: gl.Exact(image.Pt(width, height)),
	}

	widths := make([]int, len(s.setup.Columns))
	children := make([]gl.FlexChild, len(s.setup.Columns))
	for i, c := range s.setup.Columns {
		if c.IsStar {
			children[i] = gl.Flexed(s.weights[i], func(gtx gl.Context) gl.Dimensions {
				widths[i] = gtx.Constraints.Min.X
				return gl.Dimensions{Size: gtx.Constraints.Min}
			})
			continue
		}

		px := int(math.Ceil(s.content(i)))
		if c.IsAbsolute {
			px = int(math.Round(c.Size))
		}
		children[i] = gl.Rigid(func(gtx gl.Context) gl.Dimensions {
			size := gtx.Constraints.Constrain(image.Pt(px, height))
			widths[i] = size.X
			return gl.Dimensions{Size: size}
		})
	}

	dims := gl.Flex{Axis: gl.Horizontal, WeightSum: 1}.Layout(gtx, children...)
	return Arrangement{
		Width:   dims.Size.X,
		Widths:  widths,
		Offsets: panel.ColumnOffsets(widths),
	}, nil
}
