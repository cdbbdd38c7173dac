package scenario

import (
	"fmt"
	"math"

	"github.com/grindlemire/panelcheck/internal/star"
)

// Track is one grid column.
type Track struct {
	Length Length   `yaml:"length"`
	Min    float64  `yaml:"min,omitempty"`
	Max    *float64 `yaml:"max,omitempty"`
	// Content is the natural width of the column's child. 0 leaves the
	// column empty.
	Content float64 `yaml:"content,omitempty"`
}

// Span is a child that occupies several adjacent columns.
type Span struct {
	First int     `yaml:"first"`
	Count int     `yaml:"count"`
	Min   float64 `yaml:"min"`
}

// Sweep drives the container through a range of widths.
type Sweep struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
	Step int `yaml:"step"`
}

// Widths returns every width the sweep visits.
func (s Sweep) Widths() []int {
	if s.Step <= 0 || s.From > s.To {
		return nil
	}
	out := make([]int, 0, (s.To-s.From)/s.Step+1)
	for w := s.From; w <= s.To; w += s.Step {
		out = append(out, w)
	}
	return out
}

// Grid is a grid panel fixture.
type Grid struct {
	Name string `yaml:"name"`
	// Width is the container width; 0 leaves it unconstrained.
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Columns []Track `yaml:"columns"`
	Spans   []Span  `yaml:"spans,omitempty"`
	// Delta resizes the container after the first pass.
	Delta   int      `yaml:"delta,omitempty"`
	Scale   Scale    `yaml:"scale,omitempty"`
	Sweep   *Sweep   `yaml:"sweep,omitempty"`
	Engines []string `yaml:"engines,omitempty"`
}

// ColumnSpecs converts the tracks into verifier column definitions.
func (g Grid) ColumnSpecs() []star.ColumnSpec {
	out := make([]star.ColumnSpec, len(g.Columns))
	for i, t := range g.Columns {
		var c star.ColumnSpec
		switch t.Length.Kind {
		case LengthPixel:
			c = star.Absolute(t.Length.Value)
		case LengthStar:
			c = star.Star(t.Length.Value)
		default:
			c = star.Auto()
		}
		c = c.WithMin(t.Min)
		if t.Max != nil {
			c = c.WithMax(*t.Max)
		}
		out[i] = c
	}
	return out
}

// ContentWidths returns the natural width of every column's child.
func (g Grid) ContentWidths() []float64 {
	out := make([]float64, len(g.Columns))
	for i, t := range g.Columns {
		out[i] = t.Content
	}
	return out
}

// Scaled returns a copy with every pixel quantity multiplied by the
// scenario's scale factor and rounded. Star weights are not pixels and are
// left alone. The result has a scale of 1.
func (g Grid) Scaled() Grid {
	s := g.Scale
	out := g
	out.Scale = 0
	out.Width = int(s.px(float64(g.Width)))
	out.Height = int(s.px(float64(g.Height)))
	out.Delta = int(s.px(float64(g.Delta)))

	out.Columns = make([]Track, len(g.Columns))
	for i, t := range g.Columns {
		if t.Length.Kind == LengthPixel {
			t.Length.Value = s.px(t.Length.Value)
		}
		t.Min = s.px(t.Min)
		if t.Max != nil {
			m := s.px(*t.Max)
			t.Max = &m
		}
		t.Content = s.px(t.Content)
		out.Columns[i] = t
	}

	out.Spans = make([]Span, len(g.Spans))
	for i, sp := range g.Spans {
		sp.Min = s.px(sp.Min)
		out.Spans[i] = sp
	}
	if g.Sweep != nil {
		sw := Sweep{
			From: int(s.px(float64(g.Sweep.From))),
			To:   int(s.px(float64(g.Sweep.To))),
			Step: max(1, int(s.px(float64(g.Sweep.Step)))),
		}
		out.Sweep = &sw
	}
	return out
}

// Validate rejects fixtures whose constraints cannot describe a layout.
func (g Grid) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("grid: %w: empty name", ErrOutOfRange)
	}
	if g.Width < 0 || g.Height < 0 {
		return fmt.Errorf("grid %s: %w: negative container size", g.Name, ErrOutOfRange)
	}
	if g.Width == 0 && g.Delta != 0 {
		return fmt.Errorf("grid %s: %w: resize by %d of an unconstrained container", g.Name, ErrOutOfRange, g.Delta)
	}
	if g.Width > 0 && g.Width+g.Delta < 0 {
		return fmt.Errorf("grid %s: %w: resize by %d from %d", g.Name, ErrOutOfRange, g.Delta, g.Width)
	}
	if len(g.Columns) == 0 {
		return fmt.Errorf("grid %s: %w: no columns", g.Name, ErrOutOfRange)
	}
	for i, t := range g.Columns {
		if t.Min < 0 || t.Content < 0 || math.IsInf(t.Min, 0) {
			return fmt.Errorf("grid %s column %d: %w: negative size", g.Name, i, ErrOutOfRange)
		}
		if t.Max != nil && *t.Max < t.Min {
			return fmt.Errorf("grid %s column %d: %w: min %g above max %g", g.Name, i, ErrContradictory, t.Min, *t.Max)
		}
		if t.Length.Kind == LengthPixel && t.Max != nil && t.Length.Value > *t.Max {
			return fmt.Errorf("grid %s column %d: %w: size %g above max %g", g.Name, i, ErrContradictory, t.Length.Value, *t.Max)
		}
	}
	for i, sp := range g.Spans {
		if sp.First < 0 || sp.Count < 1 || sp.First+sp.Count > len(g.Columns) {
			return fmt.Errorf("grid %s span %d: %w: columns %d+%d of %d", g.Name, i, ErrOutOfRange, sp.First, sp.Count, len(g.Columns))
		}
		if sp.Min < 0 {
			return fmt.Errorf("grid %s span %d: %w: negative minimum", g.Name, i, ErrOutOfRange)
		}
	}
	if g.Sweep != nil && len(g.Sweep.Widths()) == 0 {
		return fmt.Errorf("grid %s: %w: empty sweep %d..%d step %d", g.Name, ErrOutOfRange, g.Sweep.From, g.Sweep.To, g.Sweep.Step)
	}
	return nil
}
