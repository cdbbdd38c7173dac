// Package harness runs panel scenarios on layout engines. It builds each
// panel as a tree of engine nodes inside a Window, pumps a Dispatcher until
// layout settles, and checks the geometry with the star verifier and the
// panel formulas.
package harness

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/grindlemire/panelcheck/internal/layout"
	"github.com/grindlemire/panelcheck/internal/panel"
	"github.com/grindlemire/panelcheck/internal/scenario"
	"github.com/grindlemire/panelcheck/internal/star"
)

// DefaultTimeout bounds a single scenario.
const DefaultTimeout = 5 * time.Second

// Harness runs scenarios on one engine.
type Harness struct {
	engine   Engine
	verifier star.Verifier
	tally    *Tally
	log      *zap.Logger
	timeout  time.Duration
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(h *Harness) {
		if l != nil {
			h.log = l
		}
	}
}

// WithTally records outcomes into t instead of a private tally.
func WithTally(t *Tally) Option {
	return func(h *Harness) {
		if t != nil {
			h.tally = t
		}
	}
}

// WithSlack sets the verifier tolerance.
func WithSlack(slack float64) Option {
	return func(h *Harness) {
		h.verifier.Slack = slack
	}
}

// WithTimeout bounds every scenario. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(h *Harness) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// New creates a harness for engine.
func New(engine Engine, opts ...Option) *Harness {
	h := &Harness{
		engine:  engine,
		log:     zap.NewNop(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.tally == nil {
		h.tally = NewTally()
	}
	h.log = h.log.Named("harness").With(zap.String("engine", engine.Name()))
	return h
}

// Engine returns the engine under test.
func (h *Harness) Engine() Engine {
	return h.engine
}

// Tally returns the accumulator outcomes are recorded into.
func (h *Harness) Tally() *Tally {
	return h.tally
}

// runState is owned by the goroutine running a scenario until it reports.
type runState struct {
	res    star.Result
	passes int
}

// run executes fn on its own goroutine under the scenario timeout. A
// scenario that outlives the timeout is abandoned and reported as
// ErrTimeout; a panic becomes a failure.
func (h *Harness) run(ctx context.Context, name string, kind scenario.Kind, fn func(context.Context, *runState) error) Outcome {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	type report struct {
		state runState
		err   error
	}
	done := make(chan report, 1)
	go func() {
		st := runState{res: star.Pass()}
		var err error
		defer func() {
			if r := recover(); r != nil {
				st.res.Failf("panic: %v", r)
			}
			done <- report{state: st, err: err}
		}()
		err = fn(ctx, &st)
	}()

	var rep report
	select {
	case rep = <-done:
	case <-ctx.Done():
		rep.err = ctx.Err()
	}
	if errors.Is(rep.err, context.DeadlineExceeded) {
		rep.err = fmt.Errorf("%w after %s", ErrTimeout, h.timeout)
	}

	o := Outcome{
		RunID:    h.tally.RunID(),
		Scenario: name,
		Kind:     kind,
		Engine:   h.engine.Name(),
		Failures: rep.state.res.Failures,
		Err:      rep.err,
		Duration: time.Since(start),
		Passes:   rep.state.passes,
	}
	o.Status = classify(rep.state.res, rep.err)
	h.tally.Record(o)
	h.logOutcome(o)
	return o
}

func classify(res star.Result, err error) Status {
	switch {
	case errors.Is(err, ErrUnsupported):
		return StatusSkip
	case isInputError(err):
		return StatusError
	case err != nil || !res.OK:
		return StatusFail
	default:
		return StatusPass
	}
}

func isInputError(err error) bool {
	for _, target := range []error{
		scenario.ErrUnknownScenario,
		scenario.ErrInvalidScale,
		scenario.ErrInvalidLength,
		scenario.ErrInvalidSide,
		scenario.ErrContradictory,
		scenario.ErrOutOfRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (h *Harness) logOutcome(o Outcome) {
	fields := []zap.Field{
		zap.String("scenario", o.Scenario),
		zap.String("kind", string(o.Kind)),
		zap.String("status", string(o.Status)),
		zap.Duration("duration", o.Duration),
		zap.Int("passes", o.Passes),
	}
	switch o.Status {
	case StatusPass:
		h.log.Debug("scenario passed", fields...)
	case StatusSkip:
		h.log.Debug("scenario skipped", append(fields, zap.Error(o.Err))...)
	default:
		h.log.Warn("scenario failed", append(fields, zap.Error(o.Err), zap.Strings("failures", o.Failures))...)
	}
}

// RunGrid arranges a grid at its width and verifies it; then, when the
// scenario asks for it, resizes by Delta and sweeps through widths.
func (h *Harness) RunGrid(ctx context.Context, g scenario.Grid) Outcome {
	return h.run(ctx, g.Name, scenario.KindGrid, func(ctx context.Context, st *runState) error {
		if err := g.Validate(); err != nil {
			return err
		}
		if len(g.Engines) > 0 && !slices.Contains(g.Engines, h.engine.Name()) {
			return fmt.Errorf("scenario limited to %v: %w", g.Engines, ErrUnsupported)
		}

		g = g.Scaled()
		content := g.ContentWidths()
		columns := ImputeSpans(g.ColumnSpecs(), content, g.Spans)
		surface, err := h.engine.Open(GridSetup{Columns: columns, Content: content, Height: g.Height})
		if err != nil {
			return err
		}
		defer surface.Close()

		arrange := func(width int) (Arrangement, error) {
			st.passes++
			return surface.Arrange(ctx, width)
		}

		width := g.Width
		if width == 0 {
			width = layout.Unconstrained
		}
		before, err := arrange(width)
		if err != nil {
			return err
		}
		h.checkGrid(&st.res, "initial", g, columns, content, before, g.Width)

		if g.Delta != 0 {
			after, err := arrange(g.Width + g.Delta)
			if err != nil {
				return err
			}
			h.checkGrid(&st.res, "resized", g, columns, content, after, g.Width+g.Delta)
			st.res.Merge("resize", h.verifier.VerifyResize(columns, floats(before.Widths), floats(after.Widths),
				float64(g.Delta), star.WithContentWidths(content)))
		}

		if g.Sweep != nil {
			for _, w := range g.Sweep.Widths() {
				arr, err := arrange(w)
				if err != nil {
					return fmt.Errorf("sweep width %d: %w", w, err)
				}
				widths := floats(arr.Widths)
				for _, sp := range g.Spans {
					st.res.Merge(fmt.Sprintf("sweep %d", w), h.verifier.VerifySpan(widths, sp.First, sp.Count, sp.Min))
				}
			}
		}
		return nil
	})
}

func (h *Harness) checkGrid(res *star.Result, pass string, g scenario.Grid, columns []star.ColumnSpec, content []float64, arr Arrangement, container int) {
	if len(arr.Widths) != len(columns) {
		res.Failf("%s: engine returned %d widths for %d columns", pass, len(arr.Widths), len(columns))
		return
	}

	widths := floats(arr.Widths)
	res.Merge(pass, h.verifier.VerifyColumnWidths(columns, widths, float64(container), star.WithContentWidths(content)))

	if want := panel.ColumnOffsets(arr.Widths); !slices.Equal(want, arr.Offsets) {
		res.Failf("%s: column offsets %v, want %v", pass, arr.Offsets, want)
	}
	for _, sp := range g.Spans {
		res.Merge(pass, h.verifier.VerifySpan(widths, sp.First, sp.Count, sp.Min))
	}
}

// RunDock compares a docking panel against the dock formula.
func (h *Harness) RunDock(ctx context.Context, d scenario.Dock) Outcome {
	return h.run(ctx, d.Name, scenario.KindDock, func(ctx context.Context, st *runState) error {
		if err := d.Validate(); err != nil {
			return err
		}
		pe, ok := h.engine.(PanelEngine)
		if !ok {
			return fmt.Errorf("dock panel: %w", ErrUnsupported)
		}
		children, err := d.DockChildren()
		if err != nil {
			return err
		}

		want := panel.Dock(layout.NewRect(0, 0, d.Width, d.Height), children, d.LastChildFill)
		st.passes++
		got, err := pe.ArrangeDock(ctx, d)
		if err != nil {
			return err
		}
		for _, diff := range panel.CompareRects(want, got) {
			st.res.Failf("%s", diff)
		}
		return nil
	})
}

// RunWrap compares a wrapping panel against the wrap formula.
func (h *Harness) RunWrap(ctx context.Context, w scenario.Wrap) Outcome {
	return h.run(ctx, w.Name, scenario.KindWrap, func(ctx context.Context, st *runState) error {
		if err := w.Validate(); err != nil {
			return err
		}
		pe, ok := h.engine.(PanelEngine)
		if !ok {
			return fmt.Errorf("wrap panel: %w", ErrUnsupported)
		}

		want := panel.Wrap(w.Width, w.Items, w.Options())
		st.passes++
		got, err := pe.ArrangeWrap(ctx, w)
		if err != nil {
			return err
		}
		for _, diff := range panel.CompareRects(want, got) {
			st.res.Failf("%s", diff)
		}
		return nil
	})
}

// RunSuite runs the named scenarios, or every scenario when names is empty.
// Unknown names are rejected before anything runs.
func (h *Harness) RunSuite(ctx context.Context, suite *scenario.Suite, names []string) ([]Outcome, error) {
	if len(names) == 0 {
		for _, g := range suite.Grids {
			names = append(names, g.Name)
		}
		for _, d := range suite.Docks {
			names = append(names, d.Name)
		}
		for _, w := range suite.Wraps {
			names = append(names, w.Name)
		}
	}

	kinds := make([]scenario.Kind, len(names))
	for i, name := range names {
		kind, err := suite.KindOf(name)
		if err != nil {
			return nil, err
		}
		kinds[i] = kind
	}

	out := make([]Outcome, 0, len(names))
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		var o Outcome
		switch kinds[i] {
		case scenario.KindGrid:
			g, _ := suite.Grid(name)
			o = h.RunGrid(ctx, g)
		case scenario.KindDock:
			d, _ := suite.Dock(name)
			o = h.RunDock(ctx, d)
		case scenario.KindWrap:
			w, _ := suite.Wrap(name)
			o = h.RunWrap(ctx, w)
		}
		out = append(out, o)
	}
	return out, nil
}

func floats(ints []int) []float64 {
	out := make([]float64, len(ints))
	for i, v := range ints {
		out[i] = float64(v)
	}
	return out
}
