package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/panelcheck/internal/config"
	"github.com/grindlemire/panelcheck/internal/harness"
	"github.com/grindlemire/panelcheck/internal/report"
	"github.com/grindlemire/panelcheck/internal/scenario"
	"github.com/grindlemire/panelcheck/internal/star"
)

// errScenariosFailed makes the process exit non-zero after the report has
// been printed.
var errScenariosFailed = errors.New("scenarios failed")

func addRunFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSlice("engine", config.Engines, "engines to run")
	f.Float64("slack", star.DefaultSlack, "tolerance for width comparisons in pixels")
	f.String("scale", "1", `scale for grids without their own, e.g. "1.25" or "125%"`)
	f.String("scenarios", "", "extra scenario file merged over the built-in table")
	f.Duration("timeout", harness.DefaultTimeout, "wall-clock bound per scenario")
	f.Bool("metrics", false, "print Prometheus metrics after the report")
	f.BoolP("verbose", "v", false, "list passing and skipped scenarios too")
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scenario...]",
		Short: "Run scenarios on every selected engine",
		Long: `Run the named scenarios, or every scenario when none are named, on each
selected engine. The exit status is non-zero if any scenario fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := a.loadSuite()
			if err != nil {
				return err
			}
			return a.runAndReport(cmd.Context(), cmd.OutOrStdout(), suite, args)
		},
	}
	addRunFlags(cmd)
	return cmd
}

func (a *app) sweepCmd() *cobra.Command {
	var sweep scenario.Sweep
	cmd := &cobra.Command{
		Use:   "sweep <grid>",
		Short: "Sweep a grid through a range of container widths",
		Long: `Arrange a grid at every width from --from to --to and check that each
pass terminates and keeps the grid's span minimums.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := a.loadSuite()
			if err != nil {
				return err
			}
			g, err := suite.Grid(args[0])
			if err != nil {
				return err
			}
			s := sweep
			g.Sweep = &s
			g.Delta = 0
			one := &scenario.Suite{Grids: []scenario.Grid{g}}
			return a.runAndReport(cmd.Context(), cmd.OutOrStdout(), one, nil)
		},
	}
	addRunFlags(cmd)
	f := cmd.Flags()
	f.IntVar(&sweep.From, "from", 0, "first width")
	f.IntVar(&sweep.To, "to", 400, "last width")
	f.IntVar(&sweep.Step, "step", 10, "width increment")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scenarios by kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			suite, err := a.loadSuite()
			if err != nil {
				return err
			}
			names := suite.Names()
			w := cmd.OutOrStdout()
			for _, kind := range []scenario.Kind{scenario.KindGrid, scenario.KindDock, scenario.KindWrap} {
				fmt.Fprintf(w, "%s (%d)\n", kind, len(names[kind]))
				for _, n := range names[kind] {
					fmt.Fprintf(w, "  %s\n", n)
				}
			}
			return nil
		},
	}
}

// loadSuite returns the built-in table with the configured scenario file
// merged over it and the configured scale applied.
func (a *app) loadSuite() (*scenario.Suite, error) {
	suite, err := scenario.Default()
	if err != nil {
		return nil, fmt.Errorf("built-in scenarios: %w", err)
	}
	if path := a.cfg.Run.Scenarios; path != "" {
		extra, err := scenario.LoadFile(path)
		if err != nil {
			return nil, err
		}
		suite.Merge(extra)
		if err := suite.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	f, err := a.cfg.Run.ScaleFactor()
	if err != nil {
		return nil, err
	}
	suite.ApplyScale(f)
	return suite, nil
}

func (a *app) engine(name string) harness.Engine {
	if name == "gio" {
		return harness.GioEngine{}
	}
	return harness.NewFlexEngine(a.log)
}

// runSuite runs the suite on every configured engine at once. Outcomes come
// back grouped by engine in configuration order.
func (a *app) runSuite(ctx context.Context, suite *scenario.Suite, names []string) (*harness.Tally, []harness.Outcome, error) {
	tally := harness.NewTally()
	engines := a.cfg.Run.Engines
	results := make([][]harness.Outcome, len(engines))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range engines {
		h := harness.New(a.engine(name),
			harness.WithLogger(a.log),
			harness.WithTally(tally),
			harness.WithSlack(a.cfg.Run.Slack),
			harness.WithTimeout(a.cfg.Run.Timeout),
		)
		g.Go(func() error {
			out, err := h.RunSuite(ctx, suite, names)
			results[i] = out
			if err != nil {
				return fmt.Errorf("engine %s: %w", name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return tally, nil, err
	}

	var all []harness.Outcome
	for _, r := range results {
		all = append(all, r...)
	}
	return tally, all, nil
}

func (a *app) runAndReport(ctx context.Context, w io.Writer, suite *scenario.Suite, names []string) error {
	tally, outcomes, err := a.runSuite(ctx, suite, names)
	if err != nil {
		return err
	}

	if err := report.NewPrinter(w, a.cfg.Run.Verbose).Outcomes(tally.RunID(), outcomes); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if a.cfg.Run.Metrics {
		if err := report.Metrics(w, tally.Gatherer()); err != nil {
			return err
		}
	}

	counts := tally.Counts()
	a.log.Info("run finished",
		zap.String("run_id", tally.RunID()),
		zap.Int("passed", counts[harness.StatusPass]),
		zap.Int("failed", counts[harness.StatusFail]+counts[harness.StatusError]),
		zap.Int("skipped", counts[harness.StatusSkip]))

	if tally.Failed() {
		return fmt.Errorf("%w: %d of %d", errScenariosFailed,
			counts[harness.StatusFail]+counts[harness.StatusError], len(outcomes))
	}
	return nil
}
