package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/panelcheck/internal/harness"
	"github.com/grindlemire/panelcheck/internal/scenario"
)

func sampleOutcomes() []harness.Outcome {
	return []harness.Outcome{
		{Scenario: "EqualStars", Kind: scenario.KindGrid, Engine: "flex", Status: harness.StatusPass, Duration: 3 * time.Millisecond, Passes: 1},
		{Scenario: "Resize", Kind: scenario.KindGrid, Engine: "flex", Status: harness.StatusFail,
			Failures: []string{"resize: column 1: width jumped by 90.00 for a resize of 40.00"}},
		{Scenario: "DockAllSides", Kind: scenario.KindDock, Engine: "gio", Status: harness.StatusSkip,
			Err: fmt.Errorf("dock panel: %w", harness.ErrUnsupported)},
		{Scenario: "Broken", Kind: scenario.KindGrid, Engine: "gio", Status: harness.StatusError,
			Err: fmt.Errorf("grid Broken: %w", scenario.ErrContradictory)},
	}
}

func TestPrinter_Outcomes(t *testing.T) {
	type tc struct {
		verbose  bool
		contains []string
		missing  []string
	}

	tests := map[string]tc{
		"failures only": {
			contains: []string{
				"panelcheck run run-1",
				"FAIL   flex  grid Resize",
				"        resize: column 1: width jumped",
				"ERROR  gio   grid Broken",
				"contradictory",
			},
			missing: []string{"EqualStars", "DockAllSides"},
		},
		"verbose": {
			verbose: true,
			contains: []string{
				"PASS   flex  grid EqualStars",
				"3ms, 1 passes",
				"SKIP   gio   dock DockAllSides",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewPrinter(&buf, tt.verbose).Outcomes("run-1", sampleOutcomes()))

			out := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, out, s)
			}
			assert.True(t, strings.HasSuffix(out, "gio: 0 passed, 0 failed, 1 skipped, 1 errors\n"), out)
		})
	}
}

func TestSummary(t *testing.T) {
	assert.Equal(t, []string{
		"flex: 1 passed, 1 failed, 0 skipped, 0 errors",
		"gio: 0 passed, 0 failed, 1 skipped, 1 errors",
	}, Summary(sampleOutcomes()))
	assert.Empty(t, Summary(nil))
}

func TestMetrics(t *testing.T) {
	tally := harness.NewTally()
	for _, o := range sampleOutcomes() {
		tally.Record(o)
	}

	var buf bytes.Buffer
	require.NoError(t, Metrics(&buf, tally.Gatherer()))

	out := buf.String()
	assert.Contains(t, out, "# TYPE panelcheck_scenarios_total counter")
	assert.Contains(t, out, `panelcheck_scenarios_total{engine="flex",kind="grid",status="fail"} 1`)
	assert.Contains(t, out, `panelcheck_check_failures_total{engine="flex",kind="grid"} 1`)
	assert.Contains(t, out, "panelcheck_scenario_duration_seconds_bucket")
}
