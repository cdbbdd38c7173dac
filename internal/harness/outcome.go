package harness

import (
	"time"

	"github.com/grindlemire/panelcheck/internal/scenario"
)

// Status is the verdict of one scenario run.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	// StatusSkip means the engine cannot express the scenario.
	StatusSkip Status = "skip"
	// StatusError means the scenario was rejected before any layout ran.
	StatusError Status = "error"
)

// Outcome is the result of running one scenario on one engine.
type Outcome struct {
	RunID    string
	Scenario string
	Kind     scenario.Kind
	Engine   string
	Status   Status
	Failures []string
	Err      error
	Duration time.Duration
	// Passes counts engine arrangements performed.
	Passes int
}

// Failed reports whether the outcome should fail the run.
func (o Outcome) Failed() bool {
	return o.Status == StatusFail || o.Status == StatusError
}
