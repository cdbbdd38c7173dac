package star

import (
	"errors"
	"fmt"
)

// Result is the outcome of one verification. Failures accumulate; a check
// failing never stops the remaining checks.
type Result struct {
	OK       bool
	Failures []string
}

// Pass returns a passing Result with no failures.
func Pass() Result {
	return Result{OK: true}
}

// Failf records a failure.
func (r *Result) Failf(format string, args ...any) {
	r.OK = false
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

// Merge folds other into r, prefixing its failures.
func (r *Result) Merge(prefix string, other Result) {
	if !other.OK {
		r.OK = false
	}
	for _, f := range other.Failures {
		if prefix != "" {
			f = prefix + ": " + f
		}
		r.Failures = append(r.Failures, f)
	}
}

// Err returns the failures joined into one error, or nil on success.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = errors.New(f)
	}
	return errors.Join(errs...)
}
