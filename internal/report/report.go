// Package report renders harness outcomes for a terminal.
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/grindlemire/panelcheck/internal/harness"
)

var (
	colorPass  = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#22C55E"}
	colorFail  = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"}
	colorSkip  = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"}
	colorMuted = lipgloss.Color("#94A3B8")
)

// Printer writes outcomes to w, styled for whatever w turns out to be.
type Printer struct {
	w       io.Writer
	verbose bool

	title  lipgloss.Style
	muted  lipgloss.Style
	detail lipgloss.Style
	badges map[harness.Status]lipgloss.Style
}

// NewPrinter creates a printer. Verbose printers list passing and skipped
// scenarios as well as failures.
func NewPrinter(w io.Writer, verbose bool) *Printer {
	r := lipgloss.NewRenderer(w)
	badge := func(c lipgloss.TerminalColor) lipgloss.Style {
		return r.NewStyle().Bold(true).Foreground(c).Width(6)
	}
	return &Printer{
		w:       w,
		verbose: verbose,
		title:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(colorMuted),
		detail:  r.NewStyle().PaddingLeft(8),
		badges: map[harness.Status]lipgloss.Style{
			harness.StatusPass:  badge(colorPass),
			harness.StatusFail:  badge(colorFail),
			harness.StatusError: badge(colorFail),
			harness.StatusSkip:  badge(colorSkip),
		},
	}
}

// Outcomes prints one line per reported scenario, its failures indented
// beneath it, then a summary line per engine.
func (p *Printer) Outcomes(runID string, outcomes []harness.Outcome) error {
	var b strings.Builder
	b.WriteString(p.title.Render("panelcheck run " + runID))
	b.WriteString("\n")

	nameWidth := 0
	for _, o := range outcomes {
		nameWidth = max(nameWidth, len(o.Scenario))
	}

	for _, o := range outcomes {
		if !p.verbose && !o.Failed() {
			continue
		}
		line := fmt.Sprintf("%s %-5s %-4s %-*s", p.badges[o.Status].Render(strings.ToUpper(string(o.Status))),
			o.Engine, o.Kind, nameWidth, o.Scenario)
		b.WriteString(strings.TrimRight(line, " "))
		switch {
		case o.Err != nil:
			b.WriteString("  " + p.muted.Render(o.Err.Error()))
		case o.Status == harness.StatusPass:
			b.WriteString("  " + p.muted.Render(fmt.Sprintf("%s, %d passes", o.Duration.Round(time.Microsecond), o.Passes)))
		}
		b.WriteString("\n")
		for _, f := range o.Failures {
			b.WriteString(p.detail.Render(f))
			b.WriteString("\n")
		}
	}

	for _, line := range Summary(outcomes) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}

// Summary returns one line per engine counting outcomes by status, engines
// in name order.
func Summary(outcomes []harness.Outcome) []string {
	counts := make(map[string]map[harness.Status]int)
	for _, o := range outcomes {
		if counts[o.Engine] == nil {
			counts[o.Engine] = make(map[harness.Status]int)
		}
		counts[o.Engine][o.Status]++
	}

	engines := make([]string, 0, len(counts))
	for e := range counts {
		engines = append(engines, e)
	}
	slices.Sort(engines)

	out := make([]string, 0, len(engines))
	for _, e := range engines {
		c := counts[e]
		out = append(out, fmt.Sprintf("%s: %d passed, %d failed, %d skipped, %d errors",
			e, c[harness.StatusPass], c[harness.StatusFail], c[harness.StatusSkip], c[harness.StatusError]))
	}
	return out
}

// Metrics writes every metric family of g in the Prometheus text format.
func Metrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
