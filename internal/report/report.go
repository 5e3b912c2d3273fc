// Package report collects what the annotator did to each line of a file.
package report

import (
	"fmt"
	"go/token"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/sirkon/jsontag/internal/annotator"
)

// Reporter collects line outcomes. It is safe for concurrent use.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report is a single line record.
type Report struct {
	Outcome annotator.Outcome
	Pos     token.Position
	Line    string
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Document records outcomes of a rewritten document. lines must be the source lines
// the result was produced from.
func (r *Reporter) Document(filename string, lines []string, res annotator.Result) {
	for i, o := range res.Outcomes {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		r.Report(Report{
			Outcome: o,
			Pos: token.Position{
				Filename: filename,
				Line:     i + 1,
				Column:   1,
			},
			Line: line,
		})
	}
}

// Reports returns a snapshot of all collected records.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Summary counts records by outcome.
func (r *Reporter) Summary() map[annotator.Outcome]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := map[annotator.Outcome]int{}
	for _, rep := range r.reports {
		res[rep.Outcome]++
	}

	return res
}

// Log writes changed and guarded lines and the summary at debug level.
func (r *Reporter) Log(logger *slog.Logger) {
	for _, rep := range r.Reports() {
		if rep.Outcome == annotator.OutcomeUnmatched {
			continue
		}
		logger.Debug(
			"line processed",
			slog.String("pos", rep.Pos.String()),
			slog.Any("outcome", rep.Outcome),
		)
	}

	summary := r.Summary()
	logger.Debug(
		"document processed",
		slog.Int(annotator.OutcomeUnmatched.String(), summary[annotator.OutcomeUnmatched]),
		slog.Int(annotator.OutcomeGuarded.String(), summary[annotator.OutcomeGuarded]),
		slog.Int(annotator.OutcomeExtended.String(), summary[annotator.OutcomeExtended]),
		slog.Int(annotator.OutcomeCreated.String(), summary[annotator.OutcomeCreated]),
	)
}

// PrintSummary prints records with the given outcomes in a compact, human-readable form.
// Lines that were changed are printed when no outcomes are given.
func (r *Reporter) PrintSummary(w io.Writer, outcomes ...annotator.Outcome) error {
	for _, rep := range r.Reports() {
		if !selected(rep.Outcome, outcomes) {
			continue
		}
		if _, err := fmt.Fprintf(w, "[%s] %s: %s\n", rep.Outcome, rep.Pos, rep.Line); err != nil {
			return fmt.Errorf("print report: %w", err)
		}
	}

	return nil
}

func selected(o annotator.Outcome, outcomes []annotator.Outcome) bool {
	if len(outcomes) == 0 {
		return o.Changed()
	}

	return slices.Contains(outcomes, o)
}
