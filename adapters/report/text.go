package report

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"bizstats/domain/run"
)

// TextRenderer prints a run the way the exercise scripts do: sample preview,
// interval, p-value, decision
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render writes the report as plain text
func (t *TextRenderer) Render(ctx context.Context, w io.Writer, r *run.Report) error {
	bw := bufio.NewWriter(w)
	h0, h1 := hypotheses(r)

	fmt.Fprintf(bw, "=== %s ===\n", r.Scenario.Title)
	fmt.Fprintf(bw, "%s (first %d): %s\n", r.Scenario.SampleLabel, len(r.Sample.Preview(r.Scenario.Preview)), formatPreview(r))
	fmt.Fprintf(bw, "Confidence interval (%s): %s\n", formatLevel(r.Interval.Level), formatInterval(r))
	fmt.Fprintf(bw, "%s\n%s\n", h0, h1)
	fmt.Fprintf(bw, "p-value: %.6f\n", r.Test.PValue)
	fmt.Fprintf(bw, "Reject H0? %t\n", r.Test.Reject)
	for _, line := range r.Decision.Lines() {
		fmt.Fprintln(bw, line)
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}
