package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"bizstats/domain/run"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// MarkdownRenderer writes a run as a markdown section with a results table
type MarkdownRenderer struct{}

func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render writes the markdown document
func (m *MarkdownRenderer) Render(ctx context.Context, w io.Writer, r *run.Report) error {
	_, err := io.WriteString(w, buildMarkdown(r))
	return err
}

func buildMarkdown(r *run.Report) string {
	var b strings.Builder
	h0, h1 := hypotheses(r)

	fmt.Fprintf(&b, "## %s\n\n", r.Scenario.Title)
	fmt.Fprintf(&b, "_%s_\n\n", r.Scenario.Question)
	fmt.Fprintf(&b, "- **%s (first %d):** `%s`\n", r.Scenario.SampleLabel, len(r.Sample.Preview(r.Scenario.Preview)), formatPreview(r))
	fmt.Fprintf(&b, "- **%s** against **%s**\n\n", h0, h1)

	b.WriteString("| Measure | Value |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| Sample size | %d |\n", r.Summary.N)
	fmt.Fprintf(&b, "| Estimate | %s |\n", formatEstimate(r))
	fmt.Fprintf(&b, "| Confidence interval (%s) | %s |\n", formatLevel(r.Interval.Level), formatInterval(r))
	fmt.Fprintf(&b, "| Test statistic | %s |\n", formatStatistic(r))
	fmt.Fprintf(&b, "| p-value | %.6f |\n", r.Test.PValue)
	fmt.Fprintf(&b, "| Significance level | %s |\n", formatLevel(r.Test.Alpha))
	fmt.Fprintf(&b, "| Reject H0 | %t |\n", r.Test.Reject)
	fmt.Fprintf(&b, "| Sample fingerprint | `%s` |\n\n", r.Fingerprint.SampleHash.Short())

	fmt.Fprintf(&b, "> **DECISION:** %s\n>\n> %s\n\n", r.Decision.Headline, r.Decision.Advice)
	return b.String()
}

// HTMLRenderer converts the markdown report to a standalone HTML page
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render writes the HTML page
func (h *HTMLRenderer) Render(ctx context.Context, w io.Writer, r *run.Report) error {
	return h.RenderAll(ctx, w, []*run.Report{r})
}

// RenderAll writes one HTML page holding every report
func (h *HTMLRenderer) RenderAll(ctx context.Context, w io.Writer, reports []*run.Report) error {
	title := "Business statistics report"
	if len(reports) == 1 {
		title = reports[0].Scenario.Title
	}

	var doc strings.Builder
	fmt.Fprintf(&doc, "# %s\n\n", title)
	for _, r := range reports {
		doc.WriteString(buildMarkdown(r))
	}

	// gomarkdown parsers keep state, so each document gets a fresh one
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Title: title,
		Flags: html.CommonFlags | html.CompletePage,
	})

	_, err := w.Write(markdown.ToHTML([]byte(doc.String()), p, renderer))
	return err
}
