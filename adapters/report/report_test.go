package report

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"bizstats/domain/core"
	"bizstats/domain/run"
	"bizstats/domain/scenario"
	"bizstats/domain/stats"
	"bizstats/internal/config"
	"bizstats/internal/decision"
	"bizstats/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logisticsReport() *run.Report {
	sc := scenario.Logistics()
	sample := stats.NewSample(stats.FamilyPoisson, sc.Seed, []float64{13, 17, 12, 14, 15, 11, 16, 14, 13, 15, 20})
	test := stats.NewTestResult(stats.TestZ, 4.5, 0, 0.0000068, 0.05, 12, 14)

	return &run.Report{
		RunID:       core.RunID("run-1"),
		Scenario:    sc,
		Sample:      sample,
		Summary:     stats.Summary{N: sample.Len(), Mean: 14},
		Interval:    stats.ConfidenceInterval{Lower: 13.12345, Upper: 14.87, Estimate: 14, Level: 0.95},
		Test:        test,
		Decision:    decision.NewReporter().Decide(sc, test),
		Fingerprint: run.NewRunFingerprint(sc, sample.Hash()),
		CreatedAt:   core.Now(),
	}
}

func productionReport() *run.Report {
	sc := scenario.Production()
	sample := stats.NewSample(stats.FamilyBinomial, sc.Seed, []float64{10, 12, 15, 13})
	test := stats.NewTestResult(stats.TestZ, -0.08, 0, 0.9339, 0.05, 0.03, 0.025)

	return &run.Report{
		Scenario: sc,
		Sample:   sample,
		Summary:  stats.Summary{N: 4},
		Interval: stats.ConfidenceInterval{Lower: -0.0012, Upper: 0.05123, Estimate: 0.025, Level: 0.95},
		Test:     test,
		Decision: decision.NewReporter().Decide(sc, test),
	}
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer().Render(context.Background(), &buf, logisticsReport()))

	want := strings.Join([]string{
		"=== LogiMexico order rate ===",
		"Orders per hour (first 10): [13 17 12 14 15 11 16 14 13 15]",
		"Confidence interval (95%): [13.12, 14.87] orders/hour",
		"H0: λ = 12",
		"H1: λ ≠ 12",
		"p-value: 0.000007",
		"Reject H0? true",
		"DECISION: The new system HAS significantly changed the order rate.",
		"LogiMexico must readjust its staffing and operating capacity.",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestTextRenderer_PercentInterval(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer().Render(context.Background(), &buf, productionReport()))

	out := buf.String()
	assert.Contains(t, out, "Defects per turn (first 4): [10 12 15 13]")
	assert.Contains(t, out, "Confidence interval (95%): [-0.12%, 5.12%]")
	assert.Contains(t, out, "H0: p = 0.03")
	assert.Contains(t, out, "Reject H0? false")
	assert.Contains(t, out, "DECISION: There is not enough evidence that the defect rate changed.")
}

func TestMarkdownRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := logisticsReport()
	require.NoError(t, NewMarkdownRenderer().Render(context.Background(), &buf, r))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "## LogiMexico order rate\n"))
	assert.Contains(t, out, "| Test statistic | z = 4.5000 |")
	assert.Contains(t, out, "| Reject H0 | true |")
	assert.Contains(t, out, "| Sample fingerprint | `"+r.Fingerprint.SampleHash.Short()+"` |")
	assert.Contains(t, out, "> **DECISION:** The new system HAS significantly changed the order rate.")
}

func TestHTMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewHTMLRenderer().Render(context.Background(), &buf, logisticsReport()))

	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "<title>LogiMexico order rate</title>")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<blockquote>")
}

func TestRenderAll(t *testing.T) {
	reports := []*run.Report{logisticsReport(), productionReport()}

	var text bytes.Buffer
	require.NoError(t, RenderAll(context.Background(), NewTextRenderer(), &text, reports))
	assert.Equal(t, 2, strings.Count(text.String(), "=== "))

	var page bytes.Buffer
	require.NoError(t, RenderAll(context.Background(), NewHTMLRenderer(), &page, reports))
	assert.Equal(t, 1, strings.Count(page.String(), "<html"), "html batches into one page")
	assert.Contains(t, page.String(), "Business statistics report")
	assert.Contains(t, page.String(), "Production center defect rate")
}

func TestNewRenderer(t *testing.T) {
	for _, format := range config.SupportedFormats {
		r, err := NewRenderer(format)
		require.NoError(t, err, format)
		assert.NotNil(t, r)
	}

	_, err := NewRenderer("pdf")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "13", formatValue(stats.FamilyPoisson, 13))
	assert.Equal(t, "4.27", formatValue(stats.FamilyNormal, 4.2671))
	assert.Equal(t, "t = 2.5000 (df = 79)", formatStatistic(&run.Report{Test: stats.TestResult{Kind: stats.TestT, Statistic: 2.5, DF: 79}}))
}
