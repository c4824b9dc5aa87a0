package report

import (
	"fmt"
	"strconv"
	"strings"

	"bizstats/domain/run"
	"bizstats/domain/stats"
)

// parameterSymbol is the symbol used in H0/H1 lines
func parameterSymbol(family stats.Family) string {
	switch family {
	case stats.FamilyPoisson:
		return "λ"
	case stats.FamilyBinomial:
		return "p"
	default:
		return "μ"
	}
}

// formatValue prints counts as integers and measurements with two decimals
func formatValue(family stats.Family, v float64) string {
	if family == stats.FamilyNormal {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPreview(r *run.Report) string {
	values := r.Sample.Preview(r.Scenario.Preview)
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(r.Scenario.Family, v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// formatInterval renders the bounds, as percentages for proportions
func formatInterval(r *run.Report) string {
	ci := r.Interval
	if r.Scenario.Percent {
		return fmt.Sprintf("[%.2f%%, %.2f%%]", ci.Lower*100, ci.Upper*100)
	}
	s := fmt.Sprintf("[%.2f, %.2f]", ci.Lower, ci.Upper)
	if r.Scenario.Unit != "" {
		s += " " + r.Scenario.Unit
	}
	return s
}

func formatEstimate(r *run.Report) string {
	if r.Scenario.Percent {
		return fmt.Sprintf("%.2f%%", r.Interval.Estimate*100)
	}
	return fmt.Sprintf("%.4f", r.Interval.Estimate)
}

func formatNull(r *run.Report) string {
	return strconv.FormatFloat(r.Test.Null, 'f', -1, 64)
}

func formatLevel(level float64) string {
	return strconv.FormatFloat(level*100, 'f', -1, 64) + "%"
}

func formatStatistic(r *run.Report) string {
	if r.Test.Kind == stats.TestT {
		return fmt.Sprintf("t = %.4f (df = %s)", r.Test.Statistic, strconv.FormatFloat(r.Test.DF, 'f', -1, 64))
	}
	return fmt.Sprintf("z = %.4f", r.Test.Statistic)
}

func hypotheses(r *run.Report) (string, string) {
	sym := parameterSymbol(r.Scenario.Family)
	null := formatNull(r)
	return fmt.Sprintf("H0: %s = %s", sym, null), fmt.Sprintf("H1: %s ≠ %s", sym, null)
}
