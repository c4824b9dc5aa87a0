package inference

import (
	"fmt"
	"math"

	"bizstats/domain/core"
	domainStats "bizstats/domain/stats"
)

// HypothesisTester runs two-sided tests of H0: parameter == null
type HypothesisTester struct {
	dist *StatisticalDistributions
}

// NewHypothesisTester creates a tester
func NewHypothesisTester() *HypothesisTester {
	return &HypothesisTester{dist: NewDistributions()}
}

// PoissonRate tests the rate with z = (mean − λ₀)/√(λ₀/n)
func (h *HypothesisTester) PoissonRate(sample domainStats.Sample, lambda0, alpha float64) (domainStats.TestResult, error) {
	if err := checkAlpha(alpha); err != nil {
		return domainStats.TestResult{}, err
	}
	mean, err := sampleMean(sample)
	if err != nil {
		return domainStats.TestResult{}, err
	}

	n := float64(sample.Len())
	z := (mean - lambda0) / math.Sqrt(lambda0/n)
	p := h.dist.ZTestPValue(z)
	return domainStats.NewTestResult(domainStats.TestZ, z, 0, p, alpha, lambda0, mean), nil
}

// BinomialProportion tests the proportion with z = (p̂ − p₀)/√(p₀(1−p₀)/k)
func (h *HypothesisTester) BinomialProportion(sample domainStats.Sample, trials int, p0, alpha float64) (domainStats.TestResult, error) {
	if err := checkAlpha(alpha); err != nil {
		return domainStats.TestResult{}, err
	}
	if trials < 1 {
		return domainStats.TestResult{}, core.NewParameterError("trials", float64(trials), "must be at least 1")
	}
	mean, err := sampleMean(sample)
	if err != nil {
		return domainStats.TestResult{}, err
	}

	pHat := mean / float64(trials)
	se := math.Sqrt(p0 * (1 - p0) / float64(sample.Len()))
	z := (pHat - p0) / se
	p := h.dist.ZTestPValue(z)
	return domainStats.NewTestResult(domainStats.TestZ, z, 0, p, alpha, p0, pHat), nil
}

// NormalMean runs a one-sample t-test of the mean against mu0
func (h *HypothesisTester) NormalMean(sample domainStats.Sample, mu0, alpha float64) (domainStats.TestResult, error) {
	if err := checkAlpha(alpha); err != nil {
		return domainStats.TestResult{}, err
	}
	if sample.Len() < 2 {
		return domainStats.TestResult{}, fmt.Errorf("%w: t-test needs at least 2 observations, got %d",
			core.ErrInsufficientData, sample.Len())
	}

	mean, sem := meanAndStdErr(sample)
	df := float64(sample.Len() - 1)

	var t float64
	switch {
	case sem > 0:
		t = (mean - mu0) / sem
	case mean == mu0:
		t = 0
	default:
		// constant sample away from mu0
		t = math.Copysign(math.Inf(1), mean-mu0)
	}

	p := h.dist.TTestPValue(t, df)
	return domainStats.NewTestResult(domainStats.TestT, t, df, p, alpha, mu0, mean), nil
}

// Test dispatches on the sample's family
func (h *HypothesisTester) Test(sample domainStats.Sample, params domainStats.Params, null, alpha float64) (domainStats.TestResult, error) {
	switch sample.Family() {
	case domainStats.FamilyPoisson:
		return h.PoissonRate(sample, null, alpha)
	case domainStats.FamilyBinomial:
		return h.BinomialProportion(sample, params.Trials, null, alpha)
	case domainStats.FamilyNormal:
		return h.NormalMean(sample, null, alpha)
	default:
		return domainStats.TestResult{}, fmt.Errorf("%w: no test for family %q", core.ErrInvalidParameter, sample.Family())
	}
}

func checkAlpha(alpha float64) error {
	if !(alpha > 0 && alpha < 1) {
		return core.NewLevelError("alpha", alpha)
	}
	return nil
}
