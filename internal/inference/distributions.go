package inference

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// StatisticalDistributions provides the reference distributions used by the
// interval estimators and hypothesis tests
type StatisticalDistributions struct{}

// NewDistributions creates a new distributions utility
func NewDistributions() *StatisticalDistributions {
	return &StatisticalDistributions{}
}

// NormalCDF computes cumulative distribution function for standard normal
func (sd *StatisticalDistributions) NormalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// NormalQuantile computes quantile function for standard normal (inverse CDF)
func (sd *StatisticalDistributions) NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}

// CriticalZ returns the (1+level)/2 standard normal quantile
func (sd *StatisticalDistributions) CriticalZ(level float64) float64 {
	return sd.NormalQuantile((1 + level) / 2)
}

// CriticalT returns the (1+level)/2 Student-t quantile with df degrees of freedom
func (sd *StatisticalDistributions) CriticalT(level, df float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.Quantile((1 + level) / 2)
}

// ZTestPValue computes the two-sided p-value 2·(1 − Φ(|z|)). The upper tail
// is taken from the survival function so very large |z| does not round to 0
// before doubling.
func (sd *StatisticalDistributions) ZTestPValue(z float64) float64 {
	if math.IsNaN(z) {
		return math.NaN()
	}
	return clampProbability(2 * distuv.UnitNormal.Survival(math.Abs(z)))
}

// TTestPValue computes the two-sided p-value for a t statistic
func (sd *StatisticalDistributions) TTestPValue(tStatistic, df float64) float64 {
	if df <= 0 {
		return 1.0
	}
	if math.IsNaN(tStatistic) {
		return math.NaN()
	}
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return clampProbability(2 * tDist.Survival(math.Abs(tStatistic)))
}

func clampProbability(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
