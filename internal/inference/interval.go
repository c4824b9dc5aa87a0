package inference

import (
	"fmt"
	"math"

	"bizstats/domain/core"
	domainStats "bizstats/domain/stats"

	"gonum.org/v1/gonum/stat"
)

// Interval methods
const (
	MethodPoissonWald  = "poisson_wald"
	MethodBinomialWald = "binomial_wald"
	MethodStudentT     = "student_t"
)

// IntervalEstimator builds two-sided confidence intervals
type IntervalEstimator struct {
	dist *StatisticalDistributions
}

// NewIntervalEstimator creates an estimator
func NewIntervalEstimator() *IntervalEstimator {
	return &IntervalEstimator{dist: NewDistributions()}
}

// PoissonRate returns mean ± z·√(mean/n)
func (e *IntervalEstimator) PoissonRate(sample domainStats.Sample, level float64) (domainStats.ConfidenceInterval, error) {
	if err := checkLevel(level); err != nil {
		return domainStats.ConfidenceInterval{}, err
	}
	mean, err := sampleMean(sample)
	if err != nil {
		return domainStats.ConfidenceInterval{}, err
	}

	n := float64(sample.Len())
	z := e.dist.CriticalZ(level)
	margin := z * math.Sqrt(mean/n)
	return symmetric(mean, margin, level, z, MethodPoissonWald), nil
}

// BinomialProportion returns p̂ ± z·√(p̂(1−p̂)/k) where p̂ is the mean count
// divided by trials and k is the number of observations. A p̂ of 0 or 1
// yields a zero-width interval.
func (e *IntervalEstimator) BinomialProportion(sample domainStats.Sample, trials int, level float64) (domainStats.ConfidenceInterval, error) {
	if err := checkLevel(level); err != nil {
		return domainStats.ConfidenceInterval{}, err
	}
	if trials < 1 {
		return domainStats.ConfidenceInterval{}, core.NewParameterError("trials", float64(trials), "must be at least 1")
	}
	mean, err := sampleMean(sample)
	if err != nil {
		return domainStats.ConfidenceInterval{}, err
	}

	pHat := mean / float64(trials)
	z := e.dist.CriticalZ(level)
	margin := z * math.Sqrt(pHat*(1-pHat)/float64(sample.Len()))
	return symmetric(pHat, margin, level, z, MethodBinomialWald), nil
}

// NormalMean returns the Student-t interval mean ± t·SEM with n−1 degrees of freedom
func (e *IntervalEstimator) NormalMean(sample domainStats.Sample, level float64) (domainStats.ConfidenceInterval, error) {
	if err := checkLevel(level); err != nil {
		return domainStats.ConfidenceInterval{}, err
	}
	if sample.Len() < 2 {
		return domainStats.ConfidenceInterval{}, fmt.Errorf("%w: t interval needs at least 2 observations, got %d",
			core.ErrInsufficientData, sample.Len())
	}

	mean, sem := meanAndStdErr(sample)
	df := float64(sample.Len() - 1)
	t := e.dist.CriticalT(level, df)
	return symmetric(mean, t*sem, level, t, MethodStudentT), nil
}

// Estimate dispatches on the sample's family
func (e *IntervalEstimator) Estimate(sample domainStats.Sample, params domainStats.Params, level float64) (domainStats.ConfidenceInterval, error) {
	switch sample.Family() {
	case domainStats.FamilyPoisson:
		return e.PoissonRate(sample, level)
	case domainStats.FamilyBinomial:
		return e.BinomialProportion(sample, params.Trials, level)
	case domainStats.FamilyNormal:
		return e.NormalMean(sample, level)
	default:
		return domainStats.ConfidenceInterval{}, fmt.Errorf("%w: no interval for family %q", core.ErrInvalidParameter, sample.Family())
	}
}

func symmetric(estimate, margin, level, critical float64, method string) domainStats.ConfidenceInterval {
	return domainStats.ConfidenceInterval{
		Lower:    estimate - margin,
		Upper:    estimate + margin,
		Estimate: estimate,
		Margin:   margin,
		Level:    level,
		Critical: critical,
		Method:   method,
	}
}

// meanAndStdErr returns the sample mean and the standard error of the mean
// using the n−1 standard deviation
func meanAndStdErr(sample domainStats.Sample) (float64, float64) {
	values := sample.Values()
	mean, std := stat.MeanStdDev(values, nil)
	return mean, stat.StdErr(std, float64(len(values)))
}

func checkLevel(level float64) error {
	if !(level > 0 && level < 1) {
		return core.NewLevelError("confidence", level)
	}
	return nil
}
