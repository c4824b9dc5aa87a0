package stats

import (
	"fmt"
	"math"

	"bizstats/domain/core"
)

// Family names the probability distribution a sample is drawn from
type Family string

const (
	FamilyPoisson  Family = "poisson"
	FamilyBinomial Family = "binomial"
	FamilyNormal   Family = "normal"
)

// Params holds the distribution constants of a scenario. Only the fields
// relevant to the family are read.
type Params struct {
	Lambda float64 `json:"lambda,omitempty"` // Poisson rate
	Trials int     `json:"trials,omitempty"` // Binomial n (pieces per turn)
	P      float64 `json:"p,omitempty"`      // Binomial success probability
	Mu     float64 `json:"mu,omitempty"`     // Normal mean
	Sigma  float64 `json:"sigma,omitempty"`  // Normal standard deviation
}

// Validate checks the parameters are inside the family's domain
func (p Params) Validate(family Family) error {
	switch family {
	case FamilyPoisson:
		if !(p.Lambda > 0) || math.IsInf(p.Lambda, 0) {
			return core.NewParameterError("lambda", p.Lambda, "must be positive and finite")
		}
	case FamilyBinomial:
		if p.Trials < 1 {
			return core.NewParameterError("trials", float64(p.Trials), "must be at least 1")
		}
		if !(p.P >= 0 && p.P <= 1) {
			return core.NewParameterError("p", p.P, "must be in [0, 1]")
		}
	case FamilyNormal:
		if math.IsNaN(p.Mu) || math.IsInf(p.Mu, 0) {
			return core.NewParameterError("mu", p.Mu, "must be finite")
		}
		if !(p.Sigma > 0) || math.IsInf(p.Sigma, 0) {
			return core.NewParameterError("sigma", p.Sigma, "must be positive and finite")
		}
	default:
		return fmt.Errorf("%w: unknown family %q", core.ErrInvalidParameter, family)
	}
	return nil
}

// Sample is an ordered, fixed-length set of observations. The backing slice
// is never exposed, so a Sample cannot change after it is drawn.
type Sample struct {
	family Family
	seed   int64
	values []float64
}

// NewSample copies values into a new immutable Sample
func NewSample(family Family, seed int64, values []float64) Sample {
	v := make([]float64, len(values))
	copy(v, values)
	return Sample{family: family, seed: seed, values: v}
}

func (s Sample) Family() Family { return s.family }
func (s Sample) Seed() int64    { return s.seed }
func (s Sample) Len() int       { return len(s.values) }

// Values returns a copy of the observations
func (s Sample) Values() []float64 {
	v := make([]float64, len(s.values))
	copy(v, s.values)
	return v
}

// Preview returns up to n leading observations
func (s Sample) Preview(n int) []float64 {
	if n < 0 {
		n = 0
	}
	if n > len(s.values) {
		n = len(s.values)
	}
	v := make([]float64, n)
	copy(v, s.values[:n])
	return v
}

// Hash fingerprints the sample's exact bits
func (s Sample) Hash() core.SampleHash {
	return core.ComputeSampleHash(s.values)
}

// ConfidenceInterval is a two-sided interval around a point estimate
type ConfidenceInterval struct {
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
	Estimate float64 `json:"estimate"`
	Margin   float64 `json:"margin"`
	Level    float64 `json:"level"`
	Critical float64 `json:"critical"` // z or t quantile used for the margin
	Method   string  `json:"method"`
}

// Contains reports whether x lies inside the closed interval
func (ci ConfidenceInterval) Contains(x float64) bool {
	return x >= ci.Lower && x <= ci.Upper
}

// Width is Upper - Lower
func (ci ConfidenceInterval) Width() float64 {
	return ci.Upper - ci.Lower
}

// TestKind identifies the reference distribution of a test statistic
type TestKind string

const (
	TestZ TestKind = "z"
	TestT TestKind = "t"
)

// Direction is the sign of (estimate - null)
type Direction int

const (
	DirectionBelow Direction = -1
	DirectionEqual Direction = 0
	DirectionAbove Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirectionBelow:
		return "below"
	case DirectionAbove:
		return "above"
	default:
		return "equal"
	}
}

// TestResult is the outcome of a two-sided test of H0: parameter == Null
type TestResult struct {
	Kind      TestKind `json:"kind"`
	Statistic float64  `json:"statistic"`
	DF        float64  `json:"df,omitempty"` // degrees of freedom, t tests only
	PValue    float64  `json:"p_value"`
	Alpha     float64  `json:"alpha"`
	Null      float64  `json:"null"`
	Estimate  float64  `json:"estimate"`
	Reject    bool     `json:"reject"`
}

// NewTestResult fills in Reject from the strict rule p < alpha
func NewTestResult(kind TestKind, statistic, df, pValue, alpha, null, estimate float64) TestResult {
	return TestResult{
		Kind:      kind,
		Statistic: statistic,
		DF:        df,
		PValue:    pValue,
		Alpha:     alpha,
		Null:      null,
		Estimate:  estimate,
		Reject:    pValue < alpha,
	}
}

// Deviation reports which side of the null value the estimate fell on
func (r TestResult) Deviation() Direction {
	switch {
	case r.Estimate > r.Null:
		return DirectionAbove
	case r.Estimate < r.Null:
		return DirectionBelow
	default:
		return DirectionEqual
	}
}

// Summary holds descriptive statistics of a sample
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"` // sample standard deviation (n-1)
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}
