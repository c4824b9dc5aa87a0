package stats

import (
	"errors"
	"math"
	"testing"

	"bizstats/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		family  Family
		params  Params
		wantErr bool
	}{
		{"poisson ok", FamilyPoisson, Params{Lambda: 14}, false},
		{"poisson zero rate", FamilyPoisson, Params{Lambda: 0}, true},
		{"poisson nan", FamilyPoisson, Params{Lambda: math.NaN()}, true},
		{"binomial ok", FamilyBinomial, Params{Trials: 500, P: 0.025}, false},
		{"binomial p=1", FamilyBinomial, Params{Trials: 1, P: 1}, false},
		{"binomial no trials", FamilyBinomial, Params{Trials: 0, P: 0.5}, true},
		{"binomial p>1", FamilyBinomial, Params{Trials: 10, P: 1.5}, true},
		{"normal ok", FamilyNormal, Params{Mu: 4.2, Sigma: 0.8}, false},
		{"normal zero sigma", FamilyNormal, Params{Mu: 4.2}, true},
		{"normal inf mu", FamilyNormal, Params{Mu: math.Inf(1), Sigma: 1}, true},
		{"unknown family", Family("gamma"), Params{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate(tt.family)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, core.ErrInvalidParameter))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSampleImmutable(t *testing.T) {
	src := []float64{1, 2, 3}
	s := NewSample(FamilyPoisson, 42, src)

	src[0] = 99
	assert.Equal(t, 1.0, s.Values()[0], "sample must not alias caller slice")

	v := s.Values()
	v[1] = 99
	assert.Equal(t, 2.0, s.Values()[1], "Values must return a copy")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, int64(42), s.Seed())
	assert.Equal(t, FamilyPoisson, s.Family())
}

func TestSamplePreview(t *testing.T) {
	s := NewSample(FamilyNormal, 1, []float64{1, 2, 3, 4})
	assert.Equal(t, []float64{1, 2}, s.Preview(2))
	assert.Equal(t, []float64{1, 2, 3, 4}, s.Preview(10))
	assert.Empty(t, s.Preview(-1))
}

func TestNewTestResult_RejectBoundary(t *testing.T) {
	atAlpha := NewTestResult(TestZ, 1.96, 0, 0.05, 0.05, 12, 13)
	assert.False(t, atAlpha.Reject, "p == alpha must not reject")

	below := NewTestResult(TestZ, 2, 0, math.Nextafter(0.05, 0), 0.05, 12, 13)
	assert.True(t, below.Reject)
}

func TestDeviation(t *testing.T) {
	assert.Equal(t, DirectionAbove, TestResult{Estimate: 4.2, Null: 4}.Deviation())
	assert.Equal(t, DirectionBelow, TestResult{Estimate: 3.9, Null: 4}.Deviation())
	assert.Equal(t, DirectionEqual, TestResult{Estimate: 4, Null: 4}.Deviation())
	assert.Equal(t, "above", DirectionAbove.String())
}

func TestConfidenceIntervalContains(t *testing.T) {
	ci := ConfidenceInterval{Lower: 1, Upper: 2}
	assert.True(t, ci.Contains(1))
	assert.True(t, ci.Contains(2))
	assert.False(t, ci.Contains(2.0001))
	assert.InDelta(t, 1.0, ci.Width(), 1e-12)
}
