package app

import (
	"context"
	"errors"
	"math"
	"testing"

	"bizstats/adapters/rng"
	"bizstats/adapters/stats/sampler"
	"bizstats/domain/core"
	"bizstats/domain/scenario"
	"bizstats/domain/stats"
	"bizstats/domain/verdict"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService() *PipelineService {
	return NewPipelineService(sampler.NewLegacySampler(rng.NewMT19937Adapter(), nil), nil)
}

func TestPipeline_LogisticsScenario(t *testing.T) {
	report, err := newService().Run(context.Background(), scenario.Logistics())
	require.NoError(t, err)

	assert.Equal(t, 60, report.Sample.Len())
	assert.InDelta(t, 842.0/60, report.Summary.Mean, 1e-12)
	assert.InDelta(t, 4.546671554, report.Test.Statistic, 1e-6)
	assert.True(t, report.Test.Reject, "p=%v", report.Test.PValue)
	assert.Equal(t, verdict.OutcomeRateChanged, report.Decision.Outcome)

	t.Logf("logistics: mean=%.3f ci=[%.2f, %.2f] z=%.3f p=%.6f",
		report.Summary.Mean, report.Interval.Lower, report.Interval.Upper, report.Test.Statistic, report.Test.PValue)
}

func TestPipeline_ProductionScenario(t *testing.T) {
	report, err := newService().Run(context.Background(), scenario.Production())
	require.NoError(t, err)

	assert.Equal(t, 40, report.Sample.Len())
	assert.InDelta(t, 0.0249, report.Interval.Estimate, 1e-12)
	assert.InDelta(t, report.Summary.Mean/500, report.Test.Estimate, 1e-12)

	// z recomputed from the formula must agree with the reported statistic
	se := 0.03 * 0.97 / 40
	z := (report.Test.Estimate - 0.03) / math.Sqrt(se)
	assert.InDelta(t, z, report.Test.Statistic, 1e-9)
	assert.Equal(t, report.Test.PValue < 0.05, report.Test.Reject)
	assert.InDelta(t, 0.850027358, report.Test.PValue, 1e-6)
	assert.False(t, report.Test.Reject)
	assert.Equal(t, verdict.OutcomeQualityUnchanged, report.Decision.Outcome)

	t.Logf("production: p_hat=%.4f z=%.3f p=%.6f outcome=%s",
		report.Test.Estimate, report.Test.Statistic, report.Test.PValue, report.Decision.Outcome)
}

func TestPipeline_DeliveryScenario(t *testing.T) {
	report, err := newService().Run(context.Background(), scenario.Delivery())
	require.NoError(t, err)

	assert.Equal(t, 80, report.Sample.Len())
	assert.InDelta(t, 4.286979192, report.Summary.Mean, 1e-9)
	assert.Equal(t, 79.0, report.Test.DF)
	assert.InDelta(t, 3.615197240, report.Test.Statistic, 1e-6)

	assert.True(t, report.Test.Reject, "p=%v", report.Test.PValue)
	assert.Greater(t, report.Test.Estimate, 4.0)
	assert.Equal(t, verdict.OutcomeUnderperforming, report.Decision.Outcome)
	assert.Equal(t, "The 4-day promise is NOT being met.", report.Decision.Headline)

	t.Logf("delivery: mean=%.3f t=%.3f p=%.6f outcome=%s",
		report.Summary.Mean, report.Test.Statistic, report.Test.PValue, report.Decision.Outcome)
}

func TestPipeline_DistuvEngineInvariants(t *testing.T) {
	svc := NewPipelineService(sampler.NewDistuvSampler(rng.NewPCGAdapter(), nil), nil)
	reports, err := svc.RunAll(context.Background(), scenario.All())
	require.NoError(t, err)

	for _, r := range reports {
		assert.LessOrEqual(t, r.Interval.Lower, r.Interval.Upper, r.Scenario.Key)
		assert.Equal(t, r.Test.PValue < r.Test.Alpha, r.Test.Reject, r.Scenario.Key)
		assert.NoError(t, svc.Replay(context.Background(), r))
	}
}

func TestPipeline_Invariants(t *testing.T) {
	reports, err := newService().RunAll(context.Background(), scenario.All())
	require.NoError(t, err)
	require.Len(t, reports, 3)

	for _, r := range reports {
		assert.LessOrEqual(t, r.Interval.Lower, r.Interval.Estimate, r.Scenario.Key)
		assert.GreaterOrEqual(t, r.Interval.Upper, r.Interval.Estimate, r.Scenario.Key)
		assert.GreaterOrEqual(t, r.Test.PValue, 0.0, r.Scenario.Key)
		assert.LessOrEqual(t, r.Test.PValue, 1.0, r.Scenario.Key)
		assert.Equal(t, r.Test.PValue < 0.05, r.Test.Reject, r.Scenario.Key)
		assert.Equal(t, r.Interval.Estimate, r.Test.Estimate, r.Scenario.Key)
		assert.False(t, r.RunID.String() == "")
	}
}

func TestPipeline_Idempotent(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	for _, sc := range scenario.All() {
		first, err := svc.Run(ctx, sc)
		require.NoError(t, err)
		second, err := svc.Run(ctx, sc)
		require.NoError(t, err)

		assert.Equal(t, first.Sample.Values(), second.Sample.Values(), sc.Key)
		assert.Equal(t, first.Interval, second.Interval, sc.Key)
		assert.Equal(t, first.Test, second.Test, sc.Key)
		assert.Equal(t, first.Fingerprint, second.Fingerprint, sc.Key)
		assert.NotEqual(t, first.RunID, second.RunID, "every run gets its own ID")

		assert.NoError(t, svc.Replay(ctx, first))
	}
}

func TestPipeline_InvalidScenario(t *testing.T) {
	_, err := newService().Run(context.Background(), scenario.Logistics().WithConfidence(1.5))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidLevel))
}

// MockSampler lets tests feed fixed samples through the pipeline
type MockSampler struct {
	mock.Mock
}

func (m *MockSampler) Draw(ctx context.Context, family stats.Family, params stats.Params, size int, seed int64) (stats.Sample, error) {
	args := m.Called(ctx, family, params, size, seed)
	return args.Get(0).(stats.Sample), args.Error(1)
}

func TestPipeline_ReplayDetectsDrift(t *testing.T) {
	sc := scenario.Delivery()
	sc.Size = 4

	m := &MockSampler{}
	m.On("Draw", mock.Anything, sc.Family, sc.Params, 4, sc.Seed).
		Return(stats.NewSample(stats.FamilyNormal, sc.Seed, []float64{4.1, 4.3, 3.9, 4.4}), nil).Once()
	m.On("Draw", mock.Anything, sc.Family, sc.Params, 4, sc.Seed).
		Return(stats.NewSample(stats.FamilyNormal, sc.Seed, []float64{4.1, 4.3, 3.9, 4.5}), nil).Once()

	svc := NewPipelineService(m, nil)
	report, err := svc.Run(context.Background(), sc)
	require.NoError(t, err)

	err = svc.Replay(context.Background(), report)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNonDeterministic))
	assert.True(t, core.IsDeterminismError(err))
	m.AssertExpectations(t)
}

func TestPipeline_SamplerFailureStopsRunAll(t *testing.T) {
	m := &MockSampler{}
	boom := errors.New("rng unavailable")
	m.On("Draw", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(stats.Sample{}, boom)

	reports, err := NewPipelineService(m, nil).RunAll(context.Background(), scenario.All())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Empty(t, reports)
	m.AssertNumberOfCalls(t, "Draw", 1)
}
