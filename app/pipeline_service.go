package app

import (
	"context"
	"fmt"
	"time"

	"bizstats/domain/core"
	"bizstats/domain/run"
	"bizstats/domain/scenario"
	"bizstats/internal"
	"bizstats/internal/decision"
	"bizstats/internal/inference"
	"bizstats/ports"
)

// PipelineService runs the sample → interval → test → decision sequence for
// a scenario
type PipelineService struct {
	sampler   ports.SamplerPort
	estimator *inference.IntervalEstimator
	tester    *inference.HypothesisTester
	reporter  *decision.Reporter
	logger    *internal.Logger
}

// NewPipelineService creates a pipeline service around a sampler
func NewPipelineService(sampler ports.SamplerPort, logger *internal.Logger) *PipelineService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &PipelineService{
		sampler:   sampler,
		estimator: inference.NewIntervalEstimator(),
		tester:    inference.NewHypothesisTester(),
		reporter:  decision.NewReporter(),
		logger:    logger,
	}
}

// Run executes one scenario end to end
func (s *PipelineService) Run(ctx context.Context, sc scenario.Scenario) (*run.Report, error) {
	startTime := time.Now()

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Key, err)
	}

	sample, err := s.sampler.Draw(ctx, sc.Family, sc.Params, sc.Size, sc.Seed)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: sampling failed: %w", sc.Key, err)
	}

	summary, err := inference.Describe(sample)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: summary failed: %w", sc.Key, err)
	}

	interval, err := s.estimator.Estimate(sample, sc.Params, sc.Confidence)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: interval failed: %w", sc.Key, err)
	}

	result, err := s.tester.Test(sample, sc.Params, sc.Null, sc.Alpha)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: hypothesis test failed: %w", sc.Key, err)
	}

	report := &run.Report{
		RunID:       core.NewRunID(),
		Scenario:    sc,
		Sample:      sample,
		Summary:     summary,
		Interval:    interval,
		Test:        result,
		Decision:    s.reporter.Decide(sc, result),
		Fingerprint: run.NewRunFingerprint(sc, sample.Hash()),
		CreatedAt:   core.Now(),
	}

	s.logger.Info("scenario %s finished in %s: p=%.6f reject=%t outcome=%s",
		sc.Key, time.Since(startTime), result.PValue, result.Reject, report.Decision.Outcome)
	return report, nil
}

// RunAll executes scenarios one after another, stopping at the first failure
func (s *PipelineService) RunAll(ctx context.Context, scenarios []scenario.Scenario) ([]*run.Report, error) {
	reports := make([]*run.Report, 0, len(scenarios))
	for _, sc := range scenarios {
		report, err := s.Run(ctx, sc)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// Replay re-draws the report's sample and checks it is bit-identical
func (s *PipelineService) Replay(ctx context.Context, report *run.Report) error {
	sc := report.Scenario
	sample, err := s.sampler.Draw(ctx, sc.Family, sc.Params, sc.Size, sc.Seed)
	if err != nil {
		return fmt.Errorf("scenario %s: replay sampling failed: %w", sc.Key, err)
	}

	replayed := run.NewRunFingerprint(sc, sample.Hash())
	if !replayed.Fingerprint.Equals(report.Fingerprint.Fingerprint) {
		return fmt.Errorf("%w: scenario %s sample %s replayed as %s", core.ErrNonDeterministic,
			sc.Key, report.Fingerprint.SampleHash.Short(), replayed.SampleHash.Short())
	}
	s.logger.Debug("scenario %s replay matched fingerprint %s", sc.Key, replayed.Fingerprint.Short())
	return nil
}
