package sampler

import (
	"context"
	"fmt"

	"bizstats/domain/core"
	"bizstats/domain/stats"
	"bizstats/internal"
	"bizstats/ports"

	"gonum.org/v1/gonum/stat/distuv"
)

// DistuvSampler draws samples with gonum's distuv distributions, feeding
// them a seeded source from the RNG port
type DistuvSampler struct {
	rng    ports.RNGPort
	logger *internal.Logger
}

// NewDistuvSampler creates a sampler backed by the given RNG port
func NewDistuvSampler(rng ports.RNGPort, logger *internal.Logger) *DistuvSampler {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DistuvSampler{rng: rng, logger: logger}
}

// Draw produces exactly size observations from the family
func (s *DistuvSampler) Draw(ctx context.Context, family stats.Family, params stats.Params, size int, seed int64) (stats.Sample, error) {
	if err := params.Validate(family); err != nil {
		return stats.Sample{}, err
	}
	if size < 1 {
		return stats.Sample{}, core.NewParameterError("size", float64(size), "must be at least 1")
	}

	src, err := s.rng.SeededStream(ctx, string(family), seed)
	if err != nil {
		return stats.Sample{}, fmt.Errorf("seeding %s stream: %w", family, err)
	}

	var dist distuv.Rander
	switch family {
	case stats.FamilyPoisson:
		dist = distuv.Poisson{Lambda: params.Lambda, Src: src}
	case stats.FamilyBinomial:
		dist = distuv.Binomial{N: float64(params.Trials), P: params.P, Src: src}
	case stats.FamilyNormal:
		dist = distuv.Normal{Mu: params.Mu, Sigma: params.Sigma, Src: src}
	default:
		// Validate already rejects unknown families
		return stats.Sample{}, fmt.Errorf("%w: unknown family %q", core.ErrInvalidParameter, family)
	}

	values := make([]float64, size)
	for i := range values {
		values[i] = dist.Rand()
	}

	sample := stats.NewSample(family, seed, values)
	s.logger.Debug("drew %d %s observations (seed=%d, hash=%s)", size, family, seed, sample.Hash().Short())
	return sample, nil
}
