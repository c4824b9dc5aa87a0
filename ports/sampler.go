package ports

import (
	"context"

	"bizstats/domain/stats"
)

// SamplerPort draws reproducible samples from a distribution family
type SamplerPort interface {
	Draw(ctx context.Context, family stats.Family, params stats.Params, size int, seed int64) (stats.Sample, error)
}
