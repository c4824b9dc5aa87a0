package rng

import (
	"context"
	"math"
	"math/rand/v2"

	"bizstats/domain/core"
)

// MT19937Adapter hands out Mersenne Twister streams seeded exactly like
// np.random.seed. Every name shares the seed's single stream, the way each
// exercise script seeds the global generator once.
type MT19937Adapter struct{}

// NewMT19937Adapter creates a new RNG adapter
func NewMT19937Adapter() *MT19937Adapter {
	return &MT19937Adapter{}
}

// SeededStream creates a fresh generator for the seed. Seeds must fit in
// 32 bits.
func (r *MT19937Adapter) SeededStream(ctx context.Context, name string, seed int64) (rand.Source, error) {
	if seed < 0 || seed > math.MaxUint32 {
		return nil, core.NewParameterError("seed", float64(seed), "must be between 0 and 2**32 - 1")
	}
	return NewMT19937(uint32(seed)), nil
}
