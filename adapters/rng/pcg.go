package rng

import (
	"context"
	"math/rand/v2"
)

// PCGAdapter hands out PCG streams keyed by (name, seed)
type PCGAdapter struct{}

// NewPCGAdapter creates a new RNG adapter
func NewPCGAdapter() *PCGAdapter {
	return &PCGAdapter{}
}

// SeededStream creates a deterministic random source for a named operation
func (r *PCGAdapter) SeededStream(ctx context.Context, name string, seed int64) (rand.Source, error) {
	return rand.NewPCG(uint64(seed), uint64(hashString(name))), nil
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2
	}
	return hash
}
