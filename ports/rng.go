package ports

import (
	"context"
	"math/rand/v2"
)

// RNGPort provides seeded random number generation for deterministic operations
type RNGPort interface {
	// SeededStream creates a deterministic random source for a named operation.
	// The same name and seed always yield the same stream.
	SeededStream(ctx context.Context, name string, seed int64) (rand.Source, error)
}
