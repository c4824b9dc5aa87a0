package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// Short returns the first 12 hex characters, enough to eyeball in a report
func (h Hash) Short() string {
	if len(h) <= 12 {
		return string(h)
	}
	return string(h[:12])
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// SampleHash fingerprints the exact bit pattern of a sample
type SampleHash Hash

func (h SampleHash) String() string { return Hash(h).String() }
func (h SampleHash) Short() string  { return Hash(h).Short() }

// ComputeSampleHash hashes the IEEE-754 bits of every value in order, so two
// samples share a hash only if they are bit-identical.
func ComputeSampleHash(values []float64) SampleHash {
	buf := make([]byte, 8*len(values))
	for i, v := range values {
		binary.BigEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return SampleHash(NewHash(buf))
}
