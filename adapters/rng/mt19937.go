package rng

import "gonum.org/v1/gonum/mathext/prng"

// NewMT19937 creates a 32-bit Mersenne Twister seeded like
// np.random.seed(seed). The generator implements math/rand/v2.Source and
// packs two outputs per Uint64, the first one in the high half.
func NewMT19937(seed uint32) *prng.MT19937 {
	mt := prng.NewMT19937()
	mt.Seed(uint64(seed))
	return mt
}

// Float64From converts one Uint64 of an MT19937 into the genrand_res53
// double, keeping 27 bits of the high word and 26 of the low word
func Float64From(u uint64) float64 {
	a := uint32(u>>32) >> 5
	b := uint32(u) >> 6
	return (float64(a)*67108864.0 + float64(b)) / 9007199254740992.0
}
