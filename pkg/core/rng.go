package core

import "math/rand"

// masterSeed seeds the stream that derives all per-pixel seeds. Fixed so that
// repeated construction reproduces identical sample sequences.
const masterSeed = 1301081

// MakePixelRNGs allocates one independently seeded random stream per pixel.
// Seeds are drawn from a single master stream advanced in pixel order, so the
// allocation is deterministic: two calls with the same count produce streams
// that generate identical sequences.
//
// Each returned stream is owned exclusively by its pixel's worker during a
// pass and must not be shared across goroutines.
func MakePixelRNGs(count int) []*rand.Rand {
	master := rand.New(rand.NewSource(masterSeed))
	rngs := make([]*rand.Rand, count)
	for i := range rngs {
		seed := master.Int63n(1<<31)/2 + 1
		rngs[i] = rand.New(rand.NewSource(seed))
	}
	return rngs
}
