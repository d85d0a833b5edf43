package handler

import "math/rand/v2"

// RandSource hands out a random source for one request. Sources are never
// shared between requests.
type RandSource func() *rand.Rand

// NewRandSource returns a RandSource. A zero seed yields freshly seeded
// sources; any other seed makes every request replay the same sequence.
func NewRandSource(seed uint64) RandSource {
	if seed == 0 {
		return func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}
	return func() *rand.Rand {
		return rand.New(rand.NewPCG(seed, seed))
	}
}
