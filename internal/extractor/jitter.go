package extractor

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// jitterBound is the absolute limit of the call score jitter.
const jitterBound = 3

// JitterSource draws the call score jitter for a cache key. Implementations
// must return a value in [-bound, bound].
type JitterSource interface {
	Jitter(key string, bound int) int
}

// JitterFunc adapts a plain function to JitterSource.
type JitterFunc func(key string, bound int) int

func (f JitterFunc) Jitter(key string, bound int) int { return f(key, bound) }

// HashJitter seeds a PCG generator from the xxhash of the key, so the same
// key always draws the same jitter, even after the caches are cleared.
type HashJitter struct{}

func (HashJitter) Jitter(key string, bound int) int {
	if bound <= 0 {
		return 0
	}
	seed := xxhash.Sum64String(key)
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return r.IntN(2*bound+1) - bound
}
