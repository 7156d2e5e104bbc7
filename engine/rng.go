package engine

import "math/rand"

// RNG wraps math/rand.Rand with deterministic position tracking. It is the
// only randomness seam in the engine; every effect that needs variance takes
// one of these so tests can supply fixed seeds. Position increments with
// every call, enabling exact restoration.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Roll returns a random integer in [1, sides].
func (r *RNG) Roll(sides int) int {
	r.pos++
	return r.src.Intn(sides) + 1
}

// Between returns a random integer in [lo, hi].
func (r *RNG) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	r.pos++
	return lo + r.src.Intn(hi-lo+1)
}

// Chance returns true with the given percentage probability.
func (r *RNG) Chance(pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	r.pos++
	return r.src.Intn(100) < pct
}

// Position returns the number of RNG calls made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}

// RestoreRNG creates an RNG and advances it to the given position,
// reproducing the exact stream for a resumed session.
func RestoreRNG(seed int64, position int64) *RNG {
	rng := NewRNG(seed)
	for i := int64(0); i < position; i++ {
		rng.src.Int63()
	}
	rng.pos = position
	return rng
}
