// Package rng provides the random sources the game engine draws from.
// A Source is injected at construction so outcomes can be replayed or
// scripted in tests.
package rng

import (
	"math/rand/v2"
)

// Source produces the two kinds of draws the payout engine needs.
type Source interface {
	// Float64 returns a uniform draw from [0, 1).
	Float64() float64

	// IntInRange returns a uniform draw from [lo, hi] inclusive.
	IntInRange(lo, hi int) int
}

// Seeded is a deterministic PCG-backed source. Same seeds, same sequence.
// Not suitable where the draw must be verifiable by the player; use
// ProvablyFair for that.
type Seeded struct {
	r *rand.Rand
}

func NewSeeded(seed1, seed2 uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (s *Seeded) Float64() float64 {
	return s.r.Float64()
}

func (s *Seeded) IntInRange(lo, hi int) int {
	return lo + s.r.IntN(hi-lo+1)
}
