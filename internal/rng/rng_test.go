package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeded_Deterministic(t *testing.T) {
	t.Parallel()

	a := NewSeeded(42, 7)
	b := NewSeeded(42, 7)

	for i := range 100 {
		assert.Equal(t, a.Float64(), b.Float64(), "draw %d", i)
		assert.Equal(t, a.IntInRange(201, 1000), b.IntInRange(201, 1000), "int draw %d", i)
	}
}

func TestSeeded_Ranges(t *testing.T) {
	t.Parallel()

	s := NewSeeded(1, 2)

	for range 10_000 {
		f := s.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("float out of [0,1): %v", f)
		}

		n := s.IntInRange(201, 1000)
		if n < 201 || n > 1000 {
			t.Fatalf("int out of [201,1000]: %d", n)
		}
	}
}

func TestSeeded_CoversRangeEndpoints(t *testing.T) {
	t.Parallel()

	s := NewSeeded(3, 4)
	seen := make(map[int]bool)

	for range 1_000 {
		seen[s.IntInRange(1, 3)] = true
	}

	assert.True(t, seen[1] && seen[2] && seen[3], "all of [1,3] should appear: %v", seen)
}

func TestProvablyFair_Deterministic(t *testing.T) {
	t.Parallel()

	a := NewProvablyFair("server-seed", "client-seed")
	b := NewProvablyFair("server-seed", "client-seed")

	for i := range 50 {
		assert.Equal(t, a.Float64(), b.Float64(), "draw %d", i)
	}

	assert.Equal(t, uint64(50), a.Nonce())
}

func TestProvablyFair_DistinctSeedsDiverge(t *testing.T) {
	t.Parallel()

	a := NewProvablyFair("server-seed", "client-a")
	b := NewProvablyFair("server-seed", "client-b")

	assert.NotEqual(t, a.Float64(), b.Float64())
}

func TestProvablyFair_Ranges(t *testing.T) {
	t.Parallel()

	p := NewProvablyFair("server", "client")

	for range 1_000 {
		f := p.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("float out of [0,1): %v", f)
		}
	}

	for range 1_000 {
		n := p.IntInRange(201, 1000)
		if n < 201 || n > 1000 {
			t.Fatalf("int out of [201,1000]: %d", n)
		}
	}
}

func TestProvablyFair_CommitmentStable(t *testing.T) {
	t.Parallel()

	p := NewProvablyFair("server-seed", "client-seed")

	commitment := p.Commitment()
	assert.Len(t, commitment, 64)

	p.Float64()
	assert.Equal(t, commitment, p.Commitment(), "commitment must not change as draws advance")

	other := NewProvablyFair("other-seed", "client-seed")
	assert.NotEqual(t, commitment, other.Commitment())
}

func TestNewServerSeed(t *testing.T) {
	t.Parallel()

	a, err := NewServerSeed()
	require.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := NewServerSeed()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
