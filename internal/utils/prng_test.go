package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestZeroSeedPicksOne(t *testing.T) {
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestRangeIntInclusive(t *testing.T) {
	s := NewPRNGService(7)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := s.RangeInt(1, 3)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 3)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, 5, s.RangeInt(5, 5))
}
