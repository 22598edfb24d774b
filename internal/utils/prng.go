// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so that a whole run can be
// reproduced from one seed.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a generator seeded with seed. A zero seed uses the
// current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the generator was created with.
func (s *PRNGService) Seed() int64 { return s.seed }

// Intn returns a number in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// RangeInt returns a number in [min, max], both ends included.
func (s *PRNGService) RangeInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.rng.Intn(max-min+1)
}

// Chance reports true with probability 1/n.
func (s *PRNGService) Chance(n int) bool {
	return s.rng.Intn(n) == 0
}
