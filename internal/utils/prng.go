// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService is a wrapper around Go's standard random number generator that
// lets the whole animation run on predictable (seeded) randomness. It is the
// injected random capability: disk velocities and the color buffer draw from
// it instead of a global source.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a new service instance with the given seed.
// A seed of 0 means "use the current time".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// FloatRange returns a random float in [min, max).
func (s *PRNGService) FloatRange(min, max float64) float64 {
	return min + (max-min)*s.rng.Float64()
}
