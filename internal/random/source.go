// Package random provides a goroutine-safe uniform sampler shared by the
// delay and generator packages.
package random

import (
	"math"
	"math/rand/v2"
	"sync"
)

// Source samples uniform floats. The zero value draws from the global
// generator, like New.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand // nil means the global, already goroutine-safe generator
}

// New returns a Source backed by the package-level generator.
func New() *Source {
	return &Source{}
}

// Seeded returns a deterministic Source, useful in tests.
func Seeded(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} // #nosec G404 -- delays don't need crypto rand
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 {
	if s == nil || s.rng == nil {
		return rand.Float64() // #nosec G404
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Uniform returns a value in [0, upper). upper <= 0 yields 0.
func (s *Source) Uniform(upper float64) float64 {
	if upper <= 0 {
		return 0
	}

	v := s.Float64() * upper
	// rounding of the product can land exactly on upper
	if v >= upper {
		v = math.Nextafter(upper, 0)
	}
	return v
}
