package rng

import (
	"math/rand/v2"
	"sync"
)

// Seeded is a reproducible PCG-backed Source, safe for concurrent use
type Seeded struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeeded creates a source whose sequence is fixed by seed
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn implements Source
func (s *Seeded) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// Float64 implements Source
func (s *Seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}
