package rng

import "math/rand"

// source adapts an Rng to math/rand.Source64 so the standard library's
// distribution layer (rand.New) can draw from any generator in this
// package.
type source struct {
	rng Rng
}

// NewSource wraps g for use with rand.New. The returned source does not
// support Seed; reseeding goes through the typed constructors.
func NewSource(g Rng) rand.Source64 {
	return &source{rng: g}
}

func (s *source) Uint64() uint64 {
	return s.rng.Next()
}

func (s *source) Int63() int64 {
	return int64(s.rng.Next() >> 1)
}

func (s *source) Seed(int64) {
	panic("rng: reseed by constructing a new generator")
}
