package wander

import "math/rand"

// Source supplies uniformly distributed values in [0, 1).
// *rand.Rand satisfies it; tests inject fixed sequences.
type Source interface {
	Float64() float64
}

// SourceFactory creates the Source that drives one generation.
type SourceFactory func(seed int64) Source

// NewRandSource is the default SourceFactory backed by math/rand.
func NewRandSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// uniform draws a value in [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
