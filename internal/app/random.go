package app

import (
	"math/rand"
	"time"
)

// Rand is the source of randomness for every stochastic choice the pipeline
// makes (category, page type, accent color, commit verb, restyle trigger).
// Tests substitute deterministic sequences.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a time-seeded production source.
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func choose(r Rand, options []string) string {
	return options[r.Intn(len(options))]
}
