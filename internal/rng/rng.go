// Package rng provides the injectable randomness source consumed by sample
// spaces. Drawing an outcome is the only effectful operation in the algebra,
// so routing it through a Source keeps every test deterministic.
package rng

import (
	"math/rand/v2"
)

// Source produces uniform samples in [0,1).
type Source interface {
	Float64() float64
}

// Default is the process-wide source backed by math/rand/v2's top-level
// generator, which is safe for concurrent use.
var Default Source = defaultSource{}

type defaultSource struct{}

func (defaultSource) Float64() float64 {
	return rand.Float64()
}

// New returns a deterministic source seeded from seed. Each call owns an
// independent generator, so parallel trial runners can hold one per worker.
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
