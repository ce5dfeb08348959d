// Package space implements the sample-space algebra: uniquely identified
// primitive spaces, their lazy Cartesian products, and the combination rule
// that merges two spaces without duplicating shared primitives.
package space

import (
	"manydice/domain/core"
	"manydice/domain/prob"
	"manydice/internal/rng"
)

// Outcome is one fully specified elementary result: the chosen index within
// each primitive space in scope, keyed by the primitive's identity. An
// outcome belongs to a space iff its key set exactly equals that space's
// constituent primitives.
type Outcome map[core.SpaceID]int

// Event is a set of outcomes, all drawn from the same space.
type Event []Outcome

// SampleSpace is a finite probability space, either a single Primitive or a
// Product of several.
type SampleSpace interface {
	// Constituents returns the primitive spaces making up this space, in a
	// deterministic order.
	Constituents() []*Primitive

	// Contains reports whether the primitive identified by id is a
	// constituent of this space.
	Contains(id core.SpaceID) bool

	// Belongs reports whether the outcome's key set exactly equals this
	// space's constituent set.
	Belongs(o Outcome) bool

	// MeasureSingle returns the probability of a single outcome. The outcome
	// must belong to this space.
	MeasureSingle(o Outcome) (prob.Probability, error)

	// RandomOutcome draws one outcome using src.
	RandomOutcome(src rng.Source) Outcome

	// AllOutcomes enumerates the full outcome set. For products this is
	// exponential in the number of constituents and is computed once and
	// cached.
	AllOutcomes() []Outcome
}

// MeasureEvent sums the single-outcome measure over every outcome in the
// event. Every outcome must belong to s.
func MeasureEvent(s SampleSpace, ev Event) (prob.Probability, error) {
	total := prob.Probability(0)
	for _, o := range ev {
		m, err := s.MeasureSingle(o)
		if err != nil {
			return 0, err
		}
		total += m
	}
	return total, nil
}

// Combine merges two spaces into the smallest space containing both. Spaces
// with identical constituent sets are returned as-is rather than doubled;
// otherwise the result is a Product over the union of both constituent sets,
// with primitives appearing in both counted once.
func Combine(a, b SampleSpace) SampleSpace {
	if sameConstituents(a, b) {
		return a
	}
	prims := append([]*Primitive{}, a.Constituents()...)
	for _, p := range b.Constituents() {
		if !a.Contains(p.ID()) {
			prims = append(prims, p)
		}
	}
	return NewProduct(prims...)
}

func sameConstituents(a, b SampleSpace) bool {
	ca, cb := a.Constituents(), b.Constituents()
	if len(ca) != len(cb) {
		return false
	}
	for _, p := range cb {
		if !a.Contains(p.ID()) {
			return false
		}
	}
	return true
}
