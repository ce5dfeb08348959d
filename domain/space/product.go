package space

import (
	"sort"
	"sync"

	"manydice/domain/core"
	"manydice/domain/prob"
	"manydice/internal/rng"
)

// Product is the Cartesian product of a set of distinct primitive spaces. Its
// measure on a single outcome is the product of each constituent's measure on
// its own index; sharing a primitive is the only source of dependence, so the
// product rule is exactly the independence assumption between constituents.
type Product struct {
	prims []*Primitive
	byID  map[core.SpaceID]*Primitive

	enumerate sync.Once
	outcomes  []Outcome
}

// NewProduct builds a product space over the given primitives, deduplicating
// by identity. Constituents are kept sorted by identity so enumeration order
// is deterministic.
func NewProduct(prims ...*Primitive) *Product {
	byID := make(map[core.SpaceID]*Primitive, len(prims))
	distinct := make([]*Primitive, 0, len(prims))
	for _, p := range prims {
		if _, ok := byID[p.ID()]; ok {
			continue
		}
		byID[p.ID()] = p
		distinct = append(distinct, p)
	}
	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].ID() < distinct[j].ID()
	})
	return &Product{prims: distinct, byID: byID}
}

// Constituents returns the constituent primitives sorted by identity.
func (s *Product) Constituents() []*Primitive {
	return s.prims
}

// Contains reports whether the primitive identified by id is a constituent.
func (s *Product) Contains(id core.SpaceID) bool {
	_, ok := s.byID[id]
	return ok
}

// Belongs reports whether the outcome's key set exactly equals the
// constituent set.
func (s *Product) Belongs(o Outcome) bool {
	if len(o) != len(s.prims) {
		return false
	}
	for id := range o {
		if !s.Contains(id) {
			return false
		}
	}
	return true
}

// MeasureSingle returns the product, over every constituent, of that
// constituent's measure on the index the outcome assigns to it.
func (s *Product) MeasureSingle(o Outcome) (prob.Probability, error) {
	if !s.Belongs(o) {
		return 0, core.NewOutcomeMismatchError("outcome keys do not match product space constituents")
	}
	m := prob.Probability(1)
	for _, p := range s.prims {
		m *= p.Measure(o[p.ID()])
	}
	return m, nil
}

// RandomOutcome draws independently from each constituent and merges the
// results into one outcome.
func (s *Product) RandomOutcome(src rng.Source) Outcome {
	o := make(Outcome, len(s.prims))
	for _, p := range s.prims {
		o[p.ID()] = p.RandomOutcome(src)[p.ID()]
	}
	return o
}

// AllOutcomes materializes the full Cartesian product of every constituent's
// index range. The enumeration is exponential in the number of constituents and is
// computed once and cached.
func (s *Product) AllOutcomes() []Outcome {
	s.enumerate.Do(func() {
		s.outcomes = []Outcome{{}}
		for _, p := range s.prims {
			next := make([]Outcome, 0, len(s.outcomes)*p.Size())
			for _, partial := range s.outcomes {
				for i := 1; i <= p.Size(); i++ {
					o := make(Outcome, len(partial)+1)
					for id, idx := range partial {
						o[id] = idx
					}
					o[p.ID()] = i
					next = append(next, o)
				}
			}
			s.outcomes = next
		}
	})
	return s.outcomes
}
