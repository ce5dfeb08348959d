// Package randvar implements finite discrete random variables over the
// sample-space algebra. A variable is logically a pure function from an
// outcome of its domain space to a value; combining variables unions their
// domains, which is how dependence (shared primitives) threads through
// derived quantities without ever being recomputed or lost.
package randvar

import (
	"manydice/domain/core"
	"manydice/domain/space"
)

// AnyVariable is the type-erased view of a random variable, used where
// heterogeneous element types must travel together (RollTogether).
type AnyVariable interface {
	// Name returns the display name. Names carry no functional identity.
	Name() string

	// Space returns the variable's domain, fixed at construction.
	Space() space.SampleSpace

	evalAny(o space.Outcome) (any, error)
}

// Variable is a finite discrete random variable with element type E. The
// three implementations are the physical leaf (primitive space + evaluator),
// the mapped wrapper, and the combined pair; nothing else can implement the
// interface.
type Variable[E comparable] interface {
	AnyVariable

	// Evaluate applies the variable to an outcome of its own domain.
	// Outcomes from any other space are rejected.
	Evaluate(o space.Outcome) (E, error)

	// WithName returns an equivalent variable under a different display
	// name. Evaluation, domain and combination semantics are unchanged.
	WithName(name string) Variable[E]

	mangled(token core.MangleToken) Variable[E]
}

// Pair holds the two values a combined variable sees from its upstreams.
// Used as the intermediate element of the variadic combine forms and the
// joint re-expression behind conditional distributions.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// project filters an outcome down to the keys belonging to s. When both
// upstreams of a combined variable share a primitive, both projections pick
// up that primitive's entry from the same outer outcome, which is what keeps
// correlated values consistent.
func project(o space.Outcome, s space.SampleSpace) space.Outcome {
	sub := make(space.Outcome)
	for id, idx := range o {
		if s.Contains(id) {
			sub[id] = idx
		}
	}
	return sub
}
