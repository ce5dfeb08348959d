package randvar

import (
	"manydice/domain/core"
)

// Clone deep-copies v's whole upstream structure under a freshly generated
// mangle token. The clone has the same distribution as v, preserves v's
// internal dependency structure (primitives shared inside v stay shared
// inside the clone), and shares no primitive with v or anything else.
func Clone[E comparable](v Variable[E]) Variable[E] {
	return CloneWith(v, core.NewMangleToken())
}

// CloneWith clones under a caller-supplied token. Cloning several variables
// with one shared token preserves the dependency structure among them: two
// variables that shared a primitive before cloning share the corresponding
// mangled primitive after.
func CloneWith[E comparable](v Variable[E], token core.MangleToken) Variable[E] {
	return v.mangled(token)
}

// ForgetDependencies discards v's internal structure, returning a fresh
// physical variable with the same marginal distribution over a single new
// primitive space. The result is strictly decorrelated from everything,
// including v's own former upstreams. Calling this periodically is the way to
// bound the exponential growth of enumeration when many independent
// variables are combined.
func ForgetDependencies[E comparable](v Variable[E]) (Variable[E], error) {
	masses, err := PMF(v)
	if err != nil {
		return nil, err
	}
	return FromPMF(v.Name(), masses)
}
