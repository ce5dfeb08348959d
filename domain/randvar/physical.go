package randvar

import (
	"manydice/domain/core"
	"manydice/domain/prob"
	"manydice/domain/space"
)

// physical is the only leaf variable: a primitive space plus an evaluator
// from index to value.
type physical[E comparable] struct {
	name string
	prim *space.Primitive
	eval func(index int) E
}

// NewPhysical constructs a physical random variable over prim. The evaluator
// receives indices in {1..prim.Size()}.
func NewPhysical[E comparable](name string, prim *space.Primitive, eval func(index int) E) Variable[E] {
	return &physical[E]{name: name, prim: prim, eval: eval}
}

// New constructs a physical random variable from scratch: a fresh primitive
// space of the given size and measure, plus an evaluator. This is the
// construction the convenience layer (dice builders) sits on.
func New[E comparable](name string, size int, measure func(int) prob.Probability, eval func(index int) E) (Variable[E], error) {
	prim, err := space.NewPrimitive(size, measure)
	if err != nil {
		return nil, err
	}
	return NewPhysical(name, prim, eval), nil
}

// FromPMF builds a physical variable realizing the given probability mass
// function: a fresh primitive space with one index per distinct key, measured
// by the key's probability. The key enumeration order is captured once at
// construction and fixed for the life of the variable. This is the canonical
// weighted-die constructor and the target of ForgetDependencies.
func FromPMF[E comparable](name string, pmf map[E]prob.Probability) (Variable[E], error) {
	if len(pmf) == 0 {
		return nil, core.ErrEmptyPMF
	}
	values := make([]E, 0, len(pmf))
	masses := make([]prob.Probability, 0, len(pmf))
	for v, p := range pmf {
		values = append(values, v)
		masses = append(masses, p)
	}
	return FromDistribution(name, values, masses)
}

// FromDistribution builds a physical variable taking values[i-1] with
// probability masses[i-1]. Unlike FromPMF the enumeration order is the
// caller's, so the underlying primitive space is fully deterministic.
func FromDistribution[E comparable](name string, values []E, masses []prob.Probability) (Variable[E], error) {
	if len(values) == 0 {
		return nil, core.ErrEmptyPMF
	}
	if len(values) != len(masses) {
		return nil, core.NewMeasureError("values and masses must have equal length")
	}
	prim, err := space.NewPrimitive(len(values), func(i int) prob.Probability {
		return masses[i-1]
	})
	if err != nil {
		return nil, err
	}
	return NewPhysical(name, prim, func(i int) E {
		return values[i-1]
	}), nil
}

func (v *physical[E]) Name() string {
	return v.name
}

func (v *physical[E]) Space() space.SampleSpace {
	return v.prim
}

func (v *physical[E]) Evaluate(o space.Outcome) (E, error) {
	if !v.prim.Belongs(o) {
		var zero E
		return zero, core.NewOutcomeMismatchError("evaluating " + v.name)
	}
	return v.eval(o[v.prim.ID()]), nil
}

func (v *physical[E]) evalAny(o space.Outcome) (any, error) {
	return v.Evaluate(o)
}

func (v *physical[E]) WithName(name string) Variable[E] {
	return &physical[E]{name: name, prim: v.prim, eval: v.eval}
}

func (v *physical[E]) mangled(token core.MangleToken) Variable[E] {
	return &physical[E]{name: v.name, prim: v.prim.Mangled(token), eval: v.eval}
}
