package space

import (
	"manydice/domain/core"
	"manydice/domain/prob"
	"manydice/internal/rng"
)

// Primitive is the atomic sample space: the index set {1..size} with a
// single-outcome measure and a unique identity. Primitives are immutable; the
// only identity-changing operations construct a new value.
type Primitive struct {
	id      core.SpaceID
	size    int
	measure func(int) prob.Probability
}

// NewPrimitive constructs a primitive space over {1..size} with a freshly
// generated identity. Construction fails if measure is not a valid
// probability measure over that range.
func NewPrimitive(size int, measure func(int) prob.Probability) (*Primitive, error) {
	if err := prob.RequireMeasure(measure, size); err != nil {
		return nil, err
	}
	return &Primitive{id: core.NewSpaceID(), size: size, measure: measure}, nil
}

// ID returns the primitive's identity.
func (p *Primitive) ID() core.SpaceID {
	return p.id
}

// Size returns the number of outcomes.
func (p *Primitive) Size() int {
	return p.size
}

// Measure returns the probability of index i.
func (p *Primitive) Measure(i int) prob.Probability {
	return p.measure(i)
}

// Indices returns the ordered index set {1..size}.
func (p *Primitive) Indices() []int {
	out := make([]int, p.size)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// WithIdentity returns a primitive with the same size and measure under a
// different identity.
func (p *Primitive) WithIdentity(id core.SpaceID) *Primitive {
	return &Primitive{id: id, size: p.size, measure: p.measure}
}

// Mangled returns a primitive whose identity is deterministically derived
// from this one and the token. Used by the clone machinery so that one token
// remaps a whole DAG consistently.
func (p *Primitive) Mangled(token core.MangleToken) *Primitive {
	return p.WithIdentity(p.id.Mangled(token))
}

// Constituents returns the primitive itself as a singleton set.
func (p *Primitive) Constituents() []*Primitive {
	return []*Primitive{p}
}

// Contains reports whether id is this primitive's identity.
func (p *Primitive) Contains(id core.SpaceID) bool {
	return id == p.id
}

// Belongs reports whether o has exactly one key and it is this primitive.
func (p *Primitive) Belongs(o Outcome) bool {
	if len(o) != 1 {
		return false
	}
	_, ok := o[p.id]
	return ok
}

// MeasureSingle returns the measure of the index o assigns to this primitive.
func (p *Primitive) MeasureSingle(o Outcome) (prob.Probability, error) {
	if !p.Belongs(o) {
		return 0, core.NewOutcomeMismatchError("outcome keys do not match primitive space")
	}
	return p.measure(o[p.id]), nil
}

// RandomOutcome draws one uniform sample and walks the indices accumulating
// measure, returning the first index whose cumulative probability exceeds the
// sample. If floating-point rounding keeps the cumulative sum below the
// sample for every index, index 1 is the defined fallback.
func (p *Primitive) RandomOutcome(src rng.Source) Outcome {
	r := src.Float64()
	cumulative := 0.0
	for i := 1; i <= p.size; i++ {
		cumulative += float64(p.measure(i))
		if cumulative > r {
			return Outcome{p.id: i}
		}
	}
	return Outcome{p.id: 1}
}

// AllOutcomes enumerates the size singleton outcomes in index order.
func (p *Primitive) AllOutcomes() []Outcome {
	out := make([]Outcome, p.size)
	for i := 1; i <= p.size; i++ {
		out[i-1] = Outcome{p.id: i}
	}
	return out
}
