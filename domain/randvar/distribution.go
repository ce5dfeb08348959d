package randvar

import (
	"manydice/domain/core"
	"manydice/domain/prob"
	"manydice/domain/space"
)

// PMF enumerates every outcome of v's domain, evaluates it, and accumulates
// probability mass per resulting value. The enumeration is exponential in the
// number of distinct primitives in the domain; combining many independent
// variables without ForgetDependencies makes this impractical past a handful
// of dice.
func PMF[E comparable](v Variable[E]) (map[E]prob.Probability, error) {
	s := v.Space()
	masses := make(map[E]prob.Probability)
	for _, o := range s.AllOutcomes() {
		m, err := s.MeasureSingle(o)
		if err != nil {
			return nil, err
		}
		val, err := v.Evaluate(o)
		if err != nil {
			return nil, err
		}
		masses[val] += m
	}
	return masses, nil
}

// ToEvent returns the event of all outcomes in v's domain whose evaluation
// satisfies pred. The event is over v's own domain space.
func ToEvent[E comparable](v Variable[E], pred func(E) bool) (space.Event, error) {
	var ev space.Event
	for _, o := range v.Space().AllOutcomes() {
		val, err := v.Evaluate(o)
		if err != nil {
			return nil, err
		}
		if pred(val) {
			ev = append(ev, o)
		}
	}
	return ev, nil
}

// ConditionalPMF computes the distribution of v restricted to and rescaled
// within the given event. Every outcome of the event must belong to v's
// domain. Conditioning on an event of zero total probability is an explicit
// failure rather than a silent NaN-filled map.
func ConditionalPMF[E comparable](v Variable[E], ev space.Event) (map[E]prob.Probability, error) {
	s := v.Space()
	for _, o := range ev {
		if !s.Belongs(o) {
			return nil, core.NewOutcomeMismatchError("conditioning event outcome outside domain of " + v.Name())
		}
	}
	total, err := space.MeasureEvent(s, ev)
	if err != nil {
		return nil, err
	}
	if prob.Equal(total, 0) {
		return nil, core.NewDegenerateConditionError("conditioning " + v.Name())
	}
	masses := make(map[E]prob.Probability)
	for _, o := range ev {
		m, err := s.MeasureSingle(o)
		if err != nil {
			return nil, err
		}
		val, err := v.Evaluate(o)
		if err != nil {
			return nil, err
		}
		masses[val] += m / total
	}
	return masses, nil
}

// ConditionalPMFOn computes the distribution of v given that cond holds on
// other. Both variables are re-expressed as projections of their joint
// combination so they share one sample space; the condition then becomes an
// ordinary event over that space. This works whether or not v and other were
// constructed with any shared structure: joining them on demand creates
// exactly the correlation needed to condition correctly.
func ConditionalPMFOn[E, C comparable](v Variable[E], other Variable[C], cond func(C) bool) (map[E]prob.Probability, error) {
	joint := Combine(v, other, v.Name(), func(a E, b C) Pair[E, C] {
		return Pair[E, C]{First: a, Second: b}
	})
	self := Map(joint, v.Name(), func(p Pair[E, C]) E {
		return p.First
	})
	projected := Map(joint, other.Name(), func(p Pair[E, C]) C {
		return p.Second
	})
	ev, err := ToEvent(projected, cond)
	if err != nil {
		return nil, err
	}
	return ConditionalPMF(self, ev)
}
