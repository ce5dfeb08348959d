package randvar

import (
	"manydice/domain/core"
	"manydice/domain/space"
)

// mapped wraps one upstream variable with a pure mapping over its values. The
// domain is the upstream's domain unchanged.
type mapped[E, R comparable] struct {
	name     string
	upstream Variable[E]
	fn       func(E) R
}

// Map derives a variable by applying fn to every value of v. Dependence is
// preserved exactly: the result's domain is v's domain.
func Map[E, R comparable](v Variable[E], name string, fn func(E) R) Variable[R] {
	return &mapped[E, R]{name: name, upstream: v, fn: fn}
}

func (v *mapped[E, R]) Name() string {
	return v.name
}

func (v *mapped[E, R]) Space() space.SampleSpace {
	return v.upstream.Space()
}

func (v *mapped[E, R]) Evaluate(o space.Outcome) (R, error) {
	e, err := v.upstream.Evaluate(o)
	if err != nil {
		var zero R
		return zero, err
	}
	return v.fn(e), nil
}

func (v *mapped[E, R]) evalAny(o space.Outcome) (any, error) {
	return v.Evaluate(o)
}

func (v *mapped[E, R]) WithName(name string) Variable[R] {
	return &mapped[E, R]{name: name, upstream: v.upstream, fn: v.fn}
}

func (v *mapped[E, R]) mangled(token core.MangleToken) Variable[R] {
	return &mapped[E, R]{name: v.name, upstream: v.upstream.mangled(token), fn: v.fn}
}

// combined pairs two upstream variables under a combining function. The
// domain is the combination of both upstream domains, so any primitive shared
// by the upstreams appears once and correlates their values.
type combined[A, B, R comparable] struct {
	name   string
	left   Variable[A]
	right  Variable[B]
	fn     func(A, B) R
	domain space.SampleSpace
}

// Combine derives a variable from a pair of variables and a combining
// function. The two inputs may be dependent or independent; the joined domain
// carries whichever structure they actually have.
func Combine[A, B, R comparable](a Variable[A], b Variable[B], name string, fn func(A, B) R) Variable[R] {
	return &combined[A, B, R]{
		name:   name,
		left:   a,
		right:  b,
		fn:     fn,
		domain: space.Combine(a.Space(), b.Space()),
	}
}

// Combine3 joins three variables. Implemented by nested pairwise combination,
// which keeps every primitive shared across any of the operands shared in the
// result.
func Combine3[A, B, C, R comparable](a Variable[A], b Variable[B], c Variable[C], name string, fn func(A, B, C) R) Variable[R] {
	ab := Combine(a, b, name, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{First: x, Second: y}
	})
	return Combine(ab, c, name, func(p Pair[A, B], z C) R {
		return fn(p.First, p.Second, z)
	})
}

// Combine4 joins four variables, see Combine3.
func Combine4[A, B, C, D, R comparable](a Variable[A], b Variable[B], c Variable[C], d Variable[D], name string, fn func(A, B, C, D) R) Variable[R] {
	abc := Combine3(a, b, c, name, func(x A, y B, z C) Pair[Pair[A, B], C] {
		return Pair[Pair[A, B], C]{First: Pair[A, B]{First: x, Second: y}, Second: z}
	})
	return Combine(abc, d, name, func(p Pair[Pair[A, B], C], w D) R {
		return fn(p.First.First, p.First.Second, p.Second, w)
	})
}

// Combine5 joins five variables, see Combine3.
func Combine5[A, B, C, D, E, R comparable](a Variable[A], b Variable[B], c Variable[C], d Variable[D], e Variable[E], name string, fn func(A, B, C, D, E) R) Variable[R] {
	abcd := Combine4(a, b, c, d, name, func(x A, y B, z C, w D) Pair[Pair[A, B], Pair[C, D]] {
		return Pair[Pair[A, B], Pair[C, D]]{
			First:  Pair[A, B]{First: x, Second: y},
			Second: Pair[C, D]{First: z, Second: w},
		}
	})
	return Combine(abcd, e, name, func(p Pair[Pair[A, B], Pair[C, D]], u E) R {
		return fn(p.First.First, p.First.Second, p.Second.First, p.Second.Second, u)
	})
}

func (v *combined[A, B, R]) Name() string {
	return v.name
}

func (v *combined[A, B, R]) Space() space.SampleSpace {
	return v.domain
}

// Evaluate projects the outcome onto each upstream's own domain, evaluates
// both projections, and applies the combining function. Projection from one
// shared outer outcome is what guarantees consistent values on shared
// primitives.
func (v *combined[A, B, R]) Evaluate(o space.Outcome) (R, error) {
	var zero R
	if !v.domain.Belongs(o) {
		return zero, core.NewOutcomeMismatchError("evaluating " + v.name)
	}
	a, err := v.left.Evaluate(project(o, v.left.Space()))
	if err != nil {
		return zero, err
	}
	b, err := v.right.Evaluate(project(o, v.right.Space()))
	if err != nil {
		return zero, err
	}
	return v.fn(a, b), nil
}

func (v *combined[A, B, R]) evalAny(o space.Outcome) (any, error) {
	return v.Evaluate(o)
}

func (v *combined[A, B, R]) WithName(name string) Variable[R] {
	return &combined[A, B, R]{name: name, left: v.left, right: v.right, fn: v.fn, domain: v.domain}
}

func (v *combined[A, B, R]) mangled(token core.MangleToken) Variable[R] {
	// Rebuilding through Combine recomputes the joined domain over the
	// mangled upstreams; the deterministic token keeps primitives shared by
	// both sides identical after remapping.
	return Combine(v.left.mangled(token), v.right.mangled(token), v.name, v.fn)
}
