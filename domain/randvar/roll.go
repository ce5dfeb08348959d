package randvar

import (
	"manydice/domain/space"
	"manydice/internal/rng"
)

// RollAlone draws one random outcome from v's domain and evaluates it. This
// observes v in isolation; separate RollAlone calls on dependent variables do
// not see a common outcome and must not be expected to be consistent.
func RollAlone[E comparable](v Variable[E]) (E, error) {
	return RollAloneWith(v, rng.Default)
}

// RollAloneWith is RollAlone with an explicit randomness source.
func RollAloneWith[E comparable](v Variable[E], src rng.Source) (E, error) {
	return v.Evaluate(v.Space().RandomOutcome(src))
}

// RollTogether folds all listed variables' domains into one joint space,
// draws a single outcome from it, and evaluates every variable on its own
// projection of that outcome. All returned values therefore come from the
// same draw, which is the consistency guarantee separate RollAlone calls
// cannot offer for dependent variables. Results align with the input order;
// an empty list yields an empty result.
func RollTogether(vs ...AnyVariable) ([]any, error) {
	return RollTogetherWith(rng.Default, vs...)
}

// RollTogetherWith is RollTogether with an explicit randomness source.
func RollTogetherWith(src rng.Source, vs ...AnyVariable) ([]any, error) {
	if len(vs) == 0 {
		return nil, nil
	}
	joint := vs[0].Space()
	for _, v := range vs[1:] {
		joint = space.Combine(joint, v.Space())
	}
	o := joint.RandomOutcome(src)
	values := make([]any, len(vs))
	for i, v := range vs {
		val, err := v.evalAny(project(o, v.Space()))
		if err != nil {
			return nil, err
		}
		values[i] = val
	}
	return values, nil
}

// RollTogether2 is the typed two-variable form.
func RollTogether2[A, B comparable](a Variable[A], b Variable[B]) (A, B, error) {
	return RollTogether2With(rng.Default, a, b)
}

// RollTogether2With is RollTogether2 with an explicit randomness source.
func RollTogether2With[A, B comparable](src rng.Source, a Variable[A], b Variable[B]) (A, B, error) {
	vals, err := RollTogetherWith(src, a, b)
	if err != nil {
		var za A
		var zb B
		return za, zb, err
	}
	return vals[0].(A), vals[1].(B), nil
}

// RollTogether3 is the typed three-variable form.
func RollTogether3[A, B, C comparable](a Variable[A], b Variable[B], c Variable[C]) (A, B, C, error) {
	return RollTogether3With(rng.Default, a, b, c)
}

// RollTogether3With is RollTogether3 with an explicit randomness source.
func RollTogether3With[A, B, C comparable](src rng.Source, a Variable[A], b Variable[B], c Variable[C]) (A, B, C, error) {
	vals, err := RollTogetherWith(src, a, b, c)
	if err != nil {
		var za A
		var zb B
		var zc C
		return za, zb, zc, err
	}
	return vals[0].(A), vals[1].(B), vals[2].(C), nil
}

// RollTogether4 is the typed four-variable form.
func RollTogether4[A, B, C, D comparable](a Variable[A], b Variable[B], c Variable[C], d Variable[D]) (A, B, C, D, error) {
	return RollTogether4With(rng.Default, a, b, c, d)
}

// RollTogether4With is RollTogether4 with an explicit randomness source.
func RollTogether4With[A, B, C, D comparable](src rng.Source, a Variable[A], b Variable[B], c Variable[C], d Variable[D]) (A, B, C, D, error) {
	vals, err := RollTogetherWith(src, a, b, c, d)
	if err != nil {
		var za A
		var zb B
		var zc C
		var zd D
		return za, zb, zc, zd, err
	}
	return vals[0].(A), vals[1].(B), vals[2].(C), vals[3].(D), nil
}
