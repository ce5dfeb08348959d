package randvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manydice/domain/core"
	"manydice/domain/prob"
	"manydice/domain/space"
)

func assertPMF[E comparable](t *testing.T, got map[E]prob.Probability, want map[E]prob.Probability) {
	t.Helper()
	require.Len(t, got, len(want))
	for value, p := range want {
		assert.InDelta(t, float64(p), float64(got[value]), prob.Tolerance, "value %v", value)
	}
}

func TestPMFSingleDie(t *testing.T) {
	die := fairDie(t, 6)
	masses, err := PMF(die)
	require.NoError(t, err)

	want := make(map[int]prob.Probability)
	for i := 1; i <= 6; i++ {
		want[i] = 1.0 / 6
	}
	assertPMF(t, masses, want)
}

func TestPMFSumsToOne(t *testing.T) {
	x := fairDie(t, 6)
	y := fairDie(t, 4)
	z := Combine(x, y, "sum", func(a, b int) int { return a + b })

	masses, err := PMF(z)
	require.NoError(t, err)

	total := prob.Probability(0)
	for _, p := range masses {
		total += p
	}
	assert.True(t, prob.Equal(total, 1))
}

func TestPMFTwoFairDiceSum(t *testing.T) {
	x := fairDie(t, 6)
	y := fairDie(t, 6)
	sum := Combine(x, y, "2d6", func(a, b int) int { return a + b })

	masses, err := PMF(sum)
	require.NoError(t, err)

	assertPMF(t, masses, map[int]prob.Probability{
		2: 1.0 / 36, 3: 2.0 / 36, 4: 3.0 / 36, 5: 4.0 / 36, 6: 5.0 / 36,
		7: 6.0 / 36,
		8: 5.0 / 36, 9: 4.0 / 36, 10: 3.0 / 36, 11: 2.0 / 36, 12: 1.0 / 36,
	})
}

func TestIndependentJointPMFFactorizes(t *testing.T) {
	// Two fair coins built from disjoint primitives: the joint PMF must be
	// the product of the marginals, 0.25 per pair.
	heads, err := FromDistribution("coin a", []bool{true, false}, []prob.Probability{0.5, 0.5})
	require.NoError(t, err)
	tails, err := FromDistribution("coin b", []bool{true, false}, []prob.Probability{0.5, 0.5})
	require.NoError(t, err)

	joint := Combine(heads, tails, "joint", func(a, b bool) Pair[bool, bool] {
		return Pair[bool, bool]{First: a, Second: b}
	})
	masses, err := PMF(joint)
	require.NoError(t, err)

	require.Len(t, masses, 4)
	for _, p := range masses {
		assert.InDelta(t, 0.25, float64(p), prob.Tolerance)
	}
}

func TestDependentJointPMFDoesNotFactorize(t *testing.T) {
	x := fairDie(t, 2)
	same := Combine(x, x, "pair of same die", func(a, b int) Pair[int, int] {
		return Pair[int, int]{First: a, Second: b}
	})
	masses, err := PMF(same)
	require.NoError(t, err)

	// Only the diagonal carries mass.
	assertPMF(t, masses, map[Pair[int, int]]prob.Probability{
		{First: 1, Second: 1}: 0.5,
		{First: 2, Second: 2}: 0.5,
	})
}

func TestToEvent(t *testing.T) {
	die := fairDie(t, 6)
	ev, err := ToEvent(die, func(v int) bool { return v > 4 })
	require.NoError(t, err)
	require.Len(t, ev, 2)

	m, err := space.MeasureEvent(die.Space(), ev)
	require.NoError(t, err)
	assert.True(t, prob.Equal(m, prob.Probability(1.0/3)))
}

func TestConditionalPMFGivenEvent(t *testing.T) {
	die := fairDie(t, 6)
	ev, err := ToEvent(die, func(v int) bool { return v >= 5 })
	require.NoError(t, err)

	masses, err := ConditionalPMF(die, ev)
	require.NoError(t, err)
	assertPMF(t, masses, map[int]prob.Probability{5: 0.5, 6: 0.5})
}

func TestConditionalPMFRejectsForeignEvent(t *testing.T) {
	die := fairDie(t, 6)
	other := fairDie(t, 6)
	ev, err := ToEvent(other, func(v int) bool { return v > 3 })
	require.NoError(t, err)

	_, err = ConditionalPMF(die, ev)
	assert.True(t, core.IsOutcomeMismatchError(err))
}

func TestConditionalPMFZeroProbabilityEventFails(t *testing.T) {
	die := fairDie(t, 6)
	ev, err := ToEvent(die, func(v int) bool { return v > 6 })
	require.NoError(t, err)
	require.Empty(t, ev)

	_, err = ConditionalPMF(die, ev)
	assert.True(t, core.IsDegenerateConditionError(err), "zero-probability conditioning is an explicit failure, not NaN")
}

func TestConditionalPMFOnDerivedVariable(t *testing.T) {
	x := fairDie(t, 6)
	y := fairDie(t, 6)
	z := Combine(x, y, "x + y", func(a, b int) int { return a + b })

	// z > 10 leaves (x, y) in {(5,6), (6,5), (6,6)}, so x is 5 with
	// probability 1/3 and 6 with probability 2/3.
	masses, err := ConditionalPMFOn(x, z, func(total int) bool { return total > 10 })
	require.NoError(t, err)
	assertPMF(t, masses, map[int]prob.Probability{
		5: 1.0 / 3,
		6: 2.0 / 3,
	})
}

func TestConditionalPMFOnIndependentVariable(t *testing.T) {
	// Conditioning on an unrelated variable changes nothing: joining on
	// demand creates the joint space but no correlation exists.
	x := fairDie(t, 6)
	w := fairDie(t, 6)

	masses, err := ConditionalPMFOn(x, w, func(v int) bool { return v > 3 })
	require.NoError(t, err)

	want := make(map[int]prob.Probability)
	for i := 1; i <= 6; i++ {
		want[i] = 1.0 / 6
	}
	assertPMF(t, masses, want)
}

func TestConditionalPMFOnImpossibleConditionFails(t *testing.T) {
	x := fairDie(t, 6)
	y := fairDie(t, 6)
	z := Combine(x, y, "x + y", func(a, b int) int { return a + b })

	_, err := ConditionalPMFOn(x, z, func(total int) bool { return total > 12 })
	assert.True(t, core.IsDegenerateConditionError(err))
}

func TestFromPMF(t *testing.T) {
	weighted, err := FromPMF("loaded", map[string]prob.Probability{
		"win":  0.7,
		"lose": 0.3,
	})
	require.NoError(t, err)

	masses, err := PMF(weighted)
	require.NoError(t, err)
	assertPMF(t, masses, map[string]prob.Probability{"win": 0.7, "lose": 0.3})

	require.Len(t, weighted.Space().Constituents(), 1)
	assert.Equal(t, 2, weighted.Space().Constituents()[0].Size())
}

func TestFromPMFRejectsInvalidInput(t *testing.T) {
	_, err := FromPMF("empty", map[int]prob.Probability{})
	assert.ErrorIs(t, err, core.ErrEmptyPMF)

	_, err = FromPMF("unnormalized", map[int]prob.Probability{1: 0.5, 2: 0.6})
	assert.True(t, core.IsMeasureError(err))

	_, err = FromDistribution("mismatched", []int{1, 2}, []prob.Probability{1})
	assert.True(t, core.IsMeasureError(err))
}
