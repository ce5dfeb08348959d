package randvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manydice/domain/core"
	"manydice/domain/prob"
	"manydice/domain/space"
	"manydice/internal/rng"
)

func fairDie(t *testing.T, sides int) Variable[int] {
	t.Helper()
	v, err := New("die", sides,
		func(int) prob.Probability { return 1 / prob.Probability(sides) },
		func(i int) int { return i })
	require.NoError(t, err)
	return v
}

func primitiveOf(t *testing.T, v AnyVariable) *space.Primitive {
	t.Helper()
	prims := v.Space().Constituents()
	require.Len(t, prims, 1)
	return prims[0]
}

func TestPhysicalEvaluate(t *testing.T) {
	die := fairDie(t, 6)
	prim := primitiveOf(t, die)

	value, err := die.Evaluate(space.Outcome{prim.ID(): 4})
	require.NoError(t, err)
	assert.Equal(t, 4, value)
}

func TestEvaluateRejectsForeignOutcome(t *testing.T) {
	die := fairDie(t, 6)
	other := fairDie(t, 6)

	_, err := die.Evaluate(space.Outcome{primitiveOf(t, other).ID(): 4})
	assert.True(t, core.IsOutcomeMismatchError(err))

	_, err = die.Evaluate(space.Outcome{})
	assert.True(t, core.IsOutcomeMismatchError(err))
}

func TestMapKeepsDomain(t *testing.T) {
	die := fairDie(t, 6)
	double := Map(die, "double", func(x int) int { return 2 * x })

	assert.Same(t, die.Space(), double.Space())

	prim := primitiveOf(t, die)
	value, err := double.Evaluate(space.Outcome{prim.ID(): 3})
	require.NoError(t, err)
	assert.Equal(t, 6, value)
}

func TestCombineDisjointDomains(t *testing.T) {
	x := fairDie(t, 6)
	y := fairDie(t, 6)
	sum := Combine(x, y, "x + y", func(a, b int) int { return a + b })

	require.Len(t, sum.Space().Constituents(), 2)

	o := space.Outcome{
		primitiveOf(t, x).ID(): 2,
		primitiveOf(t, y).ID(): 5,
	}
	value, err := sum.Evaluate(o)
	require.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestCombineSharedPrimitiveStaysCorrelated(t *testing.T) {
	x := fairDie(t, 6)
	// x + x references the same die twice: one primitive, values doubled.
	sum := Combine(x, x, "x + x", func(a, b int) int { return a + b })

	require.Len(t, sum.Space().Constituents(), 1)

	prim := primitiveOf(t, x)
	for i := 1; i <= 6; i++ {
		value, err := sum.Evaluate(space.Outcome{prim.ID(): i})
		require.NoError(t, err)
		assert.Equal(t, 2*i, value, "both projections must see the same entry")
	}
}

func TestCombinedEvaluateProjectsOntoUpstreams(t *testing.T) {
	x := fairDie(t, 6)
	y := fairDie(t, 6)
	sum := Combine(x, y, "x + y", func(a, b int) int { return a + b })
	// (x + y) - x shares x's primitive between both operands.
	diff := Combine(sum, x, "(x + y) - x", func(s, a int) int { return s - a })

	require.Len(t, diff.Space().Constituents(), 2)

	o := space.Outcome{
		primitiveOf(t, x).ID(): 4,
		primitiveOf(t, y).ID(): 1,
	}
	value, err := diff.Evaluate(o)
	require.NoError(t, err)
	assert.Equal(t, 1, value, "(x + y) - x must recover y exactly")
}

func TestCombine3PreservesSharedStructure(t *testing.T) {
	x := fairDie(t, 6)
	y := fairDie(t, 6)
	// x appears twice across the three operands.
	triple := Combine3(x, y, x, "x + y - x", func(a, b, c int) int { return a + b - c })

	require.Len(t, triple.Space().Constituents(), 2)

	o := space.Outcome{
		primitiveOf(t, x).ID(): 5,
		primitiveOf(t, y).ID(): 3,
	}
	value, err := triple.Evaluate(o)
	require.NoError(t, err)
	assert.Equal(t, 3, value)
}

func TestCombine5(t *testing.T) {
	dies := make([]Variable[int], 5)
	o := space.Outcome{}
	want := 0
	for i := range dies {
		dies[i] = fairDie(t, 6)
		o[primitiveOf(t, dies[i]).ID()] = i + 1
		want += i + 1
	}
	total := Combine5(dies[0], dies[1], dies[2], dies[3], dies[4], "total",
		func(a, b, c, d, e int) int { return a + b + c + d + e })

	require.Len(t, total.Space().Constituents(), 5)
	value, err := total.Evaluate(o)
	require.NoError(t, err)
	assert.Equal(t, want, value)
}

func TestWithNameDoesNotChangeSemantics(t *testing.T) {
	x := fairDie(t, 6)
	y := fairDie(t, 6)
	sum := Combine(x, y, "sum", func(a, b int) int { return a + b })
	renamed := sum.WithName("something else")

	assert.Equal(t, "something else", renamed.Name())
	assert.Same(t, sum.Space(), renamed.Space())

	before, err := PMF(sum)
	require.NoError(t, err)
	after, err := PMF(renamed)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for v, p := range before {
		assert.True(t, prob.Equal(p, after[v]))
	}
}

func TestRollAloneReturnsPMFKey(t *testing.T) {
	x := fairDie(t, 6)
	y := fairDie(t, 4)
	sum := Combine(x, y, "sum", func(a, b int) int { return a + b })

	masses, err := PMF(sum)
	require.NoError(t, err)

	src := rng.New(11)
	for i := 0; i < 200; i++ {
		value, err := RollAloneWith(sum, src)
		require.NoError(t, err)
		assert.Contains(t, masses, value)
	}
}

func TestRollTogetherConsistency(t *testing.T) {
	x := fairDie(t, 6)
	y := fairDie(t, 6)
	z := Combine(x, y, "x + y", func(a, b int) int { return a + b })

	src := rng.New(23)
	for i := 0; i < 500; i++ {
		a, b, c, err := RollTogether3With(src, x, y, z)
		require.NoError(t, err)
		assert.Equal(t, a+b, c, "joint roll must satisfy the defining relation every draw")
	}
}

func TestRollTogetherEmpty(t *testing.T) {
	values, err := RollTogether()
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestRollTogetherAlignsWithInputOrder(t *testing.T) {
	x := fairDie(t, 6)
	double := Map(x, "2x", func(v int) int { return 2 * v })

	values, err := RollTogetherWith(rng.New(5), x, double)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, 2*values[0].(int), values[1].(int))
}
