// Package dice is the convenience layer over the random-variable core: named
// constructors for common dice and coins plus generic arithmetic and
// comparison combinators. Everything here is a thin wrapper over the public
// contract of domain/randvar.
package dice

import (
	"fmt"

	"manydice/domain/core"
	"manydice/domain/prob"
	"manydice/domain/randvar"
)

// Fair returns a fair die with the given number of sides, taking values
// 1..sides with uniform probability.
func Fair(sides int) (randvar.Variable[int], error) {
	if sides < 1 {
		return nil, fmt.Errorf("%w: need at least 1 side, got %d", core.ErrInvalidDie, sides)
	}
	uniform := prob.Probability(1) / prob.Probability(sides)
	return randvar.New(fmt.Sprintf("d%d", sides), sides,
		func(int) prob.Probability { return uniform },
		func(i int) int { return i })
}

// Coin returns a fair two-sided coin over bool.
func Coin() (randvar.Variable[bool], error) {
	return WeightedCoin(0.5)
}

// WeightedCoin returns a coin landing true with probability heads.
func WeightedCoin(heads prob.Probability) (randvar.Variable[bool], error) {
	return randvar.FromDistribution("coin",
		[]bool{true, false},
		[]prob.Probability{heads, 1 - heads})
}

// Weighted returns an arbitrary weighted die from a value-to-probability map.
func Weighted[E comparable](name string, pmf map[E]prob.Probability) (randvar.Variable[E], error) {
	return randvar.FromPMF(name, pmf)
}

// FairSum returns the sum of n independent fair dice with the given number of
// sides, e.g. FairSum(2, 6) is the classic 2d6 total.
func FairSum(n, sides int) (randvar.Variable[int], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least 1 die, got %d", core.ErrInvalidDie, n)
	}
	total, err := Fair(sides)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		die, err := Fair(sides)
		if err != nil {
			return nil, err
		}
		total = Add(total, die)
	}
	return total.WithName(fmt.Sprintf("%dd%d", n, sides)), nil
}
