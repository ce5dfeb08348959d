// Package prob defines the probability scalar and the validation rules every
// sample-space measure must satisfy.
package prob

import (
	"fmt"
	"math"

	"manydice/domain/core"
)

// Probability is a probability mass in [0,1]. Values are never normalized
// automatically; each component measure must be valid on its own.
type Probability float64

// Tolerance is the fixed threshold under which two probabilities are
// considered equal. All probability comparisons go through Equal rather than
// exact float equality.
const Tolerance = 1e-7

// Equal reports whether two probabilities differ by less than Tolerance.
func Equal(a, b Probability) bool {
	return math.Abs(float64(a)-float64(b)) < Tolerance
}

// IsMeasure reports whether measure is a valid single-outcome probability
// measure over the index range {1..size}: every value in [0,1] and the total
// equal to 1 within Tolerance. It fails fast on the first out-of-range value.
func IsMeasure(measure func(int) Probability, size int) bool {
	if size < 1 {
		return false
	}
	total := Probability(0)
	for i := 1; i <= size; i++ {
		p := measure(i)
		if p < 0 || p > 1 || math.IsNaN(float64(p)) {
			return false
		}
		total += p
	}
	return Equal(total, 1)
}

// RequireMeasure validates measure over {1..size} and returns a measure error
// describing the first violation found.
func RequireMeasure(measure func(int) Probability, size int) error {
	if size < 1 {
		return core.NewMeasureError(fmt.Sprintf("size must be at least 1, got %d", size))
	}
	total := Probability(0)
	for i := 1; i <= size; i++ {
		p := measure(i)
		if p < 0 || p > 1 || math.IsNaN(float64(p)) {
			return core.NewMeasureError(fmt.Sprintf("probability %v at index %d outside [0,1]", p, i))
		}
		total += p
	}
	if !Equal(total, 1) {
		return core.NewMeasureError(fmt.Sprintf("probabilities sum to %v, want 1", total))
	}
	return nil
}
