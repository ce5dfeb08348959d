package simulate

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"manydice/domain/prob"
)

// Summary holds descriptive statistics of a numeric sample.
type Summary struct {
	N      int
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes descriptive statistics over samples.
func Summarize(samples []float64) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, fmt.Errorf("cannot summarize an empty sample")
	}
	mean, err := stats.Mean(samples)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(samples)
	if err != nil {
		return Summary{}, err
	}
	sd, err := stats.StandardDeviation(samples)
	if err != nil {
		return Summary{}, err
	}
	min, err := stats.Min(samples)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(samples)
	if err != nil {
		return Summary{}, err
	}
	return Summary{N: len(samples), Mean: mean, Median: median, StdDev: sd, Min: min, Max: max}, nil
}

// GoodnessOfFit runs a chi-square test of observed counts against an exact
// probability mass function. It returns the chi-square statistic and p-value;
// a small p-value indicates the counts are unlikely under the pmf.
func GoodnessOfFit[E comparable](counts map[E]int, pmf map[E]prob.Probability) (statistic, pValue float64, err error) {
	n := 0
	for val, c := range counts {
		if _, ok := pmf[val]; !ok {
			return 0, 0, fmt.Errorf("observed value %v has zero probability under the distribution", val)
		}
		n += c
	}
	if n == 0 {
		return 0, 0, fmt.Errorf("no observations to test")
	}
	df := len(pmf) - 1
	if df < 1 {
		return 0, 0, fmt.Errorf("need at least two distinct values, got %d", len(pmf))
	}
	chi2 := 0.0
	for val, p := range pmf {
		expected := float64(p) * float64(n)
		if expected == 0 {
			continue
		}
		diff := float64(counts[val]) - expected
		chi2 += diff * diff / expected
	}
	dist := distuv.ChiSquared{K: float64(df)}
	return chi2, 1 - dist.CDF(chi2), nil
}

// IndependenceChi2 runs a chi-square test of independence on paired samples
// via their contingency table. A large p-value is consistent with the two
// variables being independent; a deterministic relationship drives the
// p-value to zero.
func IndependenceChi2[A, B comparable](xs []A, ys []B) (statistic, pValue float64, err error) {
	if len(xs) != len(ys) {
		return 0, 0, fmt.Errorf("paired samples differ in length: %d vs %d", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return 0, 0, fmt.Errorf("no observations to test")
	}

	rowTotals := make(map[A]int)
	colTotals := make(map[B]int)
	cells := make(map[A]map[B]int)
	for i := range xs {
		rowTotals[xs[i]]++
		colTotals[ys[i]]++
		if cells[xs[i]] == nil {
			cells[xs[i]] = make(map[B]int)
		}
		cells[xs[i]][ys[i]]++
	}
	df := (len(rowTotals) - 1) * (len(colTotals) - 1)
	if df < 1 {
		return 0, 0, fmt.Errorf("contingency table is degenerate")
	}

	n := float64(len(xs))
	chi2 := 0.0
	for r, rt := range rowTotals {
		for c, ct := range colTotals {
			expected := float64(rt) * float64(ct) / n
			diff := float64(cells[r][c]) - expected
			chi2 += diff * diff / expected
		}
	}
	dist := distuv.ChiSquared{K: float64(df)}
	return chi2, 1 - dist.CDF(chi2), nil
}
