// Package simulate runs Monte Carlo trials against random variables and
// checks empirical results against exact distributions. The core evaluation
// model stays single-threaded and pure; only independent trials are fanned
// out, each worker holding its own seeded randomness source.
package simulate

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"manydice/domain/randvar"
	"manydice/internal/rng"
)

// Trials rolls v alone n times and returns a count per observed value.
// Workers <= 0 uses one worker per available CPU. Counts are deterministic
// for a fixed (n, workers, seed) triple.
func Trials[E comparable](v randvar.Variable[E], n, workers int, seed uint64) (map[E]int, error) {
	if n <= 0 {
		return map[E]int{}, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	var mu sync.Mutex
	counts := make(map[E]int)
	var g errgroup.Group
	per := n / workers
	extra := n % workers
	for w := 0; w < workers; w++ {
		quota := per
		if w < extra {
			quota++
		}
		src := rng.New(seed + uint64(w))
		g.Go(func() error {
			local := make(map[E]int)
			for i := 0; i < quota; i++ {
				val, err := randvar.RollAloneWith(v, src)
				if err != nil {
					return fmt.Errorf("trial roll failed: %w", err)
				}
				local[val]++
			}
			mu.Lock()
			for val, c := range local {
				counts[val] += c
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

// Samples rolls v alone n times sequentially with one seeded source and
// returns the values in draw order. Use this when the order of draws matters,
// e.g. for pairing with draws of another variable.
func Samples[E comparable](v randvar.Variable[E], n int, seed uint64) ([]E, error) {
	src := rng.New(seed)
	out := make([]E, 0, n)
	for i := 0; i < n; i++ {
		val, err := randvar.RollAloneWith(v, src)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	return out, nil
}

// PairedSamples draws n joint observations of (a, b), each pair coming from a
// single outcome of the combined space, so dependence between a and b is
// visible in the result.
func PairedSamples[A, B comparable](a randvar.Variable[A], b randvar.Variable[B], n int, seed uint64) ([]A, []B, error) {
	src := rng.New(seed)
	xs := make([]A, 0, n)
	ys := make([]B, 0, n)
	for i := 0; i < n; i++ {
		x, y, err := randvar.RollTogether2With(src, a, b)
		if err != nil {
			return nil, nil, err
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, nil
}
