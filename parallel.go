package aoc

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelSum splits in into one chunk per worker, applies f to every
// element and returns the total. If workers <= 0, GOMAXPROCS workers are
// used. The first error returned by f is returned and the sum discarded.
func ParallelSum[I any, N Number](in []I, workers int, f func(I) (N, error)) (N, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if len(in) == 0 {
		return 0, nil
	}
	chunk := (len(in) + workers - 1) / workers
	sums := make([]N, (len(in)+chunk-1)/chunk)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range sums {
		part := in[i*chunk : min((i+1)*chunk, len(in))]
		g.Go(func() error {
			var s N
			for _, v := range part {
				n, err := f(v)
				if err != nil {
					return err
				}
				s += n
			}
			sums[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return Sum(sums...), nil
}
