// SPDX-License-Identifier: MIT

// Package rowpool runs independent per-row work over a fixed number of
// goroutines.
package rowpool

import "golang.org/x/sync/errgroup"

// ForEach calls fn(i) for every i in [0, n). With workers ≤ 1 the calls run
// in order on the calling goroutine. Otherwise [0, n) is split into
// contiguous chunks, one per worker; fn must only write state owned by row i.
//
// The returned error is the one reported for the smallest i, so the outcome
// does not depend on scheduling. Rows after a failure in the same chunk are
// skipped.
func ForEach(n, workers int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 1 || n == 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}
	if workers > n {
		workers = n
	}

	// Chunk errors are kept per slot; errgroup's own error is first-come.
	errs := make([]error, workers)
	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := fn(i); err != nil {
					errs[w] = err
					return nil
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
