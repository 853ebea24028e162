package core

import "golang.org/x/sync/errgroup"

// minChunk is the smallest number of points handed to one goroutine.
const minChunk = 64

// Parallel splits [0, n) into contiguous chunks and calls fn for each chunk.
// With workers <= 1, or when n is small, fn is called once for the full range
// on the calling goroutine. The first error returned by any chunk is returned.
func Parallel(n, workers int, fn func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}

	if workers <= 1 || n < 2*minChunk {
		return fn(0, n)
	}

	chunk := (n + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	var g errgroup.Group
	g.SetLimit(workers)

	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			return fn(lo, hi)
		})
	}

	return g.Wait()
}
