// Package parallel fans independent index ranges out to goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Range is the half-open index interval [Start, End).
type Range struct {
	Start, End int
}

// Split partitions [0, items) into at most workers contiguous ranges whose
// sizes differ by at most one. Earlier ranges take the remainder.
func Split(items, workers int) []Range {
	if items <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > items {
		workers = items
	}

	size, rem := items/workers, items%workers
	ranges := make([]Range, 0, workers)
	start := 0
	for w := 0; w < workers; w++ {
		end := start + size
		if w < rem {
			end++
		}
		ranges = append(ranges, Range{Start: start, End: end})
		start = end
	}
	return ranges
}

// Parallelize runs fn once per range of Split(items, GOMAXPROCS) and waits
// for all of them. fn must only write state owned by its own range.
func Parallelize(items int, fn func(start, end int)) {
	ranges := Split(items, runtime.GOMAXPROCS(0))
	if len(ranges) == 1 {
		fn(ranges[0].Start, ranges[0].End)
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for _, r := range ranges {
		go func(r Range) {
			defer wg.Done()
			fn(r.Start, r.End)
		}(r)
	}
	wg.Wait()
}

// ParallelizeWithThreshold calls fn(0, items) on the current goroutine when
// items <= threshold and defers to Parallelize otherwise.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
