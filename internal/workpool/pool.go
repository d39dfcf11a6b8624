// Package workpool is the fork/join worker pool spec.md §5 describes: a
// data-parallel ForEach over an independent index range, sized to
// runtime.GOMAXPROCS(0) by default. At pool size 1 the same index-ordered
// loop runs serially in the calling goroutine, so results must be
// bit-identical between the two modes — no work-stealing queue is needed,
// just a bounded number of goroutines draining a shared index counter.
package workpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool dispatches ForEach calls over a fixed number of workers.
type Pool struct {
	size int
}

// New returns a Pool with the given worker count. size <= 0 means
// runtime.GOMAXPROCS(0); size == 1 forces the serial fallback path.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	return &Pool{size: size}
}

// Size returns the effective worker count.
func (p *Pool) Size() int {
	return p.size
}

// ForEach calls fn(i) for every i in [0, n), fanning out across the pool's
// workers when size > 1. The iteration order across workers is
// unspecified, but fn must be safe to run concurrently with itself — pass
// n independent index ranges (one per background layer, one per row),
// never a sequential accumulation.
func (p *Pool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if p.size <= 1 || n == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	workers := p.size
	if workers > n {
		workers = n
	}

	var next int64 = -1
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&next, 1))
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}
