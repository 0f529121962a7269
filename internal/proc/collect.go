package proc

import (
	"context"
	"sync"
)

// Result is the outcome of collecting one process. Exactly one of Err or
// (Name, Usage) is meaningful.
type Result struct {
	Process Process
	Name    string
	Usage   RusageInfo
	Err     error
}

// OK reports whether collection succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Collect reads usage and then the name for a single process. Failures are
// returned in the Result, never raised.
func Collect(p Process) Result {
	res := Result{Process: p}

	usage, err := p.Usage()
	if err != nil {
		res.Err = err
		return res
	}

	name, err := p.Name()
	if err != nil {
		res.Err = err
		return res
	}

	res.Name = name
	res.Usage = usage
	return res
}

// CollectAll collects every process and returns one Result per handle in
// the order the handles were given. With concurrency <= 1 the handles are
// visited sequentially. A cancelled ctx marks the remaining handles as
// failed instead of querying them.
func CollectAll(ctx context.Context, processes []Process, concurrency int) []Result {
	results := make([]Result, len(processes))

	if concurrency <= 1 {
		for i, p := range processes {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Process: p, Err: err}
				continue
			}
			results[i] = Collect(p)
		}
		return results
	}

	semaphore := make(chan struct{}, concurrency) // Limit concurrent workers
	var wg sync.WaitGroup

	for i, p := range processes {
		wg.Add(1)
		go func(i int, p Process) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			if err := ctx.Err(); err != nil {
				results[i] = Result{Process: p, Err: err}
				return
			}
			results[i] = Collect(p)
		}(i, p)
	}

	wg.Wait()
	return results
}
