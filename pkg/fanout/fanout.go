package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of one fanned-out call.
type Result[T any] struct {
	Value T
	Err   error
}

// Map invokes fn concurrently for every item and waits for all calls to
// finish. Results keep the input order regardless of completion order, and
// a failed call never cancels its siblings: each slot simply carries the
// error for the caller to fold away.
func Map[S, T any](ctx context.Context, items []S, fn func(context.Context, S) (T, error)) []Result[T] {
	results := make([]Result[T], len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item S) {
			defer wg.Done()
			v, err := fn(ctx, item)
			results[i] = Result[T]{Value: v, Err: err}
		}(i, item)
	}
	wg.Wait()

	return results
}
