// Package delay runs a unit of work after a fixed delay. It stands in for
// network latency in front of operations that have no real I/O.
package delay

import (
	"context"
	"time"
)

type result[T any] struct {
	value T
	err   error
}

// Future is a single-shot delayed computation.
type Future[T any] struct {
	done chan struct{}
	res  result[T]
}

// After starts fn once d has elapsed. fn always runs to completion; only
// waiters can give up early.
func After[T any](d time.Duration, fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		if d > 0 {
			time.Sleep(d)
		}
		v, err := fn()
		f.res = result[T]{value: v, err: err}
	}()

	return f
}

// Wait blocks until the work finished or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.res.value, f.res.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Run is After followed by Wait.
func Run[T any](ctx context.Context, d time.Duration, fn func() (T, error)) (T, error) {
	return After(d, fn).Wait(ctx)
}
