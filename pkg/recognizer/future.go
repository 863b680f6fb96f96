package recognizer

import (
	"context"
	"sync"
)

// Awaitable is the type-erased view of a Future.
type Awaitable interface {
	Done() <-chan struct{}
	Await(ctx context.Context) (any, error)
}

var _ Awaitable = (*Future[struct{}])(nil)

// Future is a single-assignment result of an asynchronous operation.
type Future[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved returns a future that is already complete with v.
func Resolved[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.complete(v, nil)
	return f
}

// complete sets the outcome. Only the first call has an effect.
func (f *Future[T]) complete(v T, err error) bool {
	ok := false
	f.once.Do(func() {
		f.value = v
		f.err = err
		close(f.done)
		ok = true
	})
	return ok
}

func (f *Future[T]) fail(err error) bool {
	var zero T
	return f.complete(zero, err)
}

// Done is closed once the outcome is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Get waits for the outcome. A done ctx only stops the wait, the operation
// keeps running.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Poll returns the outcome without blocking. ready is false while pending.
func (f *Future[T]) Poll() (v T, ready bool, err error) {
	select {
	case <-f.done:
		return f.value, true, f.err
	default:
		return v, false, nil
	}
}

func (f *Future[T]) Await(ctx context.Context) (any, error) {
	return f.Get(ctx)
}
