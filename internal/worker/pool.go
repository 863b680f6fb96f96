// Package worker runs recognition work on a bounded set of goroutines.
package worker

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

var (
	ErrSaturated = errors.New("worker pool is saturated")
	ErrClosed    = errors.New("worker pool is closed")
)

// Pool is an errgroup-backed executor. With a limit, Submit rejects work
// instead of queueing it.
type Pool struct {
	eg errgroup.Group

	mu     sync.RWMutex
	closed bool
}

// NewPool returns a pool running at most limit tasks at once. A limit of
// zero or less means no limit.
func NewPool(limit int) *Pool {
	p := &Pool{}
	if limit > 0 {
		p.eg.SetLimit(limit)
	}
	return p
}

var (
	defaultPool     *Pool
	defaultPoolOnce sync.Once
)

// Default returns the process-wide unlimited pool.
func Default() *Pool {
	defaultPoolOnce.Do(func() {
		defaultPool = NewPool(0)
	})
	return defaultPool
}

// Submit runs fn on a pool goroutine. A panic in fn is logged and does not
// take the process down.
func (p *Pool) Submit(fn func()) error {
	if fn == nil {
		return errors.New("task must be specified")
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}

	ok := p.eg.TryGo(func() error {
		defer func() {
			if r := recover(); r != nil {
				slog.Error(fmt.Sprintf("worker: task panicked: %v", r))
			}
		}()
		fn()
		return nil
	})
	if !ok {
		return ErrSaturated
	}
	return nil
}

// Close rejects further work and waits for running tasks.
func (p *Pool) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	return p.eg.Wait()
}
