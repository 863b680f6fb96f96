package worker

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestPool_Submit(t *testing.T) {
	t.Run("runs every task", func(t *testing.T) {
		p := NewPool(0)

		var count atomic.Int32
		for i := 0; i < 10; i++ {
			if err := p.Submit(func() { count.Add(1) }); err != nil {
				t.Fatalf("Pool.Submit() error = %v", err)
			}
		}
		if err := p.Close(); err != nil {
			t.Fatalf("Pool.Close() error = %v", err)
		}

		if got := count.Load(); got != 10 {
			t.Errorf("count = %d, want 10", got)
		}
	})

	t.Run("saturated", func(t *testing.T) {
		p := NewPool(1)

		release := make(chan struct{})
		if err := p.Submit(func() { <-release }); err != nil {
			t.Fatalf("Pool.Submit() error = %v", err)
		}

		if err := p.Submit(func() {}); !errors.Is(err, ErrSaturated) {
			t.Errorf("Pool.Submit() error = %v, want %v", err, ErrSaturated)
		}

		close(release)
		if err := p.Close(); err != nil {
			t.Fatalf("Pool.Close() error = %v", err)
		}
	})

	t.Run("closed", func(t *testing.T) {
		p := NewPool(0)
		if err := p.Close(); err != nil {
			t.Fatalf("Pool.Close() error = %v", err)
		}

		if err := p.Submit(func() {}); !errors.Is(err, ErrClosed) {
			t.Errorf("Pool.Submit() error = %v, want %v", err, ErrClosed)
		}
	})

	t.Run("nil task", func(t *testing.T) {
		p := NewPool(0)
		if err := p.Submit(nil); err == nil {
			t.Error("Pool.Submit() error = nil, want error")
		}
	})

	t.Run("panic is recovered", func(t *testing.T) {
		p := NewPool(0)

		var wg sync.WaitGroup
		wg.Add(1)
		if err := p.Submit(func() {
			defer wg.Done()
			panic("boom")
		}); err != nil {
			t.Fatalf("Pool.Submit() error = %v", err)
		}
		wg.Wait()

		if err := p.Close(); err != nil {
			t.Errorf("Pool.Close() error = %v, want nil", err)
		}
	})
}

func TestDefault(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different pools")
	}
}
