package recognizer

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSession_Next(t *testing.T) {
	t.Run("fifo then EOF", func(t *testing.T) {
		s := newSession[int]()
		for i := 1; i <= 3; i++ {
			s.push(i)
		}
		s.finish(nil)

		if s.push(4) {
			t.Error("push() after finish = true, want false")
		}
		if got := s.Pending(); got != 3 {
			t.Errorf("Pending() = %d, want 3", got)
		}

		var got []int
		for {
			e, err := s.Next(context.Background())
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				t.Fatalf("Next() error = %v", err)
			}
			got = append(got, e)
		}
		if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
			t.Errorf("events mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("waits for producer", func(t *testing.T) {
		s := newSession[int]()

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 1; i <= 100; i++ {
				s.push(i)
			}
			s.finish(nil)
		}()

		prev := 0
		for {
			e, err := s.Next(context.Background())
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				t.Fatalf("Next() error = %v", err)
			}
			if e <= prev {
				t.Fatalf("Next() = %d after %d, want increasing", e, prev)
			}
			prev = e
		}
		wg.Wait()

		if prev != 100 {
			t.Errorf("last event = %d, want 100", prev)
		}
	})

	t.Run("context timeout", func(t *testing.T) {
		s := newSession[int]()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		if _, err := s.Next(ctx); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Next() error = %v, want %v", err, context.DeadlineExceeded)
		}
	})
}

func TestSession_Events(t *testing.T) {
	s := newSession[string]()
	if s.ID() == "" {
		t.Fatal("ID() is empty")
	}
	s.push("a")
	s.push("b")
	wantErr := errors.New("ended")
	s.finish(wantErr)

	var got []string
	for e := range s.Events() {
		got = append(got, e)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if err := s.Err(); !errors.Is(err, wantErr) {
		t.Errorf("Err() = %v, want %v", err, wantErr)
	}
}
