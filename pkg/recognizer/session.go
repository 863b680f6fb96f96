package recognizer

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
)

// Session is one continuous recognition activation. Events are delivered in
// the order the engine produced them and the queue is closed once the engine
// has returned.
type Session[E any] struct {
	id string

	mu       sync.Mutex
	queue    []E
	finished bool
	err      error

	notify chan struct{}
	done   chan struct{}

	eventsOnce sync.Once
	events     chan E
}

func newSession[E any]() *Session[E] {
	return &Session[E]{
		id:     uuid.NewString(),
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

func (s *Session[E]) ID() string {
	return s.id
}

// push appends an event. It reports false once the session has finished.
func (s *Session[E]) push(e E) bool {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return false
	}
	s.queue = append(s.queue, e)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
	return true
}

func (s *Session[E]) finish(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return
	}
	s.finished = true
	s.err = err
	close(s.done)
}

// Next returns the next queued event. It returns io.EOF after the session
// has finished and every event has been consumed.
func (s *Session[E]) Next(ctx context.Context) (E, error) {
	var zero E
	for {
		s.mu.Lock()
		if len(s.queue) > 0 {
			e := s.queue[0]
			s.queue[0] = zero
			s.queue = s.queue[1:]
			s.mu.Unlock()
			return e, nil
		}
		finished := s.finished
		s.mu.Unlock()

		if finished {
			return zero, io.EOF
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-s.notify:
		case <-s.done:
		}
	}
}

// Events returns a channel carrying the session's events. It is closed once
// the session is drained. Events and Next share one queue, so use one or the
// other.
func (s *Session[E]) Events() <-chan E {
	s.eventsOnce.Do(func() {
		s.events = make(chan E)
		go func() {
			defer close(s.events)
			for {
				e, err := s.Next(context.Background())
				if err != nil {
					return
				}
				s.events <- e
			}
		}()
	})
	return s.events
}

// Done is closed when the engine has returned. Queued events may remain.
func (s *Session[E]) Done() <-chan struct{} {
	return s.done
}

// Err is the error the session ended with, if any.
func (s *Session[E]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Pending is the number of queued events.
func (s *Session[E]) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}
