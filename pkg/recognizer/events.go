package recognizer

import (
	"fmt"
	"log/slog"
)

const (
	topicSessionStarted = "session:started"
	topicSessionStopped = "session:stopped"
	topicCanceled       = "recognition:canceled"
	topicRecognized     = "recognition:recognized"
)

// SessionEvent is published when a continuous session starts or stops.
type SessionEvent struct {
	SessionID string
}

// CanceledEvent is published when an activation ends with an error.
// SessionID is empty for single-shot recognition.
type CanceledEvent struct {
	SessionID string
	Err       error
}

// Handlers run synchronously on the recognizer's worker, after the state
// change they report. They must not wait on the recognizer's futures or
// subscribe further handlers.

func (b *Base[R, E]) OnSessionStarted(fn func(SessionEvent)) error {
	return b.subscribe(topicSessionStarted, fn)
}

func (b *Base[R, E]) OnSessionStopped(fn func(SessionEvent)) error {
	return b.subscribe(topicSessionStopped, fn)
}

func (b *Base[R, E]) OnCanceled(fn func(CanceledEvent)) error {
	return b.subscribe(topicCanceled, fn)
}

// OnRecognized is called with every single-shot result.
func (b *Base[R, E]) OnRecognized(fn func(R)) error {
	return b.subscribe(topicRecognized, fn)
}

func (b *Base[R, E]) subscribe(topic string, fn any) error {
	if err := b.bus.Subscribe(topic, fn); err != nil {
		return fmt.Errorf("failed to subscribe %s: %w", topic, err)
	}
	return nil
}

func (b *Base[R, E]) publish(topic string, arg any) {
	if !b.bus.HasCallback(topic) {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Error(fmt.Sprintf("%s: handler for %s panicked: %v", b.name, topic, r))
		}
	}()
	b.bus.Publish(topic, arg)
}
