package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ErrInactive is returned by SilenceMonitor when no transcript arrived
// within the timeout.
var ErrInactive = errors.New("inactive for a long time")

// SilenceMonitor ends an activation that has produced no transcript for
// longer than its timeout.
type SilenceMonitor struct {
	timeout  time.Duration
	activity chan struct{}
}

func NewSilenceMonitor(timeout time.Duration) (*SilenceMonitor, error) {
	if timeout <= 0 {
		return nil, errors.New("silence timeout must be positive")
	}
	return &SilenceMonitor{
		timeout:  timeout,
		activity: make(chan struct{}, 1),
	}, nil
}

// Notify restarts the timeout. It never blocks.
func (m *SilenceMonitor) Notify() {
	select {
	case m.activity <- struct{}{}:
	default:
	}
}

// Start fails with ErrInactive once the timeout elapses without Notify.
func (m *SilenceMonitor) Start(ctx context.Context) error {
	timer := time.NewTimer(m.timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.activity:
			// timers no longer deliver stale values after Reset
			timer.Reset(m.timeout)
		case <-timer.C:
			slog.Debug("SilenceMonitor: timed out", "timeout", m.timeout)
			return ErrInactive
		}
	}
}
