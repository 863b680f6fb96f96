package engine

import (
	"errors"
	"time"
)

const (
	DefaultBufferSize   = 4096
	MinBufferSize       = 1024
	DefaultDrainTimeout = 10 * time.Second
)

type options struct {
	bufferSize   int
	drainTimeout time.Duration
}

type Option func(*options) error

// WithBufferSize sets the audio chunk size used when the activation's
// parameters do not set audio.buffer_size.
func WithBufferSize(bufferSize int) Option {
	return func(o *options) error {
		if bufferSize < MinBufferSize {
			return errors.New("buffer size must be greater than or equal to 1024")
		}
		o.bufferSize = bufferSize
		return nil
	}
}

// WithDrainTimeout bounds how long a stopped activation may take to flush
// the backend before it is aborted.
func WithDrainTimeout(drainTimeout time.Duration) Option {
	return func(o *options) error {
		if drainTimeout <= 0 {
			return errors.New("drain timeout must be positive")
		}
		o.drainTimeout = drainTimeout
		return nil
	}
}
