package recognizer

import "context"

// Engine performs the recognition work behind a recognizer. The recognizer
// owns the lifecycle and calls the engine from its executor.
//
//go:generate moq -rm -out engine_mock.go . Engine
type Engine[R, E any] interface {
	// Recognize runs one single-shot activation and returns its result.
	Recognize(ctx context.Context, params *Parameters) (R, error)
	// Open prepares a continuous activation. Returning without error
	// confirms that the session has started.
	Open(ctx context.Context, params *Parameters, sessionID string) (Stream[E], error)
}

// Stream is an open continuous activation.
type Stream[E any] interface {
	// Run produces events through emit until ctx is canceled or the input
	// ends. It must not call emit after returning.
	Run(ctx context.Context, emit func(E)) error
}

// StreamFunc adapts a function to Stream.
type StreamFunc[E any] func(ctx context.Context, emit func(E)) error

func (f StreamFunc[E]) Run(ctx context.Context, emit func(E)) error {
	return f(ctx, emit)
}

// Executor runs submitted work asynchronously. Submit fails when the work
// cannot be accepted.
//
//go:generate moq -rm -out executor_mock.go . Executor
type Executor interface {
	Submit(fn func()) error
}
