// Package recognizer provides asynchronous speech recognizers sharing one
// lifecycle: Disabled, Idle, Recognizing, ContinuousActive and Stopping.
package recognizer

import "context"

// AsyncRecognizer is a recognizer producing results of type R from
// single-shot recognition and events of type E from continuous sessions.
type AsyncRecognizer[R, E any] interface {
	Recognizer

	RecognizeAsync(ctx context.Context) (*Future[R], error)
	StartContinuousRecognitionAsync(ctx context.Context) (*Future[*Session[E]], error)
	StopContinuousRecognitionAsync(ctx context.Context) (*Future[struct{}], error)
	NextEvent(ctx context.Context) (E, error)
}

// Recognizer is the variant-independent view of an AsyncRecognizer, used
// where the result and event types are not known statically.
type Recognizer interface {
	Name() string
	IsEnabled() bool
	Enable()
	Disable() error
	State() State

	SetParameter(name string, value any) error
	Parameter(name string) (any, bool)

	Recognize(ctx context.Context) (Awaitable, error)
	StartContinuous(ctx context.Context) (Awaitable, error)
	StopContinuous(ctx context.Context) (Awaitable, error)
	PollEvent(ctx context.Context) (any, error)

	Close() error
}
