package engine

import (
	"context"

	"github.com/hekt/recognition-sdk/pkg/recognizer"
)

// Core is a recognition backend bound to one activation. It consumes
// audioCh and publishes transcripts to the result channel it was built
// with. It returns nil once audioCh is closed and every pending result has
// been published, and never closes the result channel itself.
type Core interface {
	Start(ctx context.Context) error
}

// CoreFactory builds the Core of each activation.
type CoreFactory interface {
	NewCore(
		ctx context.Context,
		params *recognizer.Parameters,
		audioCh <-chan []byte,
		resultCh chan<- []*Result,
	) (Core, error)
}

// CoreFactoryFunc adapts a function to CoreFactory.
type CoreFactoryFunc func(
	ctx context.Context,
	params *recognizer.Parameters,
	audioCh <-chan []byte,
	resultCh chan<- []*Result,
) (Core, error)

func (f CoreFactoryFunc) NewCore(
	ctx context.Context,
	params *recognizer.Parameters,
	audioCh <-chan []byte,
	resultCh chan<- []*Result,
) (Core, error) {
	return f(ctx, params, audioCh, resultCh)
}

// CoreFunc adapts a function to Core.
type CoreFunc func(ctx context.Context) error

func (f CoreFunc) Start(ctx context.Context) error {
	return f(ctx)
}
