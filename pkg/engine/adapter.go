package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/hekt/recognition-sdk/pkg/recognizer"
)

var _ recognizer.Engine[any, any] = (*Adapter[any, any])(nil)

// Adapter turns a Transcriber into a recognizer.Engine for a variant. The
// variant decides how transcripts map to its result and event types.
type Adapter[R, E any] struct {
	transcriber Transcriber
	// mapResult receives nil when nothing was recognized.
	mapResult func(*Result) R
	mapEvent  func(sessionID string, seq int, r *Result) E
}

func NewAdapter[R, E any](
	transcriber Transcriber,
	mapResult func(*Result) R,
	mapEvent func(sessionID string, seq int, r *Result) E,
) (*Adapter[R, E], error) {
	if transcriber == nil {
		return nil, errors.New("transcriber must be specified")
	}
	if mapResult == nil {
		return nil, errors.New("result mapper must be specified")
	}
	if mapEvent == nil {
		return nil, errors.New("event mapper must be specified")
	}
	return &Adapter[R, E]{
		transcriber: transcriber,
		mapResult:   mapResult,
		mapEvent:    mapEvent,
	}, nil
}

func (a *Adapter[R, E]) Recognize(ctx context.Context, params *recognizer.Parameters) (R, error) {
	res, err := a.transcriber.RecognizeOnce(ctx, params)
	if err != nil {
		var zero R
		return zero, fmt.Errorf("failed to recognize: %w", err)
	}
	return a.mapResult(res), nil
}

// Open numbers the session's transcripts from 1 in generation order.
func (a *Adapter[R, E]) Open(
	ctx context.Context,
	params *recognizer.Parameters,
	sessionID string,
) (recognizer.Stream[E], error) {
	stream, err := a.transcriber.OpenStream(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to open stream: %w", err)
	}

	return recognizer.StreamFunc[E](func(ctx context.Context, emit func(E)) error {
		seq := 0
		return stream.Run(ctx, func(results []*Result) {
			for _, r := range results {
				seq++
				emit(a.mapEvent(sessionID, seq, r))
			}
		})
	}), nil
}
