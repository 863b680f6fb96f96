package google

import (
	"context"
	"log/slog"

	"cloud.google.com/go/speech/apiv2/speechpb"

	"github.com/hekt/recognition-sdk/pkg/engine"
)

type ResponseProcessorInterface interface {
	Start(ctx context.Context) error
}

var _ ResponseProcessorInterface = (*ResponseProcessor)(nil)

type ResponseProcessor struct {
	responseCh <-chan *speechpb.StreamingRecognizeResponse
	resultCh   chan<- []*engine.Result
}

func NewResponseProcessor(
	responseCh <-chan *speechpb.StreamingRecognizeResponse,
	resultCh chan<- []*engine.Result,
) *ResponseProcessor {
	return &ResponseProcessor{
		responseCh: responseCh,
		resultCh:   resultCh,
	}
}

// Start converts responses until the response channel is closed.
func (p *ResponseProcessor) Start(ctx context.Context) error {
	slog.Debug("ResponseProcessor: start")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case resp, ok := <-p.responseCh:
			if !ok {
				return nil
			}

			results := convertResponse(resp)
			if len(results) == 0 {
				continue
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case p.resultCh <- results:
			}
		}
	}
}

func convertResponse(resp *speechpb.StreamingRecognizeResponse) []*engine.Result {
	results := make([]*engine.Result, 0, len(resp.GetResults()))
	for _, result := range resp.GetResults() {
		if len(result.GetAlternatives()) == 0 {
			continue
		}

		results = append(results, &engine.Result{
			Transcript: result.GetAlternatives()[0].GetTranscript(),
			IsFinal:    result.GetIsFinal(),
		})
	}
	return results
}
