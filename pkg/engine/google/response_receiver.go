package google

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"cloud.google.com/go/speech/apiv2/speechpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ResponseReceiverInterface interface {
	Start(ctx context.Context) error
}

var _ ResponseReceiverInterface = (*ResponseReceiver)(nil)

type ResponseReceiver struct {
	responseCh      chan<- *speechpb.StreamingRecognizeResponse
	receiveStreamCh <-chan speechpb.Speech_StreamingRecognizeClient
}

func NewResponseReceiver(
	responseCh chan<- *speechpb.StreamingRecognizeResponse,
	receiveStreamCh <-chan speechpb.Speech_StreamingRecognizeClient,
) *ResponseReceiver {
	return &ResponseReceiver{
		responseCh:      responseCh,
		receiveStreamCh: receiveStreamCh,
	}
}

// Start closes the response channel when it returns.
func (r *ResponseReceiver) Start(ctx context.Context) error {
	slog.Debug("ResponseReceiver: start")
	defer close(r.responseCh)

	stream, ok := <-r.receiveStreamCh
	if !ok {
		return fmt.Errorf("failed to get receive stream from channel")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			// The receiver gets EOF after the last response once the sender
			// has closed the stream. Switch to the new stream at that point.
			var ok bool
			select {
			case <-ctx.Done():
				return nil
			case stream, ok = <-r.receiveStreamCh:
			}
			if !ok {
				slog.Debug("ResponseReceiver: last stream ended")
				return nil
			}
			slog.Debug("ResponseReceiver: stream switched")
			continue
		}
		if err != nil {
			if status.Code(err) == codes.Canceled {
				return nil
			}
			return fmt.Errorf("failed to receive response: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case r.responseCh <- resp:
		}
	}
}
