package google

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/speech/apiv2/speechpb"
)

type AudioSenderInterface interface {
	Start(ctx context.Context) error
}

var _ AudioSenderInterface = (*AudioSender)(nil)

type AudioSender struct {
	audioCh      <-chan []byte
	sendStreamCh <-chan speechpb.Speech_StreamingRecognizeClient
	// onAudioEnd is called once the audio channel is closed.
	onAudioEnd func()
}

func NewAudioSender(
	audioCh <-chan []byte,
	sendStreamCh <-chan speechpb.Speech_StreamingRecognizeClient,
	onAudioEnd func(),
) *AudioSender {
	return &AudioSender{
		audioCh:      audioCh,
		sendStreamCh: sendStreamCh,
		onAudioEnd:   onAudioEnd,
	}
}

// Start sends audio to the current stream and switches to every new stream
// it receives. When the audio ends it half-closes every stream so the
// receiver gets the remaining responses followed by EOF.
func (s *AudioSender) Start(ctx context.Context) error {
	slog.Debug("AudioSender: start")

	stream, ok := <-s.sendStreamCh
	if !ok {
		return fmt.Errorf("failed to get send stream from channel")
	}

	sendStreamCh := s.sendStreamCh
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case newStream, ok := <-sendStreamCh:
			if !ok {
				// no more reconnects
				sendStreamCh = nil
				continue
			}
			slog.Debug("AudioSender: new stream received")

			// when the new stream is received, close the current stream and switch to the new stream.
			if err := stream.CloseSend(); err != nil {
				return fmt.Errorf("failed to close send direction of stream on reconnect: %w", err)
			}

			stream = newStream
			slog.Debug("AudioSender: stream switched")
		case audio, ok := <-s.audioCh:
			if !ok {
				slog.Debug("AudioSender: audio ended")
				return s.finish(stream, sendStreamCh)
			}
			if err := stream.Send(&speechpb.StreamingRecognizeRequest{
				StreamingRequest: &speechpb.StreamingRecognizeRequest_Audio{
					Audio: audio,
				},
			}); err != nil {
				return fmt.Errorf("failed to send audio data: %w", err)
			}
		}
	}
}

func (s *AudioSender) finish(
	stream speechpb.Speech_StreamingRecognizeClient,
	sendStreamCh <-chan speechpb.Speech_StreamingRecognizeClient,
) error {
	if s.onAudioEnd != nil {
		s.onAudioEnd()
	}

	if err := stream.CloseSend(); err != nil {
		return fmt.Errorf("failed to close send direction of stream: %w", err)
	}

	// streams supplied after the audio ended carry nothing
	if sendStreamCh == nil {
		return nil
	}
	for pending := range sendStreamCh {
		if err := pending.CloseSend(); err != nil {
			slog.Error(fmt.Sprintf("failed to close send direction of stream: %v", err))
		}
	}
	return nil
}
