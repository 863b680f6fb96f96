package google

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cloud.google.com/go/speech/apiv2/speechpb"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/hekt/recognition-sdk/internal/interfaces/speech"
)

//go:generate moq -rm -out stream_supplier_mock.go . StreamSupplierInterface
type StreamSupplierInterface interface {
	// Supply is supplies the streams once.
	Supply(ctx context.Context) error
	// Start is starts supplying the streams at regular intervals.
	Start(ctx context.Context) error
	// Stop ends Start. No stream is supplied afterwards.
	Stop()
}

var _ StreamSupplierInterface = (*StreamSupplier)(nil)

type StreamSupplier struct {
	// client is a client of the Speech-to-Text API.
	client speech.Client
	// sendStreamCh is a channel to pass the sending stream.
	sendStreamCh chan<- speechpb.Speech_StreamingRecognizeClient
	// receiveStreamCh is a channel to pass the receiving stream.
	receiveStreamCh chan<- speechpb.Speech_StreamingRecognizeClient

	// config is used for the initial request of every stream.
	config Config

	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewStreamSupplier(
	client speech.Client,
	sendStreamCh chan<- speechpb.Speech_StreamingRecognizeClient,
	receiveStreamCh chan<- speechpb.Speech_StreamingRecognizeClient,
	config Config,
) *StreamSupplier {
	return &StreamSupplier{
		client:          client,
		sendStreamCh:    sendStreamCh,
		receiveStreamCh: receiveStreamCh,
		config:          config,
		stopCh:          make(chan struct{}),
	}
}

// Start closes both stream channels when it returns.
func (s *StreamSupplier) Start(ctx context.Context) error {
	slog.Debug("StreamSupplier: start")
	defer func() {
		close(s.sendStreamCh)
		close(s.receiveStreamCh)
		slog.Debug("StreamSupplier: stopped")
	}()

	timer := time.NewTimer(s.config.ReconnectInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-timer.C:
			slog.Debug("StreamSupplier: timer fired")

			newStream, err := s.initializeStream(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize stream: %w", err)
			}

			timer.Reset(s.config.ReconnectInterval)

			select {
			case s.sendStreamCh <- newStream:
			case <-s.stopCh:
				return nil
			case <-ctx.Done():
				return nil
			}

			select {
			case s.receiveStreamCh <- newStream:
			case <-s.stopCh:
				return nil
			case <-ctx.Done():
				return nil
			}

			slog.Debug("StreamSupplier: stream supplied")
		}
	}
}

func (s *StreamSupplier) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

func (s *StreamSupplier) Supply(ctx context.Context) error {
	stream, err := s.initializeStream(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize stream: %w", err)
	}

	select {
	case s.sendStreamCh <- stream:
	case <-ctx.Done():
		return fmt.Errorf("context is done: %w", context.Canceled)
	}

	select {
	case s.receiveStreamCh <- stream:
	case <-ctx.Done():
		return fmt.Errorf("context is done: %w", context.Canceled)
	}

	return nil
}

func (s *StreamSupplier) initializeStream(
	ctx context.Context,
) (speechpb.Speech_StreamingRecognizeClient, error) {
	stream, err := s.client.StreamingRecognize(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}

	if err := stream.Send(initialRequest(s.config)); err != nil {
		return nil, fmt.Errorf("failed to send initial request: %w", err)
	}

	return stream, nil
}

func initialRequest(config Config) *speechpb.StreamingRecognizeRequest {
	streamingConfig := &speechpb.StreamingRecognitionConfig{
		StreamingFeatures: &speechpb.StreamingRecognitionFeatures{
			InterimResults: config.InterimResults,
		},
	}
	if config.LanguageCode != "" {
		// override only the language of the recognizer's config
		streamingConfig.Config = &speechpb.RecognitionConfig{
			LanguageCodes: []string{config.LanguageCode},
		}
		streamingConfig.ConfigMask = &fieldmaskpb.FieldMask{
			Paths: []string{"language_codes"},
		}
	}

	return &speechpb.StreamingRecognizeRequest{
		Recognizer: config.RecognizerFullname(),
		StreamingRequest: &speechpb.StreamingRecognizeRequest_StreamingConfig{
			StreamingConfig: streamingConfig,
		},
	}
}
