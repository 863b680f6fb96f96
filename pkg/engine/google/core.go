// Package google is the Speech-to-Text v2 backend of the speech pipeline.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	speechapi "cloud.google.com/go/speech/apiv2"
	"cloud.google.com/go/speech/apiv2/speechpb"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"

	"github.com/hekt/recognition-sdk/internal/interfaces/speech"
	"github.com/hekt/recognition-sdk/pkg/engine"
	"github.com/hekt/recognition-sdk/pkg/recognizer"
)

var _ engine.Core = (*Core)(nil)

// Core streams one activation's audio to StreamingRecognize, reconnecting
// before the stream reaches its maximum duration.
type Core struct {
	streamSupplier    StreamSupplierInterface
	audioSender       AudioSenderInterface
	responseReceiver  ResponseReceiverInterface
	responseProcessor ResponseProcessorInterface

	// client is closed when Start returns.
	client speech.Client
}

func NewCore(
	client speech.Client,
	audioCh <-chan []byte,
	resultCh chan<- []*engine.Result,
	config Config,
) (*Core, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("client must be specified")
	}
	if audioCh == nil {
		return nil, errors.New("audio channel must be specified")
	}
	if resultCh == nil {
		return nil, errors.New("result channel must be specified")
	}

	// if the stream is not taken out, there is no need to create new stream.
	// so buffer size is set to 1.
	sendStreamCh := make(chan speechpb.Speech_StreamingRecognizeClient, 1)
	receiveStreamCh := make(chan speechpb.Speech_StreamingRecognizeClient, 1)
	responseCh := make(chan *speechpb.StreamingRecognizeResponse, 1)

	streamSupplier := NewStreamSupplier(client, sendStreamCh, receiveStreamCh, config)

	return &Core{
		streamSupplier:    streamSupplier,
		audioSender:       NewAudioSender(audioCh, sendStreamCh, streamSupplier.Stop),
		responseReceiver:  NewResponseReceiver(responseCh, receiveStreamCh),
		responseProcessor: NewResponseProcessor(responseCh, resultCh),
		client:            client,
	}, nil
}

func (c *Core) Start(ctx context.Context) error {
	slog.Debug("GoogleCore: start")
	defer func() {
		if err := c.client.Close(); err != nil {
			slog.Error(fmt.Sprintf("failed to close client: %v", err))
		}
	}()

	if err := c.streamSupplier.Supply(ctx); err != nil {
		return fmt.Errorf("failed to supply stream: %w", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := c.streamSupplier.Start(ctx); err != nil {
			return fmt.Errorf("error occured in stream supplier: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if err := c.responseReceiver.Start(ctx); err != nil {
			return fmt.Errorf("error occured in response receiver: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if err := c.audioSender.Start(ctx); err != nil {
			return fmt.Errorf("error occured in audio sender: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if err := c.responseProcessor.Start(ctx); err != nil {
			return fmt.Errorf("error occured in response processor: %w", err)
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}

	slog.Debug("GoogleCore: stopped")
	return nil
}

// ClientProvider creates the Speech-to-Text client of one activation.
type ClientProvider func(ctx context.Context) (speech.Client, error)

// NewClientProvider returns a provider creating real API clients.
func NewClientProvider(opts ...option.ClientOption) ClientProvider {
	return func(ctx context.Context) (speech.Client, error) {
		client, err := speechapi.NewClient(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create speech client: %w", err)
		}
		return client, nil
	}
}

var _ engine.CoreFactory = (*CoreFactory)(nil)

type CoreFactory struct {
	newClient ClientProvider
}

func NewCoreFactory(newClient ClientProvider) (*CoreFactory, error) {
	if newClient == nil {
		return nil, errors.New("client provider must be specified")
	}
	return &CoreFactory{newClient: newClient}, nil
}

func (f *CoreFactory) NewCore(
	ctx context.Context,
	params *recognizer.Parameters,
	audioCh <-chan []byte,
	resultCh chan<- []*engine.Result,
) (engine.Core, error) {
	config, err := ConfigFromParameters(params)
	if err != nil {
		return nil, err
	}

	client, err := f.newClient(ctx)
	if err != nil {
		return nil, err
	}

	core, err := NewCore(client, audioCh, resultCh, config)
	if err != nil {
		if err := client.Close(); err != nil {
			slog.Error(fmt.Sprintf("failed to close client: %v", err))
		}
		return nil, err
	}
	return core, nil
}
