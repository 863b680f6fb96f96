// Package factory builds ready recognizers from a declarative config.
package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hekt/recognition-sdk/internal/worker"
	"github.com/hekt/recognition-sdk/pkg/engine"
	"github.com/hekt/recognition-sdk/pkg/engine/google"
	"github.com/hekt/recognition-sdk/pkg/engine/local"
	"github.com/hekt/recognition-sdk/pkg/recognizer"
	"github.com/hekt/recognition-sdk/pkg/recognizer/intent"
	"github.com/hekt/recognition-sdk/pkg/recognizer/transcription"
)

type options struct {
	clientProvider  google.ClientProvider
	decoderProvider local.DecoderProvider
	stdin           io.Reader
}

type Option func(*options) error

// WithClientProvider replaces the default Speech-to-Text client provider.
func WithClientProvider(provider google.ClientProvider) Option {
	return func(o *options) error {
		if provider == nil {
			return errors.New("client provider must be specified")
		}
		o.clientProvider = provider
		return nil
	}
}

// WithDecoderProvider enables the local backend.
func WithDecoderProvider(provider local.DecoderProvider) Option {
	return func(o *options) error {
		if provider == nil {
			return errors.New("decoder provider must be specified")
		}
		o.decoderProvider = provider
		return nil
	}
}

// WithStdin sets the reader used by configs without an audio file.
func WithStdin(r io.Reader) Option {
	return func(o *options) error {
		if r == nil {
			return errors.New("reader must be specified")
		}
		o.stdin = r
		return nil
	}
}

type Factory struct {
	clientProvider  google.ClientProvider
	decoderProvider local.DecoderProvider
	// stdin is shared by every recognizer without an audio file.
	stdin *engine.ReaderSource
}

func New(opts ...Option) (*Factory, error) {
	o := &options{
		stdin: os.Stdin,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if o.clientProvider == nil {
		o.clientProvider = google.NewClientProvider()
	}

	stdin, err := engine.NewReaderSource(o.stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to create stdin source: %w", err)
	}

	return &Factory{
		clientProvider:  o.clientProvider,
		decoderProvider: o.decoderProvider,
		stdin:           stdin,
	}, nil
}

// Create returns a disabled recognizer described by cfg.
func (f *Factory) Create(ctx context.Context, cfg *Config) (recognizer.Recognizer, error) {
	if cfg == nil {
		return nil, errors.New("config must be specified")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	source, err := f.audioSource(cfg.Audio)
	if err != nil {
		return nil, err
	}
	coreFactory, err := f.coreFactory(cfg.Backend)
	if err != nil {
		return nil, err
	}
	pipeline, err := engine.NewPipeline(source, coreFactory, cfg.pipelineOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	params, err := cfg.parameters()
	if err != nil {
		return nil, err
	}
	opts := []recognizer.Option{recognizer.WithParameters(params)}
	if cfg.Name != "" {
		opts = append(opts, recognizer.WithName(cfg.Name))
	}
	if cfg.WorkerLimit > 0 {
		opts = append(opts, recognizer.WithExecutor(worker.NewPool(cfg.WorkerLimit)))
	}

	var r recognizer.Recognizer
	switch cfg.Kind {
	case KindIntent:
		matcher, err := intent.NewPhraseMatcher(cfg.Intents)
		if err != nil {
			return nil, fmt.Errorf("failed to create matcher: %w", err)
		}
		ir, err := intent.New(pipeline, matcher, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create intent recognizer: %w", err)
		}
		r = ir
	case KindTranscription:
		tr, err := transcription.New(pipeline, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create transcription recognizer: %w", err)
		}
		r = tr
	}

	slog.DebugContext(ctx, "Factory: recognizer created", "name", r.Name(), "kind", cfg.Kind, "backend", cfg.Backend)
	return r, nil
}

func (f *Factory) audioSource(cfg AudioConfig) (engine.AudioSource, error) {
	if cfg.File != "" {
		source, err := engine.NewFileSource(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("failed to create file source: %w", err)
		}
		return source, nil
	}
	return f.stdin, nil
}

func (f *Factory) coreFactory(backend string) (engine.CoreFactory, error) {
	switch backend {
	case BackendGoogle:
		return google.NewCoreFactory(f.clientProvider)
	case BackendLocal:
		if f.decoderProvider == nil {
			return nil, errors.New("local backend requires a decoder provider")
		}
		return local.NewCoreFactory(f.decoderProvider)
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}
