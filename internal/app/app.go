package app

import (
	"github.com/urfave/cli/v2"

	"github.com/hekt/recognition-sdk/pkg/engine/google"
	"github.com/hekt/recognition-sdk/pkg/engine/local"
)

type options struct {
	clientProvider  google.ClientProvider
	decoderProvider local.DecoderProvider
}

type Option func(*options)

// WithClientProvider replaces the Speech-to-Text client provider.
func WithClientProvider(provider google.ClientProvider) Option {
	return func(o *options) {
		o.clientProvider = provider
	}
}

// WithDecoderProvider enables configs with the local backend.
func WithDecoderProvider(provider local.DecoderProvider) Option {
	return func(o *options) {
		o.decoderProvider = provider
	}
}

func New(opts ...Option) *cli.App {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return &cli.App{
		Name:  "recognition",
		Usage: "speech and intent recognition",
		Commands: []*cli.Command{
			newRecognizeCommand(o),
			newContinuousCommand(o),
			newCheckConfigCommand(),
		},
	}
}
