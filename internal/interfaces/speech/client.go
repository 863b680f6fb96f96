package speech

import (
	"context"

	speech "cloud.google.com/go/speech/apiv2"
	"cloud.google.com/go/speech/apiv2/speechpb"
	"github.com/googleapis/gax-go/v2"
)

// Client is the part of cloud.google.com/go/speech/apiv2.Client the
// Google backend uses. apiv2.Client is a struct, so tests mock this instead.
//
//go:generate moq -rm -out client_mock.go . Client
type Client interface {
	StreamingRecognize(ctx context.Context, opts ...gax.CallOption) (speechpb.Speech_StreamingRecognizeClient, error)
	Close() error
}

var _ Client = (*speech.Client)(nil)
