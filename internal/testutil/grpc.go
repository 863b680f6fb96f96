package testutil

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"

	speech "cloud.google.com/go/speech/apiv2"
	"cloud.google.com/go/speech/apiv2/speechpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	myspeech "github.com/hekt/recognition-sdk/internal/interfaces/speech"
)

// MockSpeechClient returns a real Speech-to-Text client connected to
// mockServer over an in-memory listener.
func MockSpeechClient(t *testing.T, ctx context.Context, mockServer speechpb.SpeechServer) myspeech.Client {
	t.Helper()

	l := bufconn.Listen(1024 * 1024)
	t.Cleanup(func() { l.Close() })

	s := grpc.NewServer()
	speechpb.RegisterSpeechServer(s, mockServer)

	go s.Serve(l)
	t.Cleanup(func() { s.Stop() })

	conn, err := grpc.NewClient(
		// use passthrough resolver explicitly to avoid using default dns resolver
		// ref. https://stackoverflow.com/questions/78485578/how-to-use-the-bufconn-package-with-grpc-newclient
		"passthrough://bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return l.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	client, err := speech.NewClient(ctx, option.WithGRPCConn(conn))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return client
}

// EchoSpeechServer answers every audio request of a stream with one final
// result carrying the audio bytes as transcript. The stream ends when the
// client half-closes it.
type EchoSpeechServer struct {
	speechpb.UnimplementedSpeechServer

	// Configs receives the streaming config of every stream when set.
	Configs chan<- *speechpb.StreamingRecognizeRequest
}

func (s *EchoSpeechServer) StreamingRecognize(stream speechpb.Speech_StreamingRecognizeServer) error {
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch r := req.StreamingRequest.(type) {
		case *speechpb.StreamingRecognizeRequest_StreamingConfig:
			if s.Configs != nil {
				s.Configs <- req
			}
		case *speechpb.StreamingRecognizeRequest_Audio:
			if err := stream.Send(&speechpb.StreamingRecognizeResponse{
				Results: []*speechpb.StreamingRecognitionResult{
					{
						Alternatives: []*speechpb.SpeechRecognitionAlternative{
							{Transcript: string(r.Audio)},
						},
						IsFinal: true,
					},
				},
			}); err != nil {
				return err
			}
		}
	}
}
