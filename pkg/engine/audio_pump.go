package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// AudioPump copies audio from a reader into a channel in chunks of at most
// chunkSize bytes. The channel is closed when Start returns.
type AudioPump struct {
	src       io.Reader
	out       chan<- []byte
	chunkSize int
}

func NewAudioPump(src io.Reader, out chan<- []byte, chunkSize int) (*AudioPump, error) {
	if src == nil {
		return nil, errors.New("audio reader must be specified")
	}
	if out == nil {
		return nil, errors.New("audio channel must be specified")
	}
	if chunkSize < MinBufferSize {
		return nil, fmt.Errorf("chunk size must be greater than or equal to %d", MinBufferSize)
	}
	return &AudioPump{src: src, out: out, chunkSize: chunkSize}, nil
}

// Start returns nil at EOF. A read failing after ctx is done reports the
// context error, since closing the reader is how a pending Read is ended.
func (p *AudioPump) Start(ctx context.Context) error {
	defer close(p.out)

	var total int
	buf := make([]byte, p.chunkSize)
	for ctx.Err() == nil {
		n, err := p.src.Read(buf)
		if n > 0 {
			total += n
			select {
			case <-ctx.Done():
				return ctx.Err()
			case p.out <- append(make([]byte, 0, n), buf[:n]...):
			}
		}
		switch {
		case errors.Is(err, io.EOF):
			slog.Debug("AudioPump: end of audio", "bytes", total)
			return nil
		case err != nil && ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			return fmt.Errorf("failed to read audio: %w", err)
		}
	}
	return ctx.Err()
}
