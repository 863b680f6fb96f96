// Package local runs the speech pipeline on an in-process decoder.
package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bytedance/sonic"

	"github.com/hekt/recognition-sdk/pkg/engine"
	"github.com/hekt/recognition-sdk/pkg/recognizer"
)

var _ engine.Core = (*Core)(nil)

type Core struct {
	decoder  Decoder
	audioCh  <-chan []byte
	resultCh chan<- []*engine.Result
}

func NewCore(
	decoder Decoder,
	audioCh <-chan []byte,
	resultCh chan<- []*engine.Result,
) (*Core, error) {
	if decoder == nil {
		return nil, errors.New("decoder must be specified")
	}
	if audioCh == nil {
		return nil, errors.New("audio channel must be specified")
	}
	if resultCh == nil {
		return nil, errors.New("result channel must be specified")
	}

	return &Core{
		decoder:  decoder,
		audioCh:  audioCh,
		resultCh: resultCh,
	}, nil
}

// Start decodes until the audio channel is closed and then flushes the
// decoder's final result. Decoders implementing io.Closer are closed on
// return.
func (c *Core) Start(ctx context.Context) error {
	slog.Debug("LocalCore: start")
	if closer, ok := c.decoder.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				slog.Error(fmt.Sprintf("failed to close decoder: %v", err))
			}
		}()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case audio, ok := <-c.audioCh:
			if !ok {
				t, err := parseResult(c.decoder.FinalResult())
				if err != nil {
					return fmt.Errorf("failed to parse final result: %w", err)
				}
				if t != "" {
					if err := c.send(ctx, &engine.Result{Transcript: t, IsFinal: true}); err != nil {
						return err
					}
				}
				slog.Debug("LocalCore: stopped")
				return nil
			}

			var result *engine.Result
			if c.decoder.AcceptWaveform(audio) == 0 {
				t, err := parsePartialResult(c.decoder.PartialResult())
				if err != nil {
					return fmt.Errorf("failed to parse partial result: %w", err)
				}
				result = &engine.Result{Transcript: t, IsFinal: false}
			} else {
				t, err := parseResult(c.decoder.Result())
				if err != nil {
					return fmt.Errorf("failed to parse result: %w", err)
				}
				result = &engine.Result{Transcript: t, IsFinal: true}
			}
			if result.Transcript == "" {
				continue
			}

			if err := c.send(ctx, result); err != nil {
				return err
			}
		}
	}
}

func (c *Core) send(ctx context.Context, result *engine.Result) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case c.resultCh <- []*engine.Result{result}:
		return nil
	}
}

type partialResult struct {
	Partial string `json:"partial"`
}

type finalResult struct {
	Text string `json:"text"`
}

func parsePartialResult(data []byte) (string, error) {
	var r partialResult
	if err := sonic.Unmarshal(data, &r); err != nil {
		return "", err
	}
	return r.Partial, nil
}

func parseResult(data []byte) (string, error) {
	var r finalResult
	if err := sonic.Unmarshal(data, &r); err != nil {
		return "", err
	}
	return r.Text, nil
}

// DecoderProvider creates the decoder of one activation.
type DecoderProvider func(ctx context.Context, params *recognizer.Parameters) (Decoder, error)

var _ engine.CoreFactory = (*CoreFactory)(nil)

type CoreFactory struct {
	newDecoder DecoderProvider
}

func NewCoreFactory(newDecoder DecoderProvider) (*CoreFactory, error) {
	if newDecoder == nil {
		return nil, errors.New("decoder provider must be specified")
	}
	return &CoreFactory{newDecoder: newDecoder}, nil
}

func (f *CoreFactory) NewCore(
	ctx context.Context,
	params *recognizer.Parameters,
	audioCh <-chan []byte,
	resultCh chan<- []*engine.Result,
) (engine.Core, error) {
	decoder, err := f.newDecoder(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	return NewCore(decoder, audioCh, resultCh)
}
