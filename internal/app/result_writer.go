package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/bytedance/sonic"

	"github.com/hekt/recognition-sdk/pkg/recognizer"
)

// ResultWriter writes final results and events to resultWriter and interim
// events to interimWriter.
type ResultWriter struct {
	eventCh       <-chan recognizer.Payload
	resultWriter  io.Writer
	interimWriter io.Writer
	format        string
}

func NewResultWriter(
	eventCh <-chan recognizer.Payload,
	resultWriter io.Writer,
	interimWriter io.Writer,
	format string,
) *ResultWriter {
	return &ResultWriter{
		eventCh:       eventCh,
		resultWriter:  resultWriter,
		interimWriter: interimWriter,
		format:        format,
	}
}

// Start writes until the event channel is closed. An interim transcript
// that was never finalized is written as a result on return.
func (w *ResultWriter) Start(ctx context.Context) error {
	var pending recognizer.Payload
	defer func() {
		if pending == nil {
			return
		}
		if err := w.writeResult(pending); err != nil {
			slog.Error(fmt.Sprintf("failed to write interim result: %v", err))
		}
		slog.Debug("ResultWriter: interim result written")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p, ok := <-w.eventCh:
			if !ok {
				return nil
			}

			switch p.PayloadReason() {
			case recognizer.ReasonNoMatch:
				continue
			case recognizer.ReasonRecognizingSpeech:
				pending = p
				if _, err := w.interimWriter.Write([]byte(p.PayloadText())); err != nil {
					return fmt.Errorf("failed to write interim result: %w", err)
				}
			default:
				pending = nil
				if err := w.writeResult(p); err != nil {
					return err
				}
			}
		}
	}
}

func (w *ResultWriter) writeResult(p recognizer.Payload) error {
	data, err := encode(p, w.format)
	if err != nil {
		return err
	}
	if _, err := w.resultWriter.Write(data); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func encode(p recognizer.Payload, format string) ([]byte, error) {
	switch format {
	case formatJSON:
		data, err := sonic.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result: %w", err)
		}
		return data, nil
	default:
		return []byte(p.PayloadText()), nil
	}
}
