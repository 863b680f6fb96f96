package app

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/go-cmp/cmp"

	"github.com/hekt/recognition-sdk/internal/testutil"
	"github.com/hekt/recognition-sdk/pkg/recognizer"
	"github.com/hekt/recognition-sdk/pkg/recognizer/intent"
	"github.com/hekt/recognition-sdk/pkg/recognizer/transcription"
)

func TestNewResultWriter(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		eventCh := make(chan recognizer.Payload)
		resultWriter := &bytes.Buffer{}
		interimWriter := &bytes.Buffer{}
		want := &ResultWriter{
			eventCh:       eventCh,
			resultWriter:  resultWriter,
			interimWriter: interimWriter,
			format:        formatText,
		}
		got := NewResultWriter(eventCh, resultWriter, interimWriter, formatText)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("NewResultWriter() = %v, want %v", got, want)
		}
	})
}

func TestResultWriter_Start(t *testing.T) {
	event := func(reason recognizer.Reason, text string) recognizer.Payload {
		return &transcription.Event{SessionID: "s", Reason: reason, Text: text}
	}

	t.Run("interim and final", func(t *testing.T) {
		eventCh := make(chan recognizer.Payload)
		resultWriter := &bytes.Buffer{}
		interimWriter := &bytes.Buffer{}
		w := NewResultWriter(eventCh, resultWriter, interimWriter, formatText)

		var wg sync.WaitGroup
		wg.Add(1)
		var got error
		go func() {
			defer wg.Done()
			got = w.Start(context.Background())
		}()

		eventCh <- event(recognizer.ReasonRecognizingSpeech, "a")
		eventCh <- event(recognizer.ReasonRecognizingSpeech, "ab")
		eventCh <- event(recognizer.ReasonRecognizedSpeech, "abc")
		eventCh <- event(recognizer.ReasonNoMatch, "")
		eventCh <- event(recognizer.ReasonRecognizingSpeech, "d")
		close(eventCh)
		wg.Wait()

		if got != nil {
			t.Errorf("ResultWriter.Start() error = %v, want nil", got)
		}
		// the unfinished "d" is flushed on return
		if diff := cmp.Diff("abcd", resultWriter.String()); diff != "" {
			t.Errorf("unexpected result: (-want +got)\n%s", diff)
		}
		if diff := cmp.Diff("abd", interimWriter.String()); diff != "" {
			t.Errorf("unexpected interim: (-want +got)\n%s", diff)
		}
	})

	t.Run("json format", func(t *testing.T) {
		eventCh := make(chan recognizer.Payload, 1)
		resultWriter := &bytes.Buffer{}
		w := NewResultWriter(eventCh, resultWriter, &bytes.Buffer{}, formatJSON)

		eventCh <- &intent.Event{
			SessionID: "s",
			Sequence:  1,
			Reason:    recognizer.ReasonRecognizedIntent,
			Text:      "lights on",
			IntentID:  "lights_on",
		}
		close(eventCh)

		if err := w.Start(context.Background()); err != nil {
			t.Fatalf("ResultWriter.Start() error = %v", err)
		}
		var got map[string]any
		if err := sonic.Unmarshal(resultWriter.Bytes(), &got); err != nil {
			t.Fatalf("failed to unmarshal result: %v", err)
		}
		want := map[string]any{
			"session_id": "s",
			"sequence":   float64(1),
			"reason":     "RecognizedIntent",
			"text":       "lights on",
			"intent_id":  "lights_on",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("unexpected result: (-want +got)\n%s", diff)
		}
	})

	t.Run("context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		w := NewResultWriter(make(chan recognizer.Payload), &bytes.Buffer{}, &bytes.Buffer{}, formatText)
		if got := w.Start(ctx); !errors.Is(got, context.Canceled) {
			t.Errorf("ResultWriter.Start() error = %v, want %v", got, context.Canceled)
		}
	})

	t.Run("write error", func(t *testing.T) {
		eventCh := make(chan recognizer.Payload, 1)
		eventCh <- event(recognizer.ReasonRecognizedSpeech, "abc")
		close(eventCh)

		writeErr := errors.New("write error")
		resultWriter := &testutil.IOWriterMock{
			WriteFunc: func([]byte) (int, error) {
				return 0, writeErr
			},
		}
		w := NewResultWriter(eventCh, resultWriter, &bytes.Buffer{}, formatText)
		if got := w.Start(context.Background()); !errors.Is(got, writeErr) {
			t.Errorf("ResultWriter.Start() error = %v, want %v", got, writeErr)
		}
	})
}
