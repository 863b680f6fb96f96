package capi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/go-cmp/cmp"

	"github.com/hekt/recognition-sdk/pkg/engine"
	"github.com/hekt/recognition-sdk/pkg/engine/local"
	"github.com/hekt/recognition-sdk/pkg/errs"
	"github.com/hekt/recognition-sdk/pkg/factory"
	"github.com/hekt/recognition-sdk/pkg/handle"
	"github.com/hekt/recognition-sdk/pkg/recognizer"
)

const waitTimeout = 5 * time.Second

// echoDecoder ends an utterance with every chunk and returns its text.
func echoDecoder(context.Context, *recognizer.Parameters) (local.Decoder, error) {
	var last string
	return &local.DecoderMock{
		AcceptWaveformFunc: func(audio []byte) int {
			last = string(bytes.TrimRight(audio, "\x00"))
			return 1
		},
		ResultFunc: func() []byte {
			return []byte(`{"text":"` + last + `"}`)
		},
		FinalResultFunc: func() []byte {
			return []byte(`{"text":""}`)
		},
	}, nil
}

func chunk(word string) []byte {
	c := make([]byte, engine.MinBufferSize)
	copy(c, word)
	return c
}

func newTestBridge(t *testing.T, stdin io.Reader) *Bridge {
	t.Helper()
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	f, err := factory.New(factory.WithDecoderProvider(echoDecoder), factory.WithStdin(stdin))
	if err != nil {
		t.Fatalf("factory.New() error = %v", err)
	}
	b, err := NewBridge(f)
	if err != nil {
		t.Fatalf("NewBridge() error = %v", err)
	}
	return b
}

// intentConfig reads stdin when audioFile is empty.
func intentConfig(audioFile string) string {
	return fmt.Sprintf(`
kind: intent
backend: local
audio:
  file: %q
  buffer_size: 1024
intents:
  - id: lights_on
    phrases: [turn on the light]
`, audioFile)
}

func writeAudio(t *testing.T, words ...string) string {
	t.Helper()
	var buf bytes.Buffer
	for _, w := range words {
		buf.Write(chunk(w))
	}
	path := filepath.Join(t.TempDir(), "audio.raw")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("failed to write audio: %v", err)
	}
	return path
}

func mustCreate(t *testing.T, b *Bridge, cfg string) handle.Handle {
	t.Helper()
	h, st := b.RecognizerFactoryCreate(cfg)
	if st != StatusOK {
		t.Fatalf("RecognizerFactoryCreate() = %v: %s", st, b.LastError(0))
	}
	return h
}

func TestNewBridge(t *testing.T) {
	if _, err := NewBridge(nil); err == nil {
		t.Error("NewBridge() error = nil, want error")
	}
}

func TestBridge_SingleShotScenario(t *testing.T) {
	b := newTestBridge(t, nil)
	h := mustCreate(t, b, intentConfig(writeAudio(t, "turn on the light")))

	if enabled, st := b.RecognizerIsEnabled(h); st != StatusOK || enabled {
		t.Errorf("RecognizerIsEnabled() = (%v, %v), want (false, OK)", enabled, st)
	}
	if st := b.RecognizerEnable(h); st != StatusOK {
		t.Fatalf("RecognizerEnable() = %v", st)
	}

	async, st := b.RecognizerRecognizeAsync(h)
	if st != StatusOK {
		t.Fatalf("RecognizerRecognizeAsync() = %v: %s", st, b.LastError(h))
	}
	result, st := b.RecognizerRecognizeAsyncWaitFor(async, waitTimeout)
	if st != StatusOK {
		t.Fatalf("RecognizerRecognizeAsyncWaitFor() = %v: %s", st, b.LastError(async))
	}
	if again, st := b.RecognizerRecognizeAsyncWaitFor(async, 0); st != StatusOK || again != result {
		t.Errorf("RecognizerRecognizeAsyncWaitFor() again = (%d, %v), want (%d, OK)", again, st, result)
	}
	if st := b.AsyncPoll(async); st != StatusOK {
		t.Errorf("AsyncPoll() = %v, want OK", st)
	}

	if text, st := b.ResultGetText(result); st != StatusOK || text != "turn on the light" {
		t.Errorf("ResultGetText() = (%q, %v), want (%q, OK)", text, st, "turn on the light")
	}
	if reason, st := b.ResultGetReason(result); st != StatusOK || reason != recognizer.ReasonRecognizedIntent {
		t.Errorf("ResultGetReason() = (%v, %v), want (%v, OK)", reason, st, recognizer.ReasonRecognizedIntent)
	}

	doc, st := b.ResultGetJSON(result)
	if st != StatusOK {
		t.Fatalf("ResultGetJSON() = %v", st)
	}
	var got map[string]any
	if err := sonic.UnmarshalString(doc, &got); err != nil {
		t.Fatalf("failed to unmarshal %s: %v", doc, err)
	}
	delete(got, "id")
	want := map[string]any{
		"text":      "turn on the light",
		"reason":    "RecognizedIntent",
		"intent_id": "lights_on",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ResultGetJSON() mismatch (-want +got):\n%s", diff)
	}

	if state, _ := b.RecognizerState(h); state != recognizer.StateIdle {
		t.Errorf("RecognizerState() = %v, want %v", state, recognizer.StateIdle)
	}
	if st := b.RecognizerDisable(h); st != StatusOK {
		t.Fatalf("RecognizerDisable() = %v", st)
	}
	if _, st := b.RecognizerRecognizeAsync(h); st != StatusInvalidState {
		t.Errorf("RecognizerRecognizeAsync() after disable = %v, want %v", st, StatusInvalidState)
	}
	if msg := b.LastError(h); msg == "" {
		t.Error("LastError() is empty after a failed call")
	}

	for _, release := range []func() Status{
		func() Status { return b.ResultRelease(result) },
		func() Status { return b.AsyncRelease(async) },
		func() Status { return b.RecognizerRelease(h) },
	} {
		if st := release(); st != StatusOK {
			t.Errorf("release = %v, want OK", st)
		}
	}
	if st := b.RecognizerEnable(h); st != StatusInvalidHandle {
		t.Errorf("RecognizerEnable() after release = %v, want %v", st, StatusInvalidHandle)
	}
	if _, st := b.ResultGetText(result); st != StatusInvalidHandle {
		t.Errorf("ResultGetText() after release = %v, want %v", st, StatusInvalidHandle)
	}
}

func TestBridge_ContinuousScenario(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	b := newTestBridge(t, pr)
	h := mustCreate(t, b, intentConfig(""))
	b.RecognizerEnable(h)

	if _, st := b.RecognizerPollEvent(h, 0); st != StatusNotFound {
		t.Errorf("RecognizerPollEvent() before start = %v, want %v", st, StatusNotFound)
	}

	started, st := b.RecognizerStartContinuous(h)
	if st != StatusOK {
		t.Fatalf("RecognizerStartContinuous() = %v: %s", st, b.LastError(h))
	}
	if st := b.AsyncWaitFor(started, waitTimeout); st != StatusOK {
		t.Fatalf("AsyncWaitFor(start) = %v: %s", st, b.LastError(started))
	}
	if state, _ := b.RecognizerState(h); state != recognizer.StateContinuousActive {
		t.Errorf("RecognizerState() = %v, want %v", state, recognizer.StateContinuousActive)
	}
	if st := b.RecognizerDisable(h); st != StatusBusy {
		t.Errorf("RecognizerDisable() = %v, want %v", st, StatusBusy)
	}
	if st := b.RecognizerRelease(h); st != StatusBusy {
		t.Errorf("RecognizerRelease() = %v, want %v", st, StatusBusy)
	}

	writeErr := make(chan error, 1)
	go func() {
		for _, w := range []string{"good morning", "turn on the light"} {
			if _, err := pw.Write(chunk(w)); err != nil {
				writeErr <- err
				return
			}
		}
		writeErr <- nil
	}()

	for i, want := range []struct {
		text   string
		reason recognizer.Reason
	}{
		{text: "good morning", reason: recognizer.ReasonRecognizedSpeech},
		{text: "turn on the light", reason: recognizer.ReasonRecognizedIntent},
	} {
		event, st := b.RecognizerPollEvent(h, waitTimeout)
		if st != StatusOK {
			t.Fatalf("RecognizerPollEvent() #%d = %v: %s", i, st, b.LastError(h))
		}
		if text, _ := b.ResultGetText(event); text != want.text {
			t.Errorf("event #%d text = %q, want %q", i, text, want.text)
		}
		if reason, _ := b.ResultGetReason(event); reason != want.reason {
			t.Errorf("event #%d reason = %v, want %v", i, reason, want.reason)
		}
		b.ResultRelease(event)
	}
	if err := <-writeErr; err != nil {
		t.Fatalf("failed to write audio: %v", err)
	}
	if _, st := b.RecognizerPollEvent(h, 10*time.Millisecond); st != StatusTimeout {
		t.Errorf("RecognizerPollEvent() with no event = %v, want %v", st, StatusTimeout)
	}

	stopped, st := b.RecognizerStopContinuous(h)
	if st != StatusOK {
		t.Fatalf("RecognizerStopContinuous() = %v", st)
	}
	// stdin reads cannot be interrupted, end the audio
	pw.Close()
	if st := b.AsyncWaitFor(stopped, waitTimeout); st != StatusOK {
		t.Fatalf("AsyncWaitFor(stop) = %v: %s", st, b.LastError(stopped))
	}

	if _, st := b.RecognizerPollEvent(h, 0); st != StatusNotFound {
		t.Errorf("RecognizerPollEvent() after drain = %v, want %v", st, StatusNotFound)
	}
	if st := b.RecognizerDisable(h); st != StatusOK {
		t.Errorf("RecognizerDisable() = %v, want OK", st)
	}
	if st := b.RecognizerRelease(h); st != StatusOK {
		t.Errorf("RecognizerRelease() = %v, want OK", st)
	}
}

func TestBridge_StopWithoutSession(t *testing.T) {
	b := newTestBridge(t, nil)
	h := mustCreate(t, b, intentConfig(""))
	b.RecognizerEnable(h)

	async, st := b.RecognizerStopContinuous(h)
	if st != StatusOK {
		t.Fatalf("RecognizerStopContinuous() = %v", st)
	}
	if st := b.AsyncPoll(async); st != StatusOK {
		t.Errorf("AsyncPoll() = %v, want OK", st)
	}
	if _, st := b.RecognizerRecognizeAsyncWaitFor(async, 0); st != StatusInvalidHandle {
		t.Errorf("RecognizerRecognizeAsyncWaitFor() on stop = %v, want %v", st, StatusInvalidHandle)
	}
}

func TestBridge_Parameters(t *testing.T) {
	b := newTestBridge(t, nil)
	h := mustCreate(t, b, intentConfig(""))

	if _, st := b.RecognizerGetParameter(h, recognizer.ParamLanguage); st != StatusNotFound {
		t.Errorf("RecognizerGetParameter() unset = %v, want %v", st, StatusNotFound)
	}
	if st := b.RecognizerSetParameter(h, recognizer.ParamLanguage, ParseValue("ja-JP")); st != StatusOK {
		t.Fatalf("RecognizerSetParameter() = %v", st)
	}
	if v, st := b.RecognizerGetParameter(h, recognizer.ParamLanguage); st != StatusOK || v != "ja-JP" {
		t.Errorf("RecognizerGetParameter() = (%v, %v), want (ja-JP, OK)", v, st)
	}
	if st := b.RecognizerSetParameter(h, "", "x"); st != StatusInvalidArgument {
		t.Errorf("RecognizerSetParameter() empty name = %v, want %v", st, StatusInvalidArgument)
	}
	if st := b.RecognizerSetParameter(h, "x", []string{"a"}); st != StatusInvalidArgument {
		t.Errorf("RecognizerSetParameter() slice = %v, want %v", st, StatusInvalidArgument)
	}
}

func TestBridge_InvalidHandles(t *testing.T) {
	b := newTestBridge(t, nil)
	h := mustCreate(t, b, intentConfig(""))

	tests := []struct {
		name string
		call func() Status
	}{
		{name: "unknown recognizer", call: func() Status { return b.RecognizerEnable(999) }},
		{name: "zero handle", call: func() Status { _, st := b.RecognizerState(0); return st }},
		{name: "recognizer as result", call: func() Status { _, st := b.ResultGetText(h); return st }},
		{name: "recognizer as async", call: func() Status { return b.AsyncWaitFor(h, 0) }},
		{name: "release recognizer as result", call: func() Status { return b.ResultRelease(h) }},
		{name: "release recognizer as async", call: func() Status { return b.AsyncRelease(h) }},
		{name: "release unknown", call: func() Status { return b.RecognizerRelease(999) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if st := tt.call(); st != StatusInvalidHandle {
				t.Errorf("status = %v, want %v", st, StatusInvalidHandle)
			}
		})
	}

	if _, st := b.RecognizerState(h); st != StatusOK {
		t.Errorf("RecognizerState() = %v, want OK after mismatched calls", st)
	}

	t.Run("unknown handles share one error slot", func(t *testing.T) {
		for i := range 100 {
			b.RecognizerEnable(handle.Handle(1000 + i))
		}
		if msg := b.LastError(1050); !strings.Contains(msg, "1099") {
			t.Errorf("LastError(1050) = %q, want the last unknown handle failure", msg)
		}

		b.mu.Lock()
		got := len(b.lastErrors)
		b.mu.Unlock()
		// 0 and the mismatched recognizer handle
		if got != 2 {
			t.Errorf("len(lastErrors) = %d, want 2", got)
		}
	})
}

func TestBridge_RecognizerFactoryCreate(t *testing.T) {
	b := newTestBridge(t, nil)

	if _, st := b.RecognizerFactoryCreate("kind: [broken"); st != StatusInvalidArgument {
		t.Errorf("RecognizerFactoryCreate() = %v, want %v", st, StatusInvalidArgument)
	}
	if msg := b.LastError(0); msg == "" {
		t.Error("LastError(0) is empty")
	}
}

type panicRecognizer struct {
	recognizer.Recognizer
}

func (panicRecognizer) Enable() {
	panic("boom")
}

func TestBridge_PanicRecovery(t *testing.T) {
	b := newTestBridge(t, nil)
	h := b.registry.Register(panicRecognizer{})

	if st := b.RecognizerEnable(h); st != StatusInternalError {
		t.Errorf("RecognizerEnable() = %v, want %v", st, StatusInternalError)
	}
	if msg := b.LastError(h); !strings.Contains(msg, "boom") {
		t.Errorf("LastError() = %q, want panic message", msg)
	}
}

func Test_statusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{name: "nil", err: nil, want: StatusOK},
		{name: "invalid state", err: errs.New(errs.KindInvalidState, "op", "msg"), want: StatusInvalidState},
		{name: "invalid handle", err: errs.New(errs.KindInvalidHandle, "op", "msg"), want: StatusInvalidHandle},
		{name: "busy", err: errs.New(errs.KindBusy, "op", "msg"), want: StatusBusy},
		{name: "not found", err: errs.New(errs.KindNotFound, "op", "msg"), want: StatusNotFound},
		{name: "invalid argument", err: errs.New(errs.KindInvalidArgument, "op", "msg"), want: StatusInvalidArgument},
		{name: "internal", err: errs.New(errs.KindInternal, "op", "msg"), want: StatusInternalError},
		{name: "foreign", err: errors.New("boom"), want: StatusInternalError},
		{name: "deadline", err: context.DeadlineExceeded, want: StatusTimeout},
		{name: "wrapped deadline", err: fmt.Errorf("wait: %w", context.DeadlineExceeded), want: StatusTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusOf(tt.err); got != tt.want {
				t.Errorf("statusOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{in: "true", want: true},
		{in: "false", want: false},
		{in: "1", want: int64(1)},
		{in: "-250", want: int64(-250)},
		{in: "0.5", want: 0.5},
		{in: "ja-JP", want: "ja-JP"},
		{in: "5s", want: "5s"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseValue(tt.in)); diff != "" {
				t.Errorf("ParseValue() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
