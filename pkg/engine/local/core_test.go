package local

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hekt/recognition-sdk/pkg/engine"
	"github.com/hekt/recognition-sdk/pkg/recognizer"
)

func TestNewCore(t *testing.T) {
	type args struct {
		decoder  Decoder
		audioCh  <-chan []byte
		resultCh chan<- []*engine.Result
	}
	baseArgs := args{
		decoder:  &DecoderMock{},
		audioCh:  make(chan []byte),
		resultCh: make(chan []*engine.Result),
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name:    "success",
			args:    baseArgs,
			wantErr: false,
		},
		{
			name: "nil decoder",
			args: func() args {
				a := baseArgs
				a.decoder = nil
				return a
			}(),
			wantErr: true,
		},
		{
			name: "nil audio channel",
			args: func() args {
				a := baseArgs
				a.audioCh = nil
				return a
			}(),
			wantErr: true,
		},
		{
			name: "nil result channel",
			args: func() args {
				a := baseArgs
				a.resultCh = nil
				return a
			}(),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCore(tt.args.decoder, tt.args.audioCh, tt.args.resultCh)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCore() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && got == nil {
				t.Error("NewCore() = nil, want core")
			}
		})
	}
}

// wordDecoder treats every chunk as a word. A word ending with "." ends the
// utterance.
type wordDecoder struct {
	mu      sync.Mutex
	words   []string
	pending []string
	closed  bool
}

func (d *wordDecoder) AcceptWaveform(audio []byte) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	w := string(bytes.TrimRight(audio, "\x00"))
	d.pending = append(d.pending, strings.TrimSuffix(w, "."))
	if strings.HasSuffix(w, ".") {
		d.words = d.pending
		d.pending = nil
		return 1
	}
	return 0
}

func (d *wordDecoder) PartialResult() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return []byte(`{"partial":"` + strings.Join(d.pending, " ") + `"}`)
}

func (d *wordDecoder) Result() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return []byte(`{"text":"` + strings.Join(d.words, " ") + `"}`)
}

func (d *wordDecoder) FinalResult() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	text := strings.Join(d.pending, " ")
	d.pending = nil
	return []byte(`{"text":"` + text + `"}`)
}

func (d *wordDecoder) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

func TestCore_Start(t *testing.T) {
	t.Run("partial and final results", func(t *testing.T) {
		decoder := &wordDecoder{}
		audioCh := make(chan []byte, 4)
		resultCh := make(chan []*engine.Result, 4)

		audioCh <- []byte("hello")
		audioCh <- []byte("world.")
		audioCh <- []byte("good")
		audioCh <- []byte("bye")
		close(audioCh)

		c, err := NewCore(decoder, audioCh, resultCh)
		if err != nil {
			t.Fatalf("NewCore() error = %v", err)
		}
		if err := c.Start(context.Background()); err != nil {
			t.Fatalf("Core.Start() error = %v, want nil", err)
		}
		close(resultCh)

		var got [][]*engine.Result
		for results := range resultCh {
			got = append(got, results)
		}
		want := [][]*engine.Result{
			{{Transcript: "hello", IsFinal: false}},
			{{Transcript: "hello world", IsFinal: true}},
			{{Transcript: "good", IsFinal: false}},
			{{Transcript: "good bye", IsFinal: false}},
			{{Transcript: "good bye", IsFinal: true}},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("results mismatch (-want +got):\n%s", diff)
		}
		if !decoder.closed {
			t.Error("decoder is not closed")
		}
	})

	t.Run("empty results are skipped", func(t *testing.T) {
		decoder := &DecoderMock{
			AcceptWaveformFunc: func([]byte) int { return 0 },
			PartialResultFunc:  func() []byte { return []byte(`{"partial":""}`) },
			FinalResultFunc:    func() []byte { return []byte(`{"text":""}`) },
		}
		audioCh := make(chan []byte, 1)
		resultCh := make(chan []*engine.Result, 1)
		audioCh <- []byte("noise")
		close(audioCh)

		c, _ := NewCore(decoder, audioCh, resultCh)
		if err := c.Start(context.Background()); err != nil {
			t.Fatalf("Core.Start() error = %v, want nil", err)
		}
		if len(resultCh) != 0 {
			t.Errorf("len(resultCh) = %d, want 0", len(resultCh))
		}
	})

	t.Run("broken result", func(t *testing.T) {
		decoder := &DecoderMock{
			AcceptWaveformFunc: func([]byte) int { return 1 },
			ResultFunc:         func() []byte { return []byte(`{"text":"hello"`) },
		}
		audioCh := make(chan []byte, 1)
		audioCh <- []byte("hello")

		c, _ := NewCore(decoder, audioCh, make(chan []*engine.Result, 1))
		if err := c.Start(context.Background()); err == nil {
			t.Error("Core.Start() = nil, want error")
		}
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c, _ := NewCore(&DecoderMock{}, make(chan []byte), make(chan []*engine.Result))
		if err := c.Start(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("Core.Start() = %v, want %v", err, context.Canceled)
		}
	})
}

func Test_parsePartialResult(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    string
		wantErr bool
	}{
		{name: "success", data: []byte(`{"partial":"hello"}`), want: "hello"},
		{name: "empty", data: []byte(`{"partial":""}`), want: ""},
		{name: "non partial result", data: []byte(`{"text":"hello"}`), want: ""},
		{name: "invalid json", data: []byte(`{"partial":"hello"`), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePartialResult(tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("parsePartialResult() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("parsePartialResult() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_parseResult(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    string
		wantErr bool
	}{
		{name: "success", data: []byte(`{"text":"hello"}`), want: "hello"},
		{name: "empty", data: []byte(`{"text":""}`), want: ""},
		{name: "partial result", data: []byte(`{"partial":"hello"}`), want: ""},
		{name: "invalid json", data: []byte(`{"text":"hello"`), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseResult(tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseResult() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("parseResult() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoreFactory(t *testing.T) {
	t.Run("nil provider", func(t *testing.T) {
		if _, err := NewCoreFactory(nil); err == nil {
			t.Error("NewCoreFactory() error = nil, want error")
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		wantErr := errors.New("no model")
		f, _ := NewCoreFactory(func(context.Context, *recognizer.Parameters) (Decoder, error) {
			return nil, wantErr
		})
		if _, err := f.NewCore(context.Background(), nil, make(chan []byte), make(chan []*engine.Result)); !errors.Is(err, wantErr) {
			t.Errorf("CoreFactory.NewCore() error = %v, want %v", err, wantErr)
		}
	})

	t.Run("recognize once through pipeline", func(t *testing.T) {
		f, err := NewCoreFactory(func(context.Context, *recognizer.Parameters) (Decoder, error) {
			return &wordDecoder{}, nil
		})
		if err != nil {
			t.Fatalf("NewCoreFactory() error = %v", err)
		}

		var audio bytes.Buffer
		for _, w := range []string{"turn", "on", "light."} {
			chunk := make([]byte, engine.MinBufferSize)
			copy(chunk, w)
			audio.Write(chunk)
		}
		source, _ := engine.NewReaderSource(&audio)
		p, err := engine.NewPipeline(source, f, engine.WithBufferSize(engine.MinBufferSize))
		if err != nil {
			t.Fatalf("NewPipeline() error = %v", err)
		}

		got, err := p.RecognizeOnce(context.Background(), recognizer.NewParameters())
		if err != nil {
			t.Fatalf("Pipeline.RecognizeOnce() error = %v", err)
		}
		want := &engine.Result{Transcript: "turn on light", IsFinal: true}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("result mismatch (-want +got):\n%s", diff)
		}
	})
}
