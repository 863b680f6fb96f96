// Package transcription is the recognizer variant producing plain
// transcripts.
package transcription

import (
	"github.com/google/uuid"

	"github.com/hekt/recognition-sdk/pkg/engine"
	"github.com/hekt/recognition-sdk/pkg/recognizer"
)

type Result struct {
	ID     string            `json:"id"`
	Text   string            `json:"text"`
	Reason recognizer.Reason `json:"reason"`
}

func (r *Result) PayloadText() string {
	return r.Text
}

func (r *Result) PayloadReason() recognizer.Reason {
	return r.Reason
}

// Event is one transcript of a continuous session. Sequence starts at 1.
type Event struct {
	SessionID string            `json:"session_id"`
	Sequence  int               `json:"sequence"`
	Reason    recognizer.Reason `json:"reason"`
	Text      string            `json:"text"`
}

func (e *Event) PayloadText() string {
	return e.Text
}

func (e *Event) PayloadReason() recognizer.Reason {
	return e.Reason
}

var (
	_ recognizer.AsyncRecognizer[*Result, *Event] = (*Recognizer)(nil)
	_ recognizer.Recognizer                       = (*Recognizer)(nil)
)

type Recognizer struct {
	*recognizer.Base[*Result, *Event]
}

// New returns a disabled transcription recognizer.
func New(transcriber engine.Transcriber, opts ...recognizer.Option) (*Recognizer, error) {
	adapter, err := engine.NewAdapter(transcriber, toResult, toEvent)
	if err != nil {
		return nil, err
	}

	base, err := recognizer.NewBase(adapter, append([]recognizer.Option{recognizer.WithName("transcription")}, opts...)...)
	if err != nil {
		return nil, err
	}
	return &Recognizer{Base: base}, nil
}

func toResult(r *engine.Result) *Result {
	if r == nil {
		return &Result{ID: uuid.NewString(), Reason: recognizer.ReasonNoMatch}
	}
	return &Result{
		ID:     uuid.NewString(),
		Text:   r.Transcript,
		Reason: recognizer.ReasonRecognizedSpeech,
	}
}

func toEvent(sessionID string, seq int, r *engine.Result) *Event {
	reason := recognizer.ReasonRecognizingSpeech
	if r.IsFinal {
		reason = recognizer.ReasonRecognizedSpeech
	}
	return &Event{
		SessionID: sessionID,
		Sequence:  seq,
		Reason:    reason,
		Text:      r.Transcript,
	}
}
