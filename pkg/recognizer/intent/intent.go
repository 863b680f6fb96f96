// Package intent is the recognizer variant that resolves final transcripts
// to intents.
package intent

import (
	"errors"

	"github.com/google/uuid"

	"github.com/hekt/recognition-sdk/pkg/engine"
	"github.com/hekt/recognition-sdk/pkg/recognizer"
)

// Result carries an IntentID only when Reason is ReasonRecognizedIntent.
type Result struct {
	ID       string            `json:"id"`
	Text     string            `json:"text"`
	Reason   recognizer.Reason `json:"reason"`
	IntentID string            `json:"intent_id,omitempty"`
}

func (r *Result) PayloadText() string {
	return r.Text
}

func (r *Result) PayloadReason() recognizer.Reason {
	return r.Reason
}

type Event struct {
	SessionID string            `json:"session_id"`
	Sequence  int               `json:"sequence"`
	Reason    recognizer.Reason `json:"reason"`
	Text      string            `json:"text"`
	IntentID  string            `json:"intent_id,omitempty"`
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

	matcher Matcher
}

// New returns a disabled intent recognizer.
func New(transcriber engine.Transcriber, matcher Matcher, opts ...recognizer.Option) (*Recognizer, error) {
	if matcher == nil {
		return nil, errors.New("matcher must be specified")
	}

	r := &Recognizer{matcher: matcher}
	adapter, err := engine.NewAdapter(transcriber, r.toResult, r.toEvent)
	if err != nil {
		return nil, err
	}

	base, err := recognizer.NewBase(adapter, append([]recognizer.Option{recognizer.WithName("intent")}, opts...)...)
	if err != nil {
		return nil, err
	}
	r.Base = base
	return r, nil
}

func (r *Recognizer) classify(text string) (recognizer.Reason, string) {
	if id, ok := r.matcher.Match(text); ok {
		return recognizer.ReasonRecognizedIntent, id
	}
	return recognizer.ReasonRecognizedSpeech, ""
}

func (r *Recognizer) toResult(res *engine.Result) *Result {
	if res == nil {
		return &Result{ID: uuid.NewString(), Reason: recognizer.ReasonNoMatch}
	}
	reason, intentID := r.classify(res.Transcript)
	return &Result{
		ID:       uuid.NewString(),
		Text:     res.Transcript,
		Reason:   reason,
		IntentID: intentID,
	}
}

// toEvent matches final transcripts only.
func (r *Recognizer) toEvent(sessionID string, seq int, res *engine.Result) *Event {
	e := &Event{
		SessionID: sessionID,
		Sequence:  seq,
		Reason:    recognizer.ReasonRecognizingSpeech,
		Text:      res.Transcript,
	}
	if res.IsFinal {
		e.Reason, e.IntentID = r.classify(res.Transcript)
	}
	return e
}
