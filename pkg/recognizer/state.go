package recognizer

import "fmt"

// State is the lifecycle state of a recognizer.
type State int

const (
	StateDisabled State = iota
	StateIdle
	StateRecognizing
	StateContinuousActive
	StateStopping
)

func (s State) String() string {
	switch s {
	case StateDisabled:
		return "Disabled"
	case StateIdle:
		return "Idle"
	case StateRecognizing:
		return "Recognizing"
	case StateContinuousActive:
		return "ContinuousActive"
	case StateStopping:
		return "Stopping"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Busy reports whether an operation is in flight.
func (s State) Busy() bool {
	return s == StateRecognizing || s == StateContinuousActive || s == StateStopping
}

// Reason classifies a result or an event payload.
type Reason int

const (
	ReasonNoMatch Reason = iota
	ReasonRecognizingSpeech
	ReasonRecognizedSpeech
	ReasonRecognizedIntent
)

func (r Reason) String() string {
	switch r {
	case ReasonNoMatch:
		return "NoMatch"
	case ReasonRecognizingSpeech:
		return "RecognizingSpeech"
	case ReasonRecognizedSpeech:
		return "RecognizedSpeech"
	case ReasonRecognizedIntent:
		return "RecognizedIntent"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Payload is implemented by every result and event type so that callers
// on the far side of the C bridge can read them without knowing the variant.
type Payload interface {
	PayloadText() string
	PayloadReason() Reason
}
