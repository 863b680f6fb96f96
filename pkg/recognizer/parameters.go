package recognizer

import (
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/hekt/recognition-sdk/pkg/errs"
)

// Well-known parameter names.
const (
	ParamLanguage              = "language"
	ParamInterimResults        = "interim_results"
	ParamInitialSilenceTimeout = "initial_silence_timeout"
	ParamEndSilenceTimeout     = "end_silence_timeout"
	ParamAudioBufferSize       = "audio.buffer_size"
	ParamGoogleProjectID       = "google.project_id"
	ParamGoogleRecognizer      = "google.recognizer"
	ParamGoogleReconnect       = "google.reconnect_interval"
)

// Parameters is the key-value configuration held by a recognizer.
//
// It has no locking of its own. A recognizer guards its instance and hands
// a Clone to every operation it starts.
type Parameters struct {
	values map[string]any
}

func NewParameters() *Parameters {
	return &Parameters{values: map[string]any{}}
}

// Set stores value under name. Accepted values are strings, bools, integers,
// floats and time.Duration (stored as milliseconds).
func (p *Parameters) Set(name string, value any) error {
	const op = "Parameters.Set"
	if name == "" {
		return errs.New(errs.KindInvalidArgument, op, "parameter name must be specified")
	}

	var v any
	switch t := value.(type) {
	case string, bool, int64, float64:
		v = t
	case int:
		v = int64(t)
	case int32:
		v = int64(t)
	case uint32:
		v = int64(t)
	case float32:
		v = float64(t)
	case time.Duration:
		v = t.Milliseconds()
	default:
		return errs.New(errs.KindInvalidArgument, op, "unsupported parameter value type")
	}

	if p.values == nil {
		p.values = map[string]any{}
	}
	p.values[name] = v
	return nil
}

// Get returns the stored value, or false when name is not set.
func (p *Parameters) Get(name string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[name]
	return v, ok
}

func (p *Parameters) Delete(name string) {
	if p == nil {
		return
	}
	delete(p.values, name)
}

func (p *Parameters) String(name string) (string, bool) {
	v, ok := p.Get(name)
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), true
	}
	return "", false
}

func (p *Parameters) Int(name string) (int64, bool) {
	v, ok := p.Get(name)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int64:
		return t, true
	case float64:
		return int64(t), true
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		return n, err == nil
	}
	return 0, false
}

func (p *Parameters) Float(name string) (float64, bool) {
	v, ok := p.Get(name)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	}
	return 0, false
}

func (p *Parameters) Bool(name string) (bool, bool) {
	v, ok := p.Get(name)
	if !ok {
		return false, false
	}
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(t)
		return b, err == nil
	}
	return false, false
}

// Duration reads numbers as milliseconds and strings as Go durations
// ("1m30s") or plain millisecond counts.
func (p *Parameters) Duration(name string) (time.Duration, bool) {
	v, ok := p.Get(name)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int64:
		return time.Duration(t) * time.Millisecond, true
	case float64:
		return time.Duration(t * float64(time.Millisecond)), true
	case string:
		if d, err := time.ParseDuration(t); err == nil {
			return d, true
		}
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return time.Duration(n) * time.Millisecond, true
		}
	}
	return 0, false
}

func (p *Parameters) Names() []string {
	if p == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(p.values))
}

func (p *Parameters) Len() int {
	if p == nil {
		return 0
	}
	return len(p.values)
}

// Clone returns an independent copy. Values are scalars, so a shallow map
// copy is deep.
func (p *Parameters) Clone() *Parameters {
	if p == nil {
		return NewParameters()
	}
	return &Parameters{values: maps.Clone(p.values)}
}
