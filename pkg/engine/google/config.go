package google

import (
	"errors"
	"fmt"
	"time"

	"github.com/hekt/recognition-sdk/pkg/recognizer"
)

const (
	// maxStreamDuration is the maximum duration for which the stream remains connected
	maxStreamDuration = 5 * time.Minute

	// reconnectLeadTime is the lead time before the stream timeout to initiate reconnection attempts.
	reconnectLeadTime = 10 * time.Second

	DefaultReconnectInterval = maxStreamDuration - reconnectLeadTime
)

// Config is the per-activation configuration read from recognizer
// parameters.
type Config struct {
	ProjectID         string
	RecognizerName    string
	ReconnectInterval time.Duration
	// LanguageCode overrides the recognizer's language when set.
	LanguageCode   string
	InterimResults bool
}

// ConfigFromParameters reads google.project_id, google.recognizer,
// google.reconnect_interval, language and interim_results.
func ConfigFromParameters(params *recognizer.Parameters) (Config, error) {
	cfg := Config{
		ReconnectInterval: DefaultReconnectInterval,
		InterimResults:    true,
	}
	cfg.ProjectID, _ = params.String(recognizer.ParamGoogleProjectID)
	cfg.RecognizerName, _ = params.String(recognizer.ParamGoogleRecognizer)
	cfg.LanguageCode, _ = params.String(recognizer.ParamLanguage)
	if d, ok := params.Duration(recognizer.ParamGoogleReconnect); ok {
		cfg.ReconnectInterval = d
	}
	if b, ok := params.Bool(recognizer.ParamInterimResults); ok {
		cfg.InterimResults = b
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid google config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.ProjectID == "" {
		return errors.New("project ID must be specified")
	}
	if c.RecognizerName == "" {
		return errors.New("recognizer name must be specified")
	}
	if c.ReconnectInterval < time.Minute {
		return errors.New("reconnect interval must be greater than or equal to 1 minute")
	}
	return nil
}

func (c Config) RecognizerFullname() string {
	return RecognizerFullname(c.ProjectID, c.RecognizerName)
}

func ParentName(projectID string) string {
	return fmt.Sprintf("projects/%s/locations/global", projectID)
}

func RecognizerFullname(projectID, recognizerName string) string {
	return fmt.Sprintf("%s/recognizers/%s", ParentName(projectID), recognizerName)
}
