package factory

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hekt/recognition-sdk/pkg/engine"
	"github.com/hekt/recognition-sdk/pkg/engine/google"
	"github.com/hekt/recognition-sdk/pkg/recognizer"
	"github.com/hekt/recognition-sdk/pkg/recognizer/intent"
)

const (
	KindTranscription = "transcription"
	KindIntent        = "intent"

	BackendGoogle = "google"
	BackendLocal  = "local"
)

// Config describes one recognizer.
type Config struct {
	Name        string          `yaml:"name"`
	Kind        string          `yaml:"kind"`
	Backend     string          `yaml:"backend"`
	Audio       AudioConfig     `yaml:"audio"`
	Parameters  map[string]any  `yaml:"parameters"`
	Intents     []intent.Intent `yaml:"intents"`
	WorkerLimit int             `yaml:"worker_limit"`
}

type AudioConfig struct {
	// File is read once per activation. Standard input is used when empty.
	File       string `yaml:"file"`
	BufferSize int    `yaml:"buffer_size"`
	// DrainTimeout is a duration string such as "5s".
	DrainTimeout time.Duration `yaml:"drain_timeout"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates a YAML config. Unknown keys are errors.
func ParseConfig(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("config is empty")
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if !slices.Contains([]string{KindTranscription, KindIntent}, c.Kind) {
		return fmt.Errorf("unknown kind: %q", c.Kind)
	}
	if !slices.Contains([]string{BackendGoogle, BackendLocal}, c.Backend) {
		return fmt.Errorf("unknown backend: %q", c.Backend)
	}
	if c.WorkerLimit < 0 {
		return errors.New("worker limit must be greater than or equal to 0")
	}
	if c.Audio.BufferSize != 0 && c.Audio.BufferSize < engine.MinBufferSize {
		return fmt.Errorf("buffer size must be greater than or equal to %d", engine.MinBufferSize)
	}
	if c.Audio.DrainTimeout < 0 {
		return errors.New("drain timeout must not be negative")
	}

	switch c.Kind {
	case KindIntent:
		if len(c.Intents) == 0 {
			return errors.New("intents must be specified for intent recognizer")
		}
		if _, err := intent.NewPhraseMatcher(c.Intents); err != nil {
			return fmt.Errorf("invalid intents: %w", err)
		}
	case KindTranscription:
		if len(c.Intents) > 0 {
			return errors.New("intents are only allowed for intent recognizer")
		}
	}

	params, err := c.parameters()
	if err != nil {
		return err
	}
	if c.Backend == BackendGoogle {
		if _, err := google.ConfigFromParameters(params); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) parameters() (*recognizer.Parameters, error) {
	params := recognizer.NewParameters()
	for name, value := range c.Parameters {
		if err := params.Set(name, value); err != nil {
			return nil, fmt.Errorf("invalid parameter %s: %w", name, err)
		}
	}
	return params, nil
}

func (c *Config) pipelineOptions() []engine.Option {
	var opts []engine.Option
	if c.Audio.BufferSize > 0 {
		opts = append(opts, engine.WithBufferSize(c.Audio.BufferSize))
	}
	if c.Audio.DrainTimeout > 0 {
		opts = append(opts, engine.WithDrainTimeout(c.Audio.DrainTimeout))
	}
	return opts
}
