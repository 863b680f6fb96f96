package recognizer

import "errors"

type options struct {
	name     string
	executor Executor
	params   *Parameters
}

type Option func(*options) error

// WithName sets the name used in logs.
func WithName(name string) Option {
	return func(o *options) error {
		if name == "" {
			return errors.New("name must be 1 or more characters")
		}
		o.name = name
		return nil
	}
}

// WithExecutor sets the executor that runs recognition work. The shared
// worker pool is used by default.
func WithExecutor(executor Executor) Option {
	return func(o *options) error {
		if executor == nil {
			return errors.New("executor must be specified")
		}
		o.executor = executor
		return nil
	}
}

// WithParameters sets the initial parameters. They are copied.
func WithParameters(params *Parameters) Option {
	return func(o *options) error {
		if params == nil {
			return errors.New("parameters must be specified")
		}
		o.params = params.Clone()
		return nil
	}
}
