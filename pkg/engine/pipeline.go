package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hekt/recognition-sdk/pkg/errs"
	"github.com/hekt/recognition-sdk/pkg/recognizer"
)

// Transcriber is what the recognizer variants need from a speech pipeline.
//
//go:generate moq -rm -out transcriber_mock.go . Transcriber ResultStream
type Transcriber interface {
	// RecognizeOnce returns the first final transcript, or nil when the
	// audio ended without one.
	RecognizeOnce(ctx context.Context, params *recognizer.Parameters) (*Result, error)
	// OpenStream prepares a continuous activation.
	OpenStream(ctx context.Context, params *recognizer.Parameters) (ResultStream, error)
}

// ResultStream is an opened continuous activation.
type ResultStream interface {
	// Run passes transcripts to handle in order until ctx is canceled or
	// the audio ends.
	Run(ctx context.Context, handle func([]*Result)) error
}

var _ Transcriber = (*Pipeline)(nil)

// Pipeline wires an AudioPump, a backend Core and an optional
// SilenceMonitor for every activation.
type Pipeline struct {
	source  AudioSource
	factory CoreFactory

	bufferSize   int
	drainTimeout time.Duration
}

func NewPipeline(source AudioSource, factory CoreFactory, opts ...Option) (*Pipeline, error) {
	if source == nil {
		return nil, errors.New("audio source must be specified")
	}
	if factory == nil {
		return nil, errors.New("core factory must be specified")
	}

	o := &options{
		bufferSize:   DefaultBufferSize,
		drainTimeout: DefaultDrainTimeout,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return &Pipeline{
		source:       source,
		factory:      factory,
		bufferSize:   o.bufferSize,
		drainTimeout: o.drainTimeout,
	}, nil
}

func (p *Pipeline) RecognizeOnce(ctx context.Context, params *recognizer.Parameters) (*Result, error) {
	a, err := p.open(ctx, params)
	if err != nil {
		return nil, err
	}

	var final *Result
	err = a.run(ctx, func(results []*Result) bool {
		for _, r := range results {
			if r.IsFinal && r.Transcript != "" {
				final = r
				return false
			}
		}
		return true
	})
	if errors.Is(err, ErrInactive) {
		slog.Debug("Pipeline: no speech before timeout")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return final, nil
}

func (p *Pipeline) OpenStream(ctx context.Context, params *recognizer.Parameters) (ResultStream, error) {
	return p.open(ctx, params)
}

func (p *Pipeline) open(ctx context.Context, params *recognizer.Parameters) (*activation, error) {
	bufferSize := p.bufferSize
	if v, ok := params.Int(recognizer.ParamAudioBufferSize); ok {
		if v < MinBufferSize {
			return nil, errs.New(errs.KindInvalidArgument, "Pipeline.Open", "buffer size must be greater than or equal to 1024")
		}
		bufferSize = int(v)
	}
	timeout, _ := params.Duration(recognizer.ParamInitialSilenceTimeout)

	reader, err := p.source.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio source: %w", err)
	}

	return &activation{
		pipeline:   p,
		params:     params,
		reader:     reader,
		bufferSize: bufferSize,
		timeout:    timeout,
	}, nil
}

type activation struct {
	pipeline   *Pipeline
	params     *recognizer.Parameters
	reader     io.ReadCloser
	bufferSize int
	timeout    time.Duration
}

func (a *activation) Run(ctx context.Context, handle func([]*Result)) error {
	err := a.run(ctx, func(results []*Result) bool {
		handle(results)
		return true
	})
	if errors.Is(err, ErrInactive) {
		slog.Debug("Pipeline: session ended by inactivity")
		return nil
	}
	return err
}

// run drives one activation. Canceling ctx ends the audio; the backend then
// drains for up to the drain timeout. handle returning false ends the
// activation at once. Workers still running one drain timeout after the
// activation was aborted are abandoned.
func (a *activation) run(ctx context.Context, handle func([]*Result) bool) error {
	slog.Debug("Pipeline: start")
	closeReader := sync.OnceFunc(func() {
		if err := a.reader.Close(); err != nil {
			slog.Error(fmt.Sprintf("failed to close audio reader: %v", err))
		}
	})
	defer closeReader()

	// not sure what is the appropriate buffer size.
	audioCh := make(chan []byte, 10)
	resultCh := make(chan []*Result, 10)

	drainCtx, abort := context.WithCancel(context.WithoutCancel(ctx))
	defer abort()

	pump, err := NewAudioPump(a.reader, audioCh, a.bufferSize)
	if err != nil {
		return fmt.Errorf("failed to create audio pump: %w", err)
	}
	var monitor *SilenceMonitor
	if a.timeout > 0 {
		if monitor, err = NewSilenceMonitor(a.timeout); err != nil {
			return fmt.Errorf("failed to create silence monitor: %w", err)
		}
	}

	core, err := a.pipeline.factory.NewCore(drainCtx, a.params, audioCh, resultCh)
	if err != nil {
		return fmt.Errorf("failed to create core: %w", err)
	}

	var finished atomic.Bool
	finishedCh := make(chan struct{})
	finish := sync.OnceFunc(func() {
		finished.Store(true)
		close(finishedCh)
		abort()
	})

	done := make(chan struct{})
	defer close(done)
	abandoned := make(chan struct{})
	go a.watch(ctx, finishedCh, done, abort, abandoned)

	eg, egCtx := errgroup.WithContext(drainCtx)
	recvCtx, stopAudio := context.WithCancel(egCtx)
	defer stopAudio()
	stopAfter := context.AfterFunc(ctx, stopAudio)
	defer stopAfter()
	// unblocks a pending Read
	stopRead := context.AfterFunc(recvCtx, closeReader)
	defer stopRead()
	monitorCtx, stopMonitor := context.WithCancel(egCtx)
	defer stopMonitor()

	eg.Go(func() error {
		err := pump.Start(recvCtx)
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("error occured in audio pump: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		defer close(resultCh)
		if err := core.Start(egCtx); err != nil {
			return fmt.Errorf("error occured in core: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		defer stopMonitor()
		for results := range resultCh {
			if monitor != nil {
				monitor.Notify()
			}
			if finished.Load() {
				continue
			}
			if !handle(results) {
				finish()
			}
		}
		return nil
	})
	if monitor != nil {
		eg.Go(func() error {
			err := monitor.Start(monitorCtx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	waitCh := make(chan error, 1)
	go func() {
		waitCh <- eg.Wait()
	}()
	select {
	case err = <-waitCh:
	case <-abandoned:
		// results arriving from here on are dropped
		finished.Store(true)
		slog.Debug("Pipeline: workers abandoned")
		err = nil
	}

	switch {
	case finished.Load():
		err = nil
	case err != nil && ctx.Err() != nil && errors.Is(err, context.Canceled):
		err = nil
	}

	slog.Debug("Pipeline: stopped")
	return err
}

// watch aborts the activation one drain timeout after ctx is done and
// closes abandoned if the workers are still running one drain timeout
// after the abort.
func (a *activation) watch(
	ctx context.Context,
	finishedCh <-chan struct{},
	done <-chan struct{},
	abort context.CancelFunc,
	abandoned chan<- struct{},
) {
	drainTimeout := a.pipeline.drainTimeout

	select {
	case <-done:
		return
	case <-finishedCh:
	case <-ctx.Done():
		timer := time.NewTimer(drainTimeout)
		select {
		case <-done:
			timer.Stop()
			return
		case <-finishedCh:
			timer.Stop()
		case <-timer.C:
			slog.Debug("Pipeline: drain timed out")
			abort()
		}
	}

	timer := time.NewTimer(drainTimeout)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
		close(abandoned)
	}
}
