package recognizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	evbus "github.com/asaskevich/EventBus"

	"github.com/hekt/recognition-sdk/internal/worker"
	"github.com/hekt/recognition-sdk/pkg/errs"
)

var _ AsyncRecognizer[any, any] = (*Base[any, any])(nil)

// Base implements the lifecycle shared by every recognizer variant. The
// variant supplies an Engine and Base decides which operations may run.
//
// A single mutex guards the state, the closed flag, the parameters and the
// active session. Engine code always runs without it.
type Base[R, E any] struct {
	name     string
	engine   Engine[R, E]
	executor Executor
	bus      evbus.Bus

	mu     sync.Mutex
	state  State
	closed bool
	params *Parameters
	active *activeSession[E]
	last   *Session[E]
}

type activeSession[E any] struct {
	session *Session[E]
	cancel  context.CancelFunc
	stopped *Future[struct{}]
}

// NewBase returns a disabled recognizer driving engine.
func NewBase[R, E any](engine Engine[R, E], opts ...Option) (*Base[R, E], error) {
	if engine == nil {
		return nil, errors.New("engine must be specified")
	}

	o := &options{name: "recognizer"}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if o.executor == nil {
		o.executor = worker.Default()
	}
	if o.params == nil {
		o.params = NewParameters()
	}

	return &Base[R, E]{
		name:     o.name,
		engine:   engine,
		executor: o.executor,
		bus:      evbus.New(),
		state:    StateDisabled,
		params:   o.params,
	}, nil
}

func (b *Base[R, E]) Name() string {
	return b.name
}

func (b *Base[R, E]) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Base[R, E]) IsEnabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.closed && b.state != StateDisabled
}

// Enable moves a disabled recognizer to Idle. It never fails.
func (b *Base[R, E]) Enable() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || b.state != StateDisabled {
		return
	}
	b.state = StateIdle
	slog.Debug(fmt.Sprintf("%s: enabled", b.name))
}

// Disable moves an idle recognizer to Disabled. It fails with a busy error
// while any operation is in flight.
func (b *Base[R, E]) Disable() error {
	const op = "Disable"

	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case b.closed:
		return errs.New(errs.KindInvalidState, op, "recognizer is closed")
	case b.state == StateDisabled:
		return nil
	case b.state.Busy():
		return errs.New(errs.KindBusy, op, fmt.Sprintf("recognizer is %s", b.state))
	}
	b.state = StateDisabled
	slog.Debug(fmt.Sprintf("%s: disabled", b.name))
	return nil
}

func (b *Base[R, E]) SetParameter(name string, value any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return errs.New(errs.KindInvalidState, "SetParameter", "recognizer is closed")
	}
	return b.params.Set(name, value)
}

func (b *Base[R, E]) Parameter(name string) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.params.Get(name)
}

// Parameters returns a snapshot of the current parameters.
func (b *Base[R, E]) Parameters() *Parameters {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.params.Clone()
}

func (b *Base[R, E]) checkReadyLocked(op string) error {
	switch {
	case b.closed:
		return errs.New(errs.KindInvalidState, op, "recognizer is closed")
	case b.state == StateDisabled:
		return errs.New(errs.KindInvalidState, op, "recognizer is disabled")
	case b.state != StateIdle:
		return errs.New(errs.KindBusy, op, fmt.Sprintf("recognizer is %s", b.state))
	}
	return nil
}

// RecognizeAsync starts a single-shot recognition. ctx bounds nothing but
// the values it carries; the operation always runs to completion.
func (b *Base[R, E]) RecognizeAsync(ctx context.Context) (*Future[R], error) {
	const op = "RecognizeAsync"

	b.mu.Lock()
	if err := b.checkReadyLocked(op); err != nil {
		b.mu.Unlock()
		return nil, err
	}
	b.state = StateRecognizing
	params := b.params.Clone()
	b.mu.Unlock()

	f := newFuture[R]()
	workCtx := context.WithoutCancel(ctx)
	if err := b.executor.Submit(func() { b.runRecognize(workCtx, params, f) }); err != nil {
		b.transition(StateRecognizing, StateIdle)
		return nil, errs.Wrap(errs.KindBusy, op, "failed to schedule recognition", err)
	}

	slog.Debug(fmt.Sprintf("%s: recognition started", b.name))
	return f, nil
}

func (b *Base[R, E]) runRecognize(ctx context.Context, params *Parameters, f *Future[R]) {
	const op = "RecognizeAsync"

	res, err := b.recognize(ctx, params)
	b.transition(StateRecognizing, StateIdle)

	if err != nil {
		err = errs.Wrap(errs.KindInternal, op, "recognition failed", err)
		f.fail(err)
		slog.Debug(fmt.Sprintf("%s: recognition failed", b.name), "error", err)
		b.publish(topicCanceled, CanceledEvent{Err: err})
		return
	}

	f.complete(res, nil)
	slog.Debug(fmt.Sprintf("%s: recognition completed", b.name))
	b.publish(topicRecognized, res)
}

func (b *Base[R, E]) recognize(ctx context.Context, params *Parameters) (res R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("engine panicked: %v", r)
		}
	}()
	return b.engine.Recognize(ctx, params)
}

// StartContinuousRecognitionAsync opens a continuous session. The state is
// ContinuousActive when it returns; the future resolves once the engine has
// confirmed the session.
func (b *Base[R, E]) StartContinuousRecognitionAsync(ctx context.Context) (*Future[*Session[E]], error) {
	const op = "StartContinuousRecognitionAsync"

	b.mu.Lock()
	if err := b.checkReadyLocked(op); err != nil {
		b.mu.Unlock()
		return nil, err
	}
	sessionCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	a := &activeSession[E]{
		session: newSession[E](),
		cancel:  cancel,
		stopped: newFuture[struct{}](),
	}
	prev := b.last
	b.state = StateContinuousActive
	b.active = a
	b.last = a.session
	params := b.params.Clone()
	b.mu.Unlock()

	started := newFuture[*Session[E]]()
	if err := b.executor.Submit(func() { b.runSession(sessionCtx, params, a, started) }); err != nil {
		cancel()
		a.session.finish(err)
		b.mu.Lock()
		b.active = nil
		b.last = prev
		b.state = StateIdle
		b.mu.Unlock()
		a.stopped.complete(struct{}{}, nil)
		return nil, errs.Wrap(errs.KindBusy, op, "failed to schedule session", err)
	}

	slog.Debug(fmt.Sprintf("%s: session starting", b.name), "session", a.session.ID())
	return started, nil
}

func (b *Base[R, E]) runSession(
	ctx context.Context,
	params *Parameters,
	a *activeSession[E],
	started *Future[*Session[E]],
) {
	const op = "StartContinuousRecognitionAsync"
	id := a.session.ID()

	stream, err := b.open(ctx, params, id)
	if err != nil {
		err = errs.Wrap(errs.KindInternal, op, "failed to start session", err)
		b.endSession(a, err)
		started.fail(err)
		slog.Debug(fmt.Sprintf("%s: session failed to start", b.name), "session", id, "error", err)
		b.publish(topicCanceled, CanceledEvent{SessionID: id, Err: err})
		return
	}

	started.complete(a.session, nil)
	slog.Debug(fmt.Sprintf("%s: session started", b.name), "session", id)
	b.publish(topicSessionStarted, SessionEvent{SessionID: id})

	err = b.run(ctx, stream, a.session)
	if err != nil && ctx.Err() != nil && errors.Is(err, context.Canceled) {
		// stopped
		err = nil
	}
	if err != nil {
		err = errs.Wrap(errs.KindInternal, "ContinuousRecognition", "session failed", err)
	}
	b.endSession(a, err)

	if err != nil {
		slog.Debug(fmt.Sprintf("%s: session canceled", b.name), "session", id, "error", err)
		b.publish(topicCanceled, CanceledEvent{SessionID: id, Err: err})
		return
	}
	slog.Debug(fmt.Sprintf("%s: session stopped", b.name), "session", id)
	b.publish(topicSessionStopped, SessionEvent{SessionID: id})
}

func (b *Base[R, E]) open(ctx context.Context, params *Parameters, id string) (s Stream[E], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("engine panicked: %v", r)
		}
	}()
	s, err = b.engine.Open(ctx, params, id)
	if err == nil && s == nil {
		err = errors.New("engine returned no stream")
	}
	return s, err
}

func (b *Base[R, E]) run(ctx context.Context, stream Stream[E], session *Session[E]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("engine panicked: %v", r)
		}
	}()
	return stream.Run(ctx, func(e E) { session.push(e) })
}

// endSession closes the session queue, returns to Idle and then resolves
// the stop future, so a resolved stop always observes Idle.
func (b *Base[R, E]) endSession(a *activeSession[E], err error) {
	a.cancel()
	a.session.finish(err)

	b.mu.Lock()
	if b.active == a {
		b.active = nil
		b.state = StateIdle
	}
	b.mu.Unlock()

	a.stopped.complete(struct{}{}, nil)
}

// StopContinuousRecognitionAsync ends the active session. Without one it
// returns a resolved future. While a stop is in flight the same future is
// returned.
func (b *Base[R, E]) StopContinuousRecognitionAsync(ctx context.Context) (*Future[struct{}], error) {
	const op = "StopContinuousRecognitionAsync"

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, errs.New(errs.KindInvalidState, op, "recognizer is closed")
	}
	a := b.active
	if a == nil {
		b.mu.Unlock()
		return Resolved(struct{}{}), nil
	}
	if b.state == StateContinuousActive {
		b.state = StateStopping
		a.cancel()
		slog.Debug(fmt.Sprintf("%s: session stopping", b.name), "session", a.session.ID())
	}
	b.mu.Unlock()

	return a.stopped, nil
}

// Session returns the active session, or nil.
func (b *Base[R, E]) Session() *Session[E] {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active == nil {
		return nil
	}
	return b.active.session
}

// NextEvent returns the next event of the most recent session. It fails
// with a not-found error when no session was started or the last one has
// been drained.
func (b *Base[R, E]) NextEvent(ctx context.Context) (E, error) {
	const op = "NextEvent"
	var zero E

	b.mu.Lock()
	closed, s := b.closed, b.last
	b.mu.Unlock()

	switch {
	case closed:
		return zero, errs.New(errs.KindInvalidState, op, "recognizer is closed")
	case s == nil:
		return zero, errs.New(errs.KindNotFound, op, "no session has been started")
	}

	e, err := s.Next(ctx)
	if errors.Is(err, io.EOF) {
		return zero, errs.New(errs.KindNotFound, op, "session has been drained")
	}
	return e, err
}

// Close marks the recognizer as released. It fails with a busy error while
// an operation is in flight. Later operations fail with an invalid state
// error.
func (b *Base[R, E]) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	if b.state.Busy() {
		return errs.New(errs.KindBusy, "Close", fmt.Sprintf("recognizer is %s", b.state))
	}
	b.closed = true
	slog.Debug(fmt.Sprintf("%s: closed", b.name))
	return nil
}

func (b *Base[R, E]) transition(from, to State) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == from {
		b.state = to
	}
}

func (b *Base[R, E]) Recognize(ctx context.Context) (Awaitable, error) {
	f, err := b.RecognizeAsync(ctx)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (b *Base[R, E]) StartContinuous(ctx context.Context) (Awaitable, error) {
	f, err := b.StartContinuousRecognitionAsync(ctx)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (b *Base[R, E]) StopContinuous(ctx context.Context) (Awaitable, error) {
	f, err := b.StopContinuousRecognitionAsync(ctx)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (b *Base[R, E]) PollEvent(ctx context.Context) (any, error) {
	e, err := b.NextEvent(ctx)
	if err != nil {
		return nil, err
	}
	return e, nil
}
