// Package capi is the handle and status-code surface of the SDK. It is
// what cmd/librecognition exports to C, and it is usable from Go for
// callers that want the same semantics.
package capi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/hekt/recognition-sdk/pkg/errs"
	"github.com/hekt/recognition-sdk/pkg/factory"
	"github.com/hekt/recognition-sdk/pkg/handle"
	"github.com/hekt/recognition-sdk/pkg/recognizer"
)

// asyncOp is the object behind an async handle.
type asyncOp struct {
	awaitable recognizer.Awaitable

	mu sync.Mutex
	// result is issued on the first successful wait.
	result handle.Handle
}

type Bridge struct {
	registry *handle.Registry
	factory  *factory.Factory

	mu sync.Mutex
	// lastErrors is keyed by the handle passed to the failing call. Calls
	// without a live handle use 0.
	lastErrors map[handle.Handle]string
}

func NewBridge(f *factory.Factory) (*Bridge, error) {
	if f == nil {
		return nil, errors.New("factory must be specified")
	}
	return &Bridge{
		registry:   handle.NewRegistry(),
		factory:    f,
		lastErrors: make(map[handle.Handle]string),
	}, nil
}

// Default is the bridge used by the C exports.
var Default = sync.OnceValue(func() *Bridge {
	f, err := factory.New()
	if err != nil {
		panic(fmt.Sprintf("failed to create default factory: %v", err))
	}
	b, err := NewBridge(f)
	if err != nil {
		panic(fmt.Sprintf("failed to create default bridge: %v", err))
	}
	return b
})

// LastError returns the message of the last failed call made with h. For
// an unknown or released h it returns the last failure without a live
// handle.
func (b *Bridge) LastError(h handle.Handle) string {
	h = b.errorKey(h)
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastErrors[h]
}

func (b *Bridge) fail(h handle.Handle, err error) Status {
	key := b.errorKey(h)
	b.mu.Lock()
	b.lastErrors[key] = err.Error()
	b.mu.Unlock()

	st := statusOf(err)
	slog.Debug("Bridge: call failed", "handle", uint64(h), "status", st.String(), "error", err)
	return st
}

// errorKey maps handles that are not registered to 0, so that arbitrary
// handle values cannot grow lastErrors.
func (b *Bridge) errorKey(h handle.Handle) handle.Handle {
	if _, err := b.registry.Resolve(h); err != nil {
		return 0
	}
	return h
}

func (b *Bridge) forget(h handle.Handle) {
	b.mu.Lock()
	delete(b.lastErrors, h)
	b.mu.Unlock()
}

// guard turns a panic into StatusInternalError. It must be deferred.
func (b *Bridge) guard(h handle.Handle, st *Status) {
	r := recover()
	if r == nil {
		return
	}
	slog.Error(fmt.Sprintf("panic in bridge call: %v\n%s", r, debug.Stack()))
	*st = b.fail(h, errs.New(errs.KindInternal, "Bridge", fmt.Sprintf("panic: %v", r)))
}

// resolve reports unknown and released handles as invalid handles.
func resolve[T any](b *Bridge, h handle.Handle) (T, error) {
	obj, err := handle.ResolveAs[T](b.registry, h)
	if errors.Is(err, errs.ErrNotFound) {
		return obj, errs.New(errs.KindInvalidHandle, "Bridge", fmt.Sprintf("invalid handle %d", h))
	}
	return obj, err
}

// waitContext returns a context bounded by timeout. A negative timeout
// waits forever and zero does not wait.
func waitContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout < 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (b *Bridge) RecognizerFactoryCreate(configYAML string) (h handle.Handle, st Status) {
	defer b.guard(0, &st)

	cfg, err := factory.ParseConfig([]byte(configYAML))
	if err != nil {
		return 0, b.fail(0, errs.Wrap(errs.KindInvalidArgument, "RecognizerFactoryCreate", "invalid config", err))
	}
	r, err := b.factory.Create(context.Background(), cfg)
	if err != nil {
		return 0, b.fail(0, errs.Wrap(errs.KindInternal, "RecognizerFactoryCreate", "failed to create recognizer", err))
	}
	return b.registry.Register(r), StatusOK
}

func (b *Bridge) RecognizerEnable(h handle.Handle) (st Status) {
	defer b.guard(h, &st)

	r, err := resolve[recognizer.Recognizer](b, h)
	if err != nil {
		return b.fail(h, err)
	}
	r.Enable()
	return StatusOK
}

func (b *Bridge) RecognizerDisable(h handle.Handle) (st Status) {
	defer b.guard(h, &st)

	r, err := resolve[recognizer.Recognizer](b, h)
	if err != nil {
		return b.fail(h, err)
	}
	if err := r.Disable(); err != nil {
		return b.fail(h, err)
	}
	return StatusOK
}

func (b *Bridge) RecognizerIsEnabled(h handle.Handle) (enabled bool, st Status) {
	defer b.guard(h, &st)

	r, err := resolve[recognizer.Recognizer](b, h)
	if err != nil {
		return false, b.fail(h, err)
	}
	return r.IsEnabled(), StatusOK
}

func (b *Bridge) RecognizerState(h handle.Handle) (state recognizer.State, st Status) {
	defer b.guard(h, &st)

	r, err := resolve[recognizer.Recognizer](b, h)
	if err != nil {
		return 0, b.fail(h, err)
	}
	return r.State(), StatusOK
}

func (b *Bridge) RecognizerSetParameter(h handle.Handle, name string, value any) (st Status) {
	defer b.guard(h, &st)

	r, err := resolve[recognizer.Recognizer](b, h)
	if err != nil {
		return b.fail(h, err)
	}
	if err := r.SetParameter(name, value); err != nil {
		return b.fail(h, err)
	}
	return StatusOK
}

// RecognizerGetParameter returns StatusNotFound for unset parameters.
func (b *Bridge) RecognizerGetParameter(h handle.Handle, name string) (value any, st Status) {
	defer b.guard(h, &st)

	r, err := resolve[recognizer.Recognizer](b, h)
	if err != nil {
		return nil, b.fail(h, err)
	}
	v, ok := r.Parameter(name)
	if !ok {
		return nil, b.fail(h, errs.New(errs.KindNotFound, "RecognizerGetParameter", fmt.Sprintf("parameter %s is not set", name)))
	}
	return v, StatusOK
}

func (b *Bridge) RecognizerRecognizeAsync(h handle.Handle) (async handle.Handle, st Status) {
	defer b.guard(h, &st)

	r, err := resolve[recognizer.Recognizer](b, h)
	if err != nil {
		return 0, b.fail(h, err)
	}
	a, err := r.Recognize(context.Background())
	if err != nil {
		return 0, b.fail(h, err)
	}
	return b.registry.Register(&asyncOp{awaitable: a}), StatusOK
}

// RecognizerRecognizeAsyncWaitFor waits for a recognition started by
// RecognizerRecognizeAsync and returns its result handle. Later calls
// return the same result handle.
func (b *Bridge) RecognizerRecognizeAsyncWaitFor(async handle.Handle, timeout time.Duration) (result handle.Handle, st Status) {
	defer b.guard(async, &st)

	op, err := resolve[*asyncOp](b, async)
	if err != nil {
		return 0, b.fail(async, err)
	}

	ctx, cancel := waitContext(timeout)
	defer cancel()
	v, err := op.awaitable.Await(ctx)
	if err != nil {
		return 0, b.fail(async, err)
	}

	op.mu.Lock()
	defer op.mu.Unlock()
	if op.result != 0 {
		return op.result, StatusOK
	}
	payload, ok := v.(recognizer.Payload)
	if !ok {
		return 0, b.fail(async, errs.New(errs.KindInvalidHandle, "RecognizerRecognizeAsyncWaitFor", "operation does not produce a result"))
	}
	op.result = b.registry.Register(payload)
	return op.result, StatusOK
}

func (b *Bridge) RecognizerStartContinuous(h handle.Handle) (async handle.Handle, st Status) {
	defer b.guard(h, &st)

	r, err := resolve[recognizer.Recognizer](b, h)
	if err != nil {
		return 0, b.fail(h, err)
	}
	a, err := r.StartContinuous(context.Background())
	if err != nil {
		return 0, b.fail(h, err)
	}
	return b.registry.Register(&asyncOp{awaitable: a}), StatusOK
}

func (b *Bridge) RecognizerStopContinuous(h handle.Handle) (async handle.Handle, st Status) {
	defer b.guard(h, &st)

	r, err := resolve[recognizer.Recognizer](b, h)
	if err != nil {
		return 0, b.fail(h, err)
	}
	a, err := r.StopContinuous(context.Background())
	if err != nil {
		return 0, b.fail(h, err)
	}
	return b.registry.Register(&asyncOp{awaitable: a}), StatusOK
}

// AsyncWaitFor waits for any async operation and reports its outcome.
func (b *Bridge) AsyncWaitFor(async handle.Handle, timeout time.Duration) (st Status) {
	defer b.guard(async, &st)

	op, err := resolve[*asyncOp](b, async)
	if err != nil {
		return b.fail(async, err)
	}

	ctx, cancel := waitContext(timeout)
	defer cancel()
	if _, err := op.awaitable.Await(ctx); err != nil {
		return b.fail(async, err)
	}
	return StatusOK
}

// AsyncPoll returns StatusPending while the operation is running.
func (b *Bridge) AsyncPoll(async handle.Handle) (st Status) {
	defer b.guard(async, &st)

	op, err := resolve[*asyncOp](b, async)
	if err != nil {
		return b.fail(async, err)
	}

	select {
	case <-op.awaitable.Done():
	default:
		return StatusPending
	}
	// already done, so this does not block
	if _, err := op.awaitable.Await(context.Background()); err != nil {
		return b.fail(async, err)
	}
	return StatusOK
}

// RecognizerPollEvent takes the next event of the recognizer's most recent
// session.
func (b *Bridge) RecognizerPollEvent(h handle.Handle, timeout time.Duration) (event handle.Handle, st Status) {
	defer b.guard(h, &st)

	r, err := resolve[recognizer.Recognizer](b, h)
	if err != nil {
		return 0, b.fail(h, err)
	}

	ctx, cancel := waitContext(timeout)
	defer cancel()
	e, err := r.PollEvent(ctx)
	if err != nil {
		return 0, b.fail(h, err)
	}
	payload, ok := e.(recognizer.Payload)
	if !ok {
		return 0, b.fail(h, errs.New(errs.KindInternal, "RecognizerPollEvent", fmt.Sprintf("unexpected event type %T", e)))
	}
	return b.registry.Register(payload), StatusOK
}

// ResultGetText accepts result and event handles.
func (b *Bridge) ResultGetText(h handle.Handle) (text string, st Status) {
	defer b.guard(h, &st)

	p, err := resolve[recognizer.Payload](b, h)
	if err != nil {
		return "", b.fail(h, err)
	}
	return p.PayloadText(), StatusOK
}

func (b *Bridge) ResultGetReason(h handle.Handle) (reason recognizer.Reason, st Status) {
	defer b.guard(h, &st)

	p, err := resolve[recognizer.Payload](b, h)
	if err != nil {
		return 0, b.fail(h, err)
	}
	return p.PayloadReason(), StatusOK
}

// ResultGetJSON serializes the whole payload, including variant fields such
// as the intent ID.
func (b *Bridge) ResultGetJSON(h handle.Handle) (doc string, st Status) {
	defer b.guard(h, &st)

	p, err := resolve[recognizer.Payload](b, h)
	if err != nil {
		return "", b.fail(h, err)
	}
	data, err := sonic.Marshal(p)
	if err != nil {
		return "", b.fail(h, errs.Wrap(errs.KindInternal, "ResultGetJSON", "failed to marshal result", err))
	}
	return string(data), StatusOK
}

// RecognizerRelease fails with StatusBusy while an operation is in flight.
// The handle stays valid in that case.
func (b *Bridge) RecognizerRelease(h handle.Handle) (st Status) {
	defer b.guard(h, &st)
	return b.release(h, func() error {
		_, err := resolve[recognizer.Recognizer](b, h)
		return err
	})
}

func (b *Bridge) ResultRelease(h handle.Handle) (st Status) {
	defer b.guard(h, &st)
	return b.release(h, func() error {
		_, err := resolve[recognizer.Payload](b, h)
		return err
	})
}

// AsyncRelease does not release the result handle of the operation.
func (b *Bridge) AsyncRelease(h handle.Handle) (st Status) {
	defer b.guard(h, &st)
	return b.release(h, func() error {
		_, err := resolve[*asyncOp](b, h)
		return err
	})
}

func (b *Bridge) release(h handle.Handle, check func() error) Status {
	if err := check(); err != nil {
		return b.fail(h, err)
	}
	if err := b.registry.Release(h); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			// released concurrently
			return b.fail(h, errs.New(errs.KindInvalidHandle, "Bridge", fmt.Sprintf("invalid handle %d", h)))
		}
		return b.fail(h, err)
	}
	b.forget(h)
	return StatusOK
}

// ParseValue converts the textual parameter values of C callers: booleans,
// integers and floats are recognized, anything else stays a string.
func ParseValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}
