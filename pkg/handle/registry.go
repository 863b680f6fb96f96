// Package handle maps opaque integer handles to Go objects for callers
// that cannot hold Go pointers.
package handle

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/hekt/recognition-sdk/pkg/errs"
)

// Handle is an opaque reference issued by a Registry. Zero is never issued.
type Handle uint64

// Closer is implemented by objects that must be shut down on release.
type Closer interface {
	Close() error
}

type Registry struct {
	mu      sync.RWMutex
	next    Handle
	objects map[Handle]any
	// releasing holds handles whose Close is running outside the lock.
	releasing map[Handle]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		objects:   make(map[Handle]any),
		releasing: make(map[Handle]struct{}),
	}
}

// Register takes ownership of obj and returns a fresh handle.
func (r *Registry) Register(obj any) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	h := r.next
	r.objects[h] = obj
	slog.Debug("Registry: registered", "handle", uint64(h), "type", fmt.Sprintf("%T", obj))
	return h
}

func (r *Registry) Resolve(h Handle) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	obj, ok := r.objects[h]
	if !ok {
		return nil, errs.New(errs.KindNotFound, "Registry.Resolve", fmt.Sprintf("handle %d not found", h))
	}
	return obj, nil
}

// ResolveAs resolves h and asserts the object's type.
func ResolveAs[T any](r *Registry, h Handle) (T, error) {
	var zero T
	obj, err := r.Resolve(h)
	if err != nil {
		return zero, err
	}
	typed, ok := obj.(T)
	if !ok {
		return zero, errs.New(errs.KindInvalidHandle, "Registry.Resolve", fmt.Sprintf("handle %d refers to %T", h, obj))
	}
	return typed, nil
}

// Release closes the object if it is a Closer and forgets the handle. A
// failed close keeps the handle valid. Close runs without the registry lock
// held; a concurrent Release of the same handle fails with a busy error.
func (r *Registry) Release(h Handle) error {
	const op = "Registry.Release"

	r.mu.Lock()
	obj, ok := r.objects[h]
	if !ok {
		r.mu.Unlock()
		return errs.New(errs.KindNotFound, op, fmt.Sprintf("handle %d not found", h))
	}
	if _, ok := r.releasing[h]; ok {
		r.mu.Unlock()
		return errs.New(errs.KindBusy, op, fmt.Sprintf("handle %d is being released", h))
	}
	r.releasing[h] = struct{}{}
	r.mu.Unlock()

	var err error
	if c, ok := obj.(Closer); ok {
		err = c.Close()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.releasing, h)
	if err != nil {
		return errs.Wrap(errs.KindInternal, op, "failed to close object", err)
	}
	delete(r.objects, h)
	slog.Debug("Registry: released", "handle", uint64(h))
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.objects)
}
