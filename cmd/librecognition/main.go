// Command librecognition exports the bridge as a C shared library:
//
//	go build -buildmode=c-shared -o librecognition.so ./cmd/librecognition
//
// Handles are uint64_t, status codes are int32_t and timeouts are
// milliseconds, where a negative timeout waits forever. Strings returned
// through char** must be freed with recognition_free_string.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/hekt/recognition-sdk/pkg/capi"
	"github.com/hekt/recognition-sdk/pkg/handle"
)

func main() {}

func status(st capi.Status) C.int32_t {
	return C.int32_t(st)
}

func millis(ms C.int64_t) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

//export recognizer_factory_create
func recognizer_factory_create(config *C.char, out *C.uint64_t) C.int32_t {
	if config == nil || out == nil {
		return status(capi.StatusInvalidArgument)
	}
	h, st := capi.Default().RecognizerFactoryCreate(C.GoString(config))
	*out = C.uint64_t(h)
	return status(st)
}

//export recognizer_enable
func recognizer_enable(h C.uint64_t) C.int32_t {
	return status(capi.Default().RecognizerEnable(handle.Handle(h)))
}

//export recognizer_disable
func recognizer_disable(h C.uint64_t) C.int32_t {
	return status(capi.Default().RecognizerDisable(handle.Handle(h)))
}

//export recognizer_is_enabled
func recognizer_is_enabled(h C.uint64_t, out *C.int32_t) C.int32_t {
	if out == nil {
		return status(capi.StatusInvalidArgument)
	}
	enabled, st := capi.Default().RecognizerIsEnabled(handle.Handle(h))
	*out = 0
	if enabled {
		*out = 1
	}
	return status(st)
}

//export recognizer_state
func recognizer_state(h C.uint64_t, out *C.int32_t) C.int32_t {
	if out == nil {
		return status(capi.StatusInvalidArgument)
	}
	state, st := capi.Default().RecognizerState(handle.Handle(h))
	*out = C.int32_t(state)
	return status(st)
}

//export recognizer_set_parameter
func recognizer_set_parameter(h C.uint64_t, name, value *C.char) C.int32_t {
	if name == nil || value == nil {
		return status(capi.StatusInvalidArgument)
	}
	return status(capi.Default().RecognizerSetParameter(
		handle.Handle(h),
		C.GoString(name),
		capi.ParseValue(C.GoString(value)),
	))
}

//export recognizer_get_parameter
func recognizer_get_parameter(h C.uint64_t, name *C.char, out **C.char) C.int32_t {
	if name == nil || out == nil {
		return status(capi.StatusInvalidArgument)
	}
	v, st := capi.Default().RecognizerGetParameter(handle.Handle(h), C.GoString(name))
	*out = nil
	if st == capi.StatusOK {
		*out = C.CString(fmt.Sprint(v))
	}
	return status(st)
}

//export recognizer_recognize_async
func recognizer_recognize_async(h C.uint64_t, out *C.uint64_t) C.int32_t {
	if out == nil {
		return status(capi.StatusInvalidArgument)
	}
	async, st := capi.Default().RecognizerRecognizeAsync(handle.Handle(h))
	*out = C.uint64_t(async)
	return status(st)
}

//export recognizer_recognize_async_wait_for
func recognizer_recognize_async_wait_for(async C.uint64_t, timeoutMs C.int64_t, out *C.uint64_t) C.int32_t {
	if out == nil {
		return status(capi.StatusInvalidArgument)
	}
	result, st := capi.Default().RecognizerRecognizeAsyncWaitFor(handle.Handle(async), millis(timeoutMs))
	*out = C.uint64_t(result)
	return status(st)
}

//export recognizer_start_continuous
func recognizer_start_continuous(h C.uint64_t, out *C.uint64_t) C.int32_t {
	if out == nil {
		return status(capi.StatusInvalidArgument)
	}
	async, st := capi.Default().RecognizerStartContinuous(handle.Handle(h))
	*out = C.uint64_t(async)
	return status(st)
}

//export recognizer_stop_continuous
func recognizer_stop_continuous(h C.uint64_t, out *C.uint64_t) C.int32_t {
	if out == nil {
		return status(capi.StatusInvalidArgument)
	}
	async, st := capi.Default().RecognizerStopContinuous(handle.Handle(h))
	*out = C.uint64_t(async)
	return status(st)
}

//export recognizer_poll_event
func recognizer_poll_event(h C.uint64_t, timeoutMs C.int64_t, out *C.uint64_t) C.int32_t {
	if out == nil {
		return status(capi.StatusInvalidArgument)
	}
	event, st := capi.Default().RecognizerPollEvent(handle.Handle(h), millis(timeoutMs))
	*out = C.uint64_t(event)
	return status(st)
}

//export async_wait_for
func async_wait_for(async C.uint64_t, timeoutMs C.int64_t) C.int32_t {
	return status(capi.Default().AsyncWaitFor(handle.Handle(async), millis(timeoutMs)))
}

//export async_poll
func async_poll(async C.uint64_t) C.int32_t {
	return status(capi.Default().AsyncPoll(handle.Handle(async)))
}

//export result_get_text
func result_get_text(h C.uint64_t, out **C.char) C.int32_t {
	if out == nil {
		return status(capi.StatusInvalidArgument)
	}
	text, st := capi.Default().ResultGetText(handle.Handle(h))
	*out = nil
	if st == capi.StatusOK {
		*out = C.CString(text)
	}
	return status(st)
}

//export result_get_reason
func result_get_reason(h C.uint64_t, out *C.int32_t) C.int32_t {
	if out == nil {
		return status(capi.StatusInvalidArgument)
	}
	reason, st := capi.Default().ResultGetReason(handle.Handle(h))
	*out = C.int32_t(reason)
	return status(st)
}

//export result_get_json
func result_get_json(h C.uint64_t, out **C.char) C.int32_t {
	if out == nil {
		return status(capi.StatusInvalidArgument)
	}
	doc, st := capi.Default().ResultGetJSON(handle.Handle(h))
	*out = nil
	if st == capi.StatusOK {
		*out = C.CString(doc)
	}
	return status(st)
}

//export recognizer_release
func recognizer_release(h C.uint64_t) C.int32_t {
	return status(capi.Default().RecognizerRelease(handle.Handle(h)))
}

//export result_release
func result_release(h C.uint64_t) C.int32_t {
	return status(capi.Default().ResultRelease(handle.Handle(h)))
}

//export async_release
func async_release(h C.uint64_t) C.int32_t {
	return status(capi.Default().AsyncRelease(handle.Handle(h)))
}

// recognition_last_error returns the message of the most recent failure of
// a call made with h, or NULL when there was none.
//
//export recognition_last_error
func recognition_last_error(h C.uint64_t) *C.char {
	msg := capi.Default().LastError(handle.Handle(h))
	if msg == "" {
		return nil
	}
	return C.CString(msg)
}

//export recognition_free_string
func recognition_free_string(s *C.char) {
	C.free(unsafe.Pointer(s))
}
