package capi

import (
	"context"
	"errors"
	"fmt"

	"github.com/hekt/recognition-sdk/pkg/errs"
)

// Status is the result code of every bridge call. Values are part of the
// C ABI and never change.
type Status int32

const (
	StatusOK Status = iota
	StatusInvalidHandle
	StatusInvalidState
	StatusBusy
	StatusNotFound
	StatusInternalError
	StatusInvalidArgument
	StatusPending
	StatusTimeout
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusInvalidHandle:
		return "InvalidHandle"
	case StatusInvalidState:
		return "InvalidState"
	case StatusBusy:
		return "Busy"
	case StatusNotFound:
		return "NotFound"
	case StatusInternalError:
		return "InternalError"
	case StatusInvalidArgument:
		return "InvalidArgument"
	case StatusPending:
		return "Pending"
	case StatusTimeout:
		return "Timeout"
	default:
		return fmt.Sprintf("Status(%d)", int32(s))
	}
}

func statusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return StatusTimeout
	}

	switch errs.KindOf(err) {
	case errs.KindInvalidHandle:
		return StatusInvalidHandle
	case errs.KindInvalidState:
		return StatusInvalidState
	case errs.KindBusy:
		return StatusBusy
	case errs.KindNotFound:
		return StatusNotFound
	case errs.KindInvalidArgument:
		return StatusInvalidArgument
	default:
		return StatusInternalError
	}
}
