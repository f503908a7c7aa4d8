package errors

import (
	"fmt"

	perrors "github.com/pingcap/errors"
)

const (
	ErrCodeSlotPanic = 1000
)

// SlotError reports a slot that panicked while a signal was emitting.
type SlotError struct {
	Code   uint16
	Signal string
	ConnID string
	Value  any
	error
}

// NewSlotError wraps the value recovered from a panicking slot. When the
// value is an error it is kept as the cause.
func NewSlotError(signal, connID string, value any) error {
	var cause error
	if err, ok := value.(error); ok {
		cause = err
	} else {
		cause = perrors.New(fmt.Sprint(value))
	}
	return &SlotError{
		Code:   ErrCodeSlotPanic,
		Signal: signal,
		ConnID: connID,
		Value:  value,
		error:  perrors.Annotatef(cause, "slot %s of signal %q panicked", connID, signal),
	}
}

func (e *SlotError) Cause() error {
	return perrors.Cause(e.error)
}

func (e *SlotError) Unwrap() error {
	return e.error
}
