package record

import (
	"errors"
	"fmt"
)

var (
	// ErrDurationTooLong reports an elapsed time of four minutes or more.
	ErrDurationTooLong = errors.New("duration too long")
	// ErrNegativeDuration reports an elapsed time below zero.
	ErrNegativeDuration = errors.New("negative duration")
	// ErrUnknownCourse reports a raw course id missing from the course table.
	ErrUnknownCourse = errors.New("unknown course")
	// ErrCombinationOutOfRange reports a character/vehicle pair that needs
	// more than nine bits.
	ErrCombinationOutOfRange = errors.New("character and vehicle combination out of range")
)

// RejectError explains why a record cannot be encoded.
type RejectError struct {
	Reason error
	Detail string
}

func (e *RejectError) Error() string {
	if e.Detail == "" {
		return "record rejected: " + e.Reason.Error()
	}
	return fmt.Sprintf("record rejected: %s: %s", e.Reason, e.Detail)
}

func (e *RejectError) Unwrap() error { return e.Reason }

func reject(reason error, format string, args ...any) error {
	return &RejectError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}
