package notation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidValue  = errors.New("invalid value")
	ErrInvalidBeam   = errors.New("invalid beam")
	ErrInvalidTuplet = errors.New("invalid tuplet")
)

// InvalidValueError reports a structural arity or range violation.
type InvalidValueError struct {
	Msg string
}

func (e *InvalidValueError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return ErrInvalidValue.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidValue.Error(), e.Msg)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// InvalidBeamError names the beam rule that was broken.
type InvalidBeamError struct {
	Reason string
}

func (e *InvalidBeamError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", ErrInvalidBeam.Error(), e.Reason)
}

func (e *InvalidBeamError) Unwrap() error { return ErrInvalidBeam }

// InvalidTupletError reports a ratio that does not scale the inner duration
// onto any value in the table.
type InvalidTupletError struct {
	Num   int
	Den   int
	Inner Duration
	Outer Duration
}

func (e *InvalidTupletError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: duration (%d/%d:{%s} = %s) must equal a valid value",
		ErrInvalidTuplet.Error(), e.Num, e.Den, e.Inner, e.Outer)
}

func (e *InvalidTupletError) Unwrap() error { return ErrInvalidTuplet }

func invalidValuef(format string, args ...any) error {
	return &InvalidValueError{Msg: fmt.Sprintf(format, args...)}
}
