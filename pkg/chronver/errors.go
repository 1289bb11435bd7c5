package chronver

import (
	"errors"
	"fmt"
)

// ErrorCode is a machine-readable identifier for the kind of failure that
// made an input unacceptable.
type ErrorCode string

// Error codes, one per failure kind.
const (
	// ErrCodeStructural marks inputs with the wrong shape: empty string,
	// too few dot-separated components, or too many.
	ErrCodeStructural ErrorCode = "STRUCTURAL"
	// ErrCodeNumericConversion marks numeric fields that are empty, contain
	// non-digit characters, or overflow.
	ErrCodeNumericConversion ErrorCode = "NUMERIC_CONVERSION"
	// ErrCodeCalendarValidation marks well-formed numbers that do not name a
	// real calendar date.
	ErrCodeCalendarValidation ErrorCode = "CALENDAR_VALIDATION"
	// ErrCodeLabelValidation marks empty labels, empty label segments, and
	// disallowed characters in a segment.
	ErrCodeLabelValidation ErrorCode = "LABEL_VALIDATION"
)

// Sentinel errors, one per failure kind, for errors.Is checks. Every error
// returned by this package matches exactly one of them.
var (
	ErrStructural         = errors.New("structural error")
	ErrNumericConversion  = errors.New("numeric conversion error")
	ErrCalendarValidation = errors.New("calendar validation error")
	ErrLabelValidation    = errors.New("label validation error")
)

// Component names carried by ParseError.
const (
	ComponentYear      = "year"
	ComponentMonth     = "month"
	ComponentDay       = "day"
	ComponentChangeset = "changeset"
	ComponentLabel     = "label"
)

// ParseError describes why an input was rejected. Code identifies the
// failure kind, Component names the field that failed (one of the Component
// constants, or empty for whole-input errors), and Value holds the
// offending text.
type ParseError struct {
	Code      ErrorCode
	Component string
	Value     string
	Message   string
	Cause     error
}

// Error renders the failure as "[CODE] message" with the offending value
// and underlying cause appended when present.
func (e *ParseError) Error() string {
	msg := e.Message
	if e.Value != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Value)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, msg)
}

// Unwrap exposes the per-kind sentinel and, when set, the underlying cause,
// so errors.Is matches both.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func (e *ParseError) sentinel() error {
	switch e.Code {
	case ErrCodeStructural:
		return ErrStructural
	case ErrCodeNumericConversion:
		return ErrNumericConversion
	case ErrCodeCalendarValidation:
		return ErrCalendarValidation
	case ErrCodeLabelValidation:
		return ErrLabelValidation
	default:
		return nil
	}
}

func newStructuralError(message, value string) *ParseError {
	return &ParseError{Code: ErrCodeStructural, Value: value, Message: message}
}

func newNumericError(component, value, message string, cause error) *ParseError {
	return &ParseError{
		Code:      ErrCodeNumericConversion,
		Component: component,
		Value:     value,
		Message:   message,
		Cause:     cause,
	}
}

func newCalendarError(component, value, message string) *ParseError {
	return &ParseError{
		Code:      ErrCodeCalendarValidation,
		Component: component,
		Value:     value,
		Message:   message,
	}
}

func newLabelError(value, message string) *ParseError {
	return &ParseError{
		Code:      ErrCodeLabelValidation,
		Component: ComponentLabel,
		Value:     value,
		Message:   message,
	}
}
