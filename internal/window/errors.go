package window

import (
	"errors"
	"fmt"
)

// Kind classifies façade failures. The wire shape stays a plain string; the
// kind lets the HTTP bridge pick a status code.
type Kind int

const (
	// KindHostFailure means the underlying windowing call failed.
	KindHostFailure Kind = iota
	// KindNotFound means no live window carries the requested label.
	KindNotFound
	// KindMissingParameter means a required argument was absent.
	KindMissingParameter
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindMissingParameter:
		return "missing_parameter"
	case KindHostFailure:
		return "host_failure"
	default:
		return "unknown"
	}
}

// Sentinel errors for errors.Is matching against *Error values.
var (
	ErrNotFound         = errors.New("window not found")
	ErrMissingParameter = errors.New("missing parameter")
	ErrHostFailure      = errors.New("host operation failed")
)

// Error is returned by every Service operation. Error() yields exactly the
// message the front-end receives.
type Error struct {
	Kind  Kind
	Label string
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	return e.Msg
}

// Unwrap exposes the native host error for host failures.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrMissingParameter:
		return e.Kind == KindMissingParameter
	case ErrHostFailure:
		return e.Kind == KindHostFailure
	}
	return false
}

func notFound(label string) *Error {
	return &Error{
		Kind:  KindNotFound,
		Label: label,
		Msg:   fmt.Sprintf("window not found: %s", label),
	}
}

func missingParameter(name string) *Error {
	return &Error{
		Kind: KindMissingParameter,
		Msg:  name + " is required",
	}
}

// hostFailure keeps the native message verbatim.
func hostFailure(label string, err error) *Error {
	return &Error{
		Kind:  KindHostFailure,
		Label: label,
		Msg:   err.Error(),
		Err:   err,
	}
}

// KindOf reports the kind of err. Errors that did not come from the façade
// are treated as host failures.
func KindOf(err error) Kind {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Kind
	}
	return KindHostFailure
}
