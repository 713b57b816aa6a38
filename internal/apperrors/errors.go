package apperrors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// Kind classifies an operation failure for transport-level mapping.
type Kind string

const (
	KindFetchFailed   Kind = "FETCH_FAILED"
	KindParseFailed   Kind = "PARSE_FAILED"
	KindNotFound      Kind = "NOT_FOUND"
	KindInvalidFilter Kind = "INVALID_FILTER"
)

// Error is the kinded error surfaced to tool and HTTP callers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
	Stack   []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) StackTrace() []byte {
	return e.Stack
}

// New builds a kinded error, capturing a stack at the call site.
func New(kind Kind, message string, err error) *Error {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func FetchFailed(message string, err error) *Error {
	return New(KindFetchFailed, message, err)
}

func ParseFailed(message string, err error) *Error {
	return New(KindParseFailed, message, err)
}

func NotFound(message string, err error) *Error {
	return New(KindNotFound, message, err)
}

func InvalidFilter(message string, err error) *Error {
	return New(KindInvalidFilter, message, err)
}

// KindOf extracts the kind from an error chain; empty string for foreign errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether any error in the chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
