package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// RemoteError reports a failed call to the remote record-keeping API:
// either the service answered with an unexpected status, or the call
// never completed (Status == 0).
type RemoteError struct {
	Op     string // eg. "absence.create"
	Status int    // HTTP status; 0 when the request/parse itself failed
	Err    error
}

func NewRemoteError(op string, status int, err error) error {
	return &RemoteError{Op: op, Status: status, Err: err}
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: remote call failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: remote service answered %d", e.Op, e.Status)
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
