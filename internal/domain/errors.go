package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRequest is a missing or wrongly shaped field caught at the boundary.
	ErrMalformedRequest = errors.New("malformed request")

	// ErrInvalidRequest is a business-rule violation on a well-formed request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound is returned when a referenced identifier does not exist.
	ErrNotFound = errors.New("not found")
)

// RequestError carries a client-facing message and one of the sentinel kinds above.
type RequestError struct {
	Kind    error
	Message string
}

func (e *RequestError) Error() string { return e.Message }

func (e *RequestError) Unwrap() error { return e.Kind }

func Malformed(format string, args ...any) error {
	return &RequestError{Kind: ErrMalformedRequest, Message: fmt.Sprintf(format, args...)}
}

func Invalid(format string, args ...any) error {
	return &RequestError{Kind: ErrInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &RequestError{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool  { return errors.Is(err, ErrNotFound) }
func IsInvalid(err error) bool   { return errors.Is(err, ErrInvalidRequest) }
func IsMalformed(err error) bool { return errors.Is(err, ErrMalformedRequest) }
