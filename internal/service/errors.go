package service

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both missing rows and rows owned by another user.
var ErrNotFound = errors.New("not found")

// ValidationError reports missing or malformed request input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// GatewayError wraps a failed call to the external model service.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("model gateway: %v", e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// FormatError reports a model response that could not be decoded into
// the expected structured shape.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("model output format: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
