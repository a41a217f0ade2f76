// Package errors provides structured error types and error handling utilities.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Wrap creates a new error by wrapping an existing error with additional context.
// This uses fmt.Errorf with %w verb for proper error chain support.
func Wrap(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// New creates a new error using fmt.Errorf.
func New(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Join wraps multiple errors into a single error.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Error categories. Every error built by this package wraps exactly one of them.
var (
	ErrValidation    = errors.New("validation error")
	ErrRemote        = errors.New("remote error")
	ErrConfiguration = errors.New("configuration error")
	ErrInternal      = errors.New("internal error")
)

// Validation reports input that was rejected before any request was sent.
func Validation(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}

// Validationf is the formatted variant of Validation.
func Validationf(format string, args ...interface{}) error {
	return Validation(fmt.Sprintf(format, args...))
}

// ValidationAt reports a validation failure at a position inside a node tree.
func ValidationAt(path, message string) error {
	return fmt.Errorf("%w: %s: %s", ErrValidation, path, message)
}

// Remote wraps a transport failure that happened before any response was received.
func Remote(cause error) error {
	return fmt.Errorf("%w: %w", ErrRemote, cause)
}

// Configuration reports an unusable process configuration.
func Configuration(message string) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, message)
}

// ConfigurationWithCause reports an unusable process configuration caused by err.
func ConfigurationWithCause(message string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrConfiguration, message, cause)
}

// InternalWithCause reports a failure caused by err that is neither the
// caller's nor the vendor's fault.
func InternalWithCause(message string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrInternal, message, cause)
}

// APIError is returned when the Tana API answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
}

// NewAPIError builds an APIError, filling in the status text when the
// transport did not provide one.
func NewAPIError(statusCode int, status string) *APIError {
	if status == "" {
		status = http.StatusText(statusCode)
	}
	return &APIError{StatusCode: statusCode, Status: status}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Tana API error: %d %s", e.StatusCode, e.Status)
}

// Is makes errors.Is(err, ErrRemote) hold for API errors.
func (e *APIError) Is(target error) bool {
	return target == ErrRemote
}
