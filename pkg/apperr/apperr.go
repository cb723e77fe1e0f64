package apperr

import "fmt"

// ValidationError indicates a missing or malformed request field.
// Handlers map it to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation builds a ValidationError from a format string.
func Validation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// StorageError wraps any persistence failure. The underlying message is
// passed through to the caller.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err as a StorageError. Returns nil for a nil err.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Err: err}
}

// UpstreamError is a failure reported by the mail provider. AuthFailure is
// set when the provider rejected our credentials, so handlers can return a
// tailored message.
type UpstreamError struct {
	Message     string
	AuthFailure bool
}

func (e *UpstreamError) Error() string {
	return e.Message
}
