// Package hookerr provides domain-specific error types for libvirt-resolved-hook.
//
// This package defines structured errors with error codes so that callers can
// distinguish fatal hook-data problems (which must fail the hook invocation)
// from resolver-command problems (which are reported but never fail the hook).
package hookerr

import "fmt"

// ErrorCode represents a category of error that can occur in the hook.
type ErrorCode string

const (
	// ErrCodeHook indicates bad arguments or malformed/mismatched hook data.
	// These errors are fatal: the hook exits non-zero.
	ErrCodeHook ErrorCode = "HOOK_ERROR"

	// ErrCodeResolver indicates a failure running the resolver-control
	// command (missing binary, non-zero exit, timeout). These errors are
	// logged but never fail the hook.
	ErrCodeResolver ErrorCode = "RESOLVER_ERROR"

	// ErrCodeConfig indicates a configuration file error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new domain error with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// NewHookError creates a new fatal hook-data error.
func NewHookError(message string, cause error) *Error {
	return Wrap(ErrCodeHook, message, cause)
}

// NewResolverError creates a new resolver-command error.
func NewResolverError(message string, cause error) *Error {
	return Wrap(ErrCodeResolver, message, cause)
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}
