// Package domain defines the error model shared by envconf packages.
package domain

import (
	"errors"
	"fmt"
)

// DomainError is a configuration error carrying a stable error code.
//
// Codes have the form EC-<AREA>-<NNNN>; two DomainErrors match under
// errors.Is when their codes are equal, whatever their details.
type DomainError struct {
	Code    string // Error code (e.g., "EC-DIR-4000")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithDetailsf is WithDetails with a format string.
func (e *DomainError) WithDetailsf(format string, args ...any) *DomainError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// Wrap wraps an error with this domain error as the cause.
func (e *DomainError) Wrap(cause error) *DomainError {
	return e.WithCause(cause)
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Directory Errors (DIR)
// ============================================================================

var (
	// ErrInvalidDirectory indicates the configuration directory does not
	// exist, is not a directory, or is not writable.
	ErrInvalidDirectory = NewDomainError("EC-DIR-4000", "unable to find or write to directory")

	// ErrListDirectory indicates the directory entries could not be listed.
	ErrListDirectory = NewDomainError("EC-DIR-5000", "unable to list directory")
)

// ============================================================================
// Global File Errors (GLB)
// ============================================================================

var (
	// ErrGlobalConfigMissing indicates the global file is required but absent
	// or not accessible.
	ErrGlobalConfigMissing = NewDomainError("EC-GLB-4040", "global config file required but not found")

	// ErrMissingEnvironmentKey indicates the global file lacks the environment
	// or required_environments key.
	ErrMissingEnvironmentKey = NewDomainError("EC-GLB-4220", "global config file requires an environment key and a required_environments key")
)

// ============================================================================
// Content Errors (KEY, FILE)
// ============================================================================

var (
	// ErrRequiredKeyMissing indicates a required key is absent after merging.
	ErrRequiredKeyMissing = NewDomainError("EC-KEY-4220", "configuration requires key")

	// ErrConfigParse indicates a configuration file could not be parsed.
	ErrConfigParse = NewDomainError("EC-FILE-4000", "unable to parse configuration file")
)
