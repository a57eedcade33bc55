package poster

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrorType categorizes poster lookup errors
type ErrorType string

const (
	// ErrTypeTimeout indicates the lookup exceeded its deadline
	ErrTypeTimeout ErrorType = "timeout"

	// ErrTypeConnection indicates the service could not be reached
	ErrTypeConnection ErrorType = "connection"

	// ErrTypeHTTP indicates a non-success HTTP status
	ErrTypeHTTP ErrorType = "http"

	// ErrTypeResponse indicates an unparseable service response
	ErrTypeResponse ErrorType = "response"

	// ErrTypeAuthentication indicates a rejected API key
	ErrTypeAuthentication ErrorType = "authentication"

	// ErrTypeConfiguration indicates invalid provider configuration
	ErrTypeConfiguration ErrorType = "configuration"
)

// Error represents errors from poster providers
type Error struct {
	// Type categorizes the error
	Type ErrorType `json:"type"`

	// Message provides human-readable error description
	Message string `json:"message"`

	// Provider indicates which provider caused the error
	Provider string `json:"provider,omitempty"`

	// StatusCode for HTTP-related errors
	StatusCode int `json:"status_code,omitempty"`

	// Underlying error that caused this error
	Cause error `json:"-"`

	// Retryable indicates if the lookup can be retried
	Retryable bool `json:"retryable"`
}

// Error implements the error interface
func (e *Error) Error() string {
	var parts []string

	if e.Provider != "" {
		parts = append(parts, fmt.Sprintf("provider=%s", e.Provider))
	}

	parts = append(parts, fmt.Sprintf("type=%s", e.Type))

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}

	parts = append(parts, e.Message)

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%s", e.Cause.Error()))
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error type
func (e *Error) Is(target error) bool {
	if pe, ok := target.(*Error); ok {
		return e.Type == pe.Type
	}
	return false
}

// IsRetryable returns whether the error is retryable
func (e *Error) IsRetryable() bool {
	return e.Retryable
}

// NewError creates a new poster error
func NewError(errType ErrorType, message, provider string) *Error {
	return &Error{
		Type:      errType,
		Message:   message,
		Provider:  provider,
		Retryable: isRetryableType(errType),
	}
}

// NewErrorWithCause creates a poster error with an underlying cause
func NewErrorWithCause(errType ErrorType, message, provider string, cause error) *Error {
	return &Error{
		Type:      errType,
		Message:   message,
		Provider:  provider,
		Cause:     cause,
		Retryable: isRetryableType(errType),
	}
}

// isRetryableType determines if an error type is retryable
func isRetryableType(errType ErrorType) bool {
	switch errType {
	case ErrTypeTimeout, ErrTypeConnection:
		return true
	default:
		return false
	}
}

// wrapTransportError classifies a failed HTTP round trip as a timeout or
// a connection error.
func wrapTransportError(provider string, err error) *Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return NewErrorWithCause(ErrTypeTimeout, "request timed out", provider, err)
	}
	return NewErrorWithCause(ErrTypeConnection, "request failed", provider, err)
}

// IsTimeout checks if an error is a lookup timeout
func IsTimeout(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Type == ErrTypeTimeout
}

// IsAuthentication checks if an error is an API key rejection
func IsAuthentication(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Type == ErrTypeAuthentication
}
