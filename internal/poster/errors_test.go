package poster

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Type:       ErrTypeHTTP,
		Message:    "request failed with status 502",
		Provider:   "omdb",
		StatusCode: 502,
		Cause:      fmt.Errorf("bad gateway"),
	}

	got := err.Error()
	for _, part := range []string{"provider=omdb", "type=http", "status=502", "request failed with status 502", "cause=bad gateway"} {
		if !strings.Contains(got, part) {
			t.Errorf("Expected error string to contain %q, got %q", part, got)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewErrorWithCause(ErrTypeConnection, "request failed", "omdb", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the cause")
	}
}

func TestErrorIsMatchesByType(t *testing.T) {
	timeout := NewError(ErrTypeTimeout, "request timed out", "omdb")

	if !errors.Is(timeout, &Error{Type: ErrTypeTimeout}) {
		t.Error("Expected timeout errors to match by type")
	}
	if errors.Is(timeout, &Error{Type: ErrTypeConnection}) {
		t.Error("Expected different types not to match")
	}
}

func TestRetryableClassification(t *testing.T) {
	tests := []struct {
		errType   ErrorType
		retryable bool
	}{
		{ErrTypeTimeout, true},
		{ErrTypeConnection, true},
		{ErrTypeHTTP, false},
		{ErrTypeResponse, false},
		{ErrTypeAuthentication, false},
		{ErrTypeConfiguration, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.errType), func(t *testing.T) {
			err := NewError(tt.errType, "test", "omdb")
			if err.IsRetryable() != tt.retryable {
				t.Errorf("Expected retryable=%v for %s", tt.retryable, tt.errType)
			}
		})
	}
}

func TestWrapTransportError(t *testing.T) {
	t.Run("deadline exceeded becomes timeout", func(t *testing.T) {
		err := wrapTransportError("omdb", context.DeadlineExceeded)
		if err.Type != ErrTypeTimeout {
			t.Errorf("Expected timeout type, got %q", err.Type)
		}
		if !err.Retryable {
			t.Error("Expected timeout to be retryable")
		}
		if !IsTimeout(err) {
			t.Error("Expected IsTimeout to report true")
		}
	})

	t.Run("other failures become connection errors", func(t *testing.T) {
		err := wrapTransportError("omdb", fmt.Errorf("connection refused"))
		if err.Type != ErrTypeConnection {
			t.Errorf("Expected connection type, got %q", err.Type)
		}
		if IsTimeout(err) {
			t.Error("Expected IsTimeout to report false")
		}
	})
}

func TestIsAuthentication(t *testing.T) {
	auth := NewError(ErrTypeAuthentication, "API key rejected", "tmdb")
	if !IsAuthentication(auth) {
		t.Error("Expected IsAuthentication to report true")
	}
	if IsAuthentication(fmt.Errorf("plain error")) {
		t.Error("Expected IsAuthentication to report false for plain errors")
	}
}
