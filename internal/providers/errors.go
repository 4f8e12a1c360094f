package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable is returned when no usable provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// StatusError reports a non-200 upstream response.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var stErr *StatusError
	if errors.As(err, &stErr) {
		return stErr, true
	}
	return nil, false
}

// DecodeError reports a response body that is not valid JSON for the expected schema.
type DecodeError struct {
	Provider string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Provider, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsDecodeError attempts to unwrap an error into a DecodeError.
func AsDecodeError(err error) (*DecodeError, bool) {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return decErr, true
	}
	return nil, false
}
