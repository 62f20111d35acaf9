package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey indicates no API key is configured; no request is sent.
	ErrMissingAPIKey = errors.New("no API key configured")

	// ErrUnavailable indicates the completion endpoint could not be reached.
	ErrUnavailable = errors.New("completion endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("completion request timed out")

	// ErrBadStatus indicates the endpoint answered with a non-2xx status.
	ErrBadStatus = errors.New("completion endpoint returned an error status")

	// ErrInvalidOutput indicates the response body had no usable message.
	ErrInvalidOutput = errors.New("invalid completion response")
)

// StatusError is a non-2xx reply. It matches ErrBadStatus with errors.Is.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error: %d", e.StatusCode)
	}
	return fmt.Sprintf("API error: %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrBadStatus
}
