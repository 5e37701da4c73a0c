package model

import (
	"fmt"
	"time"
)

// HTTPError wraps an HTTP status code so retry logic can inspect it.
type HTTPError struct {
	StatusCode int
	RetryAfter time.Duration // from Retry-After header, zero if absent
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// PublishError reports a failed channel post. Retryable failures leave the job
// unmarked so it is attempted again next cycle; permanent ones are dropped.
type PublishError struct {
	Retryable bool
	Err       error
}

func (e *PublishError) Error() string {
	kind := "permanent"
	if e.Retryable {
		kind = "retryable"
	}
	return fmt.Sprintf("publish failed (%s): %v", kind, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}
