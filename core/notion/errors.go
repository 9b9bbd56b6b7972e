package notion

import "fmt"

// RateLimitedError is returned when the API kept responding with 429 after
// the whole retry budget was spent.
type RateLimitedError struct {
	StatusCode int
	Err        error
}

func (e *RateLimitedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("notion rate limit exceeded (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("notion rate limit exceeded (status %d)", e.StatusCode)
}

func (e *RateLimitedError) Unwrap() error { return e.Err }

// UpstreamError wraps any other remote failure: network errors, timeouts and
// non-429 HTTP error responses. StatusCode is 0 when no response was seen.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("notion request failed (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("notion request failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
