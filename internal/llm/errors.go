package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// TransportError reports a call that never produced a usable reply:
// auth failures, rate limits, outages, dead sockets.
type TransportError struct {
	Provider string

	// Status is the HTTP status when the provider got far enough to
	// send one, zero otherwise.
	Status int

	// RetryAfter carries the provider's announced backoff on a rate
	// limit, zero when it announced none.
	RetryAfter time.Duration

	Err error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s request failed (HTTP %d): %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Temporary reports whether a later attempt could succeed. Rate limits,
// server errors and transport-level failures qualify; anything else is
// a configuration problem retrying cannot fix.
func (e *TransportError) Temporary() bool {
	return e.Status == 0 || e.Status == http.StatusTooManyRequests || e.Status >= 500
}

// MalformedReplyError reports a reply that arrived but cannot be used:
// not JSON, off-shape, or cut short by the token budget.
type MalformedReplyError struct {
	Raw       json.RawMessage
	Truncated bool
	Err       error
}

func (e *MalformedReplyError) Error() string {
	if e.Truncated {
		return "model reply cut short by token budget"
	}
	return fmt.Sprintf("unusable model reply: %v", e.Err)
}

func (e *MalformedReplyError) Unwrap() error { return e.Err }
