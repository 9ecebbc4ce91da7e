package api

import (
	"errors"
	"fmt"
)

// ErrNoCredential means an authorized call was attempted with no stored
// credential. The call is short-circuited before any network I/O; callers
// treat it as the unauthenticated state, not as a failure to show the
// user.
var ErrNoCredential = errors.New("no credential available")

// RequestError wraps a transport-level failure (connection refused, DNS,
// timeout). The operation may be retried; local state is left unchanged.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response with the backend's structured body. Msg
// carries the server's user-facing message (with a generic fallback), and
// AlreadyApproved carries the attendance-marking flag that distinguishes
// a finalized day from a transient rejection.
type APIError struct {
	Status          int
	Msg             string
	AlreadyApproved bool
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Msg)
}
