package client

import (
	"errors"
	"fmt"
)

// ErrNoSection signals HTTP 404 from the current-section endpoint: the user
// has no unlocked section left. It is a terminal marker, not a failure.
var ErrNoSection = errors.New("no unlocked section")

// DecodeError wraps a response body that either was not valid JSON or decoded
// into a shape missing required fields. Callers treat it as a generic failure
// so half-parsed values never reach rendering.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
