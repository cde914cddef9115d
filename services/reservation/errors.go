package reservation

import "fmt"

// InvalidArgumentError signals malformed caller input. Never retried.
type InvalidArgumentError struct {
	Field string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalidArgument: %s must not be empty", e.Field)
}

// UnavailableError signals a network-level failure or timeout reaching the
// reservation service. Eligible for a bounded retry by the caller.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("upstreamUnavailable: %s: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// UpstreamError signals a definite non-success status from the reservation
// service. The original status code and body are preserved verbatim.
type UpstreamError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstreamError: %s returned status %d", e.Op, e.StatusCode)
}

// MalformedResponseError signals a payload that does not parse as the
// expected JSON shape, or one missing a field the entity cannot exist
// without. Treated as a data-integrity failure, never retried.
type MalformedResponseError struct {
	Op  string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformedResponse: %s: %v", e.Op, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
