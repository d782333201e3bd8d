package translink

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoJourney is returned when either trip endpoint fails to geocode to a
// Translink location. It is a legitimate outcome, not a failure - callers
// should render it as an empty result.
var ErrNoJourney = errors.New("no journey between the given points")

// ErrMalformedResponse marks upstream bodies that decoded but are missing the
// fields we need (no Suggestions, no Itineraries, no Stops).
var ErrMalformedResponse = errors.New("malformed upstream response")

// UpstreamError wraps a transport or HTTP level failure from the Translink
// OPIA service, recording which call failed.
type UpstreamError struct {
	Stage      string // suggest, plan or stops
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("translink %s request failed with status %d", e.Stage, e.StatusCode)
	}
	return fmt.Sprintf("translink %s request failed: %s", e.Stage, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was the per-call deadline expiring.
func (e *UpstreamError) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}
