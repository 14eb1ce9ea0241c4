package types

import (
	"errors"
	"fmt"
)

// Domain specific errors for the presentation core.
var (
	ErrNotFound            = errors.New("requested item not found")
	ErrBadRequest          = errors.New("bad request")
	ErrProviderUnavailable = errors.New("mapping provider unavailable")
	ErrImageUnresolvable   = errors.New("city image path cannot be resolved")
	ErrNoItinerary         = errors.New("response contains no itinerary")
	ErrNoCoordinates       = errors.New("itinerary contains no plottable coordinates")
)

// TransportError covers non-OK statuses and network failures on any backend
// request. Never fatal; never retried automatically.
type TransportError struct {
	Op     string // "health", "cities", "plan"
	Status int    // 0 when the request never got a response
	Body   string // response body text for non-OK statuses
	Err    error  // underlying network error, if any
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %v", e.Op, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s request failed: status %d: %s", e.Op, e.Status, e.Body)
	}
	return fmt.Sprintf("%s request failed: status %d", e.Op, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DataError covers responses that parse but lack expected fields. Reason is
// one of the sentinel errors above so callers can pick a specific placeholder.
type DataError struct {
	Reason error
}

func (e *DataError) Error() string { return e.Reason.Error() }

func (e *DataError) Unwrap() error { return e.Reason }
