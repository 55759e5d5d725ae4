package api

import "fmt"

// RemoteError reports that the service itself rejected the request
// (success:false). Message is the vendor-supplied error text, verbatim.
// It is never retried at this layer and always surfaced to the caller.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return "exaroton: remote operation failed: " + e.Message
}

// ShapeError reports that a successful response did not carry the payload
// shape the calling operation expects. It indicates contract drift between
// client and service (a programming-contract violation), not a runtime or
// business failure, and is distinct from RemoteError so callers can tell
// the two apart.
type ShapeError struct {
	Want Shape
	Got  Shape

	// reason overrides the default message for envelopes that failed to
	// parse at all.
	reason string
}

func (e *ShapeError) Error() string {
	if e.reason != "" {
		return "exaroton: " + e.reason
	}
	return fmt.Sprintf("exaroton: unexpected payload shape: want %s, got %s", e.Want, e.Got)
}
