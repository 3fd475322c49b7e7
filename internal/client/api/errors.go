package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the request never produced a response: connection
	// refused, timeout, DNS failure. The client does not retry on its own;
	// retrying is the caller's decision.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the server rejected the credential (or the
	// operation requires one and none is set). When it originates from an
	// HTTP 401 the session credential has already been cleared.
	ErrUnauthorized = errors.New("unauthorized")
)

// RemoteError is a business-rule rejection from the server: the request was
// delivered and answered, but the server declined it. Message carries the
// server-supplied text verbatim and is safe to show to the user.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request rejected (status %d)", e.Status)
}
