package iterm2

import (
	"errors"
	"fmt"

	"github.com/dra11y/iterm2-api/internal/ipc"
)

var (
	// ErrClosed is wrapped by the ConnectionError returned once a Conn is closed.
	ErrClosed = errors.New("connection closed")
	// ErrSocketMissing is wrapped by the ConnectionError returned when the API socket does not exist.
	ErrSocketMissing = ipc.ErrSocketMissing
	// ErrHandshake is wrapped by the ConnectionError returned for a rejected upgrade.
	ErrHandshake = errors.New("websocket handshake failed")
	// ErrEmptyWindowID is wrapped by the APIError CreateTab returns for an empty window id.
	ErrEmptyWindowID = errors.New("window id must not be empty")
)

// ConnectionError covers a missing endpoint, transport I/O failure, handshake
// rejection and a closed stream.
type ConnectionError struct {
	Msg string
	Err error
}

func (e *ConnectionError) Error() string {
	if e.Msg == "" && e.Err != nil {
		return "iterm2: " + e.Err.Error()
	}
	if e.Err == nil || e.Err == ErrClosed || e.Err == ErrHandshake || e.Err == ErrSocketMissing {
		return "iterm2: " + e.Msg
	}
	return fmt.Sprintf("iterm2: %s: %v", e.Msg, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// DecodeError reports a frame that does not conform to the message schema.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "iterm2: decode: " + e.Reason
	}
	return fmt.Sprintf("iterm2: decode: %s: %v", e.Reason, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ProtocolError reports a well-formed reply that does not answer the command sent.
type ProtocolError struct {
	Msg string
}

func (e *ProtocolError) Error() string { return "iterm2: protocol: " + e.Msg }

// APIError reports a reply of the expected kind carrying a non-OK status.
// Status holds the raw status name returned by iTerm2, e.g. "INVALID_PROFILE_NAME".
// Requests rejected before sending carry the status iTerm2 would have returned
// and wrap the sentinel in Err.
type APIError struct {
	Op     string
	Status string
	Detail string
	Err    error
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("iterm2: %s failed: %s: %s", e.Op, e.Status, e.Detail)
	}
	return fmt.Sprintf("iterm2: %s failed: %s", e.Op, e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

func closedError(cause error) error {
	if cause == nil {
		return &ConnectionError{Msg: ErrClosed.Error(), Err: ErrClosed}
	}
	return &ConnectionError{Err: fmt.Errorf("%w: %w", ErrClosed, cause)}
}
