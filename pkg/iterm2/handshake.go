package iterm2

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
)

const (
	// Subprotocol is the WebSocket subprotocol iTerm2's API server speaks.
	Subprotocol = "api.iterm2.com"
	// DefaultLibraryVersion is sent in the library-version header when Config leaves it empty.
	DefaultLibraryVersion = "go 1.0"

	upgradeURL = "ws://localhost/"

	headerOrigin         = "Origin"
	headerLibraryVersion = "x-iterm2-library-version"
	headerAdvisoryName   = "x-iterm2-advisory-name"
)

// handshakeHeader builds the upgrade request headers. gorilla adds Host,
// Upgrade, Connection, Sec-WebSocket-Key and Sec-WebSocket-Version itself.
func handshakeHeader(cfg Config) http.Header {
	header := http.Header{}
	header.Set(headerOrigin, upgradeURL)

	libraryVersion := strings.TrimSpace(cfg.LibraryVersion)
	if libraryVersion == "" {
		libraryVersion = DefaultLibraryVersion
	}
	header.Set(headerLibraryVersion, libraryVersion)

	if name := strings.TrimSpace(cfg.AdvisoryName); name != "" {
		header.Set(headerAdvisoryName, name)
	}
	if cfg.Credential != nil {
		name, value := cfg.Credential.Header()
		header.Set(name, value)
	}
	return header
}

// upgrade promotes an open transport into a framed WebSocket channel. The
// transport is closed when the upgrade fails.
func upgrade(ctx context.Context, transport net.Conn, cfg Config) (*websocket.Conn, error) {
	dialer := websocket.Dialer{
		NetDialContext: func(context.Context, string, string) (net.Conn, error) {
			return transport, nil
		},
		Subprotocols: []string{Subprotocol},
	}

	ws, resp, err := dialer.DialContext(ctx, upgradeURL, handshakeHeader(cfg))
	if err == nil {
		return ws, nil
	}
	_ = transport.Close()

	if errors.Is(err, websocket.ErrBadHandshake) && resp != nil {
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
		return nil, handshakeRejected(resp.StatusCode, resp.Status)
	}
	return nil, &ConnectionError{Err: fmt.Errorf("%w: %w", ErrHandshake, err)}
}

func handshakeRejected(code int, status string) error {
	return &ConnectionError{
		Msg: fmt.Sprintf(
			"websocket handshake failed with status %d: %s. Make sure iTerm2 has 'Allow all apps to connect' enabled in Settings > General > Magic, or run this program from inside iTerm2",
			code,
			reasonPhrase(code, status),
		),
		Err: ErrHandshake,
	}
}

// reasonPhrase extracts the reason from a "403 Forbidden" status line, falling
// back to the canonical text for code.
func reasonPhrase(code int, status string) string {
	reason := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(status), strconv.Itoa(code)))
	if reason == "" {
		reason = http.StatusText(code)
	}
	if reason == "" {
		return "Unknown reason"
	}
	return reason
}
