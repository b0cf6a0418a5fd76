// Package ipc opens and classifies local unix-socket channels.
package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// ErrSocketMissing reports that no socket file exists at the dialed path.
var ErrSocketMissing = errors.New("socket not found")

// Dial opens a stream connection to the unix socket at path in a single attempt.
//
// A missing path fails with ErrSocketMissing before any connect call is made.
func Dial(ctx context.Context, path string) (net.Conn, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSocketMissing, path)
		}
		return nil, fmt.Errorf("stat socket %s: %w", path, err)
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("dial unix %s: %w", path, err)
	}
	return conn, nil
}

// Probe checks whether a listener is currently accepting connections on path.
func Probe(ctx context.Context, path string, timeout time.Duration) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := Dial(ctx, path)
	if err == nil {
		_ = conn.Close()
		return true, nil
	}
	if IsSocketMissing(err) || IsConnectionRefused(err) {
		return false, nil
	}
	return false, fmt.Errorf("probe socket: %w", err)
}

// IsSocketMissing reports absent-socket failures.
func IsSocketMissing(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrSocketMissing) || errors.Is(err, os.ErrNotExist)
}

// IsConnectionRefused reports no-listener failures.
func IsConnectionRefused(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, unix.ECONNREFUSED)
}
