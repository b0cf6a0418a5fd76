package ipc

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// ErrSocketInUse reports that another live listener already owns the socket path.
var ErrSocketInUse = errors.New("socket already has a live listener")

// DefaultSocketPath is the iTerm2 API server socket under the user's Application Support directory.
func DefaultSocketPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home for iTerm2 socket: %w", err)
	}
	return filepath.Join(home, "Library", "Application Support", "iTerm2", "private", "socket"), nil
}

// Listen binds a unix listener at path, replacing a stale socket file left by a dead owner.
func Listen(path string) (net.Listener, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("ensure socket dir: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err == nil {
		_ = os.Chmod(path, 0o600)
		return listener, nil
	}
	if !isAddrInUse(err) {
		return nil, fmt.Errorf("listen unix %s: %w", path, err)
	}

	conn, dialErr := net.Dial("unix", path)
	if dialErr == nil {
		_ = conn.Close()
		return nil, ErrSocketInUse
	}

	if removeErr := os.Remove(path); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
		return nil, fmt.Errorf("remove stale socket %s: %w", path, removeErr)
	}

	listener, err = net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen unix %s: %w", path, err)
	}
	_ = os.Chmod(path, 0o600)
	return listener, nil
}

func isAddrInUse(err error) bool {
	return errors.Is(err, unix.EADDRINUSE)
}
