package iterm2

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/dra11y/iterm2-api/internal/ipc"
)

var defaultSocketPath = sync.OnceValues(ipc.DefaultSocketPath)

// DefaultSocketPath returns the iTerm2 API socket path. It is resolved once per process.
func DefaultSocketPath() (string, error) {
	return defaultSocketPath()
}

// openTransport connects to the API socket in a single attempt.
func openTransport(ctx context.Context, path string) (net.Conn, error) {
	conn, err := ipc.Dial(ctx, path)
	if err == nil {
		return conn, nil
	}
	if ipc.IsSocketMissing(err) {
		return nil, &ConnectionError{
			Msg: fmt.Sprintf("iTerm2 unix socket not found at %s. iTerm2 must be running with the Python API server enabled (Settings > General > Magic)", path),
			Err: ErrSocketMissing,
		}
	}
	return nil, &ConnectionError{Msg: fmt.Sprintf("connect to iTerm2 unix socket %s", path), Err: err}
}
