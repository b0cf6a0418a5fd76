package iterm2

import (
	"bufio"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/dra11y/iterm2-api/internal/ipc"
	"github.com/stretchr/testify/require"
)

func TestReasonPhrase(t *testing.T) {
	tests := []struct {
		code   int
		status string
		want   string
	}{
		{code: 403, status: "403 Forbidden", want: "Forbidden"},
		{code: 401, status: "401 Go Away", want: "Go Away"},
		{code: 404, status: "404", want: "Not Found"},
		{code: 499, status: "499", want: "Unknown reason"},
		{code: 499, status: "", want: "Unknown reason"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, reasonPhrase(tc.code, tc.status), "status %q", tc.status)
	}
}

func TestHandshakeHeader(t *testing.T) {
	h := handshakeHeader(Config{})
	require.Equal(t, "ws://localhost/", h.Get("Origin"))
	require.Equal(t, DefaultLibraryVersion, h.Get("x-iterm2-library-version"))
	require.Empty(t, h.Get("x-iterm2-advisory-name"))
	require.Empty(t, h.Get("x-iterm2-cookie"))

	h = handshakeHeader(Config{
		LibraryVersion: " go 2.0 ",
		AdvisoryName:   "layout",
		Credential:     &Credential{Kind: CredentialKey, Value: "secret"},
	})
	require.Equal(t, "go 2.0", h.Get("x-iterm2-library-version"))
	require.Equal(t, "layout", h.Get("x-iterm2-advisory-name"))
	require.Equal(t, "secret", h.Get("x-iterm2-key"))
	require.Empty(t, h.Get("x-iterm2-cookie"))
	require.Empty(t, h.Get("Upgrade"))
}

func TestDialHandshakeWithoutReasonPhrase(t *testing.T) {
	dir, err := os.MkdirTemp("", "it2")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	path := filepath.Join(dir, "socket")

	ln, err := ipc.Listen(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		if _, err := http.ReadRequest(bufio.NewReader(conn)); err != nil {
			return
		}
		_, _ = conn.Write([]byte("HTTP/1.1 499\r\nContent-Length: 0\r\n\r\n"))
	}()

	_, err = Dial(context.Background(), Config{SocketPath: path})
	require.Error(t, err)

	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr))
	require.ErrorIs(t, err, ErrHandshake)
	require.Contains(t, err.Error(), "status 499: Unknown reason")
}
