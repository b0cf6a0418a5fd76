package iterm2_test

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dra11y/iterm2-api/pkg/iterm2"
	"github.com/dra11y/iterm2-api/pkg/iterm2/iterm2test"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *iterm2test.Server) *iterm2.Conn {
	t.Helper()
	conn, err := iterm2.Dial(context.Background(), iterm2.Config{SocketPath: srv.SocketPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestDialMissingSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	_, err := iterm2.Dial(context.Background(), iterm2.Config{SocketPath: path})
	require.Error(t, err)

	var connErr *iterm2.ConnectionError
	require.True(t, errors.As(err, &connErr))
	require.ErrorIs(t, err, iterm2.ErrSocketMissing)
	require.Contains(t, err.Error(), path)
	require.Contains(t, err.Error(), "must be running")
}

func TestDialHandshakeRejected(t *testing.T) {
	srv := iterm2test.NewServer(t, nil, iterm2test.WithRejectStatus(http.StatusForbidden))

	_, err := iterm2.Dial(context.Background(), iterm2.Config{SocketPath: srv.SocketPath})
	require.Error(t, err)

	var connErr *iterm2.ConnectionError
	require.True(t, errors.As(err, &connErr))
	require.ErrorIs(t, err, iterm2.ErrHandshake)
	require.Contains(t, err.Error(), "403")
	require.Contains(t, err.Error(), "Forbidden")
	require.Contains(t, err.Error(), "Allow all apps to connect")
}

func TestDialSendsHandshakeHeaders(t *testing.T) {
	tests := []struct {
		name       string
		credential iterm2.Credential
		header     string
	}{
		{name: "cookie", credential: iterm2.Credential{Kind: iterm2.CredentialCookie, Value: "c00kie"}, header: "x-iterm2-cookie"},
		{name: "key", credential: iterm2.Credential{Kind: iterm2.CredentialKey, Value: "k3y"}, header: "x-iterm2-key"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := iterm2test.NewServer(t, iterm2test.NewModel().Respond)
			cred := tc.credential

			conn, err := iterm2.Dial(context.Background(), iterm2.Config{
				SocketPath:     srv.SocketPath,
				Credential:     &cred,
				LibraryVersion: "go 9.9",
				AdvisoryName:   "itermctl",
			})
			require.NoError(t, err)
			require.NoError(t, conn.Close())

			headers := srv.Headers()
			require.Len(t, headers, 1)
			h := headers[0]
			require.Equal(t, cred.Value, h.Get(tc.header))
			require.Equal(t, "go 9.9", h.Get("x-iterm2-library-version"))
			require.Equal(t, "itermctl", h.Get("x-iterm2-advisory-name"))
			require.Equal(t, "ws://localhost/", h.Get("Origin"))
			require.Equal(t, iterm2.Subprotocol, h.Get("Sec-WebSocket-Protocol"))
		})
	}
}

func TestDialWithoutCredentialOmitsAuthHeaders(t *testing.T) {
	srv := iterm2test.NewServer(t, iterm2test.NewModel().Respond)
	conn := dial(t, srv)
	require.NotEmpty(t, conn.ID())
	require.False(t, conn.Closed())

	h := srv.Headers()[0]
	require.Empty(t, h.Get("x-iterm2-cookie"))
	require.Empty(t, h.Get("x-iterm2-key"))
	require.Empty(t, h.Get("x-iterm2-advisory-name"))
	require.Equal(t, iterm2.DefaultLibraryVersion, h.Get("x-iterm2-library-version"))
}

func TestCreateWindowReturnsSession(t *testing.T) {
	srv := iterm2test.NewServer(t, func(int64, iterm2.Command) iterm2test.Reply {
		return iterm2test.Reply{Response: iterm2.CreateTabResponse{
			Status:    iterm2.CreateTabOK,
			WindowID:  "window-1",
			TabID:     1,
			SessionID: "w0t0p0:ABC123",
		}}
	})
	conn := dial(t, srv)

	session, err := conn.CreateWindow(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, iterm2.SessionSummary{UniqueIdentifier: "w0t0p0:ABC123"}, session)

	requests := srv.Requests()
	require.Len(t, requests, 1)
	require.Equal(t, iterm2.CreateTab{}, requests[0].Command)
	require.Equal(t, int64(1), requests[0].ID)
}

func TestCreateWindowInvalidProfile(t *testing.T) {
	srv := iterm2test.NewServer(t, iterm2test.NewModel().Respond)
	conn := dial(t, srv)

	_, err := conn.CreateWindow(context.Background(), "Nope")
	var apiErr *iterm2.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "INVALID_PROFILE_NAME", apiErr.Status)
	require.False(t, conn.Closed())
}

func TestCreateTabRequiresWindowID(t *testing.T) {
	srv := iterm2test.NewServer(t, iterm2test.NewModel().Respond)
	conn := dial(t, srv)

	_, err := conn.CreateTab(context.Background(), "", "")
	require.ErrorIs(t, err, iterm2.ErrEmptyWindowID)
	require.Empty(t, srv.Requests())

	var apiErr *iterm2.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "create tab", apiErr.Op)
	require.Equal(t, "INVALID_WINDOW_ID", apiErr.Status)
	require.False(t, conn.Closed())
}

func TestCreateTabInExistingWindow(t *testing.T) {
	model := iterm2test.NewModel("Dev")
	srv := iterm2test.NewServer(t, model.Respond)
	conn := dial(t, srv)
	ctx := context.Background()

	first, err := conn.CreateWindow(ctx, "")
	require.NoError(t, err)

	windows, err := conn.GetWindows(ctx)
	require.NoError(t, err)
	require.Len(t, windows, 1)

	second, err := conn.CreateTab(ctx, "Dev", windows[0].WindowID)
	require.NoError(t, err)
	require.NotEqual(t, first.UniqueIdentifier, second.UniqueIdentifier)

	_, err = conn.CreateTab(ctx, "", "window-404")
	var apiErr *iterm2.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "INVALID_WINDOW_ID", apiErr.Status)

	windows, err = conn.GetWindows(ctx)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	require.Len(t, windows[0].Tabs, 2)
	require.Equal(t, second.UniqueIdentifier, windows[0].Tabs[1].Sessions()[0].UniqueIdentifier)

	requests := srv.Requests()
	for i, req := range requests {
		require.Equal(t, int64(i+1), req.ID)
	}
}

func TestSendTextVerbatim(t *testing.T) {
	model := iterm2test.NewModel()
	srv := iterm2test.NewServer(t, model.Respond)
	conn := dial(t, srv)
	ctx := context.Background()

	session, err := conn.CreateWindow(ctx, "")
	require.NoError(t, err)

	require.NoError(t, conn.SendText(ctx, session.UniqueIdentifier, "echo hi\r"))
	require.NoError(t, conn.SendText(ctx, session.UniqueIdentifier, ""))
	require.Equal(t, []string{"echo hi\r", ""}, model.Typed(session.UniqueIdentifier))
}

func TestSendTextSessionNotFound(t *testing.T) {
	srv := iterm2test.NewServer(t, iterm2test.NewModel().Respond)
	conn := dial(t, srv)

	err := conn.SendText(context.Background(), "ghost", "x")
	var apiErr *iterm2.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "SESSION_NOT_FOUND", apiErr.Status)
	require.Equal(t, "send text", apiErr.Op)
}

func TestSendTextUnexpectedVariant(t *testing.T) {
	srv := iterm2test.NewServer(t, func(int64, iterm2.Command) iterm2test.Reply {
		return iterm2test.Reply{Response: iterm2.ListSessionsResponse{}}
	})
	conn := dial(t, srv)

	err := conn.SendText(context.Background(), "s", "x")
	var protoErr *iterm2.ProtocolError
	require.True(t, errors.As(err, &protoErr))
	require.Contains(t, err.Error(), "expected send-text response")
	require.False(t, conn.Closed())
}

func TestUnknownVariantIsProtocolError(t *testing.T) {
	srv := iterm2test.NewServer(t, func(int64, iterm2.Command) iterm2test.Reply {
		return iterm2test.Reply{Response: iterm2.UnknownResponse{Field: 150}}
	})
	conn := dial(t, srv)

	_, err := conn.ListSessions(context.Background())
	var protoErr *iterm2.ProtocolError
	require.True(t, errors.As(err, &protoErr))
	require.Contains(t, err.Error(), "got field 150")
}

func TestServerErrorIsAPIError(t *testing.T) {
	srv := iterm2test.NewServer(t, func(int64, iterm2.Command) iterm2test.Reply {
		return iterm2test.Reply{Response: iterm2.ErrorResponse{Message: "boom"}}
	})
	conn := dial(t, srv)

	_, err := conn.GetWindows(context.Background())
	var apiErr *iterm2.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "ERROR", apiErr.Status)
	require.Equal(t, "boom", apiErr.Detail)
}

func TestListSessionsReturnsOnlyBuried(t *testing.T) {
	model := iterm2test.NewModel()
	model.Bury(iterm2.SessionSummary{UniqueIdentifier: "BURIED-1", Title: "old"})
	srv := iterm2test.NewServer(t, model.Respond)
	conn := dial(t, srv)
	ctx := context.Background()

	_, err := conn.CreateWindow(ctx, "")
	require.NoError(t, err)

	sessions, err := conn.ListSessions(ctx)
	require.NoError(t, err)
	require.Equal(t, []iterm2.SessionSummary{{UniqueIdentifier: "BURIED-1", Title: "old"}}, sessions)

	windows, err := conn.GetWindows(ctx)
	require.NoError(t, err)
	require.Len(t, windows, 1)
}

func TestEmptyListSessions(t *testing.T) {
	srv := iterm2test.NewServer(t, iterm2test.NewModel().Respond)
	conn := dial(t, srv)

	sessions, err := conn.ListSessions(context.Background())
	require.NoError(t, err)
	require.Empty(t, sessions)

	windows, err := conn.GetWindows(context.Background())
	require.NoError(t, err)
	require.Empty(t, windows)
}

func TestClosedStreamFailsEveryLaterCall(t *testing.T) {
	srv := iterm2test.NewServer(t, func(int64, iterm2.Command) iterm2test.Reply {
		return iterm2test.Reply{Hangup: true}
	})
	conn := dial(t, srv)
	ctx := context.Background()

	_, err := conn.ListSessions(ctx)
	var connErr *iterm2.ConnectionError
	require.True(t, errors.As(err, &connErr))
	require.ErrorIs(t, err, iterm2.ErrClosed)
	require.True(t, conn.Closed())

	err = conn.SendText(ctx, "s", "x")
	require.ErrorIs(t, err, iterm2.ErrClosed)
	require.Contains(t, err.Error(), "connection closed")

	_, err = conn.CreateWindow(ctx, "")
	require.ErrorIs(t, err, iterm2.ErrClosed)

	require.Len(t, srv.Requests(), 1)
}

func TestMalformedFramesAreDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		reply iterm2test.Reply
	}{
		{name: "garbage", reply: iterm2test.Reply{Raw: []byte{0x00}}},
		{name: "no variant", reply: iterm2test.Reply{Raw: []byte{0x08, 0x01}}},
		{name: "text frame", reply: iterm2test.Reply{Raw: []byte("{}"), Text: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := iterm2test.NewServer(t, func(int64, iterm2.Command) iterm2test.Reply { return tc.reply })
			conn := dial(t, srv)

			_, err := conn.GetWindows(context.Background())
			var decodeErr *iterm2.DecodeError
			require.True(t, errors.As(err, &decodeErr), "err = %v", err)
		})
	}
}

func TestReplyIDMismatchIsProtocolError(t *testing.T) {
	srv := iterm2test.NewServer(t, func(int64, iterm2.Command) iterm2test.Reply {
		payload, err := iterm2.EncodeResponse(iterm2.Reply{ID: 99, HasID: true, Response: iterm2.SendTextResponse{}})
		if err != nil {
			panic(err)
		}
		return iterm2test.Reply{Raw: payload}
	})
	conn := dial(t, srv)

	err := conn.SendText(context.Background(), "s", "x")
	var protoErr *iterm2.ProtocolError
	require.True(t, errors.As(err, &protoErr))
	require.Contains(t, err.Error(), "reply id 99 does not match request id 1")
	require.True(t, conn.Closed())

	err = conn.SendText(context.Background(), "s", "x")
	require.ErrorIs(t, err, iterm2.ErrClosed)
	require.Len(t, srv.Requests(), 1)
}

func TestConcurrentCallsAreSerialized(t *testing.T) {
	model := iterm2test.NewModel()
	srv := iterm2test.NewServer(t, model.Respond)
	conn := dial(t, srv)
	ctx := context.Background()

	session, err := conn.CreateWindow(ctx, "")
	require.NoError(t, err)

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- conn.SendText(ctx, session.UniqueIdentifier, "x")
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Len(t, model.Typed(session.UniqueIdentifier), callers)
	seen := map[int64]bool{}
	for _, req := range srv.Requests() {
		require.False(t, seen[req.ID], "duplicate request id %d", req.ID)
		seen[req.ID] = true
	}
	require.Len(t, seen, callers+1)
}

func TestCancelClosesConn(t *testing.T) {
	release := make(chan struct{})
	srv := iterm2test.NewServer(t, func(int64, iterm2.Command) iterm2test.Reply {
		<-release
		return iterm2test.Reply{Hangup: true}
	})
	t.Cleanup(func() { close(release) })
	conn := dial(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := conn.GetWindows(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, err, iterm2.ErrClosed)
	require.True(t, conn.Closed())
}

func TestDeadlineClosesConn(t *testing.T) {
	release := make(chan struct{})
	srv := iterm2test.NewServer(t, func(int64, iterm2.Command) iterm2test.Reply {
		<-release
		return iterm2test.Reply{Hangup: true}
	})
	t.Cleanup(func() { close(release) })
	conn := dial(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := conn.SendText(ctx, "s", "x")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.True(t, conn.Closed())
}

func TestCloseIsIdempotent(t *testing.T) {
	srv := iterm2test.NewServer(t, iterm2test.NewModel().Respond)
	conn, err := iterm2.Dial(context.Background(), iterm2.Config{SocketPath: srv.SocketPath})
	require.NoError(t, err)

	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())
	require.True(t, conn.Closed())

	_, err = conn.ListSessions(context.Background())
	require.ErrorIs(t, err, iterm2.ErrClosed)
	require.Empty(t, srv.Requests())
}
