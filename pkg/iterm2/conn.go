package iterm2

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dra11y/iterm2-api/internal/fsm"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Config controls how Dial reaches and authenticates to iTerm2.
type Config struct {
	// SocketPath overrides DefaultSocketPath.
	SocketPath string
	// Credential is attached to the handshake when non-nil.
	Credential *Credential
	// LibraryVersion is reported in the library-version header.
	LibraryVersion string
	// AdvisoryName is shown by iTerm2 when it asks the user to approve the connection.
	AdvisoryName string
	// Logger receives debug events tagged with conn_id. Nil discards them.
	Logger *slog.Logger
}

// Conn is one negotiated API channel to iTerm2.
//
// A Conn carries at most one outstanding command: each operation writes one
// frame and consumes exactly one reply before returning, and concurrent callers
// are served one at a time. Once the transport fails or Close is called the
// Conn is permanently closed and every operation returns a ConnectionError
// wrapping ErrClosed; there is no reconnect.
type Conn struct {
	id     string
	ws     *websocket.Conn
	logger *slog.Logger

	callMu sync.Mutex
	nextID int64

	stateMu sync.Mutex
	state   fsm.State
}

// Connect dials the default socket with credentials read from the environment.
func Connect(ctx context.Context) (*Conn, error) {
	path, err := DefaultSocketPath()
	if err != nil {
		return nil, &ConnectionError{Msg: "resolve iTerm2 socket path", Err: err}
	}
	cfg := Config{SocketPath: path}
	if cred, ok := CredentialFromEnv(); ok {
		cfg.Credential = &cred
	}
	return Dial(ctx, cfg)
}

// Dial opens the socket, performs the WebSocket upgrade and returns an open Conn.
// No state is left behind when it fails.
func Dial(ctx context.Context, cfg Config) (*Conn, error) {
	path := cfg.SocketPath
	if path == "" {
		var err error
		if path, err = DefaultSocketPath(); err != nil {
			return nil, &ConnectionError{Msg: "resolve iTerm2 socket path", Err: err}
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	id := uuid.NewString()
	logger = logger.With("conn_id", id)

	transport, err := openTransport(ctx, path)
	if err != nil {
		logger.Debug("iterm2 transport failed", "socket", path, "error", err.Error())
		return nil, err
	}

	ws, err := upgrade(ctx, transport, cfg)
	if err != nil {
		logger.Debug("iterm2 handshake failed", "socket", path, "error", err.Error())
		return nil, err
	}

	state, err := fsm.Transition(fsm.StateConnecting, fsm.EventUpgraded)
	if err != nil {
		_ = ws.Close()
		return nil, err
	}

	logger.Debug("iterm2 connected",
		"socket", path,
		"subprotocol", ws.Subprotocol(),
		"authenticated", cfg.Credential != nil,
	)
	return &Conn{id: id, ws: ws, logger: logger, state: state}, nil
}

// ID is a random identifier for this connection, used to correlate log records.
func (c *Conn) ID() string { return c.id }

// Closed reports whether the channel has reached its terminal state.
func (c *Conn) Closed() bool {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	return c.state == fsm.StateClosed
}

// Close sends a normal-closure frame and releases the transport. It may be
// called while another goroutine is blocked in an operation, which then fails
// with ErrClosed.
func (c *Conn) Close() error {
	if !c.markClosed(fsm.EventClose) {
		return nil
	}
	_ = c.ws.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	c.logger.Debug("iterm2 connection closed")
	return c.ws.Close()
}

// CreateWindow opens a new window with one tab and returns its session.
// An empty profileName selects the default profile.
func (c *Conn) CreateWindow(ctx context.Context, profileName string) (SessionSummary, error) {
	return c.createTab(ctx, "create window", CreateTab{ProfileName: profileName})
}

// CreateTab opens a new tab in the window identified by windowID and returns its session.
func (c *Conn) CreateTab(ctx context.Context, profileName, windowID string) (SessionSummary, error) {
	if windowID == "" {
		return SessionSummary{}, &APIError{
			Op:     "create tab",
			Status: CreateTabInvalidWindowID.String(),
			Detail: ErrEmptyWindowID.Error(),
			Err:    ErrEmptyWindowID,
		}
	}
	return c.createTab(ctx, "create tab", CreateTab{ProfileName: profileName, WindowID: windowID})
}

func (c *Conn) createTab(ctx context.Context, op string, cmd CreateTab) (SessionSummary, error) {
	resp, err := c.roundTrip(ctx, cmd)
	if err != nil {
		return SessionSummary{}, err
	}
	switch r := resp.(type) {
	case CreateTabResponse:
		if r.Status != CreateTabOK {
			return SessionSummary{}, &APIError{Op: op, Status: r.Status.String()}
		}
		return SessionSummary{UniqueIdentifier: r.SessionID}, nil
	case ErrorResponse:
		return SessionSummary{}, serverError(op, r)
	default:
		return SessionSummary{}, unexpected("create-tab", resp)
	}
}

// SendText types text into the session as if entered by the user. The text is
// sent verbatim; include "\r" to execute a command line.
func (c *Conn) SendText(ctx context.Context, sessionID, text string) error {
	resp, err := c.roundTrip(ctx, SendText{SessionID: sessionID, Text: text})
	if err != nil {
		return err
	}
	switch r := resp.(type) {
	case SendTextResponse:
		if r.Status != SendTextOK {
			return &APIError{Op: "send text", Status: r.Status.String()}
		}
		return nil
	case ErrorResponse:
		return serverError("send text", r)
	default:
		return unexpected("send-text", resp)
	}
}

// ListSessions returns the buried sessions, those not attached to any window.
// Sessions inside windows are not included; walk GetWindows for those.
func (c *Conn) ListSessions(ctx context.Context) ([]SessionSummary, error) {
	resp, err := c.listSessions(ctx, "list sessions")
	if err != nil {
		return nil, err
	}
	return resp.BuriedSessions, nil
}

// GetWindows returns a snapshot of every open window with its tabs and split panes.
func (c *Conn) GetWindows(ctx context.Context) ([]Window, error) {
	resp, err := c.listSessions(ctx, "get windows")
	if err != nil {
		return nil, err
	}
	return resp.Windows, nil
}

func (c *Conn) listSessions(ctx context.Context, op string) (ListSessionsResponse, error) {
	resp, err := c.roundTrip(ctx, ListSessions{})
	if err != nil {
		return ListSessionsResponse{}, err
	}
	switch r := resp.(type) {
	case ListSessionsResponse:
		return r, nil
	case ErrorResponse:
		return ListSessionsResponse{}, serverError(op, r)
	default:
		return ListSessionsResponse{}, unexpected("list-sessions", resp)
	}
}

// roundTrip writes cmd as one binary frame and reads exactly one reply frame.
func (c *Conn) roundTrip(ctx context.Context, cmd Command) (Response, error) {
	c.callMu.Lock()
	defer c.callMu.Unlock()

	if c.Closed() {
		return nil, closedError(nil)
	}

	c.nextID++
	requestID := c.nextID
	payload, err := EncodeCommand(requestID, cmd)
	if err != nil {
		return nil, err
	}

	release := c.bindContext(ctx)
	defer release()

	c.logger.Debug("iterm2 send", "request_id", requestID, "command", fmt.Sprintf("%T", cmd), "bytes", len(payload))
	if err := c.ws.WriteMessage(websocket.BinaryMessage, payload); err != nil {
		return nil, c.fail(ctx, "write", err)
	}

	messageType, data, err := c.ws.ReadMessage()
	if err != nil {
		return nil, c.fail(ctx, "read", err)
	}
	if messageType != websocket.BinaryMessage {
		return nil, &DecodeError{Reason: fmt.Sprintf("expected binary frame, got message type %d", messageType)}
	}

	reply, err := DecodeResponse(data)
	if err != nil {
		c.logger.Debug("iterm2 decode failed", "request_id", requestID, "bytes", len(data), "error", err.Error())
		return nil, err
	}
	if reply.HasID && reply.ID != 0 && reply.ID != requestID {
		// Replies no longer line up with requests, so the channel cannot be reused.
		if c.markClosed(fsm.EventFail) {
			_ = c.ws.Close()
			c.logger.Debug("iterm2 channel desynchronized", "request_id", requestID, "reply_id", reply.ID)
		}
		return nil, &ProtocolError{Msg: fmt.Sprintf("reply id %d does not match request id %d", reply.ID, requestID)}
	}
	c.logger.Debug("iterm2 receive", "request_id", requestID, "response", fmt.Sprintf("%T", reply.Response), "bytes", len(data))

	c.stateMu.Lock()
	if next, err := fsm.Transition(c.state, fsm.EventExchange); err == nil {
		c.state = next
	}
	c.stateMu.Unlock()
	return reply.Response, nil
}

// bindContext maps ctx's deadline and cancellation onto the socket deadlines.
// An interrupted read or write leaves the websocket unusable, so cancellation
// closes the channel.
func (c *Conn) bindContext(ctx context.Context) func() {
	deadline, _ := ctx.Deadline()
	_ = c.ws.SetReadDeadline(deadline)
	_ = c.ws.SetWriteDeadline(deadline)

	stop := context.AfterFunc(ctx, func() {
		now := time.Now()
		_ = c.ws.SetReadDeadline(now)
		_ = c.ws.SetWriteDeadline(now)
	})
	return func() { stop() }
}

// fail moves the channel to closed after a transport error and returns the caller's error.
func (c *Conn) fail(ctx context.Context, stage string, err error) error {
	cause := err
	if ctxErr := ctx.Err(); ctxErr != nil {
		cause = ctxErr
	} else if deadline, ok := ctx.Deadline(); ok && !time.Now().Before(deadline) {
		cause = context.DeadlineExceeded
	}
	if c.markClosed(fsm.EventFail) {
		_ = c.ws.Close()
		c.logger.Debug("iterm2 connection lost", "stage", stage, "error", err.Error())
	}
	return closedError(cause)
}

// markClosed transitions to closed and reports whether this call did so.
func (c *Conn) markClosed(event fsm.Event) bool {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	if c.state == fsm.StateClosed {
		return false
	}
	next, err := fsm.Transition(c.state, event)
	if err != nil {
		return false
	}
	c.state = next
	return true
}

func serverError(op string, r ErrorResponse) error {
	return &APIError{Op: op, Status: "ERROR", Detail: r.Message}
}

func unexpected(want string, got Response) error {
	if u, ok := got.(UnknownResponse); ok {
		return &ProtocolError{Msg: fmt.Sprintf("expected %s response, got field %d", want, u.Field)}
	}
	return &ProtocolError{Msg: fmt.Sprintf("expected %s response", want)}
}
