// Package iterm2test runs an in-process stand-in for the iTerm2 API server on a
// unix socket, for tests of code built on package iterm2.
package iterm2test

import (
	"errors"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dra11y/iterm2-api/internal/ipc"
	"github.com/dra11y/iterm2-api/pkg/iterm2"
	"github.com/gorilla/websocket"
)

// Reply is what the server sends back for one request.
type Reply struct {
	// Response is encoded with the request id echoed.
	Response iterm2.Response
	// Raw, when non-nil, is written verbatim instead of Response.
	Raw []byte
	// Text sends Raw as a text frame.
	Text bool
	// Hangup closes the connection instead of answering.
	Hangup bool
}

// Responder produces the reply to one decoded request.
type Responder func(id int64, cmd iterm2.Command) Reply

// Request is one decoded client request as seen by the server.
type Request struct {
	ID      int64
	Command iterm2.Command
}

// Server is a fake API server listening on SocketPath.
type Server struct {
	SocketPath string

	responder    Responder
	rejectStatus int

	listener   net.Listener
	httpServer *http.Server

	mu       sync.Mutex
	requests []Request
	headers  []http.Header
	conns    []*websocket.Conn
}

// Option customizes a Server.
type Option func(*Server)

// WithRejectStatus makes the server refuse every upgrade with status.
func WithRejectStatus(status int) Option {
	return func(s *Server) { s.rejectStatus = status }
}

// NewServer starts a server answering through responder. It is shut down by t.Cleanup.
func NewServer(t testing.TB, responder Responder, opts ...Option) *Server {
	t.Helper()

	dir, err := os.MkdirTemp("", "it2")
	if err != nil {
		t.Fatalf("create socket dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	s := &Server{
		SocketPath: filepath.Join(dir, "socket"),
		responder:  responder,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.listener, err = ipc.Listen(s.SocketPath)
	if err != nil {
		t.Fatalf("listen %s: %v", s.SocketPath, err)
	}
	s.httpServer = &http.Server{Handler: http.HandlerFunc(s.serveHTTP)}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if serveErr := s.httpServer.Serve(s.listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			t.Errorf("fake iTerm2 server: %v", serveErr)
		}
	}()

	t.Cleanup(func() {
		_ = s.httpServer.Close()
		s.mu.Lock()
		for _, c := range s.conns {
			_ = c.Close()
		}
		s.mu.Unlock()
		<-done
	})
	return s
}

// Requests returns every request received so far, in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Headers returns the upgrade request headers of every connection attempt.
func (s *Server) Headers() []http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]http.Header(nil), s.headers...)
}

// CloseConnections drops every accepted connection without a close frame.
func (s *Server) CloseConnections() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.conns {
		_ = c.Close()
	}
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.headers = append(s.headers, r.Header.Clone())
	s.mu.Unlock()

	if s.rejectStatus != 0 {
		http.Error(w, http.StatusText(s.rejectStatus), s.rejectStatus)
		return
	}

	upgrader := websocket.Upgrader{
		Subprotocols: []string{iterm2.Subprotocol},
		CheckOrigin:  func(*http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.conns = append(s.conns, conn)
	s.mu.Unlock()

	s.serveConn(conn)
}

func (s *Server) serveConn(conn *websocket.Conn) {
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		id, cmd, err := iterm2.DecodeCommand(data)
		if err != nil {
			payload, encErr := iterm2.EncodeResponse(iterm2.Reply{Response: iterm2.ErrorResponse{Message: err.Error()}})
			if encErr != nil || conn.WriteMessage(websocket.BinaryMessage, payload) != nil {
				return
			}
			continue
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{ID: id, Command: cmd})
		s.mu.Unlock()

		var reply Reply
		if s.responder != nil {
			reply = s.responder(id, cmd)
		} else {
			reply = Reply{Response: iterm2.ErrorResponse{Message: "no responder"}}
		}

		if reply.Hangup {
			return
		}
		if !s.write(conn, id, reply) {
			return
		}
	}
}

func (s *Server) write(conn *websocket.Conn, id int64, reply Reply) bool {
	if reply.Raw != nil {
		messageType := websocket.BinaryMessage
		if reply.Text {
			messageType = websocket.TextMessage
		}
		return conn.WriteMessage(messageType, reply.Raw) == nil
	}

	payload, err := iterm2.EncodeResponse(iterm2.Reply{ID: id, HasID: id != 0, Response: reply.Response})
	if err != nil {
		return false
	}
	return conn.WriteMessage(websocket.BinaryMessage, payload) == nil
}
