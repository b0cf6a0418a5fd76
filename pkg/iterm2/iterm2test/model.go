package iterm2test

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dra11y/iterm2-api/pkg/iterm2"
	"github.com/google/uuid"
)

// DefaultProfile is the profile every Model knows.
const DefaultProfile = "Default"

// Model is a minimal in-memory iTerm2: windows hold tabs, each tab holds one
// session, and text sent to a session is recorded.
type Model struct {
	mu       sync.Mutex
	profiles map[string]struct{}
	windows  []iterm2.Window
	buried   []iterm2.SessionSummary
	typed    map[string][]string
}

// NewModel returns an empty Model that accepts DefaultProfile plus profiles.
func NewModel(profiles ...string) *Model {
	m := &Model{
		profiles: map[string]struct{}{DefaultProfile: {}},
		typed:    map[string][]string{},
	}
	for _, p := range profiles {
		m.profiles[p] = struct{}{}
	}
	return m
}

// Bury adds a session that belongs to no window.
func (m *Model) Bury(session iterm2.SessionSummary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buried = append(m.buried, session)
}

// Typed returns the text chunks received by sessionID, in order.
func (m *Model) Typed(sessionID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.typed[sessionID]...)
}

// Windows returns a snapshot of the current windows.
func (m *Model) Windows() []iterm2.Window {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]iterm2.Window(nil), m.windows...)
}

// Respond is a Responder backed by the model.
func (m *Model) Respond(_ int64, cmd iterm2.Command) Reply {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch c := cmd.(type) {
	case iterm2.CreateTab:
		return Reply{Response: m.createTab(c)}
	case iterm2.SendText:
		if !m.hasSession(c.SessionID) {
			return Reply{Response: iterm2.SendTextResponse{Status: iterm2.SendTextSessionNotFound}}
		}
		m.typed[c.SessionID] = append(m.typed[c.SessionID], c.Text)
		return Reply{Response: iterm2.SendTextResponse{Status: iterm2.SendTextOK}}
	case iterm2.ListSessions:
		return Reply{Response: iterm2.ListSessionsResponse{
			Windows:        append([]iterm2.Window(nil), m.windows...),
			BuriedSessions: append([]iterm2.SessionSummary(nil), m.buried...),
		}}
	default:
		return Reply{Response: iterm2.ErrorResponse{Message: fmt.Sprintf("unsupported request %T", cmd)}}
	}
}

func (m *Model) createTab(c iterm2.CreateTab) iterm2.CreateTabResponse {
	profile := c.ProfileName
	if profile == "" {
		profile = DefaultProfile
	}
	if _, ok := m.profiles[profile]; !ok {
		return iterm2.CreateTabResponse{Status: iterm2.CreateTabInvalidProfileName}
	}

	windowIndex := -1
	if c.WindowID == "" {
		m.windows = append(m.windows, iterm2.Window{
			WindowID: fmt.Sprintf("window-%d", len(m.windows)+1),
			Number:   int32(len(m.windows)),
		})
		windowIndex = len(m.windows) - 1
	} else {
		for i, w := range m.windows {
			if w.WindowID == c.WindowID {
				windowIndex = i
				break
			}
		}
		if windowIndex < 0 {
			return iterm2.CreateTabResponse{Status: iterm2.CreateTabInvalidWindowID}
		}
	}

	window := &m.windows[windowIndex]
	tabIndex := len(window.Tabs)
	session := iterm2.SessionSummary{
		UniqueIdentifier: fmt.Sprintf("w%dt%dp0:%s", windowIndex, tabIndex, strings.ToUpper(uuid.NewString())),
		Title:            profile,
	}
	tabID := 100*(windowIndex+1) + tabIndex
	window.Tabs = append(window.Tabs, iterm2.Tab{
		TabID: fmt.Sprint(tabID),
		Root:  iterm2.SplitNode{Links: []iterm2.SplitLink{{Session: &session}}},
	})

	return iterm2.CreateTabResponse{
		Status:    iterm2.CreateTabOK,
		WindowID:  window.WindowID,
		TabID:     int32(tabID),
		SessionID: session.UniqueIdentifier,
	}
}

func (m *Model) hasSession(id string) bool {
	for _, w := range m.windows {
		for _, t := range w.Tabs {
			for _, s := range t.Sessions() {
				if s.UniqueIdentifier == id {
					return true
				}
			}
		}
	}
	for _, s := range m.buried {
		if s.UniqueIdentifier == id {
			return true
		}
	}
	return false
}
