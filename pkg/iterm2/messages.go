package iterm2

import (
	"fmt"

	iterm2pb "github.com/dra11y/iterm2-api/proto/gen/go/iterm2"
)

// Command is one client-originated request. The set of implementations is closed.
type Command interface {
	command()
}

// CreateTab opens a tab. An empty WindowID asks iTerm2 for a new window;
// an empty ProfileName selects the default profile.
type CreateTab struct {
	ProfileName string
	WindowID    string
}

// SendText types Text into the session as if entered by the user.
type SendText struct {
	SessionID string
	Text      string
}

// ListSessions asks for the window hierarchy and the buried sessions.
type ListSessions struct{}

func (CreateTab) command()    {}
func (SendText) command()     {}
func (ListSessions) command() {}

// Response is one server-originated reply. The set of implementations is closed.
type Response interface {
	response()
}

// CreateTabResponse answers CreateTab. SessionID names the new tab's session when Status is OK.
type CreateTabResponse struct {
	Status    CreateTabStatus
	WindowID  string
	TabID     int32
	SessionID string
}

// SendTextResponse answers SendText.
type SendTextResponse struct {
	Status SendTextStatus
}

// ListSessionsResponse answers ListSessions with the window hierarchy and the buried sessions.
type ListSessionsResponse struct {
	Windows        []Window
	BuriedSessions []SessionSummary
}

// ErrorResponse carries the server's top-level error string, sent when it
// could not process a request at all.
type ErrorResponse struct {
	Message string
}

// UnknownResponse is a well-formed reply variant this client does not model.
type UnknownResponse struct {
	Field int32
}

func (CreateTabResponse) response()    {}
func (SendTextResponse) response()     {}
func (ListSessionsResponse) response() {}
func (ErrorResponse) response()        {}
func (UnknownResponse) response()      {}

// Reply is a decoded server message: the echoed request id, when present, and its payload.
type Reply struct {
	ID       int64
	HasID    bool
	Response Response
}

// CreateTabStatus is the outcome code of a CreateTab request.
type CreateTabStatus int32

const (
	CreateTabOK                  = CreateTabStatus(iterm2pb.CreateTabResponse_OK)
	CreateTabInvalidProfileName  = CreateTabStatus(iterm2pb.CreateTabResponse_INVALID_PROFILE_NAME)
	CreateTabInvalidWindowID     = CreateTabStatus(iterm2pb.CreateTabResponse_INVALID_WINDOW_ID)
	CreateTabInvalidTabIndex     = CreateTabStatus(iterm2pb.CreateTabResponse_INVALID_TAB_INDEX)
	CreateTabMissingSubstitution = CreateTabStatus(iterm2pb.CreateTabResponse_MISSING_SUBSTITUTION)
)

func (s CreateTabStatus) String() string {
	if name, ok := iterm2pb.CreateTabResponse_Status_name[int32(s)]; ok {
		return name
	}
	return fmt.Sprintf("CreateTabStatus(%d)", int32(s))
}

// SendTextStatus is the outcome code of a SendText request.
type SendTextStatus int32

const (
	SendTextOK              = SendTextStatus(iterm2pb.SendTextResponse_OK)
	SendTextSessionNotFound = SendTextStatus(iterm2pb.SendTextResponse_SESSION_NOT_FOUND)
)

func (s SendTextStatus) String() string {
	if name, ok := iterm2pb.SendTextResponse_Status_name[int32(s)]; ok {
		return name
	}
	return fmt.Sprintf("SendTextStatus(%d)", int32(s))
}

// SessionSummary identifies one terminal session. Two summaries name the same
// session when their UniqueIdentifier values are equal.
type SessionSummary struct {
	UniqueIdentifier string
	Title            string
}

// Window is a read-only snapshot of one iTerm2 window.
type Window struct {
	WindowID string
	Number   int32
	Tabs     []Tab
}

// Tab is a read-only snapshot of one tab and its split-pane layout.
type Tab struct {
	TabID     string
	Root      SplitNode
	Minimized bool
}

// SplitNode is one level of a tab's split-pane tree.
type SplitNode struct {
	Vertical bool
	Links    []SplitLink
}

// SplitLink holds exactly one of Session or Node.
type SplitLink struct {
	Session *SessionSummary
	Node    *SplitNode
}

// Sessions returns the tab's sessions in split-tree order.
func (t Tab) Sessions() []SessionSummary {
	var out []SessionSummary
	var walk func(SplitNode)
	walk = func(n SplitNode) {
		for _, link := range n.Links {
			switch {
			case link.Session != nil:
				out = append(out, *link.Session)
			case link.Node != nil:
				walk(*link.Node)
			}
		}
	}
	walk(t.Root)
	return out
}
