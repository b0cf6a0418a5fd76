package iterm2

import (
	"errors"
	"fmt"

	iterm2pb "github.com/dra11y/iterm2-api/proto/gen/go/iterm2"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/dra11y/iterm2-api iterm2/api.proto

// Envelope fields below this number are not submessage variants.
const firstVariantField protowire.Number = 100

// maxSplitDepth bounds split-pane tree recursion while decoding.
const maxSplitDepth = 64

// EncodeCommand serializes cmd into one ClientOriginatedMessage. A zero id is omitted.
func EncodeCommand(id int64, cmd Command) ([]byte, error) {
	msg := &iterm2pb.ClientOriginatedMessage{}
	if id != 0 {
		msg.Id = proto.Int64(id)
	}

	switch c := cmd.(type) {
	case CreateTab:
		msg.Submessage = createTabRequest(c)
	case *CreateTab:
		if c == nil {
			return nil, errors.New("iterm2: encode nil command")
		}
		msg.Submessage = createTabRequest(*c)
	case SendText:
		msg.Submessage = sendTextRequest(c)
	case *SendText:
		if c == nil {
			return nil, errors.New("iterm2: encode nil command")
		}
		msg.Submessage = sendTextRequest(*c)
	case ListSessions, *ListSessions:
		msg.Submessage = &iterm2pb.ClientOriginatedMessage_ListSessionsRequest{
			ListSessionsRequest: &iterm2pb.ListSessionsRequest{},
		}
	default:
		return nil, fmt.Errorf("iterm2: encode unsupported command %T", cmd)
	}

	b, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("iterm2: encode %T: %w", cmd, err)
	}
	return b, nil
}

func createTabRequest(c CreateTab) *iterm2pb.ClientOriginatedMessage_CreateTabRequest {
	return &iterm2pb.ClientOriginatedMessage_CreateTabRequest{
		CreateTabRequest: &iterm2pb.CreateTabRequest{
			ProfileName: optionalString(c.ProfileName),
			WindowId:    optionalString(c.WindowID),
		},
	}
}

func sendTextRequest(c SendText) *iterm2pb.ClientOriginatedMessage_SendTextRequest {
	return &iterm2pb.ClientOriginatedMessage_SendTextRequest{
		SendTextRequest: &iterm2pb.SendTextRequest{
			Session: proto.String(c.SessionID),
			Text:    proto.String(c.Text),
		},
	}
}

// DecodeResponse parses one ServerOriginatedMessage. Input that does not
// conform to the schema yields a *DecodeError.
func DecodeResponse(b []byte) (Reply, error) {
	var msg iterm2pb.ServerOriginatedMessage
	if err := unmarshal(b, &msg); err != nil {
		return Reply{}, err
	}

	reply := Reply{ID: msg.GetId(), HasID: msg.Id != nil}
	switch sub := msg.GetSubmessage().(type) {
	case *iterm2pb.ServerOriginatedMessage_Error:
		reply.Response = ErrorResponse{Message: sub.Error}
	case *iterm2pb.ServerOriginatedMessage_CreateTabResponse:
		r := sub.CreateTabResponse
		reply.Response = CreateTabResponse{
			Status:    CreateTabStatus(r.GetStatus()),
			WindowID:  r.GetWindowId(),
			TabID:     r.GetTabId(),
			SessionID: r.GetSessionId(),
		}
	case *iterm2pb.ServerOriginatedMessage_SendTextResponse:
		reply.Response = SendTextResponse{Status: SendTextStatus(sub.SendTextResponse.GetStatus())}
	case *iterm2pb.ServerOriginatedMessage_ListSessionsResponse:
		resp, err := listSessionsResponseFrom(sub.ListSessionsResponse)
		if err != nil {
			return Reply{}, err
		}
		reply.Response = resp
	default:
		num, ok := unknownVariant(msg.ProtoReflect().GetUnknown())
		if !ok {
			return Reply{}, &DecodeError{Reason: "message carries no response variant"}
		}
		reply.Response = UnknownResponse{Field: int32(num)}
	}
	return reply, nil
}

func listSessionsResponseFrom(pb *iterm2pb.ListSessionsResponse) (ListSessionsResponse, error) {
	var resp ListSessionsResponse
	for _, w := range pb.GetWindows() {
		window := Window{WindowID: w.GetWindowId(), Number: w.GetNumber()}
		for _, t := range w.GetTabs() {
			root, err := splitNodeFrom(t.GetRoot(), 1)
			if err != nil {
				return ListSessionsResponse{}, err
			}
			window.Tabs = append(window.Tabs, Tab{TabID: t.GetTabId(), Root: root, Minimized: t.GetMinimized()})
		}
		resp.Windows = append(resp.Windows, window)
	}
	for _, s := range pb.GetBuriedSessions() {
		resp.BuriedSessions = append(resp.BuriedSessions, sessionSummaryFrom(s))
	}
	return resp, nil
}

func splitNodeFrom(pb *iterm2pb.SplitTreeNode, depth int) (SplitNode, error) {
	if depth > maxSplitDepth {
		return SplitNode{}, &DecodeError{Reason: fmt.Sprintf("split tree deeper than %d levels", maxSplitDepth)}
	}
	node := SplitNode{Vertical: pb.GetVertical()}
	for _, link := range pb.GetLinks() {
		switch child := link.GetChild().(type) {
		case *iterm2pb.SplitTreeNode_SplitTreeLink_Session:
			session := sessionSummaryFrom(child.Session)
			node.Links = append(node.Links, SplitLink{Session: &session})
		case *iterm2pb.SplitTreeNode_SplitTreeLink_Node:
			sub, err := splitNodeFrom(child.Node, depth+1)
			if err != nil {
				return SplitNode{}, err
			}
			node.Links = append(node.Links, SplitLink{Node: &sub})
		default:
			node.Links = append(node.Links, SplitLink{})
		}
	}
	return node, nil
}

func sessionSummaryFrom(pb *iterm2pb.SessionSummary) SessionSummary {
	return SessionSummary{UniqueIdentifier: pb.GetUniqueIdentifier(), Title: pb.GetTitle()}
}

// unmarshal decodes b into m. proto.Unmarshal files a field whose wire type
// contradicts the schema under unknown fields; those are rejected here.
func unmarshal(b []byte, m proto.Message) error {
	if err := proto.Unmarshal(b, m); err != nil {
		return &DecodeError{Reason: "unmarshal " + string(m.ProtoReflect().Descriptor().Name()), Err: err}
	}
	return checkUnknown(m.ProtoReflect())
}

func checkUnknown(m protoreflect.Message) error {
	fields := m.Descriptor().Fields()
	for b := m.GetUnknown(); len(b) > 0; {
		num, typ, n := protowire.ConsumeField(b)
		if n < 0 {
			return &DecodeError{Reason: "read unknown field", Err: protowire.ParseError(n)}
		}
		b = b[n:]
		if fd := fields.ByNumber(num); fd != nil {
			return &DecodeError{Reason: fmt.Sprintf("field %d has wire type %d, want %d", num, typ, wireType(fd))}
		}
	}

	var err error
	m.Range(func(fd protoreflect.FieldDescriptor, v protoreflect.Value) bool {
		if fd.Message() == nil {
			return true
		}
		if fd.IsList() {
			list := v.List()
			for i := 0; i < list.Len() && err == nil; i++ {
				err = checkUnknown(list.Get(i).Message())
			}
		} else {
			err = checkUnknown(v.Message())
		}
		return err == nil
	})
	return err
}

func wireType(fd protoreflect.FieldDescriptor) protowire.Type {
	switch fd.Kind() {
	case protoreflect.StringKind, protoreflect.BytesKind, protoreflect.MessageKind:
		return protowire.BytesType
	default:
		return protowire.VarintType
	}
}

// unknownVariant returns the first undeclared submessage field in raw.
func unknownVariant(raw protoreflect.RawFields) (protowire.Number, bool) {
	b := []byte(raw)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeField(b)
		if n < 0 {
			return 0, false
		}
		b = b[n:]
		if num >= firstVariantField && typ == protowire.BytesType {
			return num, true
		}
	}
	return 0, false
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return proto.String(s)
}
