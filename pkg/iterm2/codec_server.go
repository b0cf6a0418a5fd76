package iterm2

import (
	"errors"
	"fmt"

	iterm2pb "github.com/dra11y/iterm2-api/proto/gen/go/iterm2"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// DecodeCommand parses one ClientOriginatedMessage. It is the server-side
// mirror of EncodeCommand and backs in-process fakes of the API server.
func DecodeCommand(b []byte) (int64, Command, error) {
	var msg iterm2pb.ClientOriginatedMessage
	if err := unmarshal(b, &msg); err != nil {
		return 0, nil, err
	}

	var cmd Command
	switch sub := msg.GetSubmessage().(type) {
	case *iterm2pb.ClientOriginatedMessage_ListSessionsRequest:
		cmd = ListSessions{}
	case *iterm2pb.ClientOriginatedMessage_SendTextRequest:
		cmd = SendText{
			SessionID: sub.SendTextRequest.GetSession(),
			Text:      sub.SendTextRequest.GetText(),
		}
	case *iterm2pb.ClientOriginatedMessage_CreateTabRequest:
		cmd = CreateTab{
			ProfileName: sub.CreateTabRequest.GetProfileName(),
			WindowID:    sub.CreateTabRequest.GetWindowId(),
		}
	default:
		if num, ok := unknownVariant(msg.ProtoReflect().GetUnknown()); ok {
			return 0, nil, &DecodeError{Reason: fmt.Sprintf("unsupported request field %d", num)}
		}
		return 0, nil, &DecodeError{Reason: "message carries no request variant"}
	}
	return msg.GetId(), cmd, nil
}

// EncodeResponse serializes reply into one ServerOriginatedMessage.
func EncodeResponse(reply Reply) ([]byte, error) {
	msg := &iterm2pb.ServerOriginatedMessage{}
	if reply.HasID {
		msg.Id = proto.Int64(reply.ID)
	}

	switch r := reply.Response.(type) {
	case CreateTabResponse:
		resp := &iterm2pb.CreateTabResponse{
			Status:    iterm2pb.CreateTabResponse_Status(r.Status).Enum(),
			WindowId:  optionalString(r.WindowID),
			SessionId: optionalString(r.SessionID),
		}
		if r.TabID != 0 {
			resp.TabId = proto.Int32(r.TabID)
		}
		msg.Submessage = &iterm2pb.ServerOriginatedMessage_CreateTabResponse{CreateTabResponse: resp}
	case SendTextResponse:
		msg.Submessage = &iterm2pb.ServerOriginatedMessage_SendTextResponse{
			SendTextResponse: &iterm2pb.SendTextResponse{Status: iterm2pb.SendTextResponse_Status(r.Status).Enum()},
		}
	case ListSessionsResponse:
		msg.Submessage = &iterm2pb.ServerOriginatedMessage_ListSessionsResponse{ListSessionsResponse: listSessionsResponseTo(r)}
	case ErrorResponse:
		msg.Submessage = &iterm2pb.ServerOriginatedMessage_Error{Error: r.Message}
	case UnknownResponse:
		num := protowire.Number(r.Field)
		if num < firstVariantField || !num.IsValid() {
			return nil, fmt.Errorf("iterm2: unknown response field %d is not a variant", r.Field)
		}
		raw := protowire.AppendTag(nil, num, protowire.BytesType)
		msg.ProtoReflect().SetUnknown(protoreflect.RawFields(protowire.AppendBytes(raw, nil)))
	case nil:
		return nil, errors.New("iterm2: encode empty response")
	default:
		return nil, fmt.Errorf("iterm2: encode unsupported response %T", reply.Response)
	}

	b, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("iterm2: encode %T: %w", reply.Response, err)
	}
	return b, nil
}

func listSessionsResponseTo(r ListSessionsResponse) *iterm2pb.ListSessionsResponse {
	resp := &iterm2pb.ListSessionsResponse{}
	for _, w := range r.Windows {
		window := &iterm2pb.ListSessionsResponse_Window{WindowId: optionalString(w.WindowID)}
		if w.Number != 0 {
			window.Number = proto.Int32(w.Number)
		}
		for _, t := range w.Tabs {
			tab := &iterm2pb.ListSessionsResponse_Tab{
				TabId: optionalString(t.TabID),
				Root:  splitNodeTo(t.Root),
			}
			if t.Minimized {
				tab.Minimized = proto.Bool(true)
			}
			window.Tabs = append(window.Tabs, tab)
		}
		resp.Windows = append(resp.Windows, window)
	}
	for _, s := range r.BuriedSessions {
		resp.BuriedSessions = append(resp.BuriedSessions, sessionSummaryTo(s))
	}
	return resp
}

func splitNodeTo(n SplitNode) *iterm2pb.SplitTreeNode {
	node := &iterm2pb.SplitTreeNode{Vertical: proto.Bool(n.Vertical)}
	for _, link := range n.Links {
		pb := &iterm2pb.SplitTreeNode_SplitTreeLink{}
		switch {
		case link.Session != nil:
			pb.Child = &iterm2pb.SplitTreeNode_SplitTreeLink_Session{Session: sessionSummaryTo(*link.Session)}
		case link.Node != nil:
			pb.Child = &iterm2pb.SplitTreeNode_SplitTreeLink_Node{Node: splitNodeTo(*link.Node)}
		}
		node.Links = append(node.Links, pb)
	}
	return node
}

func sessionSummaryTo(s SessionSummary) *iterm2pb.SessionSummary {
	return &iterm2pb.SessionSummary{
		UniqueIdentifier: proto.String(s.UniqueIdentifier),
		Title:            optionalString(s.Title),
	}
}
