package agent

import (
	"encoding/json"
	"strings"
)

// MessageType tags a record of the agent's response.
type MessageType string

const (
	MessageTypeAssistant MessageType = "assistant_message"
	MessageTypeToolCall  MessageType = "tool_call_message"
)

// Message is one record of a response. It is a closed union:
// *AssistantMessage, *ToolCallMessage or *OtherMessage.
type Message interface {
	MessageType() MessageType
}

// =============================================================================
// REQUEST
// =============================================================================

// Request is the body POSTed to /v1/agents/{agentId}/messages.
type Request struct {
	Messages                  []RequestMessage `json:"messages"`
	UseAssistantMessage       bool             `json:"use_assistant_message"`
	AssistantMessageToolName  string           `json:"assistant_message_tool_name"`
	AssistantMessageToolKwarg string           `json:"assistant_message_tool_kwarg"`
}

// RequestMessage is a single conversational turn.
type RequestMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewRequest builds a single-turn user request.
func NewRequest(utterance, toolName, toolKwarg string) Request {
	return Request{
		Messages:                  []RequestMessage{{Role: "user", Content: utterance}},
		UseAssistantMessage:       true,
		AssistantMessageToolName:  toolName,
		AssistantMessageToolKwarg: toolKwarg,
	}
}

// =============================================================================
// RESPONSE
// =============================================================================

// AssistantMessage is a direct assistant utterance.
type AssistantMessage struct {
	Content string
}

func (*AssistantMessage) MessageType() MessageType { return MessageTypeAssistant }

// ToolCallMessage is a structured function invocation.
type ToolCallMessage struct {
	Name      string
	Arguments map[string]any // nil when the record carried no arguments
}

func (*ToolCallMessage) MessageType() MessageType { return MessageTypeToolCall }

// OtherMessage is any record kind the client does not render
// (reasoning, tool returns, usage statistics...).
type OtherMessage struct {
	Type MessageType
}

func (o *OtherMessage) MessageType() MessageType { return o.Type }

// Response is the decoded reply of the agent endpoint.
type Response struct {
	Messages []Message
}

type rawResponse struct {
	Messages []rawMessage `json:"messages"`
}

type rawMessage struct {
	MessageType MessageType     `json:"message_type"`
	Content     json.RawMessage `json:"content"`
	ToolCall    *struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	} `json:"tool_call"`
}

// UnmarshalJSON decodes the heterogeneous messages array into typed variants.
// Records whose individual fields are malformed degrade to OtherMessage
// instead of failing the whole response.
func (r *Response) UnmarshalJSON(data []byte) error {
	var raw rawResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Messages = make([]Message, 0, len(raw.Messages))
	for _, m := range raw.Messages {
		r.Messages = append(r.Messages, decodeMessage(m))
	}
	return nil
}

func decodeMessage(m rawMessage) Message {
	switch m.MessageType {
	case MessageTypeAssistant:
		content, ok := decodeContent(m.Content)
		if !ok {
			return &OtherMessage{Type: m.MessageType}
		}
		return &AssistantMessage{Content: content}

	case MessageTypeToolCall:
		if m.ToolCall == nil {
			return &OtherMessage{Type: m.MessageType}
		}
		return &ToolCallMessage{
			Name:      m.ToolCall.Name,
			Arguments: decodeArguments(m.ToolCall.Arguments),
		}

	default:
		return &OtherMessage{Type: m.MessageType}
	}
}

// decodeContent accepts a plain string or an array of {type:"text", text} parts.
func decodeContent(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}

	var parts []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &parts); err != nil {
		return "", false
	}
	var b strings.Builder
	for _, p := range parts {
		if p.Type != "" && p.Type != "text" {
			continue
		}
		b.WriteString(p.Text)
	}
	return b.String(), true
}

// decodeArguments accepts a JSON object or a JSON string holding an object.
func decodeArguments(raw json.RawMessage) map[string]any {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var args map[string]any
	if err := json.Unmarshal(raw, &args); err == nil {
		return args
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil
	}
	if err := json.Unmarshal([]byte(encoded), &args); err != nil {
		return nil
	}
	return args
}

// FirstReply scans msgs in order and returns the text of the first record
// that carries the assistant's reply: an assistant message with non-empty
// content, or a call to toolName with arguments. For a tool call the text is
// looked up under keys in order. The first matching record decides; if its
// text is empty, matched is still true and text is "".
func FirstReply(msgs []Message, toolName string, keys ...string) (text string, matched bool) {
	for _, m := range msgs {
		switch v := m.(type) {
		case *AssistantMessage:
			if v.Content != "" {
				return v.Content, true
			}
		case *ToolCallMessage:
			if v.Name != toolName || v.Arguments == nil {
				continue
			}
			for _, k := range keys {
				if s, ok := v.Arguments[k].(string); ok && s != "" {
					return s, true
				}
			}
			return "", true
		}
	}
	return "", false
}
