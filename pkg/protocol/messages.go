package protocol

import "encoding/json"

// Client message types.
const (
	MsgEvent = "event"
	MsgPing  = "ping"
)

// Server message types.
const (
	MsgFrame = "frame"
	MsgPong  = "pong"
	MsgError = "error"
)

// ClientMessage is one message received from the browser.
type ClientMessage struct {
	// Type is "event" or "ping".
	Type string `json:"type"`

	// HID is the hydration id of the element the event fired on.
	HID string `json:"hid,omitempty"`

	// Event is the handler prop name, e.g. "onclick".
	Event string `json:"event,omitempty"`

	// Value carries the event payload (input value, etc.), if any.
	Value json.RawMessage `json:"value,omitempty"`
}

// ServerMessage is one message pushed to the browser.
type ServerMessage struct {
	// Type is "frame", "pong", or "error".
	Type string `json:"type"`

	// Seq numbers frames so a client can detect gaps.
	Seq uint64 `json:"seq,omitempty"`

	// HTML is the full rendered document fragment for a frame message.
	HTML string `json:"html,omitempty"`

	// Code and Message describe an error message.
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// DecodeClientMessage parses one wire message from the client.
func DecodeClientMessage(data []byte) (*ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Encode returns the wire form of the message.
func (m *ServerMessage) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Frame builds a frame message carrying the full rendered tree.
func Frame(seq uint64, html string) *ServerMessage {
	return &ServerMessage{Type: MsgFrame, Seq: seq, HTML: html}
}

// Pong builds a heartbeat reply.
func Pong() *ServerMessage {
	return &ServerMessage{Type: MsgPong}
}

// ErrorMessage builds an error message with a stable code and a
// human-readable description.
func ErrorMessage(code, message string) *ServerMessage {
	return &ServerMessage{Type: MsgError, Code: code, Message: message}
}
