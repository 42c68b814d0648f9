// Package protocol defines the JSON wire messages exchanged over the
// live websocket.
//
// The client sends events and heartbeats:
//
//	{"type": "event", "hid": "h1", "event": "onclick"}
//	{"type": "event", "hid": "h2", "event": "oninput", "value": "abc"}
//	{"type": "ping"}
//
// The server pushes full frames, heartbeat replies, and errors:
//
//	{"type": "frame", "seq": 3, "html": "<div>...</div>"}
//	{"type": "pong"}
//	{"type": "error", "code": "bad_message", "message": "..."}
//
// Frames carry a monotonically increasing sequence number per session so
// a client can detect gaps. Fields not used by a message type are
// omitted from the wire form.
package protocol
