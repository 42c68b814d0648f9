// Package server streams component trees to browsers.
//
// # Request flow
//
// GET / serves the page shell with the tree rendered once on the server.
// The inline client then connects to GET /live, which upgrades to a
// websocket and runs one Session for the life of the connection.
//
// # Sessions
//
// Each session owns a frame loop, a scheduler, and a component tree, so
// sessions are fully isolated from one another. The read loop is the only
// goroutine touching the network inbound side; it hands decoded events to
// the loop goroutine via Dispatch, and all runtime state lives there.
//
// Outbound, every frame is the full rendered tree plus a sequence number.
// Elements with event handler props carry a data-hid attribute; the
// client sends {type: "event", hid, event} and the session routes it to
// the handler collected during the last render.
package server
