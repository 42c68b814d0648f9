package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/loom-ui/loom/pkg/frame"
	"github.com/loom-ui/loom/pkg/loom"
	"github.com/loom-ui/loom/pkg/metrics"
	"github.com/loom-ui/loom/pkg/protocol"
	"github.com/loom-ui/loom/pkg/render"
	"github.com/loom-ui/loom/pkg/vtree"
)

const (
	sessionWriteTimeout = 10 * time.Second
	sessionReadTimeout  = 60 * time.Second
	teardownTimeout     = time.Second
)

// Session is one connected client: its own frame loop, scheduler, and
// component tree. All runtime state is touched only from the loop
// goroutine; the read loop hands events over via Dispatch.
type Session struct {
	id   uint64
	conn *websocket.Conn

	loop  *frame.Loop
	sched *loom.Scheduler

	rootFactory func() *vtree.Element
	root        *loom.Instance
	mounted     map[uint64]*loom.Instance

	renderer *render.Renderer
	handlers map[string]any
	seq      uint64
	dirty    bool

	// sink delivers outbound messages. Tests replace it to capture
	// frames without a network connection.
	sink func(*protocol.ServerMessage)

	logger  *slog.Logger
	metrics *metrics.Server
	tracer  trace.Tracer

	writeMu sync.Mutex
	closed  atomic.Bool
	done    chan struct{}
}

// newSession wires a session around a root component factory. The caller
// starts it with start and drives it with readLoop.
func newSession(id uint64, conn *websocket.Conn, rootFactory func() *vtree.Element, interval time.Duration, logger *slog.Logger, m *metrics.Server, tracer trace.Tracer) *Session {
	s := &Session{
		id:          id,
		conn:        conn,
		rootFactory: rootFactory,
		mounted:     make(map[uint64]*loom.Instance),
		renderer:    render.New(render.Config{}),
		logger:      logger.With("session", id),
		metrics:     m,
		tracer:      tracer,
		done:        make(chan struct{}),
	}
	s.loop = frame.NewLoop(frame.WithInterval(interval), frame.WithLogger(s.logger))
	s.sched = loom.New(s.loop, loom.WithLogger(s.logger))
	s.sink = s.writeMessage
	return s
}

// start begins the frame loop and mounts the root component. The first
// frame is pushed as soon as the mount renders.
func (s *Session) start() {
	s.metrics.SessionOpened()
	s.loop.Start()
	s.loop.Dispatch(s.mountRoot)
}

// mountRoot performs the first mount and frame push. Runs on the loop
// goroutine.
func (s *Session) mountRoot() {
	s.root = loom.InstanceOf(s.rootFactory())
	if s.root == nil {
		s.logger.Error("root factory did not produce a component element")
		s.send(protocol.ErrorMessage("bad_root", "root is not a component"))
		return
	}
	s.sched.Mount(s.root, s.markDirty)
	s.pushFrame()
}

// markDirty coalesces update notifications into one frame push. Runs on
// the loop goroutine (the scheduler calls it from the write phase).
func (s *Session) markDirty() {
	if s.dirty {
		return
	}
	s.dirty = true
	s.loop.Dispatch(s.pushFrame)
}

// pushFrame renders the whole tree and sends it to the client. Nested
// component elements produced by this round of renders are mounted
// before rendering; instances dropped from the tree are unmounted.
func (s *Session) pushFrame() {
	if s.closed.Load() || s.root == nil {
		return
	}
	s.dirty = false

	seen := make(map[uint64]*loom.Instance)
	seen[s.root.ID()] = s.root
	s.mountTree(s.root.Element(), seen)
	for id, in := range s.mounted {
		if _, ok := seen[id]; !ok {
			s.sched.Unmount(in)
		}
	}
	s.mounted = seen

	s.renderer.Reset()
	html, err := s.renderer.ToString(s.root.Element())
	if err != nil {
		s.logger.Error("frame render failed", "error", err)
		return
	}
	s.handlers = s.renderer.Handlers()

	s.seq++
	s.send(protocol.Frame(s.seq, html))
	s.metrics.IncFrameSent()
}

// mountTree walks an element tree and mounts every unmounted component
// instance it finds, recursing into each instance's rendered output.
func (s *Session) mountTree(el *vtree.Element, seen map[uint64]*loom.Instance) {
	if el == nil {
		return
	}
	if in := loom.InstanceOf(el); in != nil {
		if _, ok := seen[in.ID()]; ok && in != s.root {
			return
		}
		if !in.Mounted() {
			s.sched.Mount(in, s.markDirty)
		}
		seen[in.ID()] = in
		if live := in.Element(); live != nil {
			for _, child := range live.Children {
				s.mountTree(child, seen)
			}
		}
		return
	}
	for _, child := range el.Children {
		s.mountTree(child, seen)
	}
}

// readLoop consumes client messages until the connection drops. Events
// are handed to the loop goroutine; the read loop never touches runtime
// state itself.
func (s *Session) readLoop() {
	defer s.Close()

	for {
		s.conn.SetReadDeadline(time.Now().Add(sessionReadTimeout))
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		msg, err := protocol.DecodeClientMessage(data)
		if err != nil {
			s.logger.Error("message decode error", "error", err)
			s.send(protocol.ErrorMessage("bad_message", "invalid message format"))
			continue
		}

		switch msg.Type {
		case protocol.MsgEvent:
			m := msg
			s.loop.Dispatch(func() { s.handleEvent(m) })
		case protocol.MsgPing:
			s.send(protocol.Pong())
		default:
			s.logger.Warn("unknown message type", "type", msg.Type)
		}
	}
}

// handleEvent routes one client event to the handler registered under its
// hydration id. Runs on the loop goroutine.
func (s *Session) handleEvent(msg *protocol.ClientMessage) {
	_, span := s.tracer.Start(context.Background(), "client.event",
		trace.WithAttributes(
			attribute.String("hid", msg.HID),
			attribute.String("event", msg.Event),
		))
	defer span.End()

	s.metrics.IncEvent()

	handler, ok := s.handlers[msg.HID+"_"+msg.Event]
	if !ok {
		s.logger.Warn("no handler for event", "hid", msg.HID, "event", msg.Event)
		return
	}

	switch fn := handler.(type) {
	case func():
		fn()
	case func(any):
		var value any
		if len(msg.Value) > 0 {
			if err := json.Unmarshal(msg.Value, &value); err != nil {
				s.logger.Error("event value decode error", "error", err)
				return
			}
		}
		fn(value)
	default:
		s.logger.Warn("handler has unsupported signature", "hid", msg.HID, "event", msg.Event)
	}
}

// send delivers a message through the session's sink.
func (s *Session) send(msg *protocol.ServerMessage) {
	if s.closed.Load() {
		return
	}
	s.sink(msg)
}

// writeMessage is the production sink: JSON over the websocket.
func (s *Session) writeMessage(msg *protocol.ServerMessage) {
	data, err := msg.Encode()
	if err != nil {
		s.logger.Error("message encode error", "error", err)
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(sessionWriteTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.Error("write error", "error", err)
	}
}

// Close tears the session down: every mounted instance is unmounted on
// the loop goroutine, the loop stops, and the connection closes. Closing
// twice is a no-op.
func (s *Session) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	close(s.done)

	torn := make(chan struct{})
	s.loop.Dispatch(func() {
		defer close(torn)
		for _, in := range s.mounted {
			s.sched.Unmount(in)
		}
	})
	select {
	case <-torn:
	case <-time.After(teardownTimeout):
		s.logger.Warn("teardown timed out")
	}
	s.loop.Stop()

	if s.conn != nil {
		s.conn.Close()
	}
	s.metrics.SessionClosed()
}
