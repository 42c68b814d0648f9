package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/loom-ui/loom/internal/config"
	"github.com/loom-ui/loom/pkg/loom"
	"github.com/loom-ui/loom/pkg/metrics"
	"github.com/loom-ui/loom/pkg/middleware"
	"github.com/loom-ui/loom/pkg/render"
	"github.com/loom-ui/loom/pkg/vtree"
)

// Server serves a component tree over HTTP: server-rendered HTML on GET /
// and a live session per websocket client on GET /live.
type Server struct {
	cfg         *config.Config
	rootFactory func() *vtree.Element

	logger   *slog.Logger
	metrics  *metrics.Server
	tracer   trace.Tracer
	upgrader websocket.Upgrader

	httpServer *http.Server
	sessionSeq atomic.Uint64
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics attaches server metrics.
func WithMetrics(m *metrics.Server) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// New creates a server for the given root component factory. The factory
// is called once per session (and once per SSR request), so every client
// gets its own instance tree.
func New(cfg *config.Config, rootFactory func() *vtree.Element, opts ...Option) *Server {
	if cfg == nil {
		cfg = config.New()
	}
	s := &Server{
		cfg:         cfg,
		rootFactory: rootFactory,
		logger:      slog.Default().With("component", "server"),
		tracer:      otel.Tracer("github.com/loom-ui/loom/pkg/server"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes builds the HTTP router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.OpenTelemetry())
	if s.cfg.Metrics.Enabled {
		r.Use(middleware.Prometheus(middleware.WithNamespace(s.cfg.Metrics.Namespace)))
	}

	r.Get("/", s.handleIndex)
	r.Get("/live", s.handleLive)
	if s.cfg.Metrics.Enabled {
		r.Handle(s.cfg.Metrics.Path, promhttp.Handler())
	}
	if s.cfg.Static.Dir != "" {
		fs := http.StripPrefix(s.cfg.Static.Prefix, http.FileServer(http.Dir(s.cfg.Static.Dir)))
		r.Handle(s.cfg.Static.Prefix+"*", fs)
	}
	return r
}

// Start listens on the configured address and serves until Shutdown.
func (s *Server) Start() error {
	readTimeout, _ := time.ParseDuration(s.cfg.Server.ReadTimeout)
	writeTimeout, _ := time.ParseDuration(s.cfg.Server.WriteTimeout)

	s.httpServer = &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.Routes(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	s.logger.Info("listening", "addr", s.cfg.Addr())
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// handleIndex serves the page shell with the tree rendered once on the
// server. A throwaway phaserless scheduler mounts the tree synchronously;
// effects stay queued and are discarded with it.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html, err := s.renderOnce()
	if err != nil {
		s.logger.Error("ssr failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, html)
}

// renderOnce mounts the tree without a frame loop, renders it, and tears
// it down.
func (s *Server) renderOnce() (string, error) {
	sched := loom.New(nil, loom.WithLogger(s.logger))
	root := loom.InstanceOf(s.rootFactory())
	if root == nil {
		return "", fmt.Errorf("root is not a component element")
	}
	sched.Mount(root, nil)

	mounted := map[uint64]*loom.Instance{root.ID(): root}
	mountStatic(sched, root.Element(), mounted)
	defer func() {
		for _, in := range mounted {
			sched.Unmount(in)
		}
	}()

	renderer := render.New(render.Config{Pretty: s.cfg.Dev.PrettyHTML})
	return renderer.ToString(root.Element())
}

// mountStatic mounts nested component instances for a one-shot render.
func mountStatic(sched *loom.Scheduler, el *vtree.Element, mounted map[uint64]*loom.Instance) {
	if el == nil {
		return
	}
	if in := loom.InstanceOf(el); in != nil {
		if _, ok := mounted[in.ID()]; !ok {
			sched.Mount(in, nil)
			mounted[in.ID()] = in
		}
		if live := in.Element(); live != nil && live != el {
			for _, child := range live.Children {
				mountStatic(sched, child, mounted)
			}
		}
		return
	}
	for _, child := range el.Children {
		mountStatic(sched, child, mounted)
	}
}

// handleLive upgrades to a websocket and runs one session for the life of
// the connection.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "error", err)
		return
	}

	id := s.sessionSeq.Add(1)
	sess := newSession(id, conn, s.rootFactory, s.cfg.FrameInterval(), s.logger, s.metrics, s.tracer)
	s.logger.Info("session opened", "session", id, "remote", r.RemoteAddr)

	sess.start()
	sess.readLoop()
	s.logger.Info("session closed", "session", id)
}

// pageShell is the HTML document wrapping the rendered tree. The inline
// client replaces the root with each pushed frame and forwards DOM events
// on elements carrying a hydration id.
const pageShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>loom</title>
</head>
<body>
<div id="root">%s</div>
<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/live");
  var root = document.getElementById("root");

  ws.onmessage = function (e) {
    var msg = JSON.parse(e.data);
    if (msg.type === "frame") {
      root.innerHTML = msg.html;
    }
  };

  function hidOf(el) {
    while (el && el !== root) {
      if (el.dataset && el.dataset.hid) return el.dataset.hid;
      el = el.parentElement;
    }
    return null;
  }

  function forward(domEvent, prop, value) {
    var hid = hidOf(domEvent.target);
    if (!hid) return;
    ws.send(JSON.stringify({type: "event", hid: hid, event: prop, value: value}));
  }

  root.addEventListener("click", function (e) { forward(e, "onclick"); });
  root.addEventListener("input", function (e) { forward(e, "oninput", e.target.value); });
  root.addEventListener("change", function (e) { forward(e, "onchange", e.target.value); });

  setInterval(function () {
    if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify({type: "ping"}));
  }, 30000);
})();
</script>
</body>
</html>
`
