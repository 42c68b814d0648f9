package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/el"
	"github.com/loom-ui/loom/internal/config"
	"github.com/loom-ui/loom/pkg/loom"
	"github.com/loom-ui/loom/pkg/metrics"
	"github.com/loom-ui/loom/pkg/server"
	"github.com/loom-ui/loom/pkg/vtree"
)

func serveCmd() *cobra.Command {
	var (
		port       int
		host       string
		configPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo application",
		Long: `Start the live-view server with the built-in demo component.

Examples:
  loom serve
  loom serve --port=8080
  loom serve --config=./loom.json --debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host, configPath, debug)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from loom.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from loom.json)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to loom.json")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable hook-order validation")

	return cmd
}

func runServe(port int, host, configPath string, debug bool) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return err
	}

	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if debug {
		cfg.Dev.DebugHooks = true
	}
	loom.DebugMode = cfg.Dev.DebugHooks

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	opts := []server.Option{server.WithLogger(logger)}
	if cfg.Metrics.Enabled {
		opts = append(opts, server.WithMetrics(
			metrics.NewServer(metrics.WithNamespace(cfg.Metrics.Namespace))))
	}

	srv := server.New(cfg, demoRoot, opts...)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	fmt.Printf("loom serving on http://%s\n", cfg.Addr())

	select {
	case err := <-errCh:
		return err
	case <-done:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// demoRoot is the built-in demo: a counter plus a live text echo.
func demoRoot() *vtree.Element {
	return loom.H(demoApp, nil)
}

func demoApp(props vtree.Props) any {
	count, setCount := loom.UseState(0)
	text, setText := loom.UseState("")

	return el.Div(el.Class("demo"),
		el.H1("loom demo"),
		el.Button(
			el.OnClick(func() { setCount.Set(count + 1) }),
			el.Textf("clicked %d times", count),
		),
		el.Input(
			el.Value(text),
			el.OnInput(func(value any) {
				if s, ok := value.(string); ok {
					setText.Set(s)
				}
			}),
		),
		el.P(el.Textf("you typed: %s", text)),
	)
}
