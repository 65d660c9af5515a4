package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/collate/internal/demo"
	"github.com/vango-dev/collate/internal/errors"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port    int
		host    string
		metrics bool
		tracing bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo stack over HTTP",
		Long: `Start an HTTP server that renders the demo provider stack per request.

Query parameters override props, for example:
  /?theme=dark&locale=de
  /render?layers=c,b,a&a=1&b=2

Examples:
  collate serve
  collate serve --port=8080 --metrics
  COLLATE_HOST=0.0.0.0 collate serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if metrics {
				cfg.Metrics.Enabled = true
			}
			if tracing {
				cfg.Tracing.Enabled = true
			}
			timeout, err := cfg.ShutdownTimeout()
			if err != nil {
				return err
			}

			logger := cfg.NewLogger(os.Stderr)
			ln, err := net.Listen("tcp", cfg.Address())
			if err != nil {
				return errors.New(errors.CodeServerListen).
					Wrap(err).
					WithDetail(fmt.Sprintf("Could not listen on %s.", cfg.Address())).
					WithSuggestion("Choose another port with --port")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			success(cmd, "Listening on http://%s", ln.Addr())
			if cfg.Metrics.Enabled {
				info(cmd, "Metrics at http://%s%s", ln.Addr(), cfg.Metrics.Path)
			}
			return serve(ctx, &http.Server{
				Handler:           demo.NewServer(cfg, logger),
				ReadHeaderTimeout: 5 * time.Second,
			}, ln, timeout, logger)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "Trace requests with the global OpenTelemetry provider")

	return cmd
}

// serve runs srv on ln until ctx is done, then shuts it down within
// timeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New(errors.CodeServerListen).Wrap(err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", timeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New(errors.CodeServerShutdown).Wrap(err)
	}
	return nil
}
