package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/domino"
	httpAdapter "github.com/aretw0/domino/pkg/adapters/http"
	"github.com/aretw0/domino/pkg/observability"
	"github.com/aretw0/domino/pkg/ports"
)

const shutdownTimeout = 5 * time.Second

// RunServe serves the browser tile on cfg.Addr until ctx is cancelled.
func RunServe(ctx context.Context, opts Options) error {
	o := opts.withDefaults()
	ln, err := net.Listen("tcp", o.Config.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", o.Config.Addr, err)
	}
	return serveOn(ctx, o, ln)
}

func serveOn(ctx context.Context, o Options, ln net.Listener) error {
	logger := createLogger(o.Config, o.Stderr)
	metrics := observability.NewMetrics()
	hooks := observability.Hooks(logger, metrics)

	factory := func(r ports.Renderer) httpAdapter.Tile {
		return domino.New(r, tileOptions(o.Config, logger, hooks)...)
	}
	srvOpts := []httpAdapter.Option{httpAdapter.WithLogger(logger)}
	if o.Config.Metrics {
		srvOpts = append(srvOpts, httpAdapter.WithMetricsHandler(metrics.Handler()))
	}

	srv := &http.Server{
		Handler:           httpAdapter.NewHandler(factory, srvOpts...),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return serve(ctx, srv, ln, logger)
}

func serve(ctx context.Context, srv *http.Server, ln net.Listener, logger *slog.Logger) error {
	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("domino server listening", "address", ln.Addr().String())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			return srv.Close()
		}
		logger.Info("domino server stopped")
		return nil
	}
}
