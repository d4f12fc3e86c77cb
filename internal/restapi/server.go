package restapi

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"spacexdash/internal/appconf"
)

// NewServer builds the HTTP server for the dashboard.
func (api *RestAPI) NewServer() *http.Server {
	logger := api.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &http.Server{
		Handler:      api.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

// Serve accepts connections on ln until ctx is cancelled, then shuts the
// server down gracefully within the configured timeout. A clean shutdown
// returns nil.
func (api *RestAPI) Serve(ctx context.Context, ln net.Listener) error {
	srv := api.NewServer()

	timeout := api.Config.ShutdownTimeout
	if timeout <= 0 {
		timeout = appconf.DefaultShutdownTimeout
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		if api.Logger != nil {
			api.Logger.Info("shutting down server", slog.Duration("timeout", timeout))
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
