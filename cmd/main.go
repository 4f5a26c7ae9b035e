package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/tickerstub/config"
	"github.com/guttosm/tickerstub/internal/app"
	"github.com/guttosm/tickerstub/internal/logger"
	"github.com/guttosm/tickerstub/internal/pidfile"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// newServer builds the HTTP server listening on all interfaces.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
func newServer(router http.Handler, port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// serve binds the listening socket up front so a bind failure is returned
// to the caller instead of surfacing later from a goroutine.
//
// It blocks until ctx is cancelled (then shuts the server down gracefully)
// or the server fails.
func serve(ctx context.Context, server *http.Server) error {
	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", server.Addr, err)
	}
	logger.L().Info().Str("addr", ln.Addr().String()).Msg("starting stock price server")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// run wires the process together and owns the pid marker lifetime: the marker
// is removed on every return path, including bind failure.
func run(ctx context.Context, cfg config.Config) error {
	pid, err := pidfile.Write(cfg.Server.PIDFile)
	if err != nil {
		return err
	}
	defer func() {
		_ = pid.Remove()
		logger.L().Info().Msg("server stopped")
	}()

	router, cleanup, err := app.InitializeApp(cfg)
	if err != nil {
		return fmt.Errorf("app init error: %w", err)
	}
	defer cleanup()

	return serve(ctx, newServer(router, cfg.Server.Port))
}

// main is the entry point of the mock price server.
//
// Configuration comes from the environment (see config.LoadConfig); there are
// no flags. SIGINT and SIGTERM trigger a graceful shutdown.
func main() {
	config.LoadConfig()
	logger.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.AppConfig); err != nil {
		logger.L().Error().Err(err).Msg("server error")
		stop()
		os.Exit(1)
	}
}
