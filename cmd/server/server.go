package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// startHTTPServer serves router until ctx is cancelled, then shuts down gracefully
// within the configured shutdown timeout.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("Server failed", "error", err)
			serveErr <- err
			cancelServer()
		}
	}()

	<-serverCtx.Done()
	app.logger.Info("Shutting down server...")

	shutdownTimeout := time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		app.cleanup()
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.cleanup()

	select {
	case err := <-serveErr:
		return err
	default:
	}

	app.logger.Info("Server shutdown completed")
	return nil
}
