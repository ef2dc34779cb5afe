package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/honkingversion/honk/internal/server"
	"github.com/urfave/cli/v3"
)

// Serve runs the local read-only JSON proxy over the archive API.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	host := r.config.Proxy.Host
	port := r.config.Proxy.Port
	if v := cmd.String("host"); v != "" {
		host = v
	}
	if v := cmd.Int("port"); v != 0 {
		port = int(v)
	}

	router := server.NewBasicRouter()
	router.Use(server.LoggingMiddleware(r.logger))
	router.Handler(server.NewProxyHandler(r.catalog, r.logger))

	addr := server.Addr(host, port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	r.logger.Info("proxy listening", "addr", addr, "upstream", r.config.API.BaseURL)
	r.writePlain("Serving on http://%s (ctrl+c to stop)\n", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}
