package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dasdy/gamecard/db"
	"github.com/dasdy/gamecard/logging"
	cs "github.com/dasdy/gamecard/web/components"
	"github.com/dasdy/gamecard/web/routes"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	shutdownTimeout = 10 * time.Second
	writeTimeout    = 15 * time.Second
	// RequestTimeout stays below writeTimeout so a timed-out handler can still answer 504.
	RequestTimeout = 10 * time.Second
)

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// NewRegistry returns a registry with the process and Go runtime collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func BuildServer(source db.Source, reg *prometheus.Registry, dev bool) http.Handler {
	handler := routes.ServerHandler{
		Source:  source,
		Metrics: routes.NewMetrics(reg),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(RequestTimeout))

	// Stylesheet is embedded in the binary.
	r.Handle("/assets/*", disableCacheInDevMode(dev, http.FileServerFS(cs.Assets)))

	r.Get("/", handler.IndexHandle)
	r.Get("/games/{id}", handler.GameHandle)
	r.Get("/healthz", handler.HealthHandle)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return r
}

// NewHTTPServer wraps handler in a server listening on port.
func NewHTTPServer(port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}
}

// StartServer serves cards on port until ctx is cancelled, then drains
// in-flight requests.
func StartServer(ctx context.Context, port int, source db.Source, dev bool) error {
	srv := NewHTTPServer(port, BuildServer(source, NewRegistry(), dev))

	errCh := make(chan error, 1)

	go func() {
		slog.Info("Running interface", "port", port, "dev", dev)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not run server: %w", err)
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not shut down server: %w", err)
	}

	return nil
}
