package routes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/dasdy/gamecard/card"
	"github.com/dasdy/gamecard/db"
	"github.com/dasdy/gamecard/payload"
)

// ServerHandler holds all dependencies needed for the web server handlers.
type ServerHandler struct {
	Source  db.Source
	Metrics *Metrics
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(context.Background(), &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

// StatusFor maps an error from the source or the card builder to a response code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, db.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, card.ErrUnknownSport),
		errors.Is(err, payload.ErrInvalidPayload),
		errors.Is(err, payload.ErrUnsupportedFormat):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail logs err with the request context and writes the mapped status.
func fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	code := StatusFor(err)
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), msg, "error", err)
	} else {
		slog.WarnContext(r.Context(), msg, "error", err, "status", code)
	}

	http.Error(w, err.Error(), code)
}

// HealthHandle reports whether the game source can be listed.
func (s *ServerHandler) HealthHandle(w http.ResponseWriter, r *http.Request) {
	if _, err := s.Source.List(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Health check failed", "error", err)
		http.Error(w, "source unavailable", http.StatusServiceUnavailable)

		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	_, _ = w.Write([]byte("ok"))
}
