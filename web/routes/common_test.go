package routes_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dasdy/gamecard/card"
	"github.com/dasdy/gamecard/db"
	"github.com/dasdy/gamecard/payload"
	"github.com/dasdy/gamecard/web/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockComponent implements the templ.Component interface for testing.
type MockComponent struct {
	RenderFunc func(ctx context.Context, w io.Writer) error
}

func (m MockComponent) Render(ctx context.Context, w io.Writer) error {
	return m.RenderFunc(ctx, w)
}

func TestSafeRenderTemplate(t *testing.T) {
	t.Run("successful render", func(t *testing.T) {
		mockComponent := MockComponent{
			RenderFunc: func(_ context.Context, w io.Writer) error {
				_, err := w.Write([]byte("Hello, World!"))
				if err != nil {
					return fmt.Errorf("failed to write data: %w", err)
				}

				return nil
			},
		}

		recorder := httptest.NewRecorder()

		err := routes.SafeRenderTemplate(mockComponent, recorder)

		require.NoError(t, err)
		assert.Equal(t, "text/html; charset=UTF-8", recorder.Header().Get("Content-Type"))
		assert.Equal(t, "Hello, World!", recorder.Body.String())
	})

	t.Run("render error", func(t *testing.T) {
		expectedErr := errors.New("render error")
		mockComponent := MockComponent{
			RenderFunc: func(_ context.Context, w io.Writer) error {
				_, _ = w.Write([]byte("<div>partial"))

				return expectedErr
			},
		}

		recorder := httptest.NewRecorder()

		err := routes.SafeRenderTemplate(mockComponent, recorder)

		require.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), "could not render template")
		// Nothing from the partial render reaches the client.
		assert.Empty(t, recorder.Body.String())
	})
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: fmt.Errorf("%w: g1", db.ErrGameNotFound), want: http.StatusNotFound},
		{name: "unknown sport", err: fmt.Errorf("%w: cricket", card.ErrUnknownSport), want: http.StatusUnprocessableEntity},
		{name: "bad payload", err: fmt.Errorf("could not decode game g1: %w", payload.ErrInvalidPayload), want: http.StatusUnprocessableEntity},
		{name: "bad format", err: payload.ErrUnsupportedFormat, want: http.StatusUnprocessableEntity},
		{name: "anything else", err: errors.New("connection refused"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, routes.StatusFor(tt.err))
		})
	}
}

func TestHealthHandle(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		handler := routes.ServerHandler{Source: &SourceMock{}}
		recorder := httptest.NewRecorder()

		handler.HealthHandle(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "ok", recorder.Body.String())
	})

	t.Run("source down", func(t *testing.T) {
		handler := routes.ServerHandler{Source: &SourceMock{ListError: errors.New("redis: connection refused")}}
		recorder := httptest.NewRecorder()

		handler.HealthHandle(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})
}
