package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/dasdy/gamecard/db"
	"github.com/dasdy/gamecard/web"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const soccerJSON = `{
  "sport": "soccer",
  "league": "EPL",
  "date": "2024-03-16",
  "status": "finished",
  "homeTeam": {"name": "Arsenal", "shortName": "ARS", "score": 2, "primaryColor": "#EF0107"},
  "awayTeam": {"name": "Chelsea", "shortName": "CHE", "score": 1, "primaryColor": "#034694"}
}`

func testServer(t *testing.T, dev bool) http.Handler {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "epl-1.json"), []byte(soccerJSON), 0o600))

	source, err := db.NewDirSource(dir)
	require.NoError(t, err)

	return web.BuildServer(source, prometheus.NewRegistry(), dev)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	return recorder
}

func TestBuildServer(t *testing.T) {
	server := testServer(t, false)

	t.Run("index", func(t *testing.T) {
		recorder := get(t, server, "/")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `href="/games/epl-1"`)
	})

	t.Run("game card", func(t *testing.T) {
		recorder := get(t, server, "/games/epl-1")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `data-sport="soccer"`)
		assert.Contains(t, recorder.Body.String(), `href="/assets/card.css"`)
		assert.NotEmpty(t, recorder.Header().Get("Content-Type"))
	})

	t.Run("missing game", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(t, server, "/games/nope").Code)
	})

	t.Run("health", func(t *testing.T) {
		recorder := get(t, server, "/healthz")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "ok", recorder.Body.String())
	})

	t.Run("metrics after a render", func(t *testing.T) {
		_ = get(t, server, "/games/epl-1")

		recorder := get(t, server, "/metrics")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `gamecard_cards_rendered_total{sport="soccer",variant="after"}`)
	})

	t.Run("embedded stylesheet", func(t *testing.T) {
		recorder := get(t, server, "/assets/card.css")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), ".game-card")
		assert.Empty(t, recorder.Header().Get("Cache-Control"))
	})
}

func TestBuildServerDevDisablesAssetCache(t *testing.T) {
	recorder := get(t, testServer(t, true), "/assets/card.css")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "no-store", recorder.Header().Get("Cache-Control"))
}

func TestNewRegistry(t *testing.T) {
	families, err := web.NewRegistry().Gather()

	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestStartServerStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	source, err := db.NewDirSource(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, web.StartServer(ctx, 0, source, false))
}

func TestNewHTTPServerTimeouts(t *testing.T) {
	srv := web.NewHTTPServer(9000, http.NotFoundHandler())

	assert.Equal(t, ":9000", srv.Addr)
	assert.Less(t, web.RequestTimeout, srv.WriteTimeout)
}
