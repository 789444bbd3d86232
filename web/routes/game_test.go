package routes_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dasdy/gamecard/model"
	cs "github.com/dasdy/gamecard/web/components"
	"github.com/dasdy/gamecard/web/routes"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, source *SourceMock) (http.Handler, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()
	handler := routes.ServerHandler{Source: source, Metrics: routes.NewMetrics(reg)}

	r := chi.NewRouter()
	r.Get("/", handler.IndexHandle)
	r.Get("/games/{id}", handler.GameHandle)

	return r, reg
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	return recorder
}

func TestParseViewState(t *testing.T) {
	tests := []struct {
		target string
		want   cs.ViewState
	}{
		{target: "/games/g1", want: cs.ViewState{Tab: cs.TabHome}},
		{target: "/games/g1?tab=away", want: cs.ViewState{Tab: cs.TabAway}},
		{target: "/games/g1?tab=bench&conference=East", want: cs.ViewState{Tab: cs.TabHome, Conference: "East"}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.want, routes.ParseViewState(r))
		})
	}
}

func TestGameHandle(t *testing.T) {
	t.Run("renders the card", func(t *testing.T) {
		source := &SourceMock{Games: map[string]*model.Game{"epl-1": testGame()}}
		router, reg := setupRouter(t, source)

		recorder := get(t, router, "/games/epl-1")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, []string{"epl-1"}, source.GameCalls)

		body := recorder.Body.String()
		assert.Contains(t, body, "<title>ARS vs CHE | EPL</title>")
		assert.Contains(t, body, `data-variant="after"`)
		assert.Contains(t, body, "Saka")
		assert.NotContains(t, body, "Palmer")

		expected := `
# HELP gamecard_cards_rendered_total Game cards rendered, by sport and view variant.
# TYPE gamecard_cards_rendered_total counter
gamecard_cards_rendered_total{sport="soccer",variant="after"} 1
`
		require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "gamecard_cards_rendered_total"))

		families, err := reg.Gather()
		require.NoError(t, err)

		var help string

		for _, f := range families {
			if f.GetName() == "gamecard_card_build_seconds" {
				help = f.GetHelp()
				assert.Equal(t, uint64(1), f.GetMetric()[0].GetHistogram().GetSampleCount())
			}
		}

		assert.Equal(t, "Time to build a card from an already loaded game.", help)
	})

	t.Run("away tab", func(t *testing.T) {
		source := &SourceMock{Games: map[string]*model.Game{"epl-1": testGame()}}
		router, _ := setupRouter(t, source)

		body := get(t, router, "/games/epl-1?tab=away").Body.String()

		assert.Contains(t, body, "Palmer")
		assert.NotContains(t, body, "Saka")
	})

	t.Run("not found", func(t *testing.T) {
		router, _ := setupRouter(t, &SourceMock{})

		recorder := get(t, router, "/games/missing")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("unknown sport", func(t *testing.T) {
		game := testGame()
		game.Sport = model.Sport("cricket")
		router, _ := setupRouter(t, &SourceMock{Games: map[string]*model.Game{"epl-1": game}})

		recorder := get(t, router, "/games/epl-1")

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})

	t.Run("source error", func(t *testing.T) {
		router, _ := setupRouter(t, &SourceMock{GameError: errors.New("i/o timeout")})

		recorder := get(t, router, "/games/epl-1")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "i/o timeout")
	})
}

func TestIndexHandle(t *testing.T) {
	t.Run("lists games", func(t *testing.T) {
		router, _ := setupRouter(t, &SourceMock{Games: map[string]*model.Game{"epl-1": testGame()}})

		recorder := get(t, router, "/")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `href="/games/epl-1"`)
		assert.Contains(t, recorder.Body.String(), "ARS vs CHE")
	})

	t.Run("source error", func(t *testing.T) {
		router, _ := setupRouter(t, &SourceMock{ListError: errors.New("scan failed")})

		recorder := get(t, router, "/")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestIndexEntries(t *testing.T) {
	entries := routes.IndexEntries([]model.GameSummary{
		{ID: "a b", Sport: model.SportVolleyball, League: "V-League", Status: model.StatusLive, Home: "KAL", Away: "HYU"},
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "/games/a%20b", entries[0].Href)
	assert.Equal(t, "Live", entries[0].Status)
	assert.Equal(t, "KAL vs HYU", entries[0].Matchup)
}

func TestNilMetricsAreIgnored(t *testing.T) {
	handler := routes.ServerHandler{Source: &SourceMock{}}

	c, err := handler.BuildGameCard(testGame(), cs.ViewState{})

	require.NoError(t, err)
	assert.Equal(t, "after", c.Variant)
}
