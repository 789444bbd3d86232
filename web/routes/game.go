package routes

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dasdy/gamecard/card"
	"github.com/dasdy/gamecard/logging"
	"github.com/dasdy/gamecard/model"
	cs "github.com/dasdy/gamecard/web/components"
	"github.com/go-chi/chi/v5"
)

// ParseViewState reads the player tab and standings conference from the query.
func ParseViewState(r *http.Request) cs.ViewState {
	q := r.URL.Query()

	state := cs.ViewState{Tab: cs.TabHome, Conference: q.Get("conference")}
	if q.Get("tab") == string(cs.TabAway) {
		state.Tab = cs.TabAway
	}

	return state
}

// BuildGameCard builds the card for a game and records it.
func (s *ServerHandler) BuildGameCard(game *model.Game, state cs.ViewState) (*cs.Card, error) {
	start := time.Now()

	c, err := card.Build(game, state)
	if err != nil {
		return nil, err
	}

	s.Metrics.ObserveCard(string(c.Sport), c.Variant, time.Since(start))

	return c, nil
}

// PageTitle names the card page, e.g. "ARS vs CHE | EPL".
func PageTitle(game *model.Game) string {
	return game.HomeTeam.ShortName + " vs " + game.AwayTeam.ShortName + " | " + game.League
}

// GameHandle renders the card page of the game named in the path.
func (s *ServerHandler) GameHandle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := logging.AppendCtx(r.Context(), slog.String("game_id", id))
	r = r.WithContext(ctx)

	slog.DebugContext(ctx, "Handling game card request")

	game, err := s.Source.Game(ctx, id)
	if err != nil {
		s.Metrics.ObserveFailure(strconv.Itoa(StatusFor(err)))
		fail(w, r, "Failed to load game", err)

		return
	}

	c, err := s.BuildGameCard(game, ParseViewState(r))
	if err != nil {
		s.Metrics.ObserveFailure(strconv.Itoa(StatusFor(err)))
		fail(w, r, "Failed to build card", err)

		return
	}

	slog.DebugContext(ctx, "Built card", "sport", c.Sport, "variant", c.Variant, "sections", len(c.Sections))

	if err := SafeRenderTemplate(cs.Page(PageTitle(game), cs.CardView(c), false), w); err != nil {
		s.Metrics.ObserveFailure(strconv.Itoa(http.StatusInternalServerError))
		slog.ErrorContext(ctx, "Failed to render card", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// IndexEntries turns source summaries into listing rows.
func IndexEntries(games []model.GameSummary) []cs.IndexEntry {
	entries := make([]cs.IndexEntry, 0, len(games))

	for _, g := range games {
		entries = append(entries, cs.IndexEntry{
			Href:    cs.GameHref(g.ID),
			Sport:   string(g.Sport),
			League:  g.League,
			Date:    g.Date,
			Status:  g.Status.Label(),
			Matchup: g.Home + " vs " + g.Away,
		})
	}

	return entries
}

// IndexHandle lists every game the source knows about.
func (s *ServerHandler) IndexHandle(w http.ResponseWriter, r *http.Request) {
	games, err := s.Source.List(r.Context())
	if err != nil {
		fail(w, r, "Failed to list games", err)

		return
	}

	slog.DebugContext(r.Context(), "Listing games", "count", len(games))

	if err := SafeRenderTemplate(cs.Page("Games", cs.Index(IndexEntries(games)), false), w); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render index", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
