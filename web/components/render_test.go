package components_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/dasdy/gamecard/model"
	"github.com/dasdy/gamecard/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, c.Render(context.Background(), &buf))

	return buf.String()
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestScoreboardRender(t *testing.T) {
	sb := &components.Scoreboard{
		Home:         components.TeamBadge{ShortName: "LAL", Initials: "LA", PrimaryColor: "#552583"},
		Away:         components.TeamBadge{ShortName: "BOS", Initials: "BO", Logo: "https://example.com/bos.png"},
		HomeScore:    "112",
		AwayScore:    "108",
		HomeEmphasis: true,
		Separator:    "vs",
		Result:       "WIN",
		ResultSide:   components.TabHome,
	}

	html := render(t, sb)

	assert.Contains(t, html, `<span class="score-value emph" style="color:#552583;">112</span>`)
	assert.Contains(t, html, `<span class="score-value">108</span>`)
	assert.Contains(t, html, `class="result result-home"`)
	assert.Contains(t, html, `<img src="https://example.com/bos.png"`)
	assert.Contains(t, html, `<span class="initials" style="--primary:#552583;">LA</span>`)
	assert.NotContains(t, html, "scoreboard-strip")
}

func TestHeaderRenderBadges(t *testing.T) {
	tests := []struct {
		name  string
		badge string
		want  string
	}{
		{name: "no badge shows status", badge: "", want: `<span class="status">Final</span>`},
		{name: "live pulses", badge: "LIVE", want: `<span class="pulse"></span>LIVE`},
		{name: "half-time", badge: "HT", want: `<span class="status status-break">HT</span>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, &components.Header{League: "EPL", Status: "Final", Badge: tt.badge})

			assert.Contains(t, html, tt.want)
		})
	}
}

func TestUnsafeColorsAreSanitized(t *testing.T) {
	tests := []struct {
		name      string
		component templ.Component
		want      string
	}{
		{
			name: "standings highlight",
			component: &components.Standings{
				Rows: []components.StandingsRow{
					{Rank: "1", Team: "Evil", Side: components.TabHome, Color: `red;" onmouseover="x`},
				},
			},
			want: "border-left-color:zTemplUnsafeCSSPropertyValue;",
		},
		{
			name: "goal team color",
			component: &components.GoalTimeline{
				Goals: []components.GoalRow{{Clock: "9'", Scorer: "Saka", Side: components.TabHome, Color: "url(javascript:alert(1))"}},
			},
			want: "--team-color:zTemplUnsafeCSSPropertyValue;",
		},
		{
			name: "card custom properties",
			component: components.CardView(&components.Card{
				GameID:    "g4",
				HomeColor: "#ef0107",
				AwayColor: `blue" onmouseover="x`,
			}),
			want: "--away-color:zTemplUnsafeCSSPropertyValue;--home-color:#ef0107;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, tt.component)

			assert.NotContains(t, html, "onmouseover")
			assert.NotContains(t, html, "javascript")
			assert.Contains(t, html, tt.want)
		})
	}
}

func TestTextIsEscaped(t *testing.T) {
	html := render(t, &components.GoalTimeline{
		Goals: []components.GoalRow{{Clock: "12'", Scorer: "<script>", Side: components.TabAway, Color: "#fff"}},
	})

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestScoreTableRender(t *testing.T) {
	html := render(t, &components.ScoreTable{
		Columns:    []string{"1H", "2H"},
		Current:    "2H",
		TotalLabel: "TOTAL",
		Home:       components.ScoreRow{Team: "ARS", Cells: []components.ScoreCell{{Value: "1", Lead: true}, {Value: "0", Current: true}}, Total: "1"},
		Away:       components.ScoreRow{Team: "CHE", Cells: []components.ScoreCell{{Value: "0"}, {Value: "0", Current: true}}, Total: "0"},
	})

	assert.Contains(t, html, `<th class="current">2H</th>`)
	assert.Contains(t, html, `<td class="num lead">1</td>`)
	assert.Contains(t, html, `<td class="num current">0</td>`)
	assert.Contains(t, html, `<th class="total">TOTAL</th>`)
}

func TestTabsRenderAsLinks(t *testing.T) {
	html := render(t, &components.PlayerStats{
		Tabs: []components.TabLink{
			{Label: "LAL", Href: "?", Active: true},
			{Label: "BOS", Href: "?tab=away"},
		},
		Columns: []string{"PTS"},
		Rows:    []components.PlayerRow{{Number: "23", Name: "James", Cells: []string{"30"}, Yellow: true}},
	})

	assert.Contains(t, html, `<a class="tab active" href="?">LAL</a>`)
	assert.Contains(t, html, `<a class="tab" href="?tab=away">BOS</a>`)
	assert.Contains(t, html, "card-mark yellow")
	assert.NotContains(t, html, "card-mark red")
}

func TestComparisonRender(t *testing.T) {
	c := &components.Comparison{
		ShowTitle: true,
		ShowTeams: true,
		PreGame:   true,
		League:    "NBA",
		Date:      "2024-03-15",
		Time:      "19:30",
		Home:      components.TeamBadge{ShortName: "LAL"},
		Away:      components.TeamBadge{ShortName: "BOS"},
		ShowForm:  true,
		HomeForm:  []components.FormChip{{Result: "W", Tone: components.FormToneWin}},
		AwayForm:  []components.FormChip{{Result: "L", Tone: components.FormToneLoss}},
		HeadToHead: &components.HeadToHeadView{
			TotalGames: 10,
			HomeWins:   6,
			AwayWins:   4,
			Meetings:   []components.MeetingRow{{Date: "2024-01-01", Home: "110", Away: "100", HomeWon: true}},
		},
	}

	html := render(t, c)

	assert.Contains(t, html, "Head to head")
	assert.Contains(t, html, "19:30")
	assert.Contains(t, html, `<span class="chip chip-win">W</span>`)
	assert.Contains(t, html, `<span class="chip chip-loss">L</span>`)
	assert.Contains(t, html, "Last 10 meetings")
	assert.Contains(t, html, `<span class="won">110</span>`)
	assert.NotContains(t, html, "draws")
}

func TestCardViewRender(t *testing.T) {
	t.Run("renders sections in order", func(t *testing.T) {
		card := &components.Card{
			GameID:    "g1",
			Sport:     model.SportSoccer,
			Variant:   "after",
			Theme:     components.ThemeVivid,
			HomeColor: "#ef0107",
			AwayColor: "#034694",
			Sections: []components.Section{
				&components.Header{League: "EPL"},
				&components.GameRecords{HomeName: "ARS", AwayName: "CHE"},
			},
		}

		html := render(t, components.CardView(card))

		assert.Contains(t, html, `class="game-card theme-vivid"`)
		assert.Contains(t, html, `data-variant="after"`)
		assert.Contains(t, html, `style="--away-color:#034694;--home-color:#ef0107;"`)
		assert.Less(t, bytes.Index([]byte(html), []byte("card-header")), bytes.Index([]byte(html), []byte("game-records")))
	})

	t.Run("empty card", func(t *testing.T) {
		html := render(t, components.CardView(&components.Card{GameID: "g2"}))

		assert.Contains(t, html, "No view for this game status.")
		assert.Contains(t, html, `style=""`)
	})

	t.Run("write error is reported", func(t *testing.T) {
		err := components.CardView(&components.Card{GameID: "g3"}).Render(context.Background(), failingWriter{})

		assert.ErrorContains(t, err, "disk full")
	})
}

func TestPage(t *testing.T) {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>body</p>")

		return err
	})

	t.Run("linked stylesheet", func(t *testing.T) {
		html := render(t, components.Page("Game", body, false))

		assert.Contains(t, html, `<link rel="stylesheet" href="/assets/card.css">`)
		assert.Contains(t, html, "<p>body</p>")
	})

	t.Run("standalone inlines the stylesheet", func(t *testing.T) {
		html := render(t, components.Page("Game", body, true))

		assert.Contains(t, html, "<style>")
		assert.Contains(t, html, ".game-card")
		assert.NotContains(t, html, "<link")
	})
}

func TestIndex(t *testing.T) {
	html := render(t, components.Index([]components.IndexEntry{
		{Href: "/games/g1", Sport: "soccer", League: "EPL", Matchup: "ARS vs CHE", Status: "Final"},
	}))

	assert.Contains(t, html, `href="/games/g1"`)
	assert.Contains(t, html, "ARS vs CHE")

	assert.Contains(t, render(t, components.Index(nil)), "No games found.")
}
