package card_test

import (
	"testing"

	"github.com/dasdy/gamecard/model"
	cs "github.com/dasdy/gamecard/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoccerHeader(t *testing.T) {
	tests := []struct {
		name   string
		status model.GameStatus
		minute int
		added  int
		period string
		time   string
		badge  string
		clock  string
	}{
		{name: "pre-game shows kickoff", status: model.StatusBefore, time: "15:00"},
		{name: "live with stoppage time", status: model.StatusLive, minute: 67, added: 2, badge: "LIVE", clock: "67+2'"},
		{name: "live without minute shows period", status: model.StatusLive, period: "2H", badge: "LIVE", clock: "2H"},
		{name: "half-time", status: model.StatusHalfTime, minute: 45, badge: "HT", clock: "45'"},
		{name: "finished", status: model.StatusFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := soccerGame(tt.status)
			game.CurrentMinute = tt.minute
			game.AddedTime = tt.added
			game.CurrentPeriod = tt.period

			header := section[*cs.Header](t, build(t, game, cs.ViewState{}))

			assert.Equal(t, tt.time, header.Time)
			assert.Equal(t, tt.badge, header.Badge)
			assert.Equal(t, tt.clock, header.Clock)
		})
	}
}

func TestSoccerPreview(t *testing.T) {
	preview := section[*cs.Preview](t, build(t, soccerGame(model.StatusBefore), cs.ViewState{}))

	assert.Equal(t, "ARS", preview.Home.Initials)
	assert.Equal(t, "15:00", preview.Time)
}

func TestSoccerScoreboard(t *testing.T) {
	t.Run("finished win", func(t *testing.T) {
		sb := section[*cs.Scoreboard](t, build(t, soccerGame(model.StatusFinished), cs.ViewState{}))

		assert.Equal(t, "WIN", sb.Result)
		assert.Equal(t, cs.TabHome, sb.ResultSide)
		assert.True(t, sb.HomeEmphasis)
		assert.False(t, sb.AwayEmphasis)
		assert.False(t, sb.ShowHeader)
		assert.Equal(t, "-", sb.Separator)
	})

	t.Run("finished draw emphasises both", func(t *testing.T) {
		game := soccerGame(model.StatusFinished)
		game.AwayTeam.Score = 2

		sb := section[*cs.Scoreboard](t, build(t, game, cs.ViewState{}))

		assert.Equal(t, "DRAW", sb.Result)
		assert.True(t, sb.HomeEmphasis)
		assert.True(t, sb.AwayEmphasis)
	})

	t.Run("live leader", func(t *testing.T) {
		game := soccerGame(model.StatusLive)
		game.HomeTeam.Score = 0
		game.CurrentMinute = 80

		sb := section[*cs.Scoreboard](t, build(t, game, cs.ViewState{}))

		assert.Empty(t, sb.Result)
		assert.False(t, sb.HomeEmphasis)
		assert.True(t, sb.AwayEmphasis)
		assert.Equal(t, "80'", sb.Clock)
	})

	t.Run("half-time note", func(t *testing.T) {
		sb := section[*cs.Scoreboard](t, build(t, soccerGame(model.StatusHalfTime), cs.ViewState{}))

		assert.Equal(t, "Half-time", sb.Note)
		assert.Empty(t, sb.Clock)
	})
}

func TestSoccerHalves(t *testing.T) {
	t.Run("regular time", func(t *testing.T) {
		table := section[*cs.ScoreTable](t, build(t, soccerGame(model.StatusFinished), cs.ViewState{}))

		assert.Equal(t, []string{"1H", "2H"}, table.Columns)
		assert.Equal(t, "TOTAL", table.TotalLabel)
		assert.Empty(t, table.Current)
		assert.True(t, table.Home.Cells[0].Lead)
		assert.False(t, table.Home.Cells[1].Lead)
		assert.False(t, table.Away.Cells[1].Lead)
	})

	t.Run("penalties without extra time", func(t *testing.T) {
		game := soccerGame(model.StatusFinished)
		game.HomeTeam.HalfScores.Penalties = intPtr(4)

		table := section[*cs.ScoreTable](t, build(t, game, cs.ViewState{}))

		assert.Equal(t, []string{"1H", "2H", "PK"}, table.Columns)
		assert.Equal(t, "4", table.Home.Cells[2].Value)
		assert.Equal(t, "0", table.Away.Cells[2].Value)
	})

	t.Run("live marks the current period", func(t *testing.T) {
		game := soccerGame(model.StatusLive)
		game.CurrentPeriod = "후반"

		table := section[*cs.ScoreTable](t, build(t, game, cs.ViewState{}))

		assert.Equal(t, "2H", table.Current)
		assert.True(t, table.Home.Cells[1].Current)
		assert.False(t, table.Home.Cells[0].Current)
	})

	t.Run("current period outside the table", func(t *testing.T) {
		game := soccerGame(model.StatusLive)
		game.CurrentPeriod = "ET1"

		table := section[*cs.ScoreTable](t, build(t, game, cs.ViewState{}))

		assert.Empty(t, table.Current)
	})
}

func TestSoccerGoalsAreOrdered(t *testing.T) {
	timeline := section[*cs.GoalTimeline](t, build(t, soccerGame(model.StatusFinished), cs.ViewState{}))

	scorers := make([]string, 0, len(timeline.Goals))
	for _, g := range timeline.Goals {
		scorers = append(scorers, g.Scorer)
	}

	assert.Equal(t, []string{"Havertz", "Jackson", "Palmer", "Saka"}, scorers)

	palmer := timeline.Goals[2]
	assert.Equal(t, "45+1'", palmer.Clock)
	assert.True(t, palmer.Penalty)
	assert.Equal(t, cs.TabAway, palmer.Side)
	assert.Equal(t, "#034694", palmer.Color)
}

func TestSoccerPlayerStats(t *testing.T) {
	t.Run("home players", func(t *testing.T) {
		stats := section[*cs.PlayerStats](t, build(t, soccerGame(model.StatusFinished), cs.ViewState{}))

		assert.Equal(t, []string{"MIN", "G", "A", "SH", "PASS", "TKL"}, stats.Columns)
		assert.Equal(t, []string{"90", "1", "0", "0", "0", "0"}, stats.Rows[0].Cells)
		assert.True(t, stats.Rows[0].Yellow)
		assert.False(t, stats.Rows[0].Red)
		assert.Equal(t, "#EF0107", stats.Tabs[0].Color)
		assert.Equal(t, "#EF0107", stats.TeamColor)
	})

	t.Run("team without players omits the section", func(t *testing.T) {
		c := build(t, soccerGame(model.StatusFinished), cs.ViewState{Tab: cs.TabAway})

		assert.NotContains(t, c.Kinds(), cs.SectionPlayerStats)
	})
}

func TestSoccerComparison(t *testing.T) {
	t.Run("post-game meetings", func(t *testing.T) {
		comparison := section[*cs.Comparison](t, build(t, soccerGame(model.StatusFinished), cs.ViewState{}))

		require.NotNil(t, comparison.HeadToHead)
		assert.True(t, comparison.HeadToHead.ShowDraws)
		assert.Equal(t, 3, comparison.HeadToHead.Draws)
		assert.Len(t, comparison.HeadToHead.Meetings, 3)
		assert.False(t, comparison.HeadToHead.Meetings[0].HomeWon)
		assert.False(t, comparison.HeadToHead.Meetings[0].AwayWon)
	})

	t.Run("live shows totals only", func(t *testing.T) {
		comparison := section[*cs.Comparison](t, build(t, soccerGame(model.StatusLive), cs.ViewState{}))

		require.NotNil(t, comparison.HeadToHead)
		assert.Empty(t, comparison.HeadToHead.Meetings)
		assert.Equal(t, 8, comparison.HeadToHead.TotalGames)
	})
}

func TestSoccerStandings(t *testing.T) {
	standings := section[*cs.Standings](t, build(t, soccerGame(model.StatusFinished), cs.ViewState{}))

	require.Len(t, standings.Rows, 5)
	assert.Equal(t, []string{"W", "D", "L", "GD", "PTS"}, standings.Columns)

	ars := standings.Rows[1]
	assert.Equal(t, cs.TabHome, ars.Side)
	assert.Equal(t, "#EF0107", ars.Color)
	assert.Equal(t, []string{"19", "6", "3", "+40", "63"}, ars.Cells)

	assert.Equal(t, cs.Tab(""), standings.Rows[0].Side)
}
