package card_test

import (
	"testing"

	"github.com/dasdy/gamecard/model"
	cs "github.com/dasdy/gamecard/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolleyballScoreboard(t *testing.T) {
	t.Run("finished shows sets won", func(t *testing.T) {
		sb := section[*cs.Scoreboard](t, build(t, volleyballGame(model.StatusFinished), cs.ViewState{}))

		assert.Equal(t, "3", sb.HomeScore)
		assert.Equal(t, "1", sb.AwayScore)
		assert.Equal(t, "VS", sb.Separator)
		assert.Equal(t, "WIN", sb.Result)
		assert.Equal(t, cs.TabHome, sb.ResultSide)
		assert.True(t, sb.HomeEmphasis)
		assert.Equal(t, "KAL", sb.Home.Initials)
	})

	t.Run("level sets get no badge", func(t *testing.T) {
		game := volleyballGame(model.StatusFinished)
		game.HomeTeam.SetsWon = 2
		game.AwayTeam.SetsWon = 2

		sb := section[*cs.Scoreboard](t, build(t, game, cs.ViewState{}))

		assert.Empty(t, sb.Result)
		assert.False(t, sb.HomeEmphasis)
		assert.False(t, sb.AwayEmphasis)
	})

	t.Run("live shows the current set", func(t *testing.T) {
		game := volleyballGame(model.StatusLive)
		game.CurrentSet = 2

		c := build(t, game, cs.ViewState{})

		assert.Equal(t, "SET2", section[*cs.Scoreboard](t, c).Note)
		assert.Empty(t, section[*cs.Scoreboard](t, c).Result)

		header := section[*cs.Header](t, c)
		assert.Equal(t, "LIVE", header.Badge)
		assert.Equal(t, "SET2", header.Clock)
	})
}

func TestVolleyballSets(t *testing.T) {
	t.Run("fourth set from the home side", func(t *testing.T) {
		table := section[*cs.ScoreTable](t, build(t, volleyballGame(model.StatusFinished), cs.ViewState{}))

		assert.Equal(t, []string{"SET1", "SET2", "SET3", "SET4"}, table.Columns)
		assert.Equal(t, "SETS", table.TotalLabel)
		assert.Equal(t, "0", table.Away.Cells[3].Value)
		assert.Equal(t, "3", table.Home.Total)
		assert.True(t, table.Away.Cells[1].Lead)
		assert.Empty(t, table.Current)
	})

	t.Run("live current set", func(t *testing.T) {
		game := volleyballGame(model.StatusLive)
		game.CurrentSet = 4

		table := section[*cs.ScoreTable](t, build(t, game, cs.ViewState{}))

		assert.Equal(t, "SET4", table.Current)
		assert.True(t, table.Home.Cells[3].Current)
	})

	t.Run("current set beyond reported sets", func(t *testing.T) {
		game := volleyballGame(model.StatusLive)
		game.CurrentSet = 5

		table := section[*cs.ScoreTable](t, build(t, game, cs.ViewState{}))

		assert.Empty(t, table.Current)
	})
}

func TestVolleyballPlayerStats(t *testing.T) {
	stats := section[*cs.PlayerStats](t, build(t, volleyballGame(model.StatusFinished), cs.ViewState{}))

	assert.Equal(t, []string{"SET", "PTS", "ATK", "BLK", "ACE", "DIG"}, stats.Columns)
	assert.Equal(t, []string{"4", "22", "18", "2", "2", "10"}, stats.Rows[0].Cells)
}

func TestVolleyballComparisonUsesSets(t *testing.T) {
	comparison := section[*cs.Comparison](t, build(t, volleyballGame(model.StatusFinished), cs.ViewState{}))

	require.NotNil(t, comparison.HeadToHead)
	require.Len(t, comparison.HeadToHead.Meetings, 1)
	assert.Equal(t, "3", comparison.HeadToHead.Meetings[0].Home)
	assert.Equal(t, "1", comparison.HeadToHead.Meetings[0].Away)
	assert.False(t, comparison.HeadToHead.ShowDraws)
}

func TestVolleyballStandings(t *testing.T) {
	game := volleyballGame(model.StatusBefore)
	game.Standings = []model.Standings{{Teams: []model.StandingsTeam{
		{Rank: 1, ShortName: "hyu", Wins: 20, Losses: 5, WinRate: model.NumberValue(0.8)},
		{Rank: 2, ShortName: "kal", Wins: 18, Losses: 7, WinRate: model.NumberValue(0.72)},
	}}}

	standings := section[*cs.Standings](t, build(t, game, cs.ViewState{}))

	assert.Equal(t, []string{"20", "5", "0.8"}, standings.Rows[0].Cells)
	assert.Equal(t, cs.TabAway, standings.Rows[0].Side)
	assert.Equal(t, cs.TabHome, standings.Rows[1].Side)
}
