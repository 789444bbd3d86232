package card_test

import (
	"testing"

	"github.com/dasdy/gamecard/card"
	"github.com/dasdy/gamecard/model"
	cs "github.com/dasdy/gamecard/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSectionOrder(t *testing.T) {
	tests := []struct {
		name string
		game *model.Game
		want []cs.SectionKind
	}{
		{
			name: "basketball before",
			game: basketballGame(model.StatusBefore),
			want: []cs.SectionKind{cs.SectionComparison, cs.SectionStandings},
		},
		{
			name: "basketball live",
			game: basketballGame(model.StatusLive),
			want: []cs.SectionKind{cs.SectionScoreboard, cs.SectionGameRecords, cs.SectionComparison, cs.SectionStandings},
		},
		{
			name: "basketball after",
			game: basketballGame(model.StatusFinished),
			want: []cs.SectionKind{
				cs.SectionScoreboard, cs.SectionPlayerStats, cs.SectionGameRecords,
				cs.SectionComparison, cs.SectionStandings,
			},
		},
		{
			name: "soccer before",
			game: soccerGame(model.StatusBefore),
			want: []cs.SectionKind{cs.SectionHeader, cs.SectionPreview, cs.SectionComparison, cs.SectionStandings},
		},
		{
			name: "soccer live",
			game: soccerGame(model.StatusLive),
			want: []cs.SectionKind{
				cs.SectionHeader, cs.SectionScoreboard, cs.SectionScoreTable, cs.SectionGoalTimeline,
				cs.SectionGameRecords, cs.SectionComparison, cs.SectionStandings,
			},
		},
		{
			name: "soccer half-time renders the live view",
			game: soccerGame(model.StatusHalfTime),
			want: []cs.SectionKind{
				cs.SectionHeader, cs.SectionScoreboard, cs.SectionScoreTable, cs.SectionGoalTimeline,
				cs.SectionGameRecords, cs.SectionComparison, cs.SectionStandings,
			},
		},
		{
			name: "soccer after",
			game: soccerGame(model.StatusFinished),
			want: []cs.SectionKind{
				cs.SectionHeader, cs.SectionScoreboard, cs.SectionScoreTable, cs.SectionGoalTimeline,
				cs.SectionPlayerStats, cs.SectionGameRecords, cs.SectionComparison, cs.SectionStandings,
			},
		},
		{
			name: "volleyball before",
			game: volleyballGame(model.StatusBefore),
			want: []cs.SectionKind{cs.SectionHeader, cs.SectionPreview, cs.SectionComparison},
		},
		{
			name: "volleyball live",
			game: volleyballGame(model.StatusLive),
			want: []cs.SectionKind{
				cs.SectionHeader, cs.SectionScoreboard, cs.SectionScoreTable,
				cs.SectionGameRecords, cs.SectionComparison,
			},
		},
		{
			name: "volleyball after",
			game: volleyballGame(model.StatusFinished),
			want: []cs.SectionKind{
				cs.SectionHeader, cs.SectionScoreboard, cs.SectionScoreTable, cs.SectionPlayerStats,
				cs.SectionGameRecords, cs.SectionComparison,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := build(t, tt.game, cs.ViewState{})

			assert.Equal(t, tt.want, c.Kinds())
		})
	}
}

func TestBuildCardMetadata(t *testing.T) {
	c := build(t, soccerGame(model.StatusHalfTime), cs.ViewState{})

	assert.Equal(t, "epl-1", c.GameID)
	assert.Equal(t, model.SportSoccer, c.Sport)
	assert.Equal(t, "live", c.Variant)
	assert.Equal(t, cs.ThemeVivid, c.Theme)
	assert.Equal(t, "#EF0107", c.HomeColor)

	assert.Equal(t, cs.ThemeClassic, build(t, basketballGame(model.StatusLive), cs.ViewState{}).Theme)
}

func TestBuildUnknownStatusRendersNothing(t *testing.T) {
	game := soccerGame(model.GameStatus("postponed"))

	c := build(t, game, cs.ViewState{})

	assert.Equal(t, "none", c.Variant)
	assert.Empty(t, c.Sections)
}

func TestBuildUnknownSport(t *testing.T) {
	game := soccerGame(model.StatusLive)
	game.Sport = model.Sport("cricket")

	_, err := card.Build(game, cs.ViewState{})

	require.ErrorIs(t, err, card.ErrUnknownSport)
	assert.Contains(t, err.Error(), "cricket")
}

func TestBuildMissingColorsFallBack(t *testing.T) {
	game := volleyballGame(model.StatusFinished)

	c := build(t, game, cs.ViewState{})

	assert.Equal(t, "#6b7280", c.HomeColor)
	assert.Equal(t, "#6b7280", section[*cs.Header](t, c).AwayColor)
}

func TestBuildGameRecordsHighlight(t *testing.T) {
	tests := []struct {
		name     string
		game     *model.Game
		label    string
		homeWins bool
		awayWins bool
	}{
		{name: "basketball rebounds higher wins", game: basketballGame(model.StatusFinished), label: "Rebounds", homeWins: true},
		{name: "basketball turnovers lower wins", game: basketballGame(model.StatusFinished), label: "Turnovers", awayWins: true},
		{name: "soccer possession percent", game: soccerGame(model.StatusFinished), label: "Possession", homeWins: true},
		{name: "soccer fouls lower wins", game: soccerGame(model.StatusFinished), label: "Fouls", awayWins: true},
		{name: "volleyball service errors by key", game: volleyballGame(model.StatusFinished), label: "Service errors", homeWins: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := section[*cs.GameRecords](t, build(t, tt.game, cs.ViewState{}))

			var row *cs.RecordRow

			for i := range records.Rows {
				if records.Rows[i].Label == tt.label {
					row = &records.Rows[i]
				}
			}

			require.NotNil(t, row)
			assert.Equal(t, tt.homeWins, row.HomeWins)
			assert.Equal(t, tt.awayWins, row.AwayWins)
		})
	}
}

func TestBuildTiedRecordHighlightsNeither(t *testing.T) {
	game := basketballGame(model.StatusFinished)
	game.GameRecords = []model.GameRecord{{Label: "Steals", Home: model.NumberValue(7), Away: model.TextValue("7")}}

	row := section[*cs.GameRecords](t, build(t, game, cs.ViewState{})).Rows[0]

	assert.False(t, row.HomeWins)
	assert.False(t, row.AwayWins)
	assert.Equal(t, "7", row.Home)
}

func TestBuildWithoutOptionalData(t *testing.T) {
	game := soccerGame(model.StatusFinished)
	game.GameRecords = nil
	game.HeadToHead = nil
	game.Standings = nil
	game.Goals = nil
	game.HomeTeam.HalfScores = nil
	game.HomeTeam.RecentGames = nil
	game.AwayTeam.RecentGames = nil

	c := build(t, game, cs.ViewState{})

	assert.Equal(t, []cs.SectionKind{
		cs.SectionHeader, cs.SectionScoreboard, cs.SectionPlayerStats, cs.SectionComparison,
	}, c.Kinds())

	comparison := section[*cs.Comparison](t, c)
	assert.False(t, comparison.ShowForm)
	assert.Nil(t, comparison.HeadToHead)
}

func TestBuildTabStateIsNormalized(t *testing.T) {
	c := build(t, soccerGame(model.StatusFinished), cs.ViewState{Tab: cs.Tab("bench")})

	stats := section[*cs.PlayerStats](t, c)

	assert.True(t, stats.Tabs[0].Active)
	assert.False(t, stats.Tabs[1].Active)
	assert.Equal(t, "Saka", stats.Rows[0].Name)
}
