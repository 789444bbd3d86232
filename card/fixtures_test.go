package card_test

import (
	"testing"

	"github.com/dasdy/gamecard/card"
	"github.com/dasdy/gamecard/model"
	cs "github.com/dasdy/gamecard/web/components"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func build(t *testing.T, game *model.Game, state cs.ViewState) *cs.Card {
	t.Helper()

	c, err := card.Build(game, state)
	require.NoError(t, err)

	return c
}

// section returns the first section of type T on the card.
func section[T cs.Section](t *testing.T, c *cs.Card) T {
	t.Helper()

	for _, s := range c.Sections {
		if v, ok := s.(T); ok {
			return v
		}
	}

	var zero T

	require.Failf(t, "section not found", "card has %v", c.Kinds())

	return zero
}

func basketballGame(status model.GameStatus) *model.Game {
	return &model.Game{
		ID:     "nba-1",
		Sport:  model.SportBasketball,
		League: "NBA",
		Date:   "2024-03-15",
		Time:   "19:30",
		Status: status,
		HomeTeam: model.Team{
			Name: "Los Angeles Lakers", ShortName: "LAL", Score: 112, Record: "40-25",
			PrimaryColor: "#552583", SecondaryColor: "#FDB927",
			RecentGames:   []model.FormResult{model.FormWin, model.FormWin, model.FormLoss, model.FormWin, model.FormLoss, model.FormWin},
			QuarterScores: &model.QuarterScores{Q1: 28, Q2: 30, Q3: 25, Q4: 29},
			Players: []model.Player{
				{Number: model.NumberValue(23), Name: "LeBron James", Position: "F", Minutes: model.TextValue("36:12"), Points: 30, Rebounds: 8, Assists: 9},
			},
		},
		AwayTeam: model.Team{
			Name: "Boston Celtics", ShortName: "BOS", Score: 108,
			PrimaryColor: "#007A33", SecondaryColor: "#BA9653",
			RecentGames:   []model.FormResult{model.FormLoss},
			QuarterScores: &model.QuarterScores{Q1: 25, Q2: 27, Q3: 30, Q4: 26},
			Players: []model.Player{
				{Number: model.NumberValue(0), Name: "Jayson Tatum", Minutes: model.NumberValue(38), Points: 28, FGM: intPtr(10), FGA: intPtr(21), Steals: intPtr(2)},
			},
		},
		GameRecords: []model.GameRecord{
			{Label: "Rebounds", Home: model.NumberValue(45), Away: model.NumberValue(40)},
			{Label: "Turnovers", Home: model.NumberValue(14), Away: model.NumberValue(9)},
		},
		HeadToHead: &model.HeadToHead{
			TotalGames: 10, HomeWins: 6, AwayWins: 4,
			RecentMatches: []model.PastMeeting{
				{Date: "2024-01-01", HomeScore: 110, AwayScore: 100, Winner: model.WinnerHome},
				{Date: "2023-12-01", HomeScore: 99, AwayScore: 101, Winner: model.WinnerAway},
				{Date: "2023-11-01", HomeScore: 105, AwayScore: 100, Winner: model.WinnerHome},
				{Date: "2023-04-01", HomeScore: 120, AwayScore: 111, Winner: model.WinnerHome},
				{Date: "2023-03-01", HomeScore: 98, AwayScore: 102, Winner: model.WinnerAway},
				{Date: "2023-02-01", HomeScore: 90, AwayScore: 80, Winner: model.WinnerHome},
			},
		},
		Standings: []model.Standings{
			{Conference: "West", Teams: []model.StandingsTeam{
				{Rank: 1, ShortName: "DEN", Wins: 45, Losses: 20, WinRate: model.TextValue(".692")},
				{Rank: 2, ShortName: "LAL", Wins: 40, Losses: 25, WinRate: model.TextValue(".615")},
			}},
			{Conference: "East", Teams: []model.StandingsTeam{
				{Rank: 1, ShortName: "BOS", Wins: 50, Losses: 15, WinRate: model.TextValue(".769")},
			}},
		},
	}
}

func soccerGame(status model.GameStatus) *model.Game {
	return &model.Game{
		ID:     "epl-1",
		Sport:  model.SportSoccer,
		League: "EPL",
		Date:   "2024-03-16",
		Time:   "15:00",
		Status: status,
		HomeTeam: model.Team{
			Name: "Arsenal", ShortName: "ars", Score: 2, PrimaryColor: "#EF0107",
			HalfScores: &model.HalfScores{FirstHalf: 1, SecondHalf: 1},
			Players: []model.Player{
				{Number: model.NumberValue(7), Name: "Saka", Minutes: model.NumberValue(90), Goals: 1, YellowCards: 1},
			},
		},
		AwayTeam: model.Team{
			Name: "Chelsea", ShortName: "che", Score: 1, PrimaryColor: "#034694",
			HalfScores: &model.HalfScores{FirstHalf: 0, SecondHalf: 1},
		},
		GameRecords: []model.GameRecord{
			{Label: "Possession", Home: model.TextValue("54%"), Away: model.TextValue("46%")},
			{Label: "Fouls", Home: model.NumberValue(12), Away: model.NumberValue(8)},
		},
		Goals: []model.Goal{
			{Minute: 90, AddedTime: 3, Team: model.WinnerHome, Scorer: "Saka"},
			{Minute: 12, Team: model.WinnerHome, Scorer: "Havertz", Assist: "Rice"},
			{Minute: 45, AddedTime: 1, Team: model.WinnerAway, Scorer: "Palmer", IsPenalty: true},
			{Minute: 45, Team: model.WinnerAway, Scorer: "Jackson"},
		},
		HeadToHead: &model.HeadToHead{
			TotalGames: 8, HomeWins: 3, AwayWins: 2, Draws: 3,
			RecentMatches: []model.PastMeeting{
				{Date: "2024-01-01", HomeScore: 1, AwayScore: 1, Winner: model.WinnerDraw},
				{Date: "2023-10-01", HomeScore: 2, AwayScore: 0, Winner: model.WinnerHome},
				{Date: "2023-05-01", HomeScore: 0, AwayScore: 1, Winner: model.WinnerAway},
				{Date: "2022-11-01", HomeScore: 3, AwayScore: 1, Winner: model.WinnerHome},
			},
		},
		Standings: []model.Standings{{Teams: []model.StandingsTeam{
			{Rank: 1, ShortName: "liv", Wins: 20, Draws: 5, Losses: 3, GoalDifference: 35, Points: 65},
			{Rank: 2, ShortName: "ars", Wins: 19, Draws: 6, Losses: 3, GoalDifference: 40, Points: 63},
			{Rank: 3, ShortName: "mci", Wins: 19, Draws: 5, Losses: 4, GoalDifference: 30, Points: 62},
			{Rank: 4, ShortName: "avl", Wins: 17, Draws: 4, Losses: 7, GoalDifference: 15, Points: 55},
			{Rank: 5, ShortName: "tot", Wins: 16, Draws: 5, Losses: 7, GoalDifference: 14, Points: 53},
			{Rank: 6, ShortName: "che", Wins: 11, Draws: 7, Losses: 10, GoalDifference: -2, Points: 40},
		}}},
	}
}

func volleyballGame(status model.GameStatus) *model.Game {
	return &model.Game{
		ID:     "vl-1",
		Sport:  model.SportVolleyball,
		League: "V-League",
		Date:   "2024-03-16",
		Status: status,
		HomeTeam: model.Team{
			Name: "Korean Air Jumbos", ShortName: "kal", SetsWon: 3,
			SetScores: &model.SetScores{Set1: 25, Set2: 23, Set3: 25, Set4: intPtr(25)},
			Players: []model.Player{
				{Number: model.NumberValue(4), Name: "Jung Ji-seok", Sets: 4, Points: 22, Kills: 18, Blocks: intPtr(2), Aces: 2, Digs: 10},
			},
		},
		AwayTeam: model.Team{
			Name: "Hyundai Capital Skywalkers", ShortName: "hyu", SetsWon: 1,
			SetScores: &model.SetScores{Set1: 20, Set2: 25, Set3: 18},
		},
		GameRecords: []model.GameRecord{
			{Key: "service_errors", Label: "Service errors", Home: model.NumberValue(12), Away: model.NumberValue(15)},
		},
		HeadToHead: &model.HeadToHead{
			TotalGames: 6, HomeWins: 4, AwayWins: 2,
			RecentMatches: []model.PastMeeting{
				{Date: "2024-02-01", HomeScore: 98, AwayScore: 90, HomeSets: 3, AwaySets: 1, Winner: model.WinnerHome},
			},
		},
	}
}
