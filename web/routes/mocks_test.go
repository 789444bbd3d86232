package routes_test

import (
	"context"
	"fmt"

	"github.com/dasdy/gamecard/db"
	"github.com/dasdy/gamecard/model"
)

// SourceMock is a simple manual mock implementation of the db.Source interface
type SourceMock struct {
	Games      map[string]*model.Game
	GameError  error
	ListError  error
	GameCalls  []string
	ListCalls  int
	CloseCalls int
}

func (m *SourceMock) Game(_ context.Context, id string) (*model.Game, error) {
	m.GameCalls = append(m.GameCalls, id)

	if m.GameError != nil {
		return nil, m.GameError
	}

	game, ok := m.Games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", db.ErrGameNotFound, id)
	}

	return game, nil
}

func (m *SourceMock) List(_ context.Context) ([]model.GameSummary, error) {
	m.ListCalls++

	if m.ListError != nil {
		return nil, m.ListError
	}

	result := make([]model.GameSummary, 0, len(m.Games))
	for _, g := range m.Games {
		result = append(result, g.Summary())
	}

	return result, nil
}

func (m *SourceMock) Close() error {
	m.CloseCalls++

	return nil
}

func testGame() *model.Game {
	return &model.Game{
		ID:     "epl-1",
		Sport:  model.SportSoccer,
		League: "EPL",
		Date:   "2024-03-16",
		Status: model.StatusFinished,
		HomeTeam: model.Team{
			Name: "Arsenal", ShortName: "ARS", Score: 2, PrimaryColor: "#EF0107",
			Players: []model.Player{{Number: model.NumberValue(7), Name: "Saka", Goals: 1}},
		},
		AwayTeam: model.Team{
			Name: "Chelsea", ShortName: "CHE", Score: 1, PrimaryColor: "#034694",
			Players: []model.Player{{Number: model.NumberValue(20), Name: "Palmer", Goals: 1}},
		},
		GameRecords: []model.GameRecord{
			{Label: "Fouls", Home: model.NumberValue(12), Away: model.NumberValue(8)},
		},
	}
}
