package db

import (
	"context"
	"errors"

	"github.com/dasdy/gamecard/model"
)

var ErrGameNotFound = errors.New("game not found")

// Source provides fully-formed game payloads. Implementations are read-only.
type Source interface {
	Game(ctx context.Context, id string) (*model.Game, error)
	List(ctx context.Context) ([]model.GameSummary, error)
	Close() error
}
