package db

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dasdy/gamecard/model"
	"github.com/dasdy/gamecard/payload"

	_ "github.com/mattn/go-sqlite3"
)

// GamesSchema is the archive table layout written by the upstream exporter.
const GamesSchema = `create table if not exists games(id text primary key, payload text not null);`

type SQLiteSource struct {
	db *sql.DB
}

func NewSQLiteSource(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{db}
}

// ConnectDB opens an archive read-only.
func ConnectDB(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite archive %s: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()

		return nil, fmt.Errorf("could not open sqlite archive %s: %w", path, err)
	}

	slog.Info("Opened sqlite archive", "path", path)

	return &SQLiteSource{db}, nil
}

func (s *SQLiteSource) Game(ctx context.Context, id string) (*model.Game, error) {
	var doc string

	err := s.db.QueryRowContext(ctx, `select payload from games where id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("could not query game %s: %w", id, err)
	}

	return decodeStored(id, []byte(doc))
}

func (s *SQLiteSource) List(ctx context.Context) ([]model.GameSummary, error) {
	rows, err := s.db.QueryContext(ctx, `select id, payload from games order by id`)
	if err != nil {
		return nil, fmt.Errorf("could not list games: %w", err)
	}

	defer rows.Close()

	result := make([]model.GameSummary, 0)

	for rows.Next() {
		var id, doc string

		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("could not scan game row: %w", err)
		}

		game, err := decodeStored(id, []byte(doc))
		if err != nil {
			slog.Warn("Skipping undecodable game", "id", id, "error", err)

			continue
		}

		result = append(result, game.Summary())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list games: %w", err)
	}

	return result, nil
}

func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// decodeStored decodes a JSON payload stored under id. The storage key wins
// over an id missing from the document.
func decodeStored(id string, doc []byte) (*model.Game, error) {
	game, err := payload.Decode(bytes.NewReader(doc), payload.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("could not decode game %s: %w", id, err)
	}

	if game.ID == "" {
		game.ID = id
	}

	return game, nil
}
