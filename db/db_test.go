package db_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dasdy/gamecard/db"
	"github.com/dasdy/gamecard/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gameJSON(id, home, away string) string {
	return `{"id": "` + id + `", "sport": "basketball", "league": "NBA", "date": "2024-03-15", "status": "finished",
	"homeTeam": {"name": "` + home + `", "shortName": "` + home + `", "score": 110},
	"awayTeam": {"name": "` + away + `", "shortName": "` + away + `", "score": 99}}`
}

func seed(t *testing.T, conn *sql.DB, rows map[string]string) {
	t.Helper()

	_, err := conn.Exec(db.GamesSchema)
	require.NoError(t, err)

	for id, doc := range rows {
		_, err := conn.Exec(`insert into games(id, payload) values(?, ?)`, id, doc)
		require.NoError(t, err)
	}
}

func memorySource(t *testing.T, rows map[string]string) *db.SQLiteSource {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	// Every pooled connection would see its own empty memory database.
	conn.SetMaxOpenConns(1)
	seed(t, conn, rows)

	source := db.NewSQLiteSource(conn)
	t.Cleanup(func() { source.Close() })

	return source
}

func TestSQLiteSourceGame(t *testing.T) {
	source := memorySource(t, map[string]string{
		"g1":    gameJSON("g1", "LAL", "BOS"),
		"no-id": gameJSON("", "GSW", "MIA"),
	})
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		game, err := source.Game(ctx, "g1")

		require.NoError(t, err)
		assert.Equal(t, "LAL", game.HomeTeam.ShortName)
		assert.Equal(t, model.StatusFinished, game.Status)
	})

	t.Run("id falls back to row key", func(t *testing.T) {
		game, err := source.Game(ctx, "no-id")

		require.NoError(t, err)
		assert.Equal(t, "no-id", game.ID)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := source.Game(ctx, "nope")

		require.ErrorIs(t, err, db.ErrGameNotFound)
	})
}

func TestSQLiteSourceList(t *testing.T) {
	source := memorySource(t, map[string]string{
		"b":      gameJSON("b", "GSW", "MIA"),
		"a":      gameJSON("a", "LAL", "BOS"),
		"broken": `{"sport": "curling"}`,
	})

	games, err := source.List(context.Background())

	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "a", games[0].ID)
	assert.Equal(t, "LAL", games[0].Home)
	assert.Equal(t, "b", games[1].ID)
}

func TestConnectDBIsReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.db")

	conn, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	seed(t, conn, map[string]string{"g1": gameJSON("g1", "LAL", "BOS")})
	require.NoError(t, conn.Close())

	source, err := db.ConnectDB(path)
	require.NoError(t, err)

	defer source.Close()

	game, err := source.Game(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "BOS", game.AwayTeam.ShortName)
}

func TestOpenUnknownSource(t *testing.T) {
	_, err := db.Open(context.Background(), db.SourceConfig{Kind: "postgres"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown source")
}

func TestOpenDirSource(t *testing.T) {
	source, err := db.Open(context.Background(), db.SourceConfig{DataDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &db.DirSource{}, source)

	source, err = db.Open(context.Background(), db.SourceConfig{Kind: db.SourceDir, DataDir: "/does/not/exist"})
	require.Error(t, err)
	assert.Nil(t, source)
}
