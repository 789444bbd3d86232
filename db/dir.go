package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dasdy/gamecard/model"
	"github.com/dasdy/gamecard/payload"
)

// DirSource serves payload files from a directory. A game's id is its file
// name without extension.
type DirSource struct {
	dir string
}

func NewDirSource(dir string) (*DirSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("could not open data dir %s: %w", dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("data dir %s is not a directory", dir)
	}

	return &DirSource{dir: dir}, nil
}

// Files lists payload file names in the directory in lexical order.
func (s *DirSource) Files() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("could not read data dir %s: %w", s.dir, err)
	}

	files := make([]string, 0, len(entries))

	for _, e := range entries {
		if e.IsDir() || !payload.IsPayloadFile(e.Name()) {
			continue
		}

		files = append(files, e.Name())
	}

	return files, nil
}

func (s *DirSource) Game(_ context.Context, id string) (*model.Game, error) {
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	for _, f := range files {
		if strings.TrimSuffix(f, filepath.Ext(f)) != id {
			continue
		}

		game, err := payload.LoadFile(s.dir, f)
		if err != nil {
			return nil, err
		}

		game.ID = id

		return game, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
}

func (s *DirSource) List(ctx context.Context) ([]model.GameSummary, error) {
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	result := make([]model.GameSummary, 0, len(files))

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("listing interrupted: %w", err)
		}

		game, err := payload.LoadFile(s.dir, f)
		if err != nil {
			slog.Warn("Skipping unreadable payload", "file", f, "error", err)

			continue
		}

		game.ID = strings.TrimSuffix(f, filepath.Ext(f))
		result = append(result, game.Summary())
	}

	return result, nil
}

func (s *DirSource) Close() error {
	return nil
}
