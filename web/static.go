package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dasdy/gamecard/card"
	"github.com/dasdy/gamecard/db"
	"github.com/dasdy/gamecard/logging"
	"github.com/dasdy/gamecard/model"
	"github.com/dasdy/gamecard/payload"
	cs "github.com/dasdy/gamecard/web/components"
	"github.com/dasdy/gamecard/web/routes"
)

// RenderGame writes a self-contained card page for game, with the stylesheet inlined.
func RenderGame(ctx context.Context, w io.Writer, game *model.Game, state cs.ViewState) error {
	c, err := card.Build(game, state)
	if err != nil {
		return fmt.Errorf("could not build card %s: %w", game.ID, err)
	}

	var buf bytes.Buffer
	if err := cs.Page(routes.PageTitle(game), cs.CardView(c), true).Render(ctx, &buf); err != nil {
		return fmt.Errorf("could not render card %s: %w", game.ID, err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("could not write card %s: %w", game.ID, err)
	}

	return nil
}

// RenderFile renders one payload file into out.
func RenderFile(ctx context.Context, path string, out io.Writer, state cs.ViewState) error {
	game, err := payload.LoadFile("", path)
	if err != nil {
		return err
	}

	return RenderGame(logging.AppendCtx(ctx, slog.String("game_id", game.ID)), out, game, state)
}

// RenderDir renders every payload file in dir to outDir/<name>.html, where
// name is the file name without its extension, the same id the dir source
// serves the game under. Ids inside payloads never pick the output path. step
// is called once per file, rendered or not. Failed files are skipped and
// reported together in the returned error.
func RenderDir(ctx context.Context, dir, outDir string, state cs.ViewState, step func()) (int, error) {
	source, err := db.NewDirSource(dir)
	if err != nil {
		return 0, err
	}

	files, err := source.Files()
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("could not create output dir %s: %w", outDir, err)
	}

	rendered := 0
	seen := make(map[string]string, len(files))

	var errs []error

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return rendered, fmt.Errorf("rendering interrupted: %w", err)
		}

		id := strings.TrimSuffix(f, filepath.Ext(f))

		var err error
		if first, ok := seen[id]; ok {
			err = fmt.Errorf("%s: game %q is already rendered from %s", f, id, first)
		} else {
			err = renderOne(ctx, dir, f, id, outDir, state)
		}

		if err != nil {
			slog.WarnContext(ctx, "Skipping payload", "file", f, "error", err)
			errs = append(errs, err)
		} else {
			seen[id] = f
			rendered++
		}

		if step != nil {
			step()
		}
	}

	return rendered, errors.Join(errs...)
}

func renderOne(ctx context.Context, dir, name, id, outDir string, state cs.ViewState) error {
	game, err := payload.LoadFile(dir, name)
	if err != nil {
		return err
	}

	game.ID = id
	ctx = logging.AppendCtx(ctx, slog.String("game_id", id))

	var buf bytes.Buffer
	if err := RenderGame(ctx, &buf, game, state); err != nil {
		return err
	}

	target := filepath.Join(outDir, id+".html")
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", target, err)
	}

	slog.DebugContext(ctx, "Rendered card", "path", target)

	return nil
}
