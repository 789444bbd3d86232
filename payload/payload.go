// Package payload decodes game card payloads from JSON and YAML documents.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dasdy/gamecard/model"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported payload format")
	// ErrInvalidPayload marks documents that could be read but not decoded
	// into a game.
	ErrInvalidPayload = errors.New("invalid payload")
)

// FormatOf picks the payload format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// IsPayloadFile reports whether a directory entry looks like a payload.
func IsPayloadFile(name string) bool {
	_, err := FormatOf(name)

	return err == nil
}

func Decode(r io.Reader, format Format) (*model.Game, error) {
	var game model.Game

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&game); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&game); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := validate(&game); err != nil {
		return nil, err
	}

	return &game, nil
}

func validate(game *model.Game) error {
	if game.Sport == "" {
		return fmt.Errorf("%w: missing sport", ErrInvalidPayload)
	}

	if game.HomeTeam.Name == "" || game.AwayTeam.Name == "" {
		return fmt.Errorf("%w: both teams need a name", ErrInvalidPayload)
	}

	return nil
}

// OpenPath opens path as is when absolute and relative to base otherwise.
func OpenPath(base, path string) (*os.File, error) {
	var err error

	var file *os.File

	if filepath.IsAbs(path) || base == "" {
		slog.Debug("Opening payload", "path", path)
		file, err = os.Open(path)
	} else {
		slog.Debug("Opening payload relative to base", "base", base, "path", path)
		file, err = os.Open(filepath.Join(base, path))
	}

	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}

	return file, nil
}

// LoadFile decodes a payload file. Games without an id take the file name.
func LoadFile(base, path string) (*model.Game, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	file, err := OpenPath(base, path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	game, err := Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}

	if game.ID == "" {
		game.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return game, nil
}
