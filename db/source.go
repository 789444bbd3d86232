package db

import (
	"context"
	"fmt"
)

const (
	SourceDir    = "dir"
	SourceRedis  = "redis"
	SourceSQLite = "sqlite"
)

type SourceConfig struct {
	Kind       string
	DataDir    string
	RedisURL   string
	SQLitePath string
}

// Open connects the source selected by cfg.Kind.
func Open(ctx context.Context, cfg SourceConfig) (Source, error) {
	var (
		source Source
		err    error
	)

	// Assign through concrete results so a failed open yields a nil interface.
	switch cfg.Kind {
	case SourceDir, "":
		var s *DirSource
		s, err = NewDirSource(cfg.DataDir)
		source = s
	case SourceRedis:
		var s *RedisSource
		s, err = ConnectRedis(ctx, cfg.RedisURL)
		source = s
	case SourceSQLite:
		var s *SQLiteSource
		s, err = ConnectDB(cfg.SQLitePath)
		source = s
	default:
		return nil, fmt.Errorf("unknown source %q, expected one of %s, %s, %s", cfg.Kind, SourceDir, SourceRedis, SourceSQLite)
	}

	if err != nil {
		return nil, err
	}

	return source, nil
}
