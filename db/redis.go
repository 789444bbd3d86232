package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/dasdy/gamecard/model"
	"github.com/redis/go-redis/v9"
)

const (
	cardKeyPrefix = "game:"
	cardKeySuffix = ":card"
	scanBatch     = 100
)

// CardKey is the key under which the upstream stats service caches a game's
// card payload.
func CardKey(gameID string) string {
	return cardKeyPrefix + gameID + cardKeySuffix
}

// RedisSource reads card payloads cached in redis as JSON.
type RedisSource struct {
	client *redis.Client
}

func NewRedisSource(client *redis.Client) *RedisSource {
	return &RedisSource{client: client}
}

// ConnectRedis parses a redis:// URL and checks the server is reachable.
func ConnectRedis(ctx context.Context, url string) (*RedisSource, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("could not parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()

		return nil, fmt.Errorf("could not connect to redis at %s: %w", opts.Addr, err)
	}

	slog.Info("Connected to redis", "addr", opts.Addr)

	return &RedisSource{client: client}, nil
}

func (s *RedisSource) Game(ctx context.Context, id string) (*model.Game, error) {
	data, err := s.client.Get(ctx, CardKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("could not read game %s from redis: %w", id, err)
	}

	return decodeStored(id, []byte(data))
}

func (s *RedisSource) List(ctx context.Context) ([]model.GameSummary, error) {
	keys := make([]string, 0)

	iter := s.client.Scan(ctx, 0, CardKey("*"), scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("could not scan card keys: %w", err)
	}

	sort.Strings(keys)

	result := make([]model.GameSummary, 0, len(keys))

	for _, key := range keys {
		id := strings.TrimSuffix(strings.TrimPrefix(key, cardKeyPrefix), cardKeySuffix)

		game, err := s.Game(ctx, id)
		if err != nil {
			// Keys can expire between the scan and the read.
			slog.Warn("Skipping game", "id", id, "error", err)

			continue
		}

		result = append(result, game.Summary())
	}

	return result, nil
}

func (s *RedisSource) Close() error {
	return s.client.Close()
}
