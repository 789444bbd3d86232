package gamecard

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dasdy/gamecard/db"
	"github.com/dasdy/gamecard/web"
	"github.com/spf13/cobra"
)

var (
	port       int
	dev        bool
	sourceKind string
	dataDir    string
	redisURL   string
	sqlitePath string
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Serve game cards over HTTP",
	Long: `Serve an index of the games found in the source and a card page per game.
Games are read from a directory of JSON/YAML payloads, a Redis cache or a sqlite archive.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		source, err := db.Open(ctx, db.SourceConfig{
			Kind:       sourceKind,
			DataDir:    dataDir,
			RedisURL:   redisURL,
			SQLitePath: sqlitePath,
		})
		if err != nil {
			return fmt.Errorf("could not open %s source: %w", sourceKind, err)
		}

		defer func() {
			if err := source.Close(); err != nil {
				slog.Warn("Could not close source", "error", err)
			}
		}()

		slog.Info("Opened game source", "source", sourceKind)

		return web.StartServer(ctx, port, source, dev)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().IntVarP(&port, "port", "p", 9000,
		"Port on which server should be watching")

	showCmd.Flags().BoolVar(&dev,
		"dev",
		false,
		"Enable developer mode")

	showCmd.Flags().StringVarP(
		&sourceKind,
		"source",
		"s",
		db.SourceDir,
		"Where games come from: dir, redis or sqlite")

	showCmd.Flags().StringVarP(
		&dataDir,
		"data-dir",
		"d",
		"./games",
		"Directory with JSON/YAML game payloads (dir source)")

	showCmd.Flags().StringVar(
		&redisURL,
		"redis-url",
		"redis://localhost:6379/0",
		"Redis connection URL (redis source)")

	showCmd.Flags().StringVar(
		&sqlitePath,
		"sqlite-path",
		"./games.sqlite",
		"Path to the games archive (sqlite source)")
}
