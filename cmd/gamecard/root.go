package gamecard

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dasdy/gamecard/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	verbose   bool
	logFile   string
	logCloser io.Closer
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gamecard",
	Short: "Render game result cards",
	Long: `Gamecard turns basketball, soccer and volleyball game payloads into result cards.
Cards follow the game status: a preview before kick-off, the live score while
the game runs and a full summary once it is over.`,
	PersistentPreRun:  setup,
	PersistentPostRun: teardown,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gamecard.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this file, rotated by size")
}

func initConfig() {
	if cfgFile != "" {
		slog.Debug("Using config file", "path", cfgFile)
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory and cwd with name ".gamecard" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".gamecard")
	}
	// Set environment variable prefix
	viper.SetEnvPrefix("gamecard")
	viper.AutomaticEnv()

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create an example config
			createExampleConfig()
		} else {
			slog.Error("Error reading config file", "error", err)
			os.Exit(1)
		}
	}
}

func createExampleConfig() {
	exampleConfig := `# Flags use their names without hyphens here, e.g. data-dir becomes dataDir.
port = 9000
source = "dir"
dataDir = "./games"
# redisUrl = "redis://localhost:6379/0"
# sqlitePath = "./games.sqlite"
`
	configPath := "./.gamecard.toml"

	err := os.WriteFile(configPath, []byte(exampleConfig), 0o644)
	if err != nil {
		slog.Error("Error creating example config file", "error", err)
		os.Exit(1)
	}

	slog.Info("Example config file created", "path", configPath)
}

func setup(cmd *cobra.Command, args []string) {
	bindFlags(cmd, args)

	logCloser = logging.Setup(logging.Options{Verbose: verbose, LogFile: logFile})

	slog.Debug("Config loaded", "file", viper.ConfigFileUsed(), "settings", viper.AllSettings())
}

func teardown(_ *cobra.Command, _ []string) {
	if logCloser == nil {
		return
	}

	if err := logCloser.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "could not close log file: %s\n", err)
	}
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// If using camelCase in the config file, replace hyphens with a camelCased string.
		// Since viper does case-insensitive comparisons, we don't need to bother fixing the case, and only need to remove the hyphens.
		configName := strings.ReplaceAll(f.Name, "-", "")

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)

			err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
			if err != nil {
				slog.Error("Error setting flag from config", "flag", f.Name, "error", err)
				panic(err)
			}

			slog.Debug("Flag set to config value", "flag", f.Name, "value", val)
		}
	})
}
