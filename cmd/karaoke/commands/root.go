package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhuang314/telegramkaraoke/cmd/karaoke/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Global configuration (loaded at init time)
	globalConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "karaoke",
	Short: "Karaoke performance comparison engine",
	Long: `karaoke - assemble, transcribe, and score karaoke performances.

A performance is a sequence of per-line voice clips. The tool glues them
into one take, transcribes and analyzes both the take and the song's
reference recording, and scores the performance on lyrics, pitch, and
tempo.

Configuration is stored in the OS config directory:
  macOS:   ~/Library/Application Support/karaoke/config.yaml
  Linux:   ~/.config/karaoke/config.yaml
  Windows: %AppData%/karaoke/config.yaml

Examples:
  # List the built-in songs
  karaoke songs

  # Glue recorded lines into one take inside the work dir
  karaoke assemble line1.ogg line2.ogg line3.ogg

  # Score the take against a song's reference recording
  karaoke compare --song "Joy to the world" takes/abc123_combined.ogg`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: OS config dir)")
}

// configLoadErr stores the error from config.Load() for deferred reporting.
var configLoadErr error

func initConfig() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		// Store error for deferred reporting. Commands that need config
		// will get a clear error via GetConfig(); 'karaoke version' and
		// friends keep working.
		configLoadErr = err
		return
	}
	globalConfig = cfg
}

// GetConfig returns the global configuration.
func GetConfig() (*config.Config, error) {
	if globalConfig == nil {
		if configLoadErr != nil {
			return nil, fmt.Errorf("config not available: %w", configLoadErr)
		}
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("config not available: %w", err)
		}
		globalConfig = cfg
	}
	return globalConfig, nil
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}
