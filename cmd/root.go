package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/audiohw/audiotree/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "audiotree",
	Short: "Inspect the audio hardware object tree",
	Long:  "A diagnostic CLI that walks the macOS audio HAL object graph and prints every visible object's properties as an indented tree.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: none, error, warn, info, debug")
	rootCmd.PersistentFlags().String("presets", "", "Path to a presets file (default: <user config dir>/audiotree/presets.yaml)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		return configureLogging(level)
	}
}

// configureLogging points slog at stderr so the tree report on stdout stays
// clean.
func configureLogging(level string) error {
	var l slog.Level
	switch level {
	case "none":
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	case "error":
		l = slog.LevelError
	case "warn":
		l = slog.LevelWarn
	case "info":
		l = slog.LevelInfo
	case "debug":
		l = slog.LevelDebug
	default:
		return fmt.Errorf("unexpected log level: %q", level)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}
