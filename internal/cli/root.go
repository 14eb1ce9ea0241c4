package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/travelbot-console/internal/app"
	"github.com/FACorreiaa/travelbot-console/pkg/config"
)

var version = "dev"

// SetVersion records the build version injected by the linker.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:           "travelbot",
	Short:         "Console client for the travelbot planning backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newCitiesCmd())
	rootCmd.AddCommand(newHealthCmd())
}

// setup loads config and wires dependencies against the command's output.
func setup(cmd *cobra.Command) (*app.Dependencies, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return app.InitDependencies(cfg, newLogger(cfg), cmd.OutOrStdout())
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
