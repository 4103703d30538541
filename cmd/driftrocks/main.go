// Driftrocks is an Asteroids-style arcade game for the terminal.
//
// Usage:
//
//	driftrocks play              # Play locally in this terminal
//	driftrocks serve             # Host the game over SSH
//	driftrocks sim --duration 5m # Run headlessly and print a summary
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tomz197/driftrocks/internal/config"
)

var (
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "driftrocks",
	Short: "Asteroids in your terminal",
	Long: `Driftrocks is an Asteroids-style arcade game rendered with Unicode
half blocks. Play it locally, host it over SSH or run it headlessly.

Configuration is read from --config, ~/.driftrocks/game.yaml,
./configs/game.yaml or the built-in defaults, in that order.
DRIFTROCKS_SEED, DRIFTROCKS_BROADPHASE and DRIFTROCKS_SCORING
override the file; flags override both.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Random seed (0 = from config or clock)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Ticks per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the process logger at the --log-level level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "driftrocks",
	})
	logger.SetLevel(level)
	return logger, nil
}

// loadConfig loads the config file, then applies environment and flag
// overrides in that order.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	applyFlags(cmd, &cfg)
	return cfg, cfg.Validate()
}

// applyFlags copies explicitly set flags onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Loop.Seed = flagSeed
	}
	if flags.Changed("fps") {
		cfg.Loop.TickRate = flagFPS
	}
}
