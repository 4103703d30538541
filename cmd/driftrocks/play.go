package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tomz197/driftrocks/internal/loop"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  A/D, J/L or Left/Right - Rotate
  W, I or Up             - Thrust
  Space                  - Shoot / start / restart
  Q or Ctrl+C            - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("play needs an interactive terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	// Raw mode swallows Ctrl+C as a key; signals still cover kill and hangup.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	// Keep log lines off the game screen unless debugging.
	if level := logger.GetLevel(); level > log.DebugLevel && level < log.ErrorLevel {
		logger.SetLevel(log.ErrorLevel)
	}

	c := loop.NewClient(cfg, bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Logger: logger,
	})
	if err := c.Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
