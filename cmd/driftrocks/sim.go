package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomz197/driftrocks/internal/loop"
	"github.com/tomz197/driftrocks/internal/sim"
)

var (
	flagDuration    time.Duration
	flagFireEvery   int
	flagThrustEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headlessly",
	Long: `Run the simulation without a terminal as fast as possible, driven by
a scripted autopilot at a fixed frame time, and print a summary.

Runs with the same --seed are reproducible.

Examples:
  driftrocks sim --duration 10m --seed 42
  driftrocks sim --log-level debug --fire-every 5`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagDuration, "duration", time.Minute, "Simulated time to run for")
	simCmd.Flags().IntVar(&flagFireEvery, "fire-every", 15, "Frames between autopilot shots (0 never fires)")
	simCmd.Flags().IntVar(&flagThrustEvery, "thrust-every", 240, "Frames between autopilot thrust bursts (0 never thrusts)")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	sum := loop.Simulate(ctx, cfg, loop.SimulateOptions{
		Duration:  flagDuration,
		Autopilot: loop.Autopilot{FireEvery: flagFireEvery, ThrustEvery: flagThrustEvery},
		Logger:    logger,
		Rand:      sim.NewRand(cfg.Loop.Seed),
	})
	logger.Info("simulation finished", "wall", time.Since(start).Round(time.Millisecond))

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "frames     %d\n", sum.Frames)
	fmt.Fprintf(w, "simulated  %s\n", sum.Simulated.Round(time.Millisecond))
	fmt.Fprintf(w, "rounds     %d\n", sum.Rounds)
	fmt.Fprintf(w, "deaths     %d\n", sum.Deaths)
	fmt.Fprintf(w, "shots      %d\n", sum.Shots)
	fmt.Fprintf(w, "kills      %d\n", sum.Kills)
	fmt.Fprintf(w, "best score %d\n", sum.BestScore)
	fmt.Fprintf(w, "final      %s\n", sum.Final)
	return nil
}
