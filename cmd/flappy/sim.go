package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/sim"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagAutopilot bool
	flagMaxTicks  int
	flagRuns      int
	flagFast      bool
	flagSave      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless games",
	Long: `Run the simulation without a screen and print the result of each run.

Without --autopilot the bird never flaps and falls to the ground. With it,
a simple demo controller flaps whenever the bird is about to sink below the
next gap. It does not plan ahead, so steep drops between gaps end the run.

Examples:
  flappy sim
  flappy sim --autopilot --max-ticks 3600
  flappy sim --autopilot --runs 10 --fast
  flappy sim --autopilot --fast --save --player bot`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot flap")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Stop each run after this many ticks (0 = until game over)")
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
	simCmd.Flags().BoolVar(&flagFast, "fast", false, "Do not wait between ticks")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Save scores to the database")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	if flagRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", flagRuns)
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	game, err := flappy.New(cfg, resolveSeed())
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	opts := sim.Options{
		MaxTicks: flagMaxTicks,
		Logger:   logger,
	}
	if flagAutopilot {
		opts.Policy = sim.NewAutopilot(cfg)
	}
	if flagFast {
		opts.Interval = time.Microsecond
	}

	runner, err := sim.NewRunner(game, opts)
	if err != nil {
		return err
	}

	var store *storage.Store
	if flagSave {
		store = openStore(logger)
		if store != nil {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	best := 0
	for i := 1; i <= flagRuns; i++ {
		res, runErr := runner.Run(ctx)

		outcome := "crashed"
		if !res.Crashed() {
			outcome = "stopped"
		}
		fmt.Printf("run %d: score %d, %d ticks, %d flaps, %s\n", i, res.Score, res.Ticks, res.Jumps, outcome)
		best = max(best, res.Score)

		if store != nil && res.Score > 0 {
			_, err := store.SaveRun(storage.Run{
				GameID: game.ID(),
				Player: flagPlayer,
				Score:  res.Score,
				Ticks:  res.Ticks,
			})
			if err != nil {
				logger.Error("could not save score", "error", err)
			}
		}

		if runErr != nil {
			if errors.Is(runErr, context.Canceled) {
				return nil
			}
			return runErr
		}
	}

	if flagRuns > 1 {
		fmt.Printf("best: %d\n", best)
	}
	return nil
}
