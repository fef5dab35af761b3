package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagSound   bool
	flagVolume  float64
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Enter        - Start a run
  Space/Up/W   - Flap
  Mouse click  - Start, flap or restart
  R            - Back to the title screen after game over
  Ctrl+S       - Save a text screenshot
  Q/Esc/Ctrl+C - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --sound --volume 0.5
  flappy play --config ./my-flappy.yaml

Warnings are written to --log-file, since the game owns the terminal.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume between 0 and 1")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.flappy/play.log", "Log file (empty = no logging)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, logFile := newFileLogger(flagLogFile)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	seed := resolveSeed()
	game, err := flappy.New(cfg, seed)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Player: flagPlayer,
		Logger: logger,
	}
	if flagSound {
		effects := audio.NewEffects(flagVolume)
		if err := effects.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer effects.Close()
			opts.OnEvent = effects.Play
		}
	}

	runtimeCfg := terminalRuntime(cfg, seed)
	if err := tui.Run(game, store, runtimeCfg, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// terminalRuntime sizes the screen to the terminal, keeping the 80x24
// default when stdout is not one.
func terminalRuntime(cfg config.FlappyConfig, seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.TickInterval = cfg.Physics.TickInterval
	rc.Seed = seed
	return rc
}
