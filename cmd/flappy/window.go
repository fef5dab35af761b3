package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/desktop"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagMute bool

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x800 window and play with the mouse or keyboard.

Controls:
  Enter         - Start a run
  Space/Up/W    - Flap
  Click / tap   - Start, flap or restart
  R             - Back to the title screen after game over
  M             - Toggle sound (remembered between sessions)
  Q/Esc         - Quit

Examples:
  flappy window
  flappy window --volume 0.3
  flappy window --mute`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume between 0 and 1")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Start muted")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	game, err := flappy.New(cfg, resolveSeed())
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	prefs, err := storage.OpenPrefs(storage.PrefsAppName)
	if err != nil {
		logger.Warn("preferences will not be saved", "error", err)
	}
	if err := prefs.Load(); err != nil {
		logger.Warn("could not load preferences", "error", err)
	}
	if cmd.Flags().Changed("mute") {
		prefs.SetMuted(flagMute)
	}

	player := flagPlayer
	if !cmd.Flags().Changed("player") && prefs.Prefs().Player != "" {
		player = prefs.Prefs().Player
	}
	prefs.SetPlayer(player)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := desktop.Options{
		Store:  store,
		Prefs:  prefs,
		Player: player,
		Logger: logger,
	}

	effects := audio.NewEffects(flagVolume)
	if err := effects.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
	} else {
		defer effects.Close()
		opts.Sound = effects
	}

	session := desktop.NewSession(game, opts)
	runErr := desktop.Run(session, cfg.Physics.TickInterval)

	if err := prefs.Save(); err != nil {
		logger.Warn("could not save preferences", "error", err)
	}
	return runErr
}
