// flappy is a Flappy Bird clone for the terminal, the desktop and SSH.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy window            - Play in a desktop window
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Show high scores
//	flappy sim               - Run a headless game, optionally on autopilot
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible gap placement
//	--tick <dur>     - Override the simulation step (default: 16ms)
//	--config <path>  - Load game constants from a YAML file
//	--db <path>      - Set database path (default: ~/.flappy/scores.db)
//	--player <name>  - Name stored with saved scores
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	// Global flags
	flagSeed   int64
	flagTick   time.Duration
	flagConfig string
	flagDBPath string
	flagPlayer string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Guide the bird through the gaps between the pipes. Every pipe
pair that scrolls off the screen is one point.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a headless game

Examples:
  flappy play
  flappy play --sound --player ana
  flappy window
  flappy serve --ssh :2222
  flappy scores --browse
  flappy sim --autopilot --max-ticks 3600`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Simulation step, e.g. 16ms (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name stored with scores")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger returns the stderr logger shared by all commands.
func newLogger() *log.Logger {
	return newLoggerTo(os.Stderr)
}

func newLoggerTo(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newFileLogger returns a logger appending to path, for commands that draw
// on the whole terminal. If the file cannot be opened, log output is
// discarded. The returned file is nil in that case.
func newFileLogger(path string) (*log.Logger, *os.File) {
	path = expandHome(path)
	if path == "" {
		return newLoggerTo(io.Discard), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLoggerTo(io.Discard), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return newLoggerTo(io.Discard), nil
	}
	return newLoggerTo(f), f
}

// expandHome replaces a leading ~ with the user's home directory.
// It returns an empty path if the home directory is unknown.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, path[1:])
}

// loadGameConfig loads the game constants and applies command line overrides.
func loadGameConfig() (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	if flagTick < 0 {
		return config.FlappyConfig{}, fmt.Errorf("--tick must not be negative, got %s", flagTick)
	}
	if flagTick > 0 {
		cfg.Physics.TickInterval = flagTick
	}
	return cfg, nil
}

// resolveSeed returns flagSeed, or a time based seed if it is zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// gameFactory returns a constructor for games built from cfg.
func gameFactory(cfg config.FlappyConfig) func(seed int64) (core.Game, error) {
	return func(seed int64) (core.Game, error) {
		g, err := flappy.New(cfg, seed)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// openStore opens the scores database. A failure is logged and the game
// continues without saving.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
