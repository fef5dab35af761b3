package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options are optional collaborators of a Model.
type Options struct {
	Player  string           // Name stored with saved scores
	OnEvent func(core.Event) // Called with the events of every step, e.g. for sound
	Logger  *log.Logger      // Receives best-effort failures; may be nil
}

// tickCounter is implemented by games that report their run length.
type tickCounter interface {
	Ticks() int
}

// Model is the Bubble Tea model for running the game.
// The tick loop only runs while a run is in progress; title and game over
// screens are redrawn on input alone.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	gen        int // Current tick loop generation
	quitting   bool
	scoreSaved bool // Whether the score of the finished run has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init implements tea.Model. Nothing runs until the player starts a run.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
			return m, nil
		}
		action, quit := m.keys.MapKey(msg)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleAction(action)

	case tea.MouseMsg:
		return m.handleAction(m.keys.MapMouse(msg, m.gameState))

	case tea.WindowSizeMsg:
		// World coordinates do not depend on the terminal, so the run continues.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleAction applies an action. Jumps during a run are queued for the
// next tick; everything else takes effect at once.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionJump:
		if m.gameState.Playing {
			m.inputFrame.Set(core.ActionJump)
		}
		return m, nil

	case core.ActionConfirm, core.ActionRestart:
		if m.gameState.Playing {
			return m, nil
		}
		res := m.step(core.FrameOf(action))
		if !res.State.Playing {
			return m, nil
		}
		// A new run: start a fresh tick loop.
		m.scoreSaved = false
		m.gen++
		return m, tickCmd(m.config.TickInterval, m.gen)
	}

	return m, nil
}

// handleTick runs one simulation step and schedules the next one while
// the run continues.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.gameState.Playing {
		return m, nil
	}

	res := m.step(m.inputFrame)
	m.inputFrame.Clear()

	if res.State.GameOver {
		m.saveScore()
		return m, nil
	}
	if !res.State.Playing {
		return m, nil
	}
	return m, tickCmd(m.config.TickInterval, m.gen)
}

func (m *Model) step(frame core.InputFrame) core.StepResult {
	res := m.game.Step(frame)
	m.gameState = res.State
	if m.opts.OnEvent != nil && res.Events != 0 {
		m.opts.OnEvent(res.Events)
	}
	return res
}

// saveScore records the finished run once.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	run := storage.Run{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  m.gameState.Score,
	}
	if tc, ok := m.game.(tickCounter); ok {
		run.Ticks = tc.Ticks()
	}

	if _, err := m.store.SaveRun(run); err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".flappy", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// State returns the state after the last step.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true once the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
