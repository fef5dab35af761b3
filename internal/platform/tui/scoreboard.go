package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// maxScores is the number of rows loaded into the table.
const maxScores = 100

// ScoreView selects which runs the scoreboard lists.
type ScoreView int

const (
	ViewTop    ScoreView = iota // Best runs of everyone
	ViewPlayer                  // Most recent runs of one player
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	ToggleView key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.ToggleView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.ToggleView, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "top/mine"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for browsing saved runs.
type ScoreboardModel struct {
	store    *storage.Store
	gameID   string
	title    string
	player   string
	view     ScoreView
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard for one game. player selects
// the runs shown in the player view and may be empty.
func NewScoreboardModel(store *storage.Store, gameID, title, player string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:  store,
		gameID: gameID,
		title:  title,
		player: storage.NormalizePlayer(player),
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a table sized to the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Ticks", Width: 8},
		{Title: "Date", Width: 14},
	}

	// Give spare width to the player column.
	if spare := m.width - 4 - 6 - 16 - 8 - 8 - 14 - 10; spare > 0 {
		columns[1].Width += min(spare, storage.MaxPlayerName-16)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches the rows for the current view and the summary stats.
func (m *ScoreboardModel) load() {
	m.scores = nil
	m.stats = nil
	m.loadErr = nil

	if m.store != nil {
		var err error
		switch m.view {
		case ViewPlayer:
			m.scores, err = m.store.PlayerScores(m.gameID, m.player, maxScores)
		default:
			m.scores, err = m.store.TopScores(m.gameID, maxScores)
		}
		if err != nil {
			m.loadErr = err
		} else if m.stats, err = m.store.GetGameStats(m.gameID); err != nil {
			m.loadErr = err
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Ticks),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.ToggleView):
			if m.view == ViewTop {
				m.view = ViewPlayer
			} else {
				m.view = ViewTop
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	heading := fmt.Sprintf("HIGH SCORES - %s", m.title)
	if m.view == ViewPlayer {
		heading = fmt.Sprintf("RUNS OF %s - %s", m.player, m.title)
	}
	b.WriteString(titleStyle.Render(centerText(heading, m.width)))
	b.WriteString("\n")

	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.stats != nil && m.stats.GamesCount > 0 {
		summary := fmt.Sprintf("%d runs by %d players  |  best %d  |  avg %.1f",
			m.stats.GamesCount, m.stats.Players, m.stats.HighScore, m.stats.AvgScore)
		b.WriteString(subtle.Render(centerText(summary, m.width)))
	}
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(subtle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or a placeholder message.
func (m ScoreboardModel) renderTableContent() string {
	placeholder := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return placeholder.Render("Score database is unavailable.")
	case m.loadErr != nil:
		return placeholder.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return placeholder.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// Rows returns the runs currently listed.
func (m ScoreboardModel) Rows() []storage.ScoreEntry {
	return m.scores
}

// CurrentView returns which runs are listed.
func (m ScoreboardModel) CurrentView() ScoreView {
	return m.view
}

// centerText pads text so that each line is centered in width columns.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if pad := (width - lipgloss.Width(l)) / 2; pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + l
		}
	}
	return strings.Join(lines, "\n")
}

// RunScoreboard runs the scoreboard browser until the user quits.
func RunScoreboard(store *storage.Store, gameID, title, player string, width, height int) error {
	model := NewScoreboardModel(store, gameID, title, player, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
