package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-rat/internal/config"
	"github.com/vovakirdan/snake-rat/internal/core"
)

// helpHeight is the number of terminal rows reserved for the key help.
const helpHeight = 1

// Game is the simulation driven by the loop.
type Game interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	State() core.GameState
	Render(dst *core.Screen)
}

// ScoreSaver persists finished games.
type ScoreSaver interface {
	SaveScore(gameID, player string, score, ticks int) (int64, error)
}

// Model is the Bubble Tea model running one game.
//
// Every loop iteration has exactly one pending timeout, tagged with seq.
// A key press or resize ends the iteration early: seq moves on, so the
// pending timeout is ignored when it fires, and a new one is scheduled.
type Model struct {
	game   Game
	screen *core.Screen
	store  ScoreSaver
	logger *log.Logger
	pacer  *config.DifficultyManager
	config core.RuntimeConfig
	player string
	keys   KeyMap
	help   help.Model

	seq        int
	scoreSaved bool // Whether the current death has been recorded
	quitting   bool
}

// NewModel creates a model for game. store may be nil.
func NewModel(game Game, store ScoreSaver, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		store:  store,
		logger: log.New(io.Discard),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// WithLogger sets the event logger.
func (m Model) WithLogger(logger *log.Logger) Model {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// WithPacer makes the wait interval follow the difficulty curve.
func (m Model) WithPacer(pacer *config.DifficultyManager) Model {
	m.pacer = pacer
	return m
}

// WithPlayer sets the name scores are saved under.
func (m Model) WithPlayer(player string) Model {
	m.player = player
	return m
}

// Init starts the game and the first wait.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "seed", m.config.Seed)
	return timeoutCmd(m.seq, m.interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TimeoutMsg:
		return m.handleTimeout(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Steering and restart keys act at
// once instead of waiting for the timeout.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKey(msg) == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
	}

	frame := core.NewInputFrame()
	m.keys.MapKeyToFrame(msg, &frame)
	if frame.Has(core.ActionBack) {
		frame.Clear()
	}
	if !frame.Empty() {
		m.step(frame)
	}

	return m.nextIteration()
}

// handleResize processes window resize events. The game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	return m.nextIteration()
}

// handleTimeout moves the snake on when a wait ran out. A dead snake
// waits for a key instead.
func (m Model) handleTimeout(msg TimeoutMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil
	}
	if m.game.State().GameOver {
		return m, nil
	}

	m.step(core.NewInputFrame())
	return m.nextIteration()
}

// nextIteration retires the pending timeout and schedules a fresh one.
func (m Model) nextIteration() (tea.Model, tea.Cmd) {
	m.seq++
	return m, timeoutCmd(m.seq, m.interval())
}

// step runs the game once and records a death the first time it is seen.
func (m *Model) step(frame core.InputFrame) {
	res := m.game.Step(frame)

	if res.Restarted {
		m.scoreSaved = false
		m.logger.Info("game restarted")
		return
	}
	if res.State.GameOver && !m.scoreSaved {
		m.recordDeath(res.State)
	}
}

// recordDeath logs the finished game and saves it if it scored.
func (m *Model) recordDeath(state core.GameState) {
	m.scoreSaved = true
	m.logger.Info("snake died", "points", state.Score, "time", state.Ticks)

	if m.store == nil || state.Score <= 0 {
		return
	}
	id, err := m.store.SaveScore(m.game.ID(), m.player, state.Score, state.Ticks)
	if err != nil {
		m.logger.Error("could not save score", "error", err)
		return
	}
	m.logger.Info("score saved", "id", id, "player", m.player)
}

// interval is the current wait before the snake moves on its own.
func (m Model) interval() time.Duration {
	state := m.game.State()
	return m.pacer.Interval(m.config.TickInterval, state.Score, state.Ticks)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snakerat", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true once the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
