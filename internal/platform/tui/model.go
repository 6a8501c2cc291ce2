package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game is what the platform needs from a game.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(width, height int)
	Step(in core.InputFrame, dt time.Duration) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)

// Model is the Bubble Tea model running a single game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards events.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// gameRows is the screen height left for the game below the help line.
func gameRows(height int) int {
	return max(height-1, 0)
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(core.RuntimeConfig{
		ScreenW:  m.config.ScreenW,
		ScreenH:  gameRows(m.config.ScreenH),
		TickRate: m.config.TickRate,
		Seed:     m.config.Seed,
	})
	m.logger.Info("game ready", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Set(core.ActionJump)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.ScoreText)
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the world and only adapts the drawing area.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.help.Width = msg.Width
	m.game.Resize(msg.Width, gameRows(msg.Height))
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick advances the game by the real time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.logStep(result)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logStep(res core.StepResult) {
	if res.Spawned > 0 {
		m.logger.Debug("trees spawned", "count", res.Spawned)
	}
	if res.Restarted {
		m.logger.Info("run started")
	}
	if res.Collided {
		m.logger.Info("run over", "score", res.State.ScoreText)
	}
}

// View renders the game and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
