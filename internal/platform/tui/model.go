package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// DefaultFPS is the frame rate used when Options.FPS is not set.
const DefaultFPS = 60

// Options configures the terminal adapter.
type Options struct {
	FPS    int         // Frames rendered per second
	Logger *log.Logger // Session events; nil discards them
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	steps    stepper
	fps      int
	width    int
	height   int
	paused   bool
	over     bool // Game over already observed and logged
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The game must already be reset; the model never changes its seed.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:   game,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: opts.Logger,
		steps:  newStepper(cfg.TickRate),
		fps:    opts.FPS,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-1))
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started",
		"game", m.game.ID(),
		"grid", fmt.Sprintf("%dx%d", m.config.GridW, m.config.GridH),
		"tick_rate", m.config.TickRate,
		"seed", m.config.Seed,
	)
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	switch k := m.keys.MapKey(msg); k {
	case core.KeyQuit:
		s := m.game.State()
		m.logger.Info("quit", "score", s.Score, "high_score", s.HighScore)
		m.quitting = true
		return m, tea.Quit

	case core.KeyPause:
		m.paused = !m.paused
		// Resuming restarts the clock so paused time is not replayed.
		m.steps.reset()

	case core.KeyRestart:
		if m.game.State().GameOver {
			m.game.Reset()
			m.over = false
			m.steps.reset()
			m.logger.Info("restart", "high_score", m.game.State().HighScore)
		}

	case core.KeyNone:

	default:
		if !m.paused {
			m.game.HandleInput(k)
		}
	}

	return m, nil
}

// handleFrame runs every simulation step that became due since the last frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if !m.paused {
		for range m.steps.advance(now) {
			m.game.Tick()
		}
	}

	if s := m.game.State(); s.GameOver && !m.over {
		m.over = true
		m.logger.Info("game over", "score", s.Score, "high_score", s.HighScore)
	}

	return m, frameCmd(m.fps)
}

// layout sizes the screen buffer to the window minus the help footer.
func (m *Model) layout() {
	footer := lipgloss.Height(m.footer())
	m.config.ScreenW = m.width
	m.config.ScreenH = max(0, m.height-footer)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
}

func (m Model) footer() string {
	view := m.help.View(m.keys)
	if m.paused {
		view = lipgloss.JoinHorizontal(lipgloss.Top, pausedStyle.Render("PAUSED"), " ", view)
	}
	return view
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), m.footer())
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
