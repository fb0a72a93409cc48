package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// footerHeight is the number of rows reserved below the game for help.
const footerHeight = 1

// Game is a simulation the program can drive.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(input core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Resizer is implemented by games that adapt to a new screen size without
// restarting.
type Resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for a single game session.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	renderer   *lipgloss.Renderer
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards output; a nil renderer uses the lipgloss default.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger, renderer *lipgloss.Renderer) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Tick <= 0 {
		cfg.Tick = core.DefaultTick
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	gameH := max(cfg.ScreenH-footerHeight, 0)
	cfg.ScreenH = gameH

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       newHelp(renderer),
		renderer:   renderer,
		logger:     logger,
	}
}

// newHelp builds a help view whose styles follow the session's renderer.
func newHelp(r *lipgloss.Renderer) help.Model {
	h := help.New()
	keyStyle := r.NewStyle().Foreground(lipgloss.Color("#909090"))
	descStyle := r.NewStyle().Foreground(lipgloss.Color("#606060"))
	sepStyle := r.NewStyle().Foreground(lipgloss.Color("#404040"))

	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = sepStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = descStyle
	h.Styles.FullSeparator = sepStyle
	h.Styles.Ellipsis = sepStyle
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"width", m.config.ScreenW,
		"height", m.config.ScreenH,
	)
	return tickCmd(m.config.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	case core.ActionNone:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	gameH := max(msg.Height-footerHeight, 0)
	m.config.ScreenW = msg.Width
	m.config.ScreenH = gameH
	m.screen.Resize(msg.Width, gameH)
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, gameH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logEvent(ev)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.Tick)
}

func (m Model) logEvent(ev core.Event) {
	fields := []any{"game", m.game.ID(), "score", ev.Score, "length", ev.Length}
	switch ev.Kind {
	case core.EventFoodEaten:
		m.logger.Debug(ev.Kind.String(), fields...)
	case core.EventGameOver:
		m.logger.Info(ev.Kind.String(), append(fields, "cause", ev.Cause)...)
	default:
		m.logger.Info(ev.Kind.String(), fields...)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	body := RenderScreen(m.renderer, m.screen)
	footer := m.help.View(m.keys)

	// The full help is taller than the footer row and covers the bottom of
	// the game instead of pushing it off screen.
	if extra := lipgloss.Height(footer) - footerHeight; extra > 0 {
		lines := strings.Split(body, "\n")
		lines = lines[:max(len(lines)-extra, 0)]
		body = strings.Join(lines, "\n")
	}

	if body == "" {
		return footer
	}
	return body + "\n" + footer
}

// Run starts the Bubble Tea program for the given game on the local terminal.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
