package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetcolor/internal/core"
)

// bellHold is how many ticks the bell byte stays in the rendered frame.
const bellHold = 1

// Game is what the platform needs from a game.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options configures a game Model.
type Options struct {
	Config core.RuntimeConfig
	Sound  bool
	Logger *log.Logger

	// ScreenshotDir defaults to ~/.tetcolor/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig
	logger    *log.Logger
	shotDir   string
	keys      KeyMap
	help      help.Model
	input     core.InputFrame
	state     core.GameState
	lastTick  time.Time
	sound     bool
	bellTicks int
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, screenHeight(cfg.ScreenH)),
		config:  cfg,
		logger:  opts.Logger,
		shotDir: opts.ScreenshotDir,
		keys:    DefaultKeyMap(),
		help:    h,
		input:   core.NewInputFrame(),
		sound:   opts.Sound,
	}
}

// screenHeight leaves the last terminal row for the help line.
func screenHeight(termH int) int {
	return max(termH-1, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, screenHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Game keys are queued for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Exit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Sound):
		m.sound = !m.sound
		return m, nil
	}

	m.input.Set(m.keys.Action(msg))
	return m, nil
}

// handleTick advances the game by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.input.Elapsed = frameDelta(m.lastTick, now)
	m.lastTick = now

	if m.bellTicks > 0 {
		m.bellTicks--
	}

	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()

	for _, cue := range result.Cues {
		if m.logger != nil {
			m.logger.Debug("cue", "game", m.game.ID(), "cue", cue, "score", m.state.Score)
		}
		if cue == core.CueFinish && m.sound {
			m.bellTicks = bellHold
		}
	}

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".tetcolor", "screenshots")
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405")))

	err := os.MkdirAll(dir, 0o755)
	if err == nil {
		err = os.WriteFile(path, []byte(m.screen.String()), 0o600)
	}
	if m.logger == nil {
		return
	}
	if err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Sound reports whether the finish bell is enabled.
func (m Model) Sound() bool {
	return m.sound
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	view := RenderScreen(m.screen)
	if m.screen.Height() > 0 {
		view += "\n" + m.helpLine()
	}
	if m.bellTicks > 0 {
		view = "\a" + view
	}
	return view
}

func (m Model) helpLine() string {
	line := m.help.View(m.keys)
	if !m.sound {
		line += "  (muted)"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(centerText(line, m.config.ScreenW))
}

// Run starts the Bubble Tea program for game on the alternate screen.
func Run(game Game, opts Options) error {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
