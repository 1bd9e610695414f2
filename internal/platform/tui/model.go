package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-glide/internal/core"
	"github.com/vovakirdan/snake-glide/internal/games/snake"
	"github.com/vovakirdan/snake-glide/internal/registry"
)

const defaultMaxFrameStep = 100 * time.Millisecond

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one glide game.
type Model struct {
	session  registry.Session
	sim      *snake.Simulation
	screen   *core.Screen
	view     Viewport
	keys     KeyMap
	help     help.Model
	interval time.Duration
	maxStep  time.Duration
	lastTick time.Time

	embedded   bool // running inside the menu session
	runSaved   bool // the finished run has been stored
	quitting   bool
	backToMenu bool
}

// NewModel creates a game model sized from s.Runtime. An embedded model offers
// a way back to the menu instead of only quitting.
func NewModel(s registry.Session, embedded bool) Model {
	display := s.Config.Display
	view := NewViewport(s.Runtime.ScreenW, s.Runtime.ScreenH, display.CellWidth, display.CellHeight)

	maxStep := display.MaxFrameStep
	if maxStep <= 0 {
		maxStep = defaultMaxFrameStep
	}

	h := help.New()
	h.Width = s.Runtime.ScreenW

	return Model{
		session:  s,
		sim:      s.NewSimulation(view.Bounds()),
		screen:   core.NewScreen(view.Cols, view.Rows+hudRows),
		view:     view,
		keys:     DefaultKeyMap(embedded),
		help:     h,
		interval: s.Runtime.TickInterval(),
		maxStep:  maxStep,
		embedded: embedded,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.sim.TogglePause()
	case core.ActionRestart:
		if m.sim.Over() {
			m.restart()
		}
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionBack:
		if m.embedded && (!m.sim.Started() || m.sim.Paused() || m.sim.Over()) {
			m.backToMenu = true
		}
	}

	return m, nil
}

// handleMouse turns a held left button into the pointer. Only cell motion is
// reported, so motion events arrive while a button is down.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.sim.Over() {
			m.restart()
			return m, nil
		}
		m.sim.OnPointerMoved(m.view.PointAt(msg.X, msg.Y))

	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			m.sim.OnPointerMoved(m.view.PointAt(msg.X, msg.Y))
		}

	case tea.MouseActionRelease:
		m.sim.OnPointerReleased()
	}

	return m, nil
}

// handleResize processes window resize events. The playfield follows the
// terminal; a game that has not started yet is recentred.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	display := m.session.Config.Display
	m.view = NewViewport(msg.Width, msg.Height, display.CellWidth, display.CellHeight)
	m.screen.Resize(m.view.Cols, m.view.Rows+hudRows)
	m.help.Width = msg.Width

	if !m.sim.Started() {
		m.sim.Restart(m.view.Bounds())
	}

	return m, nil
}

// handleTick advances the simulation by the real time since the last tick,
// clamped so a stalled terminal cannot teleport the snake.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.interval
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now
	dt = min(max(dt, 0), m.maxStep)

	res := m.sim.Tick(dt, m.view.Bounds())

	// Save the run on game over (once)
	if res.Ended && !m.runSaved {
		m.session.SaveRun(m.sim.Snapshot())
		m.runSaved = true
	}

	return m, tickCmd(m.interval)
}

func (m *Model) restart() {
	m.sim.Restart(m.view.Bounds())
	m.runSaved = false
}

// saveScreenshot saves the current frame as plain text.
func (m *Model) saveScreenshot() {
	drawFrame(m.screen, m.view, m.sim.Snapshot())

	home, err := os.UserHomeDir()
	if err != nil {
		m.session.Log().Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".glide", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.session.Log().Warn("screenshot failed", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", snake.GameID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.session.Log().Warn("screenshot failed", "error", err)
		return
	}
	m.session.Log().Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, m.view, m.sim.Snapshot())
	body := RenderScreen(m.screen)

	// Full help grows upward over the bottom of the field
	helpView := m.help.View(m.keys)
	if extra := lipgloss.Height(helpView) - helpRows; extra > 0 {
		lines := strings.Split(body, "\n")
		body = strings.Join(lines[:max(len(lines)-extra, 0)], "\n")
	}

	return body + "\n" + helpStyle.Render(helpView)
}

// Simulation returns the simulation driven by this model.
func (m Model) Simulation() *snake.Simulation {
	return m.sim
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one game.
func Run(s registry.Session) error {
	p := tea.NewProgram(
		NewModel(s, false),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
