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

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/engine"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/render"
)

// chromeRows is the number of terminal rows used by the HUD and help lines.
const chromeRows = 2

var hudStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

func init() {
	registry.Register("tui", func() registry.Backend { return &Backend{} })
}

// Backend is the Bubble Tea backend.
type Backend struct{}

func (b *Backend) ID() string    { return "tui" }
func (b *Backend) Title() string { return "Bubble Tea terminal" }

// Run starts the Bubble Tea program for eng.
func (b *Backend) Run(eng *engine.Engine, opts registry.Options) error {
	model := NewModel(eng, opts.Runtime, opts.Config.Render.CellWidth, opts.Config.Render.CellHeight)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

// Model is the Bubble Tea model running the platformer.
type Model struct {
	eng      *engine.Engine
	screen   *core.Screen
	cells    *render.Cells
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a model drawing eng on a terminal of cfg's size. The
// game area leaves room for the HUD and help lines.
func NewModel(eng *engine.Engine, cfg core.RuntimeConfig, cellW, cellH int) Model {
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-chromeRows, 1))

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		eng:    eng,
		screen: screen,
		cells:  render.NewCells(screen, cellW, cellH),
		keys:   DefaultKeyMap(),
		help:   h,
		config: cfg,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
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
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	k, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.eng.Input.Press(k)

	return m, nil
}

// handleResize processes window resize events. The world keeps running;
// only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-chromeRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the world and redraws the game area.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.eng.Cycle(m.cells)
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".platformer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("platformer_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the HUD, the game area and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		hudStyle.Render(m.eng.Status().String()),
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
}
