package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-snickers/internal/core"
	"github.com/vovakirdan/flappy-snickers/internal/games/flappy"
)

// Model is the Bubble Tea model running one game.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	canvas     *CellCanvas
	config     core.RuntimeConfig
	keys       KeyMap
	initials   textinput.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *flappy.Game, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	ti := textinput.New()
	ti.CharLimit = core.MaxNameLen
	ti.Prompt = ""

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	fieldW, fieldH := game.FieldSize()
	return Model{
		game:       game,
		screen:     screen,
		canvas:     NewCellCanvas(screen, fieldW, fieldH),
		config:     cfg,
		keys:       DefaultKeyMap(),
		initials:   ti,
		inputFrame: core.NewInputFrame(),
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
		if m.game.NeedsInitials() {
			return m.handleInitialsKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.game.NeedsInitials() {
			MapMouseToFrame(msg, &m.inputFrame)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleInitialsKey feeds the initials prompt. Letters go to the text
// input; enter submits and esc skips.
func (m Model) handleInitialsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		m.game.SubmitInitials(m.initials.Value())
		m.closeInitials()
		return m, nil
	case key.Matches(msg, m.keys.Skip):
		m.game.SkipInitials()
		m.closeInitials()
		return m, nil
	}

	var cmd tea.Cmd
	m.initials, cmd = m.initials.Update(msg)
	m.game.SetInitialsDraft(m.initials.Value())
	return m, cmd
}

func (m *Model) closeInitials() {
	m.initials.Reset()
	m.initials.Blur()
}

// handleTick advances the game by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	var cmds []tea.Cmd
	if m.game.NeedsInitials() && !m.initials.Focused() {
		m.initials.Reset()
		cmds = append(cmds, m.initials.Focus())
	}
	cmds = append(cmds, tickCmd(m.config.TickRate))
	return m, tea.Batch(cmds...)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m Model) draw() {
	m.canvas.Begin()
	m.game.Render(m.canvas)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game *flappy.Game, cfg core.RuntimeConfig) error {
	model := NewModel(game, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap
	)

	_, err := p.Run()
	return err
}
