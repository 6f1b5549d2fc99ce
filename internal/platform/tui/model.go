package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/velikanov/cliffhop/internal/core"
	"github.com/velikanov/cliffhop/internal/registry"
	"github.com/velikanov/cliffhop/internal/storage"
)

// fatalErrMsg carries an unrecoverable startup error out of Init, so the
// program can shut the terminal down cleanly before reporting it.
type fatalErrMsg struct{ err error }

// Model is the Bubble Tea model for running a game locally.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	holds     *HoldTracker
	gameState core.GameState
	fatalErr  error
	quitting  bool
	runSaved  bool // Whether the finished run has been written to storage
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		holds:     NewHoldTracker(cfg.TickRate),
	}
}

// Init initializes the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	if err := m.game.Reset(m.config); err != nil {
		return func() tea.Msg { return fatalErrMsg{err} }
	}
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

	case fatalErrMsg:
		m.fatalErr = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	actions, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	for _, action := range actions {
		// Back ends the session, but only from a settled state. Under the
		// menu command that lands back on the picker.
		if action == core.ActionBack {
			if m.gameState.GameOver || m.gameState.Paused {
				m.quitting = true
				return m, tea.Quit
			}
			continue
		}
		// Restart only means something on the game over screen.
		if action == core.ActionRestart && !m.gameState.GameOver {
			continue
		}
		m.holds.Press(action)
	}

	return m, nil
}

// handleResize processes window resize events. The game draws through a
// world-to-cell projection, so a resize only needs a bigger buffer; the run
// keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.holds.Frame())
	m.gameState = result.State

	// Persist each finished run once. The game handles restarting itself,
	// so a cleared game-over flag means a new run has begun.
	if m.gameState.GameOver {
		if !m.runSaved {
			if m.store != nil && m.gameState.Score > 0 {
				//nolint:errcheck // Best-effort save, play continues regardless
				m.store.SaveRun(m.game.ID(), m.gameState.Score, m.gameState.Seed, m.gameState.Ticks)
			}
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".cliffhop", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model. It returns the
// game's startup error if the session could not begin.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(Model); ok && m.fatalErr != nil {
		return m.fatalErr
	}
	return nil
}
