package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/games/slide"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
	"github.com/vovakirdan/tui-slide/internal/registry"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

// GameOptions tunes a GameModel.
type GameOptions struct {
	// Player is recorded with each solve. Empty means "local".
	Player string

	// Logger receives puzzle events and solve notices. Nil discards them.
	Logger *log.Logger

	// Observers are attached to every board the game builds.
	Observers []puzzle.Observer

	// Embedded makes Back leave the game instead of being ignored.
	Embedded bool

	// ExitOnBack makes Back also end the program, for menu loops that
	// run each game as its own program.
	ExitOnBack bool
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       GameKeyMap
	inputFrame core.InputFrame
	gameState  core.GameState
	opts       GameOptions
	savedRound int // last round whose solve was recorded
	quitting   bool
	backToMenu bool
}

// gridSizer is implemented by games that know their board dimension.
type gridSizer interface {
	GridSize() int
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	if obs, ok := game.(registry.Observable); ok {
		obs.Observe(logEvents(opts.Logger, game.ID()))
		for _, fn := range opts.Observers {
			obs.Observe(fn)
		}
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		inputFrame: core.NewInputFrame(),
		opts:       opts,
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if c, ok := m.game.(interface{ ConfigError() error }); ok && c.ConfigError() != nil {
		m.opts.Logger.Warn("using default puzzle config", "err", c.ConfigError())
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Press(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.opts.ExitOnBack {
			m.backToMenu = true
			return m, tea.Quit
		}
		if m.opts.Embedded {
			m.backToMenu = true
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the round when the game can follow the new size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// A reset starts counting rounds from zero again.
	if m.gameState.Round < m.savedRound {
		m.savedRound = 0
	}
	if m.gameState.Solved && m.gameState.Round != m.savedRound {
		m.saveSolve()
		m.savedRound = m.gameState.Round
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveSolve records the finished round. Failures are logged, play continues.
func (m GameModel) saveSolve() {
	rec := storage.SolveRecord{
		GameID:   m.game.ID(),
		Moves:    m.gameState.Moves,
		Duration: m.gameState.Elapsed,
		Player:   m.opts.Player,
	}
	if gs, ok := m.game.(gridSizer); ok {
		rec.GridSize = gs.GridSize()
	}

	m.opts.Logger.Info("puzzle solved", "game", rec.GameID, "player", rec.Player,
		"moves", rec.Moves, "time", rec.Duration.Round(time.Millisecond))

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveSolve(rec); err != nil {
		m.opts.Logger.Warn("could not save solve", "err", err)
	}
}

// snapshotter is implemented by games that can dump their state next to a screenshot.
type snapshotter interface {
	Snapshot() slide.Snapshot
}

// saveScreenshot writes the current screen as plain text under ~/.slide/screenshots,
// plus a JSON state snapshot when the game provides one.
func (m GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".slide", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}

	base := filepath.Join(dir, fmt.Sprintf("%s_%s", m.game.ID(), time.Now().Format("20060102_150405")))
	path := base + ".txt"
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)

	s, ok := m.game.(snapshotter)
	if !ok {
		return
	}
	data, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err == nil {
		err = os.WriteFile(base+".json", data, 0o600)
	}
	if err != nil {
		m.opts.Logger.Warn("snapshot failed", "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for the given game.
// It reports whether the player asked to go back to a menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) (back bool, err error) {
	p := tea.NewProgram(
		NewGameModel(game, store, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	return ok && m.BackToMenu(), nil
}
