// Package slide adapts the puzzle core to the platform's Game interface.
// It maps actions and pointer presses to tile activations, advances the
// animation clock once per tick, and draws the board into a core.Screen.
package slide

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
	"github.com/vovakirdan/tui-slide/internal/registry"
)

// Variant names a board size offered in menus.
type Variant struct {
	ID    string
	Title string
	Size  int // 0 takes board.grid_size from the config file
}

// Variants lists every registered board, smallest first.
var Variants = []Variant{
	{ID: "8puzzle", Title: "8-Puzzle (3x3)", Size: 3},
	{ID: "15puzzle", Title: "15-Puzzle (4x4)", Size: 4},
	{ID: "24puzzle", Title: "24-Puzzle (5x5)", Size: 5},
	{ID: "slide", Title: "Slide (configured)", Size: 0},
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Game runs one sliding-tile board.
type Game struct {
	variant Variant

	configPath string
	difficulty config.DifficultyPreset
	override   *config.SlideConfig
	configErr  error

	rng       *rand.Rand
	p         *puzzle.Puzzle
	observers []puzzle.Observer

	runtime core.RuntimeConfig
	tick    uint64
	layout  layout
	paused  bool
}

// New creates a game for the given variant. Call Reset before use.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.variant.ID }

// Title returns the display name.
func (g *Game) Title() string { return g.variant.Title }

// SetConfigPath points the next Reset at a YAML file instead of the default search path.
func (g *Game) SetConfigPath(path string) {
	g.configPath = path
}

// SetDifficulty selects a shuffle preset for the next Reset.
func (g *Game) SetDifficulty(preset string) error {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		return err
	}
	g.difficulty = p
	return nil
}

// UseConfig bypasses file loading and uses cfg on the next Reset.
func (g *Game) UseConfig(cfg config.SlideConfig) {
	g.override = &cfg
}

// ConfigError returns the error from the last config load, if any.
// The game falls back to defaults when loading fails.
func (g *Game) ConfigError() error { return g.configErr }

// Observe registers fn for puzzle events of this and every later board.
func (g *Game) Observe(fn puzzle.Observer) {
	g.observers = append(g.observers, fn)
	if g.p != nil {
		g.p.Subscribe(fn)
	}
}

// GridSize returns the board dimension, or 0 before the first Reset.
func (g *Game) GridSize() int {
	if g.p == nil {
		return 0
	}
	return g.p.Grid().Size()
}

// Puzzle exposes the underlying puzzle.
func (g *Game) Puzzle() *puzzle.Puzzle { return g.p }

// Reset builds a fresh, solved board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.runtime = cfg
	g.tick = 0
	g.paused = false

	pc := g.loadConfig().Puzzle()
	p, err := puzzle.New(pc, g.rng)
	if err != nil {
		g.configErr = err
		p, _ = puzzle.New(puzzle.DefaultConfig(), g.rng)
	}
	g.p = p
	for _, fn := range g.observers {
		g.p.Subscribe(fn)
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// loadConfig reads the board settings and checks them once the difficulty
// preset and the variant's board size are applied.
func (g *Game) loadConfig() config.SlideConfig {
	sc, err := g.readConfig()
	if err == nil {
		g.applyOverrides(&sc)
		err = sc.Validate()
	}
	g.configErr = err
	if err != nil {
		sc = config.DefaultSlideConfig()
		g.applyOverrides(&sc)
	}
	return sc
}

func (g *Game) readConfig() (config.SlideConfig, error) {
	if g.override != nil {
		return *g.override, nil
	}
	return config.ReadSlide(g.configPath)
}

func (g *Game) applyOverrides(sc *config.SlideConfig) {
	config.ApplySlidePreset(sc, g.difficulty)
	if g.variant.Size > 0 {
		sc.Board.GridSize = g.variant.Size
	}
}

// Resize re-lays out the board for a new terminal size. The round is kept.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.p != nil {
		g.layout = newLayout(g.p.Grid().Size(), w, h)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		cfg := g.runtime
		cfg.Seed = g.rng.Int63()
		g.Reset(cfg)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || !g.layout.fits {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionShuffle) {
		g.p.Shuffle()
	}

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if !input.Has(a) {
			continue
		}
		if tile := g.p.TileToward(actionDir(a)); tile != nil {
			tile.Press()
		}
	}

	for _, pt := range input.Presses {
		if tile := g.tileAt(pt); tile != nil {
			tile.Press()
		}
	}

	g.p.Advance(g.runtime.TickSeconds())

	return core.StepResult{State: g.State()}
}

// actionDir returns the direction a tile travels for a movement action.
// Up slides the tile below the gap upward, and so on.
func actionDir(a core.Action) puzzle.Coord {
	switch a {
	case core.ActionUp:
		return puzzle.C(0, 1)
	case core.ActionDown:
		return puzzle.C(0, -1)
	case core.ActionLeft:
		return puzzle.C(-1, 0)
	case core.ActionRight:
		return puzzle.C(1, 0)
	default:
		return puzzle.Coord{}
	}
}

// State returns the current round status.
func (g *Game) State() core.GameState {
	if g.p == nil {
		return core.GameState{}
	}
	solved := g.p.Round() > 0 && g.p.State() == puzzle.StateSolved
	return core.GameState{
		Round:    g.p.Round(),
		Moves:    g.p.Moves(),
		Elapsed:  seconds(g.p.Elapsed()),
		Solved:   solved,
		GameOver: solved,
		Paused:   g.paused,
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
