package tui

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/games/slide"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

// newEightPuzzle returns an 8-puzzle whose shuffle is a no-op, so tests can
// solve it by hand.
func newEightPuzzle() *slide.Game {
	g := slide.New(slide.Variants[0])
	cfg := config.DefaultSlideConfig()
	cfg.Shuffle.Moves = 0
	g.UseConfig(cfg)
	return g
}

func send(m GameModel, msg tea.Msg) GameModel {
	nm, _ := m.Update(msg)
	return nm.(GameModel)
}

func ticks(m GameModel, n int) GameModel {
	for range n {
		m = send(m, TickMsg(time.Now()))
	}
	return m
}

// playRound shuffles, slides one tile out and back, and waits for the animations.
func playRound(m GameModel) GameModel {
	m = ticks(send(m, runeKey(' ')), 1)
	m = ticks(send(m, runeKey('d')), 30)
	m = ticks(send(m, runeKey('a')), 30)
	return m
}

func TestGameModelSavesEachSolveOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewGameModel(newEightPuzzle(), store, testRuntime(), GameOptions{Player: "tester"})
	m.Init()

	m = playRound(m)
	if !m.State().Solved {
		t.Fatalf("state = %+v, want solved", m.State())
	}
	m = ticks(m, 10)

	solves, err := store.BestSolves("8puzzle", 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(solves) != 1 {
		t.Fatalf("Expected 1 solve, got %d", len(solves))
	}
	got := solves[0]
	if got.Moves != 2 || got.GridSize != 3 || got.Player != "tester" {
		t.Errorf("solve = %+v", got)
	}
	if got.Duration <= 0 {
		t.Errorf("Duration = %v, want > 0", got.Duration)
	}

	m = playRound(m)
	if m.State().Round != 2 {
		t.Fatalf("round = %d, want 2", m.State().Round)
	}
	solves, _ = store.BestSolves("8puzzle", 10)
	if len(solves) != 2 {
		t.Errorf("Expected 2 solves after second round, got %d", len(solves))
	}
}

func TestGameModelSavesAfterReset(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewGameModel(newEightPuzzle(), store, testRuntime(), GameOptions{})
	m.Init()
	m = playRound(m)

	m = ticks(send(m, runeKey('r')), 1)
	if m.State().Round != 0 {
		t.Fatalf("round after reset = %d", m.State().Round)
	}
	m = playRound(m)

	solves, _ := store.BestSolves("8puzzle", 10)
	if len(solves) != 2 {
		t.Errorf("Expected 2 solves across a reset, got %d", len(solves))
	}
	if solves[0].Player != "local" {
		t.Errorf("Player = %q, want local", solves[0].Player)
	}
}

func TestGameModelMousePress(t *testing.T) {
	m := NewGameModel(newEightPuzzle(), nil, testRuntime(), GameOptions{})
	m.Init()

	m = send(m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	if len(m.inputFrame.Presses) != 0 {
		t.Error("motion should not count as a press")
	}

	m = send(m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(m.inputFrame.Presses) != 1 || m.inputFrame.Presses[0] != (core.Point{X: 10, Y: 5}) {
		t.Errorf("presses = %v", m.inputFrame.Presses)
	}

	m = ticks(m, 1)
	if len(m.inputFrame.Presses) != 0 {
		t.Error("presses should clear after a tick")
	}
}

func TestGameModelBackOnlyWhenEmbedded(t *testing.T) {
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m := NewGameModel(newEightPuzzle(), nil, testRuntime(), GameOptions{})
	m.Init()
	if send(m, esc).BackToMenu() {
		t.Error("standalone game should ignore back")
	}

	m = NewGameModel(newEightPuzzle(), nil, testRuntime(), GameOptions{Embedded: true})
	m.Init()
	if !send(m, esc).BackToMenu() {
		t.Error("embedded game should go back to menu")
	}
}

func TestGameModelExitOnBack(t *testing.T) {
	m := NewGameModel(newEightPuzzle(), nil, testRuntime(), GameOptions{ExitOnBack: true})
	m.Init()

	nm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !nm.(GameModel).BackToMenu() {
		t.Error("back should be recorded")
	}
	if cmd == nil {
		t.Fatal("back should end the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
	}
}

func TestGameModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := NewGameModel(newEightPuzzle(), nil, testRuntime(), GameOptions{})
	m.Init()
	send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	dir := filepath.Join(home, ".slide", "screenshots")
	for _, pattern := range []string{"8puzzle_*.txt", "8puzzle_*.json"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil || len(matches) != 1 {
			t.Fatalf("%s: matches = %v, err = %v", pattern, matches, err)
		}
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "8puzzle_*.json"))
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	var snap slide.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("snapshot is not JSON: %v", err)
	}
	if snap.GridSize != 3 || len(snap.Layout) != 9 {
		t.Errorf("snapshot = %+v, want a 3x3 layout", snap)
	}
}

func TestGameModelResizeKeepsRound(t *testing.T) {
	m := NewGameModel(newEightPuzzle(), nil, testRuntime(), GameOptions{})
	m.Init()
	m = ticks(send(m, runeKey(' ')), 1)

	m = ticks(send(m, tea.WindowSizeMsg{Width: 100, Height: 30}), 1)
	if m.State().Round != 1 {
		t.Errorf("round = %d after resize, want 1", m.State().Round)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(newEightPuzzle(), nil, testRuntime(), GameOptions{})
	m.Init()
	m = send(m, runeKey('q'))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit and blank the view")
	}
}
