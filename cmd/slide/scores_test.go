package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-slide/internal/storage"
)

func openScoresStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	records := []storage.SolveRecord{
		{GameID: "8puzzle", GridSize: 3, Moves: 22, Duration: 14 * time.Second, Player: "alice"},
		{GameID: "8puzzle", GridSize: 3, Moves: 18, Duration: 20 * time.Second, Player: "bob"},
		{GameID: "15puzzle", GridSize: 4, Moves: 64, Duration: 95 * time.Second, Player: "alice"},
	}
	for _, r := range records {
		if _, err := store.SaveSolve(r); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}
	return store
}

func TestPrintBoardScores(t *testing.T) {
	store := openScoresStore(t)

	var buf bytes.Buffer
	if err := printBoardScores(&buf, store, "8puzzle", 10); err != nil {
		t.Fatalf("printBoardScores() failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "8-Puzzle (3x3)") {
		t.Errorf("missing board title:\n%s", out)
	}
	bob, alice := strings.Index(out, "bob"), strings.Index(out, "alice")
	if bob < 0 || alice < 0 || bob > alice {
		t.Errorf("fewest moves should rank first:\n%s", out)
	}
	if !strings.Contains(out, "Solves: 2  Best: 18 moves") {
		t.Errorf("missing stats line:\n%s", out)
	}
}

func TestPrintAllStats(t *testing.T) {
	store := openScoresStore(t)

	var buf bytes.Buffer
	if err := printAllStats(&buf, store); err != nil {
		t.Fatalf("printAllStats() failed: %v", err)
	}
	out := buf.String()

	eight, fifteen := strings.Index(out, "8puzzle"), strings.Index(out, "15puzzle")
	if eight < 0 || fifteen < 0 {
		t.Fatalf("every solved board should be listed:\n%s", out)
	}
	if fifteen > eight {
		t.Errorf("boards should be sorted by ID:\n%s", out)
	}
	if !strings.Contains(out, "1:35.0") {
		t.Errorf("missing 15puzzle fastest time:\n%s", out)
	}
}

func TestPrintAllStatsEmpty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printAllStats(&buf, store); err != nil {
		t.Fatalf("printAllStats() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No solves recorded yet.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrintPlayerSolves(t *testing.T) {
	store := openScoresStore(t)

	var buf bytes.Buffer
	if err := printPlayerSolves(&buf, store, "alice", 10); err != nil {
		t.Fatalf("printPlayerSolves() failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "8puzzle") || !strings.Contains(out, "15puzzle") {
		t.Errorf("alice solved both boards:\n%s", out)
	}
	if strings.Contains(out, "  18  ") {
		t.Errorf("bob's solve should not appear:\n%s", out)
	}
}

func TestClearedBoardHasNoScores(t *testing.T) {
	store := openScoresStore(t)
	if err := store.ClearSolves("8puzzle"); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := printBoardScores(&buf, store, "8puzzle", 10); err != nil {
		t.Fatalf("printBoardScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No solves recorded yet.") {
		t.Errorf("cleared board still has solves:\n%s", buf.String())
	}

	buf.Reset()
	if err := printAllStats(&buf, store); err != nil {
		t.Fatalf("printAllStats() failed: %v", err)
	}
	if strings.Contains(buf.String(), "8puzzle") || !strings.Contains(buf.String(), "15puzzle") {
		t.Errorf("clearing one board should leave the others:\n%s", buf.String())
	}
}
