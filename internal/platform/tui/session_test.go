package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slide/internal/transport/websocket"
)

func sendSession(m SessionModel, msg tea.Msg) SessionModel {
	nm, _ := m.Update(msg)
	return nm.(SessionModel)
}

func TestSessionMenuGameMenu(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	hub := websocket.NewHub(nil)
	m := NewSessionModel(SessionDeps{Hub: hub}, testRuntime(), "alice")

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if m.gameModel.game.ID() != "15puzzle" {
		t.Errorf("started %q, want the default 15puzzle", m.gameModel.game.ID())
	}
	sessions := hub.Sessions()
	if len(sessions) != 1 || sessions[0].Player != "alice" {
		t.Fatalf("live sessions = %+v", sessions)
	}

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.gameModel != nil {
		t.Errorf("screen = %v, want menu", m.screen)
	}
	if len(hub.Sessions()) != 0 {
		t.Error("session should end when leaving the game")
	}
	if m.View() == "" {
		t.Error("menu view should not be empty")
	}
}

func TestSessionCloseAfterDisconnect(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	hub := websocket.NewHub(nil)
	initial := NewSessionModel(SessionDeps{Hub: hub}, testRuntime(), "carol")

	m := sendSession(initial, tea.KeyMsg{Type: tea.KeyEnter})
	m = sendSession(m, runeKey(' '))
	if m.screen != screenGame || len(hub.Sessions()) != 1 {
		t.Fatalf("screen = %v, live sessions = %+v", m.screen, hub.Sessions())
	}

	// The connection drops mid-game: no quit key reaches the model and
	// only the copy held by the SSH handler is left to clean up.
	initial.Close()
	if live := hub.Sessions(); len(live) != 0 {
		t.Errorf("live sessions after disconnect = %+v, want none", live)
	}

	initial.Close()
	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || len(hub.Sessions()) != 0 {
		t.Errorf("leaving after disconnect: screen = %v, live = %+v", m.screen, hub.Sessions())
	}
}

func TestSessionCloseWithoutHub(t *testing.T) {
	m := NewSessionModel(SessionDeps{}, testRuntime(), "dave")
	m.Close()
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(SessionDeps{}, testRuntime(), "bob")

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, want scores", m.screen)
	}

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}

	m = sendSession(m, runeKey('q'))
	if !m.quitting {
		t.Error("q in the menu should end the session")
	}
}

func TestMenuDifficultyCycle(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())
	if m.Difficulty() != "config" {
		t.Fatalf("initial difficulty = %q", m.Difficulty())
	}

	send := func(msg tea.KeyMsg) {
		nm, _ := m.Update(msg)
		m = nm.(MenuModel)
	}

	send(tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != "easy" {
		t.Errorf("after right = %q, want easy", m.Difficulty())
	}
	send(tea.KeyMsg{Type: tea.KeyLeft})
	send(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != "hard" {
		t.Errorf("after two lefts = %q, want hard", m.Difficulty())
	}

	send(tea.KeyMsg{Type: tea.KeyUp})
	send(tea.KeyMsg{Type: tea.KeyEnter})
	res := m.result()
	if res.GameID != "8puzzle" || res.Difficulty != "hard" {
		t.Errorf("result = %+v", res)
	}
}
