package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

func newTestClient(hub *Hub, sessionID string) *Client {
	return &Client{
		hub:       hub,
		sessionID: sessionID,
		send:      make(chan []byte, 256),
	}
}

func readMessage(t *testing.T, ch <-chan []byte) Message {
	t.Helper()
	select {
	case data := <-ch:
		var m Message
		if err := json.Unmarshal(data, &m); err != nil {
			t.Fatalf("Failed to unmarshal message: %v", err)
		}
		return m
	case <-time.After(100 * time.Millisecond):
		t.Fatal("No message received within timeout")
		return Message{}
	}
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub(nil)
	c1 := newTestClient(hub, "s1")
	c2 := newTestClient(hub, "s1")

	hub.registerClient(c1)
	hub.registerClient(c2)
	if len(hub.sessions["s1"]) != 2 {
		t.Fatalf("Expected 2 clients in session, got %d", len(hub.sessions["s1"]))
	}

	hub.unregisterClient(c1)
	if !hub.sessions["s1"][c2] || len(hub.sessions["s1"]) != 1 {
		t.Error("c2 should remain registered alone")
	}
	if _, ok := <-c1.send; ok {
		t.Error("unregistered client's send channel should be closed")
	}

	hub.unregisterClient(c2)
	if _, exists := hub.sessions["s1"]; exists {
		t.Error("Session should have been cleaned up after last client unregistered")
	}

	// Unregistering twice is a no-op.
	hub.unregisterClient(c2)
}

func TestHubBroadcastRouting(t *testing.T) {
	hub := NewHub(nil)
	mine := newTestClient(hub, "s1")
	other := newTestClient(hub, "s2")
	all := newTestClient(hub, AllSessions)
	hub.registerClient(mine)
	hub.registerClient(other)
	hub.registerClient(all)

	hub.broadcastMessage(&Message{
		SessionID: "s1",
		Event:     EventPuzzle,
		Data:      puzzle.Event{Kind: puzzle.EventMoved, TileID: 7, Moves: 3},
	})

	m := readMessage(t, mine.send)
	if m.SessionID != "s1" || m.Event != EventPuzzle {
		t.Errorf("unexpected message %+v", m)
	}
	if m := readMessage(t, all.send); m.SessionID != "s1" {
		t.Errorf("wildcard got session %q", m.SessionID)
	}
	select {
	case <-other.send:
		t.Error("other session should not receive the message")
	default:
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub(nil)
	slow := &Client{hub: hub, sessionID: "s1", send: make(chan []byte)}
	hub.registerClient(slow)

	hub.broadcastMessage(&Message{SessionID: "s1", Event: EventPuzzle})
	if _, exists := hub.sessions["s1"]; exists {
		t.Error("slow client should have been unregistered")
	}
}

func TestHubLiveSessions(t *testing.T) {
	hub := NewHub(nil)
	hub.Open(SessionInfo{ID: "b", Game: "8puzzle", Player: "bob"})
	hub.Open(SessionInfo{ID: "a", Game: "15puzzle", Player: "alice"})

	sessions := hub.Sessions()
	if len(sessions) != 2 || sessions[0].ID != "a" || sessions[1].ID != "b" {
		t.Fatalf("Sessions() = %+v", sessions)
	}
	if sessions[0].Started.IsZero() {
		t.Error("Open should stamp the start time")
	}

	hub.Close("a")
	if sessions := hub.Sessions(); len(sessions) != 1 || sessions[0].ID != "b" {
		t.Errorf("after Close: %+v", sessions)
	}

	// Open and Close each queued a notification.
	if len(hub.broadcast) != 3 {
		t.Errorf("Expected 3 queued messages, got %d", len(hub.broadcast))
	}
}

func TestWebSocketWatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	server := httptest.NewServer(hub.Handler())
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/watch?session=ws-test"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	defer conn.Close()

	// Give time for registration
	time.Sleep(50 * time.Millisecond)

	observe := hub.Observer("ws-test")
	observe(puzzle.Event{Kind: puzzle.EventStateChanged, State: puzzle.StatePlay, Round: 1})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read WebSocket message: %v", err)
	}

	var msg struct {
		SessionID string       `json:"session_id"`
		Event     string       `json:"event"`
		Data      puzzle.Event `json:"data"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("Failed to unmarshal message: %v", err)
	}
	if msg.SessionID != "ws-test" || msg.Event != EventPuzzle {
		t.Errorf("unexpected envelope %+v", msg)
	}
	if msg.Data.Kind != puzzle.EventStateChanged || msg.Data.State != puzzle.StatePlay || msg.Data.Round != 1 {
		t.Errorf("unexpected event %+v", msg.Data)
	}
}

func TestSessionsEndpoint(t *testing.T) {
	hub := NewHub(nil)
	hub.Open(SessionInfo{ID: "abc", Game: "15puzzle", Player: "alice"})

	rec := httptest.NewRecorder()
	hub.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/sessions", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []SessionInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(got) != 1 || got[0].ID != "abc" || got[0].Player != "alice" {
		t.Errorf("sessions = %+v", got)
	}
}
