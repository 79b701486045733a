package websocket

import (
	"context"
	"encoding/json"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

// AllSessions is the session ID a spectator uses to watch every session.
const AllSessions = "*"

// Message event names.
const (
	EventPuzzle         = "puzzle"
	EventSessionStarted = "session_started"
	EventSessionEnded   = "session_ended"
)

// Message is one JSON frame sent to spectators.
type Message struct {
	SessionID string `json:"session_id"`
	Event     string `json:"event"`
	Data      any    `json:"data,omitempty"`
}

// SessionInfo describes a live game session.
type SessionInfo struct {
	ID      string    `json:"id"`
	Game    string    `json:"game"`
	Player  string    `json:"player"`
	Started time.Time `json:"started"`
}

// Hub maintains the set of active spectators and broadcasts messages.
// All spectator bookkeeping happens on the Run goroutine.
type Hub struct {
	logger *log.Logger

	// Registered clients by watched session ID
	sessions map[string]map[*Client]bool

	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu   sync.RWMutex
	live map[string]SessionInfo
}

// NewHub creates a new hub. A nil logger discards output.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		logger:     logger,
		sessions:   make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		live:       make(map[string]SessionInfo),
	}
}

// Run starts the hub's event loop and blocks until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for _, clients := range h.sessions {
			for client := range clients {
				h.unregisterClient(client)
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// Open marks a game session as live and notifies spectators.
func (h *Hub) Open(info SessionInfo) {
	if info.Started.IsZero() {
		info.Started = time.Now()
	}
	h.mu.Lock()
	h.live[info.ID] = info
	h.mu.Unlock()

	h.send(&Message{SessionID: info.ID, Event: EventSessionStarted, Data: info})
}

// Close marks a game session as ended and notifies spectators.
func (h *Hub) Close(sessionID string) {
	h.mu.Lock()
	delete(h.live, sessionID)
	h.mu.Unlock()

	h.send(&Message{SessionID: sessionID, Event: EventSessionEnded})
}

// Sessions returns the live game sessions sorted by ID.
func (h *Hub) Sessions() []SessionInfo {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]SessionInfo, 0, len(h.live))
	for _, info := range h.live {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Publish forwards a puzzle event from a game session.
func (h *Hub) Publish(sessionID string, e puzzle.Event) {
	h.send(&Message{SessionID: sessionID, Event: EventPuzzle, Data: e})
}

// Observer returns a puzzle observer that publishes to sessionID.
func (h *Hub) Observer(sessionID string) puzzle.Observer {
	return func(e puzzle.Event) {
		h.Publish(sessionID, e)
	}
}

// send queues a message without blocking the game loop.
// Messages are dropped when the hub is stopped or backed up.
func (h *Hub) send(m *Message) {
	select {
	case <-h.done:
	case h.broadcast <- m:
	default:
		h.logger.Warn("broadcast queue full, dropping message", "session", m.SessionID, "event", m.Event)
	}
}

// registerClient adds a client to the session it watches.
func (h *Hub) registerClient(client *Client) {
	if h.sessions[client.sessionID] == nil {
		h.sessions[client.sessionID] = make(map[*Client]bool)
	}
	h.sessions[client.sessionID][client] = true

	h.logger.Info("spectator joined", "session", client.sessionID, "watchers", len(h.sessions[client.sessionID]))
}

// unregisterClient removes a client and closes its send channel.
func (h *Hub) unregisterClient(client *Client) {
	clients, ok := h.sessions[client.sessionID]
	if !ok || !clients[client] {
		return
	}
	delete(clients, client)
	close(client.send)

	if len(clients) == 0 {
		delete(h.sessions, client.sessionID)
	}

	h.logger.Info("spectator left", "session", client.sessionID, "watchers", len(clients))
}

// broadcastMessage delivers a message to the session's spectators and to wildcard spectators.
func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("failed to marshal broadcast message", "err", err)
		return
	}

	targets := []string{message.SessionID}
	if message.SessionID != AllSessions {
		targets = append(targets, AllSessions)
	}

	for _, id := range targets {
		for client := range h.sessions[id] {
			select {
			case client.send <- data:
			default:
				// Slow spectator
				h.unregisterClient(client)
			}
		}
	}
}
