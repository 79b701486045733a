package websocket

import (
	"encoding/json"
	"net/http"
)

// Handler returns the spectator HTTP endpoints.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /watch", h.handleWatch)
	mux.HandleFunc("GET /sessions", h.handleSessions)
	return mux
}

func (h *Hub) handleWatch(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = AllSessions
	}
	h.ServeWS(w, r, sessionID)
}

func (h *Hub) handleSessions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.Sessions()); err != nil {
		h.logger.Warn("failed to write sessions", "err", err)
	}
}
