// Package websocket streams live puzzle events to spectators.
//
// A Hub keeps the set of connected spectators grouped by the game session
// they watch. Game sessions announce themselves with Open and Close and
// push every puzzle event through Publish; the hub fans each message out
// to the session's spectators and to wildcard spectators that watch all
// sessions at once.
//
// Endpoints served by Handler:
//
//	GET /watch?session=<id>   upgrade to a websocket for one session
//	GET /watch?session=*      upgrade to a websocket for every session
//	GET /sessions             JSON array of live session IDs
//
// Outgoing messages are JSON objects:
//
//	{"session_id": "...", "event": "puzzle", "data": {...}}
//
// Spectators never send anything meaningful; incoming frames are read and
// discarded so that pongs and close frames are processed.
//
// Usage:
//
//	hub := websocket.NewHub(logger)
//	go hub.Run(ctx)
//	http.ListenAndServe(":8080", hub.Handler())
package websocket
