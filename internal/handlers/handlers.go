package handlers

import (
	"net/http"

	"wordchain/internal/ws"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	hub *ws.Hub
}

// New creates a new handler
func New(hub *ws.Hub) *Handler {
	return &Handler{hub: hub}
}

// Home is the default route greeting.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Hello World!"))
}

// HealthLive reports process liveness.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// HealthReady reports whether the game hub is wired up.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Hub not ready"))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// GameSocket upgrades the connection and hands it to the hub.
func (h *Handler) GameSocket(w http.ResponseWriter, r *http.Request) {
	h.hub.ServeWS(w, r)
}
