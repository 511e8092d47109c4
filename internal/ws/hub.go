// Package ws is the transport layer: it owns the websocket connections,
// translates connect/disconnect/newWord into session transitions, and fans
// the resulting notifications back out to one or all connections.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"wordchain/internal/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Clients connect from arbitrary origins; identity is the ephemeral
	// connection ID, so there is nothing for a cross-origin page to steal.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub tracks every live connection and routes messages between them and the
// shared session.
type Hub struct {
	session *game.Session

	mu      sync.Mutex
	clients map[string]*Client
}

// NewHub creates a hub around the given session.
func NewHub(session *game.Session) *Hub {
	return &Hub{
		session: session,
		clients: make(map[string]*Client),
	}
}

// ServeWS upgrades the request to a websocket and runs the connection's
// lifecycle: assign an ID, greet, join the session, then pump messages until
// the peer disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := newClient(uuid.NewString(), conn)

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()

	log.Info().Str("player", c.id).Msg("client connected")

	go c.writePump()

	if msg, err := encode(welcomeData{PlayerID: c.id}); err == nil {
		c.enqueue(msg)
	}
	h.dispatch(h.session.Join(c.id))

	c.readPump(h)
}

// handleMessage decodes one inbound frame and applies it to the session.
// Malformed or unknown messages are logged and ignored.
func (h *Hub) handleMessage(c *Client, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Debug().Err(err).Str("player", c.id).Msg("undecodable message")
		return
	}

	switch env.Type {
	case msgNewWord:
		var d newWordData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			log.Debug().Err(err).Str("player", c.id).Msg("undecodable newWord payload")
			return
		}
		events := h.session.SubmitMove(context.Background(), c.id, d.Word)
		h.dispatch(events)
	default:
		log.Debug().Str("type", env.Type).Str("player", c.id).Msg("unknown message type")
	}
}

// drop unregisters a connection and reconciles the session.
func (h *Hub) drop(c *Client) {
	h.mu.Lock()
	if cur, ok := h.clients[c.id]; ok && cur == c {
		delete(h.clients, c.id)
		close(c.send)
	}
	h.mu.Unlock()

	log.Info().Str("player", c.id).Msg("client disconnected")
	h.dispatch(h.session.Leave(c.id))
}

// dispatch delivers session notifications: an event with a recipient goes to
// that connection only, the rest are broadcast.
func (h *Hub) dispatch(events []game.Event) {
	for _, ev := range events {
		msg, err := encode(ev.Msg)
		if err != nil {
			log.Error().Err(err).Msg("dropping unencodable event")
			continue
		}

		h.mu.Lock()
		if ev.To != "" {
			if c, ok := h.clients[ev.To]; ok {
				c.enqueue(msg)
			}
		} else {
			for _, c := range h.clients {
				c.enqueue(msg)
			}
		}
		h.mu.Unlock()
	}
}
