package ws

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum inbound message size in bytes.
	maxMessageSize = 4096

	// Outbound queue depth per connection.
	sendBuffer = 16
)

// Client is one websocket connection and the player identity bound to it.
type Client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

func newClient(id string, conn *websocket.Conn) *Client {
	return &Client{
		id:   id,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
}

// enqueue hands a message to the write pump. A client whose queue is full is
// too slow to keep up; its connection is closed, which surfaces as a
// disconnect in the read pump.
func (c *Client) enqueue(msg []byte) {
	select {
	case c.send <- msg:
	default:
		log.Warn().Str("player", c.id).Msg("send queue full, dropping connection")
		c.conn.Close()
	}
}

// writePump serializes all writes to the connection and keeps the peer alive
// with periodic pings. Runs in its own goroutine, one per connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump consumes inbound frames until the peer goes away, forwarding each
// to the hub. Runs on the connection's handler goroutine.
func (c *Client) readPump(h *Hub) {
	defer func() {
		h.drop(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("player", c.id).Msg("websocket read error")
			}
			return
		}
		h.handleMessage(c, raw)
	}
}
