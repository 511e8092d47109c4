package ws

import (
	"encoding/json"
	"fmt"

	"wordchain/internal/game"
)

// Envelope frames every message on the wire, in both directions.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Inbound message types.
const msgNewWord = "newWord"

// Outbound message types.
const (
	msgWelcome     = "welcome"
	msgGameState   = "gameState"
	msgInvalidWord = "invalidWord"
	msgGameOver    = "gameOver"
)

// newWordData is a word submission. The playerId field is accepted for
// protocol compatibility but the connection's own identity always wins.
type newWordData struct {
	Word     string `json:"word"`
	PlayerID string `json:"playerId"`
}

// welcomeData tells a freshly connected client the ID the server assigned it.
type welcomeData struct {
	PlayerID string `json:"playerId"`
}

type invalidWordData struct {
	Reason string `json:"reason"`
}

// encode wraps a session notification (or welcome) in its wire envelope.
func encode(msg any) ([]byte, error) {
	var (
		typ  string
		data any
	)
	switch m := msg.(type) {
	case game.Snapshot:
		typ, data = msgGameState, m
	case game.Rejection:
		typ, data = msgInvalidWord, invalidWordData{Reason: m.Reason.Message()}
	case game.GameOver:
		typ, data = msgGameOver, m
	case welcomeData:
		typ, data = msgWelcome, m
	default:
		return nil, fmt.Errorf("unencodable message type %T", msg)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s payload: %w", typ, err)
	}
	return json.Marshal(Envelope{Type: typ, Data: raw})
}
