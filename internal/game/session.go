package game

import (
	"context"
	"sync"
)

// Rules holds the tunable constants of a round.
type Rules struct {
	StartingScore int
	MinWordLength int
	SpeedBonus    int
}

// DefaultRules returns the standard word-chain rules.
func DefaultRules() Rules {
	return Rules{
		StartingScore: 100,
		MinWordLength: 4,
		SpeedBonus:    5,
	}
}

// Session is the single process-wide game aggregate: the player roster in
// turn order, per-player scores, the history of accepted words, and the turn
// cursor. All access is serialized through its mutex; every transition
// returns the notifications to deliver, so the session itself never touches
// the transport.
type Session struct {
	mu      sync.Mutex
	rules   Rules
	lexicon Lexicon

	players   []string
	scores    map[string]int
	usedWords []string
	usedSet   map[string]struct{}
	turn      int
}

// NewSession creates an empty session.
func NewSession(lexicon Lexicon, rules Rules) *Session {
	return &Session{
		rules:   rules,
		lexicon: lexicon,
		scores:  make(map[string]int),
		usedSet: make(map[string]struct{}),
	}
}

// Join adds a player to the roster with the starting score. Joining an empty
// session resets the turn cursor to the newcomer. A player already present is
// just re-sent the snapshot. The joiner always receives an individual
// snapshot; a join that changed the roster is also broadcast.
func (s *Session) Join(playerID string) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasLocked(playerID) {
		return []Event{toPlayer(playerID, s.snapshotLocked())}
	}

	if len(s.players) == 0 {
		s.turn = 0
	}
	s.players = append(s.players, playerID)
	s.scores[playerID] = s.rules.StartingScore

	snap := s.snapshotLocked()
	return []Event{toPlayer(playerID, snap), toAll(snap)}
}

// SubmitMove validates and applies a word submission.
//
// Validation is two-phase: the synchronous checks (turn ownership,
// uniqueness, chaining, length) run under the lock, then the dictionary
// lookup runs with the lock released, and the synchronous checks run again
// before anything is mutated — a disconnect or another accepted move may have
// changed the session while the lookup was in flight. A lookup error counts
// as "word does not exist".
//
// If the submitting player left the roster during the lookup the verdict is
// discarded and no events are produced.
func (s *Session) SubmitMove(ctx context.Context, playerID, word string) []Event {
	m := Move{PlayerID: playerID, Word: word}

	s.mu.Lock()
	if rej := s.validateLocked(m); rej != nil {
		s.mu.Unlock()
		return []Event{toPlayer(playerID, *rej)}
	}
	s.mu.Unlock()

	exists, err := s.lexicon.Exists(ctx, word)
	if err != nil {
		exists = false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasLocked(playerID) {
		return nil
	}
	if rej := s.validateLocked(m); rej != nil {
		return []Event{toPlayer(playerID, *rej)}
	}
	if !exists {
		return []Event{toPlayer(playerID, Rejection{Reason: NotInDictionary})}
	}

	s.usedWords = append(s.usedWords, word)
	s.usedSet[word] = struct{}{}

	penalty := (len(word) - s.rules.MinWordLength) + s.rules.SpeedBonus
	s.scores[playerID] -= penalty

	if s.scores[playerID] <= 0 {
		s.resetLocked()
		return []Event{toAll(GameOver{Winner: playerID})}
	}

	s.turn = (s.turn + 1) % len(s.players)
	return []Event{toAll(s.snapshotLocked())}
}

// Leave removes a player and their score. An emptied roster resets the whole
// session. Otherwise the turn cursor is clamped with currentTurn mod roster
// size, which can skip or repeat a logical turn depending on which index was
// removed; that clamp is deliberate, matching the shipped behavior. The
// resulting snapshot is broadcast either way.
func (s *Session) Leave(playerID string) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasLocked(playerID) {
		return nil
	}

	for i, p := range s.players {
		if p == playerID {
			s.players = append(s.players[:i], s.players[i+1:]...)
			break
		}
	}
	delete(s.scores, playerID)

	if len(s.players) == 0 {
		s.resetLocked()
	} else {
		s.turn = s.turn % len(s.players)
	}

	return []Event{toAll(s.snapshotLocked())}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) hasLocked(playerID string) bool {
	_, ok := s.scores[playerID]
	return ok
}

// resetLocked clears roster, scores, word history and turn cursor together.
func (s *Session) resetLocked() {
	s.players = nil
	s.scores = make(map[string]int)
	s.usedWords = nil
	s.usedSet = make(map[string]struct{})
	s.turn = 0
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		UsedWords:   make([]string, len(s.usedWords)),
		CurrentTurn: s.turn,
		Scores:      make(map[string]int, len(s.scores)),
		Players:     make([]string, len(s.players)),
	}
	copy(snap.UsedWords, s.usedWords)
	copy(snap.Players, s.players)
	for id, score := range s.scores {
		snap.Scores[id] = score
	}
	return snap
}
