package game

// Move is a candidate word submission.
type Move struct {
	PlayerID string
	Word     string
}

// validateLocked applies the synchronous move checks in their user-facing
// order: turn ownership, uniqueness, chaining, minimum length. The first
// failing check wins. The dictionary lookup is the fifth check and runs in
// SubmitMove, outside the lock.
//
// Must be called with s.mu held. Never mutates session state.
func (s *Session) validateLocked(m Move) *Rejection {
	if len(s.players) == 0 || s.players[s.turn] != m.PlayerID {
		return &Rejection{Reason: NotYourTurn}
	}
	if _, used := s.usedSet[m.Word]; used {
		return &Rejection{Reason: WordAlreadyUsed}
	}
	if n := len(s.usedWords); n > 0 {
		last := s.usedWords[n-1]
		if m.Word == "" || m.Word[0] != last[len(last)-1] {
			return &Rejection{Reason: ChainMismatch}
		}
	}
	if len(m.Word) < s.rules.MinWordLength {
		return &Rejection{Reason: TooShort}
	}
	return nil
}

// Validate runs the synchronous checks against the current state without
// mutating anything. A nil result means the move would be accepted pending
// the dictionary lookup.
func (s *Session) Validate(m Move) *Rejection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateLocked(m)
}
