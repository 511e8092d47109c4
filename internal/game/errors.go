package game

// Reason identifies why a move was rejected. The wire protocol carries the
// user-facing message, not the identifier.
type Reason string

const (
	NotYourTurn     Reason = "not_your_turn"
	WordAlreadyUsed Reason = "word_already_used"
	ChainMismatch   Reason = "chain_mismatch"
	TooShort        Reason = "too_short"
	NotInDictionary Reason = "not_in_dictionary"
)

var reasonMessages = map[Reason]string{
	NotYourTurn:     "It's not your turn!",
	WordAlreadyUsed: "Word has already been used!",
	ChainMismatch:   "Word must start with the last letter of the previous word!",
	TooShort:        "Word must be at least 4 letters!",
	NotInDictionary: "Word is not in the dictionary!",
}

// Message returns the text shown to the submitting player.
func (r Reason) Message() string {
	return reasonMessages[r]
}
