package game

// Snapshot is the full session state sent to clients. Collections are copies;
// mutating a snapshot never touches the live session.
type Snapshot struct {
	UsedWords   []string       `json:"usedWords"`
	CurrentTurn int            `json:"currentTurn"`
	Scores      map[string]int `json:"scores"`
	Players     []string       `json:"players"`
}

// Rejection is sent to the submitting player when a move fails validation.
type Rejection struct {
	Reason Reason
}

// GameOver announces the winner of the round.
type GameOver struct {
	Winner string `json:"winner"`
}

// Event is an outbound notification produced by a session transition.
// An empty To means broadcast to every connection; otherwise the message goes
// to that player only. Msg is one of Snapshot, Rejection or GameOver.
type Event struct {
	To  string
	Msg any
}

func toPlayer(id string, msg any) Event { return Event{To: id, Msg: msg} }
func toAll(msg any) Event               { return Event{Msg: msg} }
