package game

import (
	"context"
	"testing"
)

func TestValidate_ChecksRunInUserFacingOrder(t *testing.T) {
	s, _ := acceptingSession("a", "b")
	// Seed the word history so chaining applies.
	s.SubmitMove(context.Background(), "a", "wordy")

	tests := []struct {
		name string
		move Move
		want Reason
	}{
		{
			// Out of turn beats every other defect.
			name: "turn ownership first",
			move: Move{PlayerID: "a", Word: "xy"},
			want: NotYourTurn,
		},
		{
			// A replayed word also breaks the chain; uniqueness wins.
			name: "uniqueness before chaining",
			move: Move{PlayerID: "b", Word: "wordy"},
			want: WordAlreadyUsed,
		},
		{
			// Breaks the chain and is too short; chaining wins.
			name: "chaining before length",
			move: Move{PlayerID: "b", Word: "abc"},
			want: ChainMismatch,
		},
		{
			// Chains correctly but is too short.
			name: "length last",
			move: Move{PlayerID: "b", Word: "yes"},
			want: TooShort,
		},
		{
			name: "empty word",
			move: Move{PlayerID: "b", Word: ""},
			want: ChainMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rej := s.Validate(tt.move)
			if rej == nil {
				t.Fatalf("expected rejection %v, move was accepted", tt.want)
			}
			if rej.Reason != tt.want {
				t.Errorf("expected %v, got %v", tt.want, rej.Reason)
			}
		})
	}
}

func TestValidate_FirstWordNeedsNoChain(t *testing.T) {
	s, _ := acceptingSession("a")

	if rej := s.Validate(Move{PlayerID: "a", Word: "zebra"}); rej != nil {
		t.Errorf("first word of a round should not be chain-checked, got %v", rej.Reason)
	}
}

func TestValidate_ShortFirstWordRejected(t *testing.T) {
	s, _ := acceptingSession("a")

	rej := s.Validate(Move{PlayerID: "a", Word: "cat"})
	if rej == nil || rej.Reason != TooShort {
		t.Errorf("expected TooShort, got %v", rej)
	}
}

func TestValidate_EmptySessionRejectsEveryone(t *testing.T) {
	s, _ := acceptingSession()

	rej := s.Validate(Move{PlayerID: "a", Word: "wordy"})
	if rej == nil || rej.Reason != NotYourTurn {
		t.Errorf("expected NotYourTurn against an empty session, got %v", rej)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	s, _ := acceptingSession("a", "b")

	moves := []Move{
		{PlayerID: "a", Word: "wordy"},
		{PlayerID: "b", Word: "wordy"},
		{PlayerID: "a", Word: "no"},
	}
	for _, m := range moves {
		first := s.Validate(m)
		second := s.Validate(m)
		switch {
		case first == nil && second == nil:
		case first != nil && second != nil && first.Reason == second.Reason:
		default:
			t.Errorf("verdict for %+v changed between calls: %v vs %v", m, first, second)
		}
	}
}

func TestReason_Messages(t *testing.T) {
	want := map[Reason]string{
		NotYourTurn:     "It's not your turn!",
		WordAlreadyUsed: "Word has already been used!",
		ChainMismatch:   "Word must start with the last letter of the previous word!",
		TooShort:        "Word must be at least 4 letters!",
		NotInDictionary: "Word is not in the dictionary!",
	}
	for reason, msg := range want {
		if got := reason.Message(); got != msg {
			t.Errorf("message for %v: got %q, want %q", reason, got, msg)
		}
	}
}
