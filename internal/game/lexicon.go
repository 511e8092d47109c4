package game

import "context"

// Lexicon answers whether a word is a valid dictionary entry. Implementations
// may hit the network; errors are treated as "word does not exist" by the
// session (fail-closed).
type Lexicon interface {
	Exists(ctx context.Context, word string) (bool, error)
}

// LexiconFunc adapts a function to the Lexicon interface.
type LexiconFunc func(ctx context.Context, word string) (bool, error)

func (f LexiconFunc) Exists(ctx context.Context, word string) (bool, error) {
	return f(ctx, word)
}
