package mock

import "github.com/eranif/lexilla"

// Compile-time interface verification.
var _ lexilla.Lexer = (*Lexer)(nil)

// Lexer is a mock implementation of lexilla.Lexer.
type Lexer struct {
	StyleRangeFn func(acc lexilla.Accessor, startPos, length int)
}

func (l *Lexer) StyleRange(acc lexilla.Accessor, startPos, length int) {
	l.StyleRangeFn(acc, startPos, length)
}
