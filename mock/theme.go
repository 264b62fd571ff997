package mock

import "github.com/eranif/lexilla"

// Compile-time interface verification.
var _ lexilla.Theme = (*Theme)(nil)

// Theme is a mock implementation of lexilla.Theme.
type Theme struct {
	ColorFn func(style lexilla.Style) lexilla.ColorPair
}

func (t *Theme) Color(style lexilla.Style) lexilla.ColorPair {
	return t.ColorFn(style)
}
