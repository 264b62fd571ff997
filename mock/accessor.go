// Package mock provides test doubles for lexilla interfaces.
package mock

import "github.com/eranif/lexilla"

// Compile-time interface verification.
var _ lexilla.Accessor = (*Accessor)(nil)

// Accessor is a mock implementation of lexilla.Accessor.
type Accessor struct {
	ByteAtFn       func(pos int) byte
	ColorToFn      func(end int, style lexilla.Style)
	StartAtFn      func(pos int)
	StartSegmentFn func(pos int)
	BoolOptionFn   func(name string, def bool) bool
}

func (a *Accessor) ByteAt(pos int) byte {
	return a.ByteAtFn(pos)
}

func (a *Accessor) ColorTo(end int, style lexilla.Style) {
	a.ColorToFn(end, style)
}

func (a *Accessor) StartAt(pos int) {
	a.StartAtFn(pos)
}

func (a *Accessor) StartSegment(pos int) {
	a.StartSegmentFn(pos)
}

func (a *Accessor) BoolOption(name string, def bool) bool {
	return a.BoolOptionFn(name, def)
}
