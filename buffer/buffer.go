// Package buffer provides an in-memory document host for lexers. It
// serves bytes to a lexilla.Lexer and records the style ranges the lexer
// emits, so renderers and tests can query what landed where.
package buffer

import (
	"sort"

	"github.com/eranif/lexilla"
)

// Document holds text, lexer options, and the recorded style ranges of
// the most recent styling passes.
type Document struct {
	text    []byte
	options map[string]bool

	styledFrom int
	segStart   int
	ranges     []lexilla.Range
}

var _ lexilla.Accessor = (*Document)(nil)

// New returns a Document over text. The Document keeps the slice; the
// caller must not mutate it while styling.
func New(text []byte) *Document {
	return &Document{text: text}
}

// NewString returns a Document over s.
func NewString(s string) *Document {
	return New([]byte(s))
}

// SetOption sets a named lexer option served through BoolOption.
func (d *Document) SetOption(name string, value bool) {
	if d.options == nil {
		d.options = make(map[string]bool)
	}
	d.options[name] = value
}

// Len returns the document length in bytes.
func (d *Document) Len() int {
	return len(d.text)
}

// Text returns the document bytes. The slice is owned by the Document.
func (d *Document) Text() []byte {
	return d.text
}

// ByteAt returns the byte at pos, or ' ' when pos is out of range.
func (d *Document) ByteAt(pos int) byte {
	if pos < 0 || pos >= len(d.text) {
		return ' '
	}
	return d.text[pos]
}

// ColorTo records [segment start, end) with the given style and moves the
// segment start to end. Ranges that would be empty are dropped.
func (d *Document) ColorTo(end int, style lexilla.Style) {
	if end <= d.segStart {
		return
	}
	d.ranges = append(d.ranges, lexilla.Range{End: end, Style: style})
	d.segStart = end
}

// StartAt prepares a styling pass beginning at pos: ranges ending beyond
// pos are discarded so the region can be restyled.
func (d *Document) StartAt(pos int) {
	n := sort.Search(len(d.ranges), func(i int) bool { return d.ranges[i].End > pos })
	d.ranges = d.ranges[:n]
	if len(d.ranges) == 0 {
		d.styledFrom = pos
	}
	d.segStart = pos
}

// StartSegment moves the segment start to pos.
func (d *Document) StartSegment(pos int) {
	d.segStart = pos
}

// BoolOption returns the named option, or def when it was never set.
func (d *Document) BoolOption(name string, def bool) bool {
	if v, ok := d.options[name]; ok {
		return v
	}
	return def
}

// Ranges returns the recorded ranges in emission order. The slice is
// owned by the Document until Reset.
func (d *Document) Ranges() []lexilla.Range {
	return d.ranges
}

// StyleAt returns the style covering pos, or StyleDefault when pos lies
// outside every recorded range.
func (d *Document) StyleAt(pos int) lexilla.Style {
	if pos < d.styledFrom {
		return lexilla.StyleDefault
	}
	i := sort.Search(len(d.ranges), func(i int) bool { return d.ranges[i].End > pos })
	if i == len(d.ranges) {
		return lexilla.StyleDefault
	}
	return d.ranges[i].Style
}

// Reset drops all recorded ranges.
func (d *Document) Reset() {
	d.ranges = nil
	d.styledFrom = 0
	d.segStart = 0
}
