// Package terminal styles build and shell output. Each line is classified
// against the diagnostic formats of common compilers and tools (GCC,
// MSVC, Python tracebacks, diff fragments, ctags, and friends), and with
// the escape-sequences option on, ANSI SGR sequences are decoded into
// terminal color styles.
package terminal

import (
	"bytes"

	"github.com/eranif/lexilla"
	"github.com/eranif/lexilla/ansi"
)

// Lexer styles terminal output one line at a time. Lines are independent:
// no state carries across line boundaries, so any range that starts at a
// line start can be restyled in isolation.
type Lexer struct{}

var _ lexilla.Lexer = (*Lexer)(nil)

// New returns a terminal output lexer.
func New() *Lexer {
	return &Lexer{}
}

// StyleRange styles the document bytes [startPos, startPos+length)
// through acc. A trailing line without an end-of-line terminator is
// styled up to the end of the range.
func (l *Lexer) StyleRange(acc lexilla.Accessor, startPos, length int) {
	acc.StartAt(startPos)
	acc.StartSegment(startPos)

	valueSeparate := acc.BoolOption(lexilla.OptionValueSeparate, false)
	escapeSequences := acc.BoolOption(lexilla.OptionEscapeSequences, false)

	em := &emitter{acc: acc, pos: startPos}
	line := make([]byte, 0, 256)
	for i := startPos; i < startPos+length; i++ {
		line = append(line, acc.ByteAt(i))
		if atEOL(acc, i) {
			l.colorLine(em, line, i+1, valueSeparate, escapeSequences)
			line = line[:0]
		}
	}
	if len(line) > 0 {
		l.colorLine(em, line, startPos+length, valueSeparate, escapeSequences)
	}
}

// colorLine styles one buffered line ending at the exclusive document
// position endPos. line includes the end-of-line bytes when present.
func (l *Lexer) colorLine(em *emitter, line []byte, endPos int, valueSeparate, escapeSequences bool) {
	style, valueStart := Recognize(line)
	lineStart := endPos - len(line)

	if escapeSequences && bytes.Contains(line, ansi.CSI) {
		l.colorEscapedLine(em, line, lineStart, endPos, style)
		return
	}
	if valueSeparate && valueStart >= 0 {
		em.colorTo(lineStart+valueStart, style)
		em.colorTo(endPos, lexilla.StyleValue)
		return
	}
	em.colorTo(endPos, style)
}

// colorEscapedLine walks the line portion by portion. Text between escape
// sequences keeps the current portion style; a recognized SGR sequence is
// styled as escape bytes and selects the style of the text that follows;
// an unrecognized sequence reverts to the line's base style.
func (l *Lexer) colorEscapedLine(em *emitter, line []byte, lineStart, endPos int, base lexilla.Style) {
	portion := line
	portionBase := lineStart
	portionStyle := base
	for {
		idx := bytes.Index(portion, ansi.CSI)
		if idx < 0 {
			break
		}
		if idx > 0 {
			// Charset escapes (ESC(B and friends) inside the text get
			// the unknown-escape style without changing the text style.
			prefix := portion[:idx]
			pos := portionBase
			for len(prefix) > 0 {
				escPos, ok := ansi.FindCharsetEscape(prefix)
				if !ok {
					em.colorTo(portionBase+idx, portionStyle)
					break
				}
				if escPos != 0 {
					em.colorTo(pos+escPos, portionStyle)
					pos += escPos
				}
				em.colorTo(pos+ansi.CharsetEscapeLen, lexilla.StyleEscSeqUnknown)
				pos += ansi.CharsetEscapeLen
				prefix = prefix[escPos+ansi.CharsetEscapeLen:]
			}
		}
		j := idx + len(ansi.CSI)
		for j < len(portion) && !ansi.IsSequenceEnd(portion[j]) {
			j++
		}
		if j == len(portion) || portion[j] == 0 {
			// No terminator on this line: everything left is escape
			// garbage.
			em.colorTo(endPos, lexilla.StyleEscSeqUnknown)
			return
		}
		seqEnd := portionBase + j + 1
		switch portion[j] {
		case 'm':
			em.colorTo(seqEnd, lexilla.StyleEscSeq)
			portionStyle = ansi.StyleFromSequence(portion[idx+len(ansi.CSI):])
		case 'K': // erase to end of line, style unchanged
			em.colorTo(seqEnd, lexilla.StyleEscSeq)
		default:
			em.colorTo(seqEnd, lexilla.StyleEscSeqUnknown)
			portionStyle = base
		}
		portion = portion[j+1:]
		portionBase = seqEnd
	}
	em.colorTo(endPos, portionStyle)
}

// emitter turns style runs into non-empty ranges with strictly increasing
// exclusive ends.
type emitter struct {
	acc lexilla.Accessor
	pos int // everything before pos is styled already
}

func (e *emitter) colorTo(end int, style lexilla.Style) {
	if end <= e.pos {
		return
	}
	e.acc.ColorTo(end, style)
	e.pos = end
}

func atEOL(acc lexilla.Accessor, i int) bool {
	b := acc.ByteAt(i)
	return b == '\n' || (b == '\r' && acc.ByteAt(i+1) != '\n')
}
