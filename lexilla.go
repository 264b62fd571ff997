// Package lexilla provides domain types for lexing terminal and build
// output: a style taxonomy for diagnostic lines, the narrow host surface a
// lexer styles against, and the range/theme types hosts consume.
package lexilla

import "context"

// Option names understood by the terminal lexer. Hosts expose them through
// Accessor.BoolOption; both default to false.
const (
	// OptionValueSeparate styles the trailing "value" part of a diagnostic
	// (the message after file:line:) separately from its location prefix.
	OptionValueSeparate = "lexer.terminal.value.separate"
	// OptionEscapeSequences interprets ANSI escape sequences instead of
	// treating them as literal text.
	OptionEscapeSequences = "lexer.terminal.escape.sequences"
)

// Accessor is the only surface a lexer sees of its host: random byte access
// into the document, a style-range sink, and option lookup. Hosts own the
// document and the rendering; lexers own classification.
type Accessor interface {
	// ByteAt returns the byte at pos, or ' ' when pos is out of range.
	ByteAt(pos int) byte

	// ColorTo styles the bytes from the end of the previously emitted range
	// up to end (exclusive). Lexers emit strictly increasing ends and never
	// emit empty ranges.
	ColorTo(end int, style Style)

	// StartAt resets the host's styling cursor before a pass.
	StartAt(pos int)

	// StartSegment marks the offset where the next emitted range begins.
	StartSegment(pos int)

	// BoolOption reports the option registered under name, or def when the
	// host has no value for it.
	BoolOption(name string, def bool) bool
}

// Lexer assigns styles to a byte range of a host document.
type Lexer interface {
	// StyleRange styles length bytes starting at startPos. The emitted
	// ranges exactly tile [startPos, startPos+length): no gaps, no
	// overlaps, no zero-length ranges.
	StyleRange(acc Accessor, startPos, length int)
}

// Range is one emitted style span. End is exclusive; a range starts where
// the previous one ended, so a slice of ranges plus a start offset fully
// describes a styled interval.
type Range struct {
	End   int
	Style Style
}

// Viewer displays classified output to the user and blocks until they are
// done with it.
type Viewer interface {
	View(ctx context.Context, text string) error
}
