// Package ansi decodes the escape-sequence subset the terminal lexer
// understands: CSI/SGR color selection with 256-to-16 color reduction, and
// the legacy charset escapes. Everything here is pure and total; malformed
// input decodes to the default style rather than failing.
package ansi

// ESC is the escape byte opening every sequence.
const ESC byte = 0x1b

// CSI is the two-byte control sequence introducer.
var CSI = []byte{ESC, '['}

// CharsetEscapeLen is the byte length of a legacy charset escape (ESC
// followed by a two-byte designator such as "(B").
const CharsetEscapeLen = 3

// IsSequenceEnd reports whether b terminates a control sequence. NUL
// counts: an embedded zero aborts a sequence the same way running off the
// end of the line does.
func IsSequenceEnd(b byte) bool {
	return b == 0 || (b >= 0x40 && b <= 0x7e)
}

func isSeparator(b byte) bool { return b == ';' || b == ':' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
