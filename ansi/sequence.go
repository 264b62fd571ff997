package ansi

import "github.com/eranif/lexilla"

// TokenType tags one token scanned from SGR parameter bytes.
type TokenType int

// Token types.
const (
	TokenEnd       TokenType = iota // terminator, unknown byte, or end of input
	TokenNumber                     // maximal decimal digit run
	TokenSeparator                  // ';' or ':'
)

// maxParam bounds number accumulation. The decoder only consults values up
// to 255; longer digit runs just need to stay large without overflowing.
const maxParam = 1 << 30

// NextToken scans the first token of seq. The value is meaningful only for
// TokenNumber; consumed is the number of bytes the token spans (zero at a
// terminator or the end of input).
func NextToken(seq []byte) (typ TokenType, value, consumed int) {
	i := 0
	for i < len(seq) && isDigit(seq[i]) {
		if value < maxParam {
			value = value*10 + int(seq[i]-'0')
		}
		i++
	}
	if i > 0 {
		return TokenNumber, value, i
	}
	if len(seq) == 0 || IsSequenceEnd(seq[0]) {
		return TokenEnd, 0, 0
	}
	if isSeparator(seq[0]) {
		return TokenSeparator, 0, 1
	}
	return TokenEnd, 0, 1
}

// StyleFromSequence decodes the parameter bytes of an SGR sequence (the
// bytes between "ESC[" and the final byte) to a terminal color style.
// Everything the grammar does not cover decodes to StyleDefault: bare
// display modes, background selection, true-color parameters, malformed
// input.
func StyleFromSequence(params []byte) lexilla.Style {
	typ, num, n := NextToken(params)
	if typ == TokenNumber && num <= 9 {
		// A display mode such as the 0 in "0;31". Without a following
		// separator there is no color parameter at all.
		params = params[n:]
		sep, _, sn := NextToken(params)
		if sep != TokenSeparator {
			return lexilla.StyleDefault
		}
		params = params[sn:]
		typ, num, n = NextToken(params)
	}
	if typ != TokenNumber {
		return lexilla.StyleDefault
	}
	switch {
	case num == 38:
		// 256-color foreground: 38;5;N.
		params = params[n:]
		typ, _, n = NextToken(params)
		if typ != TokenSeparator {
			return lexilla.StyleDefault
		}
		params = params[n:]
		typ, num, n = NextToken(params)
		if typ != TokenNumber || num != 5 {
			return lexilla.StyleDefault
		}
		params = params[n:]
		typ, _, n = NextToken(params)
		if typ != TokenSeparator {
			return lexilla.StyleDefault
		}
		params = params[n:]
		typ, num, _ = NextToken(params)
		if typ != TokenNumber {
			return lexilla.StyleDefault
		}
		return StyleForColor(uint8(num))
	case num == 48:
		// Background selection is not modeled.
		return lexilla.StyleDefault
	case num < 256:
		return StyleForColor(uint8(num))
	}
	return lexilla.StyleDefault
}

// FindCharsetEscape returns the earliest offset in s of a legacy charset
// escape: ESC immediately followed by "(B", "(0", "(U", or "(K". Such an
// escape always spans CharsetEscapeLen bytes and carries no color change.
func FindCharsetEscape(s []byte) (int, bool) {
	for i := 0; i+CharsetEscapeLen <= len(s); i++ {
		if s[i] != ESC || s[i+1] != '(' {
			continue
		}
		switch s[i+2] {
		case 'B', '0', 'U', 'K':
			return i, true
		}
	}
	return -1, false
}
