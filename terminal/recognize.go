package terminal

import (
	"bytes"
	"strings"

	"github.com/eranif/lexilla"
)

// matchState tracks progress through the location shapes the state machine
// understands: GCC colon paths, Microsoft brackets, and ctags entries.
type matchState int

const (
	matchInitial matchState = iota
	matchGccStart
	matchGccDigit
	matchGccColumn
	matchGcc
	matchMsStart
	matchMsDigit
	matchMsBracket
	matchMsVc
	matchMsDigitComma
	matchMsDotNet
	matchCtagsStart
	matchCtagsFile
	matchCtagsStartString
	matchCtagsStringDollar
	matchCtags
	matchUnrecognized
)

// severityWords are the message keywords accepted after a Microsoft or
// Delphi "(line)" bracket, matched case-insensitively.
var severityWords = []string{"error", "warning", "fatal", "catastrophic", "note", "remark"}

// Recognize classifies one line of build or shell output. line holds the
// raw bytes of the line including any end-of-line characters; a final line
// without a terminator is classified as-is.
//
// The second result is the offset just past the colon where the message
// value begins for path:line[:col]: shapes, or -1 when no split point was
// seen. It can be set even when the returned style is Default, since the
// offset is recorded before classification completes.
//
// The checks run in a fixed order and the first match wins. The order is
// load-bearing: several formats overlap (a Lua 5.1 traceback is a GCC path
// with a "lua: " prefix, a Delphi bracket looks like a phone number), and
// reordering changes how real tool output is classified.
func Recognize(line []byte) (lexilla.Style, int) {
	valueStart := -1
	if len(line) == 0 {
		return lexilla.StyleDefault, valueStart
	}

	switch line[0] {
	case '>':
		// Command echo or return status.
		return lexilla.StyleCmd, valueStart
	case '<':
		return lexilla.StyleDiffDeletion, valueStart
	case '!':
		return lexilla.StyleDiffChanged, valueStart
	case '+':
		if bytes.HasPrefix(line, []byte("+++ ")) {
			return lexilla.StyleDiffMessage, valueStart
		}
		return lexilla.StyleDiffAddition, valueStart
	case '-':
		// -rw / -r- permission columns from directory listings fall
		// through to the remaining checks.
		if !bytes.HasPrefix(line, []byte("-rw")) && !bytes.HasPrefix(line, []byte("-r-")) {
			if bytes.HasPrefix(line, []byte("--- ")) {
				return lexilla.StyleDiffMessage, valueStart
			}
			if bytes.HasPrefix(line, []byte("-- ")) {
				// CMake status message.
				return lexilla.StyleDefault, valueStart
			}
			return lexilla.StyleDiffDeletion, valueStart
		}
	}

	switch {
	case bytes.HasPrefix(line, []byte("cf90-")):
		// Absoft Pro Fortran.
		return lexilla.StyleAbsoft, valueStart
	case bytes.HasPrefix(line, []byte("fortcom:")):
		// Intel Fortran.
		return lexilla.StyleIfort, valueStart
	case bytes.Contains(line, []byte(`File "`)) && bytes.Contains(line, []byte(", line ")):
		return lexilla.StylePython, valueStart
	case bytes.Contains(line, []byte(" in ")) && bytes.Contains(line, []byte(" on line ")):
		return lexilla.StylePHP, valueStart
	case isIntelDiagnostic(line):
		return lexilla.StyleIFC, valueStart
	case bytes.HasPrefix(line, []byte("Error ")):
		return lexilla.StyleBorland, valueStart
	case bytes.HasPrefix(line, []byte("Warning ")):
		return lexilla.StyleBorland, valueStart
	case bytes.Contains(line, []byte("at line ")) && bytes.Contains(line, []byte("file ")):
		// Lua 4: error at line N of file F.
		return lexilla.StyleLua, valueStart
	case isPerlDiagnostic(line):
		// <message> at <file> line <line>
		return lexilla.StylePerl, valueStart
	case bytes.HasPrefix(line, []byte("   at ")) && bytes.Contains(line, []byte(":line ")):
		// .NET traceback.
		return lexilla.StyleNet, valueStart
	case bytes.HasPrefix(line, []byte("Line ")) && bytes.Contains(line, []byte(", file ")):
		// Lahey Fortran.
		return lexilla.StyleELF, valueStart
	case bytes.HasPrefix(line, []byte("line ")) && bytes.Contains(line, []byte(" column ")):
		// HTML Tidy: line 42 column 1.
		return lexilla.StyleTidy, valueStart
	case bytes.HasPrefix(line, []byte("\tat ")) && bytes.IndexByte(line, '(') >= 0 && bytes.Contains(line, []byte(".java:")):
		return lexilla.StyleJavaStack, valueStart
	case bytes.HasPrefix(line, []byte("In file included from ")) || bytes.HasPrefix(line, []byte("                 from ")):
		// GCC include path leading to a later diagnostic.
		return lexilla.StyleGCCIncludedFrom, valueStart
	case bytes.HasPrefix(line, []byte("NMAKE : fatal error")):
		return lexilla.StyleMS, valueStart
	case bytes.Contains(line, []byte("warning LNK")) || bytes.Contains(line, []byte("error LNK")):
		// Microsoft linker.
		return lexilla.StyleMS, valueStart
	case isBashDiagnostic(line):
		// <filename>: line <line>:<message>
		return lexilla.StyleBash, valueStart
	case isGccExcerpt(line):
		return lexilla.StyleGCCExcerpt, valueStart
	}

	// Remaining formats need a character walk:
	//   GCC        <filename>:<line>:<message>
	//   Microsoft  <filename>(<line>) :<message>
	//   Common     <filename>(<line>)[ :] error|warning|... <message>
	//   .NET       <filename>(<line>,<column>)<message>
	//   ctags      <identifier>\t<filename>\t<excmd>
	//   Lua 5      \t<filename>:<line>:<message>
	//   Lua 5.1    <exe>: <filename>:<line>:<message>
	initialTab := line[0] == '\t'
	initialColonPart := false
	canBeCtags := !initialTab // ctags needs an identifier with no spaces, then a tab
	state := matchInitial

scan:
	for i := 0; i < len(line); i++ {
		ch := line[i]
		chNext := byte(' ')
		if i+1 < len(line) {
			chNext = line[i+1]
		}
		switch state {
		case matchInitial:
			if ch == ':' {
				// Drive letters and "exe: file" prefixes are not the
				// GCC line-number colon.
				if chNext != '\\' && chNext != '/' && chNext != ' ' {
					state = matchGccStart
				} else if chNext == ' ' {
					initialColonPart = true
				}
			} else if ch == '(' && isNonZeroDigit(chNext) && !initialTab {
				// Checking against '0' filters out most phone numbers.
				state = matchMsStart
			} else if ch == '\t' && canBeCtags {
				state = matchCtagsStart
			} else if ch == ' ' {
				canBeCtags = false
			}
		case matchGccStart: // <filename>:
			if ch == '-' || isDigit(ch) {
				state = matchGccDigit
			} else {
				state = matchUnrecognized
			}
		case matchGccDigit: // <filename>:<line>
			if ch == ':' {
				state = matchGccColumn // :9.*: is GCC
				valueStart = i + 1
			} else if !isDigit(ch) {
				state = matchUnrecognized
			}
		case matchGccColumn: // <filename>:<line>:<column>
			if !isDigit(ch) {
				state = matchGcc
				if ch == ':' {
					valueStart = i + 1
				}
				break scan
			}
		case matchMsStart: // <filename>(
			if isDigit(ch) {
				state = matchMsDigit
			} else {
				state = matchUnrecognized
			}
		case matchMsDigit: // <filename>(<line>
			if ch == ',' {
				state = matchMsDigitComma
			} else if ch == ')' {
				state = matchMsBracket
			} else if ch != ' ' && !isDigit(ch) {
				state = matchUnrecognized
			}
		case matchMsBracket: // <filename>(<line>)
			if ch == ' ' && chNext == ':' {
				state = matchMsVc
			} else if (ch == ':' && chNext == ' ') || ch == ' ' {
				// Delphi drops the colon, so inspect the word itself.
				step := 2
				if ch == ' ' {
					step = 1
				}
				if matchesSeverity(wordAt(line, i+step)) {
					state = matchMsVc
				} else {
					state = matchUnrecognized
				}
			} else {
				state = matchUnrecognized
			}
		case matchMsDigitComma: // <filename>(<line>,
			if ch == ')' {
				state = matchMsDotNet
				break scan
			} else if ch != ' ' && !isDigit(ch) {
				state = matchUnrecognized
			}
		case matchCtagsStart:
			if ch == '\t' {
				state = matchCtagsFile
			}
		case matchCtagsFile:
			if line[i-1] == '\t' && ((ch == '/' && chNext == '^') || isDigit(ch)) {
				state = matchCtags
				break scan
			} else if ch == '/' && chNext == '^' {
				state = matchCtagsStartString
			}
		case matchCtagsStartString:
			if ch == '$' && i+1 < len(line) && line[i+1] == '/' {
				state = matchCtagsStringDollar
				break scan
			}
		}
	}

	switch {
	case state == matchGcc:
		if initialColonPart {
			return lexilla.StyleLua, valueStart
		}
		if bytes.Contains(line, []byte("warning:")) {
			return lexilla.StyleGCCWarning, valueStart
		}
		if bytes.Contains(line, []byte("note:")) {
			return lexilla.StyleGCCNote, valueStart
		}
		return lexilla.StyleGCC, valueStart
	case state == matchMsVc || state == matchMsDotNet:
		return lexilla.StyleMS, valueStart
	case state == matchCtagsStringDollar || state == matchCtags:
		return lexilla.StyleCtag, valueStart
	case initialColonPart && bytes.Contains(line, []byte(": warning C")):
		// MSVC warning without a line number.
		return lexilla.StyleMS, valueStart
	default:
		return lexilla.StyleDefault, valueStart
	}
}

// isIntelDiagnostic matches Intel Fortran messages of the form
// "Error 10 at (5:file.f90) : message": a severity prefix with the
// location bracket before the message colon.
func isIntelDiagnostic(line []byte) bool {
	if !bytes.HasPrefix(line, []byte("Error ")) && !bytes.HasPrefix(line, []byte("Warning ")) {
		return false
	}
	at := bytes.Index(line, []byte(" at ("))
	sep := bytes.Index(line, []byte(") : "))
	return at >= 0 && sep >= 0 && at < sep
}

// isPerlDiagnostic matches "<message> at <file> line <line>". The " at "
// must sit far enough before " line " to leave room for a file name.
func isPerlDiagnostic(line []byte) bool {
	at := bytes.Index(line, []byte(" at "))
	ln := bytes.Index(line, []byte(" line "))
	return at >= 0 && ln >= 0 && at+4 < ln
}

// isBashDiagnostic matches shell messages of the form
// "<filename>: line <line>:<message>". Only the first ": line " is tested.
func isBashDiagnostic(line []byte) bool {
	const mark = ": line "
	i := bytes.Index(line, []byte(mark))
	if i < 0 {
		return false
	}
	rest := line[i+len(mark):]
	if len(rest) == 0 || !isDigit(rest[0]) {
		return false
	}
	for len(rest) > 0 && isDigit(rest[0]) {
		rest = rest[1:]
	}
	return len(rest) > 0 && rest[0] == ':'
}

// isGccExcerpt matches GCC source excerpts and their caret lines:
//
//	   73 |   GTimeVal last_popdown;
//	      |            ^~~~~~~~~~~~
//
// Either the gutter marker " | " (or " |+") appears before any byte other
// than space, '+', or a digit, or the whole line consists of those bytes.
func isGccExcerpt(line []byte) bool {
	for i, c := range line {
		if c == ' ' && i+2 < len(line) && line[i+1] == '|' && (line[i+2] == ' ' || line[i+2] == '+') {
			return true
		}
		if c != ' ' && c != '+' && !isDigit(c) {
			return false
		}
	}
	return true
}

// wordAt returns the run of ASCII letters starting at pos, capped at 511
// bytes. pos past the end of the line yields the empty word.
func wordAt(line []byte, pos int) string {
	if pos > len(line) {
		return ""
	}
	end := pos
	for end < len(line) && isLetter(line[end]) && end-pos < 511 {
		end++
	}
	return string(line[pos:end])
}

func matchesSeverity(word string) bool {
	for _, w := range severityWords {
		if strings.EqualFold(word, w) {
			return true
		}
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNonZeroDigit(c byte) bool { return c >= '1' && c <= '9' }

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
