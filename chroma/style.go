package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"

	"github.com/eranif/lexilla"
)

// tokenTypes maps line styles to the closest chroma token types, following
// the conventions of the pygments diff and console lexers: inserted and
// deleted diff lines, headings for diff messages, prompt for command
// echoes, traceback for stack frames, and error for diagnostics.
var tokenTypes = map[lexilla.Style]chromalib.TokenType{
	lexilla.StyleDefault:         chromalib.GenericOutput,
	lexilla.StyleCmd:             chromalib.GenericPrompt,
	lexilla.StylePython:          chromalib.GenericTraceback,
	lexilla.StyleJavaStack:       chromalib.GenericTraceback,
	lexilla.StyleNet:             chromalib.GenericTraceback,
	lexilla.StyleGCC:             chromalib.GenericError,
	lexilla.StyleMS:              chromalib.GenericError,
	lexilla.StyleBorland:         chromalib.GenericError,
	lexilla.StylePerl:            chromalib.GenericError,
	lexilla.StyleLua:             chromalib.GenericError,
	lexilla.StylePHP:             chromalib.GenericError,
	lexilla.StyleELF:             chromalib.GenericError,
	lexilla.StyleIFC:             chromalib.GenericError,
	lexilla.StyleIfort:           chromalib.GenericError,
	lexilla.StyleAbsoft:          chromalib.GenericError,
	lexilla.StyleTidy:            chromalib.GenericError,
	lexilla.StyleBash:            chromalib.GenericError,
	lexilla.StyleGCCWarning:      chromalib.GenericEmph,
	lexilla.StyleGCCNote:         chromalib.GenericSubheading,
	lexilla.StyleGCCIncludedFrom: chromalib.GenericSubheading,
	lexilla.StyleCtag:            chromalib.NameTag,
	lexilla.StyleDiffAddition:    chromalib.GenericInserted,
	lexilla.StyleDiffDeletion:    chromalib.GenericDeleted,
	lexilla.StyleDiffChanged:     chromalib.GenericStrong,
	lexilla.StyleDiffMessage:     chromalib.GenericHeading,
	lexilla.StyleEscSeq:          chromalib.CommentSpecial,
	lexilla.StyleEscSeqUnknown:   chromalib.Error,
}

// TokenTypeFor returns the chroma token type used for a style. Styles
// without an explicit mapping, the sixteen terminal colors and source
// excerpts among them, render as plain text.
func TokenTypeFor(style lexilla.Style) chromalib.TokenType {
	if t, ok := tokenTypes[style]; ok {
		return t
	}
	return chromalib.Text
}
