package chroma_test

import (
	"testing"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"

	"github.com/eranif/lexilla"
	termchroma "github.com/eranif/lexilla/chroma"
)

func TestTokenTypeFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		style lexilla.Style
		want  chromalib.TokenType
	}{
		{lexilla.StyleDefault, chromalib.GenericOutput},
		{lexilla.StyleCmd, chromalib.GenericPrompt},
		{lexilla.StyleGCC, chromalib.GenericError},
		{lexilla.StyleGCCWarning, chromalib.GenericEmph},
		{lexilla.StyleGCCNote, chromalib.GenericSubheading},
		{lexilla.StylePython, chromalib.GenericTraceback},
		{lexilla.StyleJavaStack, chromalib.GenericTraceback},
		{lexilla.StyleDiffAddition, chromalib.GenericInserted},
		{lexilla.StyleDiffDeletion, chromalib.GenericDeleted},
		{lexilla.StyleDiffChanged, chromalib.GenericStrong},
		{lexilla.StyleDiffMessage, chromalib.GenericHeading},
		{lexilla.StyleCtag, chromalib.NameTag},
		{lexilla.StyleValue, chromalib.Text},
		{lexilla.StyleEscSeq, chromalib.CommentSpecial},
		{lexilla.StyleEscSeqUnknown, chromalib.Error},

		// No dedicated token types: plain text.
		{lexilla.StyleGCCExcerpt, chromalib.Text},
		{lexilla.StyleEsRed, chromalib.Text},
		{lexilla.StyleEsWhite, chromalib.Text},
	}

	for _, tc := range cases {
		t.Run(tc.style.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, termchroma.TokenTypeFor(tc.style))
		})
	}
}
