package chroma_test

import (
	"strings"
	"testing"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	termchroma "github.com/eranif/lexilla/chroma"
)

func collect(t *testing.T, it chromalib.Iterator) []chromalib.Token {
	t.Helper()
	var tokens []chromalib.Token
	for token := it(); token != chromalib.EOF; token = it() {
		tokens = append(tokens, token)
	}
	return tokens
}

func TestLexer_Config(t *testing.T) {
	t.Parallel()

	config := termchroma.New().Config()

	assert.Equal(t, "Terminal Output", config.Name)
	assert.Contains(t, config.Aliases, "terminal")
	assert.Contains(t, config.Aliases, "errorlist")
}

func TestLexer_Registry(t *testing.T) {
	t.Parallel()

	registry := chromalib.NewLexerRegistry()
	registry.Register(termchroma.New())

	assert.NotNil(t, registry.Get("terminal"))
	assert.NotNil(t, registry.Get("errorlist"))
}

func TestLexer_Tokenise(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want []chromalib.Token
	}{
		{
			name: "plain output is one token per line",
			text: "all good\n",
			want: []chromalib.Token{
				{Type: chromalib.GenericOutput, Value: "all good\n"},
			},
		},
		{
			name: "command echo",
			text: "> make all\n",
			want: []chromalib.Token{
				{Type: chromalib.GenericPrompt, Value: "> make all\n"},
			},
		},
		{
			name: "diagnostic splits into location and message",
			text: "main.c:10:5: error: x\n",
			want: []chromalib.Token{
				{Type: chromalib.GenericError, Value: "main.c:10:5:"},
				{Type: chromalib.Text, Value: " error: x\n"},
			},
		},
		{
			name: "diff lines",
			text: "+added\n-removed\n",
			want: []chromalib.Token{
				{Type: chromalib.GenericInserted, Value: "+added\n"},
				{Type: chromalib.GenericDeleted, Value: "-removed\n"},
			},
		},
		{
			name: "mixed build log",
			text: "> build\nsrc.c:1:1: error: bad\ndone\n",
			want: []chromalib.Token{
				{Type: chromalib.GenericPrompt, Value: "> build\n"},
				{Type: chromalib.GenericError, Value: "src.c:1:1:"},
				{Type: chromalib.Text, Value: " error: bad\n"},
				{Type: chromalib.GenericOutput, Value: "done\n"},
			},
		},
		{
			name: "missing trailing newline",
			text: "Traceback (most recent call last):\n  File \"a.py\", line 2, in f",
			want: []chromalib.Token{
				{Type: chromalib.GenericOutput, Value: "Traceback (most recent call last):\n"},
				{Type: chromalib.GenericTraceback, Value: "  File \"a.py\", line 2, in f"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			it, err := termchroma.New().Tokenise(nil, tc.text)
			require.NoError(t, err)

			assert.Equal(t, tc.want, collect(t, it))
		})
	}
}

func TestLexer_Tokenise_EscapeSequences(t *testing.T) {
	t.Parallel()

	text := "\x1b[31mfail\x1b[0m\n"

	t.Run("disabled leaves escape bytes in the line token", func(t *testing.T) {
		t.Parallel()

		it, err := termchroma.New().Tokenise(nil, text)
		require.NoError(t, err)

		assert.Equal(t, []chromalib.Token{
			{Type: chromalib.GenericOutput, Value: text},
		}, collect(t, it))
	})

	t.Run("enabled emits marker and colored text tokens", func(t *testing.T) {
		t.Parallel()

		it, err := termchroma.New(termchroma.WithEscapeSequences()).Tokenise(nil, text)
		require.NoError(t, err)

		assert.Equal(t, []chromalib.Token{
			{Type: chromalib.CommentSpecial, Value: "\x1b[31m"},
			{Type: chromalib.Text, Value: "fail"},
			{Type: chromalib.CommentSpecial, Value: "\x1b[0m"},
			{Type: chromalib.GenericOutput, Value: "\n"},
		}, collect(t, it))
	})
}

func TestLexer_Tokenise_TilesText(t *testing.T) {
	t.Parallel()

	texts := []string{
		"",
		"one line, no newline",
		"> make\nmain.c:1:2: error: x\n+add\n-del\nplain\n",
		"crlf line\r\nbare cr\rlast",
		"\x1b[32mok\x1b[0m and more\n",
	}

	for _, text := range texts {
		it, err := termchroma.New(termchroma.WithEscapeSequences()).Tokenise(nil, text)
		require.NoError(t, err)

		var b strings.Builder
		for _, token := range collect(t, it) {
			b.WriteString(token.Value)
		}
		assert.Equal(t, text, b.String(), "tokens must concatenate back to the input")
	}
}

func TestLexer_AnalyseText(t *testing.T) {
	t.Parallel()

	lexer := termchroma.New()

	assert.Equal(t, float32(0), lexer.AnalyseText(""))
	assert.Equal(t, float32(0), lexer.AnalyseText("nothing to see\nhere\n"))
	assert.Equal(t, float32(1), lexer.AnalyseText("main.c:1:2: error: x\n> make\n"))
	assert.Equal(t, float32(0.5), lexer.AnalyseText("main.c:1:2: error: x\nplain\n"))
}

func TestLexer_SetAnalyser(t *testing.T) {
	t.Parallel()

	lexer := termchroma.New().SetAnalyser(func(text string) float32 {
		return 0.25
	})

	assert.Equal(t, float32(0.25), lexer.AnalyseText("anything"))
}
