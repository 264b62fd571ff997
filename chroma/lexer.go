// Package chroma adapts the line classifier to the chroma lexer interface
// so terminal output can go through chroma formatters and styles.
package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"

	"github.com/eranif/lexilla"
	"github.com/eranif/lexilla/buffer"
	"github.com/eranif/lexilla/terminal"
)

// Compile-time interface verification.
var _ chromalib.Lexer = (*Lexer)(nil)

// Lexer tokenises build and shell output for chroma. Each line becomes one
// token, except diagnostic lines which split into a location token and a
// plain-text message token.
type Lexer struct {
	config   chromalib.Config
	analyser func(text string) float32
	escapes  bool
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithEscapeSequences makes the lexer decode ANSI SGR sequences instead of
// leaving the escape bytes inside the surrounding tokens. Decoded markers
// come out as CommentSpecial tokens and unknown sequences as Error tokens.
func WithEscapeSequences() Option {
	return func(l *Lexer) { l.escapes = true }
}

// New returns a lexer named "Terminal Output". Register it with a chroma
// registry to make it reachable through lexers.Get("terminal").
func New(opts ...Option) *Lexer {
	l := &Lexer{
		config: chromalib.Config{
			Name:      "Terminal Output",
			Aliases:   []string{"terminal", "errorlist"},
			Filenames: []string{"*.log"},
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Config implements chroma.Lexer.
func (l *Lexer) Config() *chromalib.Config {
	return &l.config
}

// Tokenise implements chroma.Lexer. The options are unused; the lexer has
// no states to start from.
func (l *Lexer) Tokenise(options *chromalib.TokeniseOptions, text string) (chromalib.Iterator, error) {
	doc := buffer.NewString(text)
	doc.SetOption(lexilla.OptionValueSeparate, true)
	doc.SetOption(lexilla.OptionEscapeSequences, l.escapes)
	terminal.New().StyleRange(doc, 0, doc.Len())

	ranges := doc.Ranges()
	tokens := make([]chromalib.Token, 0, len(ranges))
	start := 0
	for _, r := range ranges {
		tokens = append(tokens, chromalib.Token{
			Type:  TokenTypeFor(r.Style),
			Value: text[start:r.End],
		})
		start = r.End
	}
	return chromalib.Literator(tokens...), nil
}

// SetRegistry implements chroma.Lexer. The registry is unused; the lexer
// never delegates to other lexers.
func (l *Lexer) SetRegistry(registry *chromalib.LexerRegistry) chromalib.Lexer {
	return l
}

// SetAnalyser implements chroma.Lexer.
func (l *Lexer) SetAnalyser(analyser func(text string) float32) chromalib.Lexer {
	l.analyser = analyser
	return l
}

// AnalyseText scores a sample by the share of its lines the classifier
// recognizes as something other than plain output.
func (l *Lexer) AnalyseText(text string) float32 {
	if l.analyser != nil {
		return l.analyser(text)
	}

	var total, hits int
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		total++
		if style, _ := terminal.Recognize([]byte(line)); style != lexilla.StyleDefault {
			hits++
		}
	}
	if total == 0 {
		return 0
	}
	return float32(hits) / float32(total)
}
