package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	lipglosslib "github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/eranif/lexilla"
	"github.com/eranif/lexilla/buffer"
	termchroma "github.com/eranif/lexilla/chroma"
	"github.com/eranif/lexilla/jsonl"
	"github.com/eranif/lexilla/lipgloss"
	"github.com/eranif/lexilla/terminal"
)

// Output formats.
const (
	FormatText = "text"
	FormatANSI = "ansi"
	FormatHTML = "html"
)

// ErrUnknownTheme is returned for theme names other than dark and light.
var ErrUnknownTheme = errors.New("unknown theme")

// ErrUnknownFormat is returned for formats other than text, ansi and html.
var ErrUnknownFormat = errors.New("unknown format")

// App encapsulates the application logic for testing.
type App struct {
	Stdin    io.Reader
	Stdout   io.Writer
	Renderer *lipglosslib.Renderer // nil means a renderer on Stdout
	Saver    lexilla.CaseSaver     // nil means the JSONL saver
	Escape   bool
	Value    bool
	Theme    string
	Format   string
	Workers  int
	Corpus   string
	Paths    []string
}

// document is one input to colorize.
type document struct {
	name string
	text string
}

// Run reads the inputs and writes them colorized to Stdout, or classified
// into a corpus file when Corpus is set. Inputs render in parallel but the
// output keeps their command-line order.
func (a *App) Run(ctx context.Context) error {
	theme, err := themeByName(a.Theme)
	if err != nil {
		return err
	}
	switch a.Format {
	case FormatText, FormatANSI, FormatHTML:
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, a.Format)
	}

	docs, err := a.readInputs()
	if err != nil {
		return err
	}

	if a.Corpus != "" {
		return a.writeCorpus(docs)
	}

	uiRenderer := a.Renderer
	if uiRenderer == nil {
		uiRenderer = lipglosslib.NewRenderer(a.Stdout)
	}

	results := make([]string, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers())

	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := a.render(doc.text, theme, uiRenderer)
			if err != nil {
				return fmt.Errorf("%s: %w", doc.name, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range results {
		if _, err := io.WriteString(a.Stdout, out); err != nil {
			return err
		}
	}
	return nil
}

// readInputs loads the input files, or stdin when no paths are given.
// "-" also reads stdin.
func (a *App) readInputs() ([]document, error) {
	if len(a.Paths) == 0 {
		text, err := io.ReadAll(a.Stdin)
		if err != nil {
			return nil, err
		}
		return []document{{name: "stdin", text: string(text)}}, nil
	}

	docs := make([]document, 0, len(a.Paths))
	for _, path := range a.Paths {
		if path == "-" {
			text, err := io.ReadAll(a.Stdin)
			if err != nil {
				return nil, err
			}
			docs = append(docs, document{name: "stdin", text: string(text)})
			continue
		}
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, document{name: path, text: string(text)})
	}
	return docs, nil
}

// render colorizes one document in the configured format.
func (a *App) render(text string, theme lexilla.Theme, uiRenderer *lipglosslib.Renderer) (string, error) {
	switch a.Format {
	case FormatText:
		return a.renderText(text), nil
	case FormatANSI:
		doc := a.lex(text)
		return lipgloss.NewRenderer(theme, uiRenderer).Render(text, doc.Ranges()), nil
	case FormatHTML:
		return a.renderHTML(text)
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, a.Format)
	}
}

// renderText writes one "style<TAB>line" row per input line.
func (a *App) renderText(text string) string {
	var sb strings.Builder
	for _, row := range classify(text) {
		sb.WriteString(row.style.String())
		sb.WriteByte('\t')
		sb.WriteString(strings.TrimRight(row.line, "\r\n"))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// renderHTML runs the document through the chroma lexer and HTML formatter.
func (a *App) renderHTML(text string) (string, error) {
	var opts []termchroma.Option
	if a.Escape {
		opts = append(opts, termchroma.WithEscapeSequences())
	}
	iterator, err := termchroma.New(opts...).Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	formatter := html.New(html.Standalone(true), html.WithLineNumbers(true))
	if err := formatter.Format(&sb, a.chromaStyle(), iterator); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// writeCorpus classifies every line of every input and saves them as
// regression cases, one per line, named input:lineNumber.
func (a *App) writeCorpus(docs []document) error {
	saver := a.Saver
	if saver == nil {
		saver = jsonl.NewSaver()
	}

	var cases []lexilla.Case
	for _, doc := range docs {
		for i, row := range classify(doc.text) {
			style, valueStart := terminal.Recognize([]byte(row.line))
			cases = append(cases, lexilla.Case{
				Name:       fmt.Sprintf("%s:%d", doc.name, i+1),
				Text:       row.line,
				Want:       style.String(),
				ValueStart: valueStart,
			})
		}
	}
	return saver.Save(a.Corpus, cases)
}

// classifiedLine is one input line and the style the lexer gave it.
type classifiedLine struct {
	line  string
	style lexilla.Style
}

// classify splits text into lines with the lexer's own line walk. With the
// split options off the lexer emits exactly one range per line, so the
// ranges double as line boundaries.
func classify(text string) []classifiedLine {
	doc := buffer.NewString(text)
	terminal.New().StyleRange(doc, 0, doc.Len())

	ranges := doc.Ranges()
	rows := make([]classifiedLine, 0, len(ranges))
	start := 0
	for _, r := range ranges {
		rows = append(rows, classifiedLine{line: text[start:r.End], style: r.Style})
		start = r.End
	}
	return rows
}

// lex styles text with the configured options.
func (a *App) lex(text string) *buffer.Document {
	doc := buffer.NewString(text)
	doc.SetOption(lexilla.OptionEscapeSequences, a.Escape)
	doc.SetOption(lexilla.OptionValueSeparate, a.Value)
	terminal.New().StyleRange(doc, 0, doc.Len())
	return doc
}

// chromaStyle picks the chroma style matching the theme flag.
func (a *App) chromaStyle() *chromalib.Style {
	if a.Theme == "light" {
		return styles.Get("github")
	}
	return styles.Get("github-dark")
}

// workers clamps the worker count to at least one.
func (a *App) workers() int {
	if a.Workers < 1 {
		return 1
	}
	return a.Workers
}

// themeByName resolves a -theme flag value.
func themeByName(name string) (lexilla.Theme, error) {
	switch name {
	case "", "dark":
		return lipgloss.DarkTheme(), nil
	case "light":
		return lipgloss.LightTheme(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownTheme, name)
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("termcolor", flag.ExitOnError)
	escape := fs.Bool("escape", false, "Decode ANSI escape sequences instead of showing them literally")
	value := fs.Bool("value", false, "Style diagnostic messages separately from their locations")
	theme := fs.String("theme", "dark", "Color theme: dark or light")
	format := fs.String("format", FormatANSI, "Output format: text, ansi or html")
	workers := fs.Int("workers", 4, "Number of inputs to render in parallel")
	corpus := fs.String("corpus", "", "Write classified lines to a JSONL corpus file instead of rendering")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &App{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Escape:  *escape,
		Value:   *value,
		Theme:   *theme,
		Format:  *format,
		Workers: *workers,
		Corpus:  *corpus,
		Paths:   fs.Args(),
	}

	return app.Run(ctx)
}
