package lipgloss

import (
	"strings"

	lipglosslib "github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/eranif/lexilla"
)

// tabWidth is the standard 8-column tab stop interval.
const tabWidth = 8

// escPicture is the Unicode control picture shown in place of raw escape
// bytes so sequences stay visible instead of restyling the terminal.
const escPicture = "␛"

// Renderer turns classified text into a terminal-ready string.
type Renderer struct {
	theme    lexilla.Theme
	renderer *lipglosslib.Renderer
	styles   map[lexilla.Style]lipglosslib.Style
}

// NewRenderer returns a renderer that styles text with theme colors. If
// renderer is nil, the default lipgloss renderer is used.
func NewRenderer(theme lexilla.Theme, renderer *lipglosslib.Renderer) *Renderer {
	return &Renderer{
		theme:    theme,
		renderer: renderer,
		styles:   make(map[lexilla.Style]lipglosslib.Style),
	}
}

// Render styles text according to ranges, which tile the text the way the
// lexer emits them. Tabs expand at 8-column stops, escape bytes render as
// a visible marker, and styling never crosses a line break so backgrounds
// cannot bleed across rows.
func (r *Renderer) Render(text string, ranges []lexilla.Range) string {
	var sb strings.Builder
	col := 0
	start := 0
	for _, rg := range ranges {
		col = r.renderSegment(&sb, text[start:rg.End], r.style(rg.Style), col)
		start = rg.End
	}
	return sb.String()
}

// renderSegment writes one styled segment, splitting it at line breaks.
// It returns the column position after the segment. CRLF and bare CR both
// come out as a plain newline.
func (r *Renderer) renderSegment(sb *strings.Builder, segment string, style lipglosslib.Style, col int) int {
	for len(segment) > 0 {
		i := strings.IndexAny(segment, "\r\n")
		if i == -1 {
			return r.renderChunk(sb, segment, style, col)
		}

		r.renderChunk(sb, segment[:i], style, col)
		sb.WriteByte('\n')
		col = 0

		if segment[i] == '\r' && i+1 < len(segment) && segment[i+1] == '\n' {
			i++
		}
		segment = segment[i+1:]
	}
	return col
}

// renderChunk writes one line fragment and returns the column after it.
func (r *Renderer) renderChunk(sb *strings.Builder, chunk string, style lipglosslib.Style, col int) int {
	if chunk == "" {
		return col
	}
	expanded := ExpandTabs(strings.ReplaceAll(chunk, "\x1b", escPicture), col)
	sb.WriteString(style.Render(expanded))
	return col + xansi.StringWidth(expanded)
}

// style returns the lipgloss style for a lexer style, building and caching
// it on first use.
func (r *Renderer) style(s lexilla.Style) lipglosslib.Style {
	if cached, ok := r.styles[s]; ok {
		return cached
	}

	style := r.newStyle()
	pair := r.theme.Color(s)
	if pair.Foreground != "" {
		style = style.Foreground(lipglosslib.Color(pair.Foreground))
	}
	if pair.Background != "" {
		style = style.Background(lipglosslib.Color(pair.Background))
	}
	r.styles[s] = style
	return style
}

// newStyle creates a new lipgloss style using the configured renderer.
func (r *Renderer) newStyle() lipglosslib.Style {
	if r.renderer != nil {
		return r.renderer.NewStyle()
	}
	return lipglosslib.NewStyle()
}

// ExpandTabs converts tab characters to the appropriate number of spaces
// based on standard 8-column tab stops. The startCol parameter indicates
// the column position where the string begins, which affects how the first
// tab is expanded.
func ExpandTabs(s string, startCol int) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	var sb strings.Builder
	col := startCol
	for _, r := range s {
		if r == '\t' {
			nextStop := ((col / tabWidth) + 1) * tabWidth
			sb.WriteString(strings.Repeat(" ", nextStop-col))
			col = nextStop
		} else {
			sb.WriteRune(r)
			col += xansi.StringWidth(string(r))
		}
	}
	return sb.String()
}
