// Package lipgloss renders classified output with the Lipgloss styling
// library and provides the built-in color themes.
package lipgloss

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/eranif/lexilla"
	"github.com/eranif/lexilla/ansi"
)

// Compile-time interface verification.
var _ lexilla.Theme = (*Theme)(nil)

// Theme implements lexilla.Theme with a fixed style-to-color table.
type Theme struct {
	colors map[lexilla.Style]lexilla.ColorPair
}

// Color returns the colors bound to a style. Styles the theme does not
// distinguish return the zero ColorPair, which renders with the terminal
// defaults.
func (t *Theme) Color(style lexilla.Style) lexilla.ColorPair {
	return t.colors[style]
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
// Plain output keeps the terminal foreground; only classified lines are
// colored.
func DarkTheme() *Theme {
	return newTheme(map[lexilla.Style]lexilla.ColorPair{
		lexilla.StyleGCC:     {Foreground: "#f38ba8"}, // Red
		lexilla.StyleMS:      {Foreground: "#f38ba8"},
		lexilla.StyleBorland: {Foreground: "#f38ba8"},
		lexilla.StylePerl:    {Foreground: "#f38ba8"},
		lexilla.StyleLua:     {Foreground: "#f38ba8"},
		lexilla.StylePHP:     {Foreground: "#f38ba8"},
		lexilla.StyleELF:     {Foreground: "#f38ba8"},
		lexilla.StyleIFC:     {Foreground: "#f38ba8"},
		lexilla.StyleIfort:   {Foreground: "#f38ba8"},
		lexilla.StyleAbsoft:  {Foreground: "#f38ba8"},
		lexilla.StyleTidy:    {Foreground: "#f38ba8"},
		lexilla.StyleBash:    {Foreground: "#f38ba8"},

		lexilla.StyleGCCWarning:      {Foreground: "#f9e2af"}, // Yellow
		lexilla.StyleGCCNote:         {Foreground: "#89dceb"}, // Sky
		lexilla.StyleGCCIncludedFrom: {Foreground: "#89b4fa"}, // Blue
		lexilla.StyleGCCExcerpt:      {Foreground: "#6c7086"}, // Muted gray

		lexilla.StylePython:    {Foreground: "#cba6f7"}, // Mauve
		lexilla.StyleJavaStack: {Foreground: "#cba6f7"},
		lexilla.StyleNet:       {Foreground: "#cba6f7"},

		lexilla.StyleCmd:   {Foreground: "#89b4fa"}, // Blue
		lexilla.StyleCtag:  {Foreground: "#94e2d5"}, // Teal
		lexilla.StyleValue: {Foreground: "#cdd6f4"}, // Base foreground

		lexilla.StyleDiffAddition: {
			Foreground: "#a6e3a1", // Green
			Background: "#004000", // Very dark green
		},
		lexilla.StyleDiffDeletion: {
			Foreground: "#f38ba8", // Red
			Background: "#3f0001", // Very dark red
		},
		lexilla.StyleDiffChanged: {Foreground: "#f9e2af"}, // Yellow
		lexilla.StyleDiffMessage: {
			Foreground: "#f9e2af", // Yellow
			Background: "#313244", // Dark surface
		},

		lexilla.StyleEscSeq: {Foreground: "#585b70"}, // Muted gray
		lexilla.StyleEscSeqUnknown: {
			Foreground: "#1e1e2e", // Dark text on bright background
			Background: "#f38ba8", // Bright red background
		},
	})
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return newTheme(map[lexilla.Style]lexilla.ColorPair{
		lexilla.StyleGCC:     {Foreground: "#d20f39"}, // Red
		lexilla.StyleMS:      {Foreground: "#d20f39"},
		lexilla.StyleBorland: {Foreground: "#d20f39"},
		lexilla.StylePerl:    {Foreground: "#d20f39"},
		lexilla.StyleLua:     {Foreground: "#d20f39"},
		lexilla.StylePHP:     {Foreground: "#d20f39"},
		lexilla.StyleELF:     {Foreground: "#d20f39"},
		lexilla.StyleIFC:     {Foreground: "#d20f39"},
		lexilla.StyleIfort:   {Foreground: "#d20f39"},
		lexilla.StyleAbsoft:  {Foreground: "#d20f39"},
		lexilla.StyleTidy:    {Foreground: "#d20f39"},
		lexilla.StyleBash:    {Foreground: "#d20f39"},

		lexilla.StyleGCCWarning:      {Foreground: "#df8e1d"}, // Yellow
		lexilla.StyleGCCNote:         {Foreground: "#04a5e5"}, // Sky
		lexilla.StyleGCCIncludedFrom: {Foreground: "#1e66f5"}, // Blue
		lexilla.StyleGCCExcerpt:      {Foreground: "#9ca0b0"}, // Muted gray

		lexilla.StylePython:    {Foreground: "#8839ef"}, // Mauve
		lexilla.StyleJavaStack: {Foreground: "#8839ef"},
		lexilla.StyleNet:       {Foreground: "#8839ef"},

		lexilla.StyleCmd:   {Foreground: "#1e66f5"}, // Blue
		lexilla.StyleCtag:  {Foreground: "#179299"}, // Teal
		lexilla.StyleValue: {Foreground: "#4c4f69"}, // Base foreground

		lexilla.StyleDiffAddition: {
			Foreground: "#40a02b", // Green
			Background: "#d4f4d4", // Subtle green background
		},
		lexilla.StyleDiffDeletion: {
			Foreground: "#d20f39", // Red
			Background: "#f4d4d4", // Subtle red background
		},
		lexilla.StyleDiffChanged: {Foreground: "#df8e1d"}, // Yellow
		lexilla.StyleDiffMessage: {
			Foreground: "#df8e1d", // Yellow
			Background: "#e6e9ef", // Light surface
		},

		lexilla.StyleEscSeq: {Foreground: "#bcc0cc"}, // Muted gray
		lexilla.StyleEscSeqUnknown: {
			Foreground: "#ffffff", // White text on bright background
			Background: "#d20f39", // Bright red background
		},
	})
}

// newTheme merges the shared terminal color styles into a theme's
// diagnostic color table.
func newTheme(colors map[lexilla.Style]lexilla.ColorPair) *Theme {
	merged := escapePairs()
	for style, pair := range colors {
		merged[style] = pair
	}
	return &Theme{colors: merged}
}

// escapePairs derives foreground colors for the sixteen terminal color
// styles from the base palette. Both themes share them; they mirror what
// the escape sequence asked for, not the theme's own accents.
func escapePairs() map[lexilla.Style]lexilla.ColorPair {
	pairs := make(map[lexilla.Style]lexilla.ColorPair, 16)
	for style := lexilla.StyleEsBlack; style <= lexilla.StyleEsWhite; style++ {
		rgb, ok := ansi.BaseColor(style)
		if !ok {
			continue
		}
		c := colorful.Color{
			R: float64(rgb>>16&0xff) / 255,
			G: float64(rgb>>8&0xff) / 255,
			B: float64(rgb&0xff) / 255,
		}
		pairs[style] = lexilla.ColorPair{Foreground: c.Hex()}
	}
	return pairs
}
