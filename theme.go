package lexilla

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Theme provides colors for rendering styled output.
// Different implementations can provide light/dark variants.
type Theme interface {
	// Color returns the colors bound to a style. Styles a theme does not
	// distinguish return the zero ColorPair.
	Color(style Style) ColorPair
}
