package lexilla

import "fmt"

// Style identifies one output style category. The numeric values are stable
// and host-visible: hosts key rendering tables on them, and they match the
// constants editors bind this lexer's output to.
type Style int

// Line classification styles.
const (
	StyleDefault Style = iota // unclassified text
	StylePython               // File "x.py", line 10
	StyleGCC                  // path:line:[col:] message
	StyleMS                   // path(line[,col]) : message
	StyleCmd                  // > command echo
	StyleBorland              // Error/Warning with message
	StylePerl                 // message at path line 10
	StyleNet                  //    at func:line trace
	StyleLua                  // exe: path:line: message
	StyleCtag                 // tag TAB file TAB pattern
	StyleDiffChanged          // ! changed marker
	StyleDiffAddition         // + added line
	StyleDiffDeletion         // - or < removed line
	StyleDiffMessage          // ---/+++ headers
	StylePHP                  // message in path on line 10
	StyleELF                  // Line 10, file x (Lahey Fortran)
	StyleIFC                  // Error 10 at (5:x) : message (Intel)
	StyleIfort                // fortcom: diagnostics
	StyleAbsoft               // cf90- diagnostics
	StyleTidy                 // line 10 column 5 (HTML Tidy)
	StyleJavaStack            // TAB at pkg.Cls.m(F.java:10)
	StyleValue                // trailing message when value-separate is on
	StyleGCCIncludedFrom      // In file included from ...
	StyleEscSeq               // recognized escape-sequence bytes
	StyleEscSeqUnknown        // unknown or unterminated escape bytes
	StyleGCCExcerpt           // 10 | source excerpt
	StyleBash                 // path: line 10: message
)

// Terminal color styles selected by escape-sequence decoding, in base
// palette order. Values between StyleBash and StyleEsBlack are reserved.
const (
	StyleEsBlack Style = 40 + iota
	StyleEsRed
	StyleEsGreen
	StyleEsBrown
	StyleEsBlue
	StyleEsMagenta
	StyleEsCyan
	StyleEsGray
	StyleEsDarkGray
	StyleEsBrightRed
	StyleEsBrightGreen
	StyleEsYellow
	StyleEsBrightBlue
	StyleEsBrightMagenta
	StyleEsBrightCyan
	StyleEsWhite
)

// Refinements of StyleGCC by message keyword.
const (
	StyleGCCWarning Style = 56
	StyleGCCNote    Style = 57
)

var styleNames = map[Style]string{
	StyleDefault:         "default",
	StylePython:          "python",
	StyleGCC:             "gcc",
	StyleMS:              "ms",
	StyleCmd:             "cmd",
	StyleBorland:         "borland",
	StylePerl:            "perl",
	StyleNet:             "net",
	StyleLua:             "lua",
	StyleCtag:            "ctag",
	StyleDiffChanged:     "diff-changed",
	StyleDiffAddition:    "diff-addition",
	StyleDiffDeletion:    "diff-deletion",
	StyleDiffMessage:     "diff-message",
	StylePHP:             "php",
	StyleELF:             "elf",
	StyleIFC:             "ifc",
	StyleIfort:           "ifort",
	StyleAbsoft:          "absoft",
	StyleTidy:            "tidy",
	StyleJavaStack:       "java-stack",
	StyleValue:           "value",
	StyleGCCIncludedFrom: "gcc-included-from",
	StyleEscSeq:          "escape-sequence",
	StyleEscSeqUnknown:   "escape-sequence-unknown",
	StyleGCCExcerpt:      "gcc-excerpt",
	StyleBash:            "bash",
	StyleEsBlack:         "es-black",
	StyleEsRed:           "es-red",
	StyleEsGreen:         "es-green",
	StyleEsBrown:         "es-brown",
	StyleEsBlue:          "es-blue",
	StyleEsMagenta:       "es-magenta",
	StyleEsCyan:          "es-cyan",
	StyleEsGray:          "es-gray",
	StyleEsDarkGray:      "es-dark-gray",
	StyleEsBrightRed:     "es-bright-red",
	StyleEsBrightGreen:   "es-bright-green",
	StyleEsYellow:        "es-yellow",
	StyleEsBrightBlue:    "es-bright-blue",
	StyleEsBrightMagenta: "es-bright-magenta",
	StyleEsBrightCyan:    "es-bright-cyan",
	StyleEsWhite:         "es-white",
	StyleGCCWarning:      "gcc-warning",
	StyleGCCNote:         "gcc-note",
}

var stylesByName = func() map[string]Style {
	m := make(map[string]Style, len(styleNames))
	for s, name := range styleNames {
		m[name] = s
	}
	return m
}()

// String returns the stable name of the style ("gcc", "diff-addition").
// Unnamed values format as "style-N".
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("style-%d", int(s))
}

// IsEscapeColor reports whether s is one of the sixteen terminal color
// styles produced by escape-sequence decoding.
func (s Style) IsEscapeColor() bool {
	return s >= StyleEsBlack && s <= StyleEsWhite
}

// ParseStyle returns the style with the given name. It is the inverse of
// String for every named style; corpus files and command flags identify
// styles this way.
func ParseStyle(name string) (Style, error) {
	if s, ok := stylesByName[name]; ok {
		return s, nil
	}
	return StyleDefault, ValidationError{Case: -1, Field: "style", Value: name, Reason: ErrUnknownStyle}
}
