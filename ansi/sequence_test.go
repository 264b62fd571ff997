package ansi_test

import (
	"testing"

	"github.com/eranif/lexilla"
	"github.com/eranif/lexilla/ansi"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNextToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		seq          string
		wantType     ansi.TokenType
		wantValue    int
		wantConsumed int
	}{
		{"empty input", "", ansi.TokenEnd, 0, 0},
		{"digit run", "196;", ansi.TokenNumber, 196, 3},
		{"digit run at terminator", "31m", ansi.TokenNumber, 31, 2},
		{"single zero", "0m", ansi.TokenNumber, 0, 1},
		{"leading zeros", "007m", ansi.TokenNumber, 7, 3},
		{"semicolon", ";31m", ansi.TokenSeparator, 0, 1},
		{"colon separator", ":5m", ansi.TokenSeparator, 0, 1},
		{"terminator first", "m31", ansi.TokenEnd, 0, 0},
		{"nul terminator", "\x0031", ansi.TokenEnd, 0, 0},
		{"unknown byte", "#31m", ansi.TokenEnd, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			typ, value, consumed := ansi.NextToken([]byte(tt.seq))
			assert.Equal(t, tt.wantType, typ)
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantConsumed, consumed)
		})
	}

	t.Run("never consumes past the input", func(t *testing.T) {
		t.Parallel()

		rapid.Check(t, func(rt *rapid.T) {
			seq := rapid.SliceOf(rapid.Byte()).Draw(rt, "seq")
			_, _, consumed := ansi.NextToken(seq)
			if consumed < 0 || consumed > len(seq) {
				rt.Fatalf("consumed %d out of %d bytes", consumed, len(seq))
			}
		})
	})
}

func TestStyleFromSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params string
		want   lexilla.Style
	}{
		{"empty parameters", "m", lexilla.StyleDefault},
		{"reset only", "0m", lexilla.StyleDefault},
		{"bold only", "1m", lexilla.StyleDefault},
		{"red", "31m", lexilla.StyleEsRed},
		{"mode then red", "0;31m", lexilla.StyleEsRed},
		{"bold then green", "1;32m", lexilla.StyleEsGreen},
		{"zero-padded mode", "01;31m", lexilla.StyleEsRed},
		{"leading separator", ";31m", lexilla.StyleDefault},
		{"bright white", "97m", lexilla.StyleEsWhite},
		{"palette code above mode range", "10m", lexilla.StyleEsBrightGreen},
		{"256-color red", "38;5;196m", lexilla.StyleEsBrightRed},
		{"256-color system red", "38;5;1m", lexilla.StyleEsRed},
		{"256-color colon separators", "38:5:196m", lexilla.StyleEsBrightRed},
		{"256-color index wraps like a byte", "38;5;257m", lexilla.StyleEsRed},
		{"true-color rejected", "38;2;255;0;0m", lexilla.StyleDefault},
		{"incomplete extended form", "38;5m", lexilla.StyleDefault},
		{"bare extended introducer", "38m", lexilla.StyleDefault},
		{"background ignored", "48;5;21m", lexilla.StyleDefault},
		{"bare background", "48m", lexilla.StyleDefault},
		{"code out of range", "999m", lexilla.StyleDefault},
		{"direct code above 255 rejected", "542m", lexilla.StyleDefault},
		{"garbage byte", "#31m", lexilla.StyleDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ansi.StyleFromSequence([]byte(tt.params)))
		})
	}

	t.Run("total and valid over arbitrary bytes", func(t *testing.T) {
		t.Parallel()

		rapid.Check(t, func(rt *rapid.T) {
			params := rapid.SliceOf(rapid.Byte()).Draw(rt, "params")
			got := ansi.StyleFromSequence(params)
			if got != lexilla.StyleDefault && !got.IsEscapeColor() {
				rt.Fatalf("StyleFromSequence(%q) = %v", params, got)
			}
		})
	})
}

func TestFindCharsetEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		s       string
		wantPos int
		wantOK  bool
	}{
		{"at start", "\x1b(Btext", 0, true},
		{"mid line", "ab\x1b(0cd", 2, true},
		{"designator U", "\x1b(U", 0, true},
		{"designator K", "\x1b(K", 0, true},
		{"unknown designator", "\x1b(X", -1, false},
		{"csi is not a charset escape", "\x1b[31m", -1, false},
		{"escape must be adjacent", "\x1bq(B", -1, false},
		{"second escape matches", "\x1bq\x1b(B", 2, true},
		{"truncated", "\x1b(", -1, false},
		{"empty", "", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pos, ok := ansi.FindCharsetEscape([]byte(tt.s))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPos, pos)
		})
	}
}
