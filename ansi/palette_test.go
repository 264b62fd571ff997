package ansi_test

import (
	"testing"

	"github.com/eranif/lexilla"
	"github.com/eranif/lexilla/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalette256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		index uint8
		want  uint32
	}{
		{"system black", 0, 0x000000},
		{"system red", 1, 0xcd0000},
		{"system white", 7, 0xe5e5e5},
		{"bright red", 9, 0xff0000},
		{"bright white", 15, 0xffffff},
		{"cube origin", 16, 0x000000},
		{"cube blue corner", 21, 0x0000ff},
		{"cube red corner", 196, 0xff0000},
		{"cube white corner", 231, 0xffffff},
		{"grayscale start", 232, 0x080808},
		{"grayscale end", 255, 0xeeeeee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ansi.Palette256(tt.index))
		})
	}
}

func TestBaseColor(t *testing.T) {
	t.Parallel()

	t.Run("resolves every terminal color style", func(t *testing.T) {
		t.Parallel()

		for s := lexilla.StyleEsBlack; s <= lexilla.StyleEsWhite; s++ {
			rgb, ok := ansi.BaseColor(s)
			require.True(t, ok)
			assert.Equal(t, ansi.Palette256(uint8(s-lexilla.StyleEsBlack)), rgb)
		}
	})

	t.Run("rejects non-color styles", func(t *testing.T) {
		t.Parallel()

		_, ok := ansi.BaseColor(lexilla.StyleGCC)
		assert.False(t, ok)
	})
}
