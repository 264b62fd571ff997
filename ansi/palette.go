package ansi

import "github.com/eranif/lexilla"

// baseColors are the sixteen xterm system colors (packed 0xRRGGBB), taken
// from the XTerm-col.ad defaults. Their order matches the style constants
// StyleEsBlack through StyleEsWhite.
var baseColors = [16]uint32{
	0x000000, 0xcd0000, 0x00cd00, 0xcdcd00,
	0x0000ee, 0xcd00cd, 0x00cdcd, 0xe5e5e5,
	0x7f7f7f, 0xff0000, 0x00ff00, 0xffff00,
	0x5c5cff, 0xff00ff, 0x00ffff, 0xffffff,
}

// baseStyles binds each base color index to its output style.
var baseStyles = [16]lexilla.Style{
	lexilla.StyleEsBlack, lexilla.StyleEsRed,
	lexilla.StyleEsGreen, lexilla.StyleEsBrown,
	lexilla.StyleEsBlue, lexilla.StyleEsMagenta,
	lexilla.StyleEsCyan, lexilla.StyleEsGray,
	lexilla.StyleEsDarkGray, lexilla.StyleEsBrightRed,
	lexilla.StyleEsBrightGreen, lexilla.StyleEsYellow,
	lexilla.StyleEsBrightBlue, lexilla.StyleEsBrightMagenta,
	lexilla.StyleEsBrightCyan, lexilla.StyleEsWhite,
}

// cubeLevels are the channel values of the 6x6x6 color cube.
var cubeLevels = [6]uint32{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// palette is the standard 256-color terminal palette: the sixteen system
// colors, the 216-entry color cube, and a 24-step grayscale ramp.
var palette = func() [256]uint32 {
	var p [256]uint32
	copy(p[:16], baseColors[:])
	for i := 16; i < 232; i++ {
		n := i - 16
		r := cubeLevels[n/36]
		g := cubeLevels[n/6%6]
		b := cubeLevels[n%6]
		p[i] = r<<16 | g<<8 | b
	}
	for i := 232; i < 256; i++ {
		v := uint32(i-232)*10 + 8
		p[i] = v<<16 | v<<8 | v
	}
	return p
}()

// Palette256 returns the sRGB value (packed 0xRRGGBB) for an index in the
// 256-color palette.
func Palette256(index uint8) uint32 {
	return palette[index]
}

// BaseColor returns the sRGB value of one of the sixteen system colors.
// Style must be one of the terminal color styles; other styles report false.
func BaseColor(style lexilla.Style) (uint32, bool) {
	if !style.IsEscapeColor() {
		return 0, false
	}
	return baseColors[style-lexilla.StyleEsBlack], true
}
