package ansi

import "github.com/eranif/lexilla"

func channels(c uint32) (r, g, b int) {
	return int(c >> 16 & 0xff), int(c >> 8 & 0xff), int(c & 0xff)
}

// distance is a red-mean weighted squared color difference (a cheapened
// variant of the compuphase metric). It is not a proper metric; the only
// properties relied on are d(x,x) == 0 and relative ordering.
func distance(x, y uint32) int {
	xr, xg, xb := channels(x)
	yr, yg, yb := channels(y)
	rSum := xr + yr
	r, g, b := xr-yr, xg-yg, xb-yb
	return (1024+rSum)*r*r + 2048*g*g + (1534-rSum)*b*b
}

// StyleForColor maps an SGR color code or a 256-color palette index to one
// of the sixteen terminal color styles. Codes 30-37 and 90-97 select the
// normal and bright base colors directly; every other value is resolved
// through the palette to the nearest base color, first seen winning ties.
// Total over all inputs.
func StyleForColor(n uint8) lexilla.Style {
	switch {
	case n >= 30 && n <= 37:
		return baseStyles[n-30]
	case n >= 90 && n <= 97:
		return baseStyles[n-90+8]
	}
	rgb := Palette256(n)
	best := 0
	bestDist := distance(rgb, baseColors[0])
	for i := 1; i < len(baseColors); i++ {
		if d := distance(rgb, baseColors[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return baseStyles[best]
}
