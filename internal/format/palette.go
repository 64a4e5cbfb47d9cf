package format

import (
	"strconv"
	"strings"
)

// ANSI sequences used by the swatch and the screen clear.
const (
	Reset       = "\x1b[0m"
	ClearScreen = "\x1B[2J\x1B[1;1H"

	swatch = "   "
)

// Palette returns one three-space background block per color index in
// [start, end), followed by a reset. Indices 0-7 use the classic 4n
// background codes, 8-255 the 256-color form; anything else is skipped.
func Palette(start, end int) string {
	var b strings.Builder
	for n := start; n < end; n++ {
		switch {
		case n >= 0 && n < 8:
			b.WriteString("\x1b[4" + strconv.Itoa(n) + "m")
		case n >= 8 && n < 256:
			b.WriteString("\x1b[48;5;" + strconv.Itoa(n) + "m")
		default:
			continue
		}
		b.WriteString(swatch)
	}
	b.WriteString(Reset)
	return b.String()
}

// NormalColors is the swatch for the eight standard colors.
func NormalColors() string {
	return Palette(0, 8)
}

// BrightColors is the swatch for the eight bright colors.
func BrightColors() string {
	return Palette(8, 16)
}
