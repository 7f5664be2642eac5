// Package palette holds the fixed indexed-color tables consumed by window.
// Each table is an ordered list of SGR escape sequences; a pixel value is
// reduced modulo the table length before lookup. Slot 0 is a placeholder:
// pixel value 0 always renders as a blank cell and its escape is never
// emitted, but the slot still counts toward the modulo length.
package palette

// Monochrome is a 16-step ramp on the xterm-256 grayscale band, dark to light
var Monochrome = []string{
	"\x1b[38;5;232m",
	"\x1b[38;5;234m",
	"\x1b[38;5;235m",
	"\x1b[38;5;237m",
	"\x1b[38;5;238m",
	"\x1b[38;5;240m",
	"\x1b[38;5;241m",
	"\x1b[38;5;243m",
	"\x1b[38;5;244m",
	"\x1b[38;5;246m",
	"\x1b[38;5;247m",
	"\x1b[38;5;249m",
	"\x1b[38;5;250m",
	"\x1b[38;5;252m",
	"\x1b[38;5;253m",
	"\x1b[38;5;255m",
}

// Palette4 is a CGA-flavored 4-color table: white, cyan, magenta, yellow
var Palette4 = []string{
	"\x1b[37m",
	"\x1b[36m",
	"\x1b[35m",
	"\x1b[33m",
}

// Palette8 is the standard SGR foreground band (30-37):
// black, red, green, yellow, blue, magenta, cyan, white
var Palette8 = []string{
	"\x1b[30m",
	"\x1b[31m",
	"\x1b[32m",
	"\x1b[33m",
	"\x1b[34m",
	"\x1b[35m",
	"\x1b[36m",
	"\x1b[37m",
}
