package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	Home       = []byte("\x1b[H")
	Clear      = []byte("\x1b[2J\x1b[H")
	Reset      = []byte("\x1b[0m")
	HideCursor = []byte("\x1b[?25l")
	ShowCursor = []byte("\x1b[?25h")

	// Color prefixes
	FgRGB = []byte("\x1b[38;2;") // followed by R;G;B;m
	Fg256 = []byte("\x1b[38;5;") // followed by N;m
)

// AppendInt appends the decimal form of n without allocation.
// Optimized for terminal values (0-255 common, 0-999 typical max)
func AppendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(dst, buf[i:]...)
}

// AppendFgRGB appends a 24-bit foreground color sequence
func AppendFgRGB(dst []byte, r, g, b uint8) []byte {
	dst = append(dst, FgRGB...)
	dst = AppendInt(dst, int(r))
	dst = append(dst, ';')
	dst = AppendInt(dst, int(g))
	dst = append(dst, ';')
	dst = AppendInt(dst, int(b))
	return append(dst, 'm')
}

// AppendFg256 appends a 256-color foreground sequence
func AppendFg256(dst []byte, n uint8) []byte {
	dst = append(dst, Fg256...)
	dst = AppendInt(dst, int(n))
	return append(dst, 'm')
}
