//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// Size returns the physical character-cell dimensions of stdout.
// Falls back to 120x30 when the query fails (redirected output, no tty)
func Size() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return FallbackWidth, FallbackHeight
	}
	return int(ws.Col), int(ws.Row)
}
