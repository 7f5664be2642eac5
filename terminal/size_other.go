//go:build !unix

package terminal

import (
	"os"

	"golang.org/x/term"
)

// Size returns the physical character-cell dimensions of stdout.
// Falls back to 120x30 when the query fails (redirected output, no tty)
func Size() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w == 0 || h == 0 {
		return FallbackWidth, FallbackHeight
	}
	return w, h
}
