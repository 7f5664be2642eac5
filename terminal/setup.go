package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Fallback dimensions assumed when the physical terminal size cannot be
// determined
const (
	FallbackWidth  = 120
	FallbackHeight = 30
)

// Setup prepares the terminal for framebuffer output: clears the screen and
// hides the cursor. Escapes are skipped when w is a file that is not a TTY,
// keeping redirected output clean.
func Setup(w io.Writer) error {
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	seq := make([]byte, 0, len(Clear)+len(HideCursor))
	seq = append(seq, Clear...)
	seq = append(seq, HideCursor...)
	_, err := w.Write(seq)
	return err
}

// Restore undoes Setup: resets text attributes and shows the cursor
func Restore(w io.Writer) error {
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	seq := make([]byte, 0, len(Reset)+len(ShowCursor))
	seq = append(seq, Reset...)
	seq = append(seq, ShowCursor...)
	_, err := w.Write(seq)
	return err
}
