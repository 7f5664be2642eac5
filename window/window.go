// Package window implements an in-memory pixel framebuffer rendered to an
// ANSI terminal as full-frame repaints. Pixels are plain integers whose
// meaning depends on the active Mode: zero/nonzero for block and braille
// rendering, a palette index for the indexed modes, or packed 0xRRGGBB for
// full color.
//
// A Window is not safe for concurrent use; callers serialize access.
package window

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/lixenwraith/termrender/palette"
	"github.com/lixenwraith/termrender/terminal"
)

// ErrBufferLength is returned by CopyBuffer when the supplied slice does
// not match the virtual resolution
var ErrBufferLength = errors.New("buffer length does not match width*height")

// Window is a pixel framebuffer bound to one output sink. Dimensions and
// mode are fixed at construction; re-create the window to change them.
type Window struct {
	mode Mode

	// physical character-cell dimensions, captured once at construction
	termWidth  int
	termHeight int

	// virtual pixel dimensions; exceed the physical ones under ModeHighRes
	width  int
	height int

	// row-major pixel values: buffer[x + y*width]
	buffer []int

	palette []string
	out     io.Writer
}

// Option configures a Window during construction
type Option func(*Window)

// WithSize overrides the physical terminal dimensions so the window can
// render off-terminal (tests, piped output, fixed-size frames)
func WithSize(width, height int) Option {
	return func(w *Window) {
		w.termWidth = width
		w.termHeight = height
	}
}

// WithOutput sets the render sink. Defaults to os.Stdout.
func WithOutput(out io.Writer) Option {
	return func(w *Window) {
		w.out = out
	}
}

// New builds a zeroed framebuffer for the given mode. The physical terminal
// size is queried once, falling back to 120x30 when it cannot be determined.
// Under ModeHighRes each character cell encodes a 2x4 pixel block, so the
// virtual width doubles and the virtual height quadruples.
//
// Clearing the screen and hiding the cursor are left to terminal.Setup;
// New touches no terminal state.
func New(mode Mode, opts ...Option) (*Window, error) {
	if err := mode.validate(); err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	w := &Window{mode: mode, out: os.Stdout}
	w.termWidth, w.termHeight = terminal.Size()
	for _, opt := range opts {
		opt(w)
	}

	w.width, w.height = w.termWidth, w.termHeight
	if mode&ModeHighRes != 0 {
		w.width *= 2
		w.height *= 4
	}
	w.buffer = make([]int, w.width*w.height)

	switch {
	case mode&ModeMonochrome != 0:
		w.palette = slices.Clone(palette.Monochrome)
	case mode&ModePalette4 != 0:
		w.palette = slices.Clone(palette.Palette4)
	case mode&ModePalette8 != 0:
		w.palette = slices.Clone(palette.Palette8)
	}

	return w, nil
}

// Mode returns the active mode flags
func (w *Window) Mode() Mode { return w.mode }

// Width returns the virtual pixel width
func (w *Window) Width() int { return w.width }

// Height returns the virtual pixel height
func (w *Window) Height() int { return w.height }

// TerminalWidth returns the physical character-cell width
func (w *Window) TerminalWidth() int { return w.termWidth }

// TerminalHeight returns the physical character-cell height
func (w *Window) TerminalHeight() int { return w.termHeight }

// Buffer returns the live pixel slice, row-major with index x + y*width.
// Mutations are visible to the next Update.
func (w *Window) Buffer() []int { return w.buffer }

// Palette returns the active escape-string table; empty for block, braille,
// and full-color modes
func (w *Window) Palette() []string { return w.palette }

// Plot sets the pixel at (x, y) to val. Out-of-range coordinates are
// dropped silently. The writable range excludes row 0 and column 0: the
// lower bound is exclusive, a long-standing quirk callers depend on.
func (w *Window) Plot(x, y, val int) {
	if 0 < x && x < w.width && 0 < y && y < w.height {
		w.buffer[x+y*w.width] = val
	}
}

// CopyBuffer replaces the whole pixel buffer from buf, ordered left to
// right then top to bottom. The window keeps its own copy. On a length
// mismatch the existing buffer is left untouched.
func (w *Window) CopyBuffer(buf []int) error {
	if len(buf) != w.width*w.height {
		return fmt.Errorf("window: %w: got %d, want %d",
			ErrBufferLength, len(buf), w.width*w.height)
	}
	copy(w.buffer, buf)
	return nil
}

// Clear zeroes every pixel, keeping dimensions
func (w *Window) Clear() {
	clear(w.buffer)
}

// RGB packs three 8-bit channels into the 0xRRGGBB pixel value used by
// full-color mode
func RGB(r, g, b uint8) int {
	return int(r)<<16 | int(g)<<8 | int(b)
}
