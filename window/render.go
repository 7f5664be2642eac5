package window

import (
	"fmt"
	"unicode/utf8"

	"github.com/lixenwraith/termrender/terminal"
)

// block is the solid glyph emitted for lit pixels (3 bytes UTF-8)
var block = []byte("█")

// Update serializes the whole buffer and writes it to the output sink as a
// single full repaint: cursor home, then one encoded cell per character
// position, no trailing newline. The sink is flushed when it supports it.
//
// Branch priority follows the mode flags: ModeBW first (plain blocks, or
// braille under ModeHighRes), then the indexed-color modes, else full
// 24-bit color.
func (w *Window) Update() error {
	var frame []byte
	switch {
	case w.mode&ModeBW != 0 && w.mode&ModeHighRes == 0:
		frame = w.renderBlocks()
	case w.mode&ModeBW != 0:
		frame = w.renderBraille()
	case w.mode&modeColor != 0:
		frame = w.renderIndexed()
	default:
		frame = w.renderTrueColor()
	}

	if _, err := w.out.Write(frame); err != nil {
		return fmt.Errorf("window: write frame: %w", err)
	}
	if f, ok := w.out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("window: flush frame: %w", err)
		}
	}
	return nil
}

// renderBlocks maps zero to a space and anything else to a solid block
func (w *Window) renderBlocks() []byte {
	out := make([]byte, 0, len(terminal.Home)+len(w.buffer)*len(block))
	out = append(out, terminal.Home...)
	for _, v := range w.buffer {
		if v == 0 {
			out = append(out, ' ')
		} else {
			out = append(out, block...)
		}
	}
	return out
}

// renderBraille packs each 2x4 pixel tile into one braille glyph.
// Dot bit assignment within a tile, by (dx, dy) offset:
//
//	(0,0)->0  (1,0)->3
//	(0,1)->1  (1,1)->4
//	(0,2)->2  (1,2)->5
//	(0,3)->6  (1,3)->7
//
// which is the standard 8-dot cell starting at U+2800.
func (w *Window) renderBraille() []byte {
	// every braille rune is 3 bytes UTF-8
	out := make([]byte, 0, len(terminal.Home)+(w.width/2)*(w.height/4)*3)
	out = append(out, terminal.Home...)
	for y := 0; y < w.height; y += 4 {
		for x := 0; x < w.width; x += 2 {
			idx := x + y*w.width
			var dots rune
			if w.buffer[idx] != 0 {
				dots |= 1 << 0
			}
			if w.buffer[idx+1] != 0 {
				dots |= 1 << 3
			}
			if w.buffer[idx+w.width] != 0 {
				dots |= 1 << 1
			}
			if w.buffer[idx+1+w.width] != 0 {
				dots |= 1 << 4
			}
			if w.buffer[idx+w.width*2] != 0 {
				dots |= 1 << 2
			}
			if w.buffer[idx+1+w.width*2] != 0 {
				dots |= 1 << 5
			}
			if w.buffer[idx+w.width*3] != 0 {
				dots |= 1 << 6
			}
			if w.buffer[idx+1+w.width*3] != 0 {
				dots |= 1 << 7
			}
			out = utf8.AppendRune(out, 0x2800+dots)
		}
	}
	return out
}

// renderIndexed emits palette escapes with run-length elision: the escape
// for an index is re-emitted only when it differs from the previous nonzero
// index. Zero pixels render as spaces and do not reset the run.
func (w *Window) renderIndexed() []byte {
	n := len(w.palette)
	maxEsc := 0
	for _, esc := range w.palette {
		maxEsc = max(maxEsc, len(esc))
	}

	out := make([]byte, 0, len(terminal.Home)+len(w.buffer)*(maxEsc+len(block)))
	out = append(out, terminal.Home...)
	prev := -1
	for _, v := range w.buffer {
		// floored modulo keeps any value, negatives included, in [0, n)
		v %= n
		if v < 0 {
			v += n
		}
		switch {
		case v == 0:
			out = append(out, ' ')
		case v != prev:
			out = append(out, w.palette[v]...)
			out = append(out, block...)
			prev = v
		default:
			out = append(out, block...)
		}
	}
	return out
}

// renderTrueColor decodes each pixel as packed 0xRRGGBB and emits a 24-bit
// foreground escape, with the same elision discipline as renderIndexed but
// keyed on the raw packed value.
func (w *Window) renderTrueColor() []byte {
	// worst case per pixel: \x1b[38;2;255;255;255m plus the glyph
	out := make([]byte, 0, len(terminal.Home)+len(w.buffer)*(19+len(block)))
	out = append(out, terminal.Home...)
	prev := -1
	for _, v := range w.buffer {
		switch {
		case v == 0:
			out = append(out, ' ')
		case v != prev:
			out = terminal.AppendFgRGB(out, uint8(v>>16), uint8(v>>8), uint8(v))
			out = append(out, block...)
			prev = v
		default:
			out = append(out, block...)
		}
	}
	return out
}
