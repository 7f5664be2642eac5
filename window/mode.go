package window

import "errors"

// Mode is a bitmask of rendering flags. Flags combine with |; the zero
// value selects full 24-bit color.
type Mode uint8

const (
	// ModeBW renders pixels as blank/solid block cells
	ModeBW Mode = 1 << iota
	// ModeHighRes packs 2x4 pixels per cell using braille glyphs.
	// Only meaningful together with ModeBW: on its own the dimensions
	// still double and quadruple, but rendering falls through to the
	// full-color branch, which reads the buffer as packed 0xRRGGBB.
	ModeHighRes
	// ModeMonochrome indexes pixels into the grayscale table
	ModeMonochrome
	// ModePalette4 indexes pixels into the 4-color table
	ModePalette4
	// ModePalette8 indexes pixels into the 8-color table
	ModePalette8
)

// modeColor masks the indexed-color flags incompatible with ModeHighRes
const modeColor = ModeMonochrome | ModePalette4 | ModePalette8

// ErrIncompatibleMode is returned by New when ModeHighRes is combined with
// an indexed-color flag. Braille cells carry no per-dot color.
var ErrIncompatibleMode = errors.New("high-res mode is incompatible with color modes")

// validate rejects flag combinations that cannot render
func (m Mode) validate() error {
	if m&ModeHighRes != 0 && m&modeColor != 0 {
		return ErrIncompatibleMode
	}
	return nil
}
