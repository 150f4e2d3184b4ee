package engine

import (
	"fmt"

	"asciitrace/internal/util"
)

// DefaultCharSet goes from blank background to the densest glyph
const DefaultCharSet = " .:-=+*#%@"

// Palette maps intensities in [0,1] onto characters of increasing density
type Palette []byte

// NewPalette builds a palette from a charset. The first character is the
// background.
func NewPalette(charset string) (Palette, error) {
	if len(charset) < 2 {
		return nil, fmt.Errorf("charset %q must have at least 2 characters", charset)
	}
	for i := 0; i < len(charset); i++ {
		if charset[i] < ' ' || charset[i] > '~' {
			return nil, fmt.Errorf("charset %q: character %d is not printable ASCII", charset, i)
		}
	}
	return Palette(charset), nil
}

// Background returns the character used for misses and shadows
func (p Palette) Background() byte {
	return p[0]
}

// Quantize splits [0,1] into len(p) equal bins. 1.0 lands in the last bin.
func (p Palette) Quantize(intensity float64) byte {
	intensity = util.Clamp(intensity, 0, 1)
	idx := int(intensity * float64(len(p)))
	if idx >= len(p) {
		idx = len(p) - 1
	}
	return p[idx]
}
