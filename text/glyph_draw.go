package text

import "image/color"

// GlyphDraw is one sample emitted by Buffer.Draw.
//
// X and Y are content coordinates, before any padding is applied.
// Buffer.Draw only emits 1x1 cells; consumers should ignore other sizes.
// The alpha channel of Color carries the glyph coverage.
type GlyphDraw struct {
	X, Y  int
	W, H  int
	Color color.NRGBA
}
