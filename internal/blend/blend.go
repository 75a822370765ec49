// Package blend composites 8-bit coverage samples onto opaque pixels.
package blend

import (
	"fmt"
	"image/color"
)

// Mode represents a blending mode.
type Mode int

const (
	// ModeBlack scales the source color by its alpha and replaces the
	// destination: c' = c*a/255. Partially covered pixels fade towards black.
	ModeBlack Mode = iota
	// ModeSourceOver is standard alpha blending onto the destination.
	ModeSourceOver
)

// String returns the name accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeBlack:
		return "black"
	case ModeSourceOver:
		return "over"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name as returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "black":
		return ModeBlack, nil
	case "over":
		return ModeSourceOver, nil
	default:
		return ModeBlack, fmt.Errorf("blend: unknown mode %q", s)
	}
}

// Blend composites src onto the opaque dst using mode.
// The result is always opaque.
func Blend(src color.NRGBA, dst color.RGBA, mode Mode) color.RGBA {
	switch mode {
	case ModeSourceOver:
		return sourceOver(src, dst)
	default:
		return black(src)
	}
}

// black multiplies the source color by its alpha.
func black(src color.NRGBA) color.RGBA {
	return color.RGBA{
		R: mulDiv255(src.R, src.A),
		G: mulDiv255(src.G, src.A),
		B: mulDiv255(src.B, src.A),
		A: 0xff,
	}
}

// sourceOver blends source over an opaque destination.
func sourceOver(src color.NRGBA, dst color.RGBA) color.RGBA {
	inv := 0xff - src.A
	return color.RGBA{
		R: lerp(src.R, dst.R, src.A, inv),
		G: lerp(src.G, dst.G, src.A, inv),
		B: lerp(src.B, dst.B, src.A, inv),
		A: 0xff,
	}
}

// lerp returns (s*a + d*inv) / 255 with a + inv = 255.
func lerp(s, d, a, inv uint8) uint8 {
	return uint8(div255(uint16(s)*uint16(a) + uint16(d)*uint16(inv))) //nolint:gosec // result is at most 255
}
