package jbl

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)

// RGB is an opaque color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ValidHex reports whether s is a #RRGGBB or #RGB color.
func ValidHex(s string) bool {
	return hexColor.MatchString(s)
}

// ParseHex parses a #RRGGBB or #RGB color, case-insensitively.
// In the short form every digit is doubled, so "#fff" is "#ffffff".
func ParseHex(s string) (RGB, error) {
	if !ValidHex(s) {
		return RGB{}, ErrInvalidColor
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, ErrInvalidColor
	}

	return RGB{
		R: uint8(n >> 16 & 0xff), //nolint:gosec // masked
		G: uint8(n >> 8 & 0xff),  //nolint:gosec // masked
		B: uint8(n & 0xff),       //nolint:gosec // masked
	}, nil
}

// Hex returns c as an uppercase #RRGGBB string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA implements the color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// NRGBA returns c as an opaque color.NRGBA.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (c RGB) String() string { return c.Hex() }
