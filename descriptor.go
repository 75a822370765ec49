package jbl

import (
	"fmt"
	"math"

	"github.com/gogpu/jbl/text"
)

// Descriptor holds validated render parameters.
type Descriptor struct {
	// Text is rendered as is. It may be empty and may contain LF.
	Text string

	// Family selects the font family.
	Family text.Family

	// Size is the font size in pixels per em.
	Size float64

	// Color is the glyph color.
	Color RGB

	// Background fills the whole canvas, padding included.
	Background RGB

	// Padding is the border width on each side, in pixels.
	Padding uint8
}

// NewDescriptor validates raw parameters and builds a Descriptor.
//
// fontName is mapped with text.ParseFamily. Both colors are validated
// before either is converted, the foreground first; a bad color yields a
// *ColorError wrapping ErrInvalidColor. A size that is not positive and
// finite yields ErrInvalidSize.
func NewDescriptor(txt, fontName string, size float64, colorHex, bgHex string, padding uint8) (*Descriptor, error) {
	if !ValidHex(colorHex) {
		return nil, &ColorError{Field: "color", Value: colorHex}
	}
	if !ValidHex(bgHex) {
		return nil, &ColorError{Field: "background-color", Value: bgHex}
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	fg, err := ParseHex(colorHex)
	if err != nil {
		return nil, &ColorError{Field: "color", Value: colorHex}
	}
	bg, err := ParseHex(bgHex)
	if err != nil {
		return nil, &ColorError{Field: "background-color", Value: bgHex}
	}

	return &Descriptor{
		Text:       txt,
		Family:     text.ParseFamily(fontName),
		Size:       size,
		Color:      fg,
		Background: bg,
		Padding:    padding,
	}, nil
}

// LineHeight returns the height of one line box.
func (d *Descriptor) LineHeight() float64 {
	return d.Size * text.LineHeightFactor
}

// Metrics returns the text metrics for d.
func (d *Descriptor) Metrics() text.Metrics {
	return text.NewMetrics(d.Size)
}
