package jbl

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Canvas represents an opaque RGB pixel buffer.
type Canvas struct {
	width  int
	height int
	data   []uint8 // RGB format, 3 bytes per pixel
}

// NewCanvas creates a black canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*3),
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Data returns the raw pixel data (RGB format, row-major).
func (c *Canvas) Data() []uint8 {
	return c.data
}

// SetPixel sets the color of a single pixel.
// Out of bounds coordinates are ignored.
func (c *Canvas) SetPixel(x, y int, col RGB) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 3
	c.data[i+0] = col.R
	c.data[i+1] = col.G
	c.data[i+2] = col.B
}

// Pixel returns the color of a single pixel.
// Out of bounds coordinates return black.
func (c *Canvas) Pixel(x, y int) RGB {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return RGB{}
	}
	i := (y*c.width + x) * 3
	return RGB{R: c.data[i+0], G: c.data[i+1], B: c.data[i+2]}
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col RGB) {
	for i := 0; i < len(c.data); i += 3 {
		c.data[i+0] = col.R
		c.data[i+1] = col.G
		c.data[i+2] = col.B
	}
}

// ToImage converts the canvas to an opaque image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for i, j := 0, 0; i < len(c.data); i, j = i+3, j+4 {
		img.Pix[j+0] = c.data[i+0]
		img.Pix[j+1] = c.data[i+1]
		img.Pix[j+2] = c.data[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// EncodePNG writes the canvas to w as an 8-bit RGB PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.width == 0 || c.height == 0 {
		return fmt.Errorf("%w: empty %dx%d canvas", ErrEncode, c.width, c.height)
	}
	if err := png.Encode(w, c.ToImage()); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is caller controlled
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrEncode, cerr)
		}
	}()
	return c.EncodePNG(f)
}

func rgba(c RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color {
	return rgba(c.Pixel(x, y))
}

// Opaque reports that every pixel is fully opaque.
func (c *Canvas) Opaque() bool {
	return true
}
