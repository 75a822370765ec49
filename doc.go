// Package jbl renders plain text to PNG images.
//
// # Overview
//
// jbl shapes Unicode text with a chosen font family, rasterizes the glyphs
// over a solid background framed by a uniform padding, and encodes the
// result as an opaque RGB PNG.
//
// # Quick Start
//
//	import "github.com/gogpu/jbl"
//
//	d, err := jbl.NewDescriptor("Hello, world!", "Monospace", 18, "#cdd6f4", "#1e1e2e", 8)
//	if err != nil {
//	    return err
//	}
//	canvas, err := jbl.Render(d)
//	if err != nil {
//	    return err
//	}
//	return canvas.EncodePNG(os.Stdout)
//
// # Layout
//
// Lines are separated by LF only and are never wrapped. Every line box is
// Size*1.2 pixels tall and text starts at the left edge. The canvas is as
// wide as the widest shaped line, rounded up, plus the padding on both sides.
//
// # Fonts
//
// Font families are resolved through go-text/typesetting's fontscan. The
// Go fonts from golang.org/x/image are always available as fallbacks, so
// rendering works on systems without any installed font. Use
// WithSystemFonts to enable installed fonts.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Descriptor, Render, Canvas
//   - text: font resolution, shaping, layout and glyph rasterization
//   - internal/blend: pixel compositing
package jbl
