package jbl

import (
	"github.com/gogpu/jbl/internal/blend"
	"github.com/gogpu/jbl/text"
)

// BlendMode selects how glyph coverage is composited onto the canvas.
type BlendMode = blend.Mode

const (
	// BlendBlack writes c*a/255 for each channel, blending against black.
	BlendBlack BlendMode = blend.ModeBlack

	// BlendOver blends the glyph color over the background.
	BlendOver BlendMode = blend.ModeSourceOver
)

// ParseBlendMode parses "black" or "over".
func ParseBlendMode(s string) (BlendMode, error) {
	return blend.ParseMode(s)
}

// Option configures Render.
// Use functional options to customize rendering.
//
// Example:
//
//	canvas, err := jbl.Render(d, jbl.WithBlend(jbl.BlendOver), jbl.WithSystemFonts(true))
type Option func(*renderOptions)

// renderOptions holds optional configuration for Render.
type renderOptions struct {
	blend       BlendMode
	fonts       *text.FontSet
	systemFonts bool
	cacheDir    string
	fontFiles   []string
	subpixel    text.SubpixelMode
	language    string
}

// defaultOptions returns the default render options.
func defaultOptions() renderOptions {
	return renderOptions{
		blend:    BlendBlack,
		subpixel: text.Subpixel4,
		language: "en",
	}
}

// WithBlend sets the compositing mode. The default is BlendBlack.
func WithBlend(m BlendMode) Option {
	return func(o *renderOptions) {
		o.blend = m
	}
}

// WithFontSet renders with an existing font set. The font set options
// WithSystemFonts, WithFontCacheDir and WithFontFiles are then ignored.
func WithFontSet(fs *text.FontSet) Option {
	return func(o *renderOptions) {
		o.fonts = fs
	}
}

// WithSystemFonts enables the fonts installed on the system.
// Without it only the embedded Go fonts and WithFontFiles are used.
func WithSystemFonts(enabled bool) Option {
	return func(o *renderOptions) {
		o.systemFonts = enabled
	}
}

// WithFontCacheDir sets where the system font index is cached.
// An empty dir selects the user cache directory.
func WithFontCacheDir(dir string) Option {
	return func(o *renderOptions) {
		o.cacheDir = dir
	}
}

// WithFontFiles registers extra font files.
func WithFontFiles(paths ...string) Option {
	return func(o *renderOptions) {
		o.fontFiles = append(o.fontFiles, paths...)
	}
}

// WithSubpixel sets the horizontal subpixel positioning of glyphs.
func WithSubpixel(m text.SubpixelMode) Option {
	return func(o *renderOptions) {
		o.subpixel = m
	}
}

// WithLanguage sets the BCP 47 language tag passed to the shaper, which
// selects language specific glyph forms. The default is "en".
func WithLanguage(tag string) Option {
	return func(o *renderOptions) {
		o.language = tag
	}
}

// bufferOptions converts the layout options for text.NewBuffer.
func (o *renderOptions) bufferOptions() []text.BufferOption {
	opts := []text.BufferOption{text.WithSubpixel(o.subpixel)}
	if o.language != "" {
		opts = append(opts, text.WithLanguage(o.language))
	}
	return opts
}

// fontSetOptions converts the font options for text.NewFontSet.
func (o *renderOptions) fontSetOptions() []text.FontSetOption {
	var opts []text.FontSetOption
	if o.systemFonts {
		opts = append(opts, text.WithSystemFonts(o.cacheDir))
	}
	if len(o.fontFiles) > 0 {
		opts = append(opts, text.WithFontFiles(o.fontFiles...))
	}
	return opts
}
