package jbl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/jbl/internal/blend"
	"github.com/gogpu/jbl/text"
)

// ceilEpsilon absorbs float noise such as 3*1.2*10 = 36.00000000000001
// before rounding a box dimension up.
const ceilEpsilon = 1e-6

// Render lays out and rasterizes d onto a new canvas.
func Render(d *Descriptor, opts ...Option) (*Canvas, error) {
	return RenderContext(context.Background(), d, opts...)
}

// RenderContext is like Render but stops between lines once ctx is done.
//
// The canvas is (W + 2p) x (H + 2p) where W is the widest shaped line and
// H is Size*1.2 times the line count, both rounded up, and p is the
// padding. The background fills the canvas; each glyph sample inside the
// W x H content box is composited at its position shifted by the padding.
func RenderContext(ctx context.Context, d *Descriptor, opts ...Option) (*Canvas, error) {
	if d == nil {
		return nil, ErrNilDescriptor
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fonts := o.fonts
	if fonts == nil {
		var err error
		fonts, err = text.NewFontSet(o.fontSetOptions()...)
		if err != nil {
			return nil, fmt.Errorf("jbl: fonts: %w", err)
		}
	}

	m := d.Metrics()
	buf, err := text.NewBuffer(fonts, m, o.bufferOptions()...)
	if err != nil {
		return nil, fmt.Errorf("jbl: layout: %w", err)
	}

	w0, h := text.EstimateBox(d.Text, m)
	buf.SetSize(w0, h)
	log := Logger()
	log.Debug("jbl: layout box",
		"family", d.Family.String(), "size", d.Size, "lines", text.LineCount(d.Text),
		"width", w0, "height", h)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := buf.SetText(d.Text, d.Family); err != nil {
		return nil, fmt.Errorf("jbl: layout: %w", err)
	}

	width := ceilDim(buf.MaxLineWidth())
	height := ceilDim(h)
	pad := int(d.Padding)
	canvas := NewCanvas(width+2*pad, height+2*pad)
	canvas.Fill(d.Background)
	log.Debug("jbl: canvas", "measured_width", buf.MaxLineWidth(),
		"width", canvas.Width(), "height", canvas.Height())

	fg := d.Color.NRGBA()
	var drawn, skipped int
	for i := range buf.Lines() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for g := range buf.DrawLine(i, fg) {
			if !inContent(g, width, height) {
				skipped++
				continue
			}
			x, y := g.X+pad, g.Y+pad
			dst := canvas.Pixel(x, y)
			out := blend.Blend(g.Color, rgba(dst), o.blend)
			canvas.SetPixel(x, y, RGB{R: out.R, G: out.G, B: out.B})
			drawn++
		}
	}
	log.Debug("jbl: composited", "samples", drawn, "skipped", skipped, "blend", o.blend.String())
	if log.Enabled(ctx, slog.LevelDebug) {
		hits, misses, entries := buf.GlyphCacheStats()
		log.Debug("jbl: glyph cache", "hits", hits, "misses", misses, "entries", entries)
	}

	return canvas, nil
}

// inContent reports whether g is a visible 1x1 sample inside the content box.
func inContent(g text.GlyphDraw, width, height int) bool {
	switch {
	case g.Color.A == 0:
		return false
	case g.X < 0 || g.X >= width:
		return false
	case g.Y < 0 || g.Y >= height:
		return false
	case g.W != 1 || g.H != 1:
		return false
	}
	return true
}

// ceilDim rounds a non-negative dimension up to whole pixels.
func ceilDim(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Ceil(v - ceilEpsilon))
}
