package text

import (
	"fmt"
	"image/color"
	"iter"
	"math"
	"strings"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Run describes one laid out line of a Buffer.
type Run struct {
	// Line is the zero based index of the LF separated line.
	Line int

	// LineTop is the top of the line box.
	LineTop float64

	// LineY is the baseline position.
	LineY float64

	// LineWidth is the sum of the glyph advances of the line.
	LineWidth float64

	// RTL reports a right-to-left base direction.
	RTL bool

	// Glyphs is the number of shaped glyphs on the line.
	Glyphs int
}

// line is a shaped line with its outputs in visual order.
type line struct {
	Run
	outputs []shaping.Output
}

// Buffer shapes multi-line text and rasterizes it into glyph samples.
//
// Lines are separated by LF only and are never wrapped. Each line is split
// into bidi runs, script runs and font runs before shaping, and the shaped
// runs are laid out in visual order starting at x = 0.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	fonts   *FontSet
	metrics Metrics
	cfg     bufferConfig

	width, height float64

	shaper shaping.HarfbuzzShaper
	ras    *rasterizer
	lines  []line
	sized  map[*font.Face]bool
}

// NewBuffer creates an empty buffer that resolves faces from fonts.
func NewBuffer(fonts *FontSet, m Metrics, opts ...BufferOption) (*Buffer, error) {
	if fonts == nil {
		return nil, ErrNilFontSet
	}
	cfg := defaultBufferConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Buffer{
		fonts:   fonts,
		metrics: m,
		cfg:     cfg,
		ras:     newRasterizer(m.FontSize, cfg.subpixel),
		sized:   make(map[*font.Face]bool),
	}, nil
}

// Metrics returns the buffer metrics.
func (b *Buffer) Metrics() Metrics { return b.metrics }

// SetSize sets the layout box. Text is never wrapped or truncated to it.
func (b *Buffer) SetSize(w, h float64) {
	b.width, b.height = w, h
}

// Size returns the layout box.
func (b *Buffer) Size() (w, h float64) { return b.width, b.height }

// SetText replaces the buffer content with s shaped in family f.
func (b *Buffer) SetText(s string, f Family) error {
	b.fonts.Select(f)
	b.lines = b.lines[:0]

	lang := language.NewLanguage(b.cfg.language)
	for i, text := range strings.Split(s, "\n") {
		l, err := b.shapeLine(i, []rune(text), lang)
		if err != nil {
			b.lines = b.lines[:0]
			return err
		}
		b.lines = append(b.lines, l)
	}

	Logger().Debug("text: buffer shaped", "lines", len(b.lines), "width", b.MaxLineWidth())
	return nil
}

func (b *Buffer) shapeLine(index int, runes []rune, lang language.Language) (line, error) {
	l := line{Run: Run{
		Line:    index,
		LineTop: float64(index) * b.metrics.LineHeight,
	}}

	var segments []segment
	if len(runes) > 0 {
		input := shaping.Input{
			Text:     runes,
			RunStart: 0,
			RunEnd:   len(runes),
			Size:     floatToFixed(b.metrics.FontSize),
			Language: lang,
		}
		segments = b.segment(input)
		l.RTL = isRTLBase(runes)
	}

	levels := make([]int, len(segments))
	outputs := make([]shaping.Output, len(segments))
	for i, seg := range segments {
		if seg.input.Face == nil {
			return line{}, fmt.Errorf("%w: line %d", ErrNoFace, index+1)
		}
		b.prepareFace(seg.input.Face)
		outputs[i] = b.shaper.Shape(seg.input)
		levels[i] = seg.level
	}

	var ascent, descent float64
	for _, i := range visualOrder(levels) {
		out := outputs[i]
		l.outputs = append(l.outputs, out)
		l.LineWidth += fixedToFloat(out.Advance)
		l.Glyphs += len(out.Glyphs)
		ascent = max(ascent, fixedToFloat(out.LineBounds.Ascent))
		descent = max(descent, -fixedToFloat(out.LineBounds.Descent))
	}
	if len(outputs) == 0 {
		ascent, descent = b.defaultBounds()
	}

	l.LineY = l.LineTop + (b.metrics.LineHeight-(ascent+descent))/2 + ascent
	return l, nil
}

// segment splits input by direction, then script, then face.
func (b *Buffer) segment(input shaping.Input) []segment {
	var out []segment
	for _, bidiRun := range splitBidi(input) {
		for _, scriptRun := range splitByScript(bidiRun.input) {
			b.fonts.SetScript(scriptRun.Script)
			for _, faceRun := range shaping.SplitByFace(scriptRun, b.fonts) {
				out = append(out, segment{input: faceRun, level: bidiRun.level})
			}
		}
	}
	return out
}

// defaultBounds returns the ascent and descent used for empty lines.
func (b *Buffer) defaultBounds() (ascent, descent float64) {
	face := b.fonts.ResolveFace(' ')
	if face == nil {
		return b.metrics.FontSize * 0.8, b.metrics.FontSize * 0.2
	}
	ext, ok := face.FontHExtents()
	if !ok || face.Upem() == 0 {
		return b.metrics.FontSize * 0.8, b.metrics.FontSize * 0.2
	}
	scale := b.metrics.FontSize / float64(face.Upem())
	return float64(ext.Ascender) * scale, -float64(ext.Descender) * scale
}

// prepareFace selects the bitmap strike closest to the font size.
func (b *Buffer) prepareFace(face *font.Face) {
	if b.sized[face] {
		return
	}
	ppem := uint16(min(math.Round(b.metrics.FontSize), math.MaxUint16)) //nolint:gosec // clamped above
	face.SetPpem(ppem, ppem)
	b.sized[face] = true
}

// Lines returns the number of laid out lines.
func (b *Buffer) Lines() int { return len(b.lines) }

// Runs returns the laid out lines in order.
func (b *Buffer) Runs() iter.Seq[Run] {
	return func(yield func(Run) bool) {
		for _, l := range b.lines {
			if !yield(l.Run) {
				return
			}
		}
	}
}

// MaxLineWidth returns the widest line advance.
func (b *Buffer) MaxLineWidth() float64 {
	var w float64
	for r := range b.Runs() {
		w = max(w, r.LineWidth)
	}
	return w
}

// GlyphCacheStats reports the glyph image cache counters of the buffer.
func (b *Buffer) GlyphCacheStats() (hits, misses uint64, entries int) {
	s := b.ras.cache.Stats()
	return s.Hits, s.Misses, s.Len
}

// Draw rasterizes the buffer and yields one GlyphDraw per covered pixel.
//
// Outline glyphs are painted with fg and carry their coverage in the alpha
// channel. Color bitmap glyphs keep their own colors.
func (b *Buffer) Draw(fg color.NRGBA) iter.Seq[GlyphDraw] {
	return func(yield func(GlyphDraw) bool) {
		for _, l := range b.lines {
			if !b.drawLine(l, fg, yield) {
				return
			}
		}
	}
}

// DrawLine is like Draw restricted to line index i.
func (b *Buffer) DrawLine(i int, fg color.NRGBA) iter.Seq[GlyphDraw] {
	return func(yield func(GlyphDraw) bool) {
		if i < 0 || i >= len(b.lines) {
			return
		}
		b.drawLine(b.lines[i], fg, yield)
	}
}

func (b *Buffer) drawLine(l line, fg color.NRGBA, yield func(GlyphDraw) bool) bool {
	baseline := roundHalfUp(l.LineY)
	var pen float64
	for _, out := range l.outputs {
		for _, g := range out.Glyphs {
			x := pen + fixedToFloat(g.XOffset)
			y := baseline - roundHalfUp(fixedToFloat(g.YOffset))
			pen += fixedToFloat(g.Advance)

			ix, sub := Quantize(x, b.cfg.subpixel)
			img := b.ras.glyph(out.Face, g, sub)
			if img == nil {
				continue
			}
			if !emit(img, ix, y, fg, yield) {
				return false
			}
		}
	}
	return true
}

// emit yields the pixels of img placed at (ox, oy).
func emit(img *glyphImage, ox, oy int, fg color.NRGBA, yield func(GlyphDraw) bool) bool {
	if m := img.mask; m != nil {
		for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
			for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
				a := m.AlphaAt(x, y).A
				if a == 0 {
					continue
				}
				c := fg
				c.A = uint8(uint16(a) * uint16(fg.A) / 0xff) //nolint:gosec // product fits after division
				if !yield(GlyphDraw{X: ox + x, Y: oy + y, W: 1, H: 1, Color: c}) {
					return false
				}
			}
		}
	}
	if m := img.color; m != nil {
		for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
			for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
				c := m.NRGBAAt(x, y)
				if c.A == 0 {
					continue
				}
				if !yield(GlyphDraw{X: ox + x, Y: oy + y, W: 1, H: 1, Color: c}) {
					return false
				}
			}
		}
	}
	return true
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(size * 64))
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
