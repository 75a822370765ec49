package text

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/jbl/internal/cache"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/vector"
)

// glyphImage is a rasterized glyph. Image bounds are relative to the
// integer pen position on the baseline, with Y pointing down.
type glyphImage struct {
	// mask is coverage painted with the foreground color.
	mask *image.Alpha

	// color holds pixels that keep their own color (bitmap emoji).
	color *image.NRGBA
}

type glyphKey struct {
	face *font.Face
	gid  font.GID
	sub  uint8
}

// glyphCacheSize bounds the number of glyph images kept per rasterizer.
const glyphCacheSize = 4096

// rasterizer turns shaped glyphs into glyph images at one font size.
// Results are memoized per face, glyph and subpixel position.
type rasterizer struct {
	size  float64
	mode  SubpixelMode
	cache *cache.Cache[glyphKey, *glyphImage]
}

func newRasterizer(size float64, mode SubpixelMode) *rasterizer {
	return &rasterizer{
		size:  size,
		mode:  mode,
		cache: cache.New[glyphKey, *glyphImage](glyphCacheSize),
	}
}

// glyph returns the image for g rendered with face at subpixel index sub.
// It returns nil for glyphs without visible pixels.
func (r *rasterizer) glyph(face *font.Face, g shaping.Glyph, sub uint8) *glyphImage {
	key := glyphKey{face: face, gid: g.GlyphID, sub: sub}
	return r.cache.GetOrCreate(key, func() *glyphImage {
		return r.render(face, g, float32(SubpixelOffset(sub, r.mode)))
	})
}

func (r *rasterizer) render(face *font.Face, g shaping.Glyph, dx float32) *glyphImage {
	scale := float32(r.size / float64(face.Upem()))

	switch data := face.GlyphData(g.GlyphID).(type) {
	case font.GlyphOutline:
		return maskImage(rasterizeOutline(data, scale, dx))
	case font.GlyphColor:
		// COLR paint graphs are drawn as their monochrome outline.
		if outline, ok := face.GlyphDataOutline(uint16(g.GlyphID)); ok { //nolint:gosec // glyph IDs fit in 16 bits
			return maskImage(rasterizeOutline(outline, scale, dx))
		}
	case font.GlyphSVG:
		return maskImage(rasterizeOutline(data.Outline, scale, dx))
	case font.GlyphBitmap:
		return renderBitmap(data, g, scale, dx)
	}
	return nil
}

// renderBitmap rasterizes a bitmap glyph, falling back to the outline
// stored next to the bitmap when the strike cannot be decoded.
func renderBitmap(bm font.GlyphBitmap, g shaping.Glyph, scale, dx float32) *glyphImage {
	img, err := rasterizeBitmap(bm, g, dx)
	if err == nil {
		return img
	}
	if bm.Outline != nil {
		return maskImage(rasterizeOutline(*bm.Outline, scale, dx))
	}
	Logger().Debug("text: bitmap glyph skipped", "gid", g.GlyphID, "err", err)
	return nil
}

func maskImage(mask *image.Alpha) *glyphImage {
	if mask == nil {
		return nil
	}
	return &glyphImage{mask: mask}
}

// rasterizeOutline fills a glyph outline into a coverage mask.
// Font units are scaled by scale and shifted right by dx pixels.
func rasterizeOutline(o font.GlyphOutline, scale, dx float32) *image.Alpha {
	if len(o.Segments) == 0 {
		return nil
	}

	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := -minX, -minY
	for i := range o.Segments {
		for _, p := range o.Segments[i].ArgsSlice() {
			x, y := dx+p.X*scale, -p.Y*scale
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}

	x0, y0 := int(math.Floor(float64(minX))), int(math.Floor(float64(minY)))
	x1, y1 := int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY)))
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return nil
	}

	ras := vector.NewRasterizer(w, h)
	ras.DrawOp = draw.Src
	tx, ty := dx-float32(x0), -float32(y0)
	pt := func(p ot.SegmentPoint) (float32, float32) {
		return tx + p.X*scale, ty - p.Y*scale
	}

	open := false
	for _, s := range o.Segments {
		switch s.Op {
		case ot.SegmentOpMoveTo:
			if open {
				ras.ClosePath()
			}
			ras.MoveTo(pt(s.Args[0]))
			open = true
		case ot.SegmentOpLineTo:
			ras.LineTo(pt(s.Args[0]))
		case ot.SegmentOpQuadTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			ras.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			ex, ey := pt(s.Args[2])
			ras.CubeTo(bx, by, cx, cy, ex, ey)
		}
	}
	if open {
		ras.ClosePath()
	}

	mask := image.NewAlpha(ras.Bounds())
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(image.Pt(x0, y0))
	return mask
}

// rasterizeBitmap decodes a bitmap strike and scales it to the glyph box
// computed by the shaper.
func rasterizeBitmap(bm font.GlyphBitmap, g shaping.Glyph, dx float32) (*glyphImage, error) {
	var (
		src image.Image
		err error
	)
	switch bm.Format {
	case font.BlackAndWhite:
		src, err = decodeMonochrome(bm)
	case font.PNG:
		src, err = png.Decode(bytes.NewReader(bm.Data))
	case font.JPG:
		src, err = jpeg.Decode(bytes.NewReader(bm.Data))
	case font.TIFF:
		src, err = tiff.Decode(bytes.NewReader(bm.Data))
	default:
		err = fmt.Errorf("unsupported bitmap format %d", bm.Format)
	}
	if err != nil {
		return nil, err
	}
	if src.Bounds().Empty() {
		return nil, fmt.Errorf("empty bitmap")
	}

	dst := bitmapRect(src.Bounds(), g, dx)
	if dst.Empty() {
		return nil, fmt.Errorf("empty glyph box")
	}

	if bm.Format == font.BlackAndWhite {
		mask := image.NewAlpha(dst)
		draw.CatmullRom.Scale(mask, dst, src, src.Bounds(), draw.Src, nil)
		return &glyphImage{mask: mask}, nil
	}
	img := image.NewNRGBA(dst)
	draw.CatmullRom.Scale(img, dst, src, src.Bounds(), draw.Src, nil)
	return &glyphImage{color: img}, nil
}

// bitmapRect returns the destination of a bitmap glyph relative to the pen.
// Without shaped extents the bitmap keeps its natural size and sits on the
// baseline.
func bitmapRect(src image.Rectangle, g shaping.Glyph, dx float32) image.Rectangle {
	w, h := fixedToFloat(g.Width), -fixedToFloat(g.Height)
	if w <= 0 || h <= 0 {
		x0 := roundHalfUp(float64(dx))
		return image.Rect(x0, -src.Dy(), x0+src.Dx(), 0)
	}
	x0 := roundHalfUp(float64(dx) + fixedToFloat(g.XBearing))
	y0 := roundHalfUp(-fixedToFloat(g.YBearing))
	return image.Rect(x0, y0, x0+roundHalfUp(w), y0+roundHalfUp(h))
}

// decodeMonochrome expands a 1 bit per pixel bitmap, rows packed without
// padding and most significant bit first.
func decodeMonochrome(bm font.GlyphBitmap) (*image.Alpha, error) {
	if bm.Width <= 0 || bm.Height <= 0 {
		return nil, fmt.Errorf("invalid bitmap size %dx%d", bm.Width, bm.Height)
	}
	if len(bm.Data)*8 < bm.Width*bm.Height {
		return nil, fmt.Errorf("short bitmap data: %d bytes for %dx%d", len(bm.Data), bm.Width, bm.Height)
	}

	img := image.NewAlpha(image.Rect(0, 0, bm.Width, bm.Height))
	for y := range bm.Height {
		for x := range bm.Width {
			bit := y*bm.Width + x
			if bm.Data[bit/8]&(0x80>>(bit%8)) != 0 {
				img.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return img, nil
}
