// Package text shapes and rasterizes lines of text for jbl.
//
// A FontSet resolves font families to faces, backed by the embedded Go
// fonts and optionally the fonts installed on the system. A Buffer lays
// out text line by line: each line is split into bidi and script runs,
// shaped with HarfBuzz, and placed on a baseline centered in its line
// box. Buffer.Draw then yields one GlyphDraw per covered pixel, in
// canvas coordinates, for the caller to composite.
//
//	fs, err := text.NewFontSet()
//	if err != nil {
//	    return err
//	}
//	buf, err := text.NewBuffer(fs, text.NewMetrics(18))
//	if err != nil {
//	    return err
//	}
//	if err := buf.SetText("hello", text.GenericFamily(text.Monospace)); err != nil {
//	    return err
//	}
//	for g := range buf.Draw(color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
//	    // composite g
//	}
package text
