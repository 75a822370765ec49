package text

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/language"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Family names of the embedded fallback fonts.
const (
	FallbackFamily     = "Go"
	FallbackMonoFamily = "Go Mono"
)

// FontSet resolves font faces for runes according to a selected family.
//
// It wraps a fontscan.FontMap. The Go fonts from golang.org/x/image are
// always registered, so a FontSet can resolve a face even when no system
// font is available. FontSet implements shaping.Fontmap and
// shaping.FontmapScript.
//
// FontSet is not safe for concurrent use.
type FontSet struct {
	fm       *fontscan.FontMap
	system   bool
	family   Family
	families []string // current fontscan query
}

// NewFontSet creates a font set with the embedded fonts plus whatever the
// options add.
//
// A failed system font scan is logged and ignored. A font file that cannot
// be read or parsed is an error.
func NewFontSet(opts ...FontSetOption) (*FontSet, error) {
	cfg := defaultFontSetConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	fs := &FontSet{
		fm:     fontscan.NewFontMap(fontscanLogger{}),
		family: GenericFamily(Monospace),
	}

	if cfg.systemFonts {
		if err := fs.fm.UseSystemFonts(cfg.cacheDir); err != nil {
			Logger().Warn("text: system fonts unavailable", "err", err)
		} else {
			fs.system = true
		}
	}

	for _, path := range cfg.files {
		if err := fs.addFile(path); err != nil {
			return nil, err
		}
	}

	if err := fs.fm.AddFont(bytes.NewReader(goregular.TTF), "embedded:goregular", FallbackFamily); err != nil {
		return nil, fmt.Errorf("text: register %s: %w", FallbackFamily, err)
	}
	if err := fs.fm.AddFont(bytes.NewReader(gomono.TTF), "embedded:gomono", FallbackMonoFamily); err != nil {
		return nil, fmt.Errorf("text: register %s: %w", FallbackMonoFamily, err)
	}

	fs.Select(fs.family)
	return fs, nil
}

func (fs *FontSet) addFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &FontFileError{Path: path, Err: err}
	}
	if len(data) == 0 {
		return &FontFileError{Path: path, Err: fmt.Errorf("empty file")}
	}
	if err := fs.fm.AddFont(bytes.NewReader(data), path, ""); err != nil {
		return &FontFileError{Path: path, Err: err}
	}
	Logger().Debug("text: font file registered", "path", path)
	return nil
}

// Select sets the family used by subsequent ResolveFace calls.
//
// Generic families are queried with their CSS names. Without system
// fonts the embedded fallback family is appended to the query, Go Mono
// for Monospace and Go for everything else. With system fonts the query
// holds only f and the embedded fonts are the last resort.
func (fs *FontSet) Select(f Family) {
	fs.family = f
	families := []string{f.query()}
	if !fs.system {
		families = append(families, fallbackFor(f))
	}
	fs.families = families
	fs.fm.SetQuery(fontscan.Query{Families: families})
	Logger().Debug("text: family selected", "family", f.String(), "query", families)
}

// Family returns the selected family.
func (fs *FontSet) Family() Family { return fs.family }

// SystemFonts reports whether the system font index is in use.
func (fs *FontSet) SystemFonts() bool { return fs.system }

// ResolveFace returns the face used to render r with the selected family.
func (fs *FontSet) ResolveFace(r rune) *font.Face {
	return fs.fm.ResolveFace(r)
}

// SetScript hints the script of the next runes passed to ResolveFace.
func (fs *FontSet) SetScript(s language.Script) {
	fs.fm.SetScript(s)
}

// FamilyOf returns the family name of the font behind face.
func (fs *FontSet) FamilyOf(face *font.Face) string {
	if face == nil {
		return ""
	}
	family, _ := fs.fm.FontMetadata(face.Font)
	return family
}

func fallbackFor(f Family) string {
	if f.Generic() == Monospace {
		return FallbackMonoFamily
	}
	return FallbackFamily
}
