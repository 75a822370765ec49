package text

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestFontSet(t *testing.T, opts ...FontSetOption) *FontSet {
	t.Helper()
	fs, err := NewFontSet(opts...)
	if err != nil {
		t.Fatalf("NewFontSet() error = %v", err)
	}
	return fs
}

func TestFontSetFallbacks(t *testing.T) {
	fs := newTestFontSet(t)
	if fs.SystemFonts() {
		t.Fatal("SystemFonts() = true without WithSystemFonts")
	}

	tests := []struct {
		name   string
		family Family
		want   string
	}{
		{"monospace", GenericFamily(Monospace), FallbackMonoFamily},
		{"serif", GenericFamily(Serif), FallbackFamily},
		{"sans-serif", GenericFamily(SansSerif), FallbackFamily},
		{"cursive", GenericFamily(Cursive), FallbackFamily},
		{"fantasy", GenericFamily(Fantasy), FallbackFamily},
		{"unknown named", Named("No Such Font"), FallbackFamily},
		{"named go mono", Named("Go Mono"), FallbackMonoFamily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs.Select(tt.family)
			if fs.Family() != tt.family {
				t.Errorf("Family() = %v, want %v", fs.Family(), tt.family)
			}
			face := fs.ResolveFace('a')
			if face == nil {
				t.Fatal("ResolveFace('a') = nil")
			}
			if got, want := fs.FamilyOf(face), font.NormalizeFamily(tt.want); got != want {
				t.Errorf("FamilyOf() = %q, want %q", got, want)
			}
		})
	}
}

func TestFontSetMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.ttf")
	_, err := NewFontSet(WithFontFiles(path))
	if err == nil {
		t.Fatal("NewFontSet() error = nil, want error")
	}
	if !errors.Is(err, ErrFontData) {
		t.Errorf("error %v does not wrap ErrFontData", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not wrap os.ErrNotExist", err)
	}
	var ffe *FontFileError
	if !errors.As(err, &ffe) || ffe.Path != path {
		t.Errorf("error %v is not a FontFileError for %q", err, path)
	}
}

func TestFontSetInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFontSet(WithFontFiles(path)); !errors.Is(err, ErrFontData) {
		t.Errorf("NewFontSet() error = %v, want ErrFontData", err)
	}
}

func TestFontSetExtraFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	fs := newTestFontSet(t, WithFontFiles(path))
	fs.Select(Named("Go"))
	if face := fs.ResolveFace('x'); face == nil {
		t.Fatal("ResolveFace('x') = nil")
	}
}

func TestFontSetQuery(t *testing.T) {
	tests := []struct {
		name   string
		system bool
		family Family
		want   []string
	}{
		{"embedded monospace", false, GenericFamily(Monospace), []string{fontscan.Monospace, FallbackMonoFamily}},
		{"embedded serif", false, GenericFamily(Serif), []string{fontscan.Serif, FallbackFamily}},
		{"embedded named", false, Named("Fira Code"), []string{"Fira Code", FallbackFamily}},
		{"system monospace", true, GenericFamily(Monospace), []string{fontscan.Monospace}},
		{"system named", true, Named("Fira Code"), []string{"Fira Code"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newTestFontSet(t)
			fs.system = tt.system
			fs.Select(tt.family)
			if !slices.Equal(fs.families, tt.want) {
				t.Errorf("query = %q, want %q", fs.families, tt.want)
			}
			if face := fs.ResolveFace('a'); face == nil {
				t.Error("ResolveFace('a') = nil")
			}
		})
	}
}
