package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrNoFace is returned when no font face covers the text of a line.
	ErrNoFace = errors.New("text: no font face available")

	// ErrFontData is returned when a font file cannot be read or parsed.
	ErrFontData = errors.New("text: invalid font data")

	// ErrNilFontSet is returned when a Buffer is created without a FontSet.
	ErrNilFontSet = errors.New("text: font set cannot be nil")
)

// FontFileError is returned when an extra font file fails to load.
type FontFileError struct {
	Path string
	Err  error
}

func (e *FontFileError) Error() string {
	return fmt.Sprintf("text: font file %q: %v", e.Path, e.Err)
}

func (e *FontFileError) Unwrap() []error {
	return []error{ErrFontData, e.Err}
}
