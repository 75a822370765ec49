package jbl

import (
	"errors"
	"fmt"
)

// Sentinel errors for jbl package.
var (
	// ErrInvalidColor is returned for colors not in #RRGGBB or #RGB form.
	ErrInvalidColor = errors.New("The color input must be in a legal hexadecimal format!") //nolint:revive,staticcheck // user facing message

	// ErrInvalidSize is returned for font sizes that are not positive and finite.
	ErrInvalidSize = errors.New("jbl: font size must be positive and finite")

	// ErrNilDescriptor is returned when Render is called without a descriptor.
	ErrNilDescriptor = errors.New("jbl: descriptor cannot be nil")

	// ErrEncode is returned when the PNG stream cannot be produced or written.
	ErrEncode = errors.New("jbl: png encoding failed")
)

// ColorError reports which color parameter was rejected.
type ColorError struct {
	Field string
	Value string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, ErrInvalidColor)
}

func (e *ColorError) Unwrap() error {
	return ErrInvalidColor
}
