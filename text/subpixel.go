package text

// SubpixelMode controls horizontal subpixel glyph positioning.
// Glyph masks are rasterized once per subpixel position and reused.
type SubpixelMode int

const (
	// SubpixelNone snaps glyphs to whole pixels.
	SubpixelNone SubpixelMode = 0

	// Subpixel4 uses 4 subpixel positions (0.0, 0.25, 0.5, 0.75).
	Subpixel4 SubpixelMode = 4

	// Subpixel10 uses 10 subpixel positions (0.0, 0.1, ..., 0.9).
	Subpixel10 SubpixelMode = 10
)

// String returns the string representation of the subpixel mode.
func (m SubpixelMode) String() string {
	switch m {
	case SubpixelNone:
		return "None"
	case Subpixel4:
		return "Subpixel4"
	case Subpixel10:
		return "Subpixel10"
	default:
		return "Unknown"
	}
}

// IsEnabled returns true if subpixel positioning is enabled.
func (m SubpixelMode) IsEnabled() bool {
	return m > 0
}

// Divisions returns the number of subpixel divisions.
// Returns 1 for SubpixelNone.
func (m SubpixelMode) Divisions() int {
	if m <= 0 {
		return 1
	}
	return int(m)
}

// Quantize splits a position into its integer pixel and a subpixel index.
//
// With Subpixel4:
//   - pos=10.0 returns (10, 0)
//   - pos=10.3 returns (10, 1)
//   - pos=10.99 returns (10, 3)
//   - pos=-0.25 returns (-1, 3)
func Quantize(pos float64, mode SubpixelMode) (intPos int, subPos uint8) {
	if !mode.IsEnabled() {
		return roundHalfUp(pos), 0
	}

	intPart := int(pos)
	if pos < 0 && pos != float64(intPart) {
		intPart--
	}

	frac := pos - float64(intPart)
	sub := int(frac * float64(mode.Divisions()))
	sub = min(max(sub, 0), mode.Divisions()-1)

	return intPart, uint8(sub) //nolint:gosec // sub is bounded [0, mode-1]
}

// SubpixelOffset returns the rendering offset for a subpixel index.
func SubpixelOffset(subPos uint8, mode SubpixelMode) float64 {
	if !mode.IsEnabled() {
		return 0
	}
	return float64(subPos) / float64(mode.Divisions())
}

// roundHalfUp rounds to the nearest integer, halves towards +Inf.
func roundHalfUp(v float64) int {
	i := int(v)
	if v < 0 && v != float64(i) {
		i--
	}
	if v-float64(i) >= 0.5 {
		i++
	}
	return i
}
