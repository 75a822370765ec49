package text

// LineHeightFactor is the ratio between line height and font size.
const LineHeightFactor = 1.2

// Metrics holds the sizing of a text buffer.
type Metrics struct {
	// FontSize is the font size in pixels per em.
	FontSize float64

	// LineHeight is the vertical distance between consecutive line tops.
	LineHeight float64
}

// NewMetrics returns metrics for size with the standard line height.
func NewMetrics(size float64) Metrics {
	return Metrics{
		FontSize:   size,
		LineHeight: size * LineHeightFactor,
	}
}
