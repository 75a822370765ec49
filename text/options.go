package text

// FontSetOption configures FontSet creation.
type FontSetOption func(*fontSetConfig)

// fontSetConfig holds configuration for FontSet.
type fontSetConfig struct {
	systemFonts bool
	cacheDir    string
	files       []string
}

// defaultFontSetConfig returns the default font set configuration.
// Only the embedded fonts are loaded.
func defaultFontSetConfig() fontSetConfig {
	return fontSetConfig{}
}

// WithSystemFonts enables scanning of the fonts installed on the system.
// The font index is cached in cacheDir; an empty cacheDir selects the
// user cache directory.
func WithSystemFonts(cacheDir string) FontSetOption {
	return func(c *fontSetConfig) {
		c.systemFonts = true
		c.cacheDir = cacheDir
	}
}

// WithFontFiles registers extra font files (TTF, OTF or collections).
// Each face is registered under the family name stored in the file.
func WithFontFiles(paths ...string) FontSetOption {
	return func(c *fontSetConfig) {
		c.files = append(c.files, paths...)
	}
}

// BufferOption configures Buffer creation.
type BufferOption func(*bufferConfig)

// bufferConfig holds configuration for Buffer.
type bufferConfig struct {
	language string
	subpixel SubpixelMode
}

// defaultBufferConfig returns the default buffer configuration.
func defaultBufferConfig() bufferConfig {
	return bufferConfig{
		language: "en",
		subpixel: Subpixel4,
	}
}

// WithLanguage sets the language tag used for shaping (e.g., "en", "ar").
func WithLanguage(lang string) BufferOption {
	return func(c *bufferConfig) {
		c.language = lang
	}
}

// WithSubpixel sets the horizontal subpixel positioning mode.
func WithSubpixel(m SubpixelMode) BufferOption {
	return func(c *bufferConfig) {
		c.subpixel = m
	}
}
