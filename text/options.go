package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	index int
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{index: 0}
}

// WithCollectionIndex selects the font to load from a TTC collection.
// It is ignored for single-font files. The default is 0.
func WithCollectionIndex(i int) SourceOption {
	return func(c *sourceConfig) {
		c.index = i
	}
}

// Hinting selects glyph outline hinting.
type Hinting uint8

const (
	HintingNone Hinting = iota
	HintingVertical
	HintingFull
)

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	hinting Hinting
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{hinting: HintingFull}
}

// WithHinting sets the hinting mode for the face.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}
