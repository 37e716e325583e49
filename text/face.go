package text

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Metrics holds face metrics in pixels.
type Metrics struct {
	// Ascent is the distance from the top of a line to its baseline.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of a line
	// (positive).
	Descent float64

	// LineHeight is the recommended distance between two baselines.
	LineHeight float64
}

// Face is a font rasterized at one pixel size. A Face is not safe for
// concurrent use.
type Face struct {
	source  *FontSource
	size    float64
	face    font.Face
	metrics Metrics
}

func newFace(src *FontSource, f *opentype.Font, size float64, config faceConfig) (*Face, error) {
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	ff, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: mapHinting(config.hinting),
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	m := ff.Metrics()
	return &Face{
		source: src,
		size:   size,
		face:   ff,
		metrics: Metrics{
			Ascent:     fixedToFloat64(m.Ascent),
			Descent:    fixedToFloat64(m.Descent),
			LineHeight: fixedToFloat64(m.Height),
		},
	}, nil
}

// Size returns the pixel size of the face.
func (f *Face) Size() float64 { return f.size }

// Source returns the FontSource the face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Metrics returns the face metrics.
func (f *Face) Metrics() Metrics { return f.metrics }

// Advance returns the advance width of the widest line of s in pixels.
func (f *Face) Advance(s string) float64 {
	var widest fixed.Int26_6
	for line := range lines(s) {
		if w := font.MeasureString(f.face, line); w > widest {
			widest = w
		}
	}
	return fixedToFloat64(widest)
}

// Close releases the face.
func (f *Face) Close() error {
	return f.face.Close()
}

// mapHinting converts text.Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
