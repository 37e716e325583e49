package text

import (
	"fmt"
	"os"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
)

// BaseSize is the pixel size the overlay font is rasterized at.
const BaseSize = 24

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	addr *FontSource

	name string

	mu       sync.RWMutex
	outline  *opentype.Font
	coverage *gtfont.Face
}

// NewFontSource creates a FontSource from font data (TTF, OTF or TTC).
// For collections, the font is selected with WithCollectionIndex.
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	outline, err := parseOutline(dataCopy, config.index)
	if err != nil {
		return nil, err
	}
	coverage, err := parseCoverage(dataCopy, config.index)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		name:     fontName(outline),
		outline:  outline,
		coverage: coverage,
	}
	s.addr = s
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// HasGlyph reports whether the font maps r to a glyph.
func (s *FontSource) HasGlyph(r rune) bool {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.coverage == nil {
		return false
	}
	_, ok := s.coverage.NominalGlyph(r)
	return ok
}

// Face creates a Face at the given pixel size.
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) (*Face, error) {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	s.mu.RLock()
	outline := s.outline
	s.mu.RUnlock()
	if outline == nil {
		return nil, ErrClosed
	}
	return newFace(s, outline, size, config)
}

// Close releases the parsed font data. Faces created earlier keep working;
// new faces cannot be created.
func (s *FontSource) Close() error {
	s.copyCheck()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outline = nil
	s.coverage = nil
	return nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}
