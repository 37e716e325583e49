package text

import (
	"bytes"
	"fmt"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// isCollection reports whether data starts with a TrueType collection
// header.
func isCollection(data []byte) bool {
	return len(data) >= 4 && string(data[:4]) == "ttcf"
}

// parseOutline parses the font used for rasterization.
func parseOutline(data []byte, index int) (*opentype.Font, error) {
	if !isCollection(data) {
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("text: failed to parse font: %w", err)
		}
		return f, nil
	}

	c, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font collection: %w", err)
	}
	if index < 0 || index >= c.NumFonts() {
		return nil, fmt.Errorf("%w: %d of %d", ErrCollectionIndex, index, c.NumFonts())
	}
	f, err := c.Font(index)
	if err != nil {
		return nil, fmt.Errorf("text: failed to load font %d from collection: %w", index, err)
	}
	return f, nil
}

// parseCoverage parses the font used for glyph coverage queries.
func parseCoverage(data []byte, index int) (*gtfont.Face, error) {
	if !isCollection(data) {
		f, err := gtfont.ParseTTF(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("text: failed to parse font: %w", err)
		}
		return f, nil
	}

	faces, err := gtfont.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font collection: %w", err)
	}
	if index < 0 || index >= len(faces) {
		return nil, fmt.Errorf("%w: %d of %d", ErrCollectionIndex, index, len(faces))
	}
	return faces[index], nil
}

// fontName returns the family name of f, falling back to the full name.
func fontName(f *opentype.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
