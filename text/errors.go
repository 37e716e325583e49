package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrCollectionIndex is returned when the requested font index is not
	// present in a collection.
	ErrCollectionIndex = errors.New("text: font index out of range")

	// ErrNoCoverage is returned when a font has no glyph in any of the
	// requested ranges.
	ErrNoCoverage = errors.New("text: font covers none of the requested ranges")

	// ErrClosed is returned when using a closed FontSource.
	ErrClosed = errors.New("text: font source closed")

	// ErrInvalidSize is returned for a non-positive or non-finite face size.
	ErrInvalidSize = errors.New("text: invalid face size")
)
