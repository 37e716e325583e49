package overlay

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"
)

// EncodingErrorPlaceholder replaces text that cannot be decoded.
const EncodingErrorPlaceholder = "?EncodingError?"

// MaxWideLen is the default bound, in UTF-16 code units, on the search for
// a wide string terminator.
const MaxWideLen = 1 << 16

var (
	// ErrNilString is returned for a nil wide-string pointer.
	ErrNilString = errors.New("overlay: nil wide string")

	// ErrUnterminated is returned when no terminator is found within the
	// length bound.
	ErrUnterminated = errors.New("overlay: wide string not terminated")

	// ErrInvalidUTF16 is returned for unpaired surrogates.
	ErrInvalidUTF16 = errors.New("overlay: invalid UTF-16")
)

// DecodeUTF16 decodes UTF-16 code units to a string. Unlike
// [utf16.Decode] it rejects unpaired surrogates instead of substituting
// U+FFFD.
func DecodeUTF16(units []uint16) (string, error) {
	var b strings.Builder
	b.Grow(len(units))
	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		if !utf16.IsSurrogate(u) {
			b.WriteRune(u)
			continue
		}
		if i+1 < len(units) {
			if r := utf16.DecodeRune(u, rune(units[i+1])); r != utf8.RuneError {
				b.WriteRune(r)
				i++
				continue
			}
		}
		return "", fmt.Errorf("%w: unpaired surrogate %#04x at unit %d", ErrInvalidUTF16, u, i)
	}
	return b.String(), nil
}

// DecodeWideN decodes a null-terminated UTF-16 string read from host
// memory at p, examining at most maxUnits code units.
//
// p must point to readable memory holding at least maxUnits code units or
// a terminator, whichever comes first.
func DecodeWideN(p *uint16, maxUnits int) (string, error) {
	if p == nil {
		return "", ErrNilString
	}
	n := -1
	for i := range maxUnits {
		if *(*uint16)(unsafe.Add(unsafe.Pointer(p), i*2)) == 0 {
			n = i
			break
		}
	}
	if n < 0 {
		return "", fmt.Errorf("%w within %d units", ErrUnterminated, maxUnits)
	}
	return DecodeUTF16(unsafe.Slice(p, n))
}

// DecodeWide decodes a null-terminated UTF-16 string from host memory.
// It never fails: any decoding error yields EncodingErrorPlaceholder.
func DecodeWide(p *uint16) string {
	s, err := DecodeWideN(p, MaxWideLen)
	if err != nil {
		return EncodingErrorPlaceholder
	}
	return s
}
