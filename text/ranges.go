package text

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// UnicodeRange represents a contiguous, inclusive range of code points.
type UnicodeRange struct {
	Start rune
	End   rune
}

// Contains reports whether the rune is in the range.
func (ur UnicodeRange) Contains(r rune) bool {
	return r >= ur.Start && r <= ur.End
}

// Len returns the number of code points in the range.
func (ur UnicodeRange) Len() int {
	if ur.End < ur.Start {
		return 0
	}
	return int(ur.End-ur.Start) + 1
}

// Glyph ranges drawn by the overlay.
var (
	RangeLatin          = UnicodeRange{0x0020, 0x00FF} // Basic Latin + Latin-1 Supplement
	RangeCJKSymbolsKana = UnicodeRange{0x3000, 0x30FF} // CJK Symbols and Punctuation, Hiragana, Katakana
	RangeKatakanaExt    = UnicodeRange{0x31F0, 0x31FF} // Katakana Phonetic Extensions
	RangeCJKExtA        = UnicodeRange{0x3400, 0x4DBF} // CJK Unified Ideographs Extension A
	RangeCJKUnified     = UnicodeRange{0x4E00, 0x9FFF} // CJK Unified Ideographs
	RangeCJKCompat      = UnicodeRange{0xF900, 0xFAFF} // CJK Compatibility Ideographs
	RangeHalfFullwidth  = UnicodeRange{0xFF00, 0xFFEF} // Halfwidth and Fullwidth Forms
	RangeBoxDrawing     = UnicodeRange{0x2500, 0x257F} // Box Drawing
	RangeBlockElements  = UnicodeRange{0x2580, 0x259F} // Block Elements
	RangeGeometric      = UnicodeRange{0x25A0, 0x25FF} // Geometric Shapes
)

// OverlayRanges lists every glyph range the overlay font must provide.
var OverlayRanges = []UnicodeRange{
	RangeLatin,
	RangeCJKSymbolsKana,
	RangeKatakanaExt,
	RangeCJKExtA,
	RangeCJKUnified,
	RangeCJKCompat,
	RangeHalfFullwidth,
	RangeBoxDrawing,
	RangeBlockElements,
	RangeGeometric,
}

// RangeTable merges ranges into a single normalized unicode.RangeTable.
// Empty ranges are ignored.
func RangeTable(ranges ...UnicodeRange) *unicode.RangeTable {
	tables := make([]*unicode.RangeTable, 0, len(ranges))
	for _, r := range ranges {
		if r.Len() == 0 {
			continue
		}
		tables = append(tables, rangeToTable(r))
	}
	return rangetable.Merge(tables...)
}

func rangeToTable(r UnicodeRange) *unicode.RangeTable {
	t := &unicode.RangeTable{}
	lo, hi := r.Start, r.End
	if lo <= 0xFFFF {
		end := min(hi, 0xFFFF)
		t.R16 = []unicode.Range16{{Lo: uint16(lo), Hi: uint16(end), Stride: 1}}
		if end < 0x100 {
			t.LatinOffset = 1
		}
		lo = end + 1
	}
	if lo <= hi {
		t.R32 = []unicode.Range32{{Lo: uint32(lo), Hi: uint32(hi), Stride: 1}}
	}
	return t
}
