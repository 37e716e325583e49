package text

import (
	"golang.org/x/text/unicode/rangetable"
)

// RangeCoverage reports how many code points of one range the font maps.
type RangeCoverage struct {
	Range   UnicodeRange
	Covered int
}

// Complete reports whether every code point of the range is covered.
func (c RangeCoverage) Complete() bool {
	return c.Covered == c.Range.Len()
}

// Coverage summarizes glyph availability over a set of ranges.
type Coverage struct {
	Ranges  []RangeCoverage
	Covered int
	Total   int
}

// Missing returns the ranges with no covered code point at all.
func (c Coverage) Missing() []UnicodeRange {
	var out []UnicodeRange
	for _, rc := range c.Ranges {
		if rc.Covered == 0 {
			out = append(out, rc.Range)
		}
	}
	return out
}

// Coverage counts the code points of ranges the font maps to a glyph.
// Overlapping ranges are counted once in the totals.
func (s *FontSource) Coverage(ranges ...UnicodeRange) Coverage {
	s.copyCheck()
	s.mu.RLock()
	face := s.coverage
	s.mu.RUnlock()

	has := func(r rune) bool {
		if face == nil {
			return false
		}
		_, ok := face.NominalGlyph(r)
		return ok
	}

	cov := Coverage{Ranges: make([]RangeCoverage, 0, len(ranges))}
	for _, ur := range ranges {
		rc := RangeCoverage{Range: ur}
		for r := ur.Start; r <= ur.End; r++ {
			if has(r) {
				rc.Covered++
			}
		}
		cov.Ranges = append(cov.Ranges, rc)
	}

	rangetable.Visit(RangeTable(ranges...), func(r rune) {
		cov.Total++
		if has(r) {
			cov.Covered++
		}
	})
	return cov
}

// LoadOverlayFont loads the overlay font from path and checks it against
// OverlayRanges. It fails when the font covers none of them. Partially
// covered ranges are logged and accepted.
func LoadOverlayFont(path string, opts ...SourceOption) (*FontSource, error) {
	src, err := NewFontSourceFromFile(path, opts...)
	if err != nil {
		return nil, err
	}

	cov := src.Coverage(OverlayRanges...)
	if cov.Covered == 0 {
		_ = src.Close()
		return nil, ErrNoCoverage
	}

	log := slogger()
	for _, ur := range cov.Missing() {
		log.Debug("text: overlay font lacks glyph range", "start", ur.Start, "end", ur.End)
	}
	log.Info("text: overlay font loaded",
		"path", path, "name", src.Name(), "covered", cov.Covered, "total", cov.Total)
	return src, nil
}
