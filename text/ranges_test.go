package text

import (
	"testing"
	"unicode"

	"golang.org/x/image/font/gofont/goregular"
)

func TestUnicodeRange(t *testing.T) {
	r := UnicodeRange{Start: 'a', End: 'z'}
	if !r.Contains('a') || !r.Contains('z') || r.Contains('A') {
		t.Error("Contains() wrong at bounds")
	}
	if got := r.Len(); got != 26 {
		t.Errorf("Len() = %d, want 26", got)
	}
	if got := (UnicodeRange{Start: 5, End: 1}).Len(); got != 0 {
		t.Errorf("inverted Len() = %d, want 0", got)
	}
}

func TestRangeTable(t *testing.T) {
	rt := RangeTable(OverlayRanges...)
	tests := []struct {
		r    rune
		want bool
	}{
		{' ', true},
		{'ÿ', true},
		{0x1F, false},
		{0x100, false},
		{'ア', true},
		{0x3100, false},
		{0x31F5, true},
		{'漢', true},
		{0xFF01, true},
		{0xFFF0, false},
		{0x2550, true},
		{0x25FF, true},
		{0x2600, false},
	}
	for _, tt := range tests {
		if got := unicode.Is(rt, tt.r); got != tt.want {
			t.Errorf("unicode.Is(OverlayRanges, %U) = %v, want %v", tt.r, got, tt.want)
		}
	}

	wide := RangeTable(UnicodeRange{Start: 0xFFF0, End: 0x10010}, UnicodeRange{Start: 3, End: 1})
	for _, r := range []rune{0xFFF0, 0xFFFF, 0x10000, 0x10010} {
		if !unicode.Is(wide, r) {
			t.Errorf("range crossing the BMP lacks %U", r)
		}
	}
	if unicode.Is(wide, 0x10011) || unicode.Is(wide, 2) {
		t.Error("range table contains code points outside its ranges")
	}
}

func TestCoverage(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	ascii := UnicodeRange{Start: 0x21, End: 0x7E}
	cov := src.Coverage(ascii, RangeCJKUnified)

	if len(cov.Ranges) != 2 {
		t.Fatalf("len(Ranges) = %d, want 2", len(cov.Ranges))
	}
	if !cov.Ranges[0].Complete() {
		t.Errorf("printable ASCII coverage = %d of %d", cov.Ranges[0].Covered, ascii.Len())
	}
	if cov.Ranges[1].Covered != 0 {
		t.Errorf("CJK coverage = %d, want 0", cov.Ranges[1].Covered)
	}
	if want := ascii.Len() + RangeCJKUnified.Len(); cov.Total != want {
		t.Errorf("Total = %d, want %d", cov.Total, want)
	}
	if cov.Covered != ascii.Len() {
		t.Errorf("Covered = %d, want %d", cov.Covered, ascii.Len())
	}
	if m := cov.Missing(); len(m) != 1 || m[0] != RangeCJKUnified {
		t.Errorf("Missing() = %v, want [CJK unified]", m)
	}

	// Overlaps count once in the totals.
	dup := src.Coverage(ascii, ascii)
	if dup.Total != ascii.Len() {
		t.Errorf("overlapping Total = %d, want %d", dup.Total, ascii.Len())
	}
}
