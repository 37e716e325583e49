package text

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func newTestFace(t *testing.T, size float64) *Face {
	t.Helper()
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face, err := src.Face(size)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = face.Close() })
	return face
}

func TestFaceMetrics(t *testing.T) {
	face := newTestFace(t, BaseSize)
	m := face.Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 || m.LineHeight < m.Ascent {
		t.Errorf("Metrics() = %+v", m)
	}
	if face.Size() != BaseSize {
		t.Errorf("Size() = %v", face.Size())
	}

	big := newTestFace(t, 2*BaseSize)
	if big.Metrics().Ascent <= m.Ascent {
		t.Error("doubling the size did not grow the ascent")
	}
}

func TestFaceInvalidSize(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	for _, size := range []float64{0, -3} {
		if _, err := src.Face(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Face(%v) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestAdvanceAndMeasure(t *testing.T) {
	face := newTestFace(t, BaseSize)
	a, ab := face.Advance("a"), face.Advance("ab")
	if a <= 0 || ab <= a {
		t.Errorf("Advance(a) = %v, Advance(ab) = %v", a, ab)
	}
	if got := face.Advance("ab\na"); got != ab {
		t.Errorf("Advance over lines = %v, want widest line %v", got, ab)
	}

	w, h := Measure(face, "ab\na")
	if w != ab || h != 2*face.Metrics().LineHeight {
		t.Errorf("Measure() = (%v, %v)", w, h)
	}
	if w, h := Measure(face, ""); w != 0 || h != 0 {
		t.Errorf("Measure(\"\") = (%v, %v)", w, h)
	}
}

func TestDrawClipsToDestination(t *testing.T) {
	face := newTestFace(t, BaseSize)
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	sub := img.SubImage(image.Rect(0, 0, 30, 40)).(*image.RGBA)

	Draw(sub, face, "WWWWWWWW\nWWWW", 2, face.Metrics().Ascent, color.White)

	inside, outside := 0, 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			if x < 30 && y < 40 {
				inside++
			} else {
				outside++
			}
		}
	}
	if inside == 0 {
		t.Error("Draw produced no pixels")
	}
	if outside != 0 {
		t.Errorf("Draw wrote %d pixels outside the destination", outside)
	}

	// Nil face and empty text are no-ops.
	Draw(img, nil, "x", 0, 0, color.White)
	Draw(img, face, "", 0, 0, color.White)
}
