package text

import (
	"image"
	"image/color"
	"image/draw"
	"iter"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders s onto dst with its first baseline at (x, y). Each '\n'
// starts a new line one line height below the previous one. Drawing is
// clipped to dst's bounds.
func Draw(dst draw.Image, face *Face, s string, x, y float64, col color.Color) {
	if s == "" || face == nil {
		return
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face.face,
	}
	baseline := y
	for line := range lines(s) {
		d.Dot = fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(baseline * 64)}
		d.DrawString(line)
		baseline += face.metrics.LineHeight
	}
}

// Measure returns the size of the block s occupies: the widest line's
// advance and the total height of all lines.
func Measure(face *Face, s string) (width, height float64) {
	if s == "" || face == nil {
		return 0, 0
	}
	n := strings.Count(s, "\n") + 1
	return face.Advance(s), float64(n) * face.metrics.LineHeight
}

// lines yields the '\n'-separated lines of s.
func lines(s string) iter.Seq[string] {
	return strings.SplitSeq(s, "\n")
}
