package overlay

import "github.com/chewxy/math32"

// Vec2 is a pair of float32 values laid out like the host's float2
// argument (used for pixel offsets).
type Vec2 struct {
	X, Y float32
}

// Vec4 is four float32 values laid out like the host's float4 position
// argument. Only X, Y and Z are meaningful for text positions.
type Vec4 struct {
	X, Y, Z, W float32
}

// Point is a position in overlay pixels. Origin at top-left, Y down.
type Point struct {
	X, Y float32
}

// Add returns the point translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return finite(p.X) && finite(p.Y)
}

// Size is a width and height in pixels.
type Size struct {
	W, H float32
}

// Valid reports whether both dimensions are finite and positive.
func (s Size) Valid() bool {
	return finite(s.W) && finite(s.H) && s.W > 0 && s.H > 0
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
