package overlay

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Reference resolutions of the normalized coordinate modes.
const (
	Reference4KWidth     = 3840
	Reference4KHeight    = 2160
	Reference1080pWidth  = 1920
	Reference1080pHeight = 1080
)

// CameraState is a snapshot of the host camera. Right, Up and Forward are
// the camera basis vectors in world space. FOV is the vertical field of
// view in radians.
type CameraState struct {
	Position    mgl32.Vec3
	Right       mgl32.Vec3
	Up          mgl32.Vec3
	Forward     mgl32.Vec3
	FOV         float32
	AspectRatio float32
}

// Valid reports whether the camera can project points: finite basis and
// position, 0 < FOV < pi and a positive aspect ratio.
func (c *CameraState) Valid() bool {
	if !(c.FOV > 0 && c.FOV < math.Pi && c.AspectRatio > 0) {
		return false
	}
	if !finite(c.FOV) || !finite(c.AspectRatio) {
		return false
	}
	for _, v := range [...]mgl32.Vec3{c.Position, c.Right, c.Up, c.Forward} {
		if !finite(v[0]) || !finite(v[1]) || !finite(v[2]) {
			return false
		}
	}
	return true
}

// Project maps a world-space point onto a viewport of the given size using
// a right-handed perspective projection. It reports false for points on or
// behind the camera plane and for non-finite results.
func (c *CameraState) Project(world mgl32.Vec3, viewport Size) (Point, bool) {
	if !c.Valid() {
		return Point{}, false
	}
	rel := world.Sub(c.Position)
	zc := c.Forward.Dot(rel)
	if !(zc > 0) {
		return Point{}, false
	}
	xc := c.Right.Dot(rel)
	yc := c.Up.Dot(rel)

	m11 := 1 / math32.Tan(0.5*c.FOV)
	m00 := m11 / c.AspectRatio
	ndcX := xc * m00 / zc
	ndcY := yc * m11 / zc

	p := Point{
		X: (ndcX*0.5 + 0.5) * viewport.W,
		Y: (-ndcY*0.5 + 0.5) * viewport.H,
	}
	return p, p.IsFinite()
}

// Transform maps (x, y, z) in the given coordinate mode to overlay pixels.
// It reports false when the item must not be drawn this frame: unknown
// mode, missing or degenerate camera for world modes, a point behind the
// camera, or a non-finite result. Transform never panics.
func Transform(x, y, z float32, mode CoordMode, cam *CameraState, win WindowState) (Point, bool) {
	if !finite(x) || !finite(y) || !finite(z) {
		return Point{}, false
	}

	var p Point
	switch mode {
	case CoordWorldProjected, CoordWorldProjectedAlt:
		if cam == nil {
			return Point{}, false
		}
		var ok bool
		if p, ok = cam.Project(mgl32.Vec3{x, y, z}, win.Physical); !ok {
			return Point{}, false
		}
	case CoordNativeScreen, CoordNativeScreenAlt:
		p = Point{
			X: scale(x, win.Physical.W, win.Logical.W),
			Y: scale(y, win.Physical.H, win.Logical.H),
		}
	case CoordNormalized4K:
		p = Point{
			X: scale(x, win.Logical.W, Reference4KWidth),
			Y: scale(y, win.Logical.H, Reference4KHeight),
		}
	case CoordNormalized1080p:
		p = Point{
			X: scale(x, win.Logical.W, Reference1080pWidth),
			Y: scale(y, win.Logical.H, Reference1080pHeight),
		}
	default:
		return Point{}, false
	}

	if !p.IsFinite() {
		return Point{}, false
	}
	return p, true
}

// scale returns v*num/den. The product is formed in float64 so that
// v == den maps exactly onto num.
func scale(v, num, den float32) float32 {
	return float32(float64(v) * float64(num) / float64(den))
}
