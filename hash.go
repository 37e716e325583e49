package overlay

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/chewxy/math32"
)

// AnchorName is the name of the anchor surface emitted every frame.
const AnchorName = "_"

// SurfaceID returns the identity of a text surface: a hash over the
// command position (x, y), the final screen position (sx, sy) and the
// text. Coordinates are truncated to unsigned 32-bit integers, saturating
// at the range bounds, with NaN mapped to zero.
func SurfaceID(x, y, sx, sy float32, text string) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint32(buf[0:], truncU32(x))
	binary.LittleEndian.PutUint32(buf[4:], truncU32(y))
	binary.LittleEndian.PutUint32(buf[8:], truncU32(sx))
	binary.LittleEndian.PutUint32(buf[12:], truncU32(sy))

	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(text)
	return d.Sum64()
}

// SurfaceName returns the name of the text surface for a command at
// (x, y): "text_window_{x}_{y}" with the shortest decimal form of each
// coordinate.
func SurfaceName(x, y float32) string {
	b := make([]byte, 0, 32)
	b = append(b, "text_window_"...)
	b = strconv.AppendFloat(b, float64(x), 'f', -1, 32)
	b = append(b, '_')
	b = strconv.AppendFloat(b, float64(y), 'f', -1, 32)
	return string(b)
}

func truncU32(f float32) uint32 {
	switch {
	case math32.IsNaN(f), f <= 0:
		return 0
	case f >= math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(f)
	}
}
