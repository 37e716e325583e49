package overlay

import (
	"image/color"
)

// RGBA is a straight-alpha color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA255 converts host color bytes (0-255 per channel) to an RGBA.
func RGBA255(r, g, b, a uint8) RGBA {
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Hex creates a color from a hex string.
// Supports "RGB", "RGBA", "RRGGBB" and "RRGGBBAA", with or without a
// leading '#'. Malformed input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32 = 0, 0, 0, 255
	switch len(hex) {
	case 3, 4:
		var v [4]uint32
		for i := 0; i < len(hex); i++ {
			if !parseHex(hex[i:i+1], &v[i]) {
				return RGBA{A: 1}
			}
			v[i] *= 17
		}
		r, g, b = v[0], v[1], v[2]
		if len(hex) == 4 {
			a = v[3]
		}
	case 6, 8:
		ok := parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
		if ok && len(hex) == 8 {
			ok = parseHex(hex[6:8], &a)
		}
		if !ok {
			return RGBA{A: 1}
		}
	default:
		return RGBA{A: 1}
	}
	return RGBA255(uint8(r), uint8(g), uint8(b), uint8(a))
}

// parseHex decodes s into val and reports whether every digit was valid.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Color converts to a straight-alpha standard library color.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x + 0.5
}

// Common colors
var (
	White = RGBA{R: 1, G: 1, B: 1, A: 1}
	Black = RGBA{A: 1}
)
