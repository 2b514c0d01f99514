package globe

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Malformed strings yield opaque black; chart configs are
// data, not code, so bad values degrade instead of failing.
func Hex(hex string) RGBA {
	c, _ := ParseHex(hex)
	return c
}

// ParseHex is like Hex but reports whether the string was well formed.
func ParseHex(hex string) (RGBA, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255
	ok := true

	nib2 := func(s string) uint32 {
		hi, ok1 := nibble(s[0])
		lo, ok2 := nibble(s[1])
		if !ok1 || !ok2 {
			ok = false
		}
		return hi<<4 | lo
	}
	nib1 := func(c byte) uint32 {
		v, okc := nibble(c)
		if !okc {
			ok = false
		}
		return v * 17
	}

	switch len(hex) {
	case 3: // RGB
		r, g, b = nib1(hex[0]), nib1(hex[1]), nib1(hex[2])
	case 4: // RGBA
		r, g, b, a = nib1(hex[0]), nib1(hex[1]), nib1(hex[2]), nib1(hex[3])
	case 6: // RRGGBB
		r, g, b = nib2(hex[0:2]), nib2(hex[2:4]), nib2(hex[4:6])
	case 8: // RRGGBBAA
		r, g, b, a = nib2(hex[0:2]), nib2(hex[2:4]), nib2(hex[4:6]), nib2(hex[6:8])
	default:
		return RGBA{R: 0, G: 0, B: 0, A: 1}, false
	}
	if !ok {
		return RGBA{R: 0, G: 0, B: 0, A: 1}, false
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

func nibble(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)
