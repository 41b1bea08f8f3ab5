package tint

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a color with red, green, blue, and alpha channels, each
// normalized to [0, 1]. The zero value is fully transparent black,
// which doubles as the fallback for unparseable input.
type Color struct {
	R, G, B, A float64
}

// New returns a Color with all four channels clamped to [0, 1].
func New(r, g, b, a float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
}

// FromStdColor converts a standard library color to a Color.
func FromStdColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// StdColor converts the Color to a standard library color. NRGBA is
// used because the channels are straight (non-premultiplied) alpha.
func (c Color) StdColor() color.NRGBA {
	return color.NRGBA{
		R: byteChannel(c.R),
		G: byteChannel(c.G),
		B: byteChannel(c.B),
		A: byteChannel(c.A),
	}
}

// Hex returns the color as "#rrggbb", discarding alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", byteChannel(c.R), byteChannel(c.G), byteChannel(c.B))
}

// HexAlpha returns the color as "#rrggbbaa".
func (c Color) HexAlpha() string {
	return fmt.Sprintf("%s%02x", c.Hex(), byteChannel(c.A))
}

// RGBString returns the color as an rgb() string, e.g. "rgb(255, 136, 0)".
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", byteChannel(c.R), byteChannel(c.G), byteChannel(c.B))
}

// RGBAString returns the color as an rgba() string, e.g.
// "rgba(255, 136, 0, 0.5)".
func (c Color) RGBAString() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", byteChannel(c.R), byteChannel(c.G), byteChannel(c.B), clamp01(c.A))
}

// byteChannel maps a normalized channel to its 8-bit value.
func byteChannel(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// clamp01 clamps v to [0, 1]. NaN maps to 0.
func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
