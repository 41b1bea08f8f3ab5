package tint

// ITU-R BT.601 luma coefficients, scaled by 1000.
const (
	lumaRed   = 299
	lumaGreen = 587
	lumaBlue  = 114
)

// darkThreshold is on the 0-255 luma scale. Colors below it classify
// as dark.
const darkThreshold = 200

// Luma returns the color's perceived brightness on a 0-255 scale. The
// color is first composited over an opaque white background, so
// translucency counts toward lightness: fully transparent black reads
// as white (luma 255).
func (c Color) Luma() float64 {
	a := clamp01(c.A)
	r := clamp01(c.R)*a + (1 - a)
	g := clamp01(c.G)*a + (1 - a)
	b := clamp01(c.B)*a + (1 - a)
	return (r*255*lumaRed + g*255*lumaGreen + b*255*lumaBlue) / 1000
}

// IsDark reports whether the color is perceptually dark.
func (c Color) IsDark() bool {
	return c.Luma() < darkThreshold
}
