package tint

// Lighten returns a copy of the color with ratio added to every
// channel, saturating at 1. The ratio applies to the alpha channel as
// well as the color channels; use LightenRGB to keep opacity
// unchanged.
func (c Color) Lighten(ratio float64) Color {
	return Color{
		R: clamp01(c.R + ratio),
		G: clamp01(c.G + ratio),
		B: clamp01(c.B + ratio),
		A: clamp01(c.A + ratio),
	}
}

// Darken returns a copy of the color with ratio subtracted from every
// channel, saturating at 0. Like Lighten, the alpha channel is
// adjusted too; use DarkenRGB to keep opacity unchanged.
func (c Color) Darken(ratio float64) Color {
	return Color{
		R: clamp01(c.R - ratio),
		G: clamp01(c.G - ratio),
		B: clamp01(c.B - ratio),
		A: clamp01(c.A - ratio),
	}
}

// LightenRGB is Lighten restricted to the color channels; alpha is
// preserved.
func (c Color) LightenRGB(ratio float64) Color {
	return Color{
		R: clamp01(c.R + ratio),
		G: clamp01(c.G + ratio),
		B: clamp01(c.B + ratio),
		A: c.A,
	}
}

// DarkenRGB is Darken restricted to the color channels; alpha is
// preserved.
func (c Color) DarkenRGB(ratio float64) Color {
	return Color{
		R: clamp01(c.R - ratio),
		G: clamp01(c.G - ratio),
		B: clamp01(c.B - ratio),
		A: c.A,
	}
}
