package tint

// Representation describes how a color was specified before decoding.
// It is a closed set: Hex, RGB, RGBA and Invalid are the only
// implementations.
type Representation interface {
	// Decode resolves the representation to its color. Decoding is
	// total: representations that do not describe a color decode to
	// transparent black.
	Decode() Color
}

// Hex is a packed-integer color. Digits selects the format: 3 (web
// shorthand, one nibble per channel), 6 (one byte per channel, opaque)
// or 8 (R, G, B bytes plus a low alpha byte). Any other digit count
// decodes to transparent black.
type Hex struct {
	Value  uint32
	Digits int
}

// HexValue builds a Hex representation from a packed integer, inferring
// the digit count from magnitude: values up to 0xFFF are shorthand, up
// to 0xFFFFFF six-digit, anything larger eight-digit. Use a Hex literal
// with an explicit Digits to force a format (e.g. 0x000f00 as six
// digits).
func HexValue(v uint32) Hex {
	switch {
	case v <= 0xFFF:
		return Hex{Value: v, Digits: 3}
	case v <= 0xFFFFFF:
		return Hex{Value: v, Digits: 6}
	default:
		return Hex{Value: v, Digits: 8}
	}
}

// Decode unpacks the integer into channels. Shorthand nibbles are
// expanded by repetition (0xF00 reads as 0xFF0000).
func (h Hex) Decode() Color {
	var r, g, b, a uint32
	a = 0xFF
	switch h.Digits {
	case 3:
		r = (h.Value >> 8 & 0xF) * 17
		g = (h.Value >> 4 & 0xF) * 17
		b = (h.Value & 0xF) * 17
	case 6:
		r = h.Value >> 16 & 0xFF
		g = h.Value >> 8 & 0xFF
		b = h.Value & 0xFF
	case 8:
		r = h.Value >> 24 & 0xFF
		g = h.Value >> 16 & 0xFF
		b = h.Value >> 8 & 0xFF
		a = h.Value & 0xFF
	default:
		return Color{}
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// RGB is a discrete 8-bit color, implicitly opaque. Channels outside
// [0, 255] are clamped.
type RGB struct {
	R, G, B int
}

// Decode normalizes the channels and fixes alpha at 1.
func (c RGB) Decode() Color {
	return Color{
		R: clamp255(c.R) / 255,
		G: clamp255(c.G) / 255,
		B: clamp255(c.B) / 255,
		A: 1,
	}
}

// RGBA is a discrete 8-bit color with an explicit alpha in [0, 1].
// Out-of-range values are clamped.
type RGBA struct {
	R, G, B int
	A       float64
}

// Decode normalizes the color channels; alpha is taken as given.
func (c RGBA) Decode() Color {
	return Color{
		R: clamp255(c.R) / 255,
		G: clamp255(c.G) / 255,
		B: clamp255(c.B) / 255,
		A: clamp01(c.A),
	}
}

// Invalid marks input that could not be parsed as a color.
type Invalid struct{}

// Decode returns fully transparent black, the documented fallback for
// unparseable input.
func (Invalid) Decode() Color {
	return Color{}
}

// Decode resolves a representation to its color. A nil representation
// decodes like Invalid.
func Decode(r Representation) Color {
	if r == nil {
		return Color{}
	}
	return r.Decode()
}

func clamp255(v int) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return float64(v)
}
