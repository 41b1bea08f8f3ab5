// Package tint provides small color utilities: parsing of hex and
// rgb()/rgba() color strings, decoding to normalized RGBA channels,
// lighten/darken adjustment, and perceptual darkness classification.
//
// Parsing and decoding are total: input that does not describe a color
// decodes to fully transparent black rather than returning an error.
//
//	c := tint.ParseColor("#ff8800")
//	c.Hex()          // "#ff8800"
//	c.IsDark()       // true (luma 156 on the 0-255 scale)
//	c.Lighten(0.2)   // a paler orange
//
// Colors can also be built from a packed integer or discrete channels:
//
//	tint.HexValue(0xf80).Decode()        // same as "#ff8800"
//	tint.RGB{R: 255, G: 136}.Decode()    // same again
//	tint.RGBA{R: 255, A: 0.15}.Decode()  // translucent red
//
// The truthy subpackage carries generic predicate helpers unrelated to
// colors.
package tint

// ParseColor parses a color string and decodes it in one step.
// Unrecognized input yields transparent black.
func ParseColor(s string) Color {
	return Parse(s).Decode()
}
