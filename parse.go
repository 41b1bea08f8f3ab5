package tint

import (
	"strconv"
	"strings"
)

// Parse turns a color string into a Representation. Recognized forms:
//
//	f00  #f00  ff0000  #FF0000  #ff0000ff
//	rgb(255, 0, 0)
//	rgba(255, 0, 0, 0.15)
//
// Hex digits are case-insensitive and the hash is optional. Channel
// arguments must be integers in [0, 255]; the rgba alpha is a float in
// [0, 1]. Anything else, including out-of-range channels, yields
// Invalid.
func Parse(s string) Representation {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")"):
		return parseFuncForm(s[len("rgba(") : len(s)-1], true)
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		return parseFuncForm(s[len("rgb(") : len(s)-1], false)
	}
	return parseHexForm(s)
}

// parseHexForm lexes a 3, 6 or 8 digit hex literal with an optional
// leading hash.
func parseHexForm(s string) Representation {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 6, 8:
	default:
		return Invalid{}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Invalid{}
	}
	return Hex{Value: uint32(v), Digits: len(s)}
}

// parseFuncForm lexes the comma-separated argument list of an rgb() or
// rgba() form. Whitespace around commas is tolerated.
func parseFuncForm(args string, hasAlpha bool) Representation {
	parts := strings.Split(args, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return Invalid{}
	}

	var ch [3]int
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return Invalid{}
		}
		ch[i] = n
	}
	if !hasAlpha {
		return RGB{R: ch[0], G: ch[1], B: ch[2]}
	}

	a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil || a < 0 || a > 1 {
		return Invalid{}
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: a}
}
