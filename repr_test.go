package tint

import "testing"

func TestHexDecode(t *testing.T) {
	tests := []struct {
		name string
		hex  Hex
		want Color
	}{
		{"3-digit red", Hex{Value: 0xF00, Digits: 3}, Color{1, 0, 0, 1}},
		{"3-digit white", Hex{Value: 0xFFF, Digits: 3}, Color{1, 1, 1, 1}},
		{"3-digit black", Hex{Value: 0x000, Digits: 3}, Color{0, 0, 0, 1}},
		{"6-digit red", Hex{Value: 0xFF0000, Digits: 6}, Color{1, 0, 0, 1}},
		{"6-digit dark green", Hex{Value: 0x000F00, Digits: 6}, Color{0, float64(0x0F) / 255, 0, 1}},
		{"8-digit opaque red", Hex{Value: 0xFF0000FF, Digits: 8}, Color{1, 0, 0, 1}},
		{"8-digit translucent red", Hex{Value: 0xFF000080, Digits: 8}, Color{1, 0, 0, float64(0x80) / 255}},
		{"8-digit fully transparent", Hex{Value: 0xFF000000, Digits: 8}, Color{1, 0, 0, 0}},
		{"unsupported 4 digits", Hex{Value: 0xF00F, Digits: 4}, Color{}},
		{"unsupported 0 digits", Hex{Value: 0xF00, Digits: 0}, Color{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.hex.Decode()
			if !colorsClose(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHexShorthandEquivalence(t *testing.T) {
	// Every 3-digit value must decode like its nibble-doubled 6-digit
	// expansion, e.g. 0xABC like 0xAABBCC.
	for v := uint32(0); v <= 0xFFF; v++ {
		r := v >> 8 & 0xF
		g := v >> 4 & 0xF
		b := v & 0xF
		expanded := r*17<<16 | g*17<<8 | b*17

		short := Hex{Value: v, Digits: 3}.Decode()
		long := Hex{Value: expanded, Digits: 6}.Decode()
		if short != long {
			t.Fatalf("0x%03X: shorthand %+v != expanded 0x%06X %+v", v, short, expanded, long)
		}
	}
}

func TestHexValueInference(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		want  Hex
	}{
		{"shorthand", 0xF00, Hex{Value: 0xF00, Digits: 3}},
		{"shorthand upper bound", 0xFFF, Hex{Value: 0xFFF, Digits: 3}},
		{"six digits", 0x1000, Hex{Value: 0x1000, Digits: 6}},
		{"six digits upper bound", 0xFFFFFF, Hex{Value: 0xFFFFFF, Digits: 6}},
		{"eight digits", 0x1000000, Hex{Value: 0x1000000, Digits: 8}},
		{"eight digits with alpha", 0xFF0000FF, Hex{Value: 0xFF0000FF, Digits: 8}},
		{"zero is shorthand", 0, Hex{Value: 0, Digits: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexValue(tt.value); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRGBDecode(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want Color
	}{
		{"white", RGB{255, 255, 255}, Color{1, 1, 1, 1}},
		{"black", RGB{0, 0, 0}, Color{0, 0, 0, 1}},
		{"mid gray", RGB{51, 51, 51}, Color{0.2, 0.2, 0.2, 1}},
		{"clamped above", RGB{300, 256, 9999}, Color{1, 1, 1, 1}},
		{"clamped below", RGB{-1, -255, 0}, Color{0, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rgb.Decode()
			if !colorsClose(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRGBADecode(t *testing.T) {
	tests := []struct {
		name string
		rgba RGBA
		want Color
	}{
		{"translucent red", RGBA{R: 255, A: 0.15}, Color{1, 0, 0, 0.15}},
		{"opaque", RGBA{R: 255, G: 255, B: 255, A: 1}, Color{1, 1, 1, 1}},
		{"alpha clamped above", RGBA{R: 255, A: 2}, Color{1, 0, 0, 1}},
		{"alpha clamped below", RGBA{R: 255, A: -0.5}, Color{1, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rgba.Decode()
			if !colorsClose(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInvalidDecode(t *testing.T) {
	if got := (Invalid{}).Decode(); got != (Color{}) {
		t.Errorf("got %+v, want transparent black", got)
	}
}

func TestDecode(t *testing.T) {
	t.Run("dispatches to the representation", func(t *testing.T) {
		rep := Representation(Hex{Value: 0xFF0000FF, Digits: 8})
		if got, want := Decode(rep), (Color{1, 0, 0, 1}); got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("nil decodes to transparent black", func(t *testing.T) {
		if got := Decode(nil); got != (Color{}) {
			t.Errorf("got %+v, want transparent black", got)
		}
	})
}
