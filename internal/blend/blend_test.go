package blend

import (
	"image/color"
	"testing"
)

func TestDiv255(t *testing.T) {
	for x := 0; x <= 255*255; x++ {
		if got, want := int(div255(uint16(x))), x/255; got != want {
			t.Fatalf("div255(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestBlendBlack(t *testing.T) {
	bg := color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}
	tests := []struct {
		name string
		src  color.NRGBA
		want color.RGBA
	}{
		{"opaque", color.NRGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0xff}, color.RGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0xff}},
		{"transparent", color.NRGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0}, color.RGBA{A: 0xff}},
		{"half", color.NRGBA{R: 200, G: 100, B: 255, A: 128}, color.RGBA{R: 100, G: 50, B: 128, A: 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.src, bg, ModeBlack); got != tt.want {
				t.Errorf("Blend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlendBlackMatchesFormula(t *testing.T) {
	for c := 0; c < 256; c += 5 {
		for a := 0; a < 256; a++ {
			src := color.NRGBA{R: uint8(c), G: uint8(c), B: uint8(c), A: uint8(a)}
			got := Blend(src, color.RGBA{A: 0xff}, ModeBlack)
			if want := uint8(c * a / 255); got.R != want {
				t.Fatalf("Blend(c=%d, a=%d).R = %d, want %d", c, a, got.R, want)
			}
		}
	}
}

func TestBlendSourceOver(t *testing.T) {
	bg := color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}
	tests := []struct {
		name string
		src  color.NRGBA
		want color.RGBA
	}{
		{"opaque", color.NRGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0xff}, color.RGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0xff}},
		{"transparent", color.NRGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0}, bg},
		{"half", color.NRGBA{R: 255, G: 255, B: 255, A: 51}, color.RGBA{R: 75, G: 75, B: 87, A: 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.src, bg, ModeSourceOver); got != tt.want {
				t.Errorf("Blend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeBlack, ModeSourceOver} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v, want %v", m.String(), got, err, m)
		}
	}
	if _, err := ParseMode("multiply"); err == nil {
		t.Error("ParseMode(\"multiply\") error = nil, want error")
	}
}
