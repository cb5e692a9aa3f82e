package gfx

import (
	"image/color"
	"testing"

	"github.com/OpticalFlyer/eqpanel/geom"
)

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name    string
		c       Color
		r, g, b uint8
	}{
		{"black", Black, 0, 0, 0},
		{"white", White, 255, 255, 255},
		{"red", Red, 255, 32, 0},
		{"yellow", Yellow, 255, 251, 0},
		{"gray", Gray, 198, 195, 198},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := color.RGBAModel.Convert(tt.c).(color.RGBA)
			want := color.RGBA{tt.r, tt.g, tt.b, 255}
			if got != want {
				t.Errorf("got %v; want %v", got, want)
			}
		})
	}
}

func TestColorInverse(t *testing.T) {
	for c, want := range map[Color]Color{
		Black:  White,
		White:  Black,
		Yellow: Black,
		Gray:   Black,
	} {
		if got := c.Inverse(); got != want {
			t.Errorf("%#04x.Inverse() = %#04x; want %#04x", uint16(c), uint16(got), uint16(want))
		}
	}
}

func TestParseColor(t *testing.T) {
	for name, want := range map[string]Color{
		"Light Blue":    LightBlue,
		"hot_pink":      HotPink,
		"RED":           Red,
		"yellow-orange": YellowOrange,
	} {
		got, err := ParseColor(name)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("ParseColor(%q) = %#04x; want %#04x", name, uint16(got), uint16(want))
		}
	}

	if _, err := ParseColor("mauve"); err == nil {
		t.Error("expected error for unknown color")
	}
}

func sameColor(a, b color.Color) bool {
	return color.RGBAModel.Convert(a) == color.RGBAModel.Convert(b)
}

func TestBufferFilledBox(t *testing.T) {
	buf := NewBuffer(8, 8)
	buf.DrawFilledBox(geom.MakeBox(1, 1, 2, 2), Red)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 1 && x <= 3 && y >= 1 && y <= 3
			want := color.Color(Black)
			if inside {
				want = Red
			}
			if !sameColor(buf.At(x, y), want) {
				t.Errorf("pixel (%d,%d) = %v; want %v", x, y, buf.At(x, y), want)
			}
		}
	}
}

func TestBufferOutlinedBox(t *testing.T) {
	buf := NewBuffer(8, 8)
	buf.DrawBox(geom.MakeBox(1, 1, 4, 4), Green)

	for _, p := range [][2]int{{1, 1}, {5, 1}, {1, 5}, {5, 5}, {3, 1}, {1, 3}} {
		if !sameColor(buf.At(p[0], p[1]), Green) {
			t.Errorf("edge pixel %v not drawn", p)
		}
	}
	for _, p := range [][2]int{{2, 2}, {3, 3}, {4, 4}, {0, 0}, {6, 6}} {
		if !sameColor(buf.At(p[0], p[1]), Black) {
			t.Errorf("pixel %v should be untouched", p)
		}
	}
}

func TestBufferClipsToBounds(t *testing.T) {
	buf := NewBuffer(4, 4)
	buf.DrawFilledBox(geom.MakeBox(-10, -10, 100, 100), White)
	if !sameColor(buf.At(3, 3), White) {
		t.Error("expected clipped fill to cover the buffer")
	}
}

func TestBufferText(t *testing.T) {
	buf := NewBuffer(32, 16)
	buf.DrawText(0, 0, DefaultFace, White, "A")

	lit := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			if sameColor(buf.At(x, y), White) {
				if x >= TextWidth(DefaultFace, "A") {
					t.Errorf("pixel (%d,%d) lit outside the glyph advance", x, y)
				}
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no pixels drawn for text")
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth(DefaultFace, ""); got != 0 {
		t.Errorf("empty width = %d; want 0", got)
	}
	if got := TextWidth(DefaultFace, "Gain"); got != 4*7 {
		t.Errorf("width = %d; want 28", got)
	}
}
