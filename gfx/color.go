package gfx

import (
	"fmt"
	"strings"
)

// Color is a 16-bit display color packed as BGR565: red in bits 0-4,
// green in bits 5-10 and blue in bits 11-15.
type Color uint16

// Color wheel used by the panel widgets.
const (
	Black        Color = 0x0000
	White        Color = 0xFFFF
	Yellow       Color = 0x07DF
	YellowOrange Color = 0x067F
	Orange       Color = 0x053F
	RedOrange    Color = 0x03FF
	Red          Color = 0x011F
	RedPurple    Color = 0x913E
	Purple       Color = 0xB911
	Blue         Color = 0xB920
	LightBlue    Color = 0xC3C0
	Cyan         Color = 0xD580
	Green        Color = 0x05C0
	Lime         Color = 0x0670
	HotPink      Color = 0xED9F
	Gray         Color = 0xC618
)

var colorNames = map[string]Color{
	"black":        Black,
	"white":        White,
	"yellow":       Yellow,
	"yelloworange": YellowOrange,
	"orange":       Orange,
	"redorange":    RedOrange,
	"red":          Red,
	"redpurple":    RedPurple,
	"purple":       Purple,
	"blue":         Blue,
	"lightblue":    LightBlue,
	"cyan":         Cyan,
	"green":        Green,
	"lime":         Lime,
	"hotpink":      HotPink,
	"gray":         Gray,
}

// RGBA implements color.Color. Each channel is expanded to 16 bits by
// replicating its high bits.
func (c Color) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c) & 0x1F
	g6 := (uint32(c) >> 5) & 0x3F
	b5 := (uint32(c) >> 11) & 0x1F

	r8 := r5<<3 | r5>>2
	g8 := g6<<2 | g6>>4
	b8 := b5<<3 | b5>>2

	return r8 | r8<<8, g8 | g8<<8, b8 | b8<<8, 0xFFFF
}

// Inverse returns the contrast color for text drawn on top of a box filled
// with c: Black on light colors, White on dark ones.
func (c Color) Inverse() Color {
	r, g, b, _ := c.RGBA()
	// Rec. 601 luma, 16-bit channels
	luma := (299*r + 587*g + 114*b) / 1000
	if luma < 0x8000 {
		return White
	}
	return Black
}

// ParseColor looks up a color wheel entry by name. Case, spaces, dashes and
// underscores are ignored, so "Light Blue" and "light_blue" both resolve.
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	c, ok := colorNames[key]
	if !ok {
		return 0, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
