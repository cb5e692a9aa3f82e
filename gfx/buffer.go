package gfx

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/OpticalFlyer/eqpanel/geom"
)

var _ Surface = (*Buffer)(nil)

// Buffer is a Surface backed by an in-memory RGBA image. It plays the role
// of the display back buffer: widgets draw into it and the owner presents
// Image() once the frame is complete.
type Buffer struct {
	img *image.RGBA
}

// NewBuffer allocates a width x height back buffer cleared to Black.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	b.Clear(Black)
	return b
}

// Image returns the underlying image.
func (b *Buffer) Image() *image.RGBA {
	return b.img
}

// Clear fills the whole buffer with c.
func (b *Buffer) Clear(c color.Color) {
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// At returns the color of the pixel at (x, y).
func (b *Buffer) At(x, y int) color.Color {
	return b.img.At(x, y)
}

func (b *Buffer) DrawFilledBox(box geom.Box, c color.Color) {
	r := box.Canon().Rect().Intersect(b.img.Bounds())
	draw.Draw(b.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func (b *Buffer) DrawBox(box geom.Box, c color.Color) {
	box = box.Canon()
	edges := []geom.Box{
		{P1: box.P1, P2: geom.Point{X: box.P2.X, Y: box.P1.Y}},
		{P1: geom.Point{X: box.P1.X, Y: box.P2.Y}, P2: box.P2},
		{P1: box.P1, P2: geom.Point{X: box.P1.X, Y: box.P2.Y}},
		{P1: geom.Point{X: box.P2.X, Y: box.P1.Y}, P2: box.P2},
	}
	for _, e := range edges {
		b.DrawFilledBox(e, c)
	}
}

func (b *Buffer) DrawText(x, y int, face font.Face, c color.Color, s string) {
	d := font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + face.Metrics().Ascent},
	}
	d.DrawString(s)
}
