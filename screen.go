package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/OpticalFlyer/eqpanel/geom"
	"github.com/OpticalFlyer/eqpanel/gfx"
)

var _ gfx.Surface = (*screenSurface)(nil)

// screenSurface draws widgets onto an ebiten image.
type screenSurface struct {
	img   *ebiten.Image
	faces map[font.Face]*text.GoXFace
}

func newScreenSurface() *screenSurface {
	return &screenSurface{faces: make(map[font.Face]*text.GoXFace)}
}

// target points the surface at the image for the current frame.
func (s *screenSurface) target(img *ebiten.Image) {
	s.img = img
}

func (s *screenSurface) DrawFilledBox(b geom.Box, c color.Color) {
	b = b.Canon()
	// Box corners are inclusive, so the filled area is one pixel larger
	// than the corner distance.
	vector.DrawFilledRect(s.img, float32(b.P1.X), float32(b.P1.Y),
		float32(b.Width()+1), float32(b.Height()+1), c, false)
}

func (s *screenSurface) DrawBox(b geom.Box, c color.Color) {
	b = b.Canon()
	// Offset by half a pixel so the 1px stroke lands on pixel centers.
	vector.StrokeRect(s.img, float32(b.P1.X)+0.5, float32(b.P1.Y)+0.5,
		float32(b.Width()), float32(b.Height()), 1, c, false)
}

func (s *screenSurface) DrawText(x, y int, face font.Face, c color.Color, str string) {
	xface, ok := s.faces[face]
	if !ok {
		xface = text.NewGoXFace(face)
		s.faces[face] = xface
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.img, str, xface, op)
}
