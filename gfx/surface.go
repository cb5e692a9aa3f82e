// Package gfx is the drawing surface the widgets render to.
package gfx

import (
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/OpticalFlyer/eqpanel/geom"
)

// DefaultFace is the fixed-pitch face used for all widget text.
var DefaultFace font.Face = basicfont.Face7x13

// Surface is an off-screen drawing target. Calls take effect immediately;
// making the result visible is up to the owner of the Surface.
type Surface interface {
	// DrawFilledBox fills every pixel of b, edges included.
	DrawFilledBox(b geom.Box, c color.Color)
	// DrawBox draws a one pixel outline along the edges of b.
	DrawBox(b geom.Box, c color.Color)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(x, y int, face font.Face, c color.Color, s string)
}

// TextWidth returns the advance width of s in whole pixels.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
