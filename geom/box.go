package geom

import (
	"errors"
	"fmt"
	"image"
)

// ErrInverted is returned when a Box has its corners out of order.
var ErrInverted = errors.New("geom: inverted box")

// Point is an integer screen coordinate.
type Point struct {
	X, Y int
}

// Box is an axis-aligned rectangle. P1 is the top-left corner and P2 the
// bottom-right corner; both are inclusive.
type Box struct {
	P1, P2 Point
}

// MakeBox returns a Box with its top-left corner at (x, y) and its
// bottom-right corner at (x+width, y+height). Width and height are not
// checked; negative values produce an inverted Box.
func MakeBox(x, y, width, height int) Box {
	return Box{
		P1: Point{X: x, Y: y},
		P2: Point{X: x + width, Y: y + height},
	}
}

// Contains reports whether (x, y) lies inside b, edges included.
func Contains(b Box, x, y int) bool {
	return x >= b.P1.X && x <= b.P2.X &&
		y >= b.P1.Y && y <= b.P2.Y
}

// Contains reports whether (x, y) lies inside b, edges included.
func (b Box) Contains(x, y int) bool {
	return Contains(b, x, y)
}

// Width returns the horizontal distance between the corners.
func (b Box) Width() int {
	return b.P2.X - b.P1.X
}

// Height returns the vertical distance between the corners.
func (b Box) Height() int {
	return b.P2.Y - b.P1.Y
}

// MidX returns the horizontal midpoint, rounded toward zero.
func (b Box) MidX() int {
	return (b.P1.X + b.P2.X) / 2
}

// MidY returns the vertical midpoint, rounded toward zero.
func (b Box) MidY() int {
	return (b.P1.Y + b.P2.Y) / 2
}

// ClampX limits x to the horizontal span of b.
func (b Box) ClampX(x int) int {
	if x < b.P1.X {
		return b.P1.X
	}
	if x > b.P2.X {
		return b.P2.X
	}
	return x
}

// Validate returns ErrInverted if P1 lies right of or below P2.
func (b Box) Validate() error {
	if b.P1.X > b.P2.X || b.P1.Y > b.P2.Y {
		return fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrInverted,
			b.P1.X, b.P1.Y, b.P2.X, b.P2.Y)
	}
	return nil
}

// Canon returns b with its corners swapped as needed so that P1 is the
// top-left corner.
func (b Box) Canon() Box {
	if b.P1.X > b.P2.X {
		b.P1.X, b.P2.X = b.P2.X, b.P1.X
	}
	if b.P1.Y > b.P2.Y {
		b.P1.Y, b.P2.Y = b.P2.Y, b.P1.Y
	}
	return b
}

// Rect converts b to a half-open image.Rectangle covering the same pixels.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.P1.X, b.P1.Y, b.P2.X+1, b.P2.Y+1)
}
