package ui

import (
	"fmt"
	"math"

	"github.com/OpticalFlyer/eqpanel/geom"
	"github.com/OpticalFlyer/eqpanel/gfx"
)

var _ Component = (*Slider)(nil)

// Slider maps a horizontal handle position inside its box onto a float
// value in [lowerBound, upperBound]. Both the value and the handle position
// live in cells owned by the caller.
type Slider struct {
	box   geom.Box
	color gfx.Color
	label string

	control   *float32
	xPosition *int

	lowerBound  float32
	upperBound  float32
	scaleFactor float32 // value units per pixel, fixed at construction
}

// NewSlider creates a slider over box and places its handle at the
// horizontal midpoint, writing the matching value to *control.
func NewSlider(box geom.Box, c gfx.Color, label string, control *float32,
	lowerBound, upperBound float32, xPosition *int) (*Slider, error) {
	if control == nil {
		return nil, fmt.Errorf("slider %q: control: %w", label, ErrNilRef)
	}
	if xPosition == nil {
		return nil, fmt.Errorf("slider %q: x position: %w", label, ErrNilRef)
	}
	if err := box.Validate(); err != nil {
		return nil, fmt.Errorf("slider %q: %w", label, err)
	}
	// Width can overflow to a negative value for extreme corners that pass
	// Validate.
	if box.Width() <= 0 || box.Height() <= 0 {
		return nil, fmt.Errorf("slider %q: %dx%d: %w", label, box.Width(), box.Height(), ErrDegenerateBox)
	}
	if !finite(lowerBound) || !finite(upperBound) {
		return nil, fmt.Errorf("slider %q: [%v, %v]: %w", label, lowerBound, upperBound, ErrBounds)
	}

	s := &Slider{
		box:         box,
		color:       c,
		label:       label,
		control:     control,
		xPosition:   xPosition,
		lowerBound:  lowerBound,
		upperBound:  upperBound,
		scaleFactor: (upperBound - lowerBound) / float32(box.Width()),
	}
	s.Update(box.MidX())
	return s, nil
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// Draw renders the active part of the bar left of the handle in the
// slider's color and the inactive part in gray, with the label to the left
// and the current value to the right.
func (s *Slider) Draw(surface gfx.Surface) {
	x := *s.xPosition

	active := geom.Box{
		P1: s.box.P1,
		P2: geom.Point{X: x, Y: s.box.P2.Y},
	}
	inactive := geom.Box{
		P1: geom.Point{X: x, Y: s.box.P1.Y},
		P2: s.box.P2,
	}

	surface.DrawFilledBox(active, s.color)
	surface.DrawFilledBox(inactive, gfx.Gray)

	face := gfx.DefaultFace
	surface.DrawText(active.P1.X-gfx.TextWidth(face, s.label)-4, active.P1.Y+4,
		face, gfx.White, s.label)
	surface.DrawText(inactive.P2.X+4, active.P1.Y+4,
		face, gfx.White, fmt.Sprintf("%.1f", *s.control))
}

// Update moves the handle to x, clamped to the box, and recomputes the
// value from scratch.
func (s *Slider) Update(x int) {
	x = s.box.ClampX(x)
	*s.xPosition = x
	// The conversion keeps the product from being fused into an FMA.
	*s.control = float32(float32(x-s.box.P1.X)*s.scaleFactor) + s.lowerBound
}

// HandleTouch follows the touch horizontally for as long as it lasts.
func (s *Slider) HandleTouch(x, y int, began bool) {
	s.Update(x)
}

// Value returns the current control value.
func (s *Slider) Value() float32 { return *s.control }

// Position returns the current handle x-coordinate.
func (s *Slider) Position() int { return *s.xPosition }

// ScaleFactor returns the value change per pixel of handle movement.
func (s *Slider) ScaleFactor() float32 { return s.scaleFactor }

// Range returns the bounds the slider was created with.
func (s *Slider) Range() (lower, upper float32) { return s.lowerBound, s.upperBound }

func (s *Slider) Label() string    { return s.label }
func (s *Slider) Bounds() geom.Box { return s.box }
