package ui

import (
	"errors"

	"github.com/OpticalFlyer/eqpanel/geom"
	"github.com/OpticalFlyer/eqpanel/gfx"
)

var (
	// ErrNilRef is returned when a widget is given a nil backing cell.
	ErrNilRef = errors.New("ui: nil reference")
	// ErrDegenerateBox is returned for a slider box with no width or height.
	ErrDegenerateBox = errors.New("ui: degenerate box")
	// ErrBounds is returned for slider bounds that are NaN or infinite.
	ErrBounds = errors.New("ui: invalid bounds")
)

// Component represents the basic building block of the UI system.
// All UI elements must implement this interface.
type Component interface {
	Draw(s gfx.Surface)
	Bounds() geom.Box
	// HandleTouch is called with a touch sample routed to the component.
	// began is true for the first sample of a touch.
	HandleTouch(x, y int, began bool)
}
