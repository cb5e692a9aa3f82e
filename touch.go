package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mousePointer is the pointer id used for the left mouse button so a
// desktop build can be driven like the touch screen.
const mousePointer = -1

func (g *EQPanel) handleTouchEvents() {
	// Handle touch start
	justPressed := make([]ebiten.TouchID, 0, 8)
	justPressed = inpututil.AppendJustPressedTouchIDs(justPressed)
	for _, id := range justPressed {
		x, y := ebiten.TouchPosition(id)
		g.panel.Press(int(id), x, y)
	}

	// Follow held touches
	touches := make([]ebiten.TouchID, 0, 8)
	touches = ebiten.AppendTouchIDs(touches)
	for _, id := range touches {
		if containsTouchID(justPressed, id) {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		g.panel.Move(int(id), x, y)
	}

	// Clean up ended touches
	released := make([]ebiten.TouchID, 0, 8)
	released = inpututil.AppendJustReleasedTouchIDs(released)
	for _, id := range released {
		g.panel.Release(int(id))
	}
}

func (g *EQPanel) handleMouse() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.panel.Press(mousePointer, x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.panel.Release(mousePointer)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.panel.Move(mousePointer, x, y)
	}
}

// Helper function to check if a TouchID is in a slice
func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}
