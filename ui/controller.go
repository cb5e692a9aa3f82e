package ui

import (
	"github.com/OpticalFlyer/eqpanel/geom"
	"github.com/OpticalFlyer/eqpanel/gfx"
)

// Controller routes touch samples to components and draws them.
//
// A component hit when a touch begins captures that touch: later samples
// of the same pointer go to it even when they leave its bounds, which lets
// a slider be dragged past its ends. Controller is not safe for concurrent
// use.
type Controller struct {
	components []Component
	captured   map[int]Component
}

// NewController creates an empty controller.
func NewController() *Controller {
	return &Controller{
		components: make([]Component, 0),
		captured:   make(map[int]Component),
	}
}

// Add appends components. Hit testing follows insertion order.
func (c *Controller) Add(components ...Component) {
	c.components = append(c.components, components...)
}

// Remove removes a component and drops any touch it had captured.
func (c *Controller) Remove(component Component) {
	for i, existing := range c.components {
		if existing == component {
			c.components = append(c.components[:i], c.components[i+1:]...)
			break
		}
	}
	for id, captured := range c.captured {
		if captured == component {
			delete(c.captured, id)
		}
	}
}

// Components returns the managed components in insertion order.
func (c *Controller) Components() []Component {
	return c.components
}

// HitTest returns the first component whose bounds contain (x, y), or nil.
func (c *Controller) HitTest(x, y int) Component {
	for _, component := range c.components {
		if geom.Contains(component.Bounds(), x, y) {
			return component
		}
	}
	return nil
}

// Press starts touch id at (x, y). The component hit, if any, captures the
// touch and receives the sample. It is returned so the caller can tell
// whether the touch was consumed.
func (c *Controller) Press(id, x, y int) Component {
	component := c.HitTest(x, y)
	if component == nil {
		delete(c.captured, id)
		return nil
	}
	c.captured[id] = component
	component.HandleTouch(x, y, true)
	return component
}

// Move forwards a sample of touch id to the component that captured it.
// It reports whether a component received the sample.
func (c *Controller) Move(id, x, y int) bool {
	component, ok := c.captured[id]
	if !ok {
		return false
	}
	component.HandleTouch(x, y, false)
	return true
}

// Release ends touch id.
func (c *Controller) Release(id int) {
	delete(c.captured, id)
}

// Capturing reports whether touch id is held by a component.
func (c *Controller) Capturing(id int) bool {
	_, ok := c.captured[id]
	return ok
}

// Draw draws all components in insertion order.
func (c *Controller) Draw(s gfx.Surface) {
	for _, component := range c.components {
		component.Draw(s)
	}
}
