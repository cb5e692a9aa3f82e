package ui

import (
	"fmt"
	"image/color"

	"github.com/OpticalFlyer/eqpanel/geom"
	"github.com/OpticalFlyer/eqpanel/gfx"
)

// Group classifies what a button is for. The button itself never looks at
// it; the owning application uses it to decide how to react to the flag.
type Group int

const (
	PlayGroup   Group = iota // play/pause
	FilterGroup              // filter type selection
	SelectGroup              // which filter stage the sliders edit
)

func (g Group) String() string {
	switch g {
	case PlayGroup:
		return "play"
	case FilterGroup:
		return "filter"
	case SelectGroup:
		return "select"
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

var _ Component = (*Button)(nil)

// Button is a labeled touch target. Touching it sets a flag owned by the
// caller; the caller clears the flag once it has acted on it.
type Button struct {
	box   geom.Box
	color gfx.Color
	label string
	flag  *bool
	group Group

	isFilled bool
}

// NewButton creates a button that sets *flag when touched.
func NewButton(box geom.Box, c gfx.Color, label string, flag *bool, group Group) (*Button, error) {
	if flag == nil {
		return nil, fmt.Errorf("button %q: flag: %w", label, ErrNilRef)
	}
	if err := box.Validate(); err != nil {
		return nil, fmt.Errorf("button %q: %w", label, err)
	}
	return &Button{
		box:   box,
		color: c,
		label: label,
		flag:  flag,
		group: group,
	}, nil
}

// Draw renders the button. A filled button is drawn solid with contrasting
// text, otherwise only the outline and the label are drawn in its color.
func (b *Button) Draw(s gfx.Surface) {
	textX := b.box.P1.X + 4
	textY := b.box.MidY() + 4

	var textColor color.Color = b.color
	if b.isFilled {
		s.DrawFilledBox(b.box, b.color)
		textColor = b.color.Inverse()
	} else {
		s.DrawBox(b.box, b.color)
	}
	s.DrawText(textX, textY, gfx.DefaultFace, textColor, b.label)
}

// Update sets the button's flag. It never clears it.
func (b *Button) Update() {
	*b.flag = true
}

// HandleTouch fires the button at the start of a touch only, so holding a
// finger on it does not re-trigger every frame.
func (b *Button) HandleTouch(x, y int, began bool) {
	if began {
		b.Update()
	}
}

func (b *Button) SetFilled(filled bool) { b.isFilled = filled }
func (b *Button) Filled() bool          { return b.isFilled }
func (b *Button) Group() Group          { return b.group }
func (b *Button) Label() string         { return b.label }
func (b *Button) Bounds() geom.Box      { return b.box }
