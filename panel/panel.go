package panel

import (
	"fmt"

	"github.com/OpticalFlyer/eqpanel/geom"
	"github.com/OpticalFlyer/eqpanel/gfx"
	"github.com/OpticalFlyer/eqpanel/ui"
)

// Layout constants in pixels.
const (
	minWidth  = 400
	minHeight = 240

	margin       = 10
	buttonHeight = 30
	buttonGap    = 6
	selectWidth  = 44

	sliderLeft   = 60  // room for the label
	sliderRight  = 80  // room for the value
	sliderTop    = 110 // first slider row
	sliderPitch  = 50
	sliderHeight = 24
)

var stageLabels = [MaxStages]string{"A", "B", "C", "D"}

// Panel is the filter control surface: a play button, one button per
// filter type, one selector per stage and a frequency/Q/gain slider trio
// for the selected stage.
type Panel struct {
	state *State

	buttons *ui.Controller
	sliders []*ui.Controller // per stage

	play    *ui.Button
	filters []*ui.Button // indexed by FilterType
	selects []*ui.Button // indexed by stage
}

// New lays out a panel for cfg.
func New(cfg Config) (*Panel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// Validate has already checked the names.
	playColor, _ := gfx.ParseColor(cfg.Colors.Play)
	filterColor, _ := gfx.ParseColor(cfg.Colors.Filter)
	selectColor, _ := gfx.ParseColor(cfg.Colors.Select)
	sliderColor, _ := gfx.ParseColor(cfg.Colors.Slider)

	p := &Panel{
		state:   newState(cfg.Stages),
		buttons: ui.NewController(),
	}
	s := p.state

	var err error
	p.play, err = ui.NewButton(geom.MakeBox(margin, margin, 60, buttonHeight),
		playColor, "Play", &s.playPressed, ui.PlayGroup)
	if err != nil {
		return nil, err
	}
	p.buttons.Add(p.play)

	for i := 0; i < cfg.Stages; i++ {
		box := geom.MakeBox(80+i*(selectWidth+buttonGap), margin, selectWidth, buttonHeight)
		b, err := ui.NewButton(box, selectColor, stageLabels[i], &s.selectPressed[i], ui.SelectGroup)
		if err != nil {
			return nil, err
		}
		p.selects = append(p.selects, b)
		p.buttons.Add(b)
	}

	pitch := (cfg.Width - 2*margin) / len(FilterTypes)
	for i, ft := range FilterTypes {
		box := geom.MakeBox(margin+i*pitch, margin+buttonHeight+margin, pitch-buttonGap, buttonHeight)
		b, err := ui.NewButton(box, filterColor, ft.String(), &s.filterPressed[i], ui.FilterGroup)
		if err != nil {
			return nil, err
		}
		p.filters = append(p.filters, b)
		p.buttons.Add(b)
	}

	width := cfg.Width - sliderLeft - sliderRight
	for i := range s.Stages {
		st := &s.Stages[i]
		rows := []struct {
			label string
			rng   Range
			value *float32
			x     *int
		}{
			{"Freq", cfg.Frequency, &st.Frequency, &st.FrequencyX},
			{"Q", cfg.Q, &st.Q, &st.QX},
			{"Gain", cfg.Gain, &st.Gain, &st.GainX},
		}

		c := ui.NewController()
		for row, r := range rows {
			box := geom.MakeBox(sliderLeft, sliderTop+row*sliderPitch, width, sliderHeight)
			sl, err := ui.NewSlider(box, sliderColor, r.label, r.value, r.rng.Min, r.rng.Max, r.x)
			if err != nil {
				return nil, fmt.Errorf("stage %s: %w", stageLabels[i], err)
			}
			c.Add(sl)
		}
		p.sliders = append(p.sliders, c)
	}

	p.refresh()
	return p, nil
}

// State returns the control state the panel's widgets are bound to.
func (p *Panel) State() *State {
	return p.state
}

// Buttons returns every button in layout order.
func (p *Panel) Buttons() []*ui.Button {
	out := make([]*ui.Button, 0, len(p.buttons.Components()))
	for _, c := range p.buttons.Components() {
		out = append(out, c.(*ui.Button))
	}
	return out
}

// Sliders returns the sliders of the selected stage.
func (p *Panel) Sliders() []*ui.Slider {
	components := p.sliders[p.state.stage].Components()
	out := make([]*ui.Slider, 0, len(components))
	for _, c := range components {
		out = append(out, c.(*ui.Slider))
	}
	return out
}

// Press starts touch id at (x, y) and reports whether a widget took it.
func (p *Panel) Press(id, x, y int) bool {
	if p.buttons.Press(id, x, y) != nil {
		return true
	}
	return p.sliders[p.state.stage].Press(id, x, y) != nil
}

// Move continues touch id.
func (p *Panel) Move(id, x, y int) bool {
	if p.buttons.Move(id, x, y) {
		return true
	}
	// The touch may have started before the selected stage changed.
	for _, c := range p.sliders {
		if c.Move(id, x, y) {
			return true
		}
	}
	return false
}

// Release ends touch id.
func (p *Panel) Release(id int) {
	p.buttons.Release(id)
	for _, c := range p.sliders {
		c.Release(id)
	}
}

// Poll acts on and clears every activation flag set since the last call.
// Filter selections apply to the stage that was selected before any stage
// change in the same poll. It reports whether the state changed.
func (p *Panel) Poll() bool {
	s := p.state
	changed := false

	if s.playPressed {
		s.playPressed = false
		s.Playing = !s.Playing
		changed = true
	}
	for i := range FilterTypes {
		if s.filterPressed[i] {
			s.filterPressed[i] = false
			s.Current().Filter = FilterTypes[i]
			changed = true
		}
	}
	for i := range s.Stages {
		if s.selectPressed[i] {
			s.selectPressed[i] = false
			s.stage = i
			changed = true
		}
	}

	if changed {
		p.refresh()
	}
	return changed
}

// refresh derives every button's filled state from the control state.
func (p *Panel) refresh() {
	s := p.state
	for _, b := range p.Buttons() {
		switch b.Group() {
		case ui.PlayGroup:
			b.SetFilled(s.Playing)
		case ui.FilterGroup:
			b.SetFilled(b == p.filters[s.Current().Filter])
		case ui.SelectGroup:
			b.SetFilled(b == p.selects[s.stage])
		}
	}
}

// Draw draws the buttons and the selected stage's sliders.
func (p *Panel) Draw(s gfx.Surface) {
	p.buttons.Draw(s)
	p.sliders[p.state.stage].Draw(s)
}
