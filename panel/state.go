package panel

import "fmt"

// FilterType selects the response of a filter stage.
type FilterType int

const (
	LoopBack FilterType = iota
	LowPass
	HighPass
	BandPass
	Notch
	Peaking
)

// FilterTypes lists every filter type in button order.
var FilterTypes = [...]FilterType{LoopBack, LowPass, HighPass, BandPass, Notch, Peaking}

func (f FilterType) String() string {
	switch f {
	case LoopBack:
		return "Thru"
	case LowPass:
		return "LPF"
	case HighPass:
		return "HPF"
	case BandPass:
		return "BPF"
	case Notch:
		return "Notch"
	case Peaking:
		return "Peak"
	}
	return fmt.Sprintf("FilterType(%d)", int(f))
}

// Stage holds the parameters of one filter stage together with the slider
// handle positions that encode them.
type Stage struct {
	Filter    FilterType
	Frequency float32
	Q         float32
	Gain      float32

	FrequencyX int
	QX         int
	GainX      int
}

// State is the control state the widgets read and write. Widgets hold
// pointers into it, so a State must not be copied once a Panel is built
// on it.
type State struct {
	Playing bool
	Stages  []Stage

	stage int // index into Stages, changed only by Panel.Poll

	// Activation flags, set by buttons and cleared by Panel.Poll.
	playPressed   bool
	filterPressed [len(FilterTypes)]bool
	selectPressed [MaxStages]bool
}

func newState(stages int) *State {
	return &State{Stages: make([]Stage, stages)}
}

// Stage returns the index of the stage the sliders are editing.
func (s *State) Stage() int {
	return s.stage
}

// Current returns the stage the sliders are editing.
func (s *State) Current() *Stage {
	return &s.Stages[s.stage]
}
