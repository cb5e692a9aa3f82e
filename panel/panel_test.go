package panel

import (
	"math"
	"testing"

	"github.com/OpticalFlyer/eqpanel/gfx/gfxtest"
	"github.com/OpticalFlyer/eqpanel/ui"
)

func newTestPanel(t *testing.T) *Panel {
	t.Helper()
	p, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// tap presses and releases at (x, y), then polls.
func tap(p *Panel, x, y int) bool {
	p.Press(0, x, y)
	p.Release(0)
	return p.Poll()
}

func filled(p *Panel, label string) bool {
	for _, b := range p.Buttons() {
		if b.Label() == label {
			return b.Filled()
		}
	}
	return false
}

func TestNewPanel(t *testing.T) {
	p := newTestPanel(t)

	if got := len(p.Buttons()); got != 1+2+len(FilterTypes) {
		t.Errorf("got %d buttons", got)
	}
	if got := len(p.Sliders()); got != 3 {
		t.Errorf("got %d sliders; want 3", got)
	}

	s := p.State()
	if s.Playing || s.Stage() != 0 || s.Current().Filter != LoopBack {
		t.Errorf("unexpected initial state %+v", s)
	}
	if filled(p, "Play") || !filled(p, "Thru") || !filled(p, "A") || filled(p, "B") {
		t.Error("initial fill does not reflect state")
	}

	// Sliders start at their midpoints.
	st := s.Stages[0]
	if st.FrequencyX != 230 || math.Abs(float64(st.Frequency-10010)) > 0.01 {
		t.Errorf("frequency x=%d value=%f", st.FrequencyX, st.Frequency)
	}
	if math.Abs(float64(st.Gain)) > 1e-5 {
		t.Errorf("gain %f; want 0", st.Gain)
	}
}

func TestPlayToggles(t *testing.T) {
	p := newTestPanel(t)

	if !tap(p, 20, 20) {
		t.Fatal("Poll reported no change")
	}
	if !p.State().Playing || !filled(p, "Play") {
		t.Error("play did not start")
	}
	if p.Poll() {
		t.Error("flag not cleared after Poll")
	}

	tap(p, 20, 20)
	if p.State().Playing || filled(p, "Play") {
		t.Error("play did not stop")
	}
}

func TestFilterSelection(t *testing.T) {
	p := newTestPanel(t)

	tap(p, 100, 60) // LPF
	if got := p.State().Current().Filter; got != LowPass {
		t.Fatalf("filter = %v; want LPF", got)
	}
	if !filled(p, "LPF") || filled(p, "Thru") {
		t.Error("filter buttons not refreshed")
	}

	tap(p, 400, 60) // Peak
	if got := p.State().Current().Filter; got != Peaking {
		t.Errorf("filter = %v; want Peak", got)
	}
}

func TestStageSelection(t *testing.T) {
	p := newTestPanel(t)

	tap(p, 100, 60) // LPF on stage A
	tap(p, 150, 20) // select B

	s := p.State()
	if s.Stage() != 1 {
		t.Fatalf("stage = %d; want 1", s.Stage())
	}
	if !filled(p, "B") || filled(p, "A") {
		t.Error("select buttons not refreshed")
	}
	if !filled(p, "Thru") || filled(p, "LPF") {
		t.Error("filter buttons should show stage B's filter")
	}
	if s.Stages[0].Filter != LowPass {
		t.Error("stage A lost its filter")
	}
}

func TestStageChangesOnlyThroughPoll(t *testing.T) {
	p := newTestPanel(t)

	p.Press(0, 150, 20) // select B
	p.Release(0)
	if got := p.State().Stage(); got != 0 {
		t.Fatalf("stage = %d before Poll; want 0", got)
	}
	if len(p.Sliders()) != 3 {
		t.Fatal("sliders lost before Poll")
	}

	p.Poll()
	if got := p.State().Stage(); got != 1 {
		t.Errorf("stage = %d after Poll; want 1", got)
	}
	if p.State().Current() != &p.State().Stages[1] {
		t.Error("Current does not follow the selected stage")
	}
}

func TestSlidersEditSelectedStage(t *testing.T) {
	p := newTestPanel(t)
	s := p.State()

	if !p.Press(0, 60, 120) {
		t.Fatal("press on frequency slider not taken")
	}
	p.Move(0, 900, 0)
	p.Release(0)
	if s.Stages[0].FrequencyX != 400 || math.Abs(float64(s.Stages[0].Frequency-20000)) > 0.01 {
		t.Errorf("stage A frequency x=%d value=%f", s.Stages[0].FrequencyX, s.Stages[0].Frequency)
	}

	tap(p, 150, 20) // select B
	p.Press(0, 60, 170)
	p.Release(0)
	if math.Abs(float64(s.Stages[1].Q-0.1)) > 1e-5 {
		t.Errorf("stage B Q = %f; want 0.1", s.Stages[1].Q)
	}
	if math.Abs(float64(s.Stages[0].Q-s.Stages[1].Q)) < 1 {
		t.Error("stage A Q changed with stage B")
	}
}

func TestDragSurvivesStageChange(t *testing.T) {
	p := newTestPanel(t)
	s := p.State()

	p.Press(0, 60, 220) // stage A gain
	p.Press(1, 150, 20) // second finger selects B
	p.Release(1)
	p.Poll()

	if !p.Move(0, 400, 220) {
		t.Fatal("drag lost after stage change")
	}
	if math.Abs(float64(s.Stages[0].Gain-12)) > 1e-5 {
		t.Errorf("stage A gain = %f; want 12", s.Stages[0].Gain)
	}
	if math.Abs(float64(s.Stages[1].Gain)) > 1e-5 {
		t.Errorf("stage B gain = %f; want 0", s.Stages[1].Gain)
	}
}

func TestPressOutsideWidgets(t *testing.T) {
	p := newTestPanel(t)
	if p.Press(0, 470, 260) {
		t.Error("empty area consumed the press")
	}
	if p.Move(0, 100, 120) {
		t.Error("uncaptured move consumed")
	}
}

func TestPanelDraw(t *testing.T) {
	p := newTestPanel(t)

	var r gfxtest.Recorder
	p.Draw(&r)

	want := map[string]bool{"Play": false, "A": false, "B": false, "Peak": false, "Freq": false, "Q": false, "Gain": false}
	for _, text := range r.Texts() {
		if _, ok := want[text]; ok {
			want[text] = true
		}
	}
	for text, seen := range want {
		if !seen {
			t.Errorf("%q not drawn", text)
		}
	}

	// Selected filter and stage buttons are filled, along with 2 bars per slider.
	if got := r.Count(gfxtest.FilledBox); got != 2+3*2 {
		t.Errorf("got %d filled boxes; want 8", got)
	}
}

func TestPanelGroupsAreClassificationOnly(t *testing.T) {
	p := newTestPanel(t)
	counts := map[ui.Group]int{}
	for _, b := range p.Buttons() {
		counts[b.Group()]++
	}
	if counts[ui.PlayGroup] != 1 || counts[ui.SelectGroup] != 2 || counts[ui.FilterGroup] != len(FilterTypes) {
		t.Errorf("group counts %v", counts)
	}
}
