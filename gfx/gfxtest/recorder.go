// Package gfxtest provides a gfx.Surface that records draw calls.
package gfxtest

import (
	"image/color"

	"golang.org/x/image/font"

	"github.com/OpticalFlyer/eqpanel/geom"
	"github.com/OpticalFlyer/eqpanel/gfx"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	FilledBox OpKind = iota
	OutlinedBox
	Text
)

func (k OpKind) String() string {
	switch k {
	case FilledBox:
		return "FilledBox"
	case OutlinedBox:
		return "OutlinedBox"
	case Text:
		return "Text"
	}
	return "Unknown"
}

// Op is one recorded draw call. Box is set for box ops, X, Y and Text for
// text ops.
type Op struct {
	Kind  OpKind
	Box   geom.Box
	X, Y  int
	Color color.Color
	Text  string
}

var _ gfx.Surface = (*Recorder)(nil)

// Recorder appends every draw call to Ops.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) DrawFilledBox(b geom.Box, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: FilledBox, Box: b, Color: c})
}

func (r *Recorder) DrawBox(b geom.Box, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OutlinedBox, Box: b, Color: c})
}

func (r *Recorder) DrawText(x, y int, _ font.Face, c color.Color, s string) {
	r.Ops = append(r.Ops, Op{Kind: Text, X: x, Y: y, Color: c, Text: s})
}

// Reset discards recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Texts returns the strings of all recorded text ops in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == Text {
			out = append(out, op.Text)
		}
	}
	return out
}
