// Package solar holds the bodies of the toy solar system and advances them frame by frame.
//
// A body's position at frame i is sample i (mod precision) of its precomputed
// orbit. Recomputing the position from the timeline angle of frame i gives the
// same point, because the timeline uses the orbit's own sampling parameters;
// AdvanceAngle keeps that strategy available and the tests hold the two equal.
package solar

import (
	"unicode/utf8"

	"github.com/lixenwraith/solar/orbit"
	"github.com/lixenwraith/solar/vmath"
)

// Body is a named point mass moving along its orbit
// Display handles belong to the renderer; a Body only carries its position
type Body struct {
	Name     string
	Symbol   string
	Orbit    *orbit.Orbit
	Position vmath.Vec3F
}

// NewBody places the body on the first sample of its orbit
func NewBody(name, symbol string, o *orbit.Orbit) *Body {
	b := &Body{Name: name, Symbol: symbol, Orbit: o}
	if o.Len() > 0 {
		b.Position = o.At(0)
	}
	return b
}

// Advance moves the body to the orbit sample for frame, wrapping modulo precision
// An empty orbit leaves the position unchanged
func (b *Body) Advance(frame int) vmath.Vec3F {
	if b.Orbit.Len() > 0 {
		b.Position = b.Orbit.At(frame)
	}
	return b.Position
}

// AdvanceAngle moves the body to the point recomputed from the timeline angle of frame
func (b *Body) AdvanceAngle(tl orbit.Timeline, frame int) vmath.Vec3F {
	if tl.Len() > 0 {
		b.Position = b.Orbit.PointAt(tl.Angle(frame))
	}
	return b.Position
}

// Label is the legend text: symbol and name when a symbol is set
func (b *Body) Label() string {
	if b.Symbol == "" {
		return b.Name
	}
	return b.Symbol + " " + b.Name
}

// Glyph returns the marker rune, the first rune of the symbol or fallback
func (b *Body) Glyph(fallback rune) rune {
	if b.Symbol == "" {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(b.Symbol)
	return r
}
