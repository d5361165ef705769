package renderers

import (
	"github.com/lixenwraith/solar/constants"
	"github.com/lixenwraith/solar/render"
	"github.com/lixenwraith/solar/terminal"
	"github.com/lixenwraith/solar/vmath"
)

// AxisMundiRenderer draws the X, Y, Z axis lines through the center in red, green and blue
type AxisMundiRenderer struct {
	center vmath.Vec3F
	radius float64
}

// NewAxisMundiRenderer creates the axis mundi of the given half-length
func NewAxisMundiRenderer(center vmath.Vec3F, radius float64) *AxisMundiRenderer {
	return &AxisMundiRenderer{center: center, radius: radius}
}

// Render implements SystemRenderer
func (a *AxisMundiRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	vp := ctx.Viewport()
	axes := [3]struct {
		dir   vmath.Vec3F
		color render.RGB
	}{
		{vmath.Vec3F{X: 1}, render.RgbAxisX},
		{vmath.Vec3F{Y: 1}, render.RgbAxisY},
		{vmath.Vec3F{Z: 1}, render.RgbAxisZ},
	}
	for _, ax := range axes {
		d := vmath.V3FScale(ax.dir, a.radius)
		render.DrawSegment(buf, ctx.Camera, vp, vmath.V3FSub(a.center, d), vmath.V3FAdd(a.center, d), constants.GlyphAxis, ax.color, 1)
	}
}

// AxisBoxRenderer draws the bounding cube and X/Y/Z labels, only when axes are shown
type AxisBoxRenderer struct {
	center vmath.Vec3F
	half   float64
}

// NewAxisBoxRenderer creates a box of half-size half around center
func NewAxisBoxRenderer(center vmath.Vec3F, half float64) *AxisBoxRenderer {
	return &AxisBoxRenderer{center: center, half: half}
}

// corner returns the cube corner selected by the low three bits of i
func (a *AxisBoxRenderer) corner(i int) vmath.Vec3F {
	sign := func(bit int) float64 {
		if i&bit != 0 {
			return a.half
		}
		return -a.half
	}
	return vmath.V3FAdd(a.center, vmath.Vec3F{X: sign(1), Y: sign(2), Z: sign(4)})
}

// Render implements SystemRenderer
func (a *AxisBoxRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.ShowAxis {
		return
	}
	vp := ctx.Viewport()

	// Edges join corners differing in exactly one bit
	for i := 0; i < 8; i++ {
		for _, bit := range [3]int{1, 2, 4} {
			if i&bit == 0 {
				render.DrawSegment(buf, ctx.Camera, vp, a.corner(i), a.corner(i|bit), constants.GlyphMeridian, render.RgbFrame, render.AlphaFrame)
			}
		}
	}

	labels := [3]struct {
		glyph rune
		pos   vmath.Vec3F
		color render.RGB
	}{
		{'X', vmath.Vec3F{X: a.half}, render.RgbAxisX},
		{'Y', vmath.Vec3F{Y: a.half}, render.RgbAxisY},
		{'Z', vmath.Vec3F{Z: a.half}, render.RgbAxisZ},
	}
	for _, l := range labels {
		if x, y, _, ok := ctx.Camera.ToScreen(vmath.V3FAdd(a.center, l.pos), vp); ok {
			buf.SetFgOnly(x, y, l.glyph, l.color, terminal.AttrBold)
		}
	}
}
