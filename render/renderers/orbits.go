package renderers

import (
	"github.com/lixenwraith/solar/constants"
	"github.com/lixenwraith/solar/render"
	"github.com/lixenwraith/solar/solar"
	"github.com/lixenwraith/solar/vmath"
)

// OrbitRenderer draws every body's orbit as a faint closed path in the body color
type OrbitRenderer struct {
	paths  [][]vmath.Vec3F
	colors []render.RGB
}

// NewOrbitRenderer caches the orbit samples; colors are indexed like u.Bodies
func NewOrbitRenderer(u *solar.Universe, colors []render.RGB) *OrbitRenderer {
	paths := make([][]vmath.Vec3F, len(u.Bodies))
	for i, b := range u.Bodies {
		paths[i] = b.Orbit.Points()
	}
	return &OrbitRenderer{paths: paths, colors: colors}
}

// Render implements SystemRenderer
func (o *OrbitRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	vp := ctx.Viewport()
	for i, p := range o.paths {
		render.DrawPath(buf, ctx.Camera, vp, p, false, constants.GlyphOrbit, colorAt(o.colors, i), render.AlphaOrbit)
	}
}

// colorAt returns colors[i] or plain text color when the palette is short
func colorAt(colors []render.RGB, i int) render.RGB {
	if i < len(colors) {
		return colors[i]
	}
	return render.RgbText
}
