package renderers

import (
	"github.com/lixenwraith/solar/constants"
	"github.com/lixenwraith/solar/render"
	"github.com/lixenwraith/solar/solar"
	"github.com/lixenwraith/solar/vmath"
)

// MeridianRenderer draws the wireframe of the enclosing sphere
type MeridianRenderer struct {
	paths [][]vmath.Vec3F
}

// NewMeridianRenderer samples the universe meridians once
func NewMeridianRenderer(u *solar.Universe, precision int) *MeridianRenderer {
	meridians := u.Meridians(precision)
	paths := make([][]vmath.Vec3F, len(meridians))
	for i, m := range meridians {
		paths[i] = m.Points()
	}
	return &MeridianRenderer{paths: paths}
}

// Render implements SystemRenderer
func (m *MeridianRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	vp := ctx.Viewport()
	for _, p := range m.paths {
		render.DrawPath(buf, ctx.Camera, vp, p, false, constants.GlyphMeridian, render.RgbMeridian, render.AlphaMeridian)
	}
}
