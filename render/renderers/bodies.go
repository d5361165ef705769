package renderers

import (
	"slices"

	"github.com/lixenwraith/solar/constants"
	"github.com/lixenwraith/solar/render"
	"github.com/lixenwraith/solar/solar"
	"github.com/lixenwraith/solar/terminal"
	"github.com/lixenwraith/solar/vmath"
)

// SunRenderer draws the sun at the universe center
type SunRenderer struct {
	center vmath.Vec3F
}

// NewSunRenderer creates a sun renderer
func NewSunRenderer(center vmath.Vec3F) *SunRenderer {
	return &SunRenderer{center: center}
}

// Render implements SystemRenderer
func (s *SunRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if x, y, _, ok := ctx.Camera.ToScreen(s.center, ctx.Viewport()); ok {
		buf.SetFgOnly(x, y, constants.GlyphSun, render.RgbSun, terminal.AttrBold)
	}
}

// BodyRenderer draws each body marker at its current position, far bodies first
type BodyRenderer struct {
	universe *solar.Universe
	colors   []render.RGB

	// Scratch reused across frames
	order []bodyCell
}

type bodyCell struct {
	index int
	x, y  int
	depth float64
}

// NewBodyRenderer creates a body renderer; colors are indexed like u.Bodies
func NewBodyRenderer(u *solar.Universe, colors []render.RGB) *BodyRenderer {
	return &BodyRenderer{
		universe: u,
		colors:   colors,
		order:    make([]bodyCell, 0, len(u.Bodies)),
	}
}

// Render implements SystemRenderer
func (b *BodyRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	vp := ctx.Viewport()
	b.order = b.order[:0]
	for i, body := range b.universe.Bodies {
		x, y, depth, ok := ctx.Camera.ToScreen(body.Position, vp)
		if !ok {
			continue
		}
		b.order = append(b.order, bodyCell{index: i, x: x, y: y, depth: depth})
	}
	slices.SortStableFunc(b.order, func(p, q bodyCell) int {
		switch {
		case p.depth < q.depth:
			return -1
		case p.depth > q.depth:
			return 1
		}
		return 0
	})

	for _, c := range b.order {
		body := b.universe.Bodies[c.index]
		buf.SetFgOnly(c.x, c.y, body.Glyph(constants.GlyphBody), colorAt(b.colors, c.index), terminal.AttrBold)
	}
}
