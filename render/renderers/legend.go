package renderers

import (
	"unicode/utf8"

	"github.com/lixenwraith/solar/constants"
	"github.com/lixenwraith/solar/render"
	"github.com/lixenwraith/solar/solar"
	"github.com/lixenwraith/solar/terminal"
)

// LegendRenderer lists the bodies with their markers in the upper right of the viewport
type LegendRenderer struct {
	universe *solar.Universe
	colors   []render.RGB
	width    int
}

// NewLegendRenderer creates a legend; colors are indexed like u.Bodies
func NewLegendRenderer(u *solar.Universe, colors []render.RGB) *LegendRenderer {
	width := 0
	for _, b := range u.Bodies {
		width = max(width, utf8.RuneCountInString(b.Name))
	}
	// marker, gap, name, one cell padding each side
	return &LegendRenderer{universe: u, colors: colors, width: width + 4}
}

// Render implements SystemRenderer
func (l *LegendRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	vp := ctx.Viewport()
	x0 := vp.X + vp.Width - l.width
	if x0 < vp.X {
		x0 = vp.X
	}
	for i, body := range l.universe.Bodies {
		y := vp.Y + i
		if y >= vp.Y+vp.Height {
			return
		}
		for x := x0; x < vp.X+vp.Width; x++ {
			buf.SetWithBg(x, y, ' ', render.RgbText, render.RgbStatusBg)
		}
		buf.SetFgOnly(x0+1, y, body.Glyph(constants.GlyphBody), colorAt(l.colors, i), terminal.AttrBold)
		buf.WriteString(x0+3, y, body.Name, render.RgbTextDim, terminal.AttrNone)
	}
}
