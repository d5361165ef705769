package renderers

import (
	"fmt"
	"unicode/utf8"

	"github.com/lixenwraith/solar/constants"
	"github.com/lixenwraith/solar/render"
	"github.com/lixenwraith/solar/terminal"
)

const pausedTag = " [paused]"

// TitleRenderer draws "Solar, t=<frame>" centered on the top row
type TitleRenderer struct{}

// NewTitleRenderer creates a title renderer
func NewTitleRenderer() *TitleRenderer {
	return &TitleRenderer{}
}

// Render implements SystemRenderer
func (t *TitleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	title := fmt.Sprintf(constants.TitleFormat, ctx.Frame)
	width := utf8.RuneCountInString(title)
	if ctx.Paused {
		width += utf8.RuneCountInString(pausedTag)
	}
	x := max((ctx.ScreenWidth-width)/2, 0)
	x = buf.WriteString(x, 0, title, render.RgbText, terminal.AttrBold)
	if ctx.Paused {
		buf.WriteString(x, 0, pausedTag, render.RgbPaused, terminal.AttrNone)
	}
}
