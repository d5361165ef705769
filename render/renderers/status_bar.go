package renderers

import (
	"fmt"
	"time"

	"github.com/lixenwraith/solar/render"
	"github.com/lixenwraith/solar/terminal"
)

// KeyHelp is the status bar key summary
const KeyHelp = "q quit  space pause  r reset  a axis  arrows rotate  +/- zoom  ,/. step"

// StatusBarRenderer draws key help and FPS on the bottom row, and the latest position lines above it
type StatusBarRenderer struct {
	// FPS tracking
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{lastFpsUpdate: time.Now()}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s.frameCount++
	now := time.Now()
	if now.Sub(s.lastFpsUpdate) >= time.Second {
		s.currentFps = s.frameCount
		s.frameCount = 0
		s.lastFpsUpdate = now
	}

	y := ctx.StatusY()
	buf.FillRow(y, render.RgbStatusBg)
	buf.WriteString(0, y, KeyHelp, render.RgbTextDim, terminal.AttrNone)

	fps := fmt.Sprintf("cycle %d  fps %d", ctx.Cycle, s.currentFps)
	buf.WriteString(max(ctx.ScreenWidth-len(fps), 0), y, fps, render.RgbText, terminal.AttrNone)

	// Position lines take at most half the viewport, newest at the bottom
	vp := ctx.Viewport()
	lines := ctx.StatusLines
	if limit := vp.Height / 2; len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	top := vp.Y + vp.Height - len(lines)
	for i, line := range lines {
		buf.WriteString(vp.X, top+i, line, render.RgbTextDim, terminal.AttrNone)
	}
}
