package render

import (
	"github.com/lixenwraith/solar/constants"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Timeline state
	Frame  int
	Cycle  int
	Paused bool

	// View state
	Camera   Camera
	ShowAxis bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// StatusLines are the latest verbose position lines, newest last
	StatusLines []string
}

// Viewport returns the scene area between the title and status rows
func (rc *RenderContext) Viewport() Viewport {
	h := rc.ScreenHeight - constants.TitleRows - constants.StatusRows
	return Viewport{
		X:      0,
		Y:      constants.TitleRows,
		Width:  max(rc.ScreenWidth, 0),
		Height: max(h, 0),
	}
}

// StatusY returns the row of the status bar
func (rc *RenderContext) StatusY() int {
	return rc.ScreenHeight - constants.StatusRows
}
