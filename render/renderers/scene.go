package renderers

import (
	"github.com/lixenwraith/solar/constants"
	"github.com/lixenwraith/solar/render"
	"github.com/lixenwraith/solar/solar"
)

// RegisterScene wires every layer of the solar scene into the orchestrator
// precision controls the sampling of the universe meridians
func RegisterScene(o *render.RenderOrchestrator, u *solar.Universe, precision int) {
	colors := render.BodyColors(len(u.Bodies))

	o.Register(NewMeridianRenderer(u, precision), render.PriorityGrid)
	o.Register(NewAxisBoxRenderer(u.Center, u.Radius), render.PriorityGrid)
	o.Register(NewAxisMundiRenderer(u.Center, constants.AxisMundiRadius), render.PriorityAxis)
	o.Register(NewOrbitRenderer(u, colors), render.PriorityOrbit)
	o.Register(NewSunRenderer(u.Center), render.PrioritySun)
	o.Register(NewBodyRenderer(u, colors), render.PriorityBodies)
	o.Register(NewTitleRenderer(), render.PriorityUI)
	o.Register(NewLegendRenderer(u, colors), render.PriorityUI)
	o.Register(NewStatusBarRenderer(), render.PriorityOverlay)
}
