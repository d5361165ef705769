package main

import (
	"context"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/lixenwraith/solar/config"
	"github.com/lixenwraith/solar/constants"
	"github.com/lixenwraith/solar/engine"
	"github.com/lixenwraith/solar/render"
	"github.com/lixenwraith/solar/render/renderers"
	"github.com/lixenwraith/solar/solar"
	"github.com/lixenwraith/solar/terminal"
)

// view is the user-controlled display state shared by the input loop and the driver goroutine
type view struct {
	mu       sync.Mutex
	camera   render.Camera
	showAxis bool
	needSync bool
	status   []string
}

func newView(extent float64, showAxis bool) *view {
	return &view{camera: render.NewCamera(extent), showAxis: showAxis}
}

// screenSink draws every frame to the terminal
type screenSink struct {
	term     terminal.Terminal
	orch     *render.RenderOrchestrator
	view     *view
	universe *solar.Universe
	verbose  bool
}

// Frame implements engine.Sink
func (s *screenSink) Frame(st engine.FrameState) error {
	w, h := s.term.Size()

	s.view.mu.Lock()
	if s.verbose && !st.Redraw {
		s.view.status = s.universe.FrameLines(st.Frame)
	}
	ctx := render.RenderContext{
		Frame:        st.Frame,
		Cycle:        st.Cycle,
		Paused:       st.Paused,
		Camera:       s.view.camera,
		ShowAxis:     s.view.showAxis,
		ScreenWidth:  w,
		ScreenHeight: h,
		StatusLines:  s.view.status,
	}
	resync := s.view.needSync
	s.view.needSync = false
	s.view.mu.Unlock()

	if resync {
		s.orch.Resize(w, h)
	}
	s.orch.RenderFrame(ctx)
	return nil
}

// controller maps input events onto the view and the driver
type controller struct {
	view   *view
	driver *engine.Driver
	quit   func()
}

// handle applies one event
func (c *controller) handle(ev terminal.Event) {
	switch ev.Type {
	case terminal.EventResize:
		c.view.mu.Lock()
		c.view.needSync = true
		c.view.mu.Unlock()
		c.driver.Redraw()
	case terminal.EventKey:
		c.handleKey(ev)
	}
}

func (c *controller) handleKey(ev terminal.Event) {
	step := constants.CameraStepDeg
	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		c.quit()
	case terminal.KeyLeft:
		c.moveCamera(func(cam *render.Camera) { cam.Rotate(-step, 0) })
	case terminal.KeyRight:
		c.moveCamera(func(cam *render.Camera) { cam.Rotate(step, 0) })
	case terminal.KeyUp:
		c.moveCamera(func(cam *render.Camera) { cam.Rotate(0, step) })
	case terminal.KeyDown:
		c.moveCamera(func(cam *render.Camera) { cam.Rotate(0, -step) })
	case terminal.KeyRune:
		switch ev.Rune {
		case 'q', 'Q':
			c.quit()
		case ' ':
			c.driver.Toggle()
		case 'r', 'R':
			c.view.mu.Lock()
			c.view.camera.Reset()
			c.view.mu.Unlock()
			c.driver.Reset()
		case 'a', 'A':
			c.view.mu.Lock()
			c.view.showAxis = !c.view.showAxis
			c.view.mu.Unlock()
			c.driver.Redraw()
		case '+', '=':
			c.moveCamera(func(cam *render.Camera) { cam.ZoomBy(constants.ZoomStep) })
		case '-', '_':
			c.moveCamera(func(cam *render.Camera) { cam.ZoomBy(1 / constants.ZoomStep) })
		case ',':
			c.driver.Pause()
			c.driver.Seek(-1)
		case '.':
			c.driver.Pause()
			c.driver.Seek(1)
		}
	}
}

// moveCamera updates the camera and redraws the current frame
func (c *controller) moveCamera(fn func(*render.Camera)) {
	c.view.mu.Lock()
	fn(&c.view.camera)
	c.view.mu.Unlock()
	c.driver.Redraw()
}

// pollEvents forwards terminal input until the screen closes or ctx ends
func pollEvents(ctx context.Context, t terminal.Terminal, events chan<- terminal.Event) {
	defer crashReport()
	defer close(events)
	for {
		ev := t.PollEvent()
		if ev.Type == terminal.EventClosed {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// isTerminal reports whether w is an interactive tty
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// newInteractiveSession opens the terminal and loops the animation until the user quits
// Verbose lines go to the status area when stdout shares the terminal, to stdout otherwise
func newInteractiveSession(quit context.CancelFunc, cfg *config.Config, u *solar.Universe, stdout io.Writer) (*session, error) {
	t, err := terminal.New()
	if err != nil {
		return nil, err
	}
	return startInteractive(t, quit, cfg, u, stdout)
}

// startInteractive runs the interactive session on an existing terminal
func startInteractive(t terminal.Terminal, quit context.CancelFunc, cfg *config.Config, u *solar.Universe, stdout io.Writer) (*session, error) {
	if err := t.Init(); err != nil {
		return nil, err
	}

	w, h := t.Size()
	orch := render.NewRenderOrchestrator(t, w, h)
	renderers.RegisterScene(orch, u, cfg.Precision)

	v := newView(u.Radius, cfg.ShowAxis)
	onScreen := cfg.Verbose && isTerminal(stdout)
	sink := &screenSink{term: t, orch: orch, view: v, universe: u, verbose: onScreen}

	d := engine.NewDriver(u, cfg.FPS, true, sink)
	if cfg.Verbose && !onScreen {
		d.AddSink(verboseSink(u, stdout))
	}

	c := &controller{view: v, driver: d, quit: quit}
	loop := func(ctx context.Context) error {
		defer crashReport()
		events := make(chan terminal.Event, 16)
		go pollEvents(ctx, t, events)
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					quit()
					return nil
				}
				c.handle(ev)
			}
		}
	}

	return &session{
		driver: d,
		loop:   loop,
		close: func() error {
			t.Fini()
			return nil
		},
	}, nil
}
