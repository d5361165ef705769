// Package engine paces the animation: it steps the universe once per frame and
// hands every frame to the registered sinks on the driver goroutine.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lixenwraith/solar/constants"
	"github.com/lixenwraith/solar/solar"
	"github.com/lixenwraith/solar/vmath"
)

// FrameState describes one emitted frame
type FrameState struct {
	Frame int
	Cycle int

	// Wrapped is set on frame 0 of every cycle after the first
	Wrapped bool

	// Redraw is set when the current frame is re-emitted without stepping
	Redraw bool

	Paused bool
}

// Sink consumes frames; an error stops the driver
type Sink interface {
	Frame(FrameState) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(FrameState) error

// Frame implements Sink
func (f SinkFunc) Frame(st FrameState) error {
	return f(st)
}

// Observer is notified after every sink has handled a frame
type Observer interface {
	FrameDone(st FrameState, took time.Duration)
}

// Driver steps frames at a fixed interval
// Control methods are safe to call from other goroutines
type Driver struct {
	universe *solar.Universe
	frames   int
	interval time.Duration
	loop     bool
	sinks    []Sink
	observer Observer

	mu      sync.Mutex
	pos     int // next frame to emit
	last    FrameState
	cycle   int
	paused  bool
	step    bool // emit pos once even if paused
	redraw  bool
	started bool

	wake chan struct{}
}

// NewDriver creates a driver over one revolution of u at fps frames per second
// fps <= 0 runs unpaced. Without loop Run returns after one revolution
func NewDriver(u *solar.Universe, fps int, loop bool, sinks ...Sink) *Driver {
	return &Driver{
		universe: u,
		frames:   u.Frames,
		interval: constants.FrameInterval(fps),
		loop:     loop,
		sinks:    sinks,
		wake:     make(chan struct{}, 1),
	}
}

// AddSink appends a sink, must be called before Run
func (d *Driver) AddSink(s Sink) {
	d.sinks = append(d.sinks, s)
}

// SetObserver installs the per-frame observer, must be called before Run
func (d *Driver) SetObserver(o Observer) {
	d.observer = o
}

// Frames returns the number of frames per revolution
func (d *Driver) Frames() int {
	return d.frames
}

// Interval returns the pacing interval, 0 when unpaced
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Run emits frames until one revolution is done (no loop), a sink fails or ctx ends
func (d *Driver) Run(ctx context.Context) error {
	if d.frames <= 0 {
		return nil
	}

	var tick <-chan time.Time
	if d.interval > 0 {
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	emitted := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		st, stepped, ok := d.next()
		if ok {
			if err := d.emit(st, stepped); err != nil {
				return err
			}
			if stepped {
				emitted++
				if !d.loop && emitted >= d.frames {
					return nil
				}
			}
		}

		if tick == nil && !d.Paused() {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		case <-d.wake:
		}
	}
}

// next picks the frame to emit, stepped reports a new universe state
func (d *Driver) next() (st FrameState, stepped, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.redraw && !d.step {
		d.redraw = false
		if !d.started {
			return FrameState{}, false, false
		}
		st = d.last
		st.Redraw = true
		st.Wrapped = false
		st.Paused = d.paused
		return st, false, true
	}

	if d.paused && !d.step {
		return FrameState{}, false, false
	}

	st = FrameState{
		Frame:   d.pos,
		Cycle:   d.cycle,
		Wrapped: d.pos == 0 && d.cycle > 0 && !d.step,
		Paused:  d.paused,
	}
	d.step = false
	d.redraw = false
	d.started = true
	d.last = st

	d.pos++
	if d.pos >= d.frames {
		d.pos = 0
		d.cycle++
	}
	return st, true, true
}

// emit steps the universe when needed and runs every sink
func (d *Driver) emit(st FrameState, stepped bool) error {
	start := time.Now()
	if stepped {
		d.universe.Step(st.Frame)
	}
	for _, s := range d.sinks {
		if err := s.Frame(st); err != nil {
			return fmt.Errorf("frame %d: %w", st.Frame, err)
		}
	}
	if d.observer != nil {
		d.observer.FrameDone(st, time.Since(start))
	}
	return nil
}

// signal wakes the run loop without blocking
func (d *Driver) signal() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Pause stops stepping; the current frame stays on the sinks
func (d *Driver) Pause() {
	d.mu.Lock()
	d.paused = true
	d.mu.Unlock()
	d.Redraw()
}

// Resume continues stepping from the next frame
func (d *Driver) Resume() {
	d.mu.Lock()
	d.paused = false
	d.mu.Unlock()
	d.signal()
}

// Toggle flips pause and returns the new state
func (d *Driver) Toggle() bool {
	d.mu.Lock()
	paused := !d.paused
	d.mu.Unlock()
	if paused {
		d.Pause()
	} else {
		d.Resume()
	}
	return paused
}

// Paused reports the pause state
func (d *Driver) Paused() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.paused
}

// Reset moves back to frame 0 of the first cycle and emits it
func (d *Driver) Reset() {
	d.mu.Lock()
	d.pos = 0
	d.cycle = 0
	d.step = true
	d.mu.Unlock()
	d.signal()
}

// Seek moves delta frames from the last emitted frame and emits that frame
func (d *Driver) Seek(delta int) {
	d.mu.Lock()
	base := d.last.Frame
	if !d.started {
		base = d.pos
	}
	d.pos = vmath.WrapIndex(base+delta, d.frames)
	d.step = true
	d.mu.Unlock()
	d.signal()
}

// Redraw re-emits the current frame without stepping, e.g. after a camera change
func (d *Driver) Redraw() {
	d.mu.Lock()
	d.redraw = true
	d.mu.Unlock()
	d.signal()
}
