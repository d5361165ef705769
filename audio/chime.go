package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/solar/constants"
	"github.com/lixenwraith/solar/engine"
)

// Chime plays a bell each time the timeline completes a revolution
type Chime struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
	played      int

	// initSpeaker is replaceable so tests run without an audio device
	initSpeaker func(beep.SampleRate, int) error
	play        func(...beep.Streamer)
}

// NewChime creates a chime at the default sample rate and volume
func NewChime() *Chime {
	return &Chime{
		rate:        beep.SampleRate(constants.AudioSampleRate),
		volume:      constants.ChimeVolume,
		mixer:       &beep.Mixer{},
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
}

// Initialize opens the speaker and starts the mixer
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := c.initSpeaker(c.rate, c.rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}
	c.play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues one chime; a no-op before Initialize
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(NewChimeSound(c.rate, c.volume))
	speaker.Unlock()
	c.played++
}

// Played returns how many chimes were queued
func (c *Chime) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// Frame implements engine.Sink
func (c *Chime) Frame(st engine.FrameState) error {
	if st.Wrapped {
		c.Play()
	}
	return nil
}

// Cleanup silences pending chimes
func (c *Chime) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}
