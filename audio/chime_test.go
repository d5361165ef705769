package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/solar/engine"
)

func newTestChime(initErr error) (*Chime, *int) {
	c := NewChime()
	plays := 0
	c.initSpeaker = func(beep.SampleRate, int) error { return initErr }
	c.play = func(...beep.Streamer) { plays++ }
	return c, &plays
}

// TestChimeOnWrap verifies a chime is queued only on wrapped frames
func TestChimeOnWrap(t *testing.T) {
	c, plays := newTestChime(nil)
	if err := c.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := c.Initialize(); err != nil {
		t.Fatalf("second Initialize: %v", err)
	}
	if *plays != 1 {
		t.Errorf("Expected mixer started once, got %d", *plays)
	}

	states := []engine.FrameState{
		{Frame: 0},
		{Frame: 1},
		{Frame: 0, Cycle: 1, Wrapped: true},
		{Frame: 0, Cycle: 1, Redraw: true},
		{Frame: 0, Cycle: 2, Wrapped: true},
	}
	for _, st := range states {
		if err := c.Frame(st); err != nil {
			t.Fatalf("Frame: %v", err)
		}
	}
	if c.Played() != 2 {
		t.Errorf("Expected 2 chimes, got %d", c.Played())
	}

	c.Cleanup()
	c.Play()
	if c.Played() != 2 {
		t.Errorf("Expected no chime after cleanup, got %d", c.Played())
	}
}

// TestChimeInitFailure verifies a failed speaker leaves the chime inert
func TestChimeInitFailure(t *testing.T) {
	c, plays := newTestChime(errors.New("no audio device"))
	if err := c.Initialize(); err == nil {
		t.Fatal("Expected error from Initialize")
	}
	if *plays != 0 {
		t.Errorf("Expected mixer not started, got %d", *plays)
	}
	if err := c.Frame(engine.FrameState{Wrapped: true}); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if c.Played() != 0 {
		t.Errorf("Expected no chime without speaker, got %d", c.Played())
	}
}
