package solar

import (
	"fmt"
	"io"

	"github.com/lixenwraith/solar/config"
	"github.com/lixenwraith/solar/constants"
	"github.com/lixenwraith/solar/orbit"
	"github.com/lixenwraith/solar/vmath"
)

// Universe is the ordered set of bodies inside the enclosing sphere
type Universe struct {
	Bodies []*Body
	Center vmath.Vec3F
	Radius float64

	// Frames is the number of frames of one revolution
	Frames int
}

// New builds the universe from a catalog; bodies without their own precision use precision
func New(cat *config.Catalog, precision int) (*Universe, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	if precision < 1 {
		return nil, fmt.Errorf("%w: precision must be >= 1, got %d", config.ErrInvalidConfig, precision)
	}

	u := &Universe{
		Bodies: make([]*Body, 0, len(cat.Bodies)),
		Radius: constants.UniverseRadius,
		Frames: precision,
	}
	for _, spec := range cat.Bodies {
		p := spec.Orbit.Precision
		if p == 0 {
			p = precision
		}
		o := orbit.Generate(
			vmath.V3FFromSlice(spec.Orbit.Center),
			spec.Orbit.Radius,
			p,
			vmath.V3FFromSlice(spec.Orbit.Rotation),
		)
		u.Bodies = append(u.Bodies, NewBody(spec.Name, spec.Symbol, o))
	}
	return u, nil
}

// Step advances every body to frame
func (u *Universe) Step(frame int) {
	for _, b := range u.Bodies {
		b.Advance(frame)
	}
}

// StepAngle advances every body from the timeline angle of frame
func (u *Universe) StepAngle(tl orbit.Timeline, frame int) {
	for _, b := range u.Bodies {
		b.AdvanceAngle(tl, frame)
	}
}

// Timeline returns the timeline of one revolution
func (u *Universe) Timeline() orbit.Timeline {
	return orbit.NewTimeline(u.Frames)
}

// WriteFrame writes one position line per body for frame
func (u *Universe) WriteFrame(w io.Writer, frame int) error {
	for _, b := range u.Bodies {
		p := b.Position
		if _, err := fmt.Fprintf(w, constants.VerboseFormat, frame, b.Name, p.X, p.Y, p.Z); err != nil {
			return fmt.Errorf("write frame %d: %w", frame, err)
		}
	}
	return nil
}

// FrameLines returns the position lines of frame without trailing newlines
func (u *Universe) FrameLines(frame int) []string {
	lines := make([]string, len(u.Bodies))
	for i, b := range u.Bodies {
		p := b.Position
		s := fmt.Sprintf(constants.VerboseFormat, frame, b.Name, p.X, p.Y, p.Z)
		lines[i] = s[:len(s)-1]
	}
	return lines
}

// Meridians returns the wireframe circles of the enclosing sphere
func (u *Universe) Meridians(precision int) []*orbit.Orbit {
	return orbit.Meridians(u.Center, u.Radius, precision, constants.MeridianCount)
}

// Extent returns the largest distance from the center reached by any orbit sample
func (u *Universe) Extent() float64 {
	var ext float64
	for _, b := range u.Bodies {
		for _, p := range b.Orbit.Points() {
			if d := vmath.V3FDist(p, u.Center); d > ext {
				ext = d
			}
		}
	}
	return ext
}

// Reset places every body back on frame 0
func (u *Universe) Reset() {
	u.Step(0)
}
