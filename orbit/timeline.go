package orbit

import "github.com/lixenwraith/solar/vmath"

// Timeline is the per-frame sequence of sampling parameters for one revolution
// It uses the same spacing as Generate, so frame i of a timeline addresses sample i of an orbit
// generated with the same precision
type Timeline []float64

// NewTimeline returns a timeline of frames angles over [-π, π]
func NewTimeline(frames int) Timeline {
	return Timeline(Params(frames))
}

func (t Timeline) Len() int {
	return len(t)
}

// Angle returns the parameter for frame, wrapped modulo Len; 0 for an empty timeline
func (t Timeline) Angle(frame int) float64 {
	if len(t) == 0 {
		return 0
	}
	return t[vmath.WrapIndex(frame, len(t))]
}
