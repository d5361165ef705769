package constants

import "time"

// Animation defaults
const (
	// DefaultPrecision is the orbit sample count and frames per revolution
	DefaultPrecision = 64

	// DefaultFPS is the animation frame rate
	DefaultFPS = 24

	// MinFrameInterval bounds the pacing ticker for very high fps values
	MinFrameInterval = time.Millisecond
)

// Scene geometry
const (
	// UniverseRadius is the radius of the enclosing wireframe sphere
	UniverseRadius = 42.0

	// MeridianCount is the number of wireframe circles drawn for the universe sphere
	MeridianCount = 8

	// AxisMundiRadius is the half-length of the colored axis lines through the center
	AxisMundiRadius = 1.0
)

// Output
const (
	// DefaultOutputFile is the MP4 export target
	DefaultOutputFile = "solar.mp4"

	// DefaultExportDPI is the raster resolution of exported frames
	DefaultExportDPI = 100

	// ExportWidthInches and ExportHeightInches match a 16:9 figure
	ExportWidthInches  = 16.0
	ExportHeightInches = 9.0

	// TitleFormat is the per-frame title
	TitleFormat = "Solar, t=%d"

	// VerboseFormat is the per-body position line
	VerboseFormat = "t=%03d %12s: %.8f %.8f %.8f\n"
)

// FrameInterval returns the ticker period for fps, clamped to MinFrameInterval
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	d := time.Second / time.Duration(fps)
	if d < MinFrameInterval {
		return MinFrameInterval
	}
	return d
}
