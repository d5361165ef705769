package constants

// Camera defaults, matching a stock 3D axes view
const (
	DefaultElevationDeg = 30.0
	DefaultAzimuthDeg   = -60.0

	// CameraStepDeg is the rotation per arrow key press
	CameraStepDeg = 5.0

	// ZoomStep is the multiplicative zoom per key press
	ZoomStep = 1.25
	ZoomMin  = 0.25
	ZoomMax  = 64.0
)

// Terminal layout
const (
	// TitleRows reserved at the top of the screen
	TitleRows = 1

	// StatusRows reserved at the bottom for key help and positions
	StatusRows = 1

	// CellAspect is the terminal cell height/width ratio
	CellAspect = 2.0
)

// Glyphs
const (
	GlyphBody     = 'o'
	GlyphSun      = '*'
	GlyphOrbit    = '·'
	GlyphMeridian = '.'
	GlyphAxis     = '+'
)
