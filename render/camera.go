package render

import (
	"math"

	"github.com/lixenwraith/solar/constants"
	"github.com/lixenwraith/solar/vmath"
)

// Camera is an orthographic view looking at the origin from the given elevation and azimuth
// Angles follow the 3D axes convention: elevation above the XY plane, azimuth around Z from +X
type Camera struct {
	Elevation float64 // radians
	Azimuth   float64 // radians
	Zoom      float64
	Extent    float64 // world half-size that fits the viewport at zoom 1
}

// Viewport is a screen rectangle in cells
type Viewport struct {
	X, Y          int
	Width, Height int
}

// NewCamera returns a camera at the default view framing a scene of the given extent
func NewCamera(extent float64) Camera {
	c := Camera{Zoom: 1, Extent: extent}
	c.Reset()
	return c
}

// Reset restores default elevation, azimuth and zoom
func (c *Camera) Reset() {
	c.Elevation = vmath.Deg2Rad(constants.DefaultElevationDeg)
	c.Azimuth = vmath.Deg2Rad(constants.DefaultAzimuthDeg)
	c.Zoom = 1
}

// Basis returns the screen right, screen up and toward-viewer unit vectors in world space
func (c Camera) Basis() (right, up, eye vmath.Vec3F) {
	se, ce := math.Sincos(c.Elevation)
	sa, ca := math.Sincos(c.Azimuth)
	right = vmath.Vec3F{X: -sa, Y: ca, Z: 0}
	up = vmath.Vec3F{X: -se * ca, Y: -se * sa, Z: ce}
	eye = vmath.Vec3F{X: ce * ca, Y: ce * sa, Z: se}
	return right, up, eye
}

// Project maps a world point onto the view plane in world units
// depth grows toward the viewer
func (c Camera) Project(p vmath.Vec3F) (sx, sy, depth float64) {
	right, up, eye := c.Basis()
	return vmath.V3FDot(p, right), vmath.V3FDot(p, up), vmath.V3FDot(p, eye)
}

// cellScale returns rows per world unit for the viewport
func (c Camera) cellScale(vp Viewport) float64 {
	extent := c.Extent
	if extent <= 0 {
		extent = 1
	}
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	byHeight := (float64(vp.Height) / 2) / extent
	byWidth := (float64(vp.Width) / 2) / (extent * constants.CellAspect)
	return zoom * min(byHeight, byWidth)
}

// ToScreen projects a world point to a cell in the viewport
// ok is false when the cell falls outside the viewport
func (c Camera) ToScreen(p vmath.Vec3F, vp Viewport) (x, y int, depth float64, ok bool) {
	sx, sy, depth := c.Project(p)
	s := c.cellScale(vp)
	cx := float64(vp.X) + float64(vp.Width)/2
	cy := float64(vp.Y) + float64(vp.Height)/2
	x = int(math.Floor(cx + sx*s*constants.CellAspect))
	y = int(math.Floor(cy - sy*s))
	ok = x >= vp.X && x < vp.X+vp.Width && y >= vp.Y && y < vp.Y+vp.Height
	return x, y, depth, ok
}

// Rotate turns the view by the given degrees, elevation clamped to [-90, 90]
func (c *Camera) Rotate(dAzimuthDeg, dElevationDeg float64) {
	c.Azimuth = math.Remainder(c.Azimuth+vmath.Deg2Rad(dAzimuthDeg), 2*math.Pi)
	limit := math.Pi / 2
	c.Elevation = math.Max(-limit, math.Min(limit, c.Elevation+vmath.Deg2Rad(dElevationDeg)))
}

// ZoomBy multiplies zoom by factor, clamped to the configured range
func (c *Camera) ZoomBy(factor float64) {
	if factor <= 0 {
		return
	}
	c.Zoom = math.Max(constants.ZoomMin, math.Min(constants.ZoomMax, c.Zoom*factor))
}
