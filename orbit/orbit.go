// Package orbit generates the precomputed geometry of circular orbits.
//
// An orbit is sampled as a circle of the given radius around a center: the
// sampling parameter v sweeps [-π, π] while the second spherical angle is held
// at zero, so the circle lies in the XZ plane before rotation. Rotation is a
// rigid transform about the origin applied to the whole point set, X axis
// first, then Y, then Z, skipping axes whose angle is zero.
package orbit

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/lixenwraith/solar/vmath"
)

// azimuth is the spherical angle held constant, making the surface a circle
const azimuth = 0.0

// Orbit is an immutable ordered sequence of points on a (rotated) circle
type Orbit struct {
	Radius   float64
	Center   vmath.Vec3F
	Rotation vmath.Vec3F

	points []vmath.Vec3F
	rot    *mat.Dense // nil when Rotation is zero
}

// Params returns n evenly spaced sampling parameters over [-π, π], endpoints included
// n <= 0 returns nil, n == 1 returns the single parameter -π
func Params(n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{-math.Pi}
	}
	return floats.Span(make([]float64, n), -math.Pi, math.Pi)
}

// Generate computes precision points of a circle of radius around center, then rotates them
// Degenerate input degrades geometry instead of failing: precision <= 0 gives an empty orbit,
// radius 0 gives copies of the center
func Generate(center vmath.Vec3F, radius float64, precision int, rotation vmath.Vec3F) *Orbit {
	o := &Orbit{
		Radius:   radius,
		Center:   center,
		Rotation: rotation,
		rot:      vmath.RotXYZ(rotation),
	}

	v := Params(precision)
	if len(v) == 0 {
		return o
	}

	data := mat.NewDense(3, len(v), nil)
	for i, p := range v {
		pt := o.unrotated(p)
		data.Set(0, i, pt.X)
		data.Set(1, i, pt.Y)
		data.Set(2, i, pt.Z)
	}

	if o.rot != nil {
		var rotated mat.Dense
		rotated.Mul(o.rot, data)
		data = &rotated
	}

	o.points = make([]vmath.Vec3F, len(v))
	for i := range o.points {
		o.points[i] = vmath.Vec3F{X: data.At(0, i), Y: data.At(1, i), Z: data.At(2, i)}
	}
	return o
}

func (o *Orbit) unrotated(v float64) vmath.Vec3F {
	sv, cv := math.Sincos(v)
	sh, ch := math.Sincos(azimuth)
	return vmath.Vec3F{
		X: o.Radius*(sv*ch) + o.Center.X,
		Y: o.Radius*(sv*sh) + o.Center.Y,
		Z: o.Radius*cv + o.Center.Z,
	}
}

// Len returns the number of samples
func (o *Orbit) Len() int {
	return len(o.points)
}

// At returns the sample at index i wrapped modulo Len, zero vector for an empty orbit
func (o *Orbit) At(i int) vmath.Vec3F {
	if len(o.points) == 0 {
		return vmath.Vec3F{}
	}
	return o.points[vmath.WrapIndex(i, len(o.points))]
}

// PointAt recomputes the point for sampling parameter v without the precomputed table
func (o *Orbit) PointAt(v float64) vmath.Vec3F {
	return vmath.MulV33(o.rot, o.unrotated(v))
}

// RotatedCenter returns the center after the orbit rotation
func (o *Orbit) RotatedCenter() vmath.Vec3F {
	return vmath.MulV33(o.rot, o.Center)
}

// Points returns a copy of the samples
func (o *Orbit) Points() []vmath.Vec3F {
	out := make([]vmath.Vec3F, len(o.points))
	copy(out, o.points)
	return out
}

// Coords returns the samples split into X, Y and Z columns
func (o *Orbit) Coords() (xs, ys, zs []float64) {
	xs = make([]float64, len(o.points))
	ys = make([]float64, len(o.points))
	zs = make([]float64, len(o.points))
	for i, p := range o.points {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	return xs, ys, zs
}

// Meridians returns count circles of the given radius, the i-th rotated about Z by i·π/count
func Meridians(center vmath.Vec3F, radius float64, precision, count int) []*Orbit {
	if count <= 0 {
		return nil
	}
	step := math.Pi / float64(count)
	out := make([]*Orbit, count)
	for i := range out {
		out[i] = Generate(center, radius, precision, vmath.Vec3F{Z: step * float64(i)})
	}
	return out
}
