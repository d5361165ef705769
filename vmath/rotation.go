package vmath

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RotX returns the right-handed rotation matrix about the X axis, angle in radians
func RotX(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

// RotY returns the right-handed rotation matrix about the Y axis
func RotY(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)
	return mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

// RotZ returns the right-handed rotation matrix about the Z axis
func RotZ(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// RotXYZ composes elementary rotations applied X first, then Y, then Z: Rz·Ry·Rx
// Axes with a zero angle are skipped. Returns nil when all angles are zero
func RotXYZ(angles Vec3F) *mat.Dense {
	var r *mat.Dense
	apply := func(m *mat.Dense) {
		if r == nil {
			r = m
			return
		}
		var out mat.Dense
		out.Mul(m, r)
		r = &out
	}
	if angles.X != 0 {
		apply(RotX(angles.X))
	}
	if angles.Y != 0 {
		apply(RotY(angles.Y))
	}
	if angles.Z != 0 {
		apply(RotZ(angles.Z))
	}
	return r
}

// MulV33 multiplies a 3x3 matrix with a vector, nil matrix is identity
func MulV33(m *mat.Dense, v Vec3F) Vec3F {
	if m == nil {
		return v
	}
	vec := mat.NewVecDense(3, []float64{v.X, v.Y, v.Z})
	var out mat.VecDense
	out.MulVec(m, vec)
	return Vec3F{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
}

// Deg2Rad converts degrees to radians
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// WrapIndex maps any integer index into [0, n), n <= 0 returns 0
func WrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
