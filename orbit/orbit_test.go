package orbit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/solar/vmath"
)

const tol = 1e-9

func TestGenerate_DistanceFromCenter(t *testing.T) {
	tests := []struct {
		name      string
		center    vmath.Vec3F
		radius    float64
		precision int
	}{
		{"unit at origin", vmath.Vec3F{}, 1, 64},
		{"offset center", vmath.Vec3F{X: 3, Y: -2, Z: 0.5}, 2.5, 17},
		{"zero radius", vmath.Vec3F{X: 1, Y: 1, Z: 1}, 0, 8},
		{"single sample", vmath.Vec3F{}, 4, 1},
		{"large orbit", vmath.Vec3F{}, 39.482, 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Generate(tt.center, tt.radius, tt.precision, vmath.Vec3F{})
			require.Equal(t, tt.precision, o.Len())
			for i, p := range o.Points() {
				assert.InDelta(t, tt.radius, vmath.V3FDist(p, tt.center), tol, "point %d", i)
			}
		})
	}
}

func TestGenerate_UnitFourSamples(t *testing.T) {
	o := Generate(vmath.Vec3F{}, 1, 4, vmath.Vec3F{})
	require.Equal(t, 4, o.Len())

	want := []float64{-math.Pi, -math.Pi / 3, math.Pi / 3, math.Pi}
	for i, p := range o.Points() {
		assert.Zero(t, p.Y, "y of point %d", i)
		assert.InDelta(t, 1.0, p.X*p.X+p.Z*p.Z, tol)
		assert.InDelta(t, math.Sin(want[i]), p.X, tol)
		assert.InDelta(t, math.Cos(want[i]), p.Z, tol)
	}

	assert.True(t, vmath.V3FNear(o.At(0), vmath.Vec3F{Z: -1}, tol), "first point %+v", o.At(0))
	// Endpoints of [-π, π] coincide: the sequence closes on itself
	assert.True(t, vmath.V3FNear(o.At(0), o.At(3), tol))
}

func TestGenerate_PeriodicParameter(t *testing.T) {
	o := Generate(vmath.Vec3F{X: 1}, 2, 32, vmath.Vec3F{X: 0.3})
	for _, v := range Params(32) {
		assert.True(t, vmath.V3FNear(o.PointAt(v), o.PointAt(v+2*math.Pi), tol))
	}
}

func TestGenerate_ZeroRotationIsExactNoOp(t *testing.T) {
	center := vmath.Vec3F{X: 0.25, Y: -1, Z: 2}
	a := Generate(center, 1.3814, 64, vmath.Vec3F{})
	b := Generate(center, 1.3814, 64, vmath.Vec3F{X: 0, Y: 0, Z: 0})

	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.unrotated(Params(64)[i]), a.At(i))
		assert.Equal(t, a.At(i), b.At(i))
	}
}

func TestGenerate_FullTurnReproducesOrbit(t *testing.T) {
	base := Generate(vmath.Vec3F{X: 1, Y: 2, Z: 3}, 5, 48, vmath.Vec3F{})
	for _, rot := range []vmath.Vec3F{
		{X: 2 * math.Pi},
		{Y: 2 * math.Pi},
		{Z: 2 * math.Pi},
	} {
		o := Generate(vmath.Vec3F{X: 1, Y: 2, Z: 3}, 5, 48, rot)
		for i := 0; i < base.Len(); i++ {
			assert.True(t, vmath.V3FNear(base.At(i), o.At(i), tol), "rotation %+v point %d", rot, i)
		}
	}
}

func TestGenerate_RotationIsRigid(t *testing.T) {
	center := vmath.Vec3F{X: 0.5, Y: -0.5, Z: 1}
	o := Generate(center, 3, 40, vmath.Vec3F{X: 0.4, Y: -1.2, Z: 2.1})
	rc := o.RotatedCenter()
	for i, p := range o.Points() {
		assert.InDelta(t, 3.0, vmath.V3FDist(p, rc), tol, "point %d", i)
	}
}

func TestGenerate_QuarterTurnAboutX(t *testing.T) {
	// The XZ circle tilted a quarter turn about X lies in the XY plane
	o := Generate(vmath.Vec3F{}, 1, 16, vmath.Vec3F{X: math.Pi / 2})
	for _, p := range o.Points() {
		assert.InDelta(t, 0, p.Z, tol)
		assert.InDelta(t, 1, p.X*p.X+p.Y*p.Y, tol)
	}
}

func TestGenerate_Degenerate(t *testing.T) {
	for _, n := range []int{0, -5} {
		o := Generate(vmath.Vec3F{}, 1, n, vmath.Vec3F{})
		assert.Equal(t, 0, o.Len())
		assert.Equal(t, vmath.Vec3F{}, o.At(3))
		xs, ys, zs := o.Coords()
		assert.Empty(t, xs)
		assert.Empty(t, ys)
		assert.Empty(t, zs)
	}

	single := Generate(vmath.Vec3F{}, 2, 1, vmath.Vec3F{})
	require.Equal(t, 1, single.Len())
	assert.True(t, vmath.V3FNear(single.At(0), vmath.Vec3F{Z: -2}, tol))
	assert.Equal(t, single.At(0), single.At(7))
}

func TestAt_Wraps(t *testing.T) {
	o := Generate(vmath.Vec3F{}, 1, 10, vmath.Vec3F{Y: 0.7})
	for i := 0; i < 10; i++ {
		assert.Equal(t, o.At(i), o.At(i+10))
		assert.Equal(t, o.At(i), o.At(i-10))
		assert.Equal(t, o.At(i), o.At(i+30))
	}
}

func TestPointAt_MatchesSamples(t *testing.T) {
	o := Generate(vmath.Vec3F{X: -2, Z: 1}, 1.5, 25, vmath.Vec3F{X: 0.1, Y: 0.2, Z: 0.3})
	for i, v := range Params(25) {
		assert.True(t, vmath.V3FNear(o.PointAt(v), o.At(i), tol), "sample %d", i)
	}
}

func TestCoords(t *testing.T) {
	o := Generate(vmath.Vec3F{}, 1, 5, vmath.Vec3F{Z: 0.5})
	xs, ys, zs := o.Coords()
	require.Len(t, xs, 5)
	for i, p := range o.Points() {
		assert.Equal(t, p, vmath.Vec3F{X: xs[i], Y: ys[i], Z: zs[i]})
	}
}

func TestPoints_IsCopy(t *testing.T) {
	o := Generate(vmath.Vec3F{}, 1, 4, vmath.Vec3F{})
	pts := o.Points()
	pts[0] = vmath.Vec3F{X: 99}
	assert.NotEqual(t, pts[0], o.At(0))
}

func TestMeridians(t *testing.T) {
	ms := Meridians(vmath.Vec3F{}, 42, 64, 8)
	require.Len(t, ms, 8)
	for i, m := range ms {
		assert.InDelta(t, float64(i)*math.Pi/8, m.Rotation.Z, tol)
		assert.Equal(t, 64, m.Len())
		for _, p := range m.Points() {
			assert.InDelta(t, 42, vmath.V3FMag(p), tol)
		}
	}
	assert.Nil(t, Meridians(vmath.Vec3F{}, 1, 8, 0))
}
