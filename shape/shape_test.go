package shape_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geomech/spatial/rigid"
	"github.com/geomech/spatial/shape"
)

func boundsInDelta(t *testing.T, want, got shape.Bounds, eps float64) {
	t.Helper()
	assert.InDelta(t, want.Min.X, got.Min.X, eps)
	assert.InDelta(t, want.Min.Y, got.Min.Y, eps)
	assert.InDelta(t, want.Min.Z, got.Min.Z, eps)
	assert.InDelta(t, want.Max.X, got.Max.X, eps)
	assert.InDelta(t, want.Max.Y, got.Max.Y, eps)
	assert.InDelta(t, want.Max.Z, got.Max.Z, eps)
}

func rotZ(theta float64) rigid.Mat3 {
	return rigid.QuatToMat(rigid.R4AA{Theta: theta, RZ: 1}.ToQuat())
}

func rotX(theta float64) rigid.Mat3 {
	return rigid.QuatToMat(rigid.R4AA{Theta: theta, RX: 1}.ToQuat())
}

func TestBoxBounds(t *testing.T) {
	aligned := shape.Box{
		P:    rigid.Transform{Rot: rigid.Identity3(), Trans: r3.Vector{X: 1, Y: 2, Z: 3}},
		Size: r3.Vector{X: 2, Y: 4, Z: 6},
	}
	boundsInDelta(t, shape.Bounds{Max: r3.Vector{X: 2, Y: 4, Z: 6}}, aligned.Bounds(), 1e-12)

	sq2 := math.Sqrt2
	tilted := shape.Box{
		P:    rigid.Transform{Rot: rotZ(math.Pi / 4)},
		Size: r3.Vector{X: 2, Y: 2, Z: 2},
	}
	boundsInDelta(t, shape.Bounds{
		Min: r3.Vector{X: -sq2, Y: -sq2, Z: -1},
		Max: r3.Vector{X: sq2, Y: sq2, Z: 1},
	}, tilted.Bounds(), 1e-12)
}

func TestRampBounds(t *testing.T) {
	rp := shape.Ramp{
		P:    rigid.Transform{Rot: rigid.Identity3(), Trans: r3.Vector{X: 1}},
		Size: r3.Vector{X: 2, Y: 2, Z: 1},
	}
	boundsInDelta(t, shape.Bounds{
		Min: r3.Vector{X: 0, Y: -1, Z: 0},
		Max: r3.Vector{X: 2, Y: 1, Z: 1},
	}, rp.Bounds(), 1e-12)
}

func TestSphereBounds(t *testing.T) {
	s := shape.Sphere{Center: r3.Vector{X: -1, Y: 0.5}, Radius: 2}
	boundsInDelta(t, shape.Bounds{
		Min: r3.Vector{X: -3, Y: -1.5, Z: -2},
		Max: r3.Vector{X: 1, Y: 2.5, Z: 2},
	}, s.Bounds(), 1e-12)
}

func TestCylinderBounds(t *testing.T) {
	upright := shape.Cylinder{P: rigid.Identity(), Radius: 0.5, Height: 4}
	boundsInDelta(t, shape.Bounds{
		Min: r3.Vector{X: -0.5, Y: -0.5, Z: -2},
		Max: r3.Vector{X: 0.5, Y: 0.5, Z: 2},
	}, upright.Bounds(), 1e-12)

	// Quarter turn about X puts the axis along world Y.
	onSide := shape.Cylinder{
		P:      rigid.Transform{Rot: rotX(math.Pi / 2)},
		Radius: 0.5,
		Height: 4,
	}
	boundsInDelta(t, shape.Bounds{
		Min: r3.Vector{X: -0.5, Y: -2, Z: -0.5},
		Max: r3.Vector{X: 0.5, Y: 2, Z: 0.5},
	}, onSide.Bounds(), 1e-9)
}

func TestCapsuleBounds(t *testing.T) {
	c := shape.Capsule{P: rigid.Identity(), Radius: 0.25, Length: 3}
	boundsInDelta(t, shape.Bounds{
		Min: r3.Vector{X: -0.25, Y: -0.25, Z: -1.75},
		Max: r3.Vector{X: 0.25, Y: 0.25, Z: 1.75},
	}, c.Bounds(), 1e-12)
}

func TestEllipsoidBounds(t *testing.T) {
	e := shape.Ellipsoid{P: rigid.Identity(), Radii: r3.Vector{X: 3, Y: 2, Z: 1}}
	boundsInDelta(t, shape.Bounds{
		Min: r3.Vector{X: -3, Y: -2, Z: -1},
		Max: r3.Vector{X: 3, Y: 2, Z: 1},
	}, e.Bounds(), 1e-12)

	// Quarter turn about Z swaps the X and Y semi-axes.
	turned := shape.Ellipsoid{
		P:     rigid.Transform{Rot: rotZ(math.Pi / 2)},
		Radii: r3.Vector{X: 3, Y: 2, Z: 1},
	}
	boundsInDelta(t, shape.Bounds{
		Min: r3.Vector{X: -2, Y: -3, Z: -1},
		Max: r3.Vector{X: 2, Y: 3, Z: 1},
	}, turned.Bounds(), 1e-9)
}

func TestTorusBounds(t *testing.T) {
	tor := shape.Torus{P: rigid.Identity(), MajorRadius: 2, MinorRadius: 0.5}
	boundsInDelta(t, shape.Bounds{
		Min: r3.Vector{X: -2.5, Y: -2.5, Z: -0.5},
		Max: r3.Vector{X: 2.5, Y: 2.5, Z: 0.5},
	}, tor.Bounds(), 1e-12)
}

func TestBoundsOperations(t *testing.T) {
	a := shape.Bounds{Min: r3.Vector{X: -1, Y: -1, Z: -1}, Max: r3.Vector{X: 1, Y: 1, Z: 1}}
	b := shape.Bounds{Min: r3.Vector{X: 0, Y: 0, Z: 0}, Max: r3.Vector{X: 3, Y: 2, Z: 1}}

	u := a.Union(b)
	boundsInDelta(t, shape.Bounds{
		Min: r3.Vector{X: -1, Y: -1, Z: -1},
		Max: r3.Vector{X: 3, Y: 2, Z: 1},
	}, u, 0)

	assert.True(t, u.Contains(r3.Vector{X: 2, Y: 1.5, Z: 0}))
	assert.False(t, u.Contains(r3.Vector{X: 4}))
	assert.Equal(t, r3.Vector{X: 1, Y: 0.5, Z: 0}, u.Center())
	assert.Equal(t, r3.Vector{X: 4, Y: 3, Z: 2}, u.Size())

	e := a.Expand(0.5)
	assert.Equal(t, r3.Vector{X: -1.5, Y: -1.5, Z: -1.5}, e.Min)
}

// TestPrincipalBox recovers the orientation and extents of a sampled
// oriented box.
func TestPrincipalBox(t *testing.T) {
	rot := rotZ(math.Pi / 6)
	center := r3.Vector{X: 2, Y: -1, Z: 0.5}
	half := r3.Vector{X: 1, Y: 0.5, Z: 0.25}

	// Regular grid including the corners, so the tight local bounds
	// equal the generating box exactly.
	var points []r3.Vector
	for i := 0; i <= 4; i++ {
		for j := 0; j <= 4; j++ {
			for k := 0; k <= 4; k++ {
				local := r3.Vector{
					X: -half.X + half.X*float64(i)/2,
					Y: -half.Y + half.Y*float64(j)/2,
					Z: -half.Z + half.Z*float64(k)/2,
				}
				points = append(points, center.Add(rot.Apply(local)))
			}
		}
	}

	box, err := shape.PrincipalBox(points)
	require.NoError(t, err)

	assert.True(t, box.P.Rot.IsRotation(1e-9))
	assert.InDelta(t, 2*half.X, box.Size.X, 1e-9)
	assert.InDelta(t, 2*half.Y, box.Size.Y, 1e-9)
	assert.InDelta(t, 2*half.Z, box.Size.Z, 1e-9)

	// Every sample lies inside the fitted box.
	inv := box.P.Inverse()
	for _, p := range points {
		l := inv.ApplyPoint(p)
		assert.LessOrEqual(t, math.Abs(l.X), box.Size.X/2+1e-9)
		assert.LessOrEqual(t, math.Abs(l.Y), box.Size.Y/2+1e-9)
		assert.LessOrEqual(t, math.Abs(l.Z), box.Size.Z/2+1e-9)
	}
}

// TestPrincipalBoxMargin grows every side by the requested clearance.
func TestPrincipalBoxMargin(t *testing.T) {
	points := []r3.Vector{
		{X: -1, Y: -0.5, Z: -0.25},
		{X: 1, Y: 0.5, Z: 0.25},
		{},
	}
	tight, err := shape.PrincipalBox(points)
	require.NoError(t, err)

	opts := shape.DefaultFitOptions()
	opts.Margin = 0.1
	padded, err := shape.PrincipalBoxWith(points, opts)
	require.NoError(t, err)

	assert.InDelta(t, tight.Size.X+0.2, padded.Size.X, 1e-9)
	assert.InDelta(t, tight.Size.Y+0.2, padded.Size.Y, 1e-9)
	assert.InDelta(t, tight.Size.Z+0.2, padded.Size.Z, 1e-9)
}

// TestPrincipalBoxDegenerate fits collinear points without NaNs.
func TestPrincipalBoxDegenerate(t *testing.T) {
	dir := r3.Vector{X: 1, Y: 1, Z: 0}.Normalize()
	var points []r3.Vector
	for i := 0; i <= 10; i++ {
		points = append(points, dir.Mul(float64(i) / 10))
	}
	box, err := shape.PrincipalBox(points)
	require.NoError(t, err)
	assert.True(t, box.P.Rot.IsRotation(1e-9))
	assert.InDelta(t, 1, box.Size.X, 1e-9)
	assert.InDelta(t, 0, box.Size.Y, 1e-9)
	assert.InDelta(t, 0, box.Size.Z, 1e-9)

	_, err = shape.PrincipalBox(nil)
	assert.ErrorIs(t, err, shape.ErrNoPoints)
}

// TestPurifyPose restores properness of a drifted rotation and leaves
// exact rotations alone.
func TestPurifyPose(t *testing.T) {
	exact := rigid.Transform{Rot: rotZ(0.3), Trans: r3.Vector{X: 1}}
	assert.Equal(t, exact, shape.PurifyPose(exact))

	drifted := exact
	for i := range drifted.Rot {
		drifted.Rot[i] += 1e-8 * float64(i%3)
	}
	pure := shape.PurifyPose(drifted)
	assert.True(t, pure.Rot.IsRotation(1e-9))
	assert.True(t, pure.Rot.EpsilonEquals(exact.Rot, 1e-6))
	assert.Equal(t, drifted.Trans, pure.Trans)
}
