package sdfcad_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geomech/spatial/rigid"
	"github.com/geomech/spatial/shape"
	"github.com/geomech/spatial/shape/sdfcad"
)

func TestSphereDistance(t *testing.T) {
	s := shape.Sphere{Center: r3.Vector{X: 1}, Radius: 1}

	d, err := sdfcad.Distance(s, r3.Vector{X: 3})
	require.NoError(t, err)
	assert.InDelta(t, 1, d, 1e-9)

	d, err = sdfcad.Distance(s, r3.Vector{X: 1})
	require.NoError(t, err)
	assert.InDelta(t, -1, d, 1e-9)
}

func TestBoxDistance(t *testing.T) {
	aligned := shape.Box{P: rigid.Identity(), Size: r3.Vector{X: 2, Y: 2, Z: 2}}

	d, err := sdfcad.Distance(aligned, r3.Vector{X: 2})
	require.NoError(t, err)
	assert.InDelta(t, 1, d, 1e-9)

	d, err = sdfcad.Distance(aligned, r3.Vector{})
	require.NoError(t, err)
	assert.InDelta(t, -1, d, 1e-9)

	// An eighth turn about Z presents an edge to the world X axis; the
	// nearest feature of the cube is that edge.
	tilted := shape.Box{
		P:    rigid.FromAxisAngle(rigid.R4AA{Theta: math.Pi / 4, RZ: 1}, r3.Vector{}),
		Size: r3.Vector{X: 2, Y: 2, Z: 2},
	}
	d, err = sdfcad.Distance(tilted, r3.Vector{X: 2})
	require.NoError(t, err)
	assert.InDelta(t, (math.Sqrt2-1)*math.Sqrt2, d, 1e-9)
}

func TestCapsuleDistance(t *testing.T) {
	c := shape.Capsule{P: rigid.Identity(), Radius: 0.5, Length: 2}

	// Nearest feature above the cap is the top segment endpoint ball.
	d, err := sdfcad.Distance(c, r3.Vector{Z: 2})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d, 1e-9)

	// On the barrel side the cylinder wall is nearest.
	d, err = sdfcad.Distance(c, r3.Vector{X: 1.5})
	require.NoError(t, err)
	assert.InDelta(t, 1, d, 1e-9)
}

func TestUnsupportedShape(t *testing.T) {
	tor := shape.Torus{P: rigid.Identity(), MajorRadius: 2, MinorRadius: 0.5}

	_, err := sdfcad.Solid(tor)
	assert.ErrorIs(t, err, sdfcad.ErrUnsupported)

	_, err = sdfcad.Distance(tor, r3.Vector{})
	assert.ErrorIs(t, err, sdfcad.ErrUnsupported)

	_, err = sdfcad.Mesh(tor, 0)
	assert.ErrorIs(t, err, sdfcad.ErrUnsupported)
}

// TestBoundingBoxCoversExact checks the engine bounds never undercut
// the closed-form AABB.
func TestBoundingBoxCoversExact(t *testing.T) {
	shapes := []shape.Shape{
		shape.Sphere{Center: r3.Vector{X: 1, Y: -2}, Radius: 1.5},
		shape.Box{P: rigid.Identity(), Size: r3.Vector{X: 2, Y: 1, Z: 3}},
		shape.Box{
			P:    rigid.FromAxisAngle(rigid.R4AA{Theta: 0.7, RX: 1}, r3.Vector{}),
			Size: r3.Vector{X: 2, Y: 1, Z: 3},
		},
		shape.Cylinder{P: rigid.Identity(), Radius: 0.5, Height: 2},
		shape.Capsule{P: rigid.Identity(), Radius: 0.25, Length: 1},
	}
	const slack = 1e-9
	for _, s := range shapes {
		engine, err := sdfcad.BoundingBox(s)
		require.NoError(t, err)
		exact := s.Bounds()
		assert.LessOrEqual(t, engine.Min.X, exact.Min.X+slack)
		assert.LessOrEqual(t, engine.Min.Y, exact.Min.Y+slack)
		assert.LessOrEqual(t, engine.Min.Z, exact.Min.Z+slack)
		assert.GreaterOrEqual(t, engine.Max.X, exact.Max.X-slack)
		assert.GreaterOrEqual(t, engine.Max.Y, exact.Max.Y-slack)
		assert.GreaterOrEqual(t, engine.Max.Z, exact.Max.Z-slack)
	}
}

// TestMeshSphere tessellates a unit sphere and checks every vertex
// stays near the surface at the chosen resolution.
func TestMeshSphere(t *testing.T) {
	s := shape.Sphere{Radius: 1}
	tris, err := sdfcad.Mesh(s, 32)
	require.NoError(t, err)
	require.NotEmpty(t, tris)

	for _, tri := range tris {
		for _, v := range []r3.Vector{tri.A, tri.B, tri.C} {
			r := v.Norm()
			assert.InDelta(t, 1, r, 0.15)
		}
	}
}
