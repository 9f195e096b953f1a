// Package sdfcad bridges shape primitives to the signed-distance-field
// CAD engine in github.com/deadsy/sdfx: exact point-to-surface
// distances and marching-cubes triangle meshes for posed solids.
package sdfcad

import (
	"errors"
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/golang/geo/r3"

	"github.com/geomech/spatial/rigid"
	"github.com/geomech/spatial/shape"
)

// ErrUnsupported indicates the shape kind has no signed distance field
// construction.
var ErrUnsupported = errors.New("sdfcad: shape kind has no SDF support")

// defaultMeshCells is the marching cubes resolution used when the
// caller does not pick one.
const defaultMeshCells = 64

// Triangle is one mesh facet in world coordinates.
type Triangle struct {
	A, B, C r3.Vector
}

// Solid builds the world-space signed distance field of a posed shape.
// Boxes, spheres, cylinders and capsules are supported; ramps, tori and
// ellipsoids return ErrUnsupported.
func Solid(s shape.Shape) (sdf.SDF3, error) {
	var (
		local sdf.SDF3
		err   error
	)
	switch sh := s.(type) {
	case shape.Box:
		local, err = sdf.Box3D(vec(sh.Size), 0)
	case shape.Sphere:
		local, err = sdf.Sphere3D(sh.Radius)
	case shape.Cylinder:
		local, err = sdf.Cylinder3D(sh.Height, sh.Radius, 0)
	case shape.Capsule:
		// A fully rounded cylinder of total height Length+2r is a
		// capsule with segment length Length.
		local, err = sdf.Cylinder3D(sh.Length+2*sh.Radius, sh.Radius, sh.Radius)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, s)
	}
	if err != nil {
		return nil, fmt.Errorf("sdfcad: building %T: %w", s, err)
	}
	return sdf.Transform3D(local, placement(s.Pose())), nil
}

// Distance returns the signed distance from p to the shape surface:
// negative inside, positive outside.
func Distance(s shape.Shape, p r3.Vector) (float64, error) {
	solid, err := Solid(s)
	if err != nil {
		return 0, err
	}
	return solid.Evaluate(vec(p)), nil
}

// BoundingBox returns the SDF engine's conservative world bounds for a
// shape. It never undercuts the exact shape.Bounds, and may pad it.
func BoundingBox(s shape.Shape) (shape.Bounds, error) {
	solid, err := Solid(s)
	if err != nil {
		return shape.Bounds{}, err
	}
	bb := solid.BoundingBox()
	return shape.Bounds{
		Min: r3.Vector{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z},
		Max: r3.Vector{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z},
	}, nil
}

// Mesh tessellates the shape surface with uniform marching cubes.
// cells sets the grid resolution along the longest bound axis; zero or
// negative picks a sensible default.
func Mesh(s shape.Shape, cells int) ([]Triangle, error) {
	solid, err := Solid(s)
	if err != nil {
		return nil, err
	}
	if cells <= 0 {
		cells = defaultMeshCells
	}
	renderer := render.NewMarchingCubesUniform(cells)
	tris := render.ToTriangles(solid, renderer)
	out := make([]Triangle, len(tris))
	for i, tri := range tris {
		out[i] = Triangle{
			A: r3.Vector{X: tri[0].X, Y: tri[0].Y, Z: tri[0].Z},
			B: r3.Vector{X: tri[1].X, Y: tri[1].Y, Z: tri[1].Z},
			C: r3.Vector{X: tri[2].X, Y: tri[2].Y, Z: tri[2].Z},
		}
	}
	return out, nil
}

// placement converts a rigid transform to the engine's 4x4 matrix.
// The rotation is purified first so long composition chains cannot
// hand the engine a drifted, non-orthonormal matrix.
func placement(t rigid.Transform) sdf.M44 {
	t = shape.PurifyPose(t)
	m := sdf.Translate3d(vec(t.Trans))
	aa := rigid.QuatToR4AA(t.Quaternion())
	if aa.Theta != 0 {
		m = m.Mul(sdf.Rotate3d(v3.Vec{X: aa.RX, Y: aa.RY, Z: aa.RZ}, aa.Theta))
	}
	return m
}

func vec(v r3.Vector) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}
