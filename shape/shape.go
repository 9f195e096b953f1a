package shape

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/geomech/spatial/rigid"
)

// Shape is a posed solid primitive with a world-space bounding box.
type Shape interface {
	Pose() rigid.Transform
	Bounds() Bounds
}

// Box is a rectangular solid centered on its pose origin, with edge
// lengths Size along the pose axes.
type Box struct {
	P    rigid.Transform
	Size r3.Vector
}

// Pose returns the box placement.
func (b Box) Pose() rigid.Transform { return b.P }

// Bounds returns the exact world AABB: per world axis, the sum of the
// absolute rotation-row entries weighted by the half sizes.
func (b Box) Bounds() Bounds {
	e := rotatedHalfExtents(b.P.Rot, b.Size.Mul(0.5))
	return Bounds{Min: b.P.Trans.Sub(e), Max: b.P.Trans.Add(e)}
}

// Ramp is a right-triangular prism: a box of dimensions Size cut by
// the incline from the bottom-front edge to the top-back edge. The
// pose origin sits at the center of the rectangular base.
type Ramp struct {
	P    rigid.Transform
	Size r3.Vector
}

// Pose returns the ramp placement.
func (rp Ramp) Pose() rigid.Transform { return rp.P }

// Bounds transforms the six prism vertices and takes their tight box.
func (rp Ramp) Bounds() Bounds {
	sx, sy, sz := rp.Size.X/2, rp.Size.Y/2, rp.Size.Z
	verts := []r3.Vector{
		{X: -sx, Y: -sy}, {X: -sx, Y: sy},
		{X: sx, Y: -sy}, {X: sx, Y: sy},
		{X: sx, Y: -sy, Z: sz}, {X: sx, Y: sy, Z: sz},
	}
	for i, v := range verts {
		verts[i] = rp.P.ApplyPoint(v)
	}
	return BoundsOf(verts)
}

// Sphere is a ball; orientation is irrelevant.
type Sphere struct {
	Center r3.Vector
	Radius float64
}

// Pose returns a translation-only placement at the center.
func (s Sphere) Pose() rigid.Transform {
	return rigid.Transform{Rot: rigid.Identity3(), Trans: s.Center}
}

// Bounds returns the center ± radius cube.
func (s Sphere) Bounds() Bounds {
	r := r3.Vector{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return Bounds{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

// Cylinder is a solid cylinder of the given total Height along the
// pose's local Z axis, centered on the pose origin.
type Cylinder struct {
	P      rigid.Transform
	Radius float64
	Height float64
}

// Pose returns the cylinder placement.
func (c Cylinder) Pose() rigid.Transform { return c.P }

// Bounds uses the exact cylinder extent along each world axis:
// |a_i|·h/2 for the axis part plus r·√(1−a_i²) for the rim.
func (c Cylinder) Bounds() Bounds {
	a := c.P.Rot.Col(2)
	var e r3.Vector
	e.X = math.Abs(a.X)*c.Height/2 + c.Radius*math.Sqrt(math.Max(0, 1-a.X*a.X))
	e.Y = math.Abs(a.Y)*c.Height/2 + c.Radius*math.Sqrt(math.Max(0, 1-a.Y*a.Y))
	e.Z = math.Abs(a.Z)*c.Height/2 + c.Radius*math.Sqrt(math.Max(0, 1-a.Z*a.Z))
	return Bounds{Min: c.P.Trans.Sub(e), Max: c.P.Trans.Add(e)}
}

// Capsule is a segment of the given Length along the pose's local Z
// axis, centered on the pose origin, swept by a ball of Radius.
type Capsule struct {
	P      rigid.Transform
	Radius float64
	Length float64
}

// Pose returns the capsule placement.
func (c Capsule) Pose() rigid.Transform { return c.P }

// Bounds unions the bounds of the two endpoint balls.
func (c Capsule) Bounds() Bounds {
	half := c.P.Rot.Col(2).Mul(c.Length / 2)
	top := Sphere{Center: c.P.Trans.Add(half), Radius: c.Radius}
	bot := Sphere{Center: c.P.Trans.Sub(half), Radius: c.Radius}
	return top.Bounds().Union(bot.Bounds())
}

// Ellipsoid has semi-axis lengths Radii along the pose axes.
type Ellipsoid struct {
	P     rigid.Transform
	Radii r3.Vector
}

// Pose returns the ellipsoid placement.
func (e Ellipsoid) Pose() rigid.Transform { return e.P }

// Bounds uses the support-function extent of a rotated ellipsoid:
// per world axis i, √(Σ_j (R_ij·r_j)²).
func (e Ellipsoid) Bounds() Bounds {
	var ext r3.Vector
	ext.X = rowScaledNorm(e.P.Rot.Row(0), e.Radii)
	ext.Y = rowScaledNorm(e.P.Rot.Row(1), e.Radii)
	ext.Z = rowScaledNorm(e.P.Rot.Row(2), e.Radii)
	return Bounds{Min: e.P.Trans.Sub(ext), Max: e.P.Trans.Add(ext)}
}

// Torus is a ring around the pose's local Z axis: MajorRadius to the
// tube center, MinorRadius for the tube itself.
type Torus struct {
	P           rigid.Transform
	MajorRadius float64
	MinorRadius float64
}

// Pose returns the torus placement.
func (t Torus) Pose() rigid.Transform { return t.P }

// Bounds uses the exact torus extent along each world axis:
// R·√(1−a_i²) + r, with a the ring axis in world coordinates.
func (t Torus) Bounds() Bounds {
	a := t.P.Rot.Col(2)
	var e r3.Vector
	e.X = t.MajorRadius*math.Sqrt(math.Max(0, 1-a.X*a.X)) + t.MinorRadius
	e.Y = t.MajorRadius*math.Sqrt(math.Max(0, 1-a.Y*a.Y)) + t.MinorRadius
	e.Z = t.MajorRadius*math.Sqrt(math.Max(0, 1-a.Z*a.Z)) + t.MinorRadius
	return Bounds{Min: t.P.Trans.Sub(e), Max: t.P.Trans.Add(e)}
}

// rotatedHalfExtents returns, per world axis, Σ_j |R_ij|·half_j.
func rotatedHalfExtents(rot rigid.Mat3, half r3.Vector) r3.Vector {
	return r3.Vector{
		X: math.Abs(rot[0])*half.X + math.Abs(rot[1])*half.Y + math.Abs(rot[2])*half.Z,
		Y: math.Abs(rot[3])*half.X + math.Abs(rot[4])*half.Y + math.Abs(rot[5])*half.Z,
		Z: math.Abs(rot[6])*half.X + math.Abs(rot[7])*half.Y + math.Abs(rot[8])*half.Z,
	}
}

// rowScaledNorm returns √(Σ_j (row_j·scale_j)²).
func rowScaledNorm(row, scale r3.Vector) float64 {
	x, y, z := row.X*scale.X, row.Y*scale.Y, row.Z*scale.Z
	return math.Sqrt(x*x + y*y + z*z)
}
