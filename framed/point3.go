package framed

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/geomech/spatial/frame"
)

// Point3 is a 3D position expressed in a reference frame.
type Point3 struct {
	f *frame.Frame
	v r3.Vector
}

// NewPoint3 returns a zero point bound to f.
func NewPoint3(f *frame.Frame) *Point3 {
	return &Point3{f: f}
}

// NewPoint3At returns the point (x, y, z) bound to f.
func NewPoint3At(f *frame.Frame, x, y, z float64) *Point3 {
	return &Point3{f: f, v: r3.Vector{X: x, Y: y, Z: z}}
}

// NewPoint3From copies both coordinates and frame from src.
func NewPoint3From(src *Point3) *Point3 {
	c := *src
	return &c
}

// NewPoint3FromPoint2 seeds a 3D point from a 2D one in the same
// frame, supplying the out-of-plane coordinate.
func NewPoint3FromPoint2(src *Point2, z float64) *Point3 {
	return &Point3{f: src.f, v: r3.Vector{X: src.x, Y: src.y, Z: z}}
}

// ReferenceFrame returns the frame the coordinates are expressed in.
func (p *Point3) ReferenceFrame() *frame.Frame { return p.f }

// Vector returns the coordinates as a plain vector.
func (p *Point3) Vector() r3.Vector { return p.v }

// SetIncludingFrame overwrites coordinates and frame reference without
// transforming anything. This rebinds the value; it is not a change of
// frame.
func (p *Point3) SetIncludingFrame(f *frame.Frame, x, y, z float64) {
	p.f = f
	p.v = r3.Vector{X: x, Y: y, Z: z}
}

// Set copies o's coordinates. Both points must share a frame.
func (p *Point3) Set(o *Point3) error {
	if err := SameFrame(p, o); err != nil {
		return err
	}
	p.v = o.v
	return nil
}

// SetVector overwrites the coordinates from a plain vector, which
// carries no frame and therefore needs no check.
func (p *Point3) SetVector(v r3.Vector) { p.v = v }

// Add adds o's coordinates componentwise.
func (p *Point3) Add(o *Point3) error {
	if err := SameFrame(p, o); err != nil {
		return err
	}
	p.v = p.v.Add(o.v)
	return nil
}

// AddVector displaces the point by a framed vector.
func (p *Point3) AddVector(o *Vector3) error {
	if err := SameFrame(p, o); err != nil {
		return err
	}
	p.v = p.v.Add(o.v)
	return nil
}

// Sub subtracts o's coordinates componentwise.
func (p *Point3) Sub(o *Point3) error {
	if err := SameFrame(p, o); err != nil {
		return err
	}
	p.v = p.v.Sub(o.v)
	return nil
}

// Scale multiplies the coordinates by s.
func (p *Point3) Scale(s float64) { p.v = p.v.Mul(s) }

// ScaleAdd sets p to s·p + o.
func (p *Point3) ScaleAdd(s float64, o *Point3) error {
	if err := SameFrame(p, o); err != nil {
		return err
	}
	p.v = p.v.Mul(s).Add(o.v)
	return nil
}

// Interpolate moves p toward o: p = (1-alpha)·p + alpha·o.
func (p *Point3) Interpolate(o *Point3, alpha float64) error {
	if err := SameFrame(p, o); err != nil {
		return err
	}
	p.v = p.v.Mul(1 - alpha).Add(o.v.Mul(alpha))
	return nil
}

// DistanceTo returns the Euclidean distance to o.
func (p *Point3) DistanceTo(o *Point3) (float64, error) {
	if err := SameFrame(p, o); err != nil {
		return 0, err
	}
	return p.v.Sub(o.v).Norm(), nil
}

// ChangeFrame re-expresses the point in target, transforming the
// coordinates and reassigning the frame reference together. On error
// the point is untouched.
func (p *Point3) ChangeFrame(target *frame.Frame) error {
	tr, err := p.f.TransformTo(target)
	if err != nil {
		return err
	}
	p.v = tr.ApplyPoint(p.v)
	p.f = target
	return nil
}

// ChangeFrameAndProjectToXYPlane behaves as ChangeFrame and then drops
// the out-of-plane component, for reasoning restricted to the target
// frame's XY working plane.
func (p *Point3) ChangeFrameAndProjectToXYPlane(target *frame.Frame) error {
	if err := p.ChangeFrame(target); err != nil {
		return err
	}
	p.v.Z = 0
	return nil
}

// SetMatchingFrame assigns from a source expressed in a possibly
// different frame of the same tree: copy coordinates and frame from
// src, then ChangeFrame back to p's original frame. The two-step
// borrow-then-change sequence is the contract; on failure p is
// restored.
func (p *Point3) SetMatchingFrame(src *Point3) error {
	orig := *p
	p.v = src.v
	p.f = src.f
	if err := p.ChangeFrame(orig.f); err != nil {
		*p = orig
		return err
	}
	return nil
}

// EpsilonEquals reports frame identity plus coordinate agreement
// within eps.
func (p *Point3) EpsilonEquals(o *Point3, eps float64) bool {
	return p.f == o.f && p.CoordinatesEqual(o, eps)
}

// CoordinatesEqual compares coordinates only; the caller vouches for
// the frames.
func (p *Point3) CoordinatesEqual(o *Point3, eps float64) bool {
	return math.Abs(p.v.X-o.v.X) <= eps &&
		math.Abs(p.v.Y-o.v.Y) <= eps &&
		math.Abs(p.v.Z-o.v.Z) <= eps
}
