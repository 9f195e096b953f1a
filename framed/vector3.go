package framed

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/geomech/spatial/frame"
)

// Vector3 is a 3D direction or displacement expressed in a reference
// frame. It mirrors Point3 except that changing frame applies only the
// rotation part of the transform — directions do not translate.
type Vector3 struct {
	f *frame.Frame
	v r3.Vector
}

// NewVector3 returns a zero vector bound to f.
func NewVector3(f *frame.Frame) *Vector3 {
	return &Vector3{f: f}
}

// NewVector3At returns the vector (x, y, z) bound to f.
func NewVector3At(f *frame.Frame, x, y, z float64) *Vector3 {
	return &Vector3{f: f, v: r3.Vector{X: x, Y: y, Z: z}}
}

// NewVector3Between returns to − from as a framed vector.
func NewVector3Between(from, to *Point3) (*Vector3, error) {
	if err := SameFrame(from, to); err != nil {
		return nil, err
	}
	return &Vector3{f: from.f, v: to.v.Sub(from.v)}, nil
}

// ReferenceFrame returns the frame the components are expressed in.
func (v *Vector3) ReferenceFrame() *frame.Frame { return v.f }

// Vector returns the components as a plain vector.
func (v *Vector3) Vector() r3.Vector { return v.v }

// SetIncludingFrame overwrites components and frame reference without
// transforming.
func (v *Vector3) SetIncludingFrame(f *frame.Frame, x, y, z float64) {
	v.f = f
	v.v = r3.Vector{X: x, Y: y, Z: z}
}

// Set copies o's components.
func (v *Vector3) Set(o *Vector3) error {
	if err := SameFrame(v, o); err != nil {
		return err
	}
	v.v = o.v
	return nil
}

// Add accumulates o.
func (v *Vector3) Add(o *Vector3) error {
	if err := SameFrame(v, o); err != nil {
		return err
	}
	v.v = v.v.Add(o.v)
	return nil
}

// Sub subtracts o.
func (v *Vector3) Sub(o *Vector3) error {
	if err := SameFrame(v, o); err != nil {
		return err
	}
	v.v = v.v.Sub(o.v)
	return nil
}

// Scale multiplies the components by s.
func (v *Vector3) Scale(s float64) { v.v = v.v.Mul(s) }

// ScaleAdd sets v to s·v + o.
func (v *Vector3) ScaleAdd(s float64, o *Vector3) error {
	if err := SameFrame(v, o); err != nil {
		return err
	}
	v.v = v.v.Mul(s).Add(o.v)
	return nil
}

// Interpolate moves v toward o: v = (1-alpha)·v + alpha·o.
func (v *Vector3) Interpolate(o *Vector3, alpha float64) error {
	if err := SameFrame(v, o); err != nil {
		return err
	}
	v.v = v.v.Mul(1 - alpha).Add(o.v.Mul(alpha))
	return nil
}

// Dot returns the dot product with o.
func (v *Vector3) Dot(o *Vector3) (float64, error) {
	if err := SameFrame(v, o); err != nil {
		return 0, err
	}
	return v.v.Dot(o.v), nil
}

// Cross sets v to v × o.
func (v *Vector3) Cross(o *Vector3) error {
	if err := SameFrame(v, o); err != nil {
		return err
	}
	v.v = v.v.Cross(o.v)
	return nil
}

// Norm returns the Euclidean length.
func (v *Vector3) Norm() float64 { return v.v.Norm() }

// ChangeFrame re-expresses the vector in target; only the rotation
// part of the frame-to-frame transform applies.
func (v *Vector3) ChangeFrame(target *frame.Frame) error {
	tr, err := v.f.TransformTo(target)
	if err != nil {
		return err
	}
	v.v = tr.ApplyVector(v.v)
	v.f = target
	return nil
}

// ChangeFrameAndProjectToXYPlane behaves as ChangeFrame and then drops
// the out-of-plane component.
func (v *Vector3) ChangeFrameAndProjectToXYPlane(target *frame.Frame) error {
	if err := v.ChangeFrame(target); err != nil {
		return err
	}
	v.v.Z = 0
	return nil
}

// SetMatchingFrame assigns from a source in a possibly different frame
// of the same tree: copy, then ChangeFrame back to v's original frame.
func (v *Vector3) SetMatchingFrame(src *Vector3) error {
	orig := *v
	v.v = src.v
	v.f = src.f
	if err := v.ChangeFrame(orig.f); err != nil {
		*v = orig
		return err
	}
	return nil
}

// EpsilonEquals reports frame identity plus component agreement.
func (v *Vector3) EpsilonEquals(o *Vector3, eps float64) bool {
	return v.f == o.f && v.CoordinatesEqual(o, eps)
}

// CoordinatesEqual compares components only.
func (v *Vector3) CoordinatesEqual(o *Vector3, eps float64) bool {
	return math.Abs(v.v.X-o.v.X) <= eps &&
		math.Abs(v.v.Y-o.v.Y) <= eps &&
		math.Abs(v.v.Z-o.v.Z) <= eps
}
