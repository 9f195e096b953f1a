package framed

import (
	"math"

	"github.com/geomech/spatial/frame"
)

// Point2 is a position in a frame's XY working plane. The 2D variants
// follow the Point3 pattern; changing frame routes the coordinates
// through 3D (z = 0) and projects back onto the target's XY plane.
type Point2 struct {
	f    *frame.Frame
	x, y float64
}

// NewPoint2 returns a zero point bound to f.
func NewPoint2(f *frame.Frame) *Point2 {
	return &Point2{f: f}
}

// NewPoint2At returns the point (x, y) bound to f.
func NewPoint2At(f *frame.Frame, x, y float64) *Point2 {
	return &Point2{f: f, x: x, y: y}
}

// NewPoint2FromPoint3 seeds a 2D point from a 3D one in the same
// frame, dropping the out-of-plane coordinate.
func NewPoint2FromPoint3(src *Point3) *Point2 {
	return &Point2{f: src.f, x: src.v.X, y: src.v.Y}
}

// ReferenceFrame returns the frame the coordinates are expressed in.
func (p *Point2) ReferenceFrame() *frame.Frame { return p.f }

// X returns the first coordinate.
func (p *Point2) X() float64 { return p.x }

// Y returns the second coordinate.
func (p *Point2) Y() float64 { return p.y }

// SetIncludingFrame overwrites coordinates and frame reference without
// transforming.
func (p *Point2) SetIncludingFrame(f *frame.Frame, x, y float64) {
	p.f = f
	p.x, p.y = x, y
}

// Set copies o's coordinates.
func (p *Point2) Set(o *Point2) error {
	if err := SameFrame(p, o); err != nil {
		return err
	}
	p.x, p.y = o.x, o.y
	return nil
}

// Add adds o's coordinates componentwise.
func (p *Point2) Add(o *Point2) error {
	if err := SameFrame(p, o); err != nil {
		return err
	}
	p.x += o.x
	p.y += o.y
	return nil
}

// Sub subtracts o's coordinates componentwise.
func (p *Point2) Sub(o *Point2) error {
	if err := SameFrame(p, o); err != nil {
		return err
	}
	p.x -= o.x
	p.y -= o.y
	return nil
}

// Interpolate moves p toward o: p = (1-alpha)·p + alpha·o.
func (p *Point2) Interpolate(o *Point2, alpha float64) error {
	if err := SameFrame(p, o); err != nil {
		return err
	}
	p.x = (1-alpha)*p.x + alpha*o.x
	p.y = (1-alpha)*p.y + alpha*o.y
	return nil
}

// DistanceTo returns the planar Euclidean distance to o.
func (p *Point2) DistanceTo(o *Point2) (float64, error) {
	if err := SameFrame(p, o); err != nil {
		return 0, err
	}
	return math.Hypot(p.x-o.x, p.y-o.y), nil
}

// ChangeFrame re-expresses the point in target's XY plane: the 3D
// frame-to-frame transform is applied to (x, y, 0) and the result
// projected back.
func (p *Point2) ChangeFrame(target *frame.Frame) error {
	lifted := NewPoint3FromPoint2(p, 0)
	if err := lifted.ChangeFrameAndProjectToXYPlane(target); err != nil {
		return err
	}
	p.f = target
	p.x, p.y = lifted.v.X, lifted.v.Y
	return nil
}

// SetMatchingFrame assigns from a source in a possibly different frame
// of the same tree: copy, then ChangeFrame back to p's original frame.
func (p *Point2) SetMatchingFrame(src *Point2) error {
	orig := *p
	p.x, p.y = src.x, src.y
	p.f = src.f
	if err := p.ChangeFrame(orig.f); err != nil {
		*p = orig
		return err
	}
	return nil
}

// EpsilonEquals reports frame identity plus coordinate agreement.
func (p *Point2) EpsilonEquals(o *Point2, eps float64) bool {
	return p.f == o.f && p.CoordinatesEqual(o, eps)
}

// CoordinatesEqual compares coordinates only.
func (p *Point2) CoordinatesEqual(o *Point2, eps float64) bool {
	return math.Abs(p.x-o.x) <= eps && math.Abs(p.y-o.y) <= eps
}
