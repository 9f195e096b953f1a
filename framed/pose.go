package framed

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/geomech/spatial/frame"
	"github.com/geomech/spatial/rigid"
)

// Pose is a rigid orientation-plus-position expressed in a reference
// frame: the pose of some body, as seen from that frame.
type Pose struct {
	f *frame.Frame
	t rigid.Transform
}

// NewPose returns an identity pose bound to f.
func NewPose(f *frame.Frame) *Pose {
	return &Pose{f: f, t: rigid.Identity()}
}

// NewPoseAt returns the given pose bound to f.
func NewPoseAt(f *frame.Frame, t rigid.Transform) *Pose {
	return &Pose{f: f, t: t}
}

// NewPoseFrom copies both pose and frame from src.
func NewPoseFrom(src *Pose) *Pose {
	c := *src
	return &c
}

// ReferenceFrame returns the frame the pose is expressed in.
func (p *Pose) ReferenceFrame() *frame.Frame { return p.f }

// Transform returns the pose as a rigid transform mapping body
// coordinates into the reference frame.
func (p *Pose) Transform() rigid.Transform { return p.t }

// Quaternion returns the orientation part as a unit quaternion.
func (p *Pose) Quaternion() quat.Number { return p.t.Quaternion() }

// Position returns the position part as a framed point.
func (p *Pose) Position() *Point3 {
	return &Point3{f: p.f, v: p.t.Trans}
}

// SetIncludingFrame overwrites pose and frame reference without
// transforming.
func (p *Pose) SetIncludingFrame(f *frame.Frame, t rigid.Transform) {
	p.f = f
	p.t = t
}

// Set copies o's pose.
func (p *Pose) Set(o *Pose) error {
	if err := SameFrame(p, o); err != nil {
		return err
	}
	p.t = o.t
	return nil
}

// Interpolate blends p toward o (normalized quaternion lerp on the
// orientation, linear lerp on the position).
func (p *Pose) Interpolate(o *Pose, alpha float64) error {
	if err := SameFrame(p, o); err != nil {
		return err
	}
	p.t = rigid.Interpolate(p.t, o.t, alpha)
	return nil
}

// ChangeFrame re-expresses the pose in target by left-composing the
// frame-to-frame transform.
func (p *Pose) ChangeFrame(target *frame.Frame) error {
	tr, err := p.f.TransformTo(target)
	if err != nil {
		return err
	}
	p.t = tr.Compose(p.t)
	p.f = target
	return nil
}

// SetMatchingFrame assigns from a source in a possibly different frame
// of the same tree: copy, then ChangeFrame back to p's original frame.
func (p *Pose) SetMatchingFrame(src *Pose) error {
	orig := *p
	p.t = src.t
	p.f = src.f
	if err := p.ChangeFrame(orig.f); err != nil {
		*p = orig
		return err
	}
	return nil
}

// EpsilonEquals reports frame identity plus entrywise transform
// agreement within eps.
func (p *Pose) EpsilonEquals(o *Pose, eps float64) bool {
	return p.f == o.f && p.t.EpsilonEquals(o.t, eps)
}

// CoordinatesEqual compares the transforms only.
func (p *Pose) CoordinatesEqual(o *Pose, eps float64) bool {
	return p.t.EpsilonEquals(o.t, eps)
}
