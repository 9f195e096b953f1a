package rigid

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Transform is a rigid 3D transform: a proper rotation followed by a
// translation. It maps local coordinates to parent coordinates:
//
//	parent = Rot·local + Trans
type Transform struct {
	Rot   Mat3
	Trans r3.Vector
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{Rot: Identity3()}
}

// FromQuat builds a transform from a unit quaternion and a translation.
func FromQuat(q quat.Number, trans r3.Vector) Transform {
	return Transform{Rot: QuatToMat(Normalize(q)), Trans: trans}
}

// FromAxisAngle builds a transform from an axis angle and a translation.
func FromAxisAngle(aa R4AA, trans r3.Vector) Transform {
	return FromQuat(aa.ToQuat(), trans)
}

// Compose returns the transform that applies o first, then t:
// (t.Compose(o)).ApplyPoint(p) == t.ApplyPoint(o.ApplyPoint(p)).
func (t Transform) Compose(o Transform) Transform {
	return Transform{
		Rot:   t.Rot.Mul(o.Rot),
		Trans: t.Rot.Apply(o.Trans).Add(t.Trans),
	}
}

// Inverse returns the inverse transform. For a rigid transform the
// inverse rotation is the transpose.
func (t Transform) Inverse() Transform {
	rt := t.Rot.Transpose()
	return Transform{
		Rot:   rt,
		Trans: rt.Apply(t.Trans).Mul(-1),
	}
}

// ApplyPoint maps a point from local to parent coordinates.
func (t Transform) ApplyPoint(p r3.Vector) r3.Vector {
	return t.Rot.Apply(p).Add(t.Trans)
}

// ApplyVector maps a direction from local to parent coordinates.
// Translation does not apply to directions.
func (t Transform) ApplyVector(v r3.Vector) r3.Vector {
	return t.Rot.Apply(v)
}

// Quaternion returns the rotation part of t as a unit quaternion.
func (t Transform) Quaternion() quat.Number {
	return MatToQuat(t.Rot)
}

// EpsilonEquals reports whether t and o agree entrywise within eps.
func (t Transform) EpsilonEquals(o Transform, eps float64) bool {
	return t.Rot.EpsilonEquals(o.Rot, eps) &&
		math.Abs(t.Trans.X-o.Trans.X) <= eps &&
		math.Abs(t.Trans.Y-o.Trans.Y) <= eps &&
		math.Abs(t.Trans.Z-o.Trans.Z) <= eps
}

// Interpolate blends two transforms: normalized quaternion lerp on the
// rotations, linear lerp on the translations. alpha=0 yields a,
// alpha=1 yields b.
func Interpolate(a, b Transform, alpha float64) Transform {
	q := Nlerp(a.Quaternion(), b.Quaternion(), alpha)
	trans := a.Trans.Mul(1 - alpha).Add(b.Trans.Mul(alpha))
	return FromQuat(q, trans)
}
