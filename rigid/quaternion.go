package rigid

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// R4AA is an axis-angle orientation: a rotation of Theta radians about
// the axis (RX, RY, RZ). The axis need not be pre-normalized.
type R4AA struct {
	Theta float64
	RX    float64
	RY    float64
	RZ    float64
}

// Norm returns the norm of a quaternion.
func Norm(q quat.Number) float64 {
	return math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

// Normalize scales q to unit norm. The zero quaternion normalizes to
// the identity orientation.
func Normalize(q quat.Number) quat.Number {
	n := Norm(q)
	if n == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/n, q)
}

// ToQuat converts an axis angle to a unit quaternion.
func (r4 R4AA) ToQuat() quat.Number {
	axisNorm := math.Sqrt(r4.RX*r4.RX + r4.RY*r4.RY + r4.RZ*r4.RZ)
	if axisNorm == 0 {
		return quat.Number{Real: 1}
	}
	sinA := math.Sin(r4.Theta/2) / axisNorm
	return quat.Number{
		Real: math.Cos(r4.Theta / 2),
		Imag: r4.RX * sinA,
		Jmag: r4.RY * sinA,
		Kmag: r4.RZ * sinA,
	}
}

// QuatToR4AA converts a unit quaternion to an axis angle. The identity
// orientation maps to a zero rotation about the +Z axis.
func QuatToR4AA(q quat.Number) R4AA {
	q = Normalize(q)
	w := math.Max(-1, math.Min(1, q.Real))
	theta := 2 * math.Acos(w)
	denom := math.Sqrt(1 - w*w)
	if denom < 1e-12 {
		return R4AA{Theta: 0, RZ: 1}
	}
	return R4AA{
		Theta: theta,
		RX:    q.Imag / denom,
		RY:    q.Jmag / denom,
		RZ:    q.Kmag / denom,
	}
}

// QuatToMat converts a unit quaternion to a rotation matrix.
func QuatToMat(q quat.Number) Mat3 {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// MatToQuat converts a rotation matrix to a unit quaternion using the
// trace-branched Shepperd method.
// reference: euclideanspace.com/maths/geometry/rotations/conversions/matrixToQuaternion
func MatToQuat(m Mat3) quat.Number {
	var q quat.Number
	if tr := m[0] + m[4] + m[8]; tr > 0 {
		s := 0.5 / math.Sqrt(tr+1.0)
		q = quat.Number{Real: 0.25 / s, Imag: (m[7] - m[5]) * s, Jmag: (m[2] - m[6]) * s, Kmag: (m[3] - m[1]) * s}
	} else if (m[0] > m[4]) && (m[0] > m[8]) {
		s := 2.0 * math.Sqrt(1.0+m[0]-m[4]-m[8])
		q = quat.Number{Real: (m[7] - m[5]) / s, Imag: 0.25 * s, Jmag: (m[1] + m[3]) / s, Kmag: (m[2] + m[6]) / s}
	} else if m[4] > m[8] {
		s := 2.0 * math.Sqrt(1.0+m[4]-m[0]-m[8])
		q = quat.Number{Real: (m[2] - m[6]) / s, Imag: (m[1] + m[3]) / s, Jmag: 0.25 * s, Kmag: (m[5] + m[7]) / s}
	} else {
		s := 2.0 * math.Sqrt(1.0+m[8]-m[0]-m[4])
		q = quat.Number{Real: (m[3] - m[1]) / s, Imag: (m[2] + m[6]) / s, Jmag: (m[5] + m[7]) / s, Kmag: 0.25 * s}
	}
	return Normalize(q)
}

// RotateVec rotates v by the unit quaternion q.
func RotateVec(q quat.Number, v r3.Vector) r3.Vector {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vector{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

// Nlerp interpolates between two unit quaternions by normalized linear
// interpolation, taking the shorter arc. alpha=0 yields a, alpha=1
// yields b.
func Nlerp(a, b quat.Number, alpha float64) quat.Number {
	dot := a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
	if dot < 0 {
		b = quat.Scale(-1, b)
	}
	mix := quat.Add(quat.Scale(1-alpha, a), quat.Scale(alpha, b))
	return Normalize(mix)
}
