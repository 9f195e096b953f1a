package rigid

import (
	"math"

	"github.com/golang/geo/r3"
)

// Mat3 is a 3x3 matrix in row-major order.
// m[3*r+c] is the element in the r'th row and c'th column.
type Mat3 [9]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mul returns the matrix product m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var p Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			p[3*r+c] = m[3*r]*o[c] + m[3*r+1]*o[3+c] + m[3*r+2]*o[6+c]
		}
	}
	return p
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Trace returns the sum of the diagonal entries of m.
func (m Mat3) Trace() float64 {
	return m[0] + m[4] + m[8]
}

// Apply returns m·v.
func (m Mat3) Apply(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Col returns the i'th column of m as a vector, i in [0,2].
func (m Mat3) Col(i int) r3.Vector {
	return r3.Vector{X: m[i], Y: m[3+i], Z: m[6+i]}
}

// SetCol overwrites the i'th column of m, i in [0,2].
func (m *Mat3) SetCol(i int, v r3.Vector) {
	m[i], m[3+i], m[6+i] = v.X, v.Y, v.Z
}

// Row returns the i'th row of m as a vector, i in [0,2].
func (m Mat3) Row(i int) r3.Vector {
	return r3.Vector{X: m[3*i], Y: m[3*i+1], Z: m[3*i+2]}
}

// MaxAbs returns the largest entry magnitude of m.
func (m Mat3) MaxAbs() float64 {
	max := 0.0
	for _, e := range m {
		if a := math.Abs(e); a > max {
			max = a
		}
	}
	return max
}

// EpsilonEquals reports whether every entry of m is within eps of the
// corresponding entry of o.
func (m Mat3) EpsilonEquals(o Mat3, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

// IsRotation reports whether m is a proper rotation to within eps:
// orthonormal columns and determinant +1.
func (m Mat3) IsRotation(eps float64) bool {
	if math.Abs(m.Det()-1) > eps {
		return false
	}
	mtm := m.Transpose().Mul(m)
	return mtm.EpsilonEquals(Identity3(), eps)
}
