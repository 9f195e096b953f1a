package svd3

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/geomech/spatial/rigid"
)

const (
	// sweeps is the fixed number of Jacobi sweeps over the three
	// off-diagonal pairs. Convergence is quadratic; six sweeps reach
	// float64 round-off for any finite 3x3 input.
	sweeps = 6

	// gamma is 3 + 2·√2, the threshold deciding whether the
	// closed-form half-angle approximation is usable.
	gamma = 5.8284271247461903

	// cosHalfPi8 and sinHalfPi8 are cos(π/8) and sin(π/8), the fixed
	// fallback half-angle rotation used when the approximation would
	// suffer catastrophic cancellation (near-equal diagonal entries).
	cosHalfPi8 = 0.9238795325112867
	sinHalfPi8 = 0.3826834323650898

	// degenerateRel is the relative column-norm threshold below which
	// a column of B is treated as rank-deficient.
	degenerateRel = 1e-13
)

// pairs are the off-diagonal (row, col) targets of one sweep.
var pairs = [3][2]int{{0, 1}, {0, 2}, {1, 2}}

// SVD decomposes 3x3 matrices into U·diag(W)·Vᵗ with U and V proper
// rotations. The zero value is ready to use with sorting disabled;
// New returns one with descending sort enabled, the common default.
//
// The output accessors are overwritten by each Decompose call; an SVD
// holds no state beyond its latest result and the sort flag.
type SVD struct {
	u, v           rigid.Mat3
	w              r3.Vector
	sortDescending bool
}

// New returns an SVD with descending singular value sorting enabled.
func New() *SVD {
	return &SVD{sortDescending: true}
}

// SetSortDescending toggles reordering of the output so that
// |W.X| ≥ |W.Y| ≥ |W.Z|. When disabled, the Jacobi iteration's natural
// column order is kept.
func (s *SVD) SetSortDescending(sort bool) {
	s.sortDescending = sort
}

// U returns the left factor of the latest decomposition.
func (s *SVD) U() rigid.Mat3 { return s.u }

// V returns the right factor of the latest decomposition. The
// reconstruction uses its transpose: A = U·diag(W)·Vᵗ.
func (s *SVD) V() rigid.Mat3 { return s.v }

// W returns the singular values of the latest decomposition. W.X and
// W.Y are non-negative; W.Z carries the sign of det(A).
func (s *SVD) W() r3.Vector { return s.w }

// Decompose computes U, W, V for a. It always returns true for finite
// input; NaN or Inf entries yield NaN/Inf output rather than an error.
func (s *SVD) Decompose(a rigid.Mat3) bool {
	// Eigen-decompose AᵗA with fixed approximate-Jacobi sweeps.
	ata := a.Transpose().Mul(a)
	v := rigid.Identity3()
	for i := 0; i < sweeps; i++ {
		for _, pq := range pairs {
			jacobi(&ata, &v, pq[0], pq[1])
		}
	}

	// The singular values are the column norms of B = A·V, and U is B
	// with columns normalized.
	b := a.Mul(v)
	var w [3]float64
	for i := 0; i < 3; i++ {
		w[i] = b.Col(i).Norm()
	}

	if s.sortDescending {
		if w[0] < w[1] {
			swapNegate(&b, &v, &w, 0, 1)
		}
		if w[1] < w[2] {
			swapNegate(&b, &v, &w, 1, 2)
		}
		if w[0] < w[1] {
			swapNegate(&b, &v, &w, 0, 1)
		}
	}

	u := normalizeColumns(b, w)

	// Parity fix-up: force both factors proper by flipping the column
	// of the smallest singular value, compensating in W.Z. With
	// det(U) = det(V) = 1 the identity det(A) = W.X·W.Y·W.Z then pins
	// sign(W.Z) to sign(det(A)).
	if v.Det() < 0 {
		negateCol(&v, 2)
		w[2] = -w[2]
	}
	if u.Det() < 0 {
		negateCol(&u, 2)
		w[2] = -w[2]
	}

	s.u, s.v = u, v
	s.w = r3.Vector{X: w[0], Y: w[1], Z: w[2]}
	return true
}

// NearestRotation returns the proper rotation closest to a in the
// Frobenius sense, U·Vᵗ. This is the canonical way to purify the
// rotation part of a noisy or approximate transform.
func NearestRotation(a rigid.Mat3) rigid.Mat3 {
	var s SVD
	s.Decompose(a)
	return s.u.Mul(s.v.Transpose())
}

// jacobi applies one approximate Givens rotation zeroing ata[p][q],
// accumulating the rotation into v.
//
// The half-angle pair (ch, sh) approximates the optimal Jacobi angle;
// when γ·sh² is not dominated by ch² the approximation collapses under
// cancellation and a fixed π/8 half-angle (a π/4 rotation, exact for
// equal diagonal entries) is used instead.
func jacobi(ata, v *rigid.Mat3, p, q int) {
	ch := 2 * (ata[3*p+p] - ata[3*q+q])
	sh := ata[3*p+q]
	if gamma*sh*sh < ch*ch {
		omega := 1 / math.Sqrt(ch*ch+sh*sh)
		ch *= omega
		sh *= omega
	} else {
		ch = cosHalfPi8
		sh = sinHalfPi8
	}
	c := ch*ch - sh*sh
	sn := 2 * sh * ch

	rot := rigid.Identity3()
	rot[3*p+p] = c
	rot[3*p+q] = -sn
	rot[3*q+p] = sn
	rot[3*q+q] = c

	*ata = rot.Transpose().Mul(*ata).Mul(rot)
	*v = v.Mul(rot)
}

// normalizeColumns turns B into U, substituting an orthogonal
// completion for any column whose norm is negligible relative to the
// largest (rank-deficient A). Completions are built orthogonal to the
// well-conditioned columns, so U stays a rotation in every rank case.
func normalizeColumns(b rigid.Mat3, w [3]float64) rigid.Mat3 {
	scale := math.Max(w[0], math.Max(w[1], w[2]))
	if !(scale > 0) {
		// Zero (or non-finite) input: any rotation reconstructs it.
		return propagateNonFinite(b)
	}
	tol := scale * degenerateRel

	var u rigid.Mat3
	var degenerate []int
	for i := 0; i < 3; i++ {
		if w[i] > tol {
			u.SetCol(i, b.Col(i).Mul(1/w[i]))
		} else {
			degenerate = append(degenerate, i)
		}
	}
	// The largest column norm always exceeds tol, so at most two
	// columns need completing.
	switch len(degenerate) {
	case 1:
		i := degenerate[0]
		j, k := (i+1)%3, (i+2)%3
		u.SetCol(i, u.Col(j).Cross(u.Col(k)))
	case 2:
		i, j := degenerate[0], degenerate[1]
		k := 3 - i - j
		u.SetCol(i, anyOrthogonal(u.Col(k)))
		u.SetCol(j, u.Col(k).Cross(u.Col(i)))
	}
	return u
}

// propagateNonFinite returns the identity for an exactly zero B and a
// NaN-filled matrix when B is non-finite, so NaN/Inf inputs surface as
// NaN outputs instead of a fabricated rotation.
func propagateNonFinite(b rigid.Mat3) rigid.Mat3 {
	for _, e := range b {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			nan := math.NaN()
			return rigid.Mat3{nan, nan, nan, nan, nan, nan, nan, nan, nan}
		}
	}
	return rigid.Identity3()
}

// anyOrthogonal returns a unit vector orthogonal to the unit vector n,
// crossing against the basis axis least aligned with it.
func anyOrthogonal(n r3.Vector) r3.Vector {
	axis := r3.Vector{X: 1}
	if math.Abs(n.X) > math.Abs(n.Y) {
		axis = r3.Vector{Y: 1}
		if math.Abs(n.Y) > math.Abs(n.Z) {
			axis = r3.Vector{Z: 1}
		}
	} else if math.Abs(n.Y) > math.Abs(n.Z) {
		axis = r3.Vector{Z: 1}
	}
	return n.Cross(axis).Normalize()
}

// swapNegate exchanges columns i and j of both B and V and negates
// column j afterward. Swapping two columns of a rotation flips its
// determinant; the paired negation restores it, so properness is
// preserved through sorting. Applying identical column operations to B
// and V keeps B = A·V intact.
func swapNegate(b, v *rigid.Mat3, w *[3]float64, i, j int) {
	bi, bj := b.Col(i), b.Col(j)
	b.SetCol(i, bj)
	b.SetCol(j, bi.Mul(-1))
	vi, vj := v.Col(i), v.Col(j)
	v.SetCol(i, vj)
	v.SetCol(j, vi.Mul(-1))
	w[i], w[j] = w[j], w[i]
}

// negateCol flips the sign of column i of m.
func negateCol(m *rigid.Mat3, i int) {
	m.SetCol(i, m.Col(i).Mul(-1))
}
