// Package svd3 implements a closed-form singular value decomposition
// specialized to 3x3 matrices, A = U·diag(W)·Vᵗ.
//
// What:
//
//   - Decompose runs a fixed number of approximate Jacobi sweeps on
//     AᵗA to obtain V, then recovers U and the singular values from
//     B = A·V. It never fails for finite input.
//   - U and V are always proper rotations (determinant +1). To make
//     that possible the third singular value W.Z carries the sign of
//     det(A) — a deliberate deviation from the textbook convention
//     where all singular values are non-negative.
//   - With descending sort enabled (the default), |W.X| ≥ |W.Y| ≥ |W.Z|.
//     Column pairs are swapped with a negation so the factors stay
//     proper rotations.
//   - NearestRotation projects an arbitrary matrix onto the closest
//     proper rotation, U·Vᵗ.
//
// Why:
//
//   - Transform composition and frame alignment accumulate numerical
//     drift; extracting the rotation part of a noisy matrix needs an
//     SVD whose factors are guaranteed rotations, not just orthogonal.
//   - The sweep count is fixed rather than convergence-driven, trading
//     a sliver of accuracy for deterministic, branch-predictable
//     running time in real-time control loops.
//
// Numeric edge cases (handled internally, never surfaced as errors):
// near-zero columns of B (rank-deficient input) are replaced by an
// orthogonal completion; coincident singular values leave U and V
// non-unique — only the reconstruction A = U·diag(W)·Vᵗ and the values
// and signs of W are guaranteed. NaN or Inf inputs propagate NaN/Inf
// outputs.
//
// Complexity: O(1) — 18 Jacobi rotations plus constant-cost fix-ups.
package svd3
