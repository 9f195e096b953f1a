// Package rigid provides the fixed-size rotation and rigid-transform
// primitives the rest of the module is built on.
//
// What:
//
//   - Mat3: a 3x3 matrix in row-major order, with multiply, transpose,
//     determinant and vector application.
//   - Transform: a rigid 3D transform (proper rotation + translation)
//     with composition, inversion and point/vector application.
//   - R4AA: an axis-angle orientation, plus conversions between axis
//     angles, unit quaternions (gonum.org/v1/gonum/num/quat) and
//     rotation matrices.
//   - Interpolate: pose interpolation (normalized quaternion lerp for
//     the rotation, linear lerp for the translation).
//
// Why:
//
//   - Frame trees compose and invert many small rigid transforms per
//     control cycle; fixed-size value types keep that allocation-free.
//   - Quaternions are the working orientation representation; matrices
//     are the working application representation. Conversions are
//     closed-form and total.
//
// Conventions:
//
//   - Mat3 is row-major: m[3*r+c] is row r, column c.
//   - Transform maps local coordinates to parent coordinates:
//     parent = Rot·local + Trans.
//   - a.Compose(b) applies b first, then a.
//
// Complexity: every operation in this package is O(1).
package rigid
