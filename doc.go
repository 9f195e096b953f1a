// Package spatial is a computational-geometry toolkit for robotics
// software: rigid 3D transforms, reference-frame hierarchies with lazy
// cross-frame transformation, frame-aware geometric values, a
// closed-form 3x3 singular value decomposition, and posed shape
// primitives with bounding-volume support.
//
// What's inside:
//
//   - rigid/        — Mat3 rotation matrices, rigid Transforms,
//     quaternion and axis-angle conversions, pose interpolation
//   - svd3/         — deterministic fixed-sweep 3x3 SVD whose factors
//     are always proper rotations (rotation "purification")
//   - frame/        — reference-frame trees: registration, per-cycle
//     updates, generation-counted transform-to-root caching
//   - framed/       — frame-tagged points, vectors and poses with
//     fail-fast frame-mismatch checking and ChangeFrame
//   - shape/        — box, ramp, sphere, capsule, cylinder, ellipsoid
//     and torus primitives with world-space bounds
//   - shape/sdfcad/ — signed-distance-field bridge (deadsy/sdfx) for
//     distance queries and mesh export
//
// Why:
//
//   - Controller code builds a frame tree mirroring a physical linkage,
//     calls Update once per control cycle, and reads sensor or target
//     values through ChangeFrame without ever composing transforms by
//     hand.
//   - Every cross-frame misuse is a typed, immediate error — never a
//     silently wrong number.
//   - All operations are bounded synchronous computations: the SVD runs
//     a fixed sweep count, the frame walk is bounded by tree depth.
//
// Thread-safety: the frame tree assumes a single writer per control
// cycle; see package frame for the exact contract.
package spatial
