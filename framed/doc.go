// Package framed provides geometric values tagged with the reference
// frame their coordinates are expressed in: Point3, Vector3, Point2
// and Pose.
//
// What:
//
//   - Every binary operation between two framed values first checks
//     that both reference the same *frame.Frame — pointer identity,
//     not name or coordinate equality — and fails fast with
//     ErrFrameMismatch otherwise. There is no silent coercion.
//   - ChangeFrame asks the frame tree for the transform between the
//     current and target frame, applies it to the coordinates and
//     reassigns the frame reference in one step; no state is
//     observable where coordinates and frame disagree.
//   - SetIncludingFrame rebinds coordinates and frame wholesale
//     without transforming — initialization, not a physical move.
//   - SetMatchingFrame assigns from a source expressed in a different
//     frame: copy the source (coordinates and frame), then ChangeFrame
//     back to the original frame. Copy-then-transform, never
//     transform-then-copy.
//   - EpsilonEquals requires frame identity and coordinate agreement;
//     CoordinatesEqual compares coordinates only, for callers that
//     already verified frames.
//
// Why:
//
//   - Mixing coordinates from different frames is the classic silent
//     robotics bug; tagging values and failing fast turns it into an
//     immediate typed error.
//
// A framed value is always bound to exactly one frame — there is no
// detached state. Values are owned by their holder and mutated in
// place; they are not safe for concurrent use, matching the frame
// tree's single-writer model.
//
// Errors: ErrFrameMismatch, plus the frame package's ErrRootMismatch
// and ErrRemoved surfacing through ChangeFrame and SetMatchingFrame.
package framed
