// Package shape provides posed solid primitives (box, ramp, sphere,
// capsule, cylinder, ellipsoid, torus) with closed-form world-space
// axis-aligned bounding boxes, plus principal-axis box fitting for
// point clouds.
//
// Each primitive is a value type: a local geometry description plus a
// rigid pose placing it in some working frame. Bounds() returns the
// exact axis-aligned bounding box of the posed solid (no sampling, no
// conservative inflation), which is what broad-phase collision and
// workspace checks consume.
//
// PrincipalBox fits an oriented box to a point cloud by
// eigen-decomposing the covariance with the svd3 engine, the standard
// way a proper rotation is extracted from a noisy symmetric matrix.
//
// All functions here are pure and O(1) per shape (O(n) for the point
// cloud fit).
package shape
