package shape

import (
	"errors"

	"github.com/golang/geo/r3"

	"github.com/geomech/spatial/rigid"
	"github.com/geomech/spatial/svd3"
)

// ErrNoPoints indicates a fit was requested for an empty point cloud.
var ErrNoPoints = errors.New("shape: point cloud is empty")

// FitOptions tunes point-cloud box fitting.
type FitOptions struct {
	// Margin is extra clearance added to every side of the fitted box.
	Margin float64
}

// DefaultFitOptions returns a tight fit with no margin.
func DefaultFitOptions() FitOptions {
	return FitOptions{}
}

// PrincipalBox fits an oriented box to a point cloud with the default
// options.
func PrincipalBox(points []r3.Vector) (Box, error) {
	return PrincipalBoxWith(points, DefaultFitOptions())
}

// PrincipalBoxWith fits an oriented box to a point cloud: the
// orientation comes from the eigenvectors of the covariance matrix
// (extracted as a proper rotation by the svd3 engine), and the extents
// from the tight bounds of the points in that basis, grown by
// opts.Margin on every side. Every input point lies inside the
// returned box.
func PrincipalBoxWith(points []r3.Vector, opts FitOptions) (Box, error) {
	if len(points) == 0 {
		return Box{}, ErrNoPoints
	}

	centroid := r3.Vector{}
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1 / float64(len(points)))

	var cov rigid.Mat3
	for _, p := range points {
		d := p.Sub(centroid)
		cov[0] += d.X * d.X
		cov[1] += d.X * d.Y
		cov[2] += d.X * d.Z
		cov[4] += d.Y * d.Y
		cov[5] += d.Y * d.Z
		cov[8] += d.Z * d.Z
	}
	cov[3], cov[6], cov[7] = cov[1], cov[2], cov[5]

	// For a symmetric PSD matrix, U holds the principal axes; svd3
	// guarantees it is a proper rotation even for degenerate clouds
	// (collinear or coplanar points).
	s := svd3.New()
	s.Decompose(cov)
	rot := s.U()

	// Tight bounds in the principal basis.
	inv := rot.Transpose()
	local := make([]r3.Vector, len(points))
	for i, p := range points {
		local[i] = inv.Apply(p.Sub(centroid))
	}
	lb := BoundsOf(local)
	if opts.Margin > 0 {
		lb = lb.Expand(opts.Margin)
	}

	return Box{
		P: rigid.Transform{
			Rot:   rot,
			Trans: centroid.Add(rot.Apply(lb.Center())),
		},
		Size: lb.Size(),
	}, nil
}

// PurifyPose replaces a transform's rotation with the nearest proper
// rotation. Composition chains drift; purifying before handing a pose
// to geometry backends keeps them exact.
func PurifyPose(t rigid.Transform) rigid.Transform {
	if t.Rot.IsRotation(1e-12) {
		return t
	}
	return rigid.Transform{Rot: svd3.NearestRotation(t.Rot), Trans: t.Trans}
}
