package shape

import (
	"math"

	"github.com/golang/geo/r3"
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max r3.Vector
}

// BoundsOf returns the tight bounds of a set of points. An empty set
// yields an inverted, unusable box; callers guard against that.
func BoundsOf(points []r3.Vector) Bounds {
	b := Bounds{
		Min: r3.Vector{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: r3.Vector{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
	for _, p := range points {
		b = b.Stretch(p)
	}
	return b
}

// Stretch grows the bounds to include p.
func (b Bounds) Stretch(p r3.Vector) Bounds {
	return Bounds{
		Min: r3.Vector{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: r3.Vector{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

// Union returns the smallest bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return b.Stretch(o.Min).Stretch(o.Max)
}

// Expand grows the bounds by margin on every side.
func (b Bounds) Expand(margin float64) Bounds {
	m := r3.Vector{X: margin, Y: margin, Z: margin}
	return Bounds{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// Center returns the box center.
func (b Bounds) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box edge lengths.
func (b Bounds) Size() r3.Vector {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside the (closed) box.
func (b Bounds) Contains(p r3.Vector) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
