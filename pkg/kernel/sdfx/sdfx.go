// Package sdfx implements kernel.Backend for the vector and triangle types
// of the github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"github.com/chazu/geomkit/pkg/geom"
	"github.com/chazu/geomkit/pkg/kernel"
	"github.com/chazu/geomkit/pkg/vecmath"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Backend[float64, v3.Vec] = Backend{}

// Name is the backend name used in configuration.
const Name = "sdfx"

// Backend converts between v3.Vec and vecmath.Vec3[float64].
type Backend struct{}

// New returns a kernel over sdfx vectors.
func New() *kernel.Kernel[float64, v3.Vec] {
	return kernel.New[float64, v3.Vec](Backend{})
}

func (Backend) Name() string { return Name }

func (Backend) FromVec(v v3.Vec) vecmath.Vec3[float64] {
	return vecmath.Vec3[float64]{X: v.X, Y: v.Y, Z: v.Z}
}

func (Backend) ToVec(v vecmath.Vec3[float64]) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// ----------------------------------------------------------------------------
// Triangle3 helpers

// ClosestPointOnTriangle returns the point on tri closest to p.
func ClosestPointOnTriangle(tri *sdf.Triangle3, p v3.Vec) (v3.Vec, geom.Code) {
	return New().ClosestPointOnTriangle(tri[0], tri[1], tri[2], p)
}

// IntersectSegment finds where segment s0 s1 crosses tri.
func IntersectSegment(tri *sdf.Triangle3, s0, s1 v3.Vec) (v3.Vec, geom.Code) {
	return New().IntersectSegmentTriangle(tri[0], tri[1], tri[2], s0, s1)
}

// Plane returns the plane of tri, or Fail for a degenerate triangle.
func Plane(tri *sdf.Triangle3) (geom.Plane[float64], geom.Code) {
	return New().CreatePlane(tri[0], tri[1], tri[2])
}

// Area returns the area of tri.
func Area(tri *sdf.Triangle3) float64 {
	return New().TriangleArea(tri[0], tri[1], tri[2])
}
