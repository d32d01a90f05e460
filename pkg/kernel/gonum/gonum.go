// Package gonum implements kernel.Backend for gonum's spatial/r3 vectors.
package gonum

import (
	"github.com/chazu/geomkit/pkg/geom"
	"github.com/chazu/geomkit/pkg/kernel"
	"github.com/chazu/geomkit/pkg/vecmath"
	"gonum.org/v1/gonum/spatial/r3"
)

var _ kernel.Backend[float64, r3.Vec] = Backend{}

// Name is the backend name used in configuration.
const Name = "gonum"

// Backend converts between r3.Vec and vecmath.Vec3[float64].
type Backend struct{}

// New returns a kernel over r3 vectors.
func New() *kernel.Kernel[float64, r3.Vec] {
	return kernel.New[float64, r3.Vec](Backend{})
}

func (Backend) Name() string { return Name }

func (Backend) FromVec(v r3.Vec) vecmath.Vec3[float64] {
	return vecmath.Vec3[float64]{X: v.X, Y: v.Y, Z: v.Z}
}

func (Backend) ToVec(v vecmath.Vec3[float64]) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// ClosestPointOnTriangle returns the point on tri closest to p.
func ClosestPointOnTriangle(tri r3.Triangle, p r3.Vec) (r3.Vec, geom.Code) {
	return New().ClosestPointOnTriangle(tri[0], tri[1], tri[2], p)
}

// IntersectSegment finds where segment s0 s1 crosses tri.
func IntersectSegment(tri r3.Triangle, s0, s1 r3.Vec) (r3.Vec, geom.Code) {
	return New().IntersectSegmentTriangle(tri[0], tri[1], tri[2], s0, s1)
}

// Barycentric returns the weights of p with respect to tri.
func Barycentric(tri r3.Triangle, p r3.Vec) (u, v, w float64, code geom.Code) {
	return New().Barycentric(tri[0], tri[1], tri[2], p)
}
