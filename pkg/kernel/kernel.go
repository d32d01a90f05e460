// Package kernel exposes the geom predicates on the vector types of other
// linear algebra libraries. A Backend converts between a library's vector
// type and vecmath.Vec3; Kernel runs every predicate through it, so callers
// keep working in their own types.
package kernel

import (
	"github.com/chazu/geomkit/pkg/geom"
	"github.com/chazu/geomkit/pkg/vecmath"
)

// Backend converts between a native vector type V and vecmath.Vec3[T].
type Backend[T vecmath.Float, V any] interface {
	// Name identifies the backend in configuration and reports.
	Name() string
	FromVec(v V) vecmath.Vec3[T]
	ToVec(v vecmath.Vec3[T]) V
}

// Pair is geom.ClosestPair in native vectors.
type Pair[T vecmath.Float, V any] struct {
	A, B   V
	UA, UB T
}

// Kernel runs geometry predicates on native vectors.
type Kernel[T vecmath.Float, V any] struct {
	b Backend[T, V]
}

// New returns a Kernel over b.
func New[T vecmath.Float, V any](b Backend[T, V]) *Kernel[T, V] {
	return &Kernel[T, V]{b: b}
}

// Name returns the backend name.
func (k *Kernel[T, V]) Name() string { return k.b.Name() }

// Backend returns the underlying backend.
func (k *Kernel[T, V]) Backend() Backend[T, V] { return k.b }

func (k *Kernel[T, V]) in(v V) vecmath.Vec3[T]   { return k.b.FromVec(v) }
func (k *Kernel[T, V]) out(v vecmath.Vec3[T]) V { return k.b.ToVec(v) }

// ----------------------------------------------------------------------------
// Planes

func (k *Kernel[T, V]) CreatePlane(p0, p1, p2 V) (geom.Plane[T], geom.Code) {
	return geom.CreatePlane(k.in(p0), k.in(p1), k.in(p2))
}

func (k *Kernel[T, V]) CreatePlaneFromPointNormal(point, normal V) (geom.Plane[T], geom.Code) {
	return geom.CreatePlaneFromPointNormal(k.in(point), k.in(normal))
}

// PlaneNormal returns the plane normal as a native vector.
func (k *Kernel[T, V]) PlaneNormal(p geom.Plane[T]) V {
	return k.out(p.Normal)
}

func (k *Kernel[T, V]) SignedDistance(p geom.Plane[T], point V) T {
	return geom.SignedDistance(p, k.in(point))
}

func (k *Kernel[T, V]) ClosestPointOnPlane(p geom.Plane[T], point V) (V, geom.Code) {
	cp, code := geom.ClosestPointOnPlane(p, k.in(point))
	return k.out(cp), code
}

// ----------------------------------------------------------------------------
// Closest points

func (k *Kernel[T, V]) ClosestPointOnLine(origin, direction, point V) (V, T, geom.Code) {
	cp, u, code := geom.ClosestPointOnLine(k.in(origin), k.in(direction), k.in(point))
	return k.out(cp), u, code
}

func (k *Kernel[T, V]) ClosestPointOnSegment(s0, s1, point V) (V, T, geom.Code) {
	cp, u, code := geom.ClosestPointOnSegment(k.in(s0), k.in(s1), k.in(point))
	return k.out(cp), u, code
}

func (k *Kernel[T, V]) ClosestPointsSegmentSegment(a0, a1, b0, b1 V) (Pair[T, V], geom.Code) {
	p, code := geom.ClosestPointsSegmentSegment(k.in(a0), k.in(a1), k.in(b0), k.in(b1))
	return Pair[T, V]{A: k.out(p.A), B: k.out(p.B), UA: p.U.X, UB: p.U.Y}, code
}

func (k *Kernel[T, V]) ClosestPointOnTriangle(t0, t1, t2, point V) (V, geom.Code) {
	cp, code := geom.ClosestPointOnTriangle(k.in(t0), k.in(t1), k.in(t2), k.in(point))
	return k.out(cp), code
}

// ----------------------------------------------------------------------------
// Triangles

func (k *Kernel[T, V]) Barycentric(t0, t1, t2, p V) (u, v, w T, code geom.Code) {
	return geom.Barycentric(k.in(t0), k.in(t1), k.in(t2), k.in(p))
}

func (k *Kernel[T, V]) IntersectSegmentTriangle(t0, t1, t2, s0, s1 V) (V, geom.Code) {
	p, code := geom.IntersectSegmentTriangle(k.in(t0), k.in(t1), k.in(t2), k.in(s0), k.in(s1))
	return k.out(p), code
}

func (k *Kernel[T, V]) IntersectCoplanarSegmentTriangle(t0, t1, t2, s0, s1 V) (V, V, geom.Code) {
	p0, p1, code := geom.IntersectCoplanarSegmentTriangle(k.in(t0), k.in(t1), k.in(t2), k.in(s0), k.in(s1))
	return k.out(p0), k.out(p1), code
}

func (k *Kernel[T, V]) TriangleArea(t0, t1, t2 V) T {
	return geom.TriangleArea(k.in(t0), k.in(t1), k.in(t2))
}
