package engine

import (
	"github.com/chazu/geomkit/pkg/geom"
	"github.com/chazu/geomkit/pkg/kernel"
	"github.com/chazu/geomkit/pkg/scene"
	"github.com/chazu/geomkit/pkg/vecmath"
)

// queryRunner evaluates predicates on scene coordinates. Implementations
// convert to their working precision and vector type and back, so results
// carry the rounding of the configured precision.
type queryRunner interface {
	backend() string
	closestPointOnLine(l scene.LineData, p scene.Vec3) (scene.Vec3, float64, geom.Code)
	closestPointOnSegment(s scene.SegmentData, p scene.Vec3) (scene.Vec3, float64, geom.Code)
	closestPointsSegments(a, b scene.SegmentData) (scene.Vec3, scene.Vec3, float64, float64, geom.Code)
	closestPointOnPlane(pl scene.PlaneData, p scene.Vec3) (scene.Vec3, geom.Code)
	signedDistance(pl scene.PlaneData, p scene.Vec3) float64
	closestPointOnTriangle(t scene.TriangleData, p scene.Vec3) (scene.Vec3, geom.Code)
	barycentric(t scene.TriangleData, p scene.Vec3) (u, v, w float64, code geom.Code)
	intersectSegmentTriangle(s scene.SegmentData, t scene.TriangleData) (scene.Vec3, geom.Code)
	intersectCoplanar(s scene.SegmentData, t scene.TriangleData) (scene.Vec3, scene.Vec3, geom.Code)
	triangleArea(t scene.TriangleData) float64
	createPlane(p0, p1, p2 scene.Vec3) (scene.PlaneData, geom.Code)
}

type runner[T vecmath.Float, V any] struct {
	k *kernel.Kernel[T, V]
}

func (r runner[T, V]) to(p scene.Vec3) V {
	return r.k.Backend().ToVec(vecmath.Convert3[T](p))
}

func (r runner[T, V]) from(v V) scene.Vec3 {
	return vecmath.Convert3[float64](r.k.Backend().FromVec(v))
}

func (r runner[T, V]) plane(pl scene.PlaneData) geom.Plane[T] {
	return geom.Plane[T]{Normal: vecmath.Convert3[T](pl.Normal), Offset: T(pl.Offset)}
}

func (r runner[T, V]) backend() string { return r.k.Name() }

func (r runner[T, V]) closestPointOnLine(l scene.LineData, p scene.Vec3) (scene.Vec3, float64, geom.Code) {
	cp, u, code := r.k.ClosestPointOnLine(r.to(l.Origin), r.to(l.Direction), r.to(p))
	return r.from(cp), float64(u), code
}

func (r runner[T, V]) closestPointOnSegment(s scene.SegmentData, p scene.Vec3) (scene.Vec3, float64, geom.Code) {
	cp, u, code := r.k.ClosestPointOnSegment(r.to(s.Start), r.to(s.End), r.to(p))
	return r.from(cp), float64(u), code
}

func (r runner[T, V]) closestPointsSegments(a, b scene.SegmentData) (scene.Vec3, scene.Vec3, float64, float64, geom.Code) {
	pair, code := r.k.ClosestPointsSegmentSegment(r.to(a.Start), r.to(a.End), r.to(b.Start), r.to(b.End))
	return r.from(pair.A), r.from(pair.B), float64(pair.UA), float64(pair.UB), code
}

func (r runner[T, V]) closestPointOnPlane(pl scene.PlaneData, p scene.Vec3) (scene.Vec3, geom.Code) {
	cp, code := r.k.ClosestPointOnPlane(r.plane(pl), r.to(p))
	return r.from(cp), code
}

func (r runner[T, V]) signedDistance(pl scene.PlaneData, p scene.Vec3) float64 {
	return float64(r.k.SignedDistance(r.plane(pl), r.to(p)))
}

func (r runner[T, V]) closestPointOnTriangle(t scene.TriangleData, p scene.Vec3) (scene.Vec3, geom.Code) {
	cp, code := r.k.ClosestPointOnTriangle(r.to(t.V0), r.to(t.V1), r.to(t.V2), r.to(p))
	return r.from(cp), code
}

func (r runner[T, V]) barycentric(t scene.TriangleData, p scene.Vec3) (u, v, w float64, code geom.Code) {
	tu, tv, tw, code := r.k.Barycentric(r.to(t.V0), r.to(t.V1), r.to(t.V2), r.to(p))
	return float64(tu), float64(tv), float64(tw), code
}

func (r runner[T, V]) intersectSegmentTriangle(s scene.SegmentData, t scene.TriangleData) (scene.Vec3, geom.Code) {
	p, code := r.k.IntersectSegmentTriangle(r.to(t.V0), r.to(t.V1), r.to(t.V2), r.to(s.Start), r.to(s.End))
	return r.from(p), code
}

func (r runner[T, V]) intersectCoplanar(s scene.SegmentData, t scene.TriangleData) (scene.Vec3, scene.Vec3, geom.Code) {
	p0, p1, code := r.k.IntersectCoplanarSegmentTriangle(r.to(t.V0), r.to(t.V1), r.to(t.V2), r.to(s.Start), r.to(s.End))
	return r.from(p0), r.from(p1), code
}

func (r runner[T, V]) triangleArea(t scene.TriangleData) float64 {
	return float64(r.k.TriangleArea(r.to(t.V0), r.to(t.V1), r.to(t.V2)))
}

func (r runner[T, V]) createPlane(p0, p1, p2 scene.Vec3) (scene.PlaneData, geom.Code) {
	pl, code := r.k.CreatePlane(r.to(p0), r.to(p1), r.to(p2))
	return scene.PlaneData{Normal: vecmath.Convert3[float64](pl.Normal), Offset: float64(pl.Offset)}, code
}
