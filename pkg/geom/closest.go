package geom

import "github.com/chazu/geomkit/pkg/vecmath"

// ClosestPointOnLine returns the point on the infinite line through origin
// with unit direction closest to point, and its parameter u along the line
// (unbounded). Always returns Success.
func ClosestPointOnLine[T vecmath.Float](origin, direction, point vecmath.Vec3[T]) (vecmath.Vec3[T], T, Code) {
	assertUnit("line direction", direction)
	u := point.Sub(origin).Dot(direction)
	return origin.Add(direction.Scale(u)), u, Success
}

// ClosestPointOnSegment returns the point on segment s0 s1 closest to point
// and its parameter u in [0, 1]. A zero-length segment yields s0 and u = 0.
// Always returns Success.
func ClosestPointOnSegment[T vecmath.Float](s0, s1, point vecmath.Vec3[T]) (vecmath.Vec3[T], T, Code) {
	axis := s1.Sub(s0)
	axis64 := vecmath.Convert3[float64](axis)

	// Compare the unnormalised projection against the bounds first so the
	// interior case is the only one that divides.
	proj := vecmath.Convert3[float64](point.Sub(s0)).Dot(axis64)
	var u float64
	switch vsq := axis64.LengthSquared(); {
	case proj <= 0 || IsZero(vsq):
		u = 0
	case proj >= vsq:
		u = 1
	default:
		u = proj / vsq
	}
	return s0.Add(axis.Scale(T(u))), T(u), Success
}
