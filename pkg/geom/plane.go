package geom

import "github.com/chazu/geomkit/pkg/vecmath"

// Plane is the set of points P with dot(Normal, P) + Offset == 0. Normal is
// unit length.
type Plane[T vecmath.Float] struct {
	Normal vecmath.Vec3[T] `json:"normal"`
	Offset T               `json:"offset"`
}

// Vec4 returns the plane as (nx, ny, nz, offset).
func (p Plane[T]) Vec4() vecmath.Vec4[T] {
	return vecmath.Vec4[T]{X: p.Normal.X, Y: p.Normal.Y, Z: p.Normal.Z, W: p.Offset}
}

// PlaneFromVec4 is the inverse of Plane.Vec4.
func PlaneFromVec4[T vecmath.Float](v vecmath.Vec4[T]) Plane[T] {
	return Plane[T]{Normal: v.XYZ(), Offset: v.W}
}

// CreatePlane builds the plane through three points, with the normal
// following the right-hand winding p0, p1, p2.
//
// Returns Fail if the points are coincident or collinear.
func CreatePlane[T vecmath.Float](p0, p1, p2 vecmath.Vec3[T]) (Plane[T], Code) {
	w := p1.Sub(p0).Cross(p2.Sub(p0))
	lenSq := w.LengthSquared()
	if IsZero(lenSq) {
		return Plane[T]{}, Fail
	}
	n := w.Scale(1 / vecmath.Sqrt(lenSq))
	return Plane[T]{Normal: n, Offset: -p0.Dot(n)}, Success
}

// CreatePlaneFromPointNormal builds the plane through point with the given
// unit normal. Always returns Success.
func CreatePlaneFromPointNormal[T vecmath.Float](point, normal vecmath.Vec3[T]) (Plane[T], Code) {
	assertUnit("plane normal", normal)
	return Plane[T]{Normal: normal, Offset: -point.Dot(normal)}, Success
}

// SignedDistance returns the distance from the plane to point, positive on
// the side the normal points toward.
func SignedDistance[T vecmath.Float](plane Plane[T], point vecmath.Vec3[T]) T {
	return point.Dot(plane.Normal) + plane.Offset
}

// ClosestPointOnPlane projects point onto the plane. Always returns Success.
func ClosestPointOnPlane[T vecmath.Float](plane Plane[T], point vecmath.Vec3[T]) (vecmath.Vec3[T], Code) {
	d := SignedDistance(plane, point)
	return point.Sub(plane.Normal.Scale(d)), Success
}
