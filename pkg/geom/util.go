package geom

import "github.com/chazu/geomkit/pkg/vecmath"

// SortPair returns a and b in ascending order.
func SortPair[T vecmath.Float](a, b T) (lo, hi T) {
	if b < a {
		return b, a
	}
	return a, b
}

// SortLowToHigh returns the components of v sorted ascending.
func SortLowToHigh[T vecmath.Float](v vecmath.Vec3[T]) vecmath.Vec3[T] {
	v.X, v.Y = SortPair(v.X, v.Y)
	v.X, v.Z = SortPair(v.X, v.Z)
	v.Y, v.Z = SortPair(v.Y, v.Z)
	return v
}

// Sum returns the sum of the components of v.
func Sum[T vecmath.Float](v vecmath.Vec3[T]) T {
	return v.X + v.Y + v.Z
}

// ScalarTripleProduct returns dot(cross(u, v), w), the signed volume of the
// parallelepiped spanned by u, v and w.
func ScalarTripleProduct[T vecmath.Float](u, v, w vecmath.Vec3[T]) T {
	return u.Cross(v).Dot(w)
}

// ----------------------------------------------------------------------------
// Triangle measures

// TriangleSideLengths returns (|t0-t1|, |t0-t2|, |t1-t2|).
func TriangleSideLengths[T vecmath.Float](t0, t1, t2 vecmath.Vec3[T]) vecmath.Vec3[T] {
	return vecmath.Vec3[T]{
		X: t0.Distance(t1),
		Y: t0.Distance(t2),
		Z: t1.Distance(t2),
	}
}

// TriangleSideLengths2 is TriangleSideLengths for a triangle in the plane.
func TriangleSideLengths2[T vecmath.Float](t0, t1, t2 vecmath.Vec2[T]) vecmath.Vec3[T] {
	return vecmath.Vec3[T]{
		X: t0.Sub(t1).Length(),
		Y: t0.Sub(t2).Length(),
		Z: t1.Sub(t2).Length(),
	}
}

// TriangleAreaFromSides computes the area from side lengths with Heron's
// formula. Rounding can push a factor of the product below zero for
// slivers; those return 0.
func TriangleAreaFromSides[T vecmath.Float](sides vecmath.Vec3[T]) T {
	p := Sum(sides) / 2
	a := p - sides.X
	if a <= 0 {
		return 0
	}
	b := p - sides.Y
	if b <= 0 {
		return 0
	}
	c := p - sides.Z
	if c <= 0 {
		return 0
	}
	return vecmath.Sqrt(p * a * b * c)
}

// TriangleArea returns the area of the triangle t0 t1 t2.
func TriangleArea[T vecmath.Float](t0, t1, t2 vecmath.Vec3[T]) T {
	return TriangleAreaFromSides(TriangleSideLengths(t0, t1, t2))
}

// TriangleArea2 returns the area of a triangle in the plane.
func TriangleArea2[T vecmath.Float](t0, t1, t2 vecmath.Vec2[T]) T {
	return TriangleAreaFromSides(TriangleSideLengths2(t0, t1, t2))
}
