package geom

import "github.com/chazu/geomkit/pkg/vecmath"

const (
	epsilon32 = 1e-6
	epsilon64 = 1e-12
)

// Epsilon returns the zero tolerance for T: 1e-6 for float32, 1e-12 for
// float64.
func Epsilon[T vecmath.Float]() T {
	if vecmath.SinglePrecision[T]() {
		return T(epsilon32)
	}
	return T(epsilon64)
}

// IsZero reports whether v is within Epsilon of zero. Built with the
// exactmath tag it reports v == 0.
func IsZero[T vecmath.Float](v T) bool {
	if exactMath {
		return v == 0
	}
	return vecmath.Abs(v) < Epsilon[T]()
}

// AreEqual reports whether a and b differ by a value IsZero accepts.
func AreEqual[T vecmath.Float](a, b T) bool {
	return IsZero(a - b)
}

// AreEqualVec3 compares two vectors component-wise with AreEqual.
func AreEqualVec3[T vecmath.Float](a, b vecmath.Vec3[T]) bool {
	return AreEqual(a.X, b.X) && AreEqual(a.Y, b.Y) && AreEqual(a.Z, b.Z)
}

// isUnit is used by the geomdebug precondition checks. It uses a looser
// bound than IsZero since callers usually normalise in their own precision.
func isUnit[T vecmath.Float](v vecmath.Vec3[T]) bool {
	return vecmath.Abs(v.LengthSquared()-1) < 1e-4
}

func assertUnit[T vecmath.Float](what string, v vecmath.Vec3[T]) {
	if debugAsserts && !isUnit(v) {
		panic("geom: " + what + " is not unit length: " + v.String())
	}
}
