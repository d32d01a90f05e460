package vecmath

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the scalar constraint for every vector and predicate in geomkit.
type Float interface {
	constraints.Float
}

// SinglePrecision reports whether T is a 32-bit float.
func SinglePrecision[T Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// Sqrt returns the square root of v, computed in the precision of T.
func Sqrt[T Float](v T) T {
	if SinglePrecision[T]() {
		return T(math32.Sqrt(float32(v)))
	}
	return T(math.Sqrt(float64(v)))
}

// Abs returns |v|.
func Abs[T Float](v T) T {
	if SinglePrecision[T]() {
		return T(math32.Abs(float32(v)))
	}
	return T(math.Abs(float64(v)))
}

// Min returns the smaller of a and b.
func Min[T Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to [lo, hi].
func Clamp[T Float](v, lo, hi T) T {
	return Max(lo, Min(v, hi))
}
