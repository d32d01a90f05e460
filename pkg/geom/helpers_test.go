package geom

import (
	"testing"

	"github.com/chazu/geomkit/pkg/vecmath"
	"github.com/stretchr/testify/assert"
)

// bothPrecisions runs fn once per scalar type.
func bothPrecisions(t *testing.T, fn32 func(t *testing.T), fn64 func(t *testing.T)) {
	t.Helper()
	t.Run("float32", fn32)
	t.Run("float64", fn64)
}

func delta[T vecmath.Float]() float64 {
	if vecmath.SinglePrecision[T]() {
		return 1e-5
	}
	return 1e-12
}

func v3[T vecmath.Float](x, y, z float64) vecmath.Vec3[T] {
	return vecmath.Vec3[T]{X: T(x), Y: T(y), Z: T(z)}
}

func assertVec3[T vecmath.Float](t *testing.T, want, got vecmath.Vec3[T], d float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, float64(want.X), float64(got.X), d, msgAndArgs...)
	assert.InDelta(t, float64(want.Y), float64(got.Y), d, msgAndArgs...)
	assert.InDelta(t, float64(want.Z), float64(got.Z), d, msgAndArgs...)
}
