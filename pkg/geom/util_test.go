package geom

import (
	"testing"

	"github.com/chazu/geomkit/pkg/vecmath"
	"github.com/stretchr/testify/assert"
)

func testUtilities[T vecmath.Float](t *testing.T) {
	d := delta[T]()

	lo, hi := SortPair[T](3, -2)
	assert.Equal(t, T(-2), lo)
	assert.Equal(t, T(3), hi)

	assert.Equal(t, v3[T](-1, 2, 5), SortLowToHigh(v3[T](5, -1, 2)))
	assert.Equal(t, v3[T](1, 2, 3), SortLowToHigh(v3[T](3, 2, 1)))
	assert.Equal(t, T(6), Sum(v3[T](1, 2, 3)))

	x, y, z := v3[T](1, 0, 0), v3[T](0, 1, 0), v3[T](0, 0, 1)
	assert.Equal(t, T(1), ScalarTripleProduct(x, y, z))
	assert.Equal(t, T(-1), ScalarTripleProduct(y, x, z))
	assert.Equal(t, T(0), ScalarTripleProduct(x, x, z))

	sides := TriangleSideLengths(v3[T](0, 0, 0), v3[T](3, 0, 0), v3[T](0, 4, 0))
	assertVec3(t, v3[T](3, 4, 5), sides, d)
	assert.InDelta(t, 6, float64(TriangleAreaFromSides(sides)), 1e-4)
	assert.InDelta(t, 6, float64(TriangleArea(v3[T](0, 0, 7), v3[T](3, 0, 7), v3[T](0, 4, 7))), 1e-4)

	s2 := TriangleSideLengths2(vecmath.V2[T](0, 0), vecmath.V2[T](3, 0), vecmath.V2[T](0, 4))
	assertVec3(t, v3[T](3, 4, 5), s2, d)
	assert.InDelta(t, 6, float64(TriangleArea2(vecmath.V2[T](0, 0), vecmath.V2[T](3, 0), vecmath.V2[T](0, 4))), 1e-4)

	assert.Equal(t, T(0), TriangleArea(v3[T](0, 0, 0), v3[T](1, 0, 0), v3[T](2, 0, 0)))
	assert.Equal(t, T(0), TriangleAreaFromSides(v3[T](1, 1, 5)))
}

func TestUtilities(t *testing.T) {
	bothPrecisions(t, testUtilities[float32], testUtilities[float64])
}
