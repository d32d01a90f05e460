package geom

import (
	"testing"

	"github.com/chazu/geomkit/pkg/vecmath"
	"github.com/stretchr/testify/assert"
)

func testIntersectSegmentTriangle[T vecmath.Float](t *testing.T) {
	d := delta[T]()

	type tri [3]vecmath.Vec3[T]
	flat := tri{v3[T](0, -1, 0), v3[T](-1, 1, 0), v3[T](1, 1, 0)}
	flatRev := tri{flat[0], flat[2], flat[1]}
	wall := tri{v3[T](0, 0, -1), v3[T](0, -1, 1), v3[T](0, 1, 1)}
	wallRev := tri{wall[0], wall[2], wall[1]}

	tests := []struct {
		name   string
		tri    tri
		s0, s1 vecmath.Vec3[T]
		code   Code
		point  vecmath.Vec3[T]
	}{
		{"flat down", flat, v3[T](0.5, 0.5, 1), v3[T](0.5, 0.5, -1), Intersecting, v3[T](0.5, 0.5, 0)},
		{"flat up", flat, v3[T](0.5, 0.5, -1), v3[T](0.5, 0.5, 1), Intersecting, v3[T](0.5, 0.5, 0)},
		{"flat reversed winding", flatRev, v3[T](0.5, 0.5, 1), v3[T](0.5, 0.5, -1), Intersecting, v3[T](0.5, 0.5, 0)},
		{"wall", wall, v3[T](2, -0.25, 0.25), v3[T](-2, -0.25, 0.25), Intersecting, v3[T](0, -0.25, 0.25)},
		{"wall other side", wall, v3[T](-2, -0.25, 0.25), v3[T](2, -0.25, 0.25), Intersecting, v3[T](0, -0.25, 0.25)},
		{"wall reversed winding", wallRev, v3[T](2, -0.25, 0.25), v3[T](-2, -0.25, 0.25), Intersecting, v3[T](0, -0.25, 0.25)},
		{"misses", flat, v3[T](10, 0.5, 1), v3[T](10, 0.5, -1), NotIntersecting, vecmath.Vec3[T]{}},
		{"stops short", flat, v3[T](0.5, 0.5, 2), v3[T](0.5, 0.5, 1), NotIntersecting, vecmath.Vec3[T]{}},
		{"starts past", flat, v3[T](0.5, 0.5, -1), v3[T](0.5, 0.5, -2), NotIntersecting, vecmath.Vec3[T]{}},
		{"coplanar", flat, v3[T](-5, 0, 0), v3[T](5, 0, 0), Fail, vecmath.Vec3[T]{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, code := IntersectSegmentTriangle(tt.tri[0], tt.tri[1], tt.tri[2], tt.s0, tt.s1)
			assert.Equal(t, tt.code, code)
			assertVec3(t, tt.point, p, d)
		})
	}
}

func TestIntersectSegmentTriangle(t *testing.T) {
	bothPrecisions(t, testIntersectSegmentTriangle[float32], testIntersectSegmentTriangle[float64])
}

func testIntersectCoplanarSegmentTriangle[T vecmath.Float](t *testing.T) {
	d := delta[T]()
	t0, t1, t2 := v3[T](0, 0, 0), v3[T](4, 0, 0), v3[T](0, 4, 0)

	tests := []struct {
		name   string
		s0, s1 vecmath.Vec3[T]
		code   Code
		p0, p1 vecmath.Vec3[T]
	}{
		{"inside", v3[T](1, 1, 0), v3[T](2, 1, 0), CompletelyInside, v3[T](1, 1, 0), v3[T](2, 1, 0)},
		{"crossing", v3[T](-1, 1, 0), v3[T](5, 1, 0), Intersecting, v3[T](0, 1, 0), v3[T](3, 1, 0)},
		{"leaving", v3[T](1, 1, 0), v3[T](1, -3, 0), Intersecting, v3[T](1, 1, 0), v3[T](1, 0, 0)},
		{"through vertex", v3[T](-2, 2, 0), v3[T](2, -2, 0), Intersecting, v3[T](0, 0, 0), v3[T](0, 0, 0)},
		{"outside", v3[T](5, 5, 0), v3[T](6, 5, 0), NotIntersecting, vecmath.Vec3[T]{}, vecmath.Vec3[T]{}},
		{"parallel outside", v3[T](-1, 0, 0), v3[T](-1, 4, 0), NotIntersecting, vecmath.Vec3[T]{}, vecmath.Vec3[T]{}},
		{"off plane", v3[T](1, 1, 1), v3[T](2, 1, 0), Fail, vecmath.Vec3[T]{}, vecmath.Vec3[T]{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p0, p1, code := IntersectCoplanarSegmentTriangle(t0, t1, t2, tt.s0, tt.s1)
			assert.Equal(t, tt.code, code)
			assertVec3(t, tt.p0, p0, d)
			assertVec3(t, tt.p1, p1, d)
		})
	}

	t.Run("degenerate triangle", func(t *testing.T) {
		_, _, code := IntersectCoplanarSegmentTriangle(t0, t1, v3[T](8, 0, 0), v3[T](1, 0, 0), v3[T](2, 0, 0))
		assert.Equal(t, Fail, code)
	})
}

func TestIntersectCoplanarSegmentTriangle(t *testing.T) {
	bothPrecisions(t, testIntersectCoplanarSegmentTriangle[float32], testIntersectCoplanarSegmentTriangle[float64])
}
