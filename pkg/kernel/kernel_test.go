package kernel

import (
	"math"
	"testing"

	"github.com/chazu/geomkit/pkg/geom"
	"github.com/chazu/geomkit/pkg/vecmath"
)

// --- Stub backend over plain arrays ---

// arrayBackend proves Backend is satisfiable by a type with no methods of
// its own.
type arrayBackend struct{}

func (arrayBackend) Name() string { return "array" }

func (arrayBackend) FromVec(v [3]float64) vecmath.Vec3[float64] {
	return vecmath.V3(v[0], v[1], v[2])
}

func (arrayBackend) ToVec(v vecmath.Vec3[float64]) [3]float64 {
	return v.Array()
}

var _ Backend[float64, [3]float64] = arrayBackend{}

func near(a, b [3]float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestKernelName(t *testing.T) {
	if got := New[float64, [3]float64](arrayBackend{}).Name(); got != "array" {
		t.Errorf("Name() = %q, want %q", got, "array")
	}
	if got := New[float32, vecmath.Vec3[float32]](Native[float32]{}).Name(); got != NativeName {
		t.Errorf("Name() = %q, want %q", got, NativeName)
	}
}

func TestKernelClosestPoints(t *testing.T) {
	k := New[float64, [3]float64](arrayBackend{})

	t.Run("segment", func(t *testing.T) {
		cp, u, code := k.ClosestPointOnSegment([3]float64{1, 1, 1}, [3]float64{3, 1, 1}, [3]float64{2, 10, 42})
		if code != geom.Success || u != 0.5 || !near(cp, [3]float64{2, 1, 1}) {
			t.Errorf("ClosestPointOnSegment = %v, %v, %v", cp, u, code)
		}
	})

	t.Run("line", func(t *testing.T) {
		cp, u, code := k.ClosestPointOnLine([3]float64{1, 1, 1}, [3]float64{1, 0, 0}, [3]float64{-3, 1, 2})
		if code != geom.Success || u != -4 || !near(cp, [3]float64{-3, 1, 1}) {
			t.Errorf("ClosestPointOnLine = %v, %v, %v", cp, u, code)
		}
	})

	t.Run("segment segment overlap", func(t *testing.T) {
		p, code := k.ClosestPointsSegmentSegment(
			[3]float64{2, 0, 0}, [3]float64{6, 0, 0},
			[3]float64{4, -3, 4}, [3]float64{10, -3, 4})
		if code != geom.Overlapping {
			t.Fatalf("code = %v, want overlapping", code)
		}
		if p.UA != 0.5 || p.UB != 0 {
			t.Errorf("params = (%v, %v), want (0.5, 0)", p.UA, p.UB)
		}
		if !near(p.A, [3]float64{4, 0, 0}) || !near(p.B, [3]float64{4, -3, 4}) {
			t.Errorf("points = %v, %v", p.A, p.B)
		}
	})

	t.Run("triangle", func(t *testing.T) {
		cp, code := k.ClosestPointOnTriangle([3]float64{1, -1, -1}, [3]float64{1, 1, -1}, [3]float64{1, 0, 10}, [3]float64{2, 0, 0.5})
		if code != geom.Success || !near(cp, [3]float64{1, 0, 0.5}) {
			t.Errorf("ClosestPointOnTriangle = %v, %v", cp, code)
		}
	})
}

func TestKernelPlanes(t *testing.T) {
	k := New[float64, [3]float64](arrayBackend{})

	p, code := k.CreatePlane([3]float64{1, 0, 0}, [3]float64{1, 1, 0}, [3]float64{1, 1, 1})
	if code != geom.Success {
		t.Fatalf("CreatePlane code = %v", code)
	}
	if n := k.PlaneNormal(p); !near(n, [3]float64{1, 0, 0}) {
		t.Errorf("normal = %v, want [1 0 0]", n)
	}
	if d := k.SignedDistance(p, [3]float64{4, 2, 2}); d != 3 {
		t.Errorf("SignedDistance = %v, want 3", d)
	}
	cp, _ := k.ClosestPointOnPlane(p, [3]float64{4, 2, 2})
	if !near(cp, [3]float64{1, 2, 2}) {
		t.Errorf("ClosestPointOnPlane = %v", cp)
	}

	if _, code := k.CreatePlane([3]float64{1, 0, 0}, [3]float64{2, 0, 0}, [3]float64{3, 0, 0}); code != geom.Fail {
		t.Errorf("collinear CreatePlane code = %v, want fail", code)
	}

	q, _ := k.CreatePlaneFromPointNormal([3]float64{0, 0, 5}, [3]float64{0, 0, 1})
	if q.Offset != -5 {
		t.Errorf("offset = %v, want -5", q.Offset)
	}
}

func TestKernelTriangles(t *testing.T) {
	k := New[float32, vecmath.Vec3[float32]](Native[float32]{})
	t0 := vecmath.V3[float32](0, -1, 0)
	t1 := vecmath.V3[float32](-1, 1, 0)
	t2 := vecmath.V3[float32](1, 1, 0)

	p, code := k.IntersectSegmentTriangle(t0, t1, t2, vecmath.V3[float32](0.5, 0.5, 1), vecmath.V3[float32](0.5, 0.5, -1))
	if code != geom.Intersecting || !geom.AreEqualVec3(p, vecmath.V3[float32](0.5, 0.5, 0)) {
		t.Errorf("IntersectSegmentTriangle = %v, %v", p, code)
	}

	u, v, w, code := k.Barycentric(t0, t1, t2, t0)
	if code != geom.Success || u != 1 || v != 0 || w != 0 {
		t.Errorf("Barycentric(t0) = %v %v %v %v", u, v, w, code)
	}

	if a := k.TriangleArea(t0, t1, t2); math.Abs(float64(a)-2) > 1e-5 {
		t.Errorf("TriangleArea = %v, want 2", a)
	}

	p0, p1, code := k.IntersectCoplanarSegmentTriangle(t0, t1, t2, vecmath.V3[float32](-2, 0.5, 0), vecmath.V3[float32](2, 0.5, 0))
	if code != geom.Intersecting {
		t.Fatalf("IntersectCoplanarSegmentTriangle code = %v", code)
	}
	if math.Abs(float64(p0.X)+0.75) > 1e-5 || math.Abs(float64(p1.X)-0.75) > 1e-5 {
		t.Errorf("clipped to %v %v, want x in [-0.75, 0.75]", p0, p1)
	}
}
