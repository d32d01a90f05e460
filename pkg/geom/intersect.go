package geom

import "github.com/chazu/geomkit/pkg/vecmath"

// IntersectSegmentTriangle finds the point where segment s0 s1 crosses
// triangle t0 t1 t2, using signed tetrahedron volumes (Ericson 5.3.4).
//
// Returns Intersecting with the crossing point, NotIntersecting when the
// segment misses the triangle or stops short of its plane, and Fail when the
// segment lies in the triangle's plane. Use
// IntersectCoplanarSegmentTriangle for that case.
func IntersectSegmentTriangle[T vecmath.Float](t0, t1, t2, s0, s1 vecmath.Vec3[T]) (vecmath.Vec3[T], Code) {
	var none vecmath.Vec3[T]

	s0s1 := s1.Sub(s0)
	s0t0 := t0.Sub(s0)
	s0t1 := t1.Sub(s0)
	s0t2 := t2.Sub(s0)

	u := ScalarTripleProduct(s0s1, s0t2, s0t1)
	v := ScalarTripleProduct(s0s1, s0t0, s0t2)
	w := ScalarTripleProduct(s0s1, s0t1, s0t0)

	if IsZero(u) && IsZero(v) && IsZero(w) {
		return none, Fail
	}

	sign := 0
	if u < 0 {
		sign |= 1
	}
	if v < 0 {
		sign |= 2
	}
	if w < 0 {
		sign |= 4
	}
	if sign > 0 && sign < 7 {
		return none, NotIntersecting
	}

	sum := u + v + w
	if IsZero(sum) {
		return none, Fail
	}
	u, v, w = u/sum, v/sum, w/sum
	p := t0.Scale(u).Add(t1.Scale(v)).Add(t2.Scale(w))

	// The volumes locate the crossing on the line; keep it on the segment.
	lenSq := s0s1.LengthSquared()
	if IsZero(lenSq) {
		return none, Fail
	}
	t := p.Sub(s0).Dot(s0s1) / lenSq
	if t < -Epsilon[T]() || t > 1+Epsilon[T]() {
		return none, NotIntersecting
	}
	return p, Intersecting
}

// IntersectCoplanarSegmentTriangle clips segment s0 s1, which must lie in
// the plane of triangle t0 t1 t2, against the triangle's edges (Cyrus-Beck).
// The clipped segment is returned as p0 p1; p0 == p1 when the segment only
// touches an edge or vertex.
//
// Returns CompletelyInside when nothing was clipped, Intersecting when part
// of the segment was clipped, NotIntersecting when all of it was, and Fail
// when the triangle is degenerate or the segment is off its plane.
func IntersectCoplanarSegmentTriangle[T vecmath.Float](t0, t1, t2, s0, s1 vecmath.Vec3[T]) (p0, p1 vecmath.Vec3[T], code Code) {
	plane, code := CreatePlane(t0, t1, t2)
	if code != Success {
		return p0, p1, Fail
	}
	if !IsZero(SignedDistance(plane, s0)) || !IsZero(SignedDistance(plane, s1)) {
		return p0, p1, Fail
	}

	d := s1.Sub(s0)
	enter, exit := T(0), T(1)
	verts := [3]vecmath.Vec3[T]{t0, t1, t2}
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%3]
		// Points inside the edge's half-plane have dot(inward, P-a) >= 0.
		inward := plane.Normal.Cross(b.Sub(a).Normalize())
		dist := inward.Dot(s0.Sub(a))
		rate := inward.Dot(d)

		if IsZero(rate) {
			if dist < 0 && !IsZero(dist) {
				return p0, p1, NotIntersecting
			}
			continue
		}
		t := -dist / rate
		if rate > 0 {
			enter = vecmath.Max(enter, t)
		} else {
			exit = vecmath.Min(exit, t)
		}
		if enter-exit > Epsilon[T]() {
			return p0, p1, NotIntersecting
		}
	}
	if enter > exit {
		exit = enter
	}

	p0 = s0.Add(d.Scale(enter))
	p1 = s0.Add(d.Scale(exit))
	if enter == 0 && exit == 1 {
		return s0, s1, CompletelyInside
	}
	return p0, p1, Intersecting
}
