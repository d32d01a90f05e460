package geom

import "github.com/chazu/geomkit/pkg/vecmath"

// ClosestPointOnTriangle returns the point on triangle t0 t1 t2 closest to
// point, found by classifying point into the vertex, edge or face Voronoi
// region (Ericson, Real-Time Collision Detection 5.1.5).
//
// A zero-area triangle has no face region; the nearest point over its three
// edges is returned instead. Always returns Success.
func ClosestPointOnTriangle[T vecmath.Float](t0, t1, t2, point vecmath.Vec3[T]) (vecmath.Vec3[T], Code) {
	v01 := t1.Sub(t0)
	v02 := t2.Sub(t0)
	v0p := point.Sub(t0)

	d1 := v01.Dot(v0p)
	d2 := v02.Dot(v0p)
	if d1 <= 0 && d2 <= 0 {
		return t0, Success
	}

	v1p := point.Sub(t1)
	d3 := v01.Dot(v1p)
	d4 := v02.Dot(v1p)
	if d3 >= 0 && d4 <= d3 {
		return t1, Success
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return edgePoint(t0, v01, d1, d1-d3), Success
	}

	v2p := point.Sub(t2)
	d5 := v01.Dot(v2p)
	d6 := v02.Dot(v2p)
	if d6 >= 0 && d5 <= d6 {
		return t2, Success
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return edgePoint(t0, v02, d2, d2-d6), Success
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		return edgePoint(t1, t2.Sub(t1), d4-d3, (d4-d3)+(d5-d6)), Success
	}

	sum := va + vb + vc
	if IsZero(sum) {
		return closestOnEdges(t0, t1, t2, point), Success
	}
	v := vb / sum
	w := vc / sum
	return t0.Add(v01.Scale(v)).Add(v02.Scale(w)), Success
}

// edgePoint returns start + (n/d)*edge, or start when d is zero.
func edgePoint[T vecmath.Float](start, edge vecmath.Vec3[T], n, d T) vecmath.Vec3[T] {
	if IsZero(d) {
		return start
	}
	return start.Add(edge.Scale(n / d))
}

func closestOnEdges[T vecmath.Float](t0, t1, t2, point vecmath.Vec3[T]) vecmath.Vec3[T] {
	best, _, _ := ClosestPointOnSegment(t0, t1, point)
	bestSq := best.Sub(point).LengthSquared()
	for _, e := range [2][2]vecmath.Vec3[T]{{t0, t2}, {t1, t2}} {
		cp, _, _ := ClosestPointOnSegment(e[0], e[1], point)
		if dsq := cp.Sub(point).LengthSquared(); dsq < bestSq {
			best, bestSq = cp, dsq
		}
	}
	return best
}
