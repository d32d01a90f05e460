package geom

import "github.com/chazu/geomkit/pkg/vecmath"

// ClosestPair holds the closest points between two primitives and their
// parameters: U.X along the first, U.Y along the second.
type ClosestPair[T vecmath.Float] struct {
	A vecmath.Vec3[T] `json:"a"`
	B vecmath.Vec3[T] `json:"b"`
	U vecmath.Vec2[T] `json:"u"`
}

// Distance returns |A - B|.
func (p ClosestPair[T]) Distance() T {
	return p.A.Distance(p.B)
}

// ClosestPointsSegmentSegment finds the closest points between segments
// a0 a1 and b0 b1 (Van Verth and Bishop).
//
// Returns Success when the pair is unique or one segment is a point, and
// Overlapping when the segments are parallel and their projections overlap.
// In the Overlapping case the pair is a representative with ua clamped from
// the start of a, which depends on argument order.
func ClosestPointsSegmentSegment[T vecmath.Float](a0, a1, b0, b1 vecmath.Vec3[T]) (ClosestPair[T], Code) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)

	// The quadratic form is solved in float64 regardless of T; the
	// difference of products in denom loses too much in float32.
	da64 := vecmath.Convert3[float64](da)
	db64 := vecmath.Convert3[float64](db)
	w0 := vecmath.Convert3[float64](a0).Sub(vecmath.Convert3[float64](b0))
	a := da64.Dot(da64)
	b := da64.Dot(db64)
	c := db64.Dot(db64)
	d := da64.Dot(w0)
	e := db64.Dot(w0)
	denom := a*c - b*b

	var sn, sd, tn, td float64
	code := Success

	if IsZero(denom) {
		switch {
		case IsZero(a) && IsZero(c):
			return ClosestPair[T]{A: a0, B: b0}, Success
		case IsZero(a):
			cp, ub, _ := ClosestPointOnSegment(b0, b1, a0)
			return ClosestPair[T]{A: a0, B: cp, U: vecmath.Vec2[T]{Y: ub}}, Success
		case IsZero(c):
			cp, ua, _ := ClosestPointOnSegment(a0, a1, b0)
			return ClosestPair[T]{A: cp, B: b0, U: vecmath.Vec2[T]{X: ua}}, Success
		}

		// Parallel: pin ua to 0 and solve for ub.
		sn, sd = 0, c
		tn, td = e, c
		if parallelOverlap(a0, da, b0, db, e) {
			code = Overlapping
		}
	} else {
		sn, sd = b*e-c*d, denom
		tn, td = a*e-b*d, denom

		if sn < 0 {
			sn, tn, td = 0, e, c
		} else if sn > sd {
			sn, tn, td = sd, e+b, c
		}
	}

	// Clamp ub, recomputing ua at each bound.
	var ua, ub float64
	switch {
	case tn < 0:
		ub = 0
		ua = clampRatio(-d, a)
	case tn > td:
		ub = 1
		ua = clampRatio(-d+b, a)
	default:
		ub = tn / td
		ua = sn / sd
	}

	return ClosestPair[T]{
		A: a0.Add(da.Scale(T(ua))),
		B: b0.Add(db.Scale(T(ub))),
		U: vecmath.Vec2[T]{X: T(ua), Y: T(ub)},
	}, code
}

// clampRatio returns n/d clamped to [0, 1], testing the bounds before
// dividing. d is positive.
func clampRatio(n, d float64) float64 {
	switch {
	case n < 0:
		return 0
	case n > d:
		return 1
	default:
		return n / d
	}
}

// parallelOverlap reports whether two parallel segments have overlapping
// projections on their shared axis: the endpoint differences do not all lie
// on the same side along db.
func parallelOverlap[T vecmath.Float](a0, da, b0, db vecmath.Vec3[T], e float64) bool {
	a1 := vecmath.Convert3[float64](a0.Add(da))
	b1 := vecmath.Convert3[float64](b0.Add(db))
	a064 := vecmath.Convert3[float64](a0)
	b064 := vecmath.Convert3[float64](b0)
	db64 := vecmath.Convert3[float64](db)

	side := e < 0
	return side != (a1.Sub(b064).Dot(db64) < 0) ||
		side != (a064.Sub(b1).Dot(db64) < 0) ||
		side != (a1.Sub(b1).Dot(db64) < 0)
}
