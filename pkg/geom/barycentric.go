package geom

import "github.com/chazu/geomkit/pkg/vecmath"

// Barycentric returns the weights (u, v, w) with p = u*t0 + v*t1 + w*t2 for
// p projected onto the plane of the triangle. Weights outside [0, 1] place p
// outside the triangle.
//
// Returns Fail with zero weights for a zero-area triangle.
func Barycentric[T vecmath.Float](t0, t1, t2, p vecmath.Vec3[T]) (u, v, w T, code Code) {
	v0 := t1.Sub(t0)
	v1 := t2.Sub(t0)
	v2 := p.Sub(t0)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if IsZero(denom) {
		return 0, 0, 0, Fail
	}

	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1 - v - w
	return u, v, w, Success
}
