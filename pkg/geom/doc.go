// Package geom implements closest-point and intersection predicates for
// points, lines, segments, triangles and planes in three dimensions.
//
// Every predicate is a pure function of value inputs, generic over float32
// and float64, and reports its outcome as a Code rather than an error.
// Degenerate inputs (zero-length segments, zero-area triangles, collinear
// points) are detected with IsZero before any division.
//
// Build tags:
//
//	exactmath  IsZero compares against exactly 0 instead of Epsilon.
//	geomdebug  unit-length preconditions on directions and normals panic
//	           when violated.
package geom
