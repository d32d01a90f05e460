package scene

import (
	"fmt"
	"math"

	"github.com/chazu/geomkit/pkg/geom"
)

// unitTolerance bounds |len^2 - 1| for directions and normals.
const unitTolerance = 1e-6

// ---------------------------------------------------------------------------
// Tier 2: Geometric validation (errors + warnings)
// ---------------------------------------------------------------------------

// validateGeometry flags inputs the predicates either reject or treat as a
// degenerate case. Returns errors (blocking) and warnings (advisory).
func validateGeometry(s *Scene) ([]ValidationError, []ValidationWarning) {
	var errs []ValidationError
	var warnings []ValidationWarning

	errf := func(n *Node, format string, args ...interface{}) {
		errs = append(errs, ValidationError{
			NodeID:   n.ID,
			Name:     n.Name,
			Message:  fmt.Sprintf(format, args...),
			Severity: SeverityError,
		})
	}
	warnf := func(n *Node, format string, args ...interface{}) {
		warnings = append(warnings, ValidationWarning{
			NodeID:  n.ID,
			Name:    n.Name,
			Message: fmt.Sprintf(format, args...),
		})
	}

	for _, id := range s.Order {
		n := s.Nodes[id]
		if n == nil || n.Data == nil {
			continue
		}
		if !finite(n.Data) {
			errf(n, "%s has a non-finite coordinate", n.Kind)
			continue
		}

		switch d := n.Data.(type) {
		case LineData:
			if geom.IsZero(d.Direction.LengthSquared()) {
				errf(n, "line direction is zero")
			} else if !isUnit(d.Direction) {
				errf(n, "line direction %v has length %.6g, must be unit length", d.Direction, d.Direction.Length())
			}
		case PlaneData:
			if !isUnit(d.Normal) {
				errf(n, "plane normal %v has length %.6g, must be unit length", d.Normal, d.Normal.Length())
			}
		case SegmentData:
			if geom.AreEqualVec3(d.Start, d.End) {
				warnf(n, "segment has zero length; queries treat it as the point %v", d.Start)
			}
		case TriangleData:
			if _, code := geom.CreatePlane(d.V0, d.V1, d.V2); code == geom.Fail {
				warnf(n, "triangle has zero area; barycentric queries will fail")
			}
		}
	}
	return errs, warnings
}

func isUnit(v Vec3) bool {
	return math.Abs(v.LengthSquared()-1) < unitTolerance
}

func finite(d NodeData) bool {
	var vs []Vec3
	switch d := d.(type) {
	case PointData:
		vs = []Vec3{d.Position}
	case LineData:
		vs = []Vec3{d.Origin, d.Direction}
	case SegmentData:
		vs = []Vec3{d.Start, d.End}
	case TriangleData:
		vs = []Vec3{d.V0, d.V1, d.V2}
	case PlaneData:
		if math.IsNaN(d.Offset) || math.IsInf(d.Offset, 0) {
			return false
		}
		vs = []Vec3{d.Normal}
	}
	for _, v := range vs {
		for _, c := range v.Array() {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return false
			}
		}
	}
	return true
}
