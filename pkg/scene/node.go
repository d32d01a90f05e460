package scene

import "github.com/chazu/geomkit/pkg/vecmath"

// NodeKind enumerates the primitives a scene can hold.
type NodeKind int

const (
	KindPoint NodeKind = iota
	KindLine
	KindSegment
	KindTriangle
	KindPlane
)

func (k NodeKind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindSegment:
		return "segment"
	case KindTriangle:
		return "triangle"
	case KindPlane:
		return "plane"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Node is a named primitive.
type Node struct {
	ID   NodeID   `json:"id"`
	Kind NodeKind `json:"kind"`
	Name string   `json:"name"`
	Data NodeData `json:"data"`
}

// NodeData is the interface for kind-specific node payloads.
type NodeData interface {
	Kind() NodeKind
}

// Vec3 is the storage precision of scene coordinates.
type Vec3 = vecmath.Vec3[float64]

// ---------------------------------------------------------------------------
// Payloads
// ---------------------------------------------------------------------------

// PointData is a single position.
type PointData struct {
	Position Vec3 `json:"position"`
}

func (PointData) Kind() NodeKind { return KindPoint }

// LineData is an infinite line. Direction must be unit length.
type LineData struct {
	Origin    Vec3 `json:"origin"`
	Direction Vec3 `json:"direction"`
}

func (LineData) Kind() NodeKind { return KindLine }

// SegmentData is the segment between two endpoints.
type SegmentData struct {
	Start Vec3 `json:"start"`
	End   Vec3 `json:"end"`
}

func (SegmentData) Kind() NodeKind { return KindSegment }

// TriangleData holds three vertices in winding order.
type TriangleData struct {
	V0 Vec3 `json:"v0"`
	V1 Vec3 `json:"v1"`
	V2 Vec3 `json:"v2"`
}

func (TriangleData) Kind() NodeKind { return KindTriangle }

// PlaneData is a plane with unit Normal and Offset = -dot(point, Normal).
type PlaneData struct {
	Normal Vec3    `json:"normal"`
	Offset float64 `json:"offset"`
}

func (PlaneData) Kind() NodeKind { return KindPlane }
