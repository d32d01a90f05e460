package scene

import (
	"github.com/google/uuid"
)

// namespace seeds name-based node IDs so the same script yields the same IDs.
var namespace = uuid.MustParse("7c0f6f8e-2b0a-4c55-9d1e-3f7a9a3c51d2")

// NodeID identifies a node. IDs are derived from the node's kind and name.
type NodeID uuid.UUID

// NewNodeID returns the ID for a node of the given kind and name.
func NewNodeID(kind NodeKind, name string) NodeID {
	return NodeID(uuid.NewSHA1(namespace, []byte(kind.String()+"/"+name)))
}

// IsZero reports whether id is the zero ID.
func (id NodeID) IsZero() bool {
	return id == NodeID{}
}

// Short returns the first eight hex digits of the ID.
func (id NodeID) Short() string {
	return id.String()[:8]
}

func (id NodeID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText implements encoding.TextMarshaler.
func (id NodeID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *NodeID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}
