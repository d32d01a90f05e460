package scene

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// Scene is the set of primitives produced by evaluating a script. It is
// built once per evaluation and not shared between evaluations.
type Scene struct {
	Nodes     map[NodeID]*Node  `json:"nodes"`
	NameIndex map[string]NodeID `json:"name_index"`
	Order     []NodeID          `json:"order"`
}

// New creates an empty Scene.
func New() *Scene {
	return &Scene{
		Nodes:     make(map[NodeID]*Node),
		NameIndex: make(map[string]NodeID),
	}
}

// Add creates a node for data under name and adds it. Names are unique
// across all kinds.
func (s *Scene) Add(name string, data NodeData) (*Node, error) {
	if name == "" {
		return nil, fmt.Errorf("scene: %s needs a name", data.Kind())
	}
	if _, exists := s.NameIndex[name]; exists {
		return nil, fmt.Errorf("scene: name %q already defined", name)
	}
	n := &Node{
		ID:   NewNodeID(data.Kind(), name),
		Kind: data.Kind(),
		Name: name,
		Data: data,
	}
	s.AddNode(n)
	return n, nil
}

// AddNode adds a node without checking for duplicates.
func (s *Scene) AddNode(n *Node) {
	if _, exists := s.Nodes[n.ID]; !exists {
		s.Order = append(s.Order, n.ID)
	}
	s.Nodes[n.ID] = n
	if n.Name != "" {
		s.NameIndex[n.Name] = n.ID
	}
}

// Lookup returns the node with the given name, or nil.
func (s *Scene) Lookup(name string) *Node {
	id, ok := s.NameIndex[name]
	if !ok {
		return nil
	}
	return s.Nodes[id]
}

// Get returns the node with the given ID, or nil.
func (s *Scene) Get(id NodeID) *Node {
	return s.Nodes[id]
}

// Names returns all node names, sorted.
func (s *Scene) Names() []string {
	names := lo.Keys(s.NameIndex)
	sort.Strings(names)
	return names
}

// ByKind returns the nodes of one kind in insertion order.
func (s *Scene) ByKind(kind NodeKind) []*Node {
	nodes := lo.FilterMap(s.Order, func(id NodeID, _ int) (*Node, bool) {
		n := s.Nodes[id]
		return n, n != nil && n.Kind == kind
	})
	return nodes
}

// NodeCount returns the total number of nodes.
func (s *Scene) NodeCount() int {
	return len(s.Nodes)
}
