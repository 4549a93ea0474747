package graph

import (
	"errors"
	"fmt"
	"slices"
)

// NodeKind tells value nodes from function nodes.
type NodeKind string

const (
	KindValue    NodeKind = "valueNode"
	KindFunction NodeKind = "functionNode"
)

// DefaultEdgeKind is the edge kind used by Connect.
const DefaultEdgeKind = "default"

var (
	ErrNodeNotFound  = errors.New("node not found")
	ErrEdgeNotFound  = errors.New("edge not found")
	ErrDuplicateNode = errors.New("duplicate node id")
	ErrDuplicateEdge = errors.New("duplicate edge")
	ErrInvalidNode   = errors.New("invalid node")
)

// Position is a point on the canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData is the payload rendered inside a node.
type NodeData struct {
	Label string `json:"label"`
	// FunctionID is the catalog function of a function node.
	FunctionID string `json:"functionId,omitempty"`
	// Value is the literal held by a value node: a string, number, bool or
	// nil. Validate rejects anything else, which keeps Clone's shallow copy
	// safe.
	Value any `json:"value,omitempty"`
}

// Node is a vertex on the canvas.
type Node struct {
	ID       string   `json:"id"`
	Kind     NodeKind `json:"type"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
}

// Edge connects the output of Source to an input of Target.
type Edge struct {
	ID     string `json:"id"`
	Kind   string `json:"type"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// State is one consistent view of all nodes and edges.
type State struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// DefaultState returns the canvas shown to a new user: a value node feeding
// a function node.
func DefaultState() State {
	return State{
		Nodes: []Node{
			{
				ID:       "1",
				Kind:     KindValue,
				Position: Position{X: 100, Y: -50},
				Data:     NodeData{Label: "Value Node"},
			},
			{
				ID:       "2",
				Kind:     KindFunction,
				Position: Position{X: 300, Y: 50},
				Data:     NodeData{Label: "Function Node"},
			},
		},
		Edges: []Edge{
			{ID: "1-2", Kind: DefaultEdgeKind, Source: "1", Target: "2"},
		},
	}
}

// Clone returns a copy that shares no slices with s. Node values are
// scalars, so copying the elements is enough.
func (s State) Clone() State {
	return State{
		Nodes: slices.Clone(s.Nodes),
		Edges: slices.Clone(s.Edges),
	}
}

// Node returns the node with the given id.
func (s *State) Node(id string) (*Node, bool) {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return &s.Nodes[i], true
		}
	}
	return nil, false
}

// Validate checks that ids are unique and non-empty, that node kinds are
// known and that every edge joins two existing nodes.
func (s *State) Validate() error {
	nodes := make(map[string]struct{}, len(s.Nodes))
	for _, n := range s.Nodes {
		if n.ID == "" {
			return fmt.Errorf("%w: empty id", ErrInvalidNode)
		}
		if n.Kind != KindValue && n.Kind != KindFunction {
			return fmt.Errorf("%w: node '%s' has unknown kind '%s'", ErrInvalidNode, n.ID, n.Kind)
		}
		if !isScalar(n.Data.Value) {
			return fmt.Errorf("%w: node '%s' value must be a string, number, boolean or null, got %T", ErrInvalidNode, n.ID, n.Data.Value)
		}
		if _, dup := nodes[n.ID]; dup {
			return fmt.Errorf("%w: '%s'", ErrDuplicateNode, n.ID)
		}
		nodes[n.ID] = struct{}{}
	}

	edges := make(map[string]struct{}, len(s.Edges))
	for _, e := range s.Edges {
		if _, dup := edges[e.ID]; dup {
			return fmt.Errorf("%w: '%s'", ErrDuplicateEdge, e.ID)
		}
		edges[e.ID] = struct{}{}

		if _, ok := nodes[e.Source]; !ok {
			return fmt.Errorf("%w: edge '%s' source '%s'", ErrNodeNotFound, e.ID, e.Source)
		}
		if _, ok := nodes[e.Target]; !ok {
			return fmt.Errorf("%w: edge '%s' target '%s'", ErrNodeNotFound, e.ID, e.Target)
		}
	}
	return nil
}

func isScalar(v any) bool {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
