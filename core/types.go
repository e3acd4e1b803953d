// File: types.go
// Role: Attrs, Graph, EdgeRef types, sentinel errors, constructor.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-edge was attempted.
	ErrLoopNotAllowed = errors.New("core: self-edge not allowed")

	// ErrIDCollision indicates a relabel mapping sends two nodes to the same id.
	ErrIDCollision = errors.New("core: node id collision")
)

// Attrs is a free-form attribute map attached to every node and edge.
// Values are scalars (int, float64, string), marks.Pair, or []any lists.
type Attrs map[string]any

// Clone returns an independent deep copy of the attribute map.
// List values ([]any) are copied element-wise; scalar values are
// immutable and copied by assignment.
// Complexity: O(len(a)).
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		if list, ok := v.([]any); ok {
			cp := make([]any, len(list))
			copy(cp, list)
			out[k] = cp
			continue
		}
		out[k] = v
	}
	return out
}

// Update merges every key of other into a, overwriting existing keys.
// List values are copied so a never aliases other's backing arrays.
// Complexity: O(len(other)).
func (a Attrs) Update(other Attrs) {
	for k, v := range other {
		if list, ok := v.([]any); ok {
			cp := make([]any, len(list))
			copy(cp, list)
			a[k] = cp
			continue
		}
		a[k] = v
	}
}

// EdgeRef is a read surface over one stored edge: normalized endpoints
// (Atom1 < Atom2) and the live attribute map.
type EdgeRef struct {
	// Atom1 is the smaller endpoint id.
	Atom1 int

	// Atom2 is the larger endpoint id.
	Atom2 int

	// Attrs is the live attribute map of the edge (shared, not a copy).
	Attrs Attrs
}

// Graph is the in-memory attributed graph: undirected, simple, no
// self-edges, integer node ids.
//
// Storage: nodes maps id → attribute map; adj is a nested map where
// adj[u][v] and adj[v][u] share one Attrs instance per edge.
type Graph struct {
	nodes map[int]Attrs
	adj   map[int]map[int]Attrs

	edgeCount int
}

// NewGraph creates an empty attributed graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int]Attrs),
		adj:   make(map[int]map[int]Attrs),
	}
}
