// File: methods.go
// Role: Node and edge lifecycle plus deterministic query surfaces.
//
// Determinism:
//   - Nodes() and Neighbors() return ids sorted ascending.
//   - Edges() and IncidentEdges() return EdgeRefs sorted by (Atom1, Atom2).

package core

import "sort"

// AddNode inserts a node with the given attributes, or merges attrs
// into the node's existing attribute map when the id is already
// present. A nil attrs adds a bare node.
// Complexity: O(len(attrs)) amortized.
func (g *Graph) AddNode(id int, attrs Attrs) {
	stored, ok := g.nodes[id]
	if !ok {
		stored = make(Attrs, len(attrs))
		g.nodes[id] = stored
		g.adj[id] = make(map[int]Attrs)
	}
	if attrs != nil {
		stored.Update(attrs)
	}
}

// HasNode reports whether a node with the given id exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns the live attribute map of the given node.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(1).
func (g *Graph) Node(id int) (Attrs, error) {
	attrs, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return attrs, nil
}

// RemoveNode deletes the node and every incident edge.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(deg(id)).
func (g *Graph) RemoveNode(id int) error {
	if _, ok := g.nodes[id]; !ok {
		return ErrNodeNotFound
	}
	for other := range g.adj[id] {
		delete(g.adj[other], id)
		g.edgeCount--
	}
	delete(g.adj, id)
	delete(g.nodes, id)
	return nil
}

// AddEdge inserts an undirected edge between atom1 and atom2, creating
// either endpoint if missing, or merges attrs into the edge's existing
// attribute map when the edge is already present. Both adjacency
// directions share one Attrs instance.
// Returns ErrLoopNotAllowed when atom1 == atom2.
// Complexity: O(len(attrs)) amortized.
func (g *Graph) AddEdge(atom1, atom2 int, attrs Attrs) error {
	if atom1 == atom2 {
		return ErrLoopNotAllowed
	}
	g.AddNode(atom1, nil)
	g.AddNode(atom2, nil)

	stored, ok := g.adj[atom1][atom2]
	if !ok {
		stored = make(Attrs, len(attrs))
		g.adj[atom1][atom2] = stored
		g.adj[atom2][atom1] = stored
		g.edgeCount++
	}
	if attrs != nil {
		stored.Update(attrs)
	}
	return nil
}

// HasEdge reports whether an edge between atom1 and atom2 exists.
// Complexity: O(1).
func (g *Graph) HasEdge(atom1, atom2 int) bool {
	_, ok := g.adj[atom1][atom2]
	return ok
}

// Edge returns the live attribute map of the edge between atom1 and
// atom2. Returns ErrEdgeNotFound if the edge does not exist.
// Complexity: O(1).
func (g *Graph) Edge(atom1, atom2 int) (Attrs, error) {
	attrs, ok := g.adj[atom1][atom2]
	if !ok {
		return nil, ErrEdgeNotFound
	}
	return attrs, nil
}

// RemoveEdge deletes the edge between atom1 and atom2.
// Returns ErrEdgeNotFound if the edge does not exist.
// Complexity: O(1).
func (g *Graph) RemoveEdge(atom1, atom2 int) error {
	if _, ok := g.adj[atom1][atom2]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adj[atom1], atom2)
	delete(g.adj[atom2], atom1)
	g.edgeCount--
	return nil
}

// Nodes returns every node id sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	out := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Neighbors returns the ids adjacent to the given node, sorted
// ascending. Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]int, 0, len(g.adj[id]))
	for other := range g.adj[id] {
		out = append(out, other)
	}
	sort.Ints(out)
	return out, nil
}

// Edges returns every edge as an EdgeRef with normalized endpoints,
// sorted by (Atom1, Atom2). The Attrs fields are live references.
// Complexity: O(E log E).
func (g *Graph) Edges() []EdgeRef {
	out := make([]EdgeRef, 0, g.edgeCount)
	for u, bucket := range g.adj {
		for v, attrs := range bucket {
			if u < v { // each shared edge exactly once
				out = append(out, EdgeRef{Atom1: u, Atom2: v, Attrs: attrs})
			}
		}
	}
	sortEdgeRefs(out)
	return out
}

// IncidentEdges returns every edge touching at least one of the given
// ids, deduplicated, with normalized endpoints, sorted by
// (Atom1, Atom2). Unknown ids are skipped. The Attrs fields are live
// references.
// Complexity: O(Σ deg + k log k) for k collected edges.
func (g *Graph) IncidentEdges(ids ...int) []EdgeRef {
	seen := make(map[[2]int]struct{})
	var out []EdgeRef
	for _, id := range ids {
		for other, attrs := range g.adj[id] {
			key := normalizePair(id, other)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, EdgeRef{Atom1: key[0], Atom2: key[1], Attrs: attrs})
		}
	}
	sortEdgeRefs(out)
	return out
}

// normalizePair orders two endpoint ids ascending.
func normalizePair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// sortEdgeRefs orders refs by (Atom1, Atom2) ascending.
func sortEdgeRefs(refs []EdgeRef) {
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Atom1 != refs[j].Atom1 {
			return refs[i].Atom1 < refs[j].Atom1
		}
		return refs[i].Atom2 < refs[j].Atom2
	})
}
