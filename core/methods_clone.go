// File: methods_clone.go
// Role: Clone and induced Subgraph extraction.
//
// Both return fully independent graphs: attribute maps are deep-copied,
// so mutating the result never affects the source.

package core

// Clone returns a deep copy of the graph: nodes, edges, and every
// attribute map.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := NewGraph()
	for id, attrs := range g.nodes {
		clone.nodes[id] = attrs.Clone()
		clone.adj[id] = make(map[int]Attrs, len(g.adj[id]))
	}
	for u, bucket := range g.adj {
		for v, attrs := range bucket {
			if u < v {
				shared := attrs.Clone()
				clone.adj[u][v] = shared
				clone.adj[v][u] = shared
				clone.edgeCount++
			}
		}
	}
	return clone
}

// Subgraph returns the induced subgraph over the given node set as a
// new independent graph: the listed nodes that exist plus every edge
// whose both endpoints are listed. Ids absent from the graph are
// ignored.
// Complexity: O(k + E_k) for k listed nodes and E_k induced edges.
func (g *Graph) Subgraph(ids []int) *Graph {
	sub := NewGraph()
	keep := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		attrs, ok := g.nodes[id]
		if !ok {
			continue
		}
		keep[id] = struct{}{}
		sub.nodes[id] = attrs.Clone()
		sub.adj[id] = make(map[int]Attrs)
	}
	for u := range keep {
		for v, attrs := range g.adj[u] {
			if _, ok := keep[v]; !ok || u > v {
				continue
			}
			shared := attrs.Clone()
			sub.adj[u][v] = shared
			sub.adj[v][u] = shared
			sub.edgeCount++
		}
	}
	return sub
}
