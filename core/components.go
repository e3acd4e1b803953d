// File: components.go
// Role: Connected-component partitioning and injective node relabeling.
//
// Determinism:
//   - ConnectedComponents() returns components ordered by smallest
//     member id, each component sorted ascending.

package core

import "sort"

// ConnectedComponents partitions the node set into connected
// components via breadth-first traversal. Each component is sorted
// ascending; components are ordered by their smallest id.
// Complexity: O(V + E) plus sorting.
func (g *Graph) ConnectedComponents() [][]int {
	visited := make(map[int]struct{}, len(g.nodes))
	var components [][]int

	for _, start := range g.Nodes() { // sorted seed order keeps output stable
		if _, done := visited[start]; done {
			continue
		}
		component := []int{start}
		visited[start] = struct{}{}
		queue := []int{start}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			for other := range g.adj[id] {
				if _, done := visited[other]; done {
					continue
				}
				visited[other] = struct{}{}
				component = append(component, other)
				queue = append(queue, other)
			}
		}
		sort.Ints(component)
		components = append(components, component)
	}
	return components
}

// Relabel returns a deep copy of the graph with node ids rewritten by
// mapping. Ids absent from the mapping keep their identity. Returns
// ErrIDCollision if two nodes would end up with the same id.
// Complexity: O(V + E).
func (g *Graph) Relabel(mapping map[int]int) (*Graph, error) {
	target := make(map[int]int, len(g.nodes))
	used := make(map[int]struct{}, len(g.nodes))
	for id := range g.nodes {
		to, ok := mapping[id]
		if !ok {
			to = id
		}
		if _, dup := used[to]; dup {
			return nil, ErrIDCollision
		}
		used[to] = struct{}{}
		target[id] = to
	}

	out := NewGraph()
	for id, attrs := range g.nodes {
		out.nodes[target[id]] = attrs.Clone()
		out.adj[target[id]] = make(map[int]Attrs, len(g.adj[id]))
	}
	for u, bucket := range g.adj {
		for v, attrs := range bucket {
			if u > v {
				continue
			}
			nu, nv := target[u], target[v]
			shared := attrs.Clone()
			out.adj[nu][nv] = shared
			out.adj[nv][nu] = shared
			out.edgeCount++
		}
	}
	return out, nil
}
