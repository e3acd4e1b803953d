// File: methods.go
// Role: structural entity operations — Copy, Subgraph, Remap,
//       Environment expansion, reaction-center detection.

package container

import (
	"sort"

	"cgrkit/marks"
)

// Copy returns a deep, independent entity of the same kind: graph,
// attribute maps and meta are all copied.
func (c *Container) Copy() *Container {
	return &Container{kind: c.kind, g: c.g.Clone(), meta: copyMeta(c.meta)}
}

// Subgraph returns the induced subgraph over the given atom set as a
// new independent entity of the same kind. Ids absent from the entity
// are ignored. Meta is copied only when withMeta is set. Stereo marks
// for the new boundary are re-derived (currently a no-op hook).
func (c *Container) Subgraph(atoms []int, withMeta bool) *Container {
	sub := &Container{kind: c.kind, g: c.g.Subgraph(atoms)}
	if withMeta {
		sub.meta = copyMeta(c.meta)
	}
	sub.fixStereo()
	return sub
}

// Remap relabels atom-map ids via the given mapping; ids absent from
// the mapping keep their identity. With inPlace the entity itself is
// rewritten and returned; otherwise a new entity is returned and the
// receiver stays untouched. Fails with core.ErrIDCollision when the
// mapping is not injective over the atom set.
func (c *Container) Remap(mapping map[int]int, inPlace bool) (*Container, error) {
	relabeled, err := c.g.Relabel(mapping)
	if err != nil {
		return nil, err
	}
	if inPlace {
		c.g = relabeled
		return c, nil
	}
	return &Container{kind: c.kind, g: relabeled, meta: copyMeta(c.meta)}, nil
}

// Environment returns the subgraph spanned by the given core atoms
// expanded outward by depth bond-hops, stopping early once an
// expansion step adds no new atoms.
func (c *Container) Environment(atoms []int, depth int) *Container {
	stages := c.expandStages(atoms, depth)
	return c.Subgraph(stages[len(stages)-1], false)
}

// EnvironmentStages returns the ordered sequence of expansion
// subgraphs for each hop 0..depth inclusive, truncated at the point
// the expansion stalls.
func (c *Container) EnvironmentStages(atoms []int, depth int) []*Container {
	stages := c.expandStages(atoms, depth)
	out := make([]*Container, len(stages))
	for i, stage := range stages {
		out[i] = c.Subgraph(stage, false)
	}
	return out
}

// expandStages performs the breadth-first ring expansion: each step
// collects the endpoints of every bond incident to the current atom
// set. Expansion stops when a step yields no atoms or repeats an
// earlier stage.
func (c *Container) expandStages(atoms []int, depth int) [][]int {
	seed := append([]int(nil), atoms...)
	sort.Ints(seed)
	stages := [][]int{seed}

	for i := 0; i < depth; i++ {
		next := make(map[int]struct{})
		for _, ref := range c.g.IncidentEdges(stages[i]...) {
			next[ref.Atom1] = struct{}{}
			next[ref.Atom2] = struct{}{}
		}
		if len(next) == 0 {
			break
		}
		stage := make([]int, 0, len(next))
		for id := range next {
			stage = append(stage, id)
		}
		sort.Ints(stage)
		if stageSeen(stages, stage) {
			break
		}
		stages = append(stages, stage)
	}
	return stages
}

// stageSeen reports whether stage equals any earlier expansion stage.
func stageSeen(stages [][]int, stage []int) bool {
	for _, prev := range stages {
		if len(prev) != len(stage) {
			continue
		}
		same := true
		for i := range prev {
			if prev[i] != stage[i] {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}

// CenterAtoms returns the reaction center of a CGR entity: every atom
// whose reagent-side and product-side charge differ, plus the
// endpoints of every bond whose order changes between the two states.
// Sorted ascending. On a Molecule entity — which carries no
// product-side state — the result is nil.
func (c *Container) CenterAtoms() []int {
	if c.kind != marks.CGR {
		return nil
	}
	center := make(map[int]struct{})
	for _, id := range c.g.Nodes() {
		attrs, _ := c.g.Node(id)
		if !valueEqual(attrs[marks.SCharge], attrs[marks.PCharge]) {
			center[id] = struct{}{}
		}
	}
	for _, ref := range c.g.Edges() {
		if !valueEqual(ref.Attrs[marks.SBond], ref.Attrs[marks.PBond]) {
			center[ref.Atom1] = struct{}{}
			center[ref.Atom2] = struct{}{}
		}
	}
	out := make([]int, 0, len(center))
	for id := range center {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// copyMeta returns an independent copy of a meta mapping; nil stays nil.
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	out := make(map[string]any, len(meta))
	for k, v := range meta {
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
