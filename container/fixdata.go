// File: fixdata.go
// Role: the mark normalizer — rebuilds stored attribute maps strictly
//       from the schema, deriving the combined "sp_" marks on CGR
//       entities. Never invents values: a pure filter-and-rewrite,
//       idempotent by construction.

package container

import (
	"cgrkit/core"
	"cgrkit/marks"
)

// FixData normalizes every atom and bond attribute map in place:
// only schema keys for the entity kind survive, unset values are
// dropped, and on CGR entities the combined marks are re-derived from
// the two state channels. Used after structural edits and merges to
// strip transient or foreign keys.
func (c *Container) FixData() { c.FixDataScoped(nil, nil) }

// FixDataScoped normalizes a restricted region: the given atoms (nil
// means all) and every bond incident to the given atoms (nil means all
// bonds). Unknown ids are skipped. The merge engine uses this to clean
// exactly the region touched by compose.
func (c *Container) FixDataScoped(atoms []int, bondAtoms []int) {
	nodeIDs := atoms
	if nodeIDs == nil {
		nodeIDs = c.g.Nodes()
	}
	for _, id := range nodeIDs {
		attrs, err := c.g.Node(id)
		if err != nil {
			continue
		}
		rewrite(attrs, c.renewNode(attrs))
	}

	bonds := c.g.Edges()
	if bondAtoms != nil {
		bonds = c.g.IncidentEdges(bondAtoms...)
	}
	for _, ref := range bonds {
		rewrite(ref.Attrs, c.renewEdge(ref.Attrs))
	}
}

// rewrite replaces the contents of a live attribute map.
func rewrite(attrs core.Attrs, renewed core.Attrs) {
	for k := range attrs {
		delete(attrs, k)
	}
	attrs.Update(renewed)
}

// renewNode rebuilds one atom's attribute map from the schema.
func (c *Container) renewNode(attrs core.Attrs) core.Attrs {
	out := make(core.Attrs, len(attrs))
	keepPresent(attrs, marks.NodeBase(c.kind), out)
	if c.kind == marks.Molecule {
		keepPresent(attrs, marks.NodeSingle(), out)
		return out
	}
	renewTriples(attrs, marks.NodeTriples(), out)
	return out
}

// renewEdge rebuilds one bond's attribute map from the schema.
func (c *Container) renewEdge(attrs core.Attrs) core.Attrs {
	out := make(core.Attrs, len(attrs))
	if c.kind == marks.Molecule {
		keepPresent(attrs, marks.EdgeSingle(), out)
		return out
	}
	renewTriples(attrs, marks.EdgeTriples(), out)
	return out
}

// keepPresent copies the listed keys whose stored value is set.
func keepPresent(attrs core.Attrs, keys []string, out core.Attrs) {
	for _, k := range keys {
		if v, ok := attrs[k]; ok && v != nil {
			out[k] = v
		}
	}
}

// renewTriples applies the dual-state combining rules for every mark
// triple: when both channels agree the combined mark equals the shared
// value; when they differ it is a Pair; when either channel is itself
// multi-valued the combined mark is the deduplicated pair-set merge and
// the channel marks are rewritten from it.
func renewTriples(attrs core.Attrs, triples []marks.Triple, out core.Attrs) {
	for _, t := range triples {
		ls, lp := attrs[t.S], attrs[t.P]
		lsList, sIsList := ls.([]any)
		lpList, pIsList := lp.([]any)

		switch {
		case sIsList && pIsList:
			if listEqual(lsList, lpList) {
				shared := dedupValues(lsList)
				out[t.S] = shared
				out[t.P] = cloneList(shared)
				out[t.SP] = cloneList(shared)
				continue
			}
			writePairSet(out, t, zipPairs(lsList, lpList))
		case sIsList:
			writePairSet(out, t, fanPairs(lsList, lp, true))
		case pIsList:
			writePairSet(out, t, fanPairs(lpList, ls, false))
		default:
			if ls == nil && lp == nil {
				continue
			}
			if ls == lp {
				out[t.S], out[t.P], out[t.SP] = ls, lp, ls
				continue
			}
			if ls != nil {
				out[t.S] = ls
			}
			if lp != nil {
				out[t.P] = lp
			}
			out[t.SP] = marks.Pair{S: ls, P: lp}
		}
	}
}

// zipPairs pairs the two lists element-wise, keeping only positions
// where the sides differ.
func zipPairs(s, p []any) []marks.Pair {
	n := len(s)
	if len(p) < n {
		n = len(p)
	}
	var pairs []marks.Pair
	for i := 0; i < n; i++ {
		if s[i] != p[i] {
			pairs = append(pairs, marks.Pair{S: s[i], P: p[i]})
		}
	}
	return pairs
}

// fanPairs pairs every element of the list side with the scalar on the
// other side, keeping only differing combinations. listIsS reports
// which channel held the list.
func fanPairs(list []any, scalar any, listIsS bool) []marks.Pair {
	var pairs []marks.Pair
	for _, v := range list {
		if v == scalar {
			continue
		}
		if listIsS {
			pairs = append(pairs, marks.Pair{S: v, P: scalar})
		} else {
			pairs = append(pairs, marks.Pair{S: scalar, P: v})
		}
	}
	return pairs
}

// writePairSet stores a deduplicated, deterministically ordered
// pair-set merge: the combined key holds the pairs, the channel keys
// hold the respective sides.
func writePairSet(out core.Attrs, t marks.Triple, pairs []marks.Pair) {
	pairs = dedupPairs(pairs)
	sp := make([]any, len(pairs))
	s := make([]any, len(pairs))
	p := make([]any, len(pairs))
	for i, pair := range pairs {
		sp[i] = pair
		s[i] = pair.S
		p[i] = pair.P
	}
	out[t.SP] = sp
	out[t.S] = s
	out[t.P] = p
}

// dedupValues deduplicates a scalar list and orders it for stable
// enumeration.
func dedupValues(list []any) []any {
	seen := make(map[any]struct{}, len(list))
	out := make([]any, 0, len(list))
	for _, v := range list {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sortValues(out)
	return out
}

// dedupPairs deduplicates pairs and orders them by (S, P).
func dedupPairs(pairs []marks.Pair) []marks.Pair {
	seen := make(map[marks.Pair]struct{}, len(pairs))
	out := make([]marks.Pair, 0, len(pairs))
	for _, pair := range pairs {
		if _, dup := seen[pair]; dup {
			continue
		}
		seen[pair] = struct{}{}
		out = append(out, pair)
	}
	sortPairs(out)
	return out
}

// sortPairs orders pairs by S then P with the scalar total order.
func sortPairs(pairs []marks.Pair) {
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && pairLess(pairs[j], pairs[j-1]); j-- {
			pairs[j], pairs[j-1] = pairs[j-1], pairs[j]
		}
	}
}

func pairLess(a, b marks.Pair) bool {
	if a.S != b.S {
		return lessValue(a.S, b.S)
	}
	return lessValue(a.P, b.P)
}

// cloneList copies a scalar list.
func cloneList(list []any) []any {
	cp := make([]any, len(list))
	copy(cp, list)
	return cp
}
