// File: compose.go
// Role: the compose algorithm — merges a reagents graph and a products
//       graph sharing one atom-mapping id space into a single CGR.
//
// The algorithm is parameterized symmetrically by a role table: each
// role names the bond mark it reads, the stereo mark it stages, the
// node marks it owns exclusively, and the node marks that must be
// excluded on boundary-adjacent atoms (the opposite role's query
// marks, which go stale across the reaction).

package cgr

import (
	"sort"

	"cgrkit/container"
	"cgrkit/core"
	"cgrkit/marks"
)

// role describes one side of the reaction inside compose.
type role struct {
	graph *container.Container

	// edgeKey is the bond-order mark this role contributes.
	edgeKey string

	// stereoKey is the edge stereo mark this role stages.
	stereoKey string

	// product reports which stereo channel this role fills.
	product bool

	// nodeKeys are the node marks owned exclusively by this role,
	// copied for atoms shared by both graphs.
	nodeKeys []string

	// extExcluded are the node marks dropped when copying
	// boundary-adjacent atoms: the opposite role's derived query marks.
	extExcluded map[string]struct{}
}

func reagentRole(g *container.Container) role {
	return role{
		graph:     g,
		edgeKey:   marks.SBond,
		stereoKey: marks.SStereo,
		nodeKeys: []string{
			marks.SCharge, marks.SNeighbors, marks.SHyb,
			marks.SX, marks.SY, marks.SZ,
		},
		extExcluded: map[string]struct{}{
			marks.PNeighbors: {}, marks.PHyb: {},
			marks.SpNeighbors: {}, marks.SpHyb: {},
		},
	}
}

func productRole(g *container.Container) role {
	return role{
		graph:     g,
		edgeKey:   marks.PBond,
		stereoKey: marks.PStereo,
		product:   true,
		// The products role also owns the base marks so shared atoms
		// keep element, isotope and label after normalization.
		nodeKeys: []string{
			marks.PCharge, marks.PNeighbors, marks.PHyb,
			marks.PX, marks.PY, marks.PZ,
			marks.Element, marks.Isotope, marks.Mark,
		},
		extExcluded: map[string]struct{}{
			marks.SNeighbors: {}, marks.SHyb: {},
			marks.SpNeighbors: {}, marks.SpHyb: {},
		},
	}
}

// stereoEntry stages one atom pair's stereo descriptors until both
// roles are processed.
type stereoEntry struct {
	s, p any
}

// Compose merges the reagents graph and the products graph — sharing
// the reaction's atom-mapping id space — into a fresh CGR entity.
//
// For each role: every bond touching a shared atom contributes that
// role's bond mark onto the shared result bond (extending the common
// set to the bond's endpoints); purely role-local fragments are copied
// verbatim; shared atoms receive only the role's exclusive node marks;
// boundary-adjacent atoms receive everything except the opposite
// role's stale query marks. The touched region is then mark-normalized
// and staged stereo descriptors are flushed through the stereo hook.
//
// The caller owns the result's meta; compose copies no meta. Returns
// ErrMalformedReaction for nil inputs.
// Complexity: O(V + E) over both inputs plus normalization.
func Compose(reagents, products *container.Container) (*container.Container, error) {
	if reagents == nil || products == nil {
		return nil, ErrMalformedReaction
	}

	common := sharedAtoms(reagents, products)
	h := container.NewCGR()
	extendedAll := make(map[int]struct{}, len(common))
	staged := make(map[[2]int]*stereoEntry)

	for _, r := range []role{reagentRole(reagents), productRole(products)} {
		ext := make(map[int]struct{}, len(common))
		for _, id := range common {
			ext[id] = struct{}{}
		}

		// Bonds touching the shared set: contribute this role's mark.
		for _, ref := range r.graph.IncidentBonds(common...) {
			ext[ref.Atom1] = struct{}{}
			ext[ref.Atom2] = struct{}{}
			order := ref.Attrs[r.edgeKey]
			if bondOrderSet(order) {
				err := h.UpdateBond(ref.Atom1, ref.Atom2, core.Attrs{r.edgeKey: order})
				if err != nil {
					return nil, ErrMalformedReaction
				}
				if sv := ref.Attrs[r.stereoKey]; sv != nil {
					stageChannel(staged, ref.Atom1, ref.Atom2, sv, r.product)
				}
			}
		}

		// Purely role-local atoms: fragments consumed or produced
		// entirely on this side. Copied verbatim.
		var local []int
		for _, id := range r.graph.Atoms() {
			if _, shared := ext[id]; !shared {
				local = append(local, id)
			}
		}
		for _, ref := range r.graph.IncidentBonds(local...) {
			if err := h.UpdateBond(ref.Atom1, ref.Atom2, ref.Attrs.Clone()); err != nil {
				return nil, ErrMalformedReaction
			}
			stageFull(staged, ref.Atom1, ref.Atom2, ref.Attrs)
		}

		for _, id := range common {
			attrs, err := r.graph.Atom(id)
			if err != nil {
				return nil, ErrMalformedReaction
			}
			h.UpdateAtom(id, filterInclude(attrs, r.nodeKeys))
		}
		for _, id := range sortedSet(ext) {
			if containsInt(common, id) {
				continue
			}
			attrs, _ := r.graph.Atom(id)
			h.UpdateAtom(id, filterExclude(attrs, r.extExcluded))
		}
		for _, id := range local {
			attrs, _ := r.graph.Atom(id)
			h.UpdateAtom(id, attrs.Clone())
		}

		for id := range ext {
			extendedAll[id] = struct{}{}
		}
	}

	h.FixDataScoped(sortedSet(extendedAll), common)

	for _, pair := range sortedPairs(staged) {
		entry := staged[pair]
		if err := h.AddStereo(pair[0], pair[1], entry.s, entry.p); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// sharedAtoms returns the sorted intersection of both atom id sets,
// never nil: an empty intersection must stay distinguishable from the
// "all atoms" nil scope of FixDataScoped.
func sharedAtoms(a, b *container.Container) []int {
	out := make([]int, 0)
	for _, id := range a.Atoms() {
		if b.HasAtom(id) {
			out = append(out, id)
		}
	}
	return out
}

// bondOrderSet reports whether a bond mark value denotes an existing
// bond on that channel.
func bondOrderSet(v any) bool {
	order, ok := v.(int)
	return ok && order != marks.BondNone
}

// stageChannel records one role's stereo descriptor for an atom pair,
// preserving anything the other role already staged.
func stageChannel(staged map[[2]int]*stereoEntry, atom1, atom2 int, v any, product bool) {
	entry := ensureEntry(staged, atom1, atom2)
	if product {
		entry.p = v
	} else {
		entry.s = v
	}
}

// stageFull records a complete both-channel entry for a role-local
// bond.
func stageFull(staged map[[2]int]*stereoEntry, atom1, atom2 int, attrs core.Attrs) {
	entry := ensureEntry(staged, atom1, atom2)
	entry.s = attrs[marks.SStereo]
	entry.p = attrs[marks.PStereo]
}

func ensureEntry(staged map[[2]int]*stereoEntry, atom1, atom2 int) *stereoEntry {
	if atom1 > atom2 {
		atom1, atom2 = atom2, atom1
	}
	key := [2]int{atom1, atom2}
	entry, ok := staged[key]
	if !ok {
		entry = &stereoEntry{}
		staged[key] = entry
	}
	return entry
}

// filterInclude keeps only the listed keys with set values.
func filterInclude(attrs core.Attrs, keys []string) core.Attrs {
	out := make(core.Attrs, len(keys))
	for _, k := range keys {
		if v, ok := attrs[k]; ok && v != nil {
			out[k] = v
		}
	}
	return out
}

// filterExclude keeps every key except the excluded set.
func filterExclude(attrs core.Attrs, excluded map[string]struct{}) core.Attrs {
	out := make(core.Attrs, len(attrs))
	for k, v := range attrs {
		if _, drop := excluded[k]; drop {
			continue
		}
		out[k] = v
	}
	return out
}

func sortedSet(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func containsInt(list []int, id int) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func sortedPairs(staged map[[2]int]*stereoEntry) [][2]int {
	out := make([][2]int, 0, len(staged))
	for pair := range staged {
		out = append(out, pair)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}
