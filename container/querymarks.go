// File: querymarks.go
// Role: the hybridization/neighbor-count deriver. Per atom and per
//       state channel: neighbor count over non-hydrogen partners,
//       hybridization class from incident bond orders.

package container

import (
	"cgrkit/core"
	"cgrkit/marks"
)

// channel names the mark keys of one state channel.
type channel struct {
	bond      string
	hyb       string
	neighbors string
}

var (
	reagentChannel = channel{bond: marks.SBond, hyb: marks.SHyb, neighbors: marks.SNeighbors}
	productChannel = channel{bond: marks.PBond, hyb: marks.PHyb, neighbors: marks.PNeighbors}
)

// ResetQueryMarks derives the hybridization and neighbor-count marks
// of every atom in place: the "s_" channel for a Molecule, both
// channels plus the combined "sp_" marks for a CGR. Bonds are left
// untouched.
//
// Hybridization classes: 1 sp3, 2 sp2, 3 sp1, 4 aromatic. The rule is
// a monotone reduction over the incident bond orders of one channel —
// any aromatic bond yields 4; otherwise a triple bond or two double
// bonds yield 3; otherwise one double bond yields 2; otherwise 1 —
// so the outcome never depends on neighbor iteration order. The
// neighbor count tallies bonded partners whose element is not
// hydrogen.
func (c *Container) ResetQueryMarks() {
	channels := []channel{reagentChannel}
	if c.kind == marks.CGR {
		channels = append(channels, productChannel)
	}
	for _, id := range c.g.Nodes() {
		attrs, _ := c.g.Node(id)
		label := make(core.Attrs, 6)
		for _, ch := range channels {
			hyb, neighbors := c.deriveChannel(id, ch)
			label[ch.hyb] = hyb
			label[ch.neighbors] = neighbors
		}
		if c.kind == marks.CGR {
			label[marks.SpHyb] = combineScalar(label[marks.SHyb], label[marks.PHyb])
			label[marks.SpNeighbors] = combineScalar(label[marks.SNeighbors], label[marks.PNeighbors])
		}
		attrs.Update(label)
	}
}

// deriveChannel reduces one atom's incident bonds on one state channel
// to (hybridization, neighbor count).
func (c *Container) deriveChannel(id int, ch channel) (int, int) {
	var doubles, neighbors int
	var aromatic, triple bool

	for _, ref := range c.g.IncidentEdges(id) {
		other := ref.Atom1
		if other == id {
			other = ref.Atom2
		}
		order := bondOrder(ref.Attrs[ch.bond])
		if order == marks.BondNone {
			continue
		}
		otherAttrs, err := c.g.Node(other)
		if err == nil && otherAttrs[marks.Element] != "H" {
			neighbors++
		}
		switch order {
		case marks.BondAromatic:
			aromatic = true
		case marks.BondTriple:
			triple = true
		case marks.BondDouble:
			doubles++
		}
	}

	hyb := marks.HybSP3
	switch {
	case aromatic:
		hyb = marks.HybAromatic
	case triple || doubles >= 2:
		hyb = marks.HybSP1
	case doubles == 1:
		hyb = marks.HybSP2
	}
	return hyb, neighbors
}

// combineScalar derives a combined mark from the two channel values:
// the shared value when equal, otherwise the pair.
func combineScalar(s, p any) any {
	if s == p {
		return s
	}
	return marks.Pair{S: s, P: p}
}
