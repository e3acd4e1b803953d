// File: marks.go
// Role: entity kinds, attribute key constants, schema tables, Pair.

package marks

// Kind discriminates the two entity kinds. It is fixed at construction
// time and never mutated; conversion between kinds produces a new
// entity.
type Kind uint8

const (
	// Molecule is a single-state entity: atoms and bonds carry only
	// base and "s_" keys.
	Molecule Kind = iota + 1

	// CGR is a dual-state entity: atoms and bonds additionally carry
	// "p_" keys and derived "sp_" keys.
	CGR
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Molecule:
		return "molecule"
	case CGR:
		return "cgr"
	default:
		return "unknown"
	}
}

// Attribute key names. Node and edge stereo share the "s_stereo" /
// "p_stereo" spelling; the element they attach to disambiguates.
const (
	Element = "element"
	Isotope = "isotope"
	Mark    = "mark"

	SX = "s_x"
	SY = "s_y"
	SZ = "s_z"
	PX = "p_x"
	PY = "p_y"
	PZ = "p_z"

	SCharge  = "s_charge"
	PCharge  = "p_charge"
	SpCharge = "sp_charge"

	SNeighbors  = "s_neighbors"
	PNeighbors  = "p_neighbors"
	SpNeighbors = "sp_neighbors"

	SHyb  = "s_hyb"
	PHyb  = "p_hyb"
	SpHyb = "sp_hyb"

	SStereo  = "s_stereo"
	PStereo  = "p_stereo"
	SpStereo = "sp_stereo"

	SBond  = "s_bond"
	PBond  = "p_bond"
	SpBond = "sp_bond"
)

// Hybridization classes stored under the *_hyb keys.
const (
	HybSP3      = 1
	HybSP2      = 2
	HybSP1      = 3
	HybAromatic = 4
)

// Bond orders stored under the *_bond keys. Zero means "no bond on
// this state channel".
const (
	BondNone     = 0
	BondSingle   = 1
	BondDouble   = 2
	BondTriple   = 3
	BondAromatic = 4
)

// Pair is the combined value written under an "sp_" key when the
// reagent-side and product-side values differ. Either side may be nil
// when the mark exists on one channel only. Pair is comparable as long
// as both sides are scalars, so it can key deduplication sets during
// multi-value merges.
type Pair struct {
	S any
	P any
}

// Triple groups the three spellings of one dual-state mark.
type Triple struct {
	S  string // reagent-side key
	P  string // product-side key
	SP string // combined key
}

var (
	nodeBaseMolecule = [...]string{Element, Isotope, Mark, SX, SY, SZ}
	nodeBaseCGR      = [...]string{Element, Isotope, Mark, SX, SY, SZ, PX, PY, PZ}

	nodeSingle = [...]string{SNeighbors, SHyb, SCharge, SStereo}
	edgeSingle = [...]string{SBond, SStereo}

	nodeTriples = [...]Triple{
		{S: SNeighbors, P: PNeighbors, SP: SpNeighbors},
		{S: SHyb, P: PHyb, SP: SpHyb},
		{S: SCharge, P: PCharge, SP: SpCharge},
		{S: SStereo, P: PStereo, SP: SpStereo},
	}
	edgeTriples = [...]Triple{
		{S: SBond, P: PBond, SP: SpBond},
		{S: SStereo, P: PStereo, SP: SpStereo},
	}
)

// NodeBase returns the base node keys for the given kind.
func NodeBase(k Kind) []string {
	if k == CGR {
		return append([]string(nil), nodeBaseCGR[:]...)
	}
	return append([]string(nil), nodeBaseMolecule[:]...)
}

// NodeSingle returns the single-state node mark keys (kind-independent:
// the same "s_" keys exist on both kinds).
func NodeSingle() []string { return append([]string(nil), nodeSingle[:]...) }

// EdgeSingle returns the single-state edge mark keys.
func EdgeSingle() []string { return append([]string(nil), edgeSingle[:]...) }

// NodeTriples returns the dual-state node mark triples used by CGR
// normalization and compose.
func NodeTriples() []Triple { return append([]Triple(nil), nodeTriples[:]...) }

// EdgeTriples returns the dual-state edge mark triples.
func EdgeTriples() []Triple { return append([]Triple(nil), edgeTriples[:]...) }

// PickleNodeKeys returns the node keys that survive serialization for
// the given kind: base plus single-state for Molecule; base plus both
// state channels (never the derived "sp_" keys) for CGR.
func PickleNodeKeys(k Kind) []string {
	out := NodeBase(k)
	if k == CGR {
		for _, t := range nodeTriples {
			out = append(out, t.S, t.P)
		}
		return out
	}
	return append(out, nodeSingle[:]...)
}

// PickleEdgeKeys returns the edge keys that survive serialization for
// the given kind.
func PickleEdgeKeys(k Kind) []string {
	if k == CGR {
		return []string{SBond, PBond, SStereo, PStereo}
	}
	return EdgeSingle()
}
