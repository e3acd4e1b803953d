// File: types.go
// Role: Container type, sentinel errors, constructors, functional
//       options for atom/bond construction, raw merge surfaces used by
//       the merge engine.

package container

import (
	"errors"

	"cgrkit/core"
	"cgrkit/marks"
)

// Sentinel errors for entity operations.
var (
	// ErrDuplicateID indicates AddAtom was given an atom-map id that
	// already exists in the entity.
	ErrDuplicateID = errors.New("container: atom id already exists")

	// ErrAtomNotFound indicates an operation referenced an absent atom.
	ErrAtomNotFound = errors.New("container: atom not found")

	// ErrBondNotFound indicates an operation referenced an absent bond.
	ErrBondNotFound = errors.New("container: bond not found")

	// ErrEmptyBond indicates AddBond supplied no bond order on any
	// state channel. A bond with no order is meaningless and must not
	// exist.
	ErrEmptyBond = errors.New("container: no bond order on any channel")

	// ErrKindMismatch indicates a product-state option was applied to a
	// single-state Molecule entity.
	ErrKindMismatch = errors.New("container: product-state mark on molecule entity")

	// ErrInvalidKey indicates a Reaction field accessor received an
	// unrecognized field name.
	ErrInvalidKey = errors.New("container: invalid reaction key")

	// ErrBadDocument indicates a serialized document that violates the
	// format contract (missing id, unknown endpoint, wrong shape).
	ErrBadDocument = errors.New("container: malformed document")
)

// defaultMark is the free-form atom label used when none is supplied.
const defaultMark = "0"

// Container is a chemical entity: a Molecule or CGR depending on its
// kind, fixed at construction. It wraps the graph engine by
// composition and adds the schema-aware interface.
type Container struct {
	kind marks.Kind
	g    *core.Graph
	meta map[string]any
}

// NewMolecule creates an empty single-state Molecule entity.
func NewMolecule() *Container {
	return &Container{kind: marks.Molecule, g: core.NewGraph()}
}

// NewCGR creates an empty dual-state CGR entity.
func NewCGR() *Container {
	return &Container{kind: marks.CGR, g: core.NewGraph()}
}

// Kind returns the entity kind discriminant.
func (c *Container) Kind() marks.Kind { return c.kind }

// Meta returns the live meta mapping, allocating it on first use.
// Meta is free-form and never state-qualified.
func (c *Container) Meta() map[string]any {
	if c.meta == nil {
		c.meta = make(map[string]any)
	}
	return c.meta
}

// AtomsCount returns the number of atoms.
func (c *Container) AtomsCount() int { return c.g.NodeCount() }

// BondsCount returns the number of bonds.
func (c *Container) BondsCount() int { return c.g.EdgeCount() }

// Atoms returns every atom-map id sorted ascending.
func (c *Container) Atoms() []int { return c.g.Nodes() }

// HasAtom reports whether the atom exists.
func (c *Container) HasAtom(id int) bool { return c.g.HasNode(id) }

// Atom returns the live attribute map of the atom.
// Returns ErrAtomNotFound if absent.
func (c *Container) Atom(id int) (core.Attrs, error) {
	attrs, err := c.g.Node(id)
	if err != nil {
		return nil, ErrAtomNotFound
	}
	return attrs, nil
}

// Bond returns the live attribute map of the bond between atom1 and
// atom2. Returns ErrBondNotFound if absent.
func (c *Container) Bond(atom1, atom2 int) (core.Attrs, error) {
	attrs, err := c.g.Edge(atom1, atom2)
	if err != nil {
		return nil, ErrBondNotFound
	}
	return attrs, nil
}

// HasBond reports whether a bond between atom1 and atom2 exists.
func (c *Container) HasBond(atom1, atom2 int) bool { return c.g.HasEdge(atom1, atom2) }

// Bonds returns every bond as an EdgeRef with normalized endpoints,
// sorted. The attribute maps are live references.
func (c *Container) Bonds() []core.EdgeRef { return c.g.Edges() }

// IncidentBonds returns every bond touching at least one of the given
// atoms, deduplicated and sorted. The attribute maps are live
// references.
func (c *Container) IncidentBonds(ids ...int) []core.EdgeRef { return c.g.IncidentEdges(ids...) }

// Neighbors returns the atom ids bonded to the given atom, sorted.
// Returns ErrAtomNotFound if absent.
func (c *Container) Neighbors(id int) ([]int, error) {
	out, err := c.g.Neighbors(id)
	if err != nil {
		return nil, ErrAtomNotFound
	}
	return out, nil
}

// Components returns the connected components of the entity, each a
// sorted id slice, ordered by smallest member.
func (c *Container) Components() [][]int { return c.g.ConnectedComponents() }

// UpdateAtom merges raw attributes into the given atom, creating it if
// absent. This is the splice surface used by the merge engine; regular
// construction goes through AddAtom.
func (c *Container) UpdateAtom(id int, attrs core.Attrs) { c.g.AddNode(id, attrs) }

// UpdateBond merges raw attributes into the bond between atom1 and
// atom2, creating the bond (and missing endpoints) if absent. Splice
// surface for the merge engine; regular construction goes through
// AddBond.
func (c *Container) UpdateBond(atom1, atom2 int, attrs core.Attrs) error {
	return c.g.AddEdge(atom1, atom2, attrs)
}

// atomConfig collects AtomOption results.
type atomConfig struct {
	id    int
	hasID bool

	mark    string
	isotope int
	hasIso  bool

	x, y, z float64

	pCharge    int
	hasPCharge bool

	px, py, pz float64
	hasPCoords bool
}

// AtomOption configures AddAtom.
type AtomOption func(*atomConfig)

// WithAtomID pins the atom-map id instead of auto-assigning the next
// unused positive integer.
func WithAtomID(id int) AtomOption {
	return func(cfg *atomConfig) { cfg.id = id; cfg.hasID = true }
}

// WithMark sets the free-form atom label (default "0").
func WithMark(mark string) AtomOption {
	return func(cfg *atomConfig) { cfg.mark = mark }
}

// WithIsotope sets the isotope mass number.
func WithIsotope(isotope int) AtomOption {
	return func(cfg *atomConfig) { cfg.isotope = isotope; cfg.hasIso = true }
}

// WithCoords sets the reagent-side coordinates (default origin).
func WithCoords(x, y, z float64) AtomOption {
	return func(cfg *atomConfig) { cfg.x, cfg.y, cfg.z = x, y, z }
}

// WithProductCharge sets the product-side charge on a CGR atom. When
// omitted the product-side charge defaults to the reagent-side value
// (the atom is unchanged by the reaction).
func WithProductCharge(charge int) AtomOption {
	return func(cfg *atomConfig) { cfg.pCharge = charge; cfg.hasPCharge = true }
}

// WithProductCoords sets the product-side coordinates on a CGR atom.
// When omitted they default to the reagent-side coordinates.
func WithProductCoords(x, y, z float64) AtomOption {
	return func(cfg *atomConfig) { cfg.px, cfg.py, cfg.pz = x, y, z; cfg.hasPCoords = true }
}

// bondConfig collects BondOption results.
type bondConfig struct {
	pOrder    int
	hasPOrder bool
}

// BondOption configures AddBond.
type BondOption func(*bondConfig)

// WithProductOrder sets the product-side bond order on a CGR bond.
// Pass the reagent-side order as 0 to model a bond that exists only in
// the products (bond formation).
func WithProductOrder(order int) BondOption {
	return func(cfg *bondConfig) { cfg.pOrder = order; cfg.hasPOrder = true }
}

// AddAtom inserts an atom with the given element symbol and
// reagent-side charge, returning its atom-map id. Without WithAtomID
// the next unused positive integer is assigned. For CGR entities the
// product-side charge and coordinates default to the reagent-side
// values when not supplied.
//
// Returns ErrDuplicateID if a pinned id already exists, and
// ErrKindMismatch if a product-state option is applied to a Molecule.
func (c *Container) AddAtom(element string, charge int, opts ...AtomOption) (int, error) {
	cfg := atomConfig{mark: defaultMark}
	for _, opt := range opts {
		opt(&cfg)
	}
	if c.kind == marks.Molecule && (cfg.hasPCharge || cfg.hasPCoords) {
		return 0, ErrKindMismatch
	}
	id := cfg.id
	if !cfg.hasID {
		id = c.nextAtomID()
	} else if c.g.HasNode(id) {
		return 0, ErrDuplicateID
	}

	// TODO: validate element symbols and charge ranges against the
	// periodic table once an element registry lands.
	attrs := core.Attrs{
		marks.Element: element,
		marks.SCharge: charge,
		marks.Mark:    cfg.mark,
		marks.SX:      cfg.x,
		marks.SY:      cfg.y,
		marks.SZ:      cfg.z,
	}
	if cfg.hasIso {
		attrs[marks.Isotope] = cfg.isotope
	}
	if c.kind == marks.CGR {
		attrs[marks.PCharge] = charge
		if cfg.hasPCharge {
			attrs[marks.PCharge] = cfg.pCharge
		}
		attrs[marks.PX], attrs[marks.PY], attrs[marks.PZ] = cfg.x, cfg.y, cfg.z
		if cfg.hasPCoords {
			attrs[marks.PX], attrs[marks.PY], attrs[marks.PZ] = cfg.px, cfg.py, cfg.pz
		}
	}
	c.g.AddNode(id, attrs)
	return id, nil
}

// nextAtomID returns max(existing ids)+1, starting at 1.
func (c *Container) nextAtomID() int {
	next := 1
	for _, id := range c.g.Nodes() {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// AddBond inserts a bond between two existing atoms with the given
// reagent-side order. On CGR entities the product-side order is set
// via WithProductOrder and either side may be 0 (absent on that
// channel), modeling bond breaking or formation; supplying neither
// order is rejected.
//
// Returns ErrAtomNotFound if either endpoint is absent, ErrEmptyBond
// if no order is supplied on any applicable channel, and
// ErrKindMismatch if WithProductOrder is applied to a Molecule.
func (c *Container) AddBond(atom1, atom2 int, order int, opts ...BondOption) error {
	cfg := bondConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !c.g.HasNode(atom1) || !c.g.HasNode(atom2) {
		return ErrAtomNotFound
	}
	if c.kind == marks.Molecule {
		if cfg.hasPOrder {
			return ErrKindMismatch
		}
		if order == marks.BondNone {
			return ErrEmptyBond
		}
		return c.g.AddEdge(atom1, atom2, core.Attrs{marks.SBond: order})
	}

	attrs := core.Attrs{}
	if order != marks.BondNone {
		attrs[marks.SBond] = order
	}
	if cfg.pOrder != marks.BondNone {
		attrs[marks.PBond] = cfg.pOrder
	}
	if len(attrs) == 0 {
		return ErrEmptyBond
	}
	return c.g.AddEdge(atom1, atom2, attrs)
}
