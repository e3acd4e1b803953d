// Package container implements the chemical entity model: Molecule and
// CGR entities over the attributed graph engine, plus the Reaction
// container.
//
// What:
//
//   - Container: a tagged-variant entity (marks.Molecule or marks.CGR)
//     holding a core.Graph by composition and a free-form meta map.
//     Typed atom/bond construction (AddAtom, AddBond) with functional
//     options; accessors (Atom, Bond); Copy, Subgraph, Remap,
//     Environment expansion, reaction-center detection (CenterAtoms).
//   - FixData: the mark normalizer — rebuilds every attribute map
//     strictly from the schema (package marks), deriving the combined
//     "sp_" marks on CGR entities. Pure filter-and-rewrite, idempotent.
//   - ResetQueryMarks: the per-atom hybridization/neighbor-count
//     deriver, per state channel.
//   - Pickle/Unpickle: the JSON-graph document adapter; only
//     schema-appropriate keys survive the round trip.
//   - Reaction: ordered reagent/product/reactant sequences plus meta,
//     with the legacy "substrats" compatibility shim at the boundary.
//
// Entity independence:
//
//	Every Copy, Subgraph, Remap-copy and Unpickle result is a fresh
//	entity; mutating it never mutates its source. This is a
//	correctness invariant relied on by the merge engine.
//
// Errors:
//
//	ErrDuplicateID  - AddAtom with an id that already exists.
//	ErrAtomNotFound - accessor or bond endpoint on an absent atom.
//	ErrBondNotFound - accessor on an absent bond.
//	ErrEmptyBond    - AddBond with no order on any state channel.
//	ErrKindMismatch - product-state option applied to a Molecule.
//	ErrInvalidKey   - Reaction field accessor with an unknown name.
//	ErrBadDocument  - malformed serialized document.
//
// All errors are synchronous precondition violations; nothing is
// retried internally.
package container
