// File: merge.go
// Role: Split and Union — structural decomposition and splice.

package cgr

import (
	"errors"

	"cgrkit/container"
	"cgrkit/marks"
)

// Sentinel errors for merge operations.
var (
	// ErrNodeCollision indicates the two union inputs have overlapping
	// atom-map id sets.
	ErrNodeCollision = errors.New("cgr: atom id sets are not disjoint")

	// ErrMalformedReaction indicates compose received inputs that
	// violate its construction invariants.
	ErrMalformedReaction = errors.New("cgr: malformed reaction input")
)

// Split decomposes an entity into its connected components, each a new
// independent entity of the same kind. Meta is copied onto every part
// only when withMeta is set.
// Complexity: O(V + E).
func Split(c *container.Container, withMeta bool) []*container.Container {
	components := c.Components()
	out := make([]*container.Container, len(components))
	for i, component := range components {
		out[i] = c.Subgraph(component, withMeta)
	}
	return out
}

// Union splices two entities with disjoint atom-map id sets into one
// fresh multi-component entity, copying every atom and bond
// attribute-for-attribute. No normalization is performed. The result
// is a CGR entity if either input is one, else a Molecule.
//
// Returns ErrNodeCollision when the id sets overlap.
// Complexity: O(V + E) over both inputs.
func Union(a, b *container.Container) (*container.Container, error) {
	for _, id := range b.Atoms() {
		if a.HasAtom(id) {
			return nil, ErrNodeCollision
		}
	}

	u := container.NewMolecule()
	if a.Kind() == marks.CGR || b.Kind() == marks.CGR {
		u = container.NewCGR()
	}
	for _, src := range []*container.Container{a, b} {
		for _, id := range src.Atoms() {
			attrs, _ := src.Atom(id)
			u.UpdateAtom(id, attrs.Clone())
		}
		for _, ref := range src.Bonds() {
			if err := u.UpdateBond(ref.Atom1, ref.Atom2, ref.Attrs.Clone()); err != nil {
				return nil, err
			}
		}
	}
	return u, nil
}
