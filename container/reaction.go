// File: reaction.go
// Role: the Reaction container — ordered reagent/product/reactant
//       sequences plus meta — and its serialization, including the
//       legacy "substrats" compatibility shim.

package container

import (
	"fmt"
	"log/slog"
)

// Reaction holds three ordered sequences of entities and a meta
// mapping. The reactants bucket duplicates reagents conceptually and
// is kept for backward compatibility: it round-trips verbatim but is
// inert to the merge algorithm.
//
// Reaction is immutable-by-replacement: accessors return fresh slice
// headers and Copy deep-copies every member, so no shared mutable
// state leaks between reactions.
type Reaction struct {
	reagents  []*Container
	products  []*Container
	reactants []*Container
	meta      map[string]any
}

// ReactionDocument is the serialized form of a Reaction. Substrats is
// the deprecated spelling of Reagents, honored on read only.
type ReactionDocument struct {
	Reagents  []*Document    `json:"reagents"`
	Products  []*Document    `json:"products"`
	Reactants []*Document    `json:"reactants"`
	Substrats []*Document    `json:"substrats,omitempty"`
	Meta      map[string]any `json:"meta"`
}

// NewReaction builds a reaction from its member sequences; any of them
// and meta may be nil. The slices are copied (the entities themselves
// are shared until Copy is called).
func NewReaction(reagents, products, reactants []*Container, meta map[string]any) *Reaction {
	return &Reaction{
		reagents:  append([]*Container(nil), reagents...),
		products:  append([]*Container(nil), products...),
		reactants: append([]*Container(nil), reactants...),
		meta:      meta,
	}
}

// Reagents returns the reagent sequence (fresh slice header).
func (r *Reaction) Reagents() []*Container { return append([]*Container(nil), r.reagents...) }

// Products returns the product sequence (fresh slice header).
func (r *Reaction) Products() []*Container { return append([]*Container(nil), r.products...) }

// Reactants returns the backward-compatibility bucket (fresh slice
// header).
func (r *Reaction) Reactants() []*Container { return append([]*Container(nil), r.reactants...) }

// Substrats returns the reagent sequence under its legacy name.
//
// Deprecated: use Reagents. Kept as an explicit compatibility shim;
// every call reports a deprecation warning.
func (r *Reaction) Substrats() []*Container {
	warnDeprecatedKey()
	return r.Reagents()
}

// Meta returns the live meta mapping, allocating it on first use.
func (r *Reaction) Meta() map[string]any {
	if r.meta == nil {
		r.meta = make(map[string]any)
	}
	return r.meta
}

// Get resolves a field by name: "reagents", "products", "reactants"
// and "meta", plus the deprecated "substrats" alias (reported, not
// failed). Unknown names return ErrInvalidKey.
func (r *Reaction) Get(field string) (any, error) {
	switch field {
	case "substrats":
		warnDeprecatedKey()
		return r.Reagents(), nil
	case "reagents":
		return r.Reagents(), nil
	case "products":
		return r.Products(), nil
	case "reactants":
		return r.Reactants(), nil
	case "meta":
		return r.Meta(), nil
	default:
		return nil, fmt.Errorf("%q: %w", field, ErrInvalidKey)
	}
}

// Copy returns a deep copy: every member entity and the meta mapping
// are copied, so mutating the copy never touches the original.
func (r *Reaction) Copy() *Reaction {
	return &Reaction{
		reagents:  copyEntities(r.reagents),
		products:  copyEntities(r.products),
		reactants: copyEntities(r.reactants),
		meta:      copyMeta(r.meta),
	}
}

// Pickle serializes the reaction: every member entity as a Document
// plus the meta mapping.
func (r *Reaction) Pickle() *ReactionDocument {
	doc := &ReactionDocument{
		Reagents:  pickleEntities(r.reagents),
		Products:  pickleEntities(r.products),
		Reactants: pickleEntities(r.reactants),
		Meta:      map[string]any{},
	}
	for k, v := range copyMeta(r.meta) {
		doc.Meta[k] = v
	}
	return doc
}

// UnpickleReaction reconstructs a reaction from its document. When the
// reagents array is absent the legacy "substrats" array is honored
// with a deprecation warning.
func UnpickleReaction(doc *ReactionDocument) (*Reaction, error) {
	if doc == nil {
		return nil, ErrBadDocument
	}
	reagentDocs := doc.Reagents
	if reagentDocs == nil && doc.Substrats != nil {
		warnDeprecatedKey()
		reagentDocs = doc.Substrats
	}
	reagents, err := unpickleEntities("reagent", reagentDocs)
	if err != nil {
		return nil, err
	}
	products, err := unpickleEntities("product", doc.Products)
	if err != nil {
		return nil, err
	}
	reactants, err := unpickleEntities("reactant", doc.Reactants)
	if err != nil {
		return nil, err
	}
	return NewReaction(reagents, products, reactants, copyMeta(doc.Meta)), nil
}

func copyEntities(in []*Container) []*Container {
	out := make([]*Container, len(in))
	for i, c := range in {
		out[i] = c.Copy()
	}
	return out
}

func pickleEntities(in []*Container) []*Document {
	out := make([]*Document, len(in))
	for i, c := range in {
		out[i] = c.Pickle()
	}
	return out
}

func unpickleEntities(role string, in []*Document) ([]*Container, error) {
	out := make([]*Container, len(in))
	for i, doc := range in {
		c, err := Unpickle(doc)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", role, i, err)
		}
		out[i] = c
	}
	return out, nil
}

// warnDeprecatedKey reports legacy "substrats" usage once per call
// site invocation; deprecated access still returns the data.
func warnDeprecatedKey() {
	slog.Warn("deprecated reaction key, use reagents instead", "key", "substrats")
}
