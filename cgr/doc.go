// Package cgr implements the merge engine over chemical entities:
//
//   - Split: connected-component decomposition of one entity into
//     independent single-component entities.
//   - Union: disjoint structural splice of two entities into one
//     multi-component entity, attribute-for-attribute, with no
//     normalization. Used to combine the molecules of one reaction
//     side before composing.
//   - Compose: the central algorithm — merges a reagents graph and a
//     products graph sharing one atom-mapping id space into a single
//     Condensed Graph of Reaction. Each role (reagents, products)
//     contributes its own bond mark and its exclusive node marks;
//     atoms adjacent to the shared boundary are stripped of the
//     opposite role's stale query marks; the touched region is then
//     mark-normalized so every merged atom and bond ends with a
//     schema-clean dual-state attribute set.
//
// Compose reads "s_bond" from the reagents role and "p_bond" from the
// products role: the products argument must therefore carry
// product-side marks (a CGR entity, or a union of them). An edge
// present in both graphs receives both marks on one shared result
// edge; if neither role supplies an order between two shared atoms, no
// edge is created — absence is meaningful.
//
// Errors:
//
//	ErrNodeCollision     - Union inputs share atom-map ids.
//	ErrMalformedReaction - Compose input is nil or structurally unusable.
package cgr
