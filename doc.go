// Package cgrkit models chemical entities — molecules and reactions — as
// attributed graphs, and builds the Condensed Graph of Reaction (CGR):
// a single graph whose atoms and bonds carry dual-state attributes
// describing reagent-side and product-side chemistry at once.
//
// What lives where:
//
//	core/      — the attributed graph engine: undirected graph with
//	             per-node and per-edge attribute maps, subgraph
//	             extraction, connected components, relabeling
//	marks/     — the attribute schema: which keys are single-state,
//	             dual-state, or combined, per entity kind
//	container/ — Molecule and CGR entities, the mark normalizer, the
//	             hybridization/neighbor deriver, environment expansion,
//	             JSON-document serialization, and the Reaction container
//	cgr/       — the merge engine: Split, Union, and Compose, which
//	             turns a (reagents, products) pair sharing one
//	             atom-mapping id space into a CGR
//	canon/     — canonicalization collaborator contracts and the
//	             canonical-string hash
//
// A typical flow: union all reagent molecules into one multi-component
// graph, likewise all products, then Compose the two. The result is a
// CGR entity whose reaction center is available via CenterAtoms.
//
// All operations are synchronous and CPU-bound; every merge, subgraph
// and copy returns an independent entity. Concurrent read-only access
// is safe; concurrent mutation of one entity requires external locking.
package cgrkit
