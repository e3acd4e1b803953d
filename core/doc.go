// Package core implements the attributed graph engine underlying every
// chemical entity: an undirected simple graph whose nodes are integer
// atom-map ids and whose nodes and edges each carry a free-form
// attribute map (Attrs).
//
// What:
//
//   - Node/edge CRUD with networkx-style merge semantics: adding a node
//     or edge that already exists merges the supplied attributes into
//     the stored map instead of failing. AddEdge creates missing
//     endpoints implicitly.
//   - Deterministic enumeration: Nodes and Neighbors are sorted
//     ascending, Edges by normalized (min,max) endpoint pair.
//   - Structure extraction: Clone, induced Subgraph, and
//     ConnectedComponents all return independent deep copies whose
//     later mutation never affects the source.
//   - Relabel: injective node-id remapping, rejecting collisions.
//
// Why:
//
//	Molecule and CGR entities (package container) hold a core.Graph by
//	composition and expose a narrower, schema-aware interface on top.
//	The merge engine (package cgr) relies on the merge semantics of
//	AddNode/AddEdge to accumulate reagent-side and product-side marks
//	onto one shared node or edge.
//
// Concurrency:
//
//	The engine is plain single-threaded state. Concurrent read-only
//	access is safe; concurrent mutation of one Graph requires external
//	locking. Attribute maps returned by Node/Edge are live references
//	by design — callers mutate chemistry through them.
//
// Errors:
//
//	ErrNodeNotFound  - requested node does not exist.
//	ErrEdgeNotFound  - requested edge does not exist.
//	ErrLoopNotAllowed - self-edge attempted (chemistry has no self-bonds).
//	ErrIDCollision   - relabel mapping is not injective over the node set.
package core
