// File: pickle.go
// Role: JSON-graph document serialization. Pickle emits only the
//       schema-appropriate keys for the entity kind; Unpickle rebuilds
//       the entity, normalizes it, and merges the document meta.

package container

import (
	"fmt"

	"cgrkit/core"
	"cgrkit/marks"
)

// Document is the JSON-graph shaped serialized form of one entity.
//
// Nodes carry "id" plus schema node keys; links carry "atom1"/"atom2"
// plus schema edge keys. SOnly discriminates the kind: true for a
// plain Molecule, false for a CGR.
type Document struct {
	Directed   bool             `json:"directed"`
	Multigraph bool             `json:"multigraph"`
	Graph      map[string]any   `json:"graph"`
	Nodes      []map[string]any `json:"nodes"`
	Links      []map[string]any `json:"links"`
	Meta       map[string]any   `json:"meta"`
	SOnly      bool             `json:"s_only"`
}

// intValued lists the schema keys holding integer marks; unpickle
// coerces their values back from float64 after a trip through
// encoding/json.
var intValued = map[string]struct{}{
	marks.Isotope: {},
	marks.SCharge: {}, marks.PCharge: {},
	marks.SNeighbors: {}, marks.PNeighbors: {},
	marks.SHyb: {}, marks.PHyb: {},
	marks.SStereo: {}, marks.PStereo: {},
	marks.SBond: {}, marks.PBond: {},
}

// floatValued lists the coordinate keys, stored as float64.
var floatValued = map[string]struct{}{
	marks.SX: {}, marks.SY: {}, marks.SZ: {},
	marks.PX: {}, marks.PY: {}, marks.PZ: {},
}

// Pickle serializes the entity into a JSON-graph document. Only
// schema-appropriate keys survive: the single-state set for a
// Molecule, both state channels (never the derived "sp_" keys) for a
// CGR. Unset values and non-schema keys are dropped by design.
func (c *Container) Pickle() *Document {
	nodeKeys := marks.PickleNodeKeys(c.kind)
	edgeKeys := marks.PickleEdgeKeys(c.kind)

	doc := &Document{
		Graph: map[string]any{},
		Nodes: make([]map[string]any, 0, c.g.NodeCount()),
		Links: make([]map[string]any, 0, c.g.EdgeCount()),
		Meta:  map[string]any{},
		SOnly: c.kind == marks.Molecule,
	}
	for k, v := range copyMeta(c.meta) {
		doc.Meta[k] = v
	}

	for _, id := range c.g.Nodes() {
		attrs, _ := c.g.Node(id)
		node := map[string]any{"id": id}
		pickKeys(attrs, nodeKeys, node)
		doc.Nodes = append(doc.Nodes, node)
	}
	for _, ref := range c.g.Edges() {
		link := map[string]any{"atom1": ref.Atom1, "atom2": ref.Atom2}
		pickKeys(ref.Attrs, edgeKeys, link)
		doc.Links = append(doc.Links, link)
	}
	return doc
}

// pickKeys copies the listed keys with set values, deep-copying lists.
func pickKeys(attrs core.Attrs, keys []string, out map[string]any) {
	for _, k := range keys {
		v, ok := attrs[k]
		if !ok || v == nil {
			continue
		}
		if list, isList := v.([]any); isList {
			out[k] = cloneList(list)
			continue
		}
		out[k] = v
	}
}

// Unpickle reconstructs an entity from a JSON-graph document: the kind
// is taken from s_only, non-schema keys are dropped, numeric values
// are coerced back to their schema types, the mark normalizer runs,
// and the document meta is merged in.
//
// Returns ErrBadDocument for a nil document, a node without an id, or
// a link carrying no bond order on any state channel; ErrDuplicateID
// for repeated node ids; ErrAtomNotFound for a link referencing an
// unknown atom.
func Unpickle(doc *Document) (*Container, error) {
	if doc == nil {
		return nil, ErrBadDocument
	}
	kind := marks.CGR
	if doc.SOnly {
		kind = marks.Molecule
	}
	c := &Container{kind: kind, g: core.NewGraph()}
	nodeKeys := marks.PickleNodeKeys(kind)
	edgeKeys := marks.PickleEdgeKeys(kind)

	for i, node := range doc.Nodes {
		id, ok := asInt(node["id"])
		if !ok {
			return nil, fmt.Errorf("node %d: missing id: %w", i, ErrBadDocument)
		}
		if c.g.HasNode(id) {
			return nil, fmt.Errorf("node id %d: %w", id, ErrDuplicateID)
		}
		c.g.AddNode(id, coerceKeys(node, nodeKeys))
	}
	for i, link := range doc.Links {
		atom1, ok1 := asInt(link["atom1"])
		atom2, ok2 := asInt(link["atom2"])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("link %d: missing endpoint: %w", i, ErrBadDocument)
		}
		if !c.g.HasNode(atom1) || !c.g.HasNode(atom2) {
			return nil, fmt.Errorf("link %d-%d: %w", atom1, atom2, ErrAtomNotFound)
		}
		attrs := coerceKeys(link, edgeKeys)
		if !linkHasOrder(attrs) {
			return nil, fmt.Errorf("link %d-%d: no bond order on any channel: %w", atom1, atom2, ErrBadDocument)
		}
		if err := c.g.AddEdge(atom1, atom2, attrs); err != nil {
			return nil, fmt.Errorf("link %d-%d: %w", atom1, atom2, err)
		}
	}

	c.FixData()
	if len(doc.Meta) > 0 {
		meta := c.Meta()
		for k, v := range doc.Meta {
			meta[k] = v
		}
	}
	return c, nil
}

// linkHasOrder reports whether a decoded link carries a bond order on
// at least one state channel. A scalar zero means "no bond on this
// channel"; list-valued orders from multi-value merges always count.
func linkHasOrder(attrs core.Attrs) bool {
	for _, k := range []string{marks.SBond, marks.PBond} {
		switch v := attrs[k].(type) {
		case nil:
		case int:
			if v != marks.BondNone {
				return true
			}
		default:
			return true
		}
	}
	return false
}

// coerceKeys extracts the listed keys from a document element,
// coercing numeric values to the schema type of each key.
func coerceKeys(elem map[string]any, keys []string) core.Attrs {
	attrs := make(core.Attrs, len(keys))
	for _, k := range keys {
		v, ok := elem[k]
		if !ok || v == nil {
			continue
		}
		attrs[k] = coerceValue(k, v)
	}
	return attrs
}

// coerceValue maps a decoded JSON value onto the schema type of its
// key: integer marks become int, coordinates float64; lists coerce
// element-wise; everything else passes through.
func coerceValue(key string, v any) any {
	switch val := v.(type) {
	case float64:
		if _, isInt := intValued[key]; isInt {
			return int(val)
		}
		return val
	case int:
		if _, isFloat := floatValued[key]; isFloat {
			return float64(val)
		}
		return val
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = coerceValue(key, item)
		}
		return out
	default:
		return v
	}
}

// asInt extracts an integer id from a decoded JSON value.
func asInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case float64:
		return int(val), true
	default:
		return 0, false
	}
}
