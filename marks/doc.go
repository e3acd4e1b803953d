// Package marks is the attribute schema: the static classification of
// which attribute keys exist on atoms and bonds, per entity kind.
//
// Taxonomy:
//
//   - base keys: always present, not state-qualified (element, isotope,
//     the free-form mark label, coordinates).
//   - single-state keys ("s_" prefix): reagent-side charge, neighbor
//     count, hybridization class, stereo descriptor.
//   - dual-state keys ("p_" prefix): the product-side counterpart of
//     each single-state key. CGR entities only.
//   - combined keys ("sp_" prefix): derived — equal to the shared value
//     when the two states agree, otherwise a Pair (or a set-valued
//     merge for multi-value marks). CGR entities only.
//
// The tables here are the single source of truth consulted by
// serialization, the mark normalizer, and the compose algorithm.
// Lookups are pure and total for both entity kinds; the tables are
// never mutated at runtime (accessors return fresh copies).
package marks
