// Package canon defines the canonicalization collaborator contracts
// consumed by the entity model, and the canonical-string hash.
//
// The Morgan-style weight computation and the canonical string
// rendering are external collaborators: pure functions the core never
// re-validates. This package fixes their signatures (WeightsFunc,
// StringFunc), provides Signature/SignatureHash to chain them, and
// implements the hash itself.
package canon
