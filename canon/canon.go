// File: canon.go
// Role: collaborator signatures and the canonical-string hash.

package canon

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"cgrkit/container"
)

// ErrNilCollaborator indicates Signature was called without a weights
// or string collaborator.
var ErrNilCollaborator = errors.New("canon: nil collaborator function")

// Options selects which atom facets participate in canonicalization.
type Options struct {
	// Isotope includes isotope marks.
	Isotope bool

	// Stereo includes stereo descriptors.
	Stereo bool

	// Hybridization includes derived hybridization marks; callers
	// should run ResetQueryMarks first.
	Hybridization bool

	// Element includes element symbols (on by default in practice).
	Element bool
}

// WeightsFunc computes canonical node weights for an entity — the
// Morgan-style refinement. It must be pure: equal inputs yield equal
// weights, and the weight map covers every atom id.
type WeightsFunc func(c *container.Container, isotope, element bool) (map[int]int, error)

// StringFunc renders the canonical string of an entity given its node
// weights. It must be pure and total over well-formed entities.
type StringFunc func(c *container.Container, weights map[int]int, opts Options) (string, error)

// Signature chains the two collaborators: weights first, then the
// canonical string.
func Signature(c *container.Container, weights WeightsFunc, render StringFunc, opts Options) (string, error) {
	if weights == nil || render == nil {
		return "", ErrNilCollaborator
	}
	w, err := weights(c, opts.Isotope, opts.Element)
	if err != nil {
		return "", fmt.Errorf("canon: weights: %w", err)
	}
	return render(c, w, opts)
}

// SignatureHash returns Hash(Signature(...)).
func SignatureHash(c *container.Container, weights WeightsFunc, render StringFunc, opts Options) (string, error) {
	s, err := Signature(c, weights, render, opts)
	if err != nil {
		return "", err
	}
	return Hash(s), nil
}

// Hash digests a canonical string into a fixed-width hex form.
// Deterministic across processes and platforms.
func Hash(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}
