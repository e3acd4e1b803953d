// File: stereo.go
// Role: stereo descriptor extension points. Stereo computation is not
//       implemented; these hooks validate their inputs and report
//       "not computed" so callers can already wire them.

package container

// AddStereo records a stereo descriptor for the bond between atom1 and
// atom2, one value per state channel (pass nil for an absent channel).
// Returns ErrBondNotFound if the bond does not exist.
//
// TODO: stereo descriptor algebra — project the staged marks onto
// s_stereo/p_stereo once the wedge/parity model is defined.
func (c *Container) AddStereo(atom1, atom2 int, sMark, pMark any) error {
	if !c.g.HasEdge(atom1, atom2) {
		return ErrBondNotFound
	}
	_ = sMark
	_ = pMark
	return nil
}

// GetStereo returns the stereo descriptors of the bond between atom1
// and atom2, per state channel. Stereo is not computed yet, so both
// values are nil for any existing bond. Returns ErrBondNotFound if the
// bond does not exist.
func (c *Container) GetStereo(atom1, atom2 int) (sMark, pMark any, err error) {
	if !c.g.HasEdge(atom1, atom2) {
		return nil, nil, ErrBondNotFound
	}
	return nil, nil, nil
}

// fixStereo re-derives stereo-dependent marks after a subgraph cut
// changes an atom's boundary. No-op until stereo lands.
func (c *Container) fixStereo() {}
