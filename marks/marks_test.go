package marks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cgrkit/marks"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "molecule", marks.Molecule.String())
	assert.Equal(t, "cgr", marks.CGR.String())
	assert.Equal(t, "unknown", marks.Kind(0).String())
}

func TestPickleNodeKeys_Molecule(t *testing.T) {
	keys := marks.PickleNodeKeys(marks.Molecule)
	assert.ElementsMatch(t, []string{
		"element", "isotope", "mark", "s_x", "s_y", "s_z",
		"s_neighbors", "s_hyb", "s_charge", "s_stereo",
	}, keys)
	assert.NotContains(t, keys, "p_charge")
	assert.NotContains(t, keys, "sp_charge")
}

func TestPickleNodeKeys_CGR(t *testing.T) {
	keys := marks.PickleNodeKeys(marks.CGR)
	assert.Contains(t, keys, "p_charge")
	assert.Contains(t, keys, "p_x")
	for _, k := range keys {
		assert.NotContains(t, k, "sp_", "derived combined keys never serialize")
	}
}

func TestPickleEdgeKeys(t *testing.T) {
	assert.ElementsMatch(t, []string{"s_bond", "s_stereo"}, marks.PickleEdgeKeys(marks.Molecule))
	assert.ElementsMatch(t, []string{"s_bond", "p_bond", "s_stereo", "p_stereo"}, marks.PickleEdgeKeys(marks.CGR))
}

func TestTables_ReturnFreshCopies(t *testing.T) {
	a := marks.NodeBase(marks.CGR)
	a[0] = "corrupted"
	assert.Equal(t, "element", marks.NodeBase(marks.CGR)[0])

	tr := marks.NodeTriples()
	tr[0].S = "corrupted"
	assert.Equal(t, "s_neighbors", marks.NodeTriples()[0].S)
}

func TestPair_ComparableForSets(t *testing.T) {
	set := map[marks.Pair]struct{}{
		{S: 1, P: 2}: {},
		{S: 1, P: 2}: {},
	}
	assert.Len(t, set, 1)
}
