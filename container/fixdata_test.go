package container_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgrkit/container"
	"cgrkit/core"
	"cgrkit/marks"
)

func TestFixData_PrunesForeignKeys(t *testing.T) {
	m := buildEthanol(t)
	m.UpdateAtom(1, core.Attrs{"weird": 5, marks.SHyb: marks.HybSP3})
	bond, err := m.Bond(1, 2)
	require.NoError(t, err)
	bond["transient"] = true

	m.FixData()

	attrs, err := m.Atom(1)
	require.NoError(t, err)
	assert.NotContains(t, attrs, "weird")
	assert.Equal(t, marks.HybSP3, attrs[marks.SHyb], "schema keys survive")
	assert.Equal(t, "C", attrs[marks.Element])

	bond, err = m.Bond(1, 2)
	require.NoError(t, err)
	assert.Equal(t, core.Attrs{marks.SBond: marks.BondSingle}, bond)
}

func TestFixData_DropsNilValues(t *testing.T) {
	m := buildEthanol(t)
	m.UpdateAtom(1, core.Attrs{marks.Isotope: nil})

	m.FixData()

	attrs, err := m.Atom(1)
	require.NoError(t, err)
	assert.NotContains(t, attrs, marks.Isotope)
}

func TestFixData_DerivesCombinedScalarMarks(t *testing.T) {
	c := container.NewCGR()
	_, err := c.AddAtom("C", 0, container.WithProductCharge(1))
	require.NoError(t, err)
	_, err = c.AddAtom("C", -1)
	require.NoError(t, err)
	require.NoError(t, c.AddBond(1, 2, marks.BondSingle, container.WithProductOrder(marks.BondDouble)))

	c.FixData()

	// Changed atom: channels kept, combined mark is the ordered pair.
	attrs, err := c.Atom(1)
	require.NoError(t, err)
	assert.Equal(t, 0, attrs[marks.SCharge])
	assert.Equal(t, 1, attrs[marks.PCharge])
	assert.Equal(t, marks.Pair{S: 0, P: 1}, attrs[marks.SpCharge])

	// Unchanged atom: combined mark collapses to the shared value.
	attrs, err = c.Atom(2)
	require.NoError(t, err)
	assert.Equal(t, -1, attrs[marks.SCharge])
	assert.Equal(t, -1, attrs[marks.PCharge])
	assert.Equal(t, -1, attrs[marks.SpCharge])

	bond, err := c.Bond(1, 2)
	require.NoError(t, err)
	assert.Equal(t, marks.BondSingle, bond[marks.SBond])
	assert.Equal(t, marks.BondDouble, bond[marks.PBond])
	assert.Equal(t, marks.Pair{S: marks.BondSingle, P: marks.BondDouble}, bond[marks.SpBond])
}

func TestFixData_HalfSetChannelKeepsPresentSide(t *testing.T) {
	c := container.NewCGR()
	_, err := c.AddAtom("C", 0)
	require.NoError(t, err)
	_, err = c.AddAtom("C", 0)
	require.NoError(t, err)
	// Broken bond: reagent side only.
	require.NoError(t, c.AddBond(1, 2, marks.BondSingle))

	c.FixData()

	bond, err := c.Bond(1, 2)
	require.NoError(t, err)
	assert.Equal(t, marks.BondSingle, bond[marks.SBond])
	assert.NotContains(t, bond, marks.PBond)
	assert.Equal(t, marks.Pair{S: marks.BondSingle, P: nil}, bond[marks.SpBond])
}

func TestFixData_ListChannelsMergeToPairSet(t *testing.T) {
	c := container.NewCGR()
	_, err := c.AddAtom("C", 0)
	require.NoError(t, err)
	c.UpdateAtom(1, core.Attrs{
		marks.SHyb: []any{marks.HybSP3, marks.HybSP2, marks.HybSP3},
		marks.PHyb: marks.HybSP2,
	})

	c.FixData()

	attrs, err := c.Atom(1)
	require.NoError(t, err)
	// The (sp2, sp2) combination is unchanged and dropped; the rest is
	// deduplicated.
	assert.Equal(t, []any{marks.Pair{S: marks.HybSP3, P: marks.HybSP2}}, attrs[marks.SpHyb])
	assert.Equal(t, []any{marks.HybSP3}, attrs[marks.SHyb])
	assert.Equal(t, []any{marks.HybSP2}, attrs[marks.PHyb])
}

func TestFixData_EqualListsCollapse(t *testing.T) {
	c := container.NewCGR()
	_, err := c.AddAtom("C", 0)
	require.NoError(t, err)
	c.UpdateAtom(1, core.Attrs{
		marks.SNeighbors: []any{2, 1, 2},
		marks.PNeighbors: []any{2, 1, 2},
	})

	c.FixData()

	attrs, err := c.Atom(1)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, attrs[marks.SNeighbors])
	assert.Equal(t, []any{1, 2}, attrs[marks.PNeighbors])
	assert.Equal(t, []any{1, 2}, attrs[marks.SpNeighbors])
}

func TestFixData_Idempotent(t *testing.T) {
	c := container.NewCGR()
	_, err := c.AddAtom("C", 0, container.WithProductCharge(1))
	require.NoError(t, err)
	_, err = c.AddAtom("O", -1)
	require.NoError(t, err)
	require.NoError(t, c.AddBond(1, 2, marks.BondSingle, container.WithProductOrder(marks.BondNone)))
	c.ResetQueryMarks()

	c.FixData()
	first := snapshot(t, c)
	c.FixData()
	assert.Equal(t, first, snapshot(t, c))
}

func TestFixDataScoped_LeavesOutsideUntouched(t *testing.T) {
	m := buildEthanol(t)
	m.UpdateAtom(1, core.Attrs{"junk": 1})
	m.UpdateAtom(3, core.Attrs{"junk": 1})

	m.FixDataScoped([]int{1}, []int{})

	attrs, _ := m.Atom(1)
	assert.NotContains(t, attrs, "junk")
	attrs, _ = m.Atom(3)
	assert.Contains(t, attrs, "junk", "atom outside the scope keeps its keys")
}

// snapshot captures every atom and bond attribute map by value.
func snapshot(t *testing.T, c *container.Container) map[string]core.Attrs {
	t.Helper()
	out := make(map[string]core.Attrs)
	for _, id := range c.Atoms() {
		attrs, err := c.Atom(id)
		require.NoError(t, err)
		out[fmt.Sprintf("atom %d", id)] = attrs.Clone()
	}
	for _, ref := range c.Bonds() {
		out[fmt.Sprintf("bond %d-%d", ref.Atom1, ref.Atom2)] = ref.Attrs.Clone()
	}
	return out
}
