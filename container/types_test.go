package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgrkit/container"
	"cgrkit/marks"
)

// buildEthanol creates CH3-CH2-OH heavy atoms only: C1-C2-O3.
func buildEthanol(t *testing.T) *container.Container {
	t.Helper()
	m := container.NewMolecule()
	for _, element := range []string{"C", "C", "O"} {
		_, err := m.AddAtom(element, 0)
		require.NoError(t, err)
	}
	require.NoError(t, m.AddBond(1, 2, marks.BondSingle))
	require.NoError(t, m.AddBond(2, 3, marks.BondSingle))
	return m
}

func TestAddAtom_AutoAssignsPositiveIDs(t *testing.T) {
	m := container.NewMolecule()
	id1, err := m.AddAtom("C", 0)
	require.NoError(t, err)
	id2, err := m.AddAtom("O", -1)
	require.NoError(t, err)
	assert.Equal(t, 1, id1)
	assert.Equal(t, 2, id2)

	// Pinned id moves the auto sequence past it.
	id9, err := m.AddAtom("N", 0, container.WithAtomID(9))
	require.NoError(t, err)
	assert.Equal(t, 9, id9)
	next, err := m.AddAtom("C", 0)
	require.NoError(t, err)
	assert.Equal(t, 10, next)
}

func TestAddAtom_DuplicateID(t *testing.T) {
	m := container.NewMolecule()
	_, err := m.AddAtom("C", 0, container.WithAtomID(5))
	require.NoError(t, err)
	_, err = m.AddAtom("N", 0, container.WithAtomID(5))
	assert.ErrorIs(t, err, container.ErrDuplicateID)
}

func TestAddAtom_MoleculeAttributes(t *testing.T) {
	m := container.NewMolecule()
	id, err := m.AddAtom("N", 1,
		container.WithMark("x"),
		container.WithIsotope(15),
		container.WithCoords(1.5, 0, -2))
	require.NoError(t, err)

	attrs, err := m.Atom(id)
	require.NoError(t, err)
	assert.Equal(t, "N", attrs[marks.Element])
	assert.Equal(t, 1, attrs[marks.SCharge])
	assert.Equal(t, "x", attrs[marks.Mark])
	assert.Equal(t, 15, attrs[marks.Isotope])
	assert.Equal(t, 1.5, attrs[marks.SX])
	assert.Equal(t, -2.0, attrs[marks.SZ])
	assert.NotContains(t, attrs, marks.PCharge, "molecule atoms carry no product state")
}

func TestAddAtom_CGRDefaultsProductState(t *testing.T) {
	c := container.NewCGR()
	id, err := c.AddAtom("C", -1, container.WithCoords(2, 3, 4))
	require.NoError(t, err)

	attrs, err := c.Atom(id)
	require.NoError(t, err)
	assert.Equal(t, -1, attrs[marks.PCharge], "unchanged atom duplicates the reagent charge")
	assert.Equal(t, 2.0, attrs[marks.PX])

	id2, err := c.AddAtom("C", 0, container.WithProductCharge(1), container.WithProductCoords(7, 8, 9))
	require.NoError(t, err)
	attrs2, err := c.Atom(id2)
	require.NoError(t, err)
	assert.Equal(t, 0, attrs2[marks.SCharge])
	assert.Equal(t, 1, attrs2[marks.PCharge])
	assert.Equal(t, 7.0, attrs2[marks.PX])
	assert.Equal(t, 0.0, attrs2[marks.SX])
}

func TestAddAtom_ProductOptionsRejectedOnMolecule(t *testing.T) {
	m := container.NewMolecule()
	_, err := m.AddAtom("C", 0, container.WithProductCharge(1))
	assert.ErrorIs(t, err, container.ErrKindMismatch)
	_, err = m.AddAtom("C", 0, container.WithProductCoords(1, 1, 1))
	assert.ErrorIs(t, err, container.ErrKindMismatch)
}

func TestAddBond_Molecule(t *testing.T) {
	m := buildEthanol(t)

	attrs, err := m.Bond(1, 2)
	require.NoError(t, err)
	assert.Equal(t, marks.BondSingle, attrs[marks.SBond])

	// Endpoint validation.
	assert.ErrorIs(t, m.AddBond(1, 42, marks.BondSingle), container.ErrAtomNotFound)
	// Falsy order.
	assert.ErrorIs(t, m.AddBond(1, 3, marks.BondNone), container.ErrEmptyBond)
	// Product order on a molecule.
	assert.ErrorIs(t, m.AddBond(1, 3, marks.BondSingle, container.WithProductOrder(2)), container.ErrKindMismatch)
}

func TestAddBond_CGRChannels(t *testing.T) {
	c := container.NewCGR()
	for i := 0; i < 3; i++ {
		_, err := c.AddAtom("C", 0)
		require.NoError(t, err)
	}

	// Broken bond: exists only on the reagent side.
	require.NoError(t, c.AddBond(1, 2, marks.BondSingle))
	attrs, err := c.Bond(1, 2)
	require.NoError(t, err)
	assert.Equal(t, marks.BondSingle, attrs[marks.SBond])
	assert.NotContains(t, attrs, marks.PBond)

	// Formed bond: exists only on the product side.
	require.NoError(t, c.AddBond(2, 3, marks.BondNone, container.WithProductOrder(marks.BondDouble)))
	attrs, err = c.Bond(2, 3)
	require.NoError(t, err)
	assert.Equal(t, marks.BondDouble, attrs[marks.PBond])
	assert.NotContains(t, attrs, marks.SBond)

	// No order on any channel.
	assert.ErrorIs(t, c.AddBond(1, 3, marks.BondNone), container.ErrEmptyBond)
}

func TestAccessors_NotFound(t *testing.T) {
	m := buildEthanol(t)
	_, err := m.Atom(99)
	assert.ErrorIs(t, err, container.ErrAtomNotFound)
	_, err = m.Bond(1, 3)
	assert.ErrorIs(t, err, container.ErrBondNotFound)
}

func TestCounts(t *testing.T) {
	m := buildEthanol(t)
	assert.Equal(t, 3, m.AtomsCount())
	assert.Equal(t, 2, m.BondsCount())
	assert.Equal(t, []int{1, 2, 3}, m.Atoms())
}
