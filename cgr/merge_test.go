package cgr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgrkit/cgr"
	"cgrkit/container"
	"cgrkit/marks"
)

// buildChain creates a molecule with sequential single bonds over the
// given atom-map ids.
func buildChain(t *testing.T, ids ...int) *container.Container {
	t.Helper()
	m := container.NewMolecule()
	for _, id := range ids {
		_, err := m.AddAtom("C", 0, container.WithAtomID(id))
		require.NoError(t, err)
	}
	for i := 1; i < len(ids); i++ {
		require.NoError(t, m.AddBond(ids[i-1], ids[i], marks.BondSingle))
	}
	return m
}

func TestUnion_Disjoint(t *testing.T) {
	a := buildChain(t, 1, 2)
	b := buildChain(t, 3, 4, 5)
	a.Meta()["name"] = "a"

	u, err := cgr.Union(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, u.Atoms())
	assert.Equal(t, 3, u.BondsCount())
	assert.Equal(t, marks.Molecule, u.Kind())
	assert.Empty(t, u.Meta(), "union copies no meta")
	assert.False(t, u.HasBond(2, 3), "no bond is invented between the parts")
}

func TestUnion_AttributesVerbatimAndIndependent(t *testing.T) {
	a := buildChain(t, 1, 2)
	aAttrs, err := a.Atom(1)
	require.NoError(t, err)
	aAttrs["junk"] = "survives"
	b := buildChain(t, 3)

	u, err := cgr.Union(a, b)
	require.NoError(t, err)

	got, err := u.Atom(1)
	require.NoError(t, err)
	assert.Equal(t, "survives", got["junk"], "no normalization on union")

	got[marks.SCharge] = 9
	orig, _ := a.Atom(1)
	assert.Equal(t, 0, orig[marks.SCharge], "union result does not alias its inputs")
}

func TestUnion_KindPromotion(t *testing.T) {
	a := buildChain(t, 1, 2)
	b := container.NewCGR()
	_, err := b.AddAtom("O", 0, container.WithAtomID(3))
	require.NoError(t, err)

	u, err := cgr.Union(a, b)
	require.NoError(t, err)
	assert.Equal(t, marks.CGR, u.Kind())

	u2, err := cgr.Union(b, a)
	require.NoError(t, err)
	assert.Equal(t, marks.CGR, u2.Kind())
}

func TestUnion_Collision(t *testing.T) {
	a := buildChain(t, 1, 2)
	b := buildChain(t, 2, 3)
	_, err := cgr.Union(a, b)
	assert.ErrorIs(t, err, cgr.ErrNodeCollision)
}

func TestSplit(t *testing.T) {
	m := buildChain(t, 1, 2)
	_, err := m.AddAtom("O", 0, container.WithAtomID(7))
	require.NoError(t, err)
	m.Meta()["name"] = "mixture"

	parts := cgr.Split(m, false)
	require.Len(t, parts, 2)
	assert.Equal(t, []int{1, 2}, parts[0].Atoms())
	assert.Equal(t, []int{7}, parts[1].Atoms())
	assert.Equal(t, marks.Molecule, parts[0].Kind())
	assert.Empty(t, parts[0].Meta())

	withMeta := cgr.Split(m, true)
	assert.Equal(t, "mixture", withMeta[0].Meta()["name"])
	assert.Equal(t, "mixture", withMeta[1].Meta()["name"])
}

func TestSplit_SingleComponent(t *testing.T) {
	m := buildChain(t, 1, 2, 3)
	parts := cgr.Split(m, false)
	require.Len(t, parts, 1)
	assert.Equal(t, []int{1, 2, 3}, parts[0].Atoms())
	assert.Equal(t, 2, parts[0].BondsCount())
}
