package basis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gonao/basis"
)

func TestAOLocAndNAO(t *testing.T) {
	// O: 3 s shells + 2 p shells; H: 2 s shells each.
	mol := &basis.Mol{
		Atoms: []basis.Atom{{Z: 8}, {Z: 1}, {Z: 1}},
		Shells: []basis.Shell{
			{Atom: 0, L: 0, Nctr: 3},
			{Atom: 0, L: 1, Nctr: 2},
			{Atom: 1, L: 0, Nctr: 2},
			{Atom: 2, L: 0, Nctr: 2},
		},
	}
	require.Equal(t, []int{0, 3, 9, 11, 13}, mol.AOLoc())
	require.Equal(t, 13, mol.NAO())
	require.Equal(t, 1, mol.MaxL(0))
	require.Equal(t, 0, mol.MaxL(1))
	require.NoError(t, mol.Check())
}

func TestDegen(t *testing.T) {
	sph := &basis.Mol{}
	require.Equal(t, 1, sph.Degen(0))
	require.Equal(t, 3, sph.Degen(1))
	require.Equal(t, 5, sph.Degen(2))
	require.Equal(t, 7, sph.Degen(3))

	cart := &basis.Mol{Cart: true}
	require.Equal(t, 1, cart.Degen(0))
	require.Equal(t, 3, cart.Degen(1))
	require.Equal(t, 6, cart.Degen(2))
	require.Equal(t, 10, cart.Degen(3))
}

func TestCheckRejectsBadMetadata(t *testing.T) {
	mol := &basis.Mol{
		Atoms:  []basis.Atom{{Z: 6}},
		Shells: []basis.Shell{{Atom: 1, L: 0, Nctr: 1}},
	}
	require.Error(t, mol.Check())

	mol = &basis.Mol{
		Atoms:  []basis.Atom{{Z: 6}},
		Shells: []basis.Shell{{Atom: 0, L: 0, Nctr: 0}},
	}
	require.Error(t, mol.Check())

	mol = &basis.Mol{Atoms: []basis.Atom{{Z: -1}}}
	require.Error(t, mol.Check())
}

func TestCharge(t *testing.T) {
	z, err := basis.Charge("Fe")
	require.NoError(t, err)
	require.Equal(t, 26, z)

	z, err = basis.Charge("fe")
	require.NoError(t, err)
	require.Equal(t, 26, z)

	z, err = basis.Charge("26")
	require.NoError(t, err)
	require.Equal(t, 26, z)

	z, err = basis.Charge("X")
	require.NoError(t, err)
	require.Equal(t, 0, z)

	_, err = basis.Charge("Qq")
	require.Error(t, err)
	_, err = basis.Charge("500")
	require.Error(t, err)
}

func TestCoreConfiguration(t *testing.T) {
	conf, err := basis.CoreConfiguration(0)
	require.NoError(t, err)
	require.Equal(t, [4]int{0, 0, 0, 0}, conf)

	conf, err = basis.CoreConfiguration(10)
	require.NoError(t, err)
	require.Equal(t, [4]int{2, 1, 0, 0}, conf)

	conf, err = basis.CoreConfiguration(60)
	require.NoError(t, err)
	require.Equal(t, [4]int{4, 3, 2, 1}, conf)

	_, err = basis.CoreConfiguration(5)
	require.Error(t, err)
}
