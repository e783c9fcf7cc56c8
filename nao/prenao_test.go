package nao_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"gonao/basis"
	"gonao/nao"
)

func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

func diagDense(v ...float64) *mat.Dense {
	m := mat.NewDense(len(v), len(v), nil)
	for i, x := range v {
		m.Set(i, i, x)
	}
	return m
}

func TestPreNAOOccupationsDescend(t *testing.T) {
	// One atom, one s shell with three contractions, unit overlap:
	// occupations are the density eigenvalues, highest first.
	mol := &basis.Mol{
		Atoms:  []basis.Atom{{Z: 3}},
		Shells: []basis.Shell{{Atom: 0, L: 0, Nctr: 3}},
	}
	occ, cao, err := nao.PreNAO(mol, identity(3), diagDense(0.2, 2.0, 1.0))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2.0, 1.0, 0.2}, occ, 1e-12)

	// Coefficient columns pick out the matching density eigenvectors.
	require.InDelta(t, 1.0, math.Abs(cao.At(1, 0)), 1e-12)
	require.InDelta(t, 1.0, math.Abs(cao.At(2, 1)), 1e-12)
	require.InDelta(t, 1.0, math.Abs(cao.At(0, 2)), 1e-12)
}

func TestPreNAOReplicatesAngularComponents(t *testing.T) {
	// One p shell with two contractions. The density couples the two
	// radial functions identically in every component, so each
	// component must get the same radial eigenvectors and occupations.
	mol := &basis.Mol{
		Atoms:  []basis.Atom{{Z: 7}},
		Shells: []basis.Shell{{Atom: 0, L: 1, Nctr: 2}},
	}
	n := 6 // functions ordered f0(x,y,z), f1(x,y,z)
	radial := [2][2]float64{{1.0, 0.5}, {0.5, 1.0}}
	d := mat.NewDense(n, n, nil)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 3; k++ {
				d.Set(i*3+k, j*3+k, radial[i][j])
			}
		}
	}

	occ, cao, err := nao.PreNAO(mol, identity(n), d)
	require.NoError(t, err)
	// Radial eigenvalues 1.5 and 0.5, replicated over x, y, z.
	require.InDeltaSlice(t, []float64{1.5, 1.5, 1.5, 0.5, 0.5, 0.5}, occ, 1e-12)

	inv := 1.0 / math.Sqrt2
	for k := 0; k < 3; k++ {
		require.InDelta(t, inv, math.Abs(cao.At(k, k)), 1e-12)
		require.InDelta(t, inv, math.Abs(cao.At(3+k, k)), 1e-12)
		// No mixing between different angular components.
		require.Zero(t, cao.At(k, (k+1)%3))
	}
}

func TestPreNAOGeneralizedBlockIsOverlapOrthonormal(t *testing.T) {
	// Non-trivial overlap within one s block: the pre-NAO vectors of
	// the block must come out S-orthonormal.
	mol := &basis.Mol{
		Atoms:  []basis.Atom{{Z: 4}},
		Shells: []basis.Shell{{Atom: 0, L: 0, Nctr: 2}},
	}
	s := mat.NewDense(2, 2, []float64{
		1.0, 0.5,
		0.5, 1.0,
	})
	occ, cao, err := nao.PreNAO(mol, s, diagDense(2.0, 0.1))
	require.NoError(t, err)
	require.GreaterOrEqual(t, occ[0], occ[1])

	var g mat.Dense
	g.Mul(cao.T(), s)
	g.Mul(&g, cao)
	require.True(t, mat.EqualApprox(&g, identity(2), 1e-10))
}

func TestPreNAOBlockSparsity(t *testing.T) {
	// Coefficients never couple different atoms or channels.
	mol := waterMol()
	n := mol.NAO()
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, float64(n-i))
	}
	_, cao, err := nao.PreNAO(mol, identity(n), d)
	require.NoError(t, err)

	// O s block is {0,1,2}; anything in those rows outside those
	// columns is structurally zero.
	for _, i := range []int{0, 1, 2} {
		for j := 3; j < n; j++ {
			require.Zero(t, cao.At(i, j))
		}
	}
	// H1 s block {9,10} does not couple to H2 {11,12}.
	require.Zero(t, cao.At(9, 11))
	require.Zero(t, cao.At(11, 9))
}

func TestPreNAODimensionMismatch(t *testing.T) {
	mol := &basis.Mol{
		Atoms:  []basis.Atom{{Z: 1}},
		Shells: []basis.Shell{{Atom: 0, L: 0, Nctr: 1}},
	}
	_, _, err := nao.PreNAO(mol, identity(2), identity(2))
	require.ErrorIs(t, err, nao.ErrDimension)

	_, _, err = nao.PreNAO(mol, identity(1), identity(2))
	require.ErrorIs(t, err, nao.ErrDimension)

	_, _, err = nao.PreNAO(mol, identity(1))
	require.ErrorIs(t, err, nao.ErrDimension)
}
