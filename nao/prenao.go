// prenao.go --  This file is part of gonao project.
//
//	gonao is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------
package nao

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"gonao/basis"
	"gonao/orth"
)

// PreNAO computes the pre-NAO occupations and coefficients: the
// symmetry-averaged eigenvectors of P = S·D·S within each same-atom,
// same-angular-momentum block, replicated over the angular components.
// Occupations are non-increasing within every block. One density
// matrix, or a spin pair to be summed, may be given.
func PreNAO(mol *basis.Mol, s mat.Matrix, dm ...mat.Matrix) ([]float64, *mat.Dense, error) {
	if err := mol.Check(); err != nil {
		return nil, nil, err
	}
	p, sd, err := dualDensity(mol, s, dm)
	if err != nil {
		return nil, nil, err
	}
	return prenaoSub(mol, p, sd)
}

// dualDensity validates dimensions, sums a spin pair and returns
// P = S·D·S together with a dense copy of S.
func dualDensity(mol *basis.Mol, s mat.Matrix, dm []mat.Matrix) (*mat.Dense, *mat.Dense, error) {
	n := mol.NAO()
	if r, c := s.Dims(); r != n || c != n {
		return nil, nil, fmt.Errorf("%w: overlap is %d x %d, basis has %d functions", ErrDimension, r, c, n)
	}
	if len(dm) < 1 || len(dm) > 2 {
		return nil, nil, fmt.Errorf("%w: want one density matrix or a spin pair, got %d", ErrDimension, len(dm))
	}
	d := mat.NewDense(n, n, nil)
	for _, m := range dm {
		if r, c := m.Dims(); r != n || c != n {
			return nil, nil, fmt.Errorf("%w: density is %d x %d, basis has %d functions", ErrDimension, r, c, n)
		}
		d.Add(d, m)
	}

	sd := mat.NewDense(n, n, nil)
	sd.Copy(s)
	p := mat.NewDense(n, n, nil)
	p.Mul(sd, d)
	p.Mul(p, sd)
	return p, sd, nil
}

// aoBlock is one (atom, angular momentum) group of basis functions.
type aoBlock struct {
	idx   []int
	degen int
}

// aoBlocks collects, atom by atom and channel by channel, the basis
// function indices sharing one atom and one angular momentum.
func aoBlocks(mol *basis.Mol) []aoBlock {
	aoLoc := mol.AOLoc()
	var blocks []aoBlock
	for ia := range mol.Atoms {
		lmax := mol.MaxL(ia)
		for l := 0; l <= lmax; l++ {
			var idx []int
			for ib, sh := range mol.Shells {
				if sh.Atom != ia || sh.L != l {
					continue
				}
				for k := aoLoc[ib]; k < aoLoc[ib+1]; k++ {
					idx = append(idx, k)
				}
			}
			if len(idx) == 0 {
				continue
			}
			blocks = append(blocks, aoBlock{idx: idx, degen: mol.Degen(l)})
		}
	}
	return blocks
}

// prenaoSub runs the per-block generalized eigensolve. The blocks are
// independent and write disjoint slices of occ and cao, so they run on
// separate goroutines.
func prenaoSub(mol *basis.Mol, p, s mat.Matrix) ([]float64, *mat.Dense, error) {
	n := mol.NAO()
	occ := make([]float64, n)
	cao := mat.NewDense(n, n, nil)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	for _, b := range aoBlocks(mol) {
		wg.Add(1)
		go func(b aoBlock) {
			defer wg.Done()
			pFrag := sphericAverageMat(p, b.idx, b.degen)
			sFrag := sphericAverageMat(s, b.idx, b.degen)
			e, v, err := eighDesc(pFrag, sFrag)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("nao: block at ao %d: %w", b.idx[0], err)
				}
				mu.Unlock()
				return
			}
			// The same radial eigenvectors serve every angular
			// component of the block.
			nd := len(b.idx) / b.degen
			for k := 0; k < b.degen; k++ {
				for i := 0; i < nd; i++ {
					i0 := b.idx[i*b.degen+k]
					occ[i0] = e[i]
					for j := 0; j < nd; j++ {
						cao.Set(i0, b.idx[j*b.degen+k], v.At(i, j))
					}
				}
			}
		}(b)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, nil, firstErr
	}
	return occ, cao, nil
}

// sphericAverageMat averages the (idx, idx) submatrix of m over the
// degen angular components, leaving one nd x nd radial matrix. The
// averaging imposes rotational (or Cartesian) symmetry exactly instead
// of trusting the integrals to deliver it.
func sphericAverageMat(m mat.Matrix, idx []int, degen int) *mat.SymDense {
	nd := len(idx) / degen
	out := mat.NewSymDense(nd, nil)
	for i := 0; i < nd; i++ {
		for j := i; j < nd; j++ {
			sum := 0.0
			for a := 0; a < degen; a++ {
				for b := 0; b < degen; b++ {
					sum += m.At(idx[i*degen+a], idx[j*degen+b])
				}
			}
			out.SetSym(i, j, sum/float64(degen))
		}
	}
	return out
}

// eighDesc solves the symmetric-definite generalized eigenproblem
// p·v = e·s·v, eigenpairs sorted by descending eigenvalue. The problem
// is reduced to an ordinary symmetric one with x = s^(-1/2):
// (xᵀ·p·x)·u = e·u, v = x·u, which leaves the eigenvectors
// s-orthonormal.
func eighDesc(p, s *mat.SymDense) ([]float64, *mat.Dense, error) {
	nd, _ := p.Dims()
	x, err := orth.Lowdin(s)
	if err != nil {
		return nil, nil, fmt.Errorf("overlap block: %w", err)
	}

	var t mat.Dense
	t.Mul(x.T(), p)
	t.Mul(&t, x)
	tSym := mat.NewSymDense(nd, nil)
	for i := 0; i < nd; i++ {
		for j := i; j < nd; j++ {
			tSym.SetSym(i, j, 0.5*(t.At(i, j)+t.At(j, i)))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(tSym, true) {
		return nil, nil, fmt.Errorf("density block eigendecomposition failed")
	}
	e := eig.Values(nil)
	var u mat.Dense
	eig.VectorsTo(&u)

	var v mat.Dense
	v.Mul(x, &u)

	// EigenSym sorts ascending; reverse for highest occupation first.
	// Equal eigenvalues keep a fixed relative order under the plain
	// reversal, which keeps results reproducible.
	for i, j := 0, nd-1; i < j; i, j = i+1, j-1 {
		e[i], e[j] = e[j], e[i]
		for r := 0; r < nd; r++ {
			vi, vj := v.At(r, i), v.At(r, j)
			v.Set(r, i, vj)
			v.Set(r, j, vi)
		}
	}
	return e, &v, nil
}
