// nao.go --  This file is part of gonao project.
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

// Package nao computes Natural Atomic Orbitals from a density matrix
// and the atomic-orbital overlap matrix.
package nao

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"gonao/basis"
	"gonao/orth"
)

// Final orthogonality residuals above orthTol are reported as weak,
// not failed; near-linear-dependent basis sets land here routinely.
const orthTol = 1e-9

// ErrDimension reports overlap/density matrices that do not match the
// basis metadata.
var ErrDimension = errors.New("nao: dimension mismatch")

var (
	// WarningLogger carries the weak-orthogonality diagnostic.
	WarningLogger = log.New(os.Stderr, "WARNING: ", 0)
	// OutputLogger carries configuration-override confirmations.
	OutputLogger = log.New(os.Stderr, "", 0)
)

// NAO computes the Natural Atomic Orbital coefficients for the given
// basis metadata, overlap matrix and density matrix (or spin pair,
// which is summed). The returned matrix C satisfies Cᵀ·S·C = I up to
// numerical tolerance; residuals beyond 1e-9 are logged as a warning
// and the result is still returned.
//
// With restore set, the density is re-projected into the NAO basis and
// re-diagonalized block by block once more, restoring a clean natural
// ordering that partition-wise assembly does not guarantee. The
// restoration is an orthogonal rotation and preserves orthonormality
// exactly.
//
// A nil store means Default.
func NAO(mol *basis.Mol, store *ConfStore, s mat.Matrix, restore bool, dm ...mat.Matrix) (*mat.Dense, error) {
	if err := mol.Check(); err != nil {
		return nil, err
	}
	p, sd, err := dualDensity(mol, s, dm)
	if err != nil {
		return nil, err
	}
	preOcc, preNao, err := prenaoSub(mol, p, sd)
	if err != nil {
		return nil, err
	}
	cnao, err := naoSub(mol, store, preOcc, preNao, sd)
	if err != nil {
		return nil, err
	}

	if restore {
		n := mol.NAO()
		var pNao mat.Dense
		pNao.Mul(cnao.T(), p)
		pNao.Mul(&pNao, cnao)
		eye := mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			eye.Set(i, i, 1)
		}
		_, rot, err := prenaoSub(mol, &pNao, eye)
		if err != nil {
			return nil, fmt.Errorf("nao: restoration pass: %w", err)
		}
		cnao.Mul(cnao, rot)
	}
	return cnao, nil
}

// naoSub assembles the final coefficients partition by partition in
// the fixed order core, valence, Rydberg. Each later partition is
// deflated against the already orthogonalized earlier ones, so the
// assembled matrix is globally S-orthonormal even though every
// partition is orthogonalized on its own. The valence partition is
// weighted by the pre-NAO occupations so valence NAOs stay close to
// the physically occupied pre-NAOs.
func naoSub(mol *basis.Mol, store *ConfStore, preOcc []float64, preNao *mat.Dense, s *mat.Dense) (*mat.Dense, error) {
	coreLst, valLst, rydLst, err := CoreValRyd(mol, store)
	if err != nil {
		return nil, err
	}
	n := mol.NAO()
	cnao := mat.NewDense(n, n, nil)

	var c *mat.Dense
	if len(coreLst) > 0 {
		cc := takeCols(preNao, coreLst)
		x, err := orth.Lowdin(gram(cc, s))
		if err != nil {
			return nil, fmt.Errorf("nao: core partition: %w", err)
		}
		var c1 mat.Dense
		c1.Mul(cc, x)
		putCols(cnao, coreLst, &c1)
		c = takeCols(preNao, valLst)
		deflate(c, &c1, s)
	} else {
		c = takeCols(preNao, valLst)
	}

	if len(valLst) > 0 {
		wt := make([]float64, len(valLst))
		for i, j := range valLst {
			wt[i] = preOcc[j]
		}
		w, err := orth.WeightOrth(gram(c, s), wt)
		if err != nil {
			return nil, fmt.Errorf("nao: valence partition: %w", err)
		}
		var cv mat.Dense
		cv.Mul(c, w)
		putCols(cnao, valLst, &cv)
	}

	if len(rydLst) > 0 {
		cvLst := make([]int, 0, len(coreLst)+len(valLst))
		cvLst = append(cvLst, coreLst...)
		cvLst = append(cvLst, valLst...)
		cr := takeCols(preNao, rydLst)
		if len(cvLst) > 0 {
			deflate(cr, takeCols(cnao, cvLst), s)
		}
		x, err := orth.Lowdin(gram(cr, s))
		if err != nil {
			return nil, fmt.Errorf("nao: rydberg partition: %w", err)
		}
		var co mat.Dense
		co.Mul(cr, x)
		putCols(cnao, rydLst, &co)
	}

	// Cᵀ·S·C − I residual; weak orthogonality is a data-quality
	// signal, not a failure.
	var r mat.Dense
	r.Mul(cnao.T(), s)
	r.Mul(&r, cnao)
	for i := 0; i < n; i++ {
		r.Set(i, i, r.At(i, i)-1)
	}
	if snorm := mat.Norm(&r, 2); snorm > orthTol {
		r.MulElem(&r, &r)
		rms := math.Sqrt(stat.Mean(r.RawMatrix().Data, nil))
		WarningLogger.Printf("Weak orthogonality for localized orbitals %.6e (rms %.6e)", snorm, rms)
	}
	return cnao, nil
}

// Occupations returns diag(Cᵀ·P·C), the natural populations of the
// orbitals in C under the AO-dual density P.
func Occupations(c *mat.Dense, p mat.Matrix) []float64 {
	var t mat.Dense
	t.Mul(c.T(), p)
	t.Mul(&t, c)
	n, _ := t.Dims()
	occ := make([]float64, n)
	for i := range occ {
		occ[i] = t.At(i, i)
	}
	return occ
}

// takeCols copies the listed columns of m into a fresh matrix, or
// returns nil for an empty list.
func takeCols(m *mat.Dense, lst []int) *mat.Dense {
	if len(lst) == 0 {
		return nil
	}
	n, _ := m.Dims()
	out := mat.NewDense(n, len(lst), nil)
	for j, col := range lst {
		for i := 0; i < n; i++ {
			out.Set(i, j, m.At(i, col))
		}
	}
	return out
}

// putCols writes the columns of src into dst at the listed positions.
func putCols(dst *mat.Dense, lst []int, src mat.Matrix) {
	n, _ := dst.Dims()
	for j, col := range lst {
		for i := 0; i < n; i++ {
			dst.Set(i, col, src.At(i, j))
		}
	}
}

// gram computes the symmetrized Cᵀ·S·C. The two products have
// different shapes whenever c is rectangular, so each needs its own
// destination.
func gram(c *mat.Dense, s mat.Matrix) *mat.SymDense {
	var cs, t mat.Dense
	cs.Mul(c.T(), s)
	t.Mul(&cs, c)
	m, _ := t.Dims()
	g := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			g.SetSym(i, j, 0.5*(t.At(i, j)+t.At(j, i)))
		}
	}
	return g
}

// deflate removes from the columns of c their projection onto the
// S-orthonormal columns of b: c -= b·bᵀ·S·c.
func deflate(c, b *mat.Dense, s mat.Matrix) {
	if c == nil || b == nil {
		return
	}
	var bs, proj mat.Dense
	bs.Mul(b.T(), s)
	proj.Mul(&bs, c)
	var corr mat.Dense
	corr.Mul(b, &proj)
	c.Sub(c, &corr)
}
