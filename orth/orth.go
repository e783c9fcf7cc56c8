// orth.go --  This file is part of gonao project.
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

// Package orth provides the two orthogonalization primitives the NAO
// assembly uses: symmetric (Löwdin) orthogonalization and its
// occupation-weighted variant.
package orth

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Eigenvalues of a Gram matrix at or below pdTol mean the candidate
// vectors are (numerically) linearly dependent.
const pdTol = 1e-14

var (
	// ErrNotPositiveDefinite reports a Gram matrix with a
	// non-positive eigenvalue beyond tolerance.
	ErrNotPositiveDefinite = errors.New("orth: gram matrix is not positive definite")

	// ErrDimension reports mismatched operand sizes.
	ErrDimension = errors.New("orth: dimension mismatch")
)

// Lowdin returns g^(-1/2) for a symmetric positive-definite Gram
// matrix g. Applying the result on the right of the candidate vectors
// yields the symmetrically orthogonalized set, the orthonormal set
// closest to the original vectors.
func Lowdin(g *mat.SymDense) (*mat.Dense, error) {
	n, _ := g.Dims()
	var eig mat.EigenSym
	if !eig.Factorize(g, true) {
		return nil, fmt.Errorf("orth: gram matrix eigendecomposition failed")
	}
	vals := eig.Values(nil)
	var v mat.Dense
	eig.VectorsTo(&v)

	inv := make([]float64, n)
	for i, e := range vals {
		if e <= pdTol {
			return nil, fmt.Errorf("%w: eigenvalue %d is %.3e", ErrNotPositiveDefinite, i, e)
		}
		inv[i] = 1.0 / math.Sqrt(e)
	}

	res := mat.NewDense(n, n, nil)
	res.Mul(&v, mat.NewDiagDense(n, inv))
	res.Mul(res, v.T())
	return res, nil
}

// WeightOrth returns the transformation for occupation-weighted
// Löwdin orthogonalization: W·(W·g·W)^(-1/2) with W = diag(w). The
// weighting biases the orthogonal mix toward preserving the character
// of high-weight columns. Weights must be non-negative; a zero weight
// makes the weighted Gram matrix singular and is reported as a
// conditioning error.
func WeightOrth(g *mat.SymDense, w []float64) (*mat.Dense, error) {
	n, _ := g.Dims()
	if len(w) != n {
		return nil, fmt.Errorf("%w: %d weights for a %d x %d gram matrix", ErrDimension, len(w), n, n)
	}

	wgw := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			wgw.SetSym(i, j, w[i]*g.At(i, j)*w[j])
		}
	}

	c, err := Lowdin(wgw)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c.Set(i, j, w[i]*c.At(i, j))
		}
	}
	return c, nil
}
