// basis.go --  This file is part of gonao project.
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

// Package basis holds the shell bookkeeping metadata the NAO solver
// consumes: which atom owns which shell, shell angular momenta and
// contraction counts, and the mapping from shells to basis-function
// index ranges. The metadata is produced once per calculation by the
// integral/SCF machinery and is read-only here.
package basis

import "fmt"

// Atom is one nucleus. Z always counts the full nuclear charge; the
// electrons an effective core potential removes are recorded in
// NelecECP, not subtracted from Z.
type Atom struct {
	Z        int
	NelecECP int
}

// Shell is one contracted shell block: Nctr contracted functions of
// angular momentum L on atom Atoms[Atom]. A shell occupies
// Nctr*Degen(L) consecutive basis functions, with the Degen(L)
// angular components of each contracted function stored contiguously.
type Shell struct {
	Atom int
	L    int
	Nctr int
}

// Mol is the basis metadata for one calculation. Cart selects
// Cartesian angular components; the default is spherical.
type Mol struct {
	Atoms  []Atom
	Shells []Shell
	Cart   bool
}

// Degen returns the number of angular components sharing angular
// momentum l under the molecule's component convention.
func (m *Mol) Degen(l int) int {
	if m.Cart {
		return (l + 1) * (l + 2) / 2
	}
	return 2*l + 1
}

// AOLoc maps shells to basis-function offsets: shell ib occupies
// indices AOLoc()[ib] up to AOLoc()[ib+1]. The last entry is the total
// number of basis functions.
func (m *Mol) AOLoc() []int {
	loc := make([]int, len(m.Shells)+1)
	for i, sh := range m.Shells {
		loc[i+1] = loc[i] + sh.Nctr*m.Degen(sh.L)
	}
	return loc
}

// NAO returns the total number of basis functions.
func (m *Mol) NAO() int {
	n := 0
	for _, sh := range m.Shells {
		n += sh.Nctr * m.Degen(sh.L)
	}
	return n
}

// MaxL returns the highest angular momentum present on atom ia, or -1
// if the atom carries no shells.
func (m *Mol) MaxL(ia int) int {
	lmax := -1
	for _, sh := range m.Shells {
		if sh.Atom == ia && sh.L > lmax {
			lmax = sh.L
		}
	}
	return lmax
}

// Check validates the metadata: atom indices in range, sensible
// charges, non-negative angular momenta and positive contraction
// counts.
func (m *Mol) Check() error {
	for ia, a := range m.Atoms {
		if a.Z < 0 || a.Z >= len(Symbols) {
			return fmt.Errorf("basis: atom %d has charge %d outside the element table", ia, a.Z)
		}
		if a.NelecECP < 0 {
			return fmt.Errorf("basis: atom %d has negative ECP electron count %d", ia, a.NelecECP)
		}
	}
	for ib, sh := range m.Shells {
		if sh.Atom < 0 || sh.Atom >= len(m.Atoms) {
			return fmt.Errorf("basis: shell %d references atom %d of %d", ib, sh.Atom, len(m.Atoms))
		}
		if sh.L < 0 {
			return fmt.Errorf("basis: shell %d has negative angular momentum", ib)
		}
		if sh.Nctr < 1 {
			return fmt.Errorf("basis: shell %d has contraction count %d", ib, sh.Nctr)
		}
	}
	return nil
}
