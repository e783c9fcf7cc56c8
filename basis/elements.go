// elements.go --  This file is part of gonao project.
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
package basis

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Symbols lists element symbols indexed by nuclear charge. Index 0 is
// the ghost atom "X".
var Symbols = []string{
	"X",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// Charge resolves an element given as a symbol ("Fe") or as a decimal
// nuclear charge ("26").
func Charge(element string) (int, error) {
	element = strings.TrimSpace(element)
	if z, err := strconv.Atoi(element); err == nil {
		if z < 0 || z >= len(Symbols) {
			return 0, fmt.Errorf("basis: nuclear charge %d outside the element table", z)
		}
		return z, nil
	}
	symb := element
	if len(symb) > 0 {
		symb = strings.ToUpper(symb[:1]) + strings.ToLower(symb[1:])
	}
	z := slices.Index(Symbols, symb)
	if z < 0 {
		return 0, fmt.Errorf("basis: unknown element %q", element)
	}
	return z, nil
}
