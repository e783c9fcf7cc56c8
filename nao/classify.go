// classify.go --  This file is part of gonao project.
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

import "gonao/basis"

// CoreValRyd assigns every basis function to exactly one of the core,
// valence and Rydberg partitions, walking the shells in declaration
// order. For each atom and channel the shells fill core first, then
// valence, counted against the store's configuration with any
// ECP-absorbed shells already deducted; everything past the valence
// count, and every channel beyond f, is Rydberg. All angular
// components of a contracted function share its label. The three lists
// are disjoint and together cover every basis-function index. A nil
// store means Default.
func CoreValRyd(mol *basis.Mol, store *ConfStore) (core, val, ryd []int, err error) {
	if store == nil {
		store = Default
	}

	count := make([][4]int, len(mol.Atoms))
	k := 0
	for _, sh := range mol.Shells {
		atom := mol.Atoms[sh.Atom]
		deg := mol.Degen(sh.L)

		if sh.L > 3 {
			// No table entry beyond f.
			for n := 0; n < sh.Nctr; n++ {
				ryd = appendRange(ryd, k, k+deg)
				k += deg
			}
			continue
		}

		ecpCore, err := basis.CoreConfiguration(atom.NelecECP)
		if err != nil {
			return nil, nil, nil, err
		}
		coreShell, cvShell, err := store.Conf(atom.Z)
		if err != nil {
			return nil, nil, nil, err
		}

		for n := 0; n < sh.Nctr; n++ {
			switch filled := ecpCore[sh.L] + count[sh.Atom][sh.L] + n; {
			case filled < coreShell[sh.L]:
				core = appendRange(core, k, k+deg)
			case filled < cvShell[sh.L]:
				val = appendRange(val, k, k+deg)
			default:
				ryd = appendRange(ryd, k, k+deg)
			}
			k += deg
		}
		count[sh.Atom][sh.L] += sh.Nctr
	}
	return core, val, ryd, nil
}

func appendRange(lst []int, lo, hi int) []int {
	for i := lo; i < hi; i++ {
		lst = append(lst, i)
	}
	return lst
}
