// ecp.go --  This file is part of gonao project.
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

import "fmt"

// ecpConf maps a closed-shell core electron count to the number of
// filled shells per angular momentum channel (s, p, d, f).
var ecpConf = map[int][4]int{
	0:  {0, 0, 0, 0},
	2:  {1, 0, 0, 0},
	10: {2, 1, 0, 0},
	18: {3, 2, 0, 0},
	28: {3, 2, 1, 0},
	36: {4, 3, 1, 0},
	46: {4, 3, 2, 0},
	54: {5, 4, 2, 0},
	60: {4, 3, 2, 1},
	68: {5, 4, 2, 1},
	78: {5, 4, 3, 1},
	92: {5, 4, 3, 2},
}

// CoreConfiguration converts the number of electrons an effective core
// potential removes into per-channel counts of shells absorbed by the
// potential. Only closed-shell cores are meaningful here; any other
// count is malformed input.
func CoreConfiguration(nelecCore int) ([4]int, error) {
	conf, ok := ecpConf[nelecCore]
	if !ok {
		return [4]int{}, fmt.Errorf("basis: %d ECP core electrons do not form a closed-shell core", nelecCore)
	}
	return conf, nil
}
