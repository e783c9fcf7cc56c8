// files.go --  This file is part of gonao project.
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
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"gonao/basis"
)

func readFileLines(fname string) ([]string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var result []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		result = append(result, scanner.Text())
	}
	return result, scanner.Err()
}

// loadMatrix reads a whitespace-separated n x n matrix, one row per
// line. Blank lines and '#' comments are skipped.
func loadMatrix(fname string, n int) (*mat.Dense, error) {
	data, err := readFileLines(fname)
	if err != nil {
		return nil, err
	}
	m := mat.NewDense(n, n, nil)
	row := 0
	for ln, str := range data {
		words := strings.Fields(str)
		if len(words) == 0 || strings.HasPrefix(words[0], "#") {
			continue
		}
		if row >= n {
			return nil, fmt.Errorf("%s: more than %d rows", fname, n)
		}
		if len(words) != n {
			return nil, fmt.Errorf("%s line %d: %d values, want %d", fname, ln+1, len(words), n)
		}
		for j, w := range words {
			v, err := strconv.ParseFloat(w, 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %v", fname, ln+1, err)
			}
			m.Set(row, j, v)
		}
		row++
	}
	if row != n {
		return nil, fmt.Errorf("%s: %d rows, want %d", fname, row, n)
	}
	return m, nil
}

// loadMol reads shell metadata. Two record kinds, in any order but
// with atoms declared before the shells that reference them:
//
//	atom  <symbol|Z> [nelec_ecp]
//	shell <atom index> <l> <nctr>
func loadMol(fname string, cart bool) (*basis.Mol, error) {
	data, err := readFileLines(fname)
	if err != nil {
		return nil, err
	}
	mol := &basis.Mol{Cart: cart}
	for ln, str := range data {
		words := strings.Fields(str)
		if len(words) == 0 || strings.HasPrefix(words[0], "#") {
			continue
		}
		switch strings.ToLower(words[0]) {
		case "atom":
			if len(words) < 2 || len(words) > 3 {
				return nil, fmt.Errorf("%s line %d: want atom <symbol|Z> [nelec_ecp]", fname, ln+1)
			}
			z, err := basis.Charge(words[1])
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %v", fname, ln+1, err)
			}
			necp := 0
			if len(words) == 3 {
				if necp, err = strconv.Atoi(words[2]); err != nil {
					return nil, fmt.Errorf("%s line %d: %v", fname, ln+1, err)
				}
			}
			mol.Atoms = append(mol.Atoms, basis.Atom{Z: z, NelecECP: necp})
		case "shell":
			if len(words) != 4 {
				return nil, fmt.Errorf("%s line %d: want shell <atom> <l> <nctr>", fname, ln+1)
			}
			var nums [3]int
			for i, w := range words[1:] {
				if nums[i], err = strconv.Atoi(w); err != nil {
					return nil, fmt.Errorf("%s line %d: %v", fname, ln+1, err)
				}
			}
			mol.Shells = append(mol.Shells, basis.Shell{Atom: nums[0], L: nums[1], Nctr: nums[2]})
		default:
			return nil, fmt.Errorf("%s line %d: unknown record %q", fname, ln+1, words[0])
		}
	}
	if err := mol.Check(); err != nil {
		return nil, err
	}
	return mol, nil
}
